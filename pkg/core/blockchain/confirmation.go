package blockchain

import (
	"fmt"

	"github.com/pixelchain/pixelchain/pkg/core/types"
)

// appendNewBlock makes h the new tip, walking back through prev to find
// the common ancestor with the current tip, unconfirming the old branch
// tip-down and confirming the new branch ancestor-up.
func (c *Chain) appendNewBlock(h types.Hash) (unconfirmed, confirmed []types.Hash, err error) {
	var newBranch []types.Hash
	cursor := h
	for {
		if _, known := c.index.heightOf(cursor); known {
			break
		}
		newBranch = append(newBranch, cursor)
		cursor = c.index.Prev[cursor]
	}
	ancestor := cursor

	if ancestorHeight, ok := c.index.heightOf(ancestor); ok {
		if tipHeight, _ := c.index.heightOf(c.index.Tip); tipHeight-ancestorHeight > MaxRewind {
			return nil, nil, ErrReorgTooDeep
		}
	}

	var oldBranch []types.Hash
	for cur := c.index.Tip; cur != ancestor; cur = c.index.Prev[cur] {
		oldBranch = append(oldBranch, cur)
	}

	for _, oh := range oldBranch {
		block, ok, err := c.blocks.Get(oh)
		if err != nil {
			return nil, nil, fmt.Errorf("load block %s for unconfirm: %w", oh, err)
		}
		if !ok {
			return nil, nil, fmt.Errorf("block %s missing from store during unconfirm", oh)
		}
		if err := c.unconfirmLocked(block); err != nil {
			return nil, nil, err
		}
		unconfirmed = append(unconfirmed, oh)
	}

	for i := len(newBranch) - 1; i >= 0; i-- {
		nh := newBranch[i]
		block, ok, err := c.blocks.Get(nh)
		if err != nil {
			return nil, nil, fmt.Errorf("load block %s for confirm: %w", nh, err)
		}
		if !ok {
			return nil, nil, fmt.Errorf("block %s missing from store during confirm", nh)
		}
		if err := c.confirmLocked(block); err != nil {
			return nil, nil, err
		}
		confirmed = append(confirmed, nh)
	}

	return unconfirmed, confirmed, nil
}

// emitReorg notifies the listener of a completed reorg. Callers must invoke
// it only after releasing c.mu: OnUnconfirm/OnConfirm run with no lock held,
// so a listener is free to call back into the chain's read-only queries.
func (c *Chain) emitReorg(unconfirmed, confirmed []types.Hash) {
	for _, oh := range unconfirmed {
		block, _, _ := c.blocks.Get(oh)
		c.listener.OnUnconfirm(block)
	}
	for _, nh := range confirmed {
		block, _, _ := c.blocks.Get(nh)
		c.listener.OnConfirm(block)
	}
}

// confirmLocked requires block's parent to be the current tip, then
// extends the active chain onto it.
func (c *Chain) confirmLocked(block *types.Block) error {
	h := block.ID()
	if block.PrevHash() != c.index.Tip {
		panic(fmt.Sprintf("blockchain: confirm(%s) called with non-tip parent %s (tip is %s)", h, block.PrevHash(), c.index.Tip))
	}
	parentHeight, _ := c.index.heightOf(block.PrevHash())
	height := parentHeight + 1

	c.index.Tip = h
	c.index.Height[h] = height
	c.index.Next[block.PrevHash()] = h
	c.index.HashByHeight[height] = h
	for _, tx := range block.Transactions {
		c.index.Pixels[tx.Position] = tx
	}
	return nil
}

// unconfirmLocked requires block to be the current tip, then retracts the
// active chain off of it, restoring the pixel map to its pre-confirm state
// by resolving each transaction's input from the transaction store. It
// walks block.Transactions in reverse so that a pixel touched more than
// once within the same block (a coinbase mint immediately spent by a later
// transfer) unwinds to the state before the block's earliest touch, not
// some intermediate one.
func (c *Chain) unconfirmLocked(block *types.Block) error {
	h := block.ID()
	if h != c.index.Tip {
		panic(fmt.Sprintf("blockchain: unconfirm(%s) called but tip is %s", h, c.index.Tip))
	}
	oldHeight, ok := c.index.heightOf(h)
	if !ok {
		panic(fmt.Sprintf("blockchain: unconfirm(%s) called on a block with no height assignment", h))
	}

	parent := block.PrevHash()
	c.index.Tip = parent
	delete(c.index.Height, h)
	delete(c.index.Next, parent)
	delete(c.index.HashByHeight, oldHeight)

	for i := len(block.Transactions) - 1; i >= 0; i-- {
		tx := block.Transactions[i]
		if tx.IsCoinbase() {
			delete(c.index.Pixels, tx.Position)
			continue
		}
		prev, ok, err := c.txs.Get(tx.Input)
		if err != nil {
			return fmt.Errorf("load input transaction %s while unconfirming %s: %w", tx.Input, h, err)
		}
		if !ok {
			return fmt.Errorf("input transaction %s not found while unconfirming %s", tx.Input, h)
		}
		c.index.Pixels[tx.Position] = prev
	}
	return nil
}
