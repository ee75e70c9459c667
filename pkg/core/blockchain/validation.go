package blockchain

import (
	"github.com/pixelchain/pixelchain/pkg/core/crypto"
	"github.com/pixelchain/pixelchain/pkg/core/types"
)

// IsValidBlock reports whether block would be accepted by CheckValidBlock,
// swallowing the specific error.
func (c *Chain) IsValidBlock(block *types.Block) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.checkValidBlockLocked(block) == nil
}

// CheckValidBlock validates block against the chain's current pixel map
// and known ancestry, without mutating anything.
func (c *Chain) CheckValidBlock(block *types.Block) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.checkValidBlockLocked(block)
}

// checkValidBlockLocked is the lock-free validation worker shared by
// CheckValidBlock, IsValidBlock, and ProposeNewBlock, which already holds
// the write lock when it calls in.
func (c *Chain) checkValidBlockLocked(block *types.Block) error {
	if len(block.Transactions) == 0 {
		return ErrEmptyTransactions
	}
	if len(block.Serialize()) > types.MaxBlockSize {
		return ErrOversizeBlock
	}
	if !block.ValidMerkleRoot() {
		return ErrInvalidMerkleRoot
	}

	parentHash := block.PrevHash()
	if _, ok := c.index.Work[parentHash]; !ok {
		return ErrUnknownParent
	}

	cb := block.Coinbase()
	if !cb.IsCoinbase() {
		return ErrCoinbaseNotFirst
	}
	if _, err := cb.Owner.ECDSA(); err != nil {
		return ErrBadPublicKey
	}
	if _, owned := c.index.Pixels[cb.Position]; owned {
		return ErrPixelAlreadyMined
	}
	if block.Height() != 0 && !c.hasAdjacentPixel(cb.Position) {
		return ErrNonAdjacentCoinbase
	}

	scratch := make(map[types.Position]*types.Transaction, len(block.Transactions))
	scratch[cb.Position] = cb

	for _, tx := range block.Transactions[1:] {
		if _, err := tx.Owner.ECDSA(); err != nil {
			return ErrBadPublicKey
		}

		prevOwner, ok := scratch[tx.Position]
		if !ok {
			prevOwner, ok = c.index.Pixels[tx.Position]
		}
		if !ok {
			return ErrMissingPreviousTx
		}
		if tx.Input != prevOwner.ID() {
			return ErrPositionConflict
		}
		if len(tx.Signature) == 0 {
			return ErrMissingSignature
		}
		if len(tx.Signature) != crypto.SignatureSize && len(tx.Signature) != crypto.SignatureSize-1 {
			return ErrBadSignatureEncoding
		}
		if !tx.IsValidSignature(prevOwner.Owner) {
			return ErrSignatureMismatch
		}
		scratch[tx.Position] = tx
	}

	return nil
}

// hasAdjacentPixel reports whether any currently-owned pixel is Manhattan-
// adjacent to p.
func (c *Chain) hasAdjacentPixel(p types.Position) bool {
	for owned := range c.index.Pixels {
		if p.IsAdjacentTo(owned) {
			return true
		}
	}
	return false
}
