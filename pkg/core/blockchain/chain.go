// Package blockchain implements the reorg-aware block tree: admission of
// new blocks, cumulative-work fork choice, and the pixel ownership map that
// the active chain projects.
package blockchain

import (
	"fmt"
	"math/big"
	"sync"

	"go.uber.org/zap"

	"github.com/pixelchain/pixelchain/pkg/core/consensus"
	"github.com/pixelchain/pixelchain/pkg/core/types"
)

// MaxRewind bounds how deep a reorg's common ancestor may lie below the
// current tip. Pruning relies on never needing to revisit work/prev
// entries beyond this window.
const MaxRewind = 100

// ChainIndex holds every map the engine mutates as the active chain moves.
// It is deliberately a single value rather than a scatter of package-level
// state, so the whole chain can be snapshotted and restored atomically.
type ChainIndex struct {
	Work         map[types.Hash]*big.Int
	Prev         map[types.Hash]types.Hash
	Height       map[types.Hash]int64
	HashByHeight map[int64]types.Hash
	Next         map[types.Hash]types.Hash
	Tip          types.Hash
	Pixels       map[types.Position]*types.Transaction
}

// NewChainIndex returns an empty index with work[NULL] implicitly zero.
func NewChainIndex() *ChainIndex {
	idx := &ChainIndex{
		Work:         make(map[types.Hash]*big.Int),
		Prev:         make(map[types.Hash]types.Hash),
		Height:       make(map[types.Hash]int64),
		HashByHeight: make(map[int64]types.Hash),
		Next:         make(map[types.Hash]types.Hash),
		Tip:          types.NullHash,
		Pixels:       make(map[types.Position]*types.Transaction),
	}
	idx.Work[types.NullHash] = big.NewInt(0)
	return idx
}

// heightOf returns -1 for the null hash (spec's height[NULL] == -1) or the
// assigned active-chain height, and false if h has no height assignment.
func (idx *ChainIndex) heightOf(h types.Hash) (int64, bool) {
	if h.IsZero() {
		return -1, true
	}
	height, ok := idx.Height[h]
	return height, ok
}

// Chain is the reorg-aware blockchain engine. All mutating entry points
// take the write lock; read-only queries take the read lock.
type Chain struct {
	mu       sync.RWMutex
	index    *ChainIndex
	blocks   BlockStore
	txs      TransactionStore
	listener ChainListener
	log      *zap.SugaredLogger
}

// New constructs a Chain over the given stores. A nil listener defaults to
// a no-op observer; a nil logger defaults to zap's no-op logger so callers
// that don't care about observability pay nothing for it.
func New(blocks BlockStore, txs TransactionStore, listener ChainListener, log *zap.SugaredLogger) *Chain {
	if listener == nil {
		listener = noopListener{}
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Chain{
		index:    NewChainIndex(),
		blocks:   blocks,
		txs:      txs,
		listener: listener,
		log:      log,
	}
}

// HasData reports whether hash's work entry is known, i.e. the block has
// been admitted to the tree (on the active chain or a known fork).
func (c *Chain) HasData(hash types.Hash) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.index.Work[hash]
	return ok
}

// GetCurrentHeight returns the active chain's tip height, or -1 if the
// chain has no blocks yet.
func (c *Chain) GetCurrentHeight() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	height, _ := c.index.heightOf(c.index.Tip)
	return height
}

// GetTipBlock returns the active chain's current tip block.
func (c *Chain) GetTipBlock() (*types.Block, bool, error) {
	c.mu.RLock()
	tip := c.index.Tip
	c.mu.RUnlock()
	if tip.IsZero() {
		return nil, false, nil
	}
	return c.blocks.Get(tip)
}

// GetBlock looks up a block by hash, regardless of whether it is on the
// active chain.
func (c *Chain) GetBlock(hash types.Hash) (*types.Block, bool, error) {
	return c.blocks.Get(hash)
}

// PixelOwner returns the transaction currently owning the pixel at p on
// the active chain, if any.
func (c *Chain) PixelOwner(p types.Position) (*types.Transaction, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	tx, ok := c.index.Pixels[p]
	return tx, ok
}

// ProposeNewBlock attempts to admit block to the chain. It returns the
// hashes unconfirmed and confirmed by any resulting reorg, both empty if
// block was admitted but did not become the new tip.
func (c *Chain) ProposeNewBlock(block *types.Block) (unconfirmed, confirmed []types.Hash, err error) {
	unconfirmed, confirmed, err = c.proposeNewBlockLocked(block)
	if err != nil {
		return nil, nil, err
	}
	if len(unconfirmed) != 0 || len(confirmed) != 0 {
		c.emitReorg(unconfirmed, confirmed)
	}
	return unconfirmed, confirmed, nil
}

// proposeNewBlockLocked does the locked work of ProposeNewBlock and returns
// before any listener is touched: the lock must be released before
// OnUnconfirm/OnConfirm run, so the reorg is computed here and emitted by
// the caller afterward.
func (c *Chain) proposeNewBlockLocked(block *types.Block) (unconfirmed, confirmed []types.Hash, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.checkValidBlockLocked(block); err != nil {
		c.log.Warnw("rejected candidate block", "id", block.ID(), "height", block.Height(), "error", err)
		return nil, nil, err
	}

	parentHash := block.PrevHash()

	if err := c.blocks.Set(block); err != nil {
		return nil, nil, fmt.Errorf("store block %s: %w", block.ID(), err)
	}
	for _, tx := range block.Transactions {
		if err := c.txs.Set(tx); err != nil {
			return nil, nil, fmt.Errorf("store transaction %s: %w", tx.ID(), err)
		}
	}

	h := block.ID()
	c.index.Prev[h] = parentHash
	c.index.Work[h] = new(big.Int).Add(c.index.Work[parentHash], consensus.WorkFor(block.Header.Bits))

	if c.index.Work[h].Cmp(c.index.Work[c.index.Tip]) > 0 {
		unconfirmed, confirmed, err = c.appendNewBlock(h)
		if err != nil {
			return nil, nil, err
		}
		c.log.Infow("new tip", "id", h, "height", block.Height(),
			"unconfirmed", len(unconfirmed), "confirmed", len(confirmed))
		return unconfirmed, confirmed, nil
	}
	c.log.Debugw("accepted non-tip block", "id", h, "height", block.Height())
	return nil, nil, nil
}

// Prune discards Work/Prev entries for blocks that are not on the active
// chain and have no descendant on it, as long as doing so never needs to
// revisit ancestry beyond MaxRewind blocks below the tip.
func (c *Chain) Prune() {
	c.mu.Lock()
	defer c.mu.Unlock()

	tipHeight, ok := c.index.heightOf(c.index.Tip)
	if !ok || tipHeight < MaxRewind {
		return
	}
	floor := tipHeight - MaxRewind

	onActiveChain := make(map[types.Hash]bool)
	for h := c.index.Tip; !h.IsZero(); h = c.index.Prev[h] {
		onActiveChain[h] = true
		if height, ok := c.index.heightOf(h); ok && height <= floor {
			break
		}
	}

	hasActiveDescendant := make(map[types.Hash]bool)
	for h := range onActiveChain {
		for p := c.index.Prev[h]; !p.IsZero(); p = c.index.Prev[p] {
			hasActiveDescendant[p] = true
		}
	}

	for h := range c.index.Work {
		if h.IsZero() || onActiveChain[h] || hasActiveDescendant[h] {
			continue
		}
		height, known := c.index.heightOf(h)
		if known && height > floor {
			continue
		}
		delete(c.index.Work, h)
		delete(c.index.Prev, h)
	}
}

// ToObject snapshots the chain index into a plain value safe to serialize,
// with maps converted to slices in a defined field order.
func (c *Chain) ToObject() ChainSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return snapshotIndex(c.index)
}

// FromObject replaces the chain's index with snap's contents, resolving
// pixel owners against the chain's transaction store. It does not touch
// the underlying block/transaction stores otherwise.
func (c *Chain) FromObject(snap ChainSnapshot) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx, err := restoreIndex(snap, c.txs)
	if err != nil {
		return err
	}
	c.index = idx
	return nil
}
