package blockchain

import "github.com/pixelchain/pixelchain/pkg/core/types"

// BlockStore is the abstract content-addressed lookup the engine uses for
// blocks. It performs no cache eviction of its own; the engine calls only
// Get/Set/Has and never iterates the underlying storage.
type BlockStore interface {
	Get(hash types.Hash) (*types.Block, bool, error)
	Set(block *types.Block) error
	Has(hash types.Hash) (bool, error)
}

// TransactionStore is the equivalent content-addressed lookup for
// transactions, used to resolve a spend's previous owner.
type TransactionStore interface {
	Get(id types.Hash) (*types.Transaction, bool, error)
	Set(tx *types.Transaction) error
	Has(id types.Hash) (bool, error)
}
