package blockchain

import (
	"sync"

	"github.com/pixelchain/pixelchain/pkg/core/types"
)

// MemoryBlockStore is a mutex-guarded in-memory BlockStore, suitable for
// tests and for any caller that doesn't need durability across restarts.
type MemoryBlockStore struct {
	mu     sync.RWMutex
	blocks map[types.Hash]*types.Block
}

// NewMemoryBlockStore returns an empty MemoryBlockStore.
func NewMemoryBlockStore() *MemoryBlockStore {
	return &MemoryBlockStore{blocks: make(map[types.Hash]*types.Block)}
}

func (s *MemoryBlockStore) Get(hash types.Hash) (*types.Block, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	block, ok := s.blocks[hash]
	return block, ok, nil
}

func (s *MemoryBlockStore) Set(block *types.Block) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blocks[block.ID()] = block
	return nil
}

func (s *MemoryBlockStore) Has(hash types.Hash) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.blocks[hash]
	return ok, nil
}

// MemoryTransactionStore is a mutex-guarded in-memory TransactionStore.
type MemoryTransactionStore struct {
	mu  sync.RWMutex
	txs map[types.Hash]*types.Transaction
}

// NewMemoryTransactionStore returns an empty MemoryTransactionStore.
func NewMemoryTransactionStore() *MemoryTransactionStore {
	return &MemoryTransactionStore{txs: make(map[types.Hash]*types.Transaction)}
}

func (s *MemoryTransactionStore) Get(id types.Hash) (*types.Transaction, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tx, ok := s.txs[id]
	return tx, ok, nil
}

func (s *MemoryTransactionStore) Set(tx *types.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.txs[tx.ID()] = tx
	return nil
}

func (s *MemoryTransactionStore) Has(id types.Hash) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.txs[id]
	return ok, nil
}
