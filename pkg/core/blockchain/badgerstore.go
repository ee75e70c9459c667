package blockchain

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/pixelchain/pixelchain/pkg/core/types"
)

// BadgerBlockStore is a BlockStore backed by BadgerDB, gob-encoding each
// block under a key derived from its display hash.
type BadgerBlockStore struct {
	db *badger.DB
}

// NewBadgerBlockStore opens (or creates) a BadgerDB-backed block store at
// path. An empty path opens an in-memory instance, useful for tests that
// still want to exercise the real store implementation.
func NewBadgerBlockStore(path string) (*BadgerBlockStore, error) {
	opts := badger.DefaultOptions(path)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger block store: %w", err)
	}
	return &BadgerBlockStore{db: db}, nil
}

// Close releases the underlying BadgerDB handle.
func (s *BadgerBlockStore) Close() error {
	return s.db.Close()
}

func blockKey(hash types.Hash) []byte {
	return []byte(fmt.Sprintf("block:%s", hash.Hex()))
}

func (s *BadgerBlockStore) Get(hash types.Hash) (*types.Block, bool, error) {
	var block types.Block
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(blockKey(hash))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return gob.NewDecoder(bytes.NewReader(val)).Decode(&block)
		})
	})
	if err == badger.ErrKeyNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get block %s: %w", hash, err)
	}
	return &block, true, nil
}

func (s *BadgerBlockStore) Set(block *types.Block) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(block); err != nil {
		return fmt.Errorf("encode block %s: %w", block.ID(), err)
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(blockKey(block.ID()), buf.Bytes())
	})
	if err != nil {
		return fmt.Errorf("set block %s: %w", block.ID(), err)
	}
	return nil
}

func (s *BadgerBlockStore) Has(hash types.Hash) (bool, error) {
	var found bool
	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(blockKey(hash))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("has block %s: %w", hash, err)
	}
	return found, nil
}

// BadgerTransactionStore is a TransactionStore backed by BadgerDB.
type BadgerTransactionStore struct {
	db *badger.DB
}

// NewBadgerTransactionStore opens (or creates) a BadgerDB-backed
// transaction store at path, following the same in-memory convention as
// NewBadgerBlockStore.
func NewBadgerTransactionStore(path string) (*BadgerTransactionStore, error) {
	opts := badger.DefaultOptions(path)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger transaction store: %w", err)
	}
	return &BadgerTransactionStore{db: db}, nil
}

// Close releases the underlying BadgerDB handle.
func (s *BadgerTransactionStore) Close() error {
	return s.db.Close()
}

func txKey(id types.Hash) []byte {
	return []byte(fmt.Sprintf("tx:%s", id.Hex()))
}

func (s *BadgerTransactionStore) Get(id types.Hash) (*types.Transaction, bool, error) {
	var tx types.Transaction
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(txKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return gob.NewDecoder(bytes.NewReader(val)).Decode(&tx)
		})
	})
	if err == badger.ErrKeyNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get transaction %s: %w", id, err)
	}
	return &tx, true, nil
}

func (s *BadgerTransactionStore) Set(tx *types.Transaction) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(tx); err != nil {
		return fmt.Errorf("encode transaction %s: %w", tx.ID(), err)
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(txKey(tx.ID()), buf.Bytes())
	})
	if err != nil {
		return fmt.Errorf("set transaction %s: %w", tx.ID(), err)
	}
	return nil
}

func (s *BadgerTransactionStore) Has(id types.Hash) (bool, error) {
	var found bool
	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(txKey(id))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("has transaction %s: %w", id, err)
	}
	return found, nil
}
