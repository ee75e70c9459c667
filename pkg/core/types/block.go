package types

import (
	"fmt"

	"github.com/pixelchain/pixelchain/pkg/codec"
)

// MaxBlockSize is the largest serialized block the wire format permits.
const MaxBlockSize = 1_000_000

// Block is a header plus an ordered list of transactions. transactions[0]
// must be the coinbase that mints the block's reward pixel.
type Block struct {
	Header       BlockHeader
	Transactions []*Transaction
}

// NewBlock wraps header and txs into a Block without recomputing anything.
func NewBlock(header BlockHeader, txs []*Transaction) *Block {
	return &Block{Header: header, Transactions: txs}
}

// ID returns the block's display identifier, which is its header's id.
func (b *Block) ID() Hash {
	return b.Header.ID()
}

// PrevHash returns the hash of the block this one extends.
func (b *Block) PrevHash() Hash {
	return b.Header.PrevHash
}

// Height returns the block's claimed height.
func (b *Block) Height() uint32 {
	return b.Header.Height
}

// Coinbase returns the block's first transaction, or nil if it has none.
func (b *Block) Coinbase() *Transaction {
	if len(b.Transactions) == 0 {
		return nil
	}
	return b.Transactions[0]
}

// AddTransaction appends tx and recomputes the header's merkle root. Miners
// use this while assembling a candidate block; it is not part of any
// consensus validation path.
func (b *Block) AddTransaction(tx *Transaction) {
	b.Transactions = append(b.Transactions, tx)
	b.Header.MerkleRoot = ComputeMerkleRoot(b.Transactions)
	b.Header.cached = false
}

// ComputeMerkleRoot reduces the transactions' hashes pairwise, duplicating
// the last node at each odd-length level, exactly as Bitcoin does. The root
// of an empty transaction list is the all-zero hash.
func ComputeMerkleRoot(txs []*Transaction) Hash {
	if len(txs) == 0 {
		return NullHash
	}
	nodes := make([]Hash, len(txs))
	for i, tx := range txs {
		nodes[i] = tx.hash()
	}
	for len(nodes) > 1 {
		n := len(nodes)
		next := make([]Hash, 0, (n+1)/2)
		for i := 0; i < n; i += 2 {
			left := nodes[i]
			right := nodes[i]
			if i+1 < n {
				right = nodes[i+1]
			}
			combined := make([]byte, 0, HashSize*2)
			combined = append(combined, left.Bytes()...)
			combined = append(combined, right.Bytes()...)
			next = append(next, Dhash(combined))
		}
		nodes = next
	}
	return nodes[0]
}

// ValidMerkleRoot reports whether the header's MerkleRoot matches the
// transactions actually carried by the block.
func (b *Block) ValidMerkleRoot() bool {
	return b.Header.MerkleRoot == ComputeMerkleRoot(b.Transactions)
}

// String renders a short human-readable summary of the block.
func (b *Block) String() string {
	return fmt.Sprintf("Block{height=%d, id=%s, txs=%d}", b.Header.Height, b.ID(), len(b.Transactions))
}

// Serialize returns the full wire encoding of b: its 84-byte header,
// followed by a CompactSize transaction count and each transaction in
// order.
func (b *Block) Serialize() []byte {
	w := codec.NewWriter()
	w.Bytes(b.Header.Serialize())
	w.CompactSize(uint64(len(b.Transactions)))
	for _, tx := range b.Transactions {
		w.Bytes(tx.Serialize())
	}
	return w.Finish()
}

// DeserializeBlock decodes a block from its wire encoding.
func DeserializeBlock(b []byte) (*Block, error) {
	if len(b) < HeaderSize {
		return nil, fmt.Errorf("block header: %w", codec.ErrTruncatedInput)
	}
	header, err := DeserializeBlockHeader(b[:HeaderSize])
	if err != nil {
		return nil, fmt.Errorf("block header: %w", err)
	}

	r := codec.NewReader(b[HeaderSize:])
	count, err := r.CompactSize()
	if err != nil {
		return nil, fmt.Errorf("block transaction count: %w", err)
	}
	txs := make([]*Transaction, 0, count)
	for i := uint64(0); i < count; i++ {
		tx, err := decodeTransaction(r)
		if err != nil {
			return nil, fmt.Errorf("block transaction %d: %w", i, err)
		}
		txs = append(txs, tx)
	}
	return &Block{Header: *header, Transactions: txs}, nil
}
