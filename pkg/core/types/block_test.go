package types

import (
	"testing"

	"github.com/pixelchain/pixelchain/pkg/core/crypto"
)

func TestComputeMerkleRootEmpty(t *testing.T) {
	if root := ComputeMerkleRoot(nil); root != NullHash {
		t.Fatalf("expected empty transaction list to produce the null root")
	}
}

func TestComputeMerkleRootSingle(t *testing.T) {
	priv, _ := crypto.GenerateKey()
	owner := PublicKeyFromECDSA(&priv.PublicKey)
	tx := Mint().At(Position{X: 0, Y: 0}).Colored(1).To(owner)

	root := ComputeMerkleRoot([]*Transaction{tx})
	if root != tx.ID() {
		t.Fatalf("single-transaction root should equal that transaction's id")
	}
}

func TestComputeMerkleRootOddCountDuplicatesTail(t *testing.T) {
	priv, _ := crypto.GenerateKey()
	owner := PublicKeyFromECDSA(&priv.PublicKey)
	a := Mint().At(Position{X: 0, Y: 0}).Colored(1).To(owner)
	b := Mint().At(Position{X: 1, Y: 0}).Colored(2).To(owner)
	c := Mint().At(Position{X: 2, Y: 0}).Colored(3).To(owner)

	got := ComputeMerkleRoot([]*Transaction{a, b, c})

	ab := Dhash(append(append([]byte{}, a.ID().Bytes()...), b.ID().Bytes()...))
	cc := Dhash(append(append([]byte{}, c.ID().Bytes()...), c.ID().Bytes()...))
	want := Dhash(append(append([]byte{}, ab.Bytes()...), cc.Bytes()...))

	if got != want {
		t.Fatalf("odd-length merkle reduction did not duplicate the tail node")
	}
}

func TestBlockValidMerkleRoot(t *testing.T) {
	priv, _ := crypto.GenerateKey()
	owner := PublicKeyFromECDSA(&priv.PublicKey)
	tx := Mint().At(Position{X: 0, Y: 0}).Colored(1).To(owner)

	block := NewBlock(BlockHeader{MerkleRoot: ComputeMerkleRoot([]*Transaction{tx})}, []*Transaction{tx})
	if !block.ValidMerkleRoot() {
		t.Fatalf("block's merkle root should validate against its transactions")
	}

	block.Header.MerkleRoot = Dhash([]byte("wrong"))
	if block.ValidMerkleRoot() {
		t.Fatalf("tampered merkle root should fail validation")
	}
}

func TestBlockAddTransactionRecomputesRoot(t *testing.T) {
	priv, _ := crypto.GenerateKey()
	owner := PublicKeyFromECDSA(&priv.PublicKey)
	coinbase := Mint().At(Position{X: 0, Y: 0}).Colored(1).To(owner)

	block := NewBlock(BlockHeader{}, []*Transaction{coinbase})
	block.Header.MerkleRoot = ComputeMerkleRoot(block.Transactions)

	next := FromPrevious(coinbase).Colored(2).To(owner)
	block.AddTransaction(next)

	if !block.ValidMerkleRoot() {
		t.Fatalf("AddTransaction should keep the merkle root consistent")
	}
	if len(block.Transactions) != 2 {
		t.Fatalf("expected 2 transactions after AddTransaction")
	}
}

func TestBlockSerializeRoundTrip(t *testing.T) {
	priv, _ := crypto.GenerateKey()
	owner := PublicKeyFromECDSA(&priv.PublicKey)
	coinbase := Mint().At(Position{X: 0, Y: 0}).Colored(1).To(owner)
	if err := coinbase.Sign(priv); err != nil {
		t.Fatalf("sign coinbase: %v", err)
	}
	transfer := FromPrevious(coinbase).Colored(2).To(owner)
	if err := transfer.Sign(priv); err != nil {
		t.Fatalf("sign transfer: %v", err)
	}

	block := NewBlock(BlockHeader{Height: 1, Bits: 0x1d00ffff}, []*Transaction{coinbase, transfer})
	block.Header.MerkleRoot = ComputeMerkleRoot(block.Transactions)

	encoded := block.Serialize()
	if len(encoded) < HeaderSize {
		t.Fatalf("serialized block shorter than its header")
	}

	decoded, err := DeserializeBlock(encoded)
	if err != nil {
		t.Fatalf("DeserializeBlock: %v", err)
	}
	if decoded.ID() != block.ID() {
		t.Fatalf("round-tripped block id mismatch: got %s want %s", decoded.ID(), block.ID())
	}
	if len(decoded.Transactions) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(decoded.Transactions))
	}
	if decoded.Transactions[0].ID() != coinbase.ID() || decoded.Transactions[1].ID() != transfer.ID() {
		t.Fatalf("round-tripped transactions do not match originals")
	}
}

func TestDeserializeBlockTruncatedHeader(t *testing.T) {
	if _, err := DeserializeBlock([]byte{0x01, 0x02}); err == nil {
		t.Fatalf("expected error decoding a block shorter than the header")
	}
}

func TestGenesisBlockFixedFields(t *testing.T) {
	block, err := NewGenesisBlock()
	if err != nil {
		t.Fatalf("NewGenesisBlock: %v", err)
	}
	if block.Header.Height != 0 {
		t.Fatalf("genesis height must be 0")
	}
	if block.Header.PrevHash != NullHash {
		t.Fatalf("genesis prevHash must be null")
	}
	if block.Header.Bits != GenesisBits {
		t.Fatalf("genesis bits mismatch")
	}
	if block.Header.Time != GenesisTime {
		t.Fatalf("genesis time mismatch")
	}
	if block.Header.Nonce != GenesisNonce {
		t.Fatalf("genesis nonce mismatch")
	}
	if !block.ValidMerkleRoot() {
		t.Fatalf("genesis merkle root must validate")
	}
	cb := block.Coinbase()
	if cb == nil || !cb.IsCoinbase() {
		t.Fatalf("genesis block's first transaction must be a coinbase")
	}
	if cb.Position != (Position{X: 0, Y: 0}) {
		t.Fatalf("genesis coinbase must mint (0,0)")
	}
	if cb.Color != GenesisColor {
		t.Fatalf("genesis coinbase color mismatch")
	}
}
