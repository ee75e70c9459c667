package blockchain

import (
	"testing"

	"github.com/pixelchain/pixelchain/pkg/core/crypto"
	"github.com/pixelchain/pixelchain/pkg/core/types"
)

func TestMemoryBlockStoreRoundTrip(t *testing.T) {
	store := NewMemoryBlockStore()
	block, err := types.NewGenesisBlock()
	if err != nil {
		t.Fatalf("NewGenesisBlock: %v", err)
	}

	if has, _ := store.Has(block.ID()); has {
		t.Fatalf("empty store should not have the block yet")
	}
	if err := store.Set(block); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if has, _ := store.Has(block.ID()); !has {
		t.Fatalf("store should have the block after Set")
	}
	got, ok, err := store.Get(block.ID())
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if got.ID() != block.ID() {
		t.Fatalf("round-tripped block id mismatch")
	}
}

func TestMemoryTransactionStoreRoundTrip(t *testing.T) {
	store := NewMemoryTransactionStore()
	priv, _ := crypto.GenerateKey()
	owner := types.PublicKeyFromECDSA(&priv.PublicKey)
	tx := types.Mint().At(types.Position{X: 1, Y: 1}).Colored(1).To(owner)

	if err := store.Set(tx); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok, err := store.Get(tx.ID())
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if got.ID() != tx.ID() {
		t.Fatalf("round-tripped transaction id mismatch")
	}
	if has, _ := store.Has(types.Dhash([]byte("missing"))); has {
		t.Fatalf("store should not report an unknown id as present")
	}
}
