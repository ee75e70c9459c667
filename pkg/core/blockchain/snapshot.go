package blockchain

import (
	"fmt"
	"math/big"

	"github.com/pixelchain/pixelchain/pkg/core/types"
)

// WorkEntry and the other *Entry types give ChainSnapshot a defined field
// order for its maps, so two snapshots of the same chain state serialize
// identically regardless of Go's unordered map iteration.
type WorkEntry struct {
	Hash types.Hash
	Work *big.Int
}

type PrevEntry struct {
	Hash types.Hash
	Prev types.Hash
}

type HeightEntry struct {
	Hash   types.Hash
	Height int64
}

type NextEntry struct {
	Hash types.Hash
	Next types.Hash
}

type PixelEntry struct {
	Position types.Position
	Owner    types.Hash
}

// ChainSnapshot is the serializable form of a ChainIndex: prototype-style
// mutable maps become an explicit value with defined field order.
type ChainSnapshot struct {
	Work   []WorkEntry
	Prev   []PrevEntry
	Height []HeightEntry
	Next   []NextEntry
	Tip    types.Hash
	Pixels []PixelEntry
}

func snapshotIndex(idx *ChainIndex) ChainSnapshot {
	snap := ChainSnapshot{Tip: idx.Tip}
	for h, w := range idx.Work {
		snap.Work = append(snap.Work, WorkEntry{Hash: h, Work: new(big.Int).Set(w)})
	}
	for h, p := range idx.Prev {
		snap.Prev = append(snap.Prev, PrevEntry{Hash: h, Prev: p})
	}
	for h, height := range idx.Height {
		snap.Height = append(snap.Height, HeightEntry{Hash: h, Height: height})
	}
	for h, n := range idx.Next {
		snap.Next = append(snap.Next, NextEntry{Hash: h, Next: n})
	}
	for pos, tx := range idx.Pixels {
		snap.Pixels = append(snap.Pixels, PixelEntry{Position: pos, Owner: tx.ID()})
	}
	return snap
}

// restoreIndex rebuilds a ChainIndex from snap, resolving each pixel's
// owning transaction id against txs.
func restoreIndex(snap ChainSnapshot, txs TransactionStore) (*ChainIndex, error) {
	idx := NewChainIndex()
	idx.Tip = snap.Tip
	for _, e := range snap.Work {
		idx.Work[e.Hash] = new(big.Int).Set(e.Work)
	}
	for _, e := range snap.Prev {
		idx.Prev[e.Hash] = e.Prev
	}
	for _, e := range snap.Height {
		idx.Height[e.Hash] = e.Height
		idx.HashByHeight[e.Height] = e.Hash
	}
	for _, e := range snap.Next {
		idx.Next[e.Hash] = e.Next
	}
	for _, e := range snap.Pixels {
		tx, ok, err := txs.Get(e.Owner)
		if err != nil {
			return nil, fmt.Errorf("resolve pixel owner %s at %+v: %w", e.Owner, e.Position, err)
		}
		if !ok {
			return nil, fmt.Errorf("pixel owner %s at %+v not found in transaction store", e.Owner, e.Position)
		}
		idx.Pixels[e.Position] = tx
	}
	return idx, nil
}
