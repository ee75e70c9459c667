package types

import (
	"fmt"
	"math/big"
	"time"

	"github.com/pixelchain/pixelchain/pkg/codec"
)

// HeaderSize is the fixed wire size of a BlockHeader.
const HeaderSize = 4 + 4 + 4 + 4 + HashSize + HashSize + 4

// MaxTimeOffset bounds how far into the future a header's timestamp may sit
// relative to the local clock before it is rejected.
const MaxTimeOffset = 7200 * time.Second

// BlockHeader is the 84-byte fixed-size metadata that commits to a block's
// transactions and anchors it to its parent.
type BlockHeader struct {
	Version    uint32
	Height     uint32
	Time       uint32
	Bits       uint32
	PrevHash   Hash
	MerkleRoot Hash
	Nonce      uint32

	id     Hash
	cached bool
}

// Serialize returns the 84-byte little-endian encoding of h.
func (h *BlockHeader) Serialize() []byte {
	w := codec.NewWriter()
	w.U32(h.Version)
	w.U32(h.Height)
	w.U32(h.Time)
	w.U32(h.Bits)
	w.Bytes(h.PrevHash.Bytes())
	w.Bytes(h.MerkleRoot.Bytes())
	w.U32(h.Nonce)
	return w.Finish()
}

// DeserializeBlockHeader decodes an 84-byte header.
func DeserializeBlockHeader(b []byte) (*BlockHeader, error) {
	r := codec.NewReader(b)
	h := &BlockHeader{}
	var err error
	if h.Version, err = r.U32(); err != nil {
		return nil, fmt.Errorf("header version: %w", err)
	}
	if h.Height, err = r.U32(); err != nil {
		return nil, fmt.Errorf("header height: %w", err)
	}
	if h.Time, err = r.U32(); err != nil {
		return nil, fmt.Errorf("header time: %w", err)
	}
	if h.Bits, err = r.U32(); err != nil {
		return nil, fmt.Errorf("header bits: %w", err)
	}
	prevBytes, err := r.Bytes(HashSize)
	if err != nil {
		return nil, fmt.Errorf("header prevHash: %w", err)
	}
	if h.PrevHash, err = HashFromBytes(prevBytes); err != nil {
		return nil, err
	}
	rootBytes, err := r.Bytes(HashSize)
	if err != nil {
		return nil, fmt.Errorf("header merkleRoot: %w", err)
	}
	if h.MerkleRoot, err = HashFromBytes(rootBytes); err != nil {
		return nil, err
	}
	if h.Nonce, err = r.U32(); err != nil {
		return nil, fmt.Errorf("header nonce: %w", err)
	}
	return h, nil
}

// hash is Dhash of the serialization, cached until IncreaseNonce invalidates it.
func (h *BlockHeader) hash() Hash {
	if !h.cached {
		h.id = Dhash(h.Serialize())
		h.cached = true
	}
	return h.id
}

// ID returns the header's display identifier.
func (h *BlockHeader) ID() Hash {
	return h.hash()
}

// IncreaseNonce bumps the header's nonce and invalidates the cached id, as
// a miner does when searching for a proof of work.
func (h *BlockHeader) IncreaseNonce() {
	h.Nonce++
	h.cached = false
}

// GetTargetDifficulty decodes bits' compact target representation: the low
// 24 bits are the mantissa, the high byte e gives the byte shift, so that
// target = mantissa << (8 * (e - 3)).
func GetTargetDifficulty(bits uint32) *big.Int {
	exponent := bits >> 24
	mantissa := bits & 0x00FFFFFF
	target := new(big.Int).SetUint64(uint64(mantissa))
	shift := 8 * (int(exponent) - 3)
	if shift > 0 {
		target.Lsh(target, uint(shift))
	} else if shift < 0 {
		target.Rsh(target, uint(-shift))
	}
	return target
}

// ValidProofOfWork reports whether the header's id, interpreted as a
// big-endian integer, is at most the target decoded from Bits.
func (h *BlockHeader) ValidProofOfWork() bool {
	target := GetTargetDifficulty(h.Bits)
	display := h.hash()
	reversed := make([]byte, HashSize)
	copy(reversed, display[:])
	reverse(reversed)
	hashInt := new(big.Int).SetBytes(reversed)
	return hashInt.Cmp(target) <= 0
}

// ValidTimestamp rejects headers stamped more than MaxTimeOffset into the future.
func (h *BlockHeader) ValidTimestamp() bool {
	limit := time.Now().Add(MaxTimeOffset).Unix()
	return int64(h.Time) <= limit
}
