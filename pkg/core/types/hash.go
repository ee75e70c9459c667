package types

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// HashSize is the length of every hash in bytes.
const HashSize = 32

// Hash is a 32-byte digest, always held in its internal (little-endian,
// storage/wire) byte order. NullHash is the all-zero hash used as the
// coinbase input and as the genesis header's PrevHash.
type Hash [HashSize]byte

// NullHash is the all-zeroes hash.
var NullHash Hash

// HashFromBytes copies a little-endian byte slice into a Hash.
func HashFromBytes(b []byte) (Hash, error) {
	if len(b) != HashSize {
		return Hash{}, fmt.Errorf("hash must be %d bytes, got %d", HashSize, len(b))
	}
	var h Hash
	copy(h[:], b)
	return h, nil
}

// HashFromHex parses the big-endian display form (as produced by Hex/String)
// back into its internal little-endian byte order.
func HashFromHex(s string) (Hash, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Hash{}, fmt.Errorf("invalid hex: %w", err)
	}
	if len(b) != HashSize {
		return Hash{}, fmt.Errorf("hash must be %d bytes, got %d", HashSize, len(b))
	}
	reverse(b)
	var h Hash
	copy(h[:], b)
	return h, nil
}

// Bytes returns the internal little-endian byte representation.
func (h Hash) Bytes() []byte {
	return h[:]
}

// Hex returns the big-endian display form: the internal bytes reversed and
// hex-encoded, matching the convention external ids use throughout the chain.
func (h Hash) Hex() string {
	b := make([]byte, HashSize)
	copy(b, h[:])
	reverse(b)
	return hex.EncodeToString(b)
}

// String implements fmt.Stringer and returns the display form.
func (h Hash) String() string {
	return h.Hex()
}

// IsZero reports whether every byte is 0x00.
func (h Hash) IsZero() bool {
	return h == NullHash
}

// Dhash computes SHA256(SHA256(data)) and returns it in internal
// (little-endian) byte order, as produced by the digest primitive itself.
func Dhash(data []byte) Hash {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	return Hash(second)
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
