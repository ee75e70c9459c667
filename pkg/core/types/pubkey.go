package types

import (
	"crypto/ecdsa"
	"fmt"

	"github.com/pixelchain/pixelchain/pkg/core/crypto"
)

// PublicKeySize is the wire size of a compressed secp256k1 point.
const PublicKeySize = 33

// PublicKey is a compressed secp256k1 point: the fixed-length wire encoding
// the transaction codec reads and writes for a pixel's owner.
type PublicKey [PublicKeySize]byte

// PublicKeyFromECDSA compresses an *ecdsa.PublicKey into its wire form.
func PublicKeyFromECDSA(pub *ecdsa.PublicKey) PublicKey {
	var pk PublicKey
	copy(pk[:], crypto.CompressPubkey(pub))
	return pk
}

// ECDSA decompresses the wire form back into an *ecdsa.PublicKey for use by
// the crypto adapter's Verify.
func (pk PublicKey) ECDSA() (*ecdsa.PublicKey, error) {
	pub, err := crypto.DecompressPubkey(pk[:])
	if err != nil {
		return nil, fmt.Errorf("bad public key encoding: %w", err)
	}
	return pub, nil
}

// Bytes returns the raw 33-byte compressed point.
func (pk PublicKey) Bytes() []byte {
	return pk[:]
}

// IsZero reports whether pk has never been assigned a point.
func (pk PublicKey) IsZero() bool {
	return pk == PublicKey{}
}
