// Package crypto adapts the secp256k1 signing primitives used throughout the
// chain onto github.com/ethereum/go-ethereum/crypto, giving every signature
// deterministic, verifiable R||S||V encoding without pulling in an address
// or wallet format of its own. It operates on raw digests and compressed
// public key bytes so that pkg/core/types can depend on it without a cycle.
package crypto

import (
	"crypto/ecdsa"
	"fmt"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// SignatureSize is the wire size of a signature: 32-byte R, 32-byte S, and a
// single recovery byte.
const SignatureSize = 65

// Sign produces a deterministic 65-byte signature over the 32-byte digest
// using priv.
func Sign(priv *ecdsa.PrivateKey, digest []byte) ([]byte, error) {
	sig, err := ethcrypto.Sign(digest, priv)
	if err != nil {
		return nil, fmt.Errorf("sign: %w", err)
	}
	return sig, nil
}

// Verify reports whether sig is a valid signature over digest by the key
// whose compressed 33-byte encoding is pubKey. It accepts either the 64-byte
// R||S form or the full 65-byte R||S||V form; the recovery byte, if present,
// is not checked since the signer's identity comes from pubKey, not from
// public key recovery.
func Verify(pubKey, digest, sig []byte) bool {
	if len(sig) != SignatureSize && len(sig) != SignatureSize-1 {
		return false
	}
	if len(pubKey) == 0 {
		return false
	}
	rs := sig[:SignatureSize-1]
	return ethcrypto.VerifySignature(pubKey, digest, rs)
}

// GenerateKey returns a new secp256k1 private key.
func GenerateKey() (*ecdsa.PrivateKey, error) {
	return ethcrypto.GenerateKey()
}

// PrivateKeyFromSeed derives a deterministic private key from a 32-byte
// scalar, used to reconstruct fixed well-known keys (the genesis owner)
// without embedding curve points directly in source.
func PrivateKeyFromSeed(seed [32]byte) (*ecdsa.PrivateKey, error) {
	priv, err := ethcrypto.ToECDSA(seed[:])
	if err != nil {
		return nil, fmt.Errorf("derive private key from seed: %w", err)
	}
	return priv, nil
}

// CompressPubkey returns the 33-byte compressed encoding of pub.
func CompressPubkey(pub *ecdsa.PublicKey) []byte {
	return ethcrypto.CompressPubkey(pub)
}

// DecompressPubkey parses a 33-byte compressed encoding back into a public key.
func DecompressPubkey(pubKey []byte) (*ecdsa.PublicKey, error) {
	pub, err := ethcrypto.DecompressPubkey(pubKey)
	if err != nil {
		return nil, fmt.Errorf("decompress public key: %w", err)
	}
	return pub, nil
}
