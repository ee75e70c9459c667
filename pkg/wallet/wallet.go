// Package wallet provides key file management for pixelchain's secp256k1
// keys: generate, persist to disk, and reload for later signing.
package wallet

import (
	"crypto/ecdsa"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/pixelchain/pixelchain/pkg/core/types"
)

// GenerateKeyPair returns a new secp256k1 keypair.
func GenerateKeyPair() (*ecdsa.PrivateKey, types.PublicKey, error) {
	priv, err := crypto.GenerateKey()
	if err != nil {
		return nil, types.PublicKey{}, fmt.Errorf("generate key: %w", err)
	}
	return priv, types.PublicKeyFromECDSA(&priv.PublicKey), nil
}

// SaveKey writes priv to filename as hex-encoded bytes.
func SaveKey(filename string, priv *ecdsa.PrivateKey) error {
	hexKey := hex.EncodeToString(crypto.FromECDSA(priv))
	if err := os.WriteFile(filename, []byte(hexKey), 0600); err != nil {
		return fmt.Errorf("save key %s: %w", filename, err)
	}
	return nil
}

// LoadKey reads a hex-encoded private key previously written by SaveKey.
func LoadKey(filename string) (*ecdsa.PrivateKey, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("load key %s: %w", filename, err)
	}
	priv, err := crypto.HexToECDSA(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse key %s: %w", filename, err)
	}
	return priv, nil
}

// SignTransaction signs tx with priv, which must be the previous owner's
// key for anything but a coinbase.
func SignTransaction(tx *types.Transaction, priv *ecdsa.PrivateKey) error {
	return tx.Sign(priv)
}

// PublicKeyString renders pub as the hex address callers can hand out.
func PublicKeyString(pub types.PublicKey) string {
	return hex.EncodeToString(pub.Bytes())
}
