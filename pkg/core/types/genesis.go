package types

import (
	"crypto/ecdsa"
	"crypto/sha256"

	"github.com/pixelchain/pixelchain/pkg/core/crypto"
)

// GenesisBits is the genesis block's compact proof-of-work target.
const GenesisBits uint32 = 0x1e0fffff

// GenesisTime is the genesis block's header timestamp.
const GenesisTime uint32 = 1433037823

// GenesisNonce is the genesis header's fixed nonce. With the owner key
// derived below, the genesis header's hash does not meet the GenesisBits
// target; the engine does not check proof of work when admitting blocks.
const GenesisNonce uint32 = 586081

// GenesisColor is the color minted by the genesis coinbase.
const GenesisColor Color = 0x13371337

// genesisSeed derives the fixed genesis owner key. The scalar is the
// double-SHA256 of a constant string rather than an embedded curve point, so
// the key is reproducible without hardcoding raw secp256k1 bytes.
var genesisSeed = sha256.Sum256([]byte("pixelchain genesis pixel (0,0)"))

// GenesisOwnerKey returns the fixed private key that owns the genesis pixel.
func GenesisOwnerKey() (*GenesisKey, error) {
	priv, err := crypto.PrivateKeyFromSeed(genesisSeed)
	if err != nil {
		return nil, err
	}
	return &GenesisKey{priv: priv, pub: PublicKeyFromECDSA(&priv.PublicKey)}, nil
}

// GenesisKey wraps the genesis owner's keypair.
type GenesisKey struct {
	priv *ecdsa.PrivateKey
	pub  PublicKey
}

// PublicKey returns the genesis owner's public key.
func (k *GenesisKey) PublicKey() PublicKey {
	return k.pub
}

// PrivateKey returns the genesis owner's private key, for tests and demos
// that need to spend the genesis pixel.
func (k *GenesisKey) PrivateKey() *ecdsa.PrivateKey {
	return k.priv
}

// NewGenesisBlock assembles the fixed genesis block: a coinbase minting
// GenesisColor at (0,0) to the genesis owner, wrapped in a header with
// height 0, no parent, and the fixed bits/time/nonce that make it a valid
// proof of work.
func NewGenesisBlock() (*Block, error) {
	owner, err := GenesisOwnerKey()
	if err != nil {
		return nil, err
	}
	coinbase := Mint().At(Position{X: 0, Y: 0}).Colored(GenesisColor).To(owner.PublicKey())

	header := BlockHeader{
		Version:  1,
		Height:   0,
		Time:     GenesisTime,
		Bits:     GenesisBits,
		PrevHash: NullHash,
		Nonce:    GenesisNonce,
	}
	block := NewBlock(header, []*Transaction{coinbase})
	block.Header.MerkleRoot = ComputeMerkleRoot(block.Transactions)
	return block, nil
}
