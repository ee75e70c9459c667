package types

import (
	"crypto/ecdsa"
	"fmt"

	"github.com/pixelchain/pixelchain/pkg/codec"
	"github.com/pixelchain/pixelchain/pkg/core/crypto"
)

// TransactionVersion is the only wire version this chain currently emits.
const TransactionVersion uint8 = 1

// Transaction transfers or mints ownership of exactly one pixel. A coinbase
// transaction (Input == NullHash) mints a pixel that has never been owned;
// every other transaction spends the pixel most recently owned by Input.
type Transaction struct {
	Version   uint8
	Input     Hash   // ID of the transaction that last owned this pixel, or NullHash for a mint.
	Position  Position
	Color     Color
	Owner     PublicKey // New owner of the pixel.
	Signature []byte    // Signs the sighash preimage with the previous owner's key.

	id      Hash
	cached  bool
	fromSet bool
}

// FromPrevious starts a builder for a transaction spending prev's pixel: it
// copies prev's position and sets Input to prev's id, since a transfer's
// pixel identity comes from the transaction it spends, not a fresh
// coordinate. At is rejected once FromPrevious has been used.
func FromPrevious(prev *Transaction) *Transaction {
	return &Transaction{
		Version:  TransactionVersion,
		Input:    prev.ID(),
		Position: prev.Position,
		fromSet:  true,
	}
}

// Mint starts a builder for a transaction minting a never-before-owned
// pixel; its position is supplied with At.
func Mint() *Transaction {
	return &Transaction{Version: TransactionVersion, Input: NullHash}
}

// At sets the pixel position and returns tx for chaining. It panics if tx
// was started with FromPrevious, whose position is fixed by the spent
// transaction.
func (tx *Transaction) At(p Position) *Transaction {
	if tx.fromSet {
		panic("types: At is not valid on a transaction built with FromPrevious")
	}
	tx.Position = p
	tx.cached = false
	return tx
}

// Colored sets the pixel color and returns tx for chaining.
func (tx *Transaction) Colored(c Color) *Transaction {
	tx.Color = c
	tx.cached = false
	return tx
}

// To sets the new owner and returns tx for chaining.
func (tx *Transaction) To(owner PublicKey) *Transaction {
	tx.Owner = owner
	tx.cached = false
	return tx
}

// IsCoinbase reports whether tx mints a pixel rather than spending one.
func (tx *Transaction) IsCoinbase() bool {
	return tx.Input.IsZero()
}

// IsAdjacentTo reports whether tx's pixel is Manhattan-adjacent to other.
func (tx *Transaction) IsAdjacentTo(other Position) bool {
	return tx.Position.IsAdjacentTo(other)
}

// sighashPreimage serializes tx with an empty signature, which is what both
// Sign and IsValidSignature must hash to agree on a digest.
func (tx *Transaction) sighashPreimage() []byte {
	w := codec.NewWriter()
	w.U8(tx.Version)
	w.Bytes(tx.Input.Bytes())
	w.I32(tx.Position.X)
	w.I32(tx.Position.Y)
	w.U32(uint32(tx.Color))
	w.Bytes(tx.Owner.Bytes())
	w.U8(0)
	return w.Finish()
}

// Sighash returns the digest that Sign and IsValidSignature operate over.
func (tx *Transaction) Sighash() Hash {
	return Dhash(tx.sighashPreimage())
}

// Sign signs tx's sighash with priv, which must belong to the previous
// owner of the pixel (or to whoever is minting it, for a coinbase), and
// stores the resulting signature on tx.
func (tx *Transaction) Sign(priv *ecdsa.PrivateKey) error {
	if err := tx.Color.Validate(); err != nil {
		return err
	}
	digest := tx.Sighash()
	sig, err := crypto.Sign(priv, digest.Bytes())
	if err != nil {
		return fmt.Errorf("sign transaction: %w", err)
	}
	tx.Signature = sig
	tx.cached = false
	return nil
}

// IsValidSignature reports whether tx.Signature is a valid signature over
// tx's sighash by prevOwner.
func (tx *Transaction) IsValidSignature(prevOwner PublicKey) bool {
	digest := tx.Sighash()
	return crypto.Verify(prevOwner.Bytes(), digest.Bytes(), tx.Signature)
}

// Serialize returns the full wire encoding of tx, signature included.
func (tx *Transaction) Serialize() []byte {
	w := codec.NewWriter()
	w.U8(tx.Version)
	w.Bytes(tx.Input.Bytes())
	w.I32(tx.Position.X)
	w.I32(tx.Position.Y)
	w.U32(uint32(tx.Color))
	w.Bytes(tx.Owner.Bytes())
	w.U8(uint8(len(tx.Signature)))
	w.Bytes(tx.Signature)
	return w.Finish()
}

// DeserializeTransaction decodes a transaction from its wire encoding.
func DeserializeTransaction(b []byte) (*Transaction, error) {
	return decodeTransaction(codec.NewReader(b))
}

// decodeTransaction reads one transaction off r, leaving r positioned right
// after it. DeserializeBlock uses this to decode a run of transactions out
// of one shared buffer; DeserializeTransaction is a thin wrapper around it.
func decodeTransaction(r *codec.Reader) (*Transaction, error) {
	version, err := r.U8()
	if err != nil {
		return nil, fmt.Errorf("transaction version: %w", err)
	}
	inputBytes, err := r.Bytes(HashSize)
	if err != nil {
		return nil, fmt.Errorf("transaction input: %w", err)
	}
	input, err := HashFromBytes(inputBytes)
	if err != nil {
		return nil, err
	}
	x, err := r.I32()
	if err != nil {
		return nil, fmt.Errorf("transaction x: %w", err)
	}
	y, err := r.I32()
	if err != nil {
		return nil, fmt.Errorf("transaction y: %w", err)
	}
	color, err := r.U32()
	if err != nil {
		return nil, fmt.Errorf("transaction color: %w", err)
	}
	ownerBytes, err := r.Bytes(PublicKeySize)
	if err != nil {
		return nil, fmt.Errorf("transaction owner: %w", err)
	}
	var owner PublicKey
	copy(owner[:], ownerBytes)
	sigLen, err := r.U8()
	if err != nil {
		return nil, fmt.Errorf("transaction signature length: %w", err)
	}
	sig, err := r.Bytes(int(sigLen))
	if err != nil {
		return nil, fmt.Errorf("transaction signature: %w", err)
	}
	return &Transaction{
		Version:   version,
		Input:     input,
		Position:  Position{X: x, Y: y},
		Color:     Color(color),
		Owner:     owner,
		Signature: sig,
	}, nil
}

// hash is Dhash of the full serialization, kept in internal byte order.
func (tx *Transaction) hash() Hash {
	if !tx.cached {
		tx.id = Dhash(tx.Serialize())
		tx.cached = true
	}
	return tx.id
}

// ID returns the transaction's display identifier.
func (tx *Transaction) ID() Hash {
	return tx.hash()
}
