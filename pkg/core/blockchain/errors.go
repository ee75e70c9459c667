package blockchain

import "errors"

// Decode errors surface malformed wire data found while validating a
// transaction's fields; codec-level errors (truncated reads, bad varints)
// come from pkg/codec and bubble up wrapped rather than duplicated here.
var ErrBadPublicKey = errors.New("blockchain: malformed public key encoding")

// Transaction errors reject an individual transaction during block validation.
var (
	ErrMissingSignature  = errors.New("blockchain: transaction is missing a signature")
	ErrMissingPreviousTx = errors.New("blockchain: referenced previous transaction not found")
	ErrPositionConflict  = errors.New("blockchain: transaction position does not match its input")
)

// Block errors reject a whole candidate block.
var (
	ErrInvalidMerkleRoot = errors.New("blockchain: block merkle root does not match its transactions")
	ErrEmptyTransactions = errors.New("blockchain: block has no transactions")
	ErrCoinbaseNotFirst  = errors.New("blockchain: block's first transaction is not a coinbase")
	ErrOversizeBlock     = errors.New("blockchain: block exceeds the maximum serialized size")
)

// Chain errors reject a block at the engine's admission boundary.
var (
	ErrUnknownParent       = errors.New("blockchain: block's parent is not known to the chain")
	ErrNonAdjacentCoinbase = errors.New("blockchain: coinbase pixel is not adjacent to any owned pixel")
	ErrPixelAlreadyMined   = errors.New("blockchain: coinbase pixel is already owned")
	ErrSignatureMismatch   = errors.New("blockchain: transaction signature does not match the pixel's owner")
	ErrReorgTooDeep        = errors.New("blockchain: reorg common ancestor is beyond the pruning window")
)

// ErrBadSignatureEncoding flags a signature whose length doesn't match
// either accepted encoding, so it can't even be handed to a verifier,
// distinct from ErrSignatureMismatch's "well-formed but wrong signer".
var ErrBadSignatureEncoding = errors.New("blockchain: signature has an invalid encoding")
