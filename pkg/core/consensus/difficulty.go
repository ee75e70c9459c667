// Package consensus implements the proof-of-work arithmetic the blockchain
// engine uses for fork choice: turning a block header's compact difficulty
// bits into the cumulative "work" a chain of blocks represents.
package consensus

import (
	"math/big"

	"github.com/pixelchain/pixelchain/pkg/core/types"
)

// maxTarget256 is 2^256, used as the numerator of the work formula.
var maxTarget256 = new(big.Int).Lsh(big.NewInt(1), 256)

// WorkFor returns the work a single block with the given difficulty bits
// contributes to its chain's cumulative work: floor(2^256 / (target+1)).
// Lower targets (harder proofs) are worth proportionally more work, which
// is what makes cumulative work a sound fork-choice metric; a constant
// stub here would make every chain equally "heavy" regardless of
// difficulty and break reorg selection.
func WorkFor(bits uint32) *big.Int {
	target := types.GetTargetDifficulty(bits)
	denom := new(big.Int).Add(target, big.NewInt(1))
	return new(big.Int).Div(maxTarget256, denom)
}
