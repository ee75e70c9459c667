package blockchain

import "github.com/pixelchain/pixelchain/pkg/core/types"

// locatorRecentCount is how many of the most recent blocks are listed
// individually before the locator switches to exponential gaps.
const locatorRecentCount = 10

// GetBlockLocator returns a sparse list of active-chain block hashes used
// by sync protocols to negotiate a common ancestor: the 10 most recent
// blocks, then blocks at exponentially increasing gaps (1, 2, 4, 8, ...)
// back to height 0.
func (c *Chain) GetBlockLocator() []types.Hash {
	c.mu.RLock()
	defer c.mu.RUnlock()

	tipHeight, ok := c.index.heightOf(c.index.Tip)
	if !ok || tipHeight < 0 {
		return nil
	}

	var locator []types.Hash
	height := tipHeight
	step := int64(1)
	for height >= 0 {
		hash, ok := c.index.HashByHeight[height]
		if !ok {
			break
		}
		locator = append(locator, hash)
		if len(locator) >= locatorRecentCount {
			step *= 2
		}
		height -= step
	}
	return locator
}
