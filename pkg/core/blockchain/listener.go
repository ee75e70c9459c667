package blockchain

import "github.com/pixelchain/pixelchain/pkg/core/types"

// ChainListener observes confirmed and unconfirmed blocks. OnConfirm and
// OnUnconfirm are invoked synchronously, in the documented reorg order,
// after the engine's lock has been released; they may call the chain's
// read-only queries but must not call back into its mutating entry points.
type ChainListener interface {
	OnConfirm(block *types.Block)
	OnUnconfirm(block *types.Block)
}

// noopListener discards every notification, used when a Chain is
// constructed without an explicit listener.
type noopListener struct{}

func (noopListener) OnConfirm(*types.Block)   {}
func (noopListener) OnUnconfirm(*types.Block) {}
