package config

import "github.com/pixelchain/pixelchain/pkg/core/types"

// NetworkConfig holds the network-wide parameters a node needs to agree on
// genesis and reorg limits with its peers.
type NetworkConfig struct {
	Name          string
	GenesisBits   uint32
	GenesisTime   uint32
	GenesisNonce  uint32
	MaxRewind     int64
	MaxTimeOffset int64
}

// MainnetConfig is the single fixed network this chain runs: the genesis
// constants match the header built by types.NewGenesisBlock.
var MainnetConfig = NetworkConfig{
	Name:          "pixelchain-main",
	GenesisBits:   types.GenesisBits,
	GenesisTime:   types.GenesisTime,
	GenesisNonce:  types.GenesisNonce,
	MaxRewind:     100,
	MaxTimeOffset: 7200,
}
