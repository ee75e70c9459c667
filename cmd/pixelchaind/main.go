// pixelchaind is a demo entrypoint: it boots the chain engine, optionally
// backed by BadgerDB, admits the genesis block, and prints the resulting
// tip and block locator. It does no mining and speaks no network protocol.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pixelchain/pixelchain/pkg/core/blockchain"
	"github.com/pixelchain/pixelchain/pkg/core/types"
)

func main() {
	dataDir := flag.String("data", "", "BadgerDB directory; empty runs fully in memory")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Sugar().With("run_id", uuid.NewString())

	chain, closeStores, err := buildChain(*dataDir, log)
	if err != nil {
		log.Fatalw("build chain", "error", err)
	}
	defer closeStores()

	genesis, err := types.NewGenesisBlock()
	if err != nil {
		log.Fatalw("build genesis block", "error", err)
	}

	unconfirmed, confirmed, err := chain.ProposeNewBlock(genesis)
	if err != nil {
		log.Fatalw("admit genesis block", "error", err)
	}
	log.Infow("admitted genesis block",
		"id", genesis.ID(), "unconfirmed", unconfirmed, "confirmed", confirmed)

	tip, ok, err := chain.GetTipBlock()
	if err != nil {
		log.Fatalw("load tip", "error", err)
	}
	if !ok {
		log.Fatalw("chain has no tip after admitting genesis")
	}

	fmt.Printf("tip: %s (height %d)\n", tip.ID(), tip.Height())
	fmt.Println("locator:")
	for _, h := range chain.GetBlockLocator() {
		fmt.Printf("  %s\n", h)
	}
}

func buildChain(dataDir string, log *zap.SugaredLogger) (*blockchain.Chain, func(), error) {
	if dataDir == "" {
		blocks := blockchain.NewMemoryBlockStore()
		txs := blockchain.NewMemoryTransactionStore()
		return blockchain.New(blocks, txs, nil, log), func() {}, nil
	}

	blocks, err := blockchain.NewBadgerBlockStore(dataDir + "/blocks")
	if err != nil {
		return nil, nil, fmt.Errorf("open block store: %w", err)
	}
	txs, err := blockchain.NewBadgerTransactionStore(dataDir + "/txs")
	if err != nil {
		return nil, nil, fmt.Errorf("open transaction store: %w", err)
	}
	closeStores := func() {
		blocks.Close()
		txs.Close()
	}
	return blockchain.New(blocks, txs, nil, log), closeStores, nil
}
