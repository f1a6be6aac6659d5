package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/FortuneBlockTeam/fortuneblock/conf"
	"github.com/FortuneBlockTeam/fortuneblock/log"
	"github.com/FortuneBlockTeam/fortuneblock/logic/lblock"
	"github.com/FortuneBlockTeam/fortuneblock/model/block"
	"github.com/FortuneBlockTeam/fortuneblock/model/blockindex"
	"github.com/FortuneBlockTeam/fortuneblock/model/chain"
	"github.com/FortuneBlockTeam/fortuneblock/model/chainparams"
	"github.com/FortuneBlockTeam/fortuneblock/model/mempool"
	"github.com/FortuneBlockTeam/fortuneblock/model/script"
	"github.com/FortuneBlockTeam/fortuneblock/persist/blkdb"
	"github.com/FortuneBlockTeam/fortuneblock/service/mining"
	"github.com/FortuneBlockTeam/fortuneblock/service/smartnode"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fortuneblock: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := conf.InitConfig("")
	if err != nil {
		return err
	}
	if err := log.Init(filepath.Join(cfg.DataDir, "logs"), cfg.LogLevel); err != nil {
		return err
	}

	params := chainparams.SelectNetwork(cfg.Chain.Network)
	if params == nil {
		return fmt.Errorf("unknown network %q", cfg.Chain.Network)
	}

	mempool.InitMempool()
	chain.InitGlobalChain(chain.NewChain(params))
	chainView := chain.GetInstance()

	btd, err := blkdb.NewBlockTreeDB(filepath.Join(cfg.DataDir, "blocks", "index"))
	if err != nil {
		return err
	}
	defer btd.Close()
	if err := btd.LoadChain(chainView); err != nil {
		return err
	}

	var payoutScript *script.Script
	if cfg.Mining.MiningAddr != "" {
		addr, err := script.AddressFromString(cfg.Mining.MiningAddr)
		if err != nil {
			return fmt.Errorf("bad mining address %q: %v", cfg.Mining.MiningAddr, err)
		}
		payoutScript = addr.PayToPubKeyHashScript()
	}

	miner := mining.NewMiner(mining.MinerConfig{
		Pool:           mempool.GetInstance(),
		ChainView:      chainView,
		ChainParams:    params,
		PayoutScript:   payoutScript,
		ProcessBlock:   makeBlockProcessor(chainView, mempool.GetInstance(), btd),
		SmartnodePayer: smartnode.NewPayer(params, nil),
		ReservePayer:   smartnode.NewPayer(params, nil),
	})
	miner.SetNumWorkers(int32(cfg.Mining.Workers))

	if payoutScript != nil {
		if err := miner.Start(); err != nil {
			return err
		}
		defer miner.Stop()
	} else {
		log.Warn("no mining address configured, miner idle")
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	<-interrupt
	log.Info("shutdown requested")

	return btd.SaveChain(chainView)
}

// makeBlockProcessor connects solved blocks back into the local chain
// state: full re-validation, index extension, pool eviction and
// persistence.
func makeBlockProcessor(chainView *chain.Chain, pool *mempool.TxMempool,
	btd *blkdb.BlockTreeDB) mining.ProcessBlockFunc {

	return func(blk *block.Block) (bool, error) {
		tip := chainView.Tip()
		if tip != nil && blk.Header.HashPrevBlock != *tip.GetBlockHash() {
			return false, nil
		}
		if err := lblock.CheckBlock(blk, true, true); err != nil {
			return false, err
		}
		if err := lblock.ContextualCheckBlock(blk, tip); err != nil {
			return false, err
		}

		bi := blockindex.NewBlockIndex(&blk.Header)
		bi.Prev = tip
		if tip != nil {
			bi.Height = tip.Height + 1
		}
		bi.TxCount = int32(len(blk.Txs))
		if out := blk.Txs[0].GetTxOut(0); out != nil {
			bi.CoinbasePayee = out.GetScriptPubKey()
		}

		chainView.AddToIndexMap(bi)
		chainView.SetTip(bi)
		pool.RemoveForBlock(blk.Txs)

		if err := btd.WriteBlockIndex(bi); err != nil {
			return false, err
		}
		if err := btd.WriteTipHash(bi.GetBlockHash()); err != nil {
			return false, err
		}
		return true, nil
	}
}
