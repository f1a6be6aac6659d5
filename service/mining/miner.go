package mining

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/FortuneBlockTeam/fortuneblock/errcode"
	"github.com/FortuneBlockTeam/fortuneblock/log"
	"github.com/FortuneBlockTeam/fortuneblock/model/block"
	"github.com/FortuneBlockTeam/fortuneblock/model/blockindex"
	"github.com/FortuneBlockTeam/fortuneblock/model/chain"
	"github.com/FortuneBlockTeam/fortuneblock/model/chainparams"
	"github.com/FortuneBlockTeam/fortuneblock/model/mempool"
	"github.com/FortuneBlockTeam/fortuneblock/model/pow"
	"github.com/FortuneBlockTeam/fortuneblock/model/script"
)

const (
	// maxNonce is the portion of the nonce space searched before the
	// template is rebuilt with a new extra nonce.
	maxNonce = ^uint32(0) - 0x10000

	// nonceBatch is how many nonces are tried between staleness polls.
	nonceBatch = 0x400

	// templateRefreshAge forces a rebuild once the pool has changed and
	// the current template is older than this.
	templateRefreshAge = 60 * time.Second

	hashUpdateSec = 15
)

// ProcessBlockFunc submits a solved block to the rest of the node. The
// bool reports whether the block was accepted into the chain.
type ProcessBlockFunc func(blk *block.Block) (bool, error)

// MinerConfig carries the collaborators one mining session works with.
type MinerConfig struct {
	Pool         *mempool.TxMempool
	ChainView    *chain.Chain
	ChainParams  *chainparams.Params
	PayoutScript *script.Script
	ProcessBlock ProcessBlockFunc

	QuorumSource   QuorumCommitmentSource
	SmartnodePayer SmartnodePayer
	ReservePayer   ReservePayer
	PayloadBuilder CoinbasePayloadBuilder
}

// Miner drives one or more CPU workers, each assembling its own
// template and searching the nonce space over it. All counters are
// session scoped; nothing here is process-global.
type Miner struct {
	sync.Mutex
	cfg MinerConfig

	numWorkers       int32
	started          bool
	wg               sync.WaitGroup
	updateNumWorkers chan struct{}
	quit             chan struct{}
	speedMonitorQuit chan struct{}

	extraNonce       uint64
	hashesCompleted  uint64
	lastHashesPerSec uint64

	lastBlockTx   uint64
	lastBlockSize uint64
}

func NewMiner(cfg MinerConfig) *Miner {
	return &Miner{
		cfg:        cfg,
		numWorkers: 1,
	}
}

// Start fires up the configured number of workers. It is a no-op when
// the miner is already running; a missing payout script is an error.
func (m *Miner) Start() error {
	m.Lock()
	defer m.Unlock()

	if m.started {
		return nil
	}
	if m.cfg.PayoutScript == nil {
		return errcode.New(errcode.ErrNoMiningAddress)
	}

	m.quit = make(chan struct{})
	m.speedMonitorQuit = make(chan struct{})
	m.updateNumWorkers = make(chan struct{}, 1)
	go m.speedMonitor()
	go m.workerController()

	m.started = true
	log.Info("miner: started with %d workers", atomic.LoadInt32(&m.numWorkers))
	return nil
}

// Stop signals all workers and blocks until they exit.
func (m *Miner) Stop() {
	m.Lock()
	defer m.Unlock()

	if !m.started {
		return
	}
	close(m.quit)
	m.wg.Wait()
	close(m.speedMonitorQuit)
	m.started = false
	log.Info("miner: stopped")
}

// SetNumWorkers adjusts the number of hashing goroutines, live.
func (m *Miner) SetNumWorkers(n int32) {
	if n <= 0 {
		n = 1
	}
	atomic.StoreInt32(&m.numWorkers, n)

	m.Lock()
	defer m.Unlock()
	if m.started {
		select {
		case m.updateNumWorkers <- struct{}{}:
		default:
		}
	}
}

func (m *Miner) NumWorkers() int32 {
	return atomic.LoadInt32(&m.numWorkers)
}

// HashesPerSecond reports the speed measured over the last monitor
// window; zero until the first window completes.
func (m *Miner) HashesPerSecond() uint64 {
	return atomic.LoadUint64(&m.lastHashesPerSec)
}

// LastBlockStats returns the tx count and serialized size of the most
// recently generated template.
func (m *Miner) LastBlockStats() (uint64, uint64) {
	return atomic.LoadUint64(&m.lastBlockTx), atomic.LoadUint64(&m.lastBlockSize)
}

// speedMonitor folds per-batch hash counts into a rolling
// hashes-per-second figure.
func (m *Miner) speedMonitor() {
	ticker := time.NewTicker(hashUpdateSec * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			done := atomic.SwapUint64(&m.hashesCompleted, 0)
			hps := done / hashUpdateSec
			atomic.StoreUint64(&m.lastHashesPerSec, hps)
			if hps != 0 {
				log.Debug("miner: hash speed %d hashes/s", hps)
			}
		case <-m.speedMonitorQuit:
			return
		}
	}
}

// workerController keeps the live goroutine count in sync with the
// requested worker count.
func (m *Miner) workerController() {
	var workerQuits []chan struct{}

	launch := func() {
		q := make(chan struct{})
		workerQuits = append(workerQuits, q)
		m.wg.Add(1)
		go m.generateBlocks(q)
	}

	for i := int32(0); i < atomic.LoadInt32(&m.numWorkers); i++ {
		launch()
	}

	for {
		select {
		case <-m.updateNumWorkers:
			target := int(atomic.LoadInt32(&m.numWorkers))
			for len(workerQuits) < target {
				launch()
			}
			for len(workerQuits) > target {
				q := workerQuits[len(workerQuits)-1]
				workerQuits = workerQuits[:len(workerQuits)-1]
				close(q)
			}
		case <-m.quit:
			for _, q := range workerQuits {
				close(q)
			}
			return
		}
	}
}

// generateBlocks is one worker's loop: assemble a private template,
// search nonces over it, submit solutions, rebuild on stale tip or
// pool churn.
func (m *Miner) generateBlocks(workerQuit chan struct{}) {
	defer m.wg.Done()

	for {
		select {
		case <-workerQuit:
			return
		case <-m.quit:
			return
		default:
		}

		indexPrev := m.cfg.ChainView.Tip()
		if indexPrev == nil {
			time.Sleep(time.Second)
			continue
		}
		txUpdatedLast := m.cfg.Pool.GetTransactionsUpdated()

		ba := NewBlockAssembler(m.cfg.Pool, m.cfg.ChainView, m.cfg.ChainParams)
		ba.SetQuorumCommitmentSource(m.cfg.QuorumSource)
		ba.SetSmartnodePayer(m.cfg.SmartnodePayer)
		ba.SetReservePayer(m.cfg.ReservePayer)
		ba.SetCoinbasePayloadBuilder(m.cfg.PayloadBuilder)

		extraNonce := atomic.AddUint64(&m.extraNonce, 1)
		scriptSig := CoinbaseScriptSig(indexPrev.Height+1, extraNonce)

		bt, err := ba.CreateNewBlock(m.cfg.PayoutScript, scriptSig)
		if err != nil {
			log.Error("miner: template assembly failed: %v", err)
			time.Sleep(time.Second)
			continue
		}
		atomic.StoreUint64(&m.lastBlockTx, uint64(len(bt.Block.Txs)-1))
		atomic.StoreUint64(&m.lastBlockSize, uint64(bt.Block.SerializeSize()))

		if m.solveBlock(bt.Block, indexPrev, txUpdatedLast, workerQuit) {
			m.submitBlock(bt.Block)
		}
	}
}

// solveBlock iterates the nonce space, polling between batches for
// shutdown, a moved tip or pool churn, and refreshing the header
// timestamp. Returns true once a satisfying nonce is found.
func (m *Miner) solveBlock(blk *block.Block, indexPrev *blockindex.BlockIndex,
	txUpdatedLast uint64, workerQuit chan struct{}) bool {

	p := pow.Pow{}
	searchStart := time.Now()

	for blk.Header.Nonce < maxNonce {
		for i := 0; i < nonceBatch && blk.Header.Nonce < maxNonce; i++ {
			hash := blk.Header.GetHash()
			atomic.AddUint64(&m.hashesCompleted, 1)
			if p.CheckProofOfWork(&hash, blk.Header.Bits, m.cfg.ChainParams) {
				log.Info("miner: proof of work found, hash %s", hash.String())
				return true
			}
			blk.Header.Nonce++
		}

		select {
		case <-workerQuit:
			return false
		case <-m.quit:
			return false
		default:
		}

		// A moved tip makes the template stale; restart the cycle.
		if m.cfg.ChainView.Tip() != indexPrev {
			return false
		}
		// A churned pool is worth a rebuild once the template has aged.
		if m.cfg.Pool.GetTransactionsUpdated() != txUpdatedLast &&
			time.Since(searchStart) > templateRefreshAge {
			return false
		}
		UpdateTime(blk, indexPrev, m.cfg.ChainParams)
	}
	return false
}

// submitBlock hands a solved block to the node and re-checks the tip
// right before doing so.
func (m *Miner) submitBlock(blk *block.Block) {
	if tip := m.cfg.ChainView.Tip(); tip != nil &&
		blk.Header.HashPrevBlock != *tip.GetBlockHash() {
		log.Warn("miner: generated block is stale, discarding")
		return
	}
	if m.cfg.ProcessBlock == nil {
		log.Warn("miner: no block processor configured, dropping solved block")
		return
	}
	accepted, err := m.cfg.ProcessBlock(blk)
	if err != nil {
		log.Error("miner: ProcessBlock failed: %v", err)
		return
	}
	if !accepted {
		log.Warn("miner: solved block was not accepted")
		return
	}
	hash := blk.GetHash()
	log.Info("miner: block %s accepted at value %d", hash.String(),
		blk.Txs[0].GetValueOut())
}
