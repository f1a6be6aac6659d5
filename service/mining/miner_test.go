package mining

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FortuneBlockTeam/fortuneblock/errcode"
	"github.com/FortuneBlockTeam/fortuneblock/model/block"
	"github.com/FortuneBlockTeam/fortuneblock/model/chainparams"
	"github.com/FortuneBlockTeam/fortuneblock/model/pow"
)

func testMiner(t *testing.T, chainLen int32) (*Miner, *BlockAssembler) {
	t.Helper()
	ba, pool, chainView := testAssemblerSetup(t, chainLen)
	m := NewMiner(MinerConfig{
		Pool:         pool,
		ChainView:    chainView,
		ChainParams:  chainView.GetParams(),
		PayoutScript: payeeScript(0xaa),
	})
	return m, ba
}

func TestStartRequiresPayoutScript(t *testing.T) {
	m, _ := testMiner(t, 5)
	m.cfg.PayoutScript = nil

	err := m.Start()
	require.Error(t, err)
	assert.True(t, errcode.IsErrorCode(err, errcode.ErrNoMiningAddress))
}

func TestSetNumWorkersFloorsAtOne(t *testing.T) {
	m, _ := testMiner(t, 5)

	assert.Equal(t, int32(1), m.NumWorkers())
	m.SetNumWorkers(4)
	assert.Equal(t, int32(4), m.NumWorkers())
	m.SetNumWorkers(0)
	assert.Equal(t, int32(1), m.NumWorkers())
	m.SetNumWorkers(-3)
	assert.Equal(t, int32(1), m.NumWorkers())
}

// The mainnet limit leaves one hash in roughly 256 valid, so a real
// nonce search over a fresh template terminates almost immediately.
func TestSolveBlockFindsProofOfWork(t *testing.T) {
	m, ba := testMiner(t, 8)

	bt, err := ba.CreateNewBlock(payeeScript(0xaa), CoinbaseScriptSig(8, 1))
	require.NoError(t, err)

	indexPrev := m.cfg.ChainView.Tip()
	txUpdated := m.cfg.Pool.GetTransactionsUpdated()
	require.True(t, m.solveBlock(bt.Block, indexPrev, txUpdated, nil))

	p := pow.Pow{}
	hash := bt.Block.Header.GetHash()
	assert.True(t, p.CheckProofOfWork(&hash, bt.Block.Header.Bits, &chainparams.MainNetParams))
	assert.NotZero(t, m.hashesCompleted)
}

func TestSolveBlockAbortsOnMovedTip(t *testing.T) {
	m, ba := testMiner(t, 8)

	bt, err := ba.CreateNewBlock(payeeScript(0xaa), CoinbaseScriptSig(8, 1))
	require.NoError(t, err)

	// an index that is not the captured tip anymore
	stalePrev := m.cfg.ChainView.GetIndexByHeight(3)
	// make the first batch unable to solve so the poll runs
	bt.Block.Header.Bits = 0x03000001
	txUpdated := m.cfg.Pool.GetTransactionsUpdated()
	assert.False(t, m.solveBlock(bt.Block, stalePrev, txUpdated, nil))
}

func TestSubmitBlock(t *testing.T) {
	t.Run("accepted solutions reach the processor", func(t *testing.T) {
		m, ba := testMiner(t, 8)
		var got *block.Block
		m.cfg.ProcessBlock = func(blk *block.Block) (bool, error) {
			got = blk
			return true, nil
		}

		bt, err := ba.CreateNewBlock(payeeScript(0xaa), CoinbaseScriptSig(8, 1))
		require.NoError(t, err)
		m.submitBlock(bt.Block)
		require.NotNil(t, got)
		assert.Equal(t, bt.Block.GetHash(), got.GetHash())
	})

	t.Run("stale solutions are dropped before submission", func(t *testing.T) {
		m, ba := testMiner(t, 8)
		called := false
		m.cfg.ProcessBlock = func(blk *block.Block) (bool, error) {
			called = true
			return true, nil
		}

		bt, err := ba.CreateNewBlock(payeeScript(0xaa), CoinbaseScriptSig(8, 1))
		require.NoError(t, err)
		bt.Block.Header.HashPrevBlock = fundingHash(77)
		m.submitBlock(bt.Block)
		assert.False(t, called)
	})
}

func TestMinerStartStop(t *testing.T) {
	m, _ := testMiner(t, 8)
	accepted := make(chan *block.Block, 16)
	m.cfg.ProcessBlock = func(blk *block.Block) (bool, error) {
		select {
		case accepted <- blk:
		default:
		}
		return false, nil // keep the chain static for the test
	}

	require.NoError(t, m.Start())
	require.NoError(t, m.Start(), "double start is a no-op")

	done := make(chan struct{})
	go func() {
		m.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(30 * time.Second):
		t.Fatal("miner did not stop")
	}
	m.Stop() // stop after stop is a no-op
}
