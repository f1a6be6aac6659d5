package mining

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FortuneBlockTeam/fortuneblock/conf"
	"github.com/FortuneBlockTeam/fortuneblock/errcode"
	"github.com/FortuneBlockTeam/fortuneblock/model/block"
	"github.com/FortuneBlockTeam/fortuneblock/model/blockindex"
	"github.com/FortuneBlockTeam/fortuneblock/model/chain"
	"github.com/FortuneBlockTeam/fortuneblock/model/chainparams"
	"github.com/FortuneBlockTeam/fortuneblock/model/consensus"
	"github.com/FortuneBlockTeam/fortuneblock/model/mempool"
	"github.com/FortuneBlockTeam/fortuneblock/model/outpoint"
	"github.com/FortuneBlockTeam/fortuneblock/model/pow"
	"github.com/FortuneBlockTeam/fortuneblock/model/script"
	"github.com/FortuneBlockTeam/fortuneblock/model/tx"
	"github.com/FortuneBlockTeam/fortuneblock/model/txin"
	"github.com/FortuneBlockTeam/fortuneblock/model/txout"
	"github.com/FortuneBlockTeam/fortuneblock/util"
	"github.com/FortuneBlockTeam/fortuneblock/util/amount"
)

func testConfig() {
	cfg := new(conf.Configuration)
	cfg.Mining.BlockMaxSize = 0
	cfg.Mining.BlockMinTxFee = 0
	cfg.Mining.Strategy = "ancestorfeerate"
	conf.Cfg = cfg
}

func payeeScript(tag byte) *script.Script {
	hash160 := make([]byte, util.Hash160Size)
	hash160[0] = tag
	addr, _ := script.AddressFromHash160(hash160, chainparams.MainNetParams.PubKeyHashAddressVer)
	return addr.PayToPubKeyHashScript()
}

// buildTestChain creates an active chain of n indexes with distinct
// hashes, past timestamps and a recorded coinbase payout script each.
func buildTestChain(t *testing.T, chainView *chain.Chain, params *chainparams.Params, n int32) {
	t.Helper()
	bits := pow.BigToCompact(params.PowLimit)
	baseTime := util.GetTime() - int64(n+1)*params.TargetTimePerBlock

	var prev *blockindex.BlockIndex
	for h := int32(0); h < n; h++ {
		header := block.NewBlockHeader()
		header.Time = uint32(baseTime + int64(h)*params.TargetTimePerBlock)
		header.Bits = bits
		header.Nonce = uint32(h)
		if prev != nil {
			header.HashPrevBlock = *prev.GetBlockHash()
		}
		bi := blockindex.NewBlockIndex(header)
		bi.Height = h
		bi.Prev = prev
		bi.CoinbasePayee = payeeScript(byte(h))
		chainView.AddToIndexMap(bi)
		prev = bi
	}
	chainView.SetTip(prev)
}

func testAssemblerSetup(t *testing.T, chainLen int32) (*BlockAssembler, *mempool.TxMempool, *chain.Chain) {
	t.Helper()
	testConfig()
	params := &chainparams.MainNetParams
	chainView := chain.NewChain(params)
	buildTestChain(t, chainView, params, chainLen)
	pool := mempool.NewTxMempool()
	return NewBlockAssembler(pool, chainView, params), pool, chainView
}

// fundingHash produces a distinct fake confirmed outpoint per seed.
func fundingHash(seed uint64) util.Hash {
	var h util.Hash
	binary.LittleEndian.PutUint64(h[:8], seed)
	h[31] = 0x7f
	return h
}

// spendTx builds a transaction spending the given outpoint with a
// padded input script so tests can steer the serialized size.
func spendTx(prevHash util.Hash, prevIdx uint32, padding int, outputs int) *tx.Tx {
	txn := tx.NewTx(0, tx.TxVersion)
	prevOut := outpoint.OutPoint{Hash: prevHash, Index: prevIdx}
	txn.AddTxIn(txin.NewTxIn(&prevOut, script.NewScriptRaw(make([]byte, padding)), txin.SequenceFinal))
	for i := 0; i < outputs; i++ {
		txn.AddTxOut(txout.NewTxOut(1*amount.COIN, payeeScript(0xee)))
	}
	return txn
}

func addPoolTx(t *testing.T, pool *mempool.TxMempool, txn *tx.Tx, fee int64) *mempool.TxEntry {
	t.Helper()
	entry := mempool.NewTxentry(txn, fee, util.GetTime(), 0, mempool.LockPoints{}, txn.GetSigOpCount(), false)
	require.NoError(t, pool.AddTx(entry))
	return entry
}

func txInBlock(bt *BlockTemplate, txn *tx.Tx) int {
	want := txn.GetHash()
	for i, blockTx := range bt.Block.Txs {
		got := blockTx.GetHash()
		if got.IsEqual(&want) {
			return i
		}
	}
	return -1
}

func TestCreateNewBlockEmptyPool(t *testing.T) {
	ba, _, _ := testAssemblerSetup(t, 10)

	bt, err := ba.CreateNewBlock(payeeScript(0xaa), BasicScriptSig(10))
	require.NoError(t, err)
	require.Len(t, bt.Block.Txs, 1)
	assert.True(t, bt.Block.Txs[0].IsCoinBase())
	assert.Equal(t, amount.Amount(0), bt.TxFees[0])
	assert.Equal(t, pow.BigToCompact(chainparams.MainNetParams.PowLimit), bt.PrevBits)
}

// A parent and its child must both be committed, parent first, with the
// cumulative fee accounted.
func TestSelectionCommitsAncestorPackage(t *testing.T) {
	ba, pool, _ := testAssemblerSetup(t, 10)

	parent := spendTx(fundingHash(1), 0, 50, 1)
	addPoolTx(t, pool, parent, 500)
	child := spendTx(parent.GetHash(), 0, 120, 1)
	addPoolTx(t, pool, child, 1000)

	bt, err := ba.CreateNewBlock(payeeScript(0xaa), BasicScriptSig(10))
	require.NoError(t, err)

	parentIdx := txInBlock(bt, parent)
	childIdx := txInBlock(bt, child)
	require.NotEqual(t, -1, parentIdx)
	require.NotEqual(t, -1, childIdx)
	assert.Less(t, parentIdx, childIdx, "parent must precede its descendant")
	assert.Equal(t, amount.Amount(-1500), bt.TxFees[0])
}

// Committing a parent through a high-fee child must leave further
// descendants selectable through the modified tracker.
func TestSelectionAdjustsForCommittedAncestors(t *testing.T) {
	ba, pool, _ := testAssemblerSetup(t, 10)

	parent := spendTx(fundingHash(2), 0, 60, 2)
	addPoolTx(t, pool, parent, 300)
	childA := spendTx(parent.GetHash(), 0, 60, 1)
	addPoolTx(t, pool, childA, 5000)
	childB := spendTx(parent.GetHash(), 1, 60, 1)
	addPoolTx(t, pool, childB, 400)

	bt, err := ba.CreateNewBlock(payeeScript(0xaa), BasicScriptSig(10))
	require.NoError(t, err)

	for _, txn := range []*tx.Tx{parent, childA, childB} {
		assert.NotEqual(t, -1, txInBlock(bt, txn))
	}
	assert.Less(t, txInBlock(bt, parent), txInBlock(bt, childA))
	assert.Less(t, txInBlock(bt, parent), txInBlock(bt, childB))
	assert.Equal(t, amount.Amount(-5700), bt.TxFees[0])
}

// Below the configured fee-rate floor the loop terminates and leaves
// the candidate out.
func TestSelectionFeeRateCutoff(t *testing.T) {
	ba, pool, _ := testAssemblerSetup(t, 10)
	conf.Cfg.Mining.BlockMinTxFee = 100000 // sat/kB, far above the test fees

	cheap := spendTx(fundingHash(3), 0, 50, 1)
	addPoolTx(t, pool, cheap, 100)

	bt, err := ba.CreateNewBlock(payeeScript(0xaa), BasicScriptSig(10))
	require.NoError(t, err)
	assert.Len(t, bt.Block.Txs, 1, "low fee-rate candidate must not be selected")
}

// Capacity boundaries are exclusive: a package landing exactly on the
// limit is rejected.
func TestTestPackageBoundaries(t *testing.T) {
	testConfig()
	ba := &BlockAssembler{
		maxGeneratedBlockSize: 10000,
		blockSize:             9000,
		blockSigOps:           0,
	}
	assert.False(t, ba.testPackage(1000, 0), "size reaching the limit exactly is rejected")
	assert.True(t, ba.testPackage(999, 0))
	assert.False(t, ba.testPackage(100, consensus.MaxBlockSigOps))
}

// A non-final transaction is excluded from the template but stays in
// the pool, selectable by a later assembly pass.
func TestNonFinalTxExcludedButRetained(t *testing.T) {
	ba, pool, _ := testAssemblerSetup(t, 10)

	nonFinal := tx.NewTx(100000, tx.TxVersion)
	prevOut := outpoint.OutPoint{Hash: fundingHash(4), Index: 0}
	nonFinal.AddTxIn(txin.NewTxIn(&prevOut, script.NewScriptRaw(make([]byte, 40)), 0))
	nonFinal.AddTxOut(txout.NewTxOut(1*amount.COIN, payeeScript(0xee)))
	addPoolTx(t, pool, nonFinal, 10000)

	fine := spendTx(fundingHash(5), 0, 40, 1)
	addPoolTx(t, pool, fine, 1000)

	bt, err := ba.CreateNewBlock(payeeScript(0xaa), BasicScriptSig(10))
	require.NoError(t, err)
	assert.Equal(t, -1, txInBlock(bt, nonFinal))
	assert.NotEqual(t, -1, txInBlock(bt, fine))
	assert.True(t, pool.Exists(nonFinal.GetHash()), "assembly must not evict from the pool")

	// a fresh pass still assembles, with the same exclusion
	bt2, err := ba.CreateNewBlock(payeeScript(0xaa), BasicScriptSig(10))
	require.NoError(t, err)
	assert.Equal(t, -1, txInBlock(bt2, nonFinal))
}

// With equal scores the primary index wins; the tracker needs a
// strictly higher score to take over.
func TestModifiedTrackerTieBreak(t *testing.T) {
	testConfig()
	txn := spendTx(fundingHash(6), 0, 50, 1)
	entry := mempool.NewTxentry(txn, 1000, util.GetTime(), 0, mempool.LockPoints{}, 1, false)

	equalMod := &modifiedEntry{
		entry:                   entry,
		sizeWithAncestors:       entry.SumTxSizeWitAncestors,
		feeWithAncestors:        entry.SumTxFeeWithAncestors,
		sigOpCountWithAncestors: 1,
	}
	assert.False(t, modifiedBeatsPrimary(sortByFeeRate, equalMod, entry),
		"a tie must favor the primary index entry")
	assert.False(t, modifiedBeatsPrimary(sortByFeeRate, nil, entry))

	betterMod := &modifiedEntry{
		entry:                   entry,
		sizeWithAncestors:       entry.SumTxSizeWitAncestors,
		feeWithAncestors:        entry.SumTxFeeWithAncestors * 10,
		sigOpCountWithAncestors: 1,
	}
	assert.True(t, modifiedBeatsPrimary(sortByFeeRate, betterMod, entry))
}

// Capacity invariant over a busy pool with a small generated-size cap.
func TestTemplateRespectsConfiguredMaxSize(t *testing.T) {
	ba, pool, _ := testAssemblerSetup(t, 10)
	conf.Cfg.Mining.BlockMaxSize = 4000

	for i := uint64(0); i < 40; i++ {
		txn := spendTx(fundingHash(100+i), 0, 100, 1)
		addPoolTx(t, pool, txn, 50000)
	}

	bt, err := ba.CreateNewBlock(payeeScript(0xaa), BasicScriptSig(10))
	require.NoError(t, err)
	assert.Less(t, uint32(len(bt.Block.Txs)), uint32(41))
	assert.Less(t, bt.Block.SerializeSize(), uint32(4000))
}

// Reward conservation: coinbase outputs sum exactly to subsidy plus
// fees, across the payment layers.
func TestCoinbaseRewardConservation(t *testing.T) {
	ba, pool, chainView := testAssemblerSetup(t, 10)

	txn := spendTx(fundingHash(7), 0, 50, 1)
	addPoolTx(t, pool, txn, 2500)

	bt, err := ba.CreateNewBlock(payeeScript(0xaa), BasicScriptSig(10))
	require.NoError(t, err)

	tip := chainView.Tip()
	subsidy := chainparams.GetBlockSubsidy(tip.Header.Bits, tip.Height, chainView.GetParams())
	coinbase := bt.Block.Txs[0]

	assert.Equal(t, subsidy+2500, coinbase.GetValueOut())
	require.GreaterOrEqual(t, coinbase.GetOutsCount(), 2, "miner remainder plus lucky output")
	assert.True(t, coinbase.GetTxOut(0).GetValue() >= 0)

	// the lucky layer pays 5% of the normal reward on mainnet
	fortuneOut := coinbase.GetTxOut(coinbase.GetOutsCount() - 1)
	assert.Equal(t, (subsidy+2500)*5/100, fortuneOut.GetValue())
}

// The first mined block replaces the whole reward with the fixed swap
// distribution and pays the miner nothing.
func TestGenesisSwapException(t *testing.T) {
	ba, _, _ := testAssemblerSetup(t, 1)

	miner := payeeScript(0xaa)
	bt, err := ba.CreateNewBlock(miner, BasicScriptSig(1))
	require.NoError(t, err)

	coinbase := bt.Block.Txs[0]
	require.Equal(t, len(chainparams.GenesisSwapTable), coinbase.GetOutsCount())

	for i, entry := range chainparams.GenesisSwapTable[:5] {
		out := coinbase.GetTxOut(i)
		assert.Equal(t, entry.Value, out.GetValue())
		addr, err := script.AddressFromString(entry.Address)
		require.NoError(t, err)
		assert.True(t, out.GetScriptPubKey().IsEqual(addr.PayToPubKeyHashScript()))
	}
	var tableTotal amount.Amount
	for _, entry := range chainparams.GenesisSwapTable {
		tableTotal += entry.Value
	}
	assert.Equal(t, tableTotal, coinbase.GetValueOut(), "the coinbase pays exactly the table total")

	for i := 0; i < coinbase.GetOutsCount(); i++ {
		assert.False(t, coinbase.GetTxOut(i).GetScriptPubKey().IsEqual(miner),
			"the miner gets no reward at the swap height")
	}
}

// The swap coinbase is far larger than a normal one; the reserve must
// cover it so the template never exceeds the generated size cap.
func TestGenesisSwapCoinbaseFitsReserve(t *testing.T) {
	ba, _, _ := testAssemblerSetup(t, 1)

	bt, err := ba.CreateNewBlock(payeeScript(0xaa), BasicScriptSig(1))
	require.NoError(t, err)

	reserve := uint64(coinbaseReservedSize + len(chainparams.GenesisSwapTable)*p2pkhOutputSize)
	assert.LessOrEqual(t, uint64(bt.Block.Txs[0].SerializeSize()), reserve)
	assert.Equal(t, reserve, ba.blockSize, "height one widens the coinbase reserve")
	assert.Less(t, ba.blockSize, ba.maxGeneratedBlockSize)
}

type overdraftPayer struct{}

func (overdraftPayer) FillServiceProviderPayments(coinbaseTx *tx.Tx, height int32,
	normalReward amount.Amount) ([]*txout.TxOut, error) {

	out := coinbaseTx.GetTxOut(0)
	out.SetValue(out.GetValue() - normalReward*2)
	extra := txout.NewTxOut(normalReward*2, script.NewScriptRaw([]byte{0x51}))
	coinbaseTx.AddTxOut(extra)
	return []*txout.TxOut{extra}, nil
}

// Over-subtracting payment layers must fail the assembly call loudly.
func TestCoinbaseOverdraftIsFatal(t *testing.T) {
	ba, _, _ := testAssemblerSetup(t, 10)
	ba.SetSmartnodePayer(overdraftPayer{})

	_, err := ba.CreateNewBlock(payeeScript(0xaa), BasicScriptSig(10))
	require.Error(t, err)
	assert.True(t, errcode.IsErrorCode(err, errcode.ErrRewardOverdraft))
}

type payloadBuilderFunc func() ([]byte, error)

func (f payloadBuilderFunc) BuildCoinbasePayload(*block.Block, *blockindex.BlockIndex, int32) ([]byte, error) {
	return f()
}

func TestCoinbasePayloadFailureModes(t *testing.T) {
	t.Run("recoverable bad payout hash zeroes the payload", func(t *testing.T) {
		ba, _, _ := testAssemblerSetup(t, 10)
		ba.SetCoinbasePayloadBuilder(payloadBuilderFunc(func() ([]byte, error) {
			return nil, errcode.New(errcode.ErrBadPayoutListHash)
		}))

		bt, err := ba.CreateNewBlock(payeeScript(0xaa), BasicScriptSig(10))
		require.NoError(t, err)
		payload := bt.Block.Txs[0].GetExtraPayload()
		require.Len(t, payload, coinbasePayloadSize)
		for _, b := range payload {
			assert.Zero(t, b)
		}
	})

	t.Run("any other payload failure aborts", func(t *testing.T) {
		ba, _, _ := testAssemblerSetup(t, 10)
		ba.SetCoinbasePayloadBuilder(payloadBuilderFunc(func() ([]byte, error) {
			return nil, errcode.New(errcode.ErrSpecialPayload)
		}))

		_, err := ba.CreateNewBlock(payeeScript(0xaa), BasicScriptSig(10))
		require.Error(t, err)
		assert.True(t, errcode.IsErrorCode(err, errcode.ErrSpecialPayload))
	})
}

// Pre-inserted commitment transactions stay ahead of fee-based
// selection and carry no fee accounting.
func TestQuorumCommitmentPreInsertion(t *testing.T) {
	ba, pool, _ := testAssemblerSetup(t, 10)

	qcTx := tx.NewSpecialTx(0, tx.TxVersion, tx.TxTypeQuorumCommitment, []byte{0x01, 0x02})
	prevOut := outpoint.OutPoint{Hash: fundingHash(8), Index: 0}
	qcTx.AddTxIn(txin.NewTxIn(&prevOut, script.NewScriptRaw([]byte{0x51}), txin.SequenceFinal))
	qcTx.AddTxOut(txout.NewTxOut(0, script.NewScriptRaw([]byte{0x6a})))
	ba.SetQuorumCommitmentSource(quorumSourceFunc(func(height int32) []*tx.Tx {
		return []*tx.Tx{qcTx}
	}))

	ordinary := spendTx(fundingHash(9), 0, 60, 1)
	addPoolTx(t, pool, ordinary, 9000)

	bt, err := ba.CreateNewBlock(payeeScript(0xaa), BasicScriptSig(10))
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(bt.Block.Txs), 3)
	assert.Equal(t, 1, txInBlock(bt, qcTx), "commitment sits right after the coinbase")
	assert.Equal(t, amount.Amount(0), bt.TxFees[1])
	assert.NotEqual(t, -1, txInBlock(bt, ordinary))
}

type quorumSourceFunc func(height int32) []*tx.Tx

func (f quorumSourceFunc) MineableCommitments(height int32) []*tx.Tx {
	return f(height)
}

func TestUpdateTimeIsMonotonic(t *testing.T) {
	testConfig()
	params := &chainparams.MainNetParams
	chainView := chain.NewChain(params)
	buildTestChain(t, chainView, params, 5)
	tip := chainView.Tip()

	blk := block.NewBlock()
	blk.Header.Time = 1
	UpdateTime(blk, tip, params)
	assert.Greater(t, int64(blk.Header.Time), tip.GetMedianTimePast())

	// a header already ahead of the clock is left alone
	future := uint32(util.GetTime() + 3600)
	blk.Header.Time = future
	UpdateTime(blk, tip, params)
	assert.Equal(t, future, blk.Header.Time)
}

func TestComputeMaxGeneratedBlockSize(t *testing.T) {
	testConfig()

	size, err := computeMaxGeneratedBlockSize()
	require.NoError(t, err)
	assert.Equal(t, uint64(1999000), size)

	conf.Cfg.Mining.BlockMaxSize = 500
	_, err = computeMaxGeneratedBlockSize()
	require.Error(t, err)
	assert.True(t, errcode.IsErrorCode(err, errcode.ErrBlockSizeTooSmall))

	conf.Cfg.Mining.BlockMaxSize = 3000000
	size, err = computeMaxGeneratedBlockSize()
	require.NoError(t, err)
	assert.Equal(t, uint64(1999000), size, "oversized config is clamped to consensus")
}
