package mempool

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/fatih/set.v0"

	"github.com/FortuneBlockTeam/fortuneblock/model/outpoint"
	"github.com/FortuneBlockTeam/fortuneblock/model/script"
	"github.com/FortuneBlockTeam/fortuneblock/model/tx"
	"github.com/FortuneBlockTeam/fortuneblock/model/txin"
	"github.com/FortuneBlockTeam/fortuneblock/model/txout"
	"github.com/FortuneBlockTeam/fortuneblock/util"
	"github.com/FortuneBlockTeam/fortuneblock/util/amount"
)

func confirmedOutpoint(seed uint64) util.Hash {
	var h util.Hash
	binary.LittleEndian.PutUint64(h[:8], seed)
	h[31] = 0x55
	return h
}

func poolTx(prevHash util.Hash, prevIdx uint32, outputs int) *tx.Tx {
	txn := tx.NewTx(0, tx.TxVersion)
	prevOut := outpoint.OutPoint{Hash: prevHash, Index: prevIdx}
	txn.AddTxIn(txin.NewTxIn(&prevOut, script.NewScriptRaw(make([]byte, 40)), txin.SequenceFinal))
	for i := 0; i < outputs; i++ {
		txn.AddTxOut(txout.NewTxOut(1*amount.COIN, script.NewScriptRaw([]byte{0x51})))
	}
	return txn
}

func add(t *testing.T, pool *TxMempool, txn *tx.Tx, fee int64) *TxEntry {
	t.Helper()
	entry := NewTxentry(txn, fee, util.GetTime(), 0, LockPoints{}, 1, false)
	require.NoError(t, pool.AddTx(entry))
	return entry
}

func TestAddTxUpdatesPackageStatistics(t *testing.T) {
	pool := NewTxMempool()

	parentTx := poolTx(confirmedOutpoint(1), 0, 2)
	parent := add(t, pool, parentTx, 1000)
	child := add(t, pool, poolTx(parentTx.GetHash(), 0, 1), 2000)

	assert.Equal(t, int64(2), child.SumTxCountWithAncestors)
	assert.Equal(t, parent.TxFee+child.TxFee, child.SumTxFeeWithAncestors)
	assert.Equal(t, int64(parent.TxSize+child.TxSize), child.SumTxSizeWitAncestors)

	assert.Equal(t, int64(2), parent.SumTxCountWithDescendants)
	assert.Equal(t, parent.TxFee+child.TxFee, parent.SumTxFeeWithDescendants)

	assert.Equal(t, 2, pool.Size())
	assert.True(t, pool.Exists(parentTx.GetHash()))

	pool.RLock()
	assert.Same(t, parent, pool.FindTx(parentTx.GetHash()))
	pool.RUnlock()
}

func TestAddTxRejectsDuplicates(t *testing.T) {
	pool := NewTxMempool()
	txn := poolTx(confirmedOutpoint(2), 0, 1)
	add(t, pool, txn, 1000)

	dup := NewTxentry(txn, 1000, util.GetTime(), 0, LockPoints{}, 1, false)
	assert.Error(t, pool.AddTx(dup))
	assert.Equal(t, 1, pool.Size())
}

func TestCalculateAncestorsAndDescendants(t *testing.T) {
	pool := NewTxMempool()

	grandTx := poolTx(confirmedOutpoint(3), 0, 1)
	grand := add(t, pool, grandTx, 500)
	parentTx := poolTx(grandTx.GetHash(), 0, 1)
	parent := add(t, pool, parentTx, 600)
	childTx := poolTx(parentTx.GetHash(), 0, 1)
	child := add(t, pool, childTx, 700)

	pool.RLock()
	ancestors := pool.CalculateAncestorsNoLimit(childTx)
	pool.RUnlock()
	require.NotNil(t, ancestors)
	assert.Equal(t, 2, ancestors.Size())
	assert.True(t, ancestors.Has(grand))
	assert.True(t, ancestors.Has(parent))

	descendants := set.New()
	pool.RLock()
	pool.CalculateDescendants(grand, descendants)
	pool.RUnlock()
	assert.Equal(t, 3, descendants.Size(), "the entry itself counts as its own descendant")
	assert.True(t, descendants.Has(child))
}

func TestRemoveForBlockDetachesDescendants(t *testing.T) {
	pool := NewTxMempool()

	parentTx := poolTx(confirmedOutpoint(4), 0, 1)
	add(t, pool, parentTx, 1000)
	childTx := poolTx(parentTx.GetHash(), 0, 1)
	child := add(t, pool, childTx, 2000)

	before := pool.GetTransactionsUpdated()
	pool.RemoveForBlock([]*tx.Tx{parentTx})

	assert.False(t, pool.Exists(parentTx.GetHash()))
	assert.True(t, pool.Exists(childTx.GetHash()))

	// the child is priced as a root package now
	assert.Equal(t, int64(1), child.SumTxCountWithAncestors)
	assert.Equal(t, child.TxFee, child.SumTxFeeWithAncestors)
	assert.Equal(t, int64(child.TxSize), child.SumTxSizeWitAncestors)

	assert.Greater(t, pool.GetTransactionsUpdated(), before,
		"pool churn must be observable by template refresh checks")
}

func TestRemoveForBlockEvictsConflicts(t *testing.T) {
	pool := NewTxMempool()

	spend := poolTx(confirmedOutpoint(5), 0, 1)
	add(t, pool, spend, 1000)

	// a block commits a different transaction spending the same output
	confirmed := poolTx(confirmedOutpoint(5), 0, 2)
	pool.RemoveForBlock([]*tx.Tx{confirmed})

	assert.False(t, pool.Exists(spend.GetHash()),
		"a double spend of a confirmed output cannot stay in the pool")
}

func TestRemoveTxRecursive(t *testing.T) {
	pool := NewTxMempool()

	parentTx := poolTx(confirmedOutpoint(6), 0, 1)
	add(t, pool, parentTx, 1000)
	childTx := poolTx(parentTx.GetHash(), 0, 1)
	add(t, pool, childTx, 2000)

	pool.RemoveTxRecursive(parentTx)
	assert.Equal(t, 0, pool.Size())
	assert.Zero(t, pool.GetPoolAllTxSize())
}

func TestHasNoInputsOf(t *testing.T) {
	pool := NewTxMempool()
	parentTx := poolTx(confirmedOutpoint(7), 0, 1)
	add(t, pool, parentTx, 1000)

	child := poolTx(parentTx.GetHash(), 0, 1)
	orphanFree := poolTx(confirmedOutpoint(8), 0, 1)

	assert.False(t, pool.HasNoInputsOf(child))
	assert.True(t, pool.HasNoInputsOf(orphanFree))
}
