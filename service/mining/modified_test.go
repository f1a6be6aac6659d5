package mining

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FortuneBlockTeam/fortuneblock/model/mempool"
	"github.com/FortuneBlockTeam/fortuneblock/util"
)

// trackerFixture: parent with two spendable outputs, one child on each,
// and a grandchild below the first child.
type trackerFixture struct {
	pool       *mempool.TxMempool
	parent     *mempool.TxEntry
	childA     *mempool.TxEntry
	childB     *mempool.TxEntry
	grandchild *mempool.TxEntry
}

func newTrackerFixture(t *testing.T) *trackerFixture {
	t.Helper()
	testConfig()
	pool := mempool.NewTxMempool()

	parentTx := spendTx(fundingHash(40), 0, 60, 2)
	parent := addPoolTx(t, pool, parentTx, 1000)
	childATx := spendTx(parentTx.GetHash(), 0, 60, 1)
	childA := addPoolTx(t, pool, childATx, 2000)
	childBTx := spendTx(parentTx.GetHash(), 1, 60, 1)
	childB := addPoolTx(t, pool, childBTx, 300)
	grandchildTx := spendTx(childATx.GetHash(), 0, 60, 1)
	grandchild := addPoolTx(t, pool, grandchildTx, 5000)

	return &trackerFixture{pool, parent, childA, childB, grandchild}
}

func TestAdjustForCommittedCreatesEntries(t *testing.T) {
	fx := newTrackerFixture(t)
	tracker := newModifiedTxSet()
	inBlock := map[util.Hash]struct{}{fx.parent.Tx.GetHash(): {}}

	fx.pool.RLock()
	updated := tracker.adjustForCommitted(fx.pool, []*mempool.TxEntry{fx.parent}, inBlock)
	fx.pool.RUnlock()

	assert.Equal(t, 3, updated, "both children and the grandchild are descendants")
	assert.Equal(t, 3, tracker.len())

	entry, ok := tracker.byHash[fx.childA.Tx.GetHash()]
	require.True(t, ok)
	assert.Equal(t, fx.childA.SumTxFeeWithAncestors-fx.parent.TxFee, entry.feeWithAncestors)
	assert.Equal(t, fx.childA.SumTxSizeWitAncestors-int64(fx.parent.TxSize), entry.sizeWithAncestors)
	assert.Equal(t, fx.childA.SumTxSigOpCountWithAncestors-int64(fx.parent.SigOpCount),
		entry.sigOpCountWithAncestors)

	// the canonical pool entry is untouched
	assert.Equal(t, fx.parent.TxFee+fx.childA.TxFee, fx.childA.SumTxFeeWithAncestors)
}

func TestAdjustForCommittedMergesRepeatedCommits(t *testing.T) {
	fx := newTrackerFixture(t)
	tracker := newModifiedTxSet()
	inBlock := map[util.Hash]struct{}{
		fx.parent.Tx.GetHash(): {},
		fx.childA.Tx.GetHash(): {},
	}

	fx.pool.RLock()
	tracker.adjustForCommitted(fx.pool, []*mempool.TxEntry{fx.parent, fx.childA}, inBlock)
	fx.pool.RUnlock()

	// committed transactions never enter the tracker
	assert.False(t, tracker.contains(fx.parent.Tx.GetHash()))
	assert.False(t, tracker.contains(fx.childA.Tx.GetHash()))

	// the grandchild lost parent and childA from its aggregates; only
	// its own isolated figures remain
	entry, ok := tracker.byHash[fx.grandchild.Tx.GetHash()]
	require.True(t, ok)
	assert.Equal(t, fx.grandchild.TxFee, entry.feeWithAncestors)
	assert.Equal(t, int64(fx.grandchild.TxSize), entry.sizeWithAncestors)
}

func TestTrackerBestAndRemove(t *testing.T) {
	fx := newTrackerFixture(t)
	tracker := newModifiedTxSet()
	inBlock := map[util.Hash]struct{}{fx.parent.Tx.GetHash(): {}}

	fx.pool.RLock()
	tracker.adjustForCommitted(fx.pool, []*mempool.TxEntry{fx.parent}, inBlock)
	fx.pool.RUnlock()

	// after removing the parent from their aggregates, the grandchild's
	// package (childA+grandchild, 7000) outscores childA (2000) and
	// childB (300)
	best := tracker.best()
	require.NotNil(t, best)
	assert.Equal(t, fx.grandchild.Tx.GetHash(), best.entry.Tx.GetHash())

	tracker.remove(best.entry.Tx.GetHash())
	assert.Equal(t, 2, tracker.len())
	best = tracker.best()
	require.NotNil(t, best)
	assert.Equal(t, fx.childA.Tx.GetHash(), best.entry.Tx.GetHash())

	// removing an unknown hash is a no-op
	tracker.remove(fundingHash(99))
	assert.Equal(t, 2, tracker.len())

	tracker.remove(fx.childA.Tx.GetHash())
	tracker.remove(fx.childB.Tx.GetHash())
	assert.Equal(t, 0, tracker.len())
	assert.Nil(t, tracker.best())
}

func TestAdjustForCommittedSkipsInBlockDescendants(t *testing.T) {
	fx := newTrackerFixture(t)
	tracker := newModifiedTxSet()
	inBlock := map[util.Hash]struct{}{
		fx.parent.Tx.GetHash(): {},
		fx.childB.Tx.GetHash(): {},
	}

	fx.pool.RLock()
	updated := tracker.adjustForCommitted(fx.pool, []*mempool.TxEntry{fx.parent}, inBlock)
	fx.pool.RUnlock()

	assert.Equal(t, 2, updated)
	assert.False(t, tracker.contains(fx.childB.Tx.GetHash()),
		"descendants already in the block must stay out of the tracker")
}
