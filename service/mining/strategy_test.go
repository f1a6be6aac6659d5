package mining

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FortuneBlockTeam/fortuneblock/conf"
)

func TestGetStrategy(t *testing.T) {
	defer func() { conf.Cfg = nil }()

	conf.Cfg = nil
	assert.Equal(t, defaultSortStrategy, getStrategy())

	conf.Cfg = &conf.Configuration{}
	conf.Cfg.Mining.Strategy = "ancestorfee"
	assert.Equal(t, sortByFee, getStrategy())

	conf.Cfg.Mining.Strategy = "ancestorfeerate"
	assert.Equal(t, sortByFeeRate, getStrategy())

	conf.Cfg.Mining.Strategy = "nosuchstrategy"
	assert.Equal(t, defaultSortStrategy, getStrategy())
}

func TestEntryFeeSortOrdering(t *testing.T) {
	testConfig()
	_, pool, _ := testAssemblerSetup(t, 6)

	cheap := spendTx(fundingHash(1), 0, 50, 1)
	rich := spendTx(fundingHash(2), 0, 50, 1)
	addPoolTx(t, pool, cheap, 1000)
	addPoolTx(t, pool, rich, 9000)

	pool.RLock()
	b := sortedByFeeWithAncestors(pool)
	pool.RUnlock()

	require.Equal(t, 2, b.Len())
	best := b.Max().(EntryFeeSort)
	assert.Equal(t, rich.GetHash(), best.Tx.GetHash())
	b.DeleteMax()
	next := b.Max().(EntryFeeSort)
	assert.Equal(t, cheap.GetHash(), next.Tx.GetHash())
}

func TestAncestorScore(t *testing.T) {
	assert.Equal(t, int64(1000), ancestorScore(1000, 1000))
	assert.Equal(t, int64(500), ancestorScore(100, 200))
	assert.Equal(t, int64(0), ancestorScore(100, 0))
}
