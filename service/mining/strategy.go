package mining

import (
	"github.com/google/btree"

	"github.com/FortuneBlockTeam/fortuneblock/conf"
	"github.com/FortuneBlockTeam/fortuneblock/log"
	"github.com/FortuneBlockTeam/fortuneblock/model/mempool"
	"github.com/FortuneBlockTeam/fortuneblock/util"
)

type sortType int

const (
	sortByFee sortType = 1 << iota
	sortByFeeRate
)

const defaultSortStrategy = sortByFeeRate

var strategies = map[string]sortType{
	"ancestorfee":     sortByFee,
	"ancestorfeerate": sortByFeeRate,
}

func getStrategy() sortType {
	if conf.Cfg == nil {
		return defaultSortStrategy
	}
	sortParam := conf.Cfg.Mining.Strategy
	ret, ok := strategies[sortParam]
	if !ok {
		log.Error("the specified strategy< %s > does not exist, using the default", sortParam)
		return defaultSortStrategy
	}
	return ret
}

// EntryFeeSort orders entries by absolute fee including ancestors, with
// a hash tie-break so iteration order is deterministic.
type EntryFeeSort mempool.TxEntry

func (e EntryFeeSort) Less(than btree.Item) bool {
	t := than.(EntryFeeSort)
	if e.SumTxFeeWithAncestors == t.SumTxFeeWithAncestors {
		eHash := e.Tx.GetHash()
		tHash := t.Tx.GetHash()
		return eHash.Cmp(&tHash) > 0
	}
	return e.SumTxFeeWithAncestors < t.SumTxFeeWithAncestors
}

// sortedByFeeWithAncestors snapshots the pool into a btree ordered by
// ancestor fee. Callers must hold the pool lock.
func sortedByFeeWithAncestors(pool *mempool.TxMempool) *btree.BTree {
	b := btree.New(32)
	for _, txEntry := range pool.GetAllTxEntry() {
		b.ReplaceOrInsert(EntryFeeSort(*txEntry))
	}
	return b
}

// sortedByFeeRateWithAncestors snapshots the pool into a btree ordered
// by ancestor fee-rate. Callers must hold the pool lock.
func sortedByFeeRateWithAncestors(pool *mempool.TxMempool) *btree.BTree {
	b := btree.New(32)
	for _, txEntry := range pool.GetAllTxEntry() {
		b.ReplaceOrInsert(mempool.EntryAncestorFeeRateSort(*txEntry))
	}
	return b
}

// ancestorScore collapses a package's aggregate fee and size to the
// satoshis/kB figure both selection sources are compared on.
func ancestorScore(fee int64, size int64) int64 {
	return util.NewFeeRateWithSize(fee, size).SataoshisPerK
}
