package mining

import (
	"github.com/google/btree"
	"gopkg.in/fatih/set.v0"

	"github.com/FortuneBlockTeam/fortuneblock/model/mempool"
	"github.com/FortuneBlockTeam/fortuneblock/util"
)

// modifiedEntry shadows a pool entry whose ancestor aggregates must be
// reduced because some of its ancestors already sit in the block being
// built. The canonical pool entry is never mutated.
type modifiedEntry struct {
	entry *mempool.TxEntry

	sizeWithAncestors       int64
	feeWithAncestors        int64
	sigOpCountWithAncestors int64
}

func newModifiedEntry(entry *mempool.TxEntry) *modifiedEntry {
	return &modifiedEntry{
		entry:                   entry,
		sizeWithAncestors:       entry.SumTxSizeWitAncestors,
		feeWithAncestors:        entry.SumTxFeeWithAncestors,
		sigOpCountWithAncestors: entry.SumTxSigOpCountWithAncestors,
	}
}

func (me *modifiedEntry) score() int64 {
	return ancestorScore(me.feeWithAncestors, me.sizeWithAncestors)
}

// Less orders entries ascending by adjusted ancestor fee-rate so that
// Max() is the best candidate. Ties break on hash like the primary
// index.
func (me *modifiedEntry) Less(than btree.Item) bool {
	other := than.(*modifiedEntry)
	s1 := me.score()
	s2 := other.score()
	if s1 == s2 {
		meHash := me.entry.Tx.GetHash()
		otherHash := other.entry.Tx.GetHash()
		return meHash.Cmp(&otherHash) > 0
	}
	return s1 < s2
}

// modifiedTxSet tracks not-yet-committed transactions whose ancestor
// aggregates are stale because of in-block ancestors, keeping them
// ordered by adjusted fee-rate for O(log n) best-entry queries.
type modifiedTxSet struct {
	byScore *btree.BTree
	byHash  map[util.Hash]*modifiedEntry
}

func newModifiedTxSet() *modifiedTxSet {
	return &modifiedTxSet{
		byScore: btree.New(32),
		byHash:  make(map[util.Hash]*modifiedEntry),
	}
}

func (s *modifiedTxSet) len() int {
	return len(s.byHash)
}

func (s *modifiedTxSet) contains(hash util.Hash) bool {
	_, ok := s.byHash[hash]
	return ok
}

// best returns the entry with the highest adjusted fee-rate, nil when
// the set is empty.
func (s *modifiedTxSet) best() *modifiedEntry {
	item := s.byScore.Max()
	if item == nil {
		return nil
	}
	return item.(*modifiedEntry)
}

func (s *modifiedTxSet) remove(hash util.Hash) {
	entry, ok := s.byHash[hash]
	if !ok {
		return
	}
	s.byScore.Delete(entry)
	delete(s.byHash, hash)
}

// adjustForCommitted propagates the effect of newly committed entries
// to their in-pool descendants: each descendant's aggregate figures
// drop by the committed transaction's isolated size/fee/sigops, so its
// remaining package is priced as if the committed ancestors were
// already confirmed. Returns the number of descendants touched.
// Callers must hold the pool lock.
func (s *modifiedTxSet) adjustForCommitted(pool *mempool.TxMempool,
	committed []*mempool.TxEntry, inBlock map[util.Hash]struct{}) int {

	descendantsUpdated := 0
	for _, added := range committed {
		addedHash := added.Tx.GetHash()

		descendants := set.New()
		pool.CalculateDescendants(added, descendants)
		descendants.Each(func(item interface{}) bool {
			desc := item.(*mempool.TxEntry)
			descHash := desc.Tx.GetHash()
			if descHash == addedHash {
				return true
			}
			if _, ok := inBlock[descHash]; ok {
				return true
			}
			descendantsUpdated++

			entry, ok := s.byHash[descHash]
			if !ok {
				entry = newModifiedEntry(desc)
				s.byHash[descHash] = entry
			} else {
				// reinsert below so the tree order stays valid
				s.byScore.Delete(entry)
			}
			entry.sizeWithAncestors -= int64(added.TxSize)
			entry.feeWithAncestors -= added.TxFee
			entry.sigOpCountWithAncestors -= int64(added.SigOpCount)
			s.byScore.ReplaceOrInsert(entry)
			return true
		})
	}
	return descendantsUpdated
}
