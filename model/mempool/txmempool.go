package mempool

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/google/btree"
	"github.com/pkg/errors"
	"gopkg.in/fatih/set.v0"

	"github.com/FortuneBlockTeam/fortuneblock/model/outpoint"
	"github.com/FortuneBlockTeam/fortuneblock/model/tx"
	"github.com/FortuneBlockTeam/fortuneblock/util"
)

const nNoLimit = uint64(math.MaxUint64)

// TxMempool holds all transactions that are candidates for the next
// blocks together with their package statistics.
type TxMempool struct {
	sync.RWMutex
	// poolData contains all current mempool entries keyed by tx hash
	poolData map[util.Hash]*TxEntry
	// nextTx maps an outpoint to the in-pool transaction spending it
	nextTx map[outpoint.OutPoint]*TxEntry
	// timeSortData is every entry ordered by entry time
	timeSortData *btree.BTree

	totalTxSize uint64
	// cacheInnerUsage is the approximate memory held by the entries
	cacheInnerUsage int64

	transactionsUpdated uint64
}

var instance *TxMempool
var once sync.Once

func GetInstance() *TxMempool {
	once.Do(func() {
		instance = NewTxMempool()
	})
	return instance
}

// InitMempool resets the process wide mempool. Startup and tests only.
func InitMempool() {
	once.Do(func() {})
	instance = NewTxMempool()
}

func NewTxMempool() *TxMempool {
	return &TxMempool{
		poolData:     make(map[util.Hash]*TxEntry),
		nextTx:       make(map[outpoint.OutPoint]*TxEntry),
		timeSortData: btree.New(32),
	}
}

// GetTransactionsUpdated returns a counter bumped on every mutation,
// used by miners to detect a changed pool.
func (m *TxMempool) GetTransactionsUpdated() uint64 {
	return atomic.LoadUint64(&m.transactionsUpdated)
}

func (m *TxMempool) AddTransactionsUpdated(n uint64) {
	atomic.AddUint64(&m.transactionsUpdated, n)
}

func (m *TxMempool) Size() int {
	m.RLock()
	defer m.RUnlock()
	return len(m.poolData)
}

func (m *TxMempool) GetPoolAllTxSize() uint64 {
	m.RLock()
	defer m.RUnlock()
	return m.totalTxSize
}

func (m *TxMempool) GetPoolUsage() int64 {
	m.RLock()
	defer m.RUnlock()
	return m.cacheInnerUsage
}

// FindTx returns the entry for hash, nil when absent. Callers must
// hold the pool lock.
func (m *TxMempool) FindTx(hash util.Hash) *TxEntry {
	return m.poolData[hash]
}

func (m *TxMempool) Exists(hash util.Hash) bool {
	m.RLock()
	defer m.RUnlock()
	return m.poolData[hash] != nil
}

// GetAllTxEntry exposes the entry map. Callers must hold the pool
// lock and must not mutate entries.
func (m *TxMempool) GetAllTxEntry() map[util.Hash]*TxEntry {
	return m.poolData
}

// AddTx inserts the entry, wiring parent/child links and updating the
// ancestor and descendant statistics of related entries.
func (m *TxMempool) AddTx(entry *TxEntry) error {
	m.Lock()
	defer m.Unlock()

	ancestors, err := m.calculateMemPoolAncestors(entry.Tx, nNoLimit, nNoLimit, nNoLimit, nNoLimit, true)
	if err != nil {
		return err
	}
	return m.addTxLocked(entry, ancestors)
}

// AddTxWithAncestors is AddTx for callers that already computed the
// ancestor set.
func (m *TxMempool) AddTxWithAncestors(entry *TxEntry, ancestors *set.Set) error {
	m.Lock()
	defer m.Unlock()
	return m.addTxLocked(entry, ancestors)
}

func (m *TxMempool) addTxLocked(entry *TxEntry, ancestors *set.Set) error {
	hash := entry.Tx.GetHash()
	if _, ok := m.poolData[hash]; ok {
		return errors.Errorf("tx %s already in mempool", hash.String())
	}

	for _, prevout := range entry.Tx.GetAllPreviousOut() {
		m.nextTx[prevout] = entry
		if parent, ok := m.poolData[prevout.Hash]; ok {
			entry.UpdateParent(parent, true)
		}
	}

	m.updateAncestorsOf(true, entry, ancestors)
	m.updateEntryForAncestors(entry, ancestors)

	m.poolData[hash] = entry
	m.timeSortData.ReplaceOrInsert(entry)
	m.totalTxSize += uint64(entry.TxSize)
	m.cacheInnerUsage += entry.GetUsageSize()
	atomic.AddUint64(&m.transactionsUpdated, 1)

	return nil
}

// CalculateMemPoolAncestors returns the in-pool ancestor set of a
// transaction that may not be in the pool yet, searching the pool for
// its parents. The limits cap the package that would result from
// accepting it.
func (m *TxMempool) CalculateMemPoolAncestors(transaction *tx.Tx, limitAncestorCount, limitAncestorSize,
	limitDescendantCount, limitDescendantSize uint64, searchForParents bool) (*set.Set, error) {
	m.RLock()
	defer m.RUnlock()
	return m.calculateMemPoolAncestors(transaction, limitAncestorCount, limitAncestorSize,
		limitDescendantCount, limitDescendantSize, searchForParents)
}

// CalculateAncestorsNoLimit is the unbounded variant used during block
// assembly where the pool state is already known to respect limits.
// Callers must hold the pool lock.
func (m *TxMempool) CalculateAncestorsNoLimit(transaction *tx.Tx) *set.Set {
	ancestors, _ := m.calculateMemPoolAncestors(transaction, nNoLimit, nNoLimit, nNoLimit, nNoLimit, false)
	return ancestors
}

func (m *TxMempool) calculateMemPoolAncestors(transaction *tx.Tx, limitAncestorCount, limitAncestorSize,
	limitDescendantCount, limitDescendantSize uint64, searchForParents bool) (*set.Set, error) {

	ancestors := set.New()
	parents := set.New()

	if searchForParents {
		// The transaction is not in the pool, so find which of its
		// inputs it spends from the pool.
		for _, prevHash := range transaction.PrevoutHashs() {
			if parent, ok := m.poolData[prevHash]; ok {
				parents.Add(parent)
				if uint64(parents.Size()+1) > limitAncestorCount {
					return nil, errors.Errorf("too many unconfirmed parents [limit: %d]", limitAncestorCount)
				}
			}
		}
	} else {
		entry, ok := m.poolData[transaction.GetHash()]
		if !ok {
			return nil, errors.New("the entry is not in mempool")
		}
		for parent := range entry.ParentTx {
			parents.Add(parent)
		}
	}

	totalSizeWithAncestors := uint64(transaction.SerializeSize())
	parentList := parents.List()
	for len(parentList) > 0 {
		stage := parentList[0].(*TxEntry)
		parentList = parentList[1:]
		ancestors.Add(stage)
		totalSizeWithAncestors += uint64(stage.TxSize)

		hash := stage.Tx.GetHash()
		if uint64(stage.SumTxSizeWithDescendants)+uint64(transaction.SerializeSize()) > limitDescendantSize {
			return nil, errors.Errorf("exceeds descendant size limit for tx %s [limit: %d]",
				hash.String(), limitDescendantSize)
		} else if uint64(stage.SumTxCountWithDescendants)+1 > limitDescendantCount {
			return nil, errors.Errorf("too many descendants for tx %s [limit: %d]",
				hash.String(), limitDescendantCount)
		} else if totalSizeWithAncestors > limitAncestorSize {
			return nil, errors.Errorf("exceeds ancestor size limit [limit: %d]", limitAncestorSize)
		}

		for parent := range stage.ParentTx {
			if !ancestors.Has(parent) {
				parentList = append(parentList, parent)
			}
			if uint64(len(parentList)+ancestors.Size()+1) > limitAncestorCount {
				return nil, errors.Errorf("too many unconfirmed ancestors [limit: %d]", limitAncestorCount)
			}
		}
	}

	return ancestors, nil
}

// CalculateDescendants accumulates entry and every in-pool descendant
// into descendants. Entries already present are treated as processed.
// Callers must hold the pool lock.
func (m *TxMempool) CalculateDescendants(entry *TxEntry, descendants *set.Set) {
	stage := make([]*TxEntry, 0)
	if !descendants.Has(entry) {
		stage = append(stage, entry)
	}

	// Traverse down the children of entry, only adding children that
	// are not accounted for yet.
	for len(stage) > 0 {
		desc := stage[0]
		stage = stage[1:]
		descendants.Add(desc)

		for child := range desc.ChildTx {
			if !descendants.Has(child) {
				stage = append(stage, child)
			}
		}
	}
}

// RemoveForBlock evicts the transactions committed by a connected
// block and detaches them from the remaining package statistics.
func (m *TxMempool) RemoveForBlock(txs []*tx.Tx) {
	m.Lock()
	defer m.Unlock()

	for _, transaction := range txs {
		if entry, ok := m.poolData[transaction.GetHash()]; ok {
			stage := set.New()
			stage.Add(entry)
			m.removeStaged(stage, true)
		}
		m.removeConflicts(transaction)
	}
	atomic.AddUint64(&m.transactionsUpdated, 1)
}

// RemoveTxRecursive evicts origTx and every descendant.
func (m *TxMempool) RemoveTxRecursive(origTx *tx.Tx) {
	m.Lock()
	defer m.Unlock()

	txToRemove := set.New()
	if entry, ok := m.poolData[origTx.GetHash()]; ok {
		txToRemove.Add(entry)
	} else {
		// The transaction is not in the pool but its outputs may be
		// spent from it, when reorgs resurface conflicting spends.
		for i := 0; i < origTx.GetOutsCount(); i++ {
			out := outpoint.OutPoint{Hash: origTx.GetHash(), Index: uint32(i)}
			if spender, ok := m.nextTx[out]; ok {
				txToRemove.Add(spender)
			}
		}
	}

	allRemoves := set.New()
	txToRemove.Each(func(item interface{}) bool {
		m.CalculateDescendants(item.(*TxEntry), allRemoves)
		return true
	})
	m.removeStaged(allRemoves, false)
	atomic.AddUint64(&m.transactionsUpdated, 1)
}

func (m *TxMempool) removeConflicts(transaction *tx.Tx) {
	for _, prevout := range transaction.GetAllPreviousOut() {
		if conflict, ok := m.nextTx[prevout]; ok {
			conflictHash := conflict.Tx.GetHash()
			if conflictHash != transaction.GetHash() {
				stage := set.New()
				m.CalculateDescendants(conflict, stage)
				m.removeStaged(stage, false)
			}
		}
	}
}

func (m *TxMempool) removeStaged(stage *set.Set, updateDescendants bool) {
	m.updateForRemoveFromMempool(stage, updateDescendants)
	stage.Each(func(item interface{}) bool {
		m.delTxEntry(item.(*TxEntry))
		return true
	})
}

func (m *TxMempool) updateForRemoveFromMempool(entriesToRemove *set.Set, updateDescendants bool) {
	if updateDescendants {
		// The removed transactions are confirmed, so the remaining
		// descendants lose ancestor state but keep validity.
		entriesToRemove.Each(func(item interface{}) bool {
			entry := item.(*TxEntry)
			descendants := set.New()
			m.CalculateDescendants(entry, descendants)
			descendants.Remove(entry)
			descendants.Each(func(d interface{}) bool {
				desc := d.(*TxEntry)
				desc.UpdateAncestorState(-1, -entry.TxSize, -entry.SigOpCount, -entry.TxFee)
				return true
			})
			return true
		})
	}

	entriesToRemove.Each(func(item interface{}) bool {
		entry := item.(*TxEntry)
		ancestors := m.CalculateAncestorsNoLimit(entry.Tx)
		if ancestors != nil {
			m.updateAncestorsOf(false, entry, ancestors)
		}
		return true
	})

	entriesToRemove.Each(func(item interface{}) bool {
		entry := item.(*TxEntry)
		for child := range entry.ChildTx {
			child.UpdateParent(entry, false)
		}
		return true
	})
}

func (m *TxMempool) delTxEntry(entry *TxEntry) {
	hash := entry.Tx.GetHash()
	if _, ok := m.poolData[hash]; !ok {
		return
	}
	for _, prevout := range entry.Tx.GetAllPreviousOut() {
		delete(m.nextTx, prevout)
	}
	m.timeSortData.Delete(entry)
	delete(m.poolData, hash)
	m.totalTxSize -= uint64(entry.TxSize)
	m.cacheInnerUsage -= entry.GetUsageSize()
}

// updateAncestorsOf adds or removes entry as a descendant of each of
// its ancestors.
func (m *TxMempool) updateAncestorsOf(add bool, entry *TxEntry, ancestors *set.Set) {
	updateCount := 1
	if !add {
		updateCount = -1
	}
	updateSize := updateCount * entry.TxSize
	updateFee := int64(updateCount) * entry.TxFee

	for parent := range entry.ParentTx {
		parent.UpdateChild(entry, add)
	}

	ancestors.Each(func(item interface{}) bool {
		ancestor := item.(*TxEntry)
		ancestor.UpdateDescendantState(updateCount, updateSize, updateFee)
		return true
	})
}

// updateEntryForAncestors folds the ancestor set statistics into a
// newly added entry.
func (m *TxMempool) updateEntryForAncestors(entry *TxEntry, ancestors *set.Set) {
	updateCount := ancestors.Size()
	updateSize := 0
	updateFee := int64(0)
	updateSigOps := 0
	ancestors.Each(func(item interface{}) bool {
		ancestor := item.(*TxEntry)
		updateSize += ancestor.TxSize
		updateFee += ancestor.TxFee
		updateSigOps += ancestor.SigOpCount
		return true
	})
	entry.UpdateAncestorState(updateCount, updateSize, updateSigOps, updateFee)
}

// HasNoInputsOf reports whether transaction spends nothing from the
// pool.
func (m *TxMempool) HasNoInputsOf(transaction *tx.Tx) bool {
	m.RLock()
	defer m.RUnlock()
	for _, prevHash := range transaction.PrevoutHashs() {
		if _, ok := m.poolData[prevHash]; ok {
			return false
		}
	}
	return true
}
