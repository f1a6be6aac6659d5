package mempool

import (
	"unsafe"

	"github.com/google/btree"

	"github.com/FortuneBlockTeam/fortuneblock/model/chain"
	"github.com/FortuneBlockTeam/fortuneblock/model/tx"
	"github.com/FortuneBlockTeam/fortuneblock/util"
)

type TxEntry struct {
	Tx     *tx.Tx
	TxSize int
	// TxFee is the ordinary fee paid by this transaction
	TxFee int64
	// SpecialTxFee is the extra fee carried by special transaction
	// types, accounted separately from ordinary fees
	SpecialTxFee int64
	TxHeight     int32
	// SigOpCount sigop plus P2SH sigops count
	SigOpCount int
	// time Local time when entering the memPool
	time int64
	// usageSize is the approximate total memory usage
	usageSize int
	// ChildTx is the tx's in-pool direct children
	ChildTx map[*TxEntry]struct{}
	// ParentTx is the tx's in-pool direct parents
	ParentTx map[*TxEntry]struct{}
	// lp Track the height and time at which tx was final
	lp LockPoints
	// spendsCoinbase keeps track of transactions that spend a coinbase
	spendsCoinbase bool

	// Statistics Information for every txentry with its ancestors and
	// descendants.
	StatisInformation
}

type StatisInformation struct {
	// SumTxCountWithDescendants is this tx and all descendants. Starts at 1.
	SumTxCountWithDescendants int64
	SumTxFeeWithDescendants   int64
	SumTxSizeWithDescendants  int64

	SumTxCountWithAncestors      int64
	SumTxSizeWitAncestors        int64
	SumTxSigOpCountWithAncestors int64
	SumTxFeeWithAncestors        int64
}

func NewTxentry(transaction *tx.Tx, txFee int64, acceptTime int64, height int32, lp LockPoints,
	sigOpsCount int, spendCoinbase bool) *TxEntry {
	t := new(TxEntry)
	t.Tx = transaction
	t.time = acceptTime
	t.TxSize = int(transaction.SerializeSize())
	t.TxFee = txFee
	t.usageSize = t.TxSize + int(unsafe.Sizeof(*t))
	t.spendsCoinbase = spendCoinbase
	t.lp = lp
	t.TxHeight = height
	t.SigOpCount = sigOpsCount

	t.SumTxSizeWithDescendants = int64(t.TxSize)
	t.SumTxFeeWithDescendants = txFee
	t.SumTxCountWithDescendants = 1

	t.SumTxFeeWithAncestors = txFee
	t.SumTxSizeWitAncestors = int64(t.TxSize)
	t.SumTxCountWithAncestors = 1
	t.SumTxSigOpCountWithAncestors = int64(sigOpsCount)

	t.ParentTx = make(map[*TxEntry]struct{})
	t.ChildTx = make(map[*TxEntry]struct{})

	return t
}

func (t *TxEntry) GetSigOpCountWithAncestors() int64 {
	return t.SumTxSigOpCountWithAncestors
}

func (t *TxEntry) GetUsageSize() int64 {
	return int64(t.usageSize)
}

func (t *TxEntry) SetLockPointFromTxEntry(lp LockPoints) {
	t.lp = lp
}

func (t *TxEntry) GetLockPointFromTxEntry() LockPoints {
	return t.lp
}

func (t *TxEntry) GetSpendsCoinbase() bool {
	return t.spendsCoinbase
}

func (t *TxEntry) GetTime() int64 {
	return t.time
}

// UpdateParent adds or removes a direct parent.
func (t *TxEntry) UpdateParent(parent *TxEntry, add bool) {
	if add {
		t.ParentTx[parent] = struct{}{}
		return
	}
	delete(t.ParentTx, parent)
}

func (t *TxEntry) UpdateChild(child *TxEntry, add bool) {
	if add {
		t.ChildTx[child] = struct{}{}
		return
	}
	delete(t.ChildTx, child)
}

func (t *TxEntry) UpdateChildOfParents(add bool) {
	for piter := range t.ParentTx {
		piter.UpdateChild(t, add)
	}
}

func (t *TxEntry) UpdateDescendantState(updateCount, updateSize int, updateFee int64) {
	t.SumTxCountWithDescendants += int64(updateCount)
	t.SumTxSizeWithDescendants += int64(updateSize)
	t.SumTxFeeWithDescendants += updateFee
}

func (t *TxEntry) UpdateAncestorState(updateCount, updateSize, updateSigOps int, updateFee int64) {
	t.SumTxSizeWitAncestors += int64(updateSize)
	t.SumTxCountWithAncestors += int64(updateCount)
	t.SumTxSigOpCountWithAncestors += int64(updateSigOps)
	t.SumTxFeeWithAncestors += updateFee
}

func (t *TxEntry) Less(than btree.Item) bool {
	th := than.(*TxEntry)
	if t.time == th.time {
		thash := t.Tx.GetHash()
		thhash := th.Tx.GetHash()
		return thash.Cmp(&thhash) > 0
	}
	return t.time < th.time
}

func (t *TxEntry) GetFeeRate() *util.FeeRate {
	return util.NewFeeRateWithSize(t.TxFee, int64(t.TxSize))
}

func (t *TxEntry) CheckLockPointValidity(chain *chain.Chain) bool {
	if t.lp.MaxInputBlock != nil {
		if !chain.Contains(t.lp.MaxInputBlock) {
			return false
		}
	}
	return true
}

// EntryAncestorFeeRateSort orders entries by the fee rate of the
// package formed with their in-pool ancestors, highest first. Ties
// break on transaction hash so iteration order is deterministic.
type EntryAncestorFeeRateSort TxEntry

func (r EntryAncestorFeeRateSort) Less(than btree.Item) bool {
	t := than.(EntryAncestorFeeRateSort)
	b1 := util.NewFeeRateWithSize(r.SumTxFeeWithAncestors, r.SumTxSizeWitAncestors).SataoshisPerK
	b2 := util.NewFeeRateWithSize(t.SumTxFeeWithAncestors, t.SumTxSizeWitAncestors).SataoshisPerK
	if b1 == b2 {
		rhash := r.Tx.GetHash()
		thhash := t.Tx.GetHash()
		return rhash.Cmp(&thhash) > 0
	}
	return b1 < b2
}
