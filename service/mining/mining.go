package mining

import (
	"sort"

	"github.com/google/btree"
	"github.com/pkg/errors"

	"github.com/FortuneBlockTeam/fortuneblock/errcode"
	"github.com/FortuneBlockTeam/fortuneblock/log"
	"github.com/FortuneBlockTeam/fortuneblock/logic/lblock"
	"github.com/FortuneBlockTeam/fortuneblock/logic/ltx"
	"github.com/FortuneBlockTeam/fortuneblock/logic/merkleroot"
	"github.com/FortuneBlockTeam/fortuneblock/model/block"
	"github.com/FortuneBlockTeam/fortuneblock/model/blockindex"
	"github.com/FortuneBlockTeam/fortuneblock/model/chain"
	"github.com/FortuneBlockTeam/fortuneblock/model/chainparams"
	"github.com/FortuneBlockTeam/fortuneblock/model/consensus"
	"github.com/FortuneBlockTeam/fortuneblock/model/fortune"
	"github.com/FortuneBlockTeam/fortuneblock/model/mempool"
	"github.com/FortuneBlockTeam/fortuneblock/model/pow"
	"github.com/FortuneBlockTeam/fortuneblock/model/script"
	"github.com/FortuneBlockTeam/fortuneblock/model/tx"
	"github.com/FortuneBlockTeam/fortuneblock/util"
	"github.com/FortuneBlockTeam/fortuneblock/util/amount"
)

const (
	CoinbaseFlag = "fortuneblock"

	blockVersion = 4
)

// QuorumCommitmentSource supplies consensus-mandated commitment
// transactions that must enter the block ahead of fee-based selection.
type QuorumCommitmentSource interface {
	MineableCommitments(height int32) []*tx.Tx
}

// BlockTemplate is a freshly assembled block plus the per-transaction
// accounting arrays, index-aligned with Block.Txs. Slot 0 belongs to
// the coinbase and holds the negated fee totals.
type BlockTemplate struct {
	Block         *block.Block
	TxFees        []amount.Amount
	TxSigOpsCount []int
	TxSpecialFees []amount.Amount

	// PrevBits is the previous block's difficulty bits, carried for
	// callers that verify the subsidy computation.
	PrevBits uint32
}

func newBlockTemplate() *BlockTemplate {
	return &BlockTemplate{
		Block:         block.NewBlock(),
		TxFees:        make([]amount.Amount, 0),
		TxSigOpsCount: make([]int, 0),
		TxSpecialFees: make([]amount.Amount, 0),
	}
}

// BlockAssembler generates a new block template, without valid
// proof-of-work. All selection state is private to one assembly call.
type BlockAssembler struct {
	pool        *mempool.TxMempool
	chainView   *chain.Chain
	chainParams *chainparams.Params

	quorumSource   QuorumCommitmentSource
	smartnodePayer SmartnodePayer
	reservePayer   ReservePayer
	payloadBuilder CoinbasePayloadBuilder
	fortunePayment *fortune.FortunePayment

	bt                    *BlockTemplate
	maxGeneratedBlockSize uint64
	blockMinFeeRate       util.FeeRate
	blockSize             uint64
	blockTx               uint64
	blockSigOps           uint64
	fees                  amount.Amount
	specialTxFees         amount.Amount
	inBlock               map[util.Hash]struct{}
	height                int32
	lockTimeCutoff        int64
}

func NewBlockAssembler(pool *mempool.TxMempool, chainView *chain.Chain,
	params *chainparams.Params) *BlockAssembler {

	ba := new(BlockAssembler)
	ba.pool = pool
	ba.chainView = chainView
	ba.chainParams = params
	ba.blockMinFeeRate = blockMinFeeRate()
	ba.fortunePayment = fortune.NewFortunePayment(params)
	return ba
}

func (ba *BlockAssembler) SetQuorumCommitmentSource(src QuorumCommitmentSource) {
	ba.quorumSource = src
}

func (ba *BlockAssembler) SetSmartnodePayer(payer SmartnodePayer) {
	ba.smartnodePayer = payer
}

func (ba *BlockAssembler) SetReservePayer(payer ReservePayer) {
	ba.reservePayer = payer
}

func (ba *BlockAssembler) SetCoinbasePayloadBuilder(builder CoinbasePayloadBuilder) {
	ba.payloadBuilder = builder
}

func (ba *BlockAssembler) resetBlockAssembler() {
	ba.inBlock = make(map[util.Hash]struct{})
	// Reserve space for the coinbase tx.
	ba.blockSize = coinbaseReservedSize
	ba.blockSigOps = coinbaseReservedSigOps

	// These counters do not include the coinbase tx.
	ba.blockTx = 0
	ba.fees = 0
	ba.specialTxFees = 0
}

func (ba *BlockAssembler) testPackage(packageSize uint64, packageSigOps int64) bool {
	blockSizeWithPackage := ba.blockSize + packageSize
	if blockSizeWithPackage >= ba.maxGeneratedBlockSize {
		return false
	}
	if ba.blockSigOps+uint64(packageSigOps) >= consensus.MaxBlockSigOps {
		return false
	}
	return true
}

// testPackageTransactions checks every member of the package for
// locktime finality at the new block's height and for safety with
// respect to the finality oracle, plus a serialized-size recheck.
func (ba *BlockAssembler) testPackageTransactions(entrySet []*mempool.TxEntry) bool {
	potentialBlockSize := ba.blockSize
	for _, entry := range entrySet {
		if err := ltx.ContextualCheckTransaction(entry.Tx, ba.height, ba.lockTimeCutoff); err != nil {
			return false
		}
		if !ltx.IsTxSafeForMining(entry.Tx.GetHash()) {
			return false
		}
		if potentialBlockSize+uint64(entry.TxSize) >= ba.maxGeneratedBlockSize {
			return false
		}
		potentialBlockSize += uint64(entry.TxSize)
	}
	return true
}

func (ba *BlockAssembler) addToBlock(te *mempool.TxEntry) {
	ba.bt.Block.Txs = append(ba.bt.Block.Txs, te.Tx)
	ba.bt.TxFees = append(ba.bt.TxFees, amount.Amount(te.TxFee))
	ba.bt.TxSigOpsCount = append(ba.bt.TxSigOpsCount, te.SigOpCount)
	ba.bt.TxSpecialFees = append(ba.bt.TxSpecialFees, amount.Amount(te.SpecialTxFee))
	ba.blockSize += uint64(te.TxSize)
	ba.blockTx++
	ba.blockSigOps += uint64(te.SigOpCount)
	ba.fees += amount.Amount(te.TxFee)
	ba.specialTxFees += amount.Amount(te.SpecialTxFee)
	ba.inBlock[te.Tx.GetHash()] = struct{}{}
}

type byAncsCount []*mempool.TxEntry

func (a byAncsCount) Len() int      { return len(a) }
func (a byAncsCount) Swap(i, j int) { a[i], a[j] = a[j], a[i] }
func (a byAncsCount) Less(i, j int) bool {
	return a[i].SumTxCountWithAncestors < a[j].SumTxCountWithAncestors
}

// sortForBlock orders a package by ascending ancestor count. A
// transaction always has more ancestors than anything it depends on,
// so this is a valid topological order for block inclusion.
func sortForBlock(pkg []*mempool.TxEntry) {
	sort.Sort(byAncsCount(pkg))
}

func (ba *BlockAssembler) onlyUnconfirmed(entryList []*mempool.TxEntry) []*mempool.TxEntry {
	result := make([]*mempool.TxEntry, 0, len(entryList))
	for _, entry := range entryList {
		if _, ok := ba.inBlock[entry.Tx.GetHash()]; !ok {
			result = append(result, entry)
		}
	}
	return result
}

func entryFromItem(item interface{}, strategy sortType) mempool.TxEntry {
	if strategy == sortByFee {
		return mempool.TxEntry(item.(EntryFeeSort))
	}
	return mempool.TxEntry(item.(mempool.EntryAncestorFeeRateSort))
}

// modifiedBeatsPrimary reports whether the tracker's best entry scores
// strictly higher than the primary index head. Ties go to the primary
// index.
func modifiedBeatsPrimary(strategy sortType, modBest *modifiedEntry, primary *mempool.TxEntry) bool {
	if modBest == nil {
		return false
	}
	if strategy == sortByFee {
		return modBest.feeWithAncestors > primary.SumTxFeeWithAncestors
	}
	return modBest.score() > ancestorScore(primary.SumTxFeeWithAncestors, primary.SumTxSizeWitAncestors)
}

// This transaction selection algorithm orders the mempool based on
// feerate of a transaction including all unconfirmed ancestors. Since
// we don't remove transactions from the mempool as we select them for
// block inclusion, we walk the in-pool descendants of selected
// transactions and keep a temporary modified state for them. Each time
// through the loop the best modified entry is compared with the next
// entry in the primary index to decide which package to work on next.
func (ba *BlockAssembler) addPackageTxs() int {
	descendantsUpdated := 0
	pool := ba.pool
	pool.RLock()
	defer pool.RUnlock()

	strategy := getStrategy()

	var txSet *btreeSet
	switch strategy {
	case sortByFee:
		txSet = &btreeSet{sortedByFeeWithAncestors(pool)}
	default:
		txSet = &btreeSet{sortedByFeeRateWithAncestors(pool)}
	}

	modified := newModifiedTxSet()
	failedTx := make(map[util.Hash]struct{})

	// Seed the tracker with descendants of anything pre-inserted
	// (consensus-mandated commitment transactions).
	preCommitted := make([]*mempool.TxEntry, 0, len(ba.inBlock))
	for hash := range ba.inBlock {
		if entry := pool.FindTx(hash); entry != nil {
			preCommitted = append(preCommitted, entry)
		}
	}
	descendantsUpdated += modified.adjustForCommitted(pool, preCommitted, ba.inBlock)

	consecutiveFailed := 0

	for txSet.len() > 0 || modified.len() > 0 {
		// Skip primary entries whose pool aggregates are stale or that
		// have already been handled.
		if txSet.len() > 0 {
			headHash := entryFromItem(txSet.peekMax(), strategy).Tx.GetHash()
			_, committed := ba.inBlock[headHash]
			_, failed := failedTx[headHash]
			if committed || failed || modified.contains(headHash) {
				txSet.deleteMax()
				continue
			}
		}

		// Choose the next package: the head of the primary index or the
		// best tracker entry, whichever scores higher. A tie favors the
		// primary index.
		var entry *mempool.TxEntry
		var packageSize int64
		var packageFee int64
		var packageSigOps int64
		usingModified := false

		modBest := modified.best()
		if txSet.len() == 0 {
			if modBest == nil {
				break
			}
			entry = modBest.entry
			packageSize = modBest.sizeWithAncestors
			packageFee = modBest.feeWithAncestors
			packageSigOps = modBest.sigOpCountWithAncestors
			usingModified = true
		} else {
			head := entryFromItem(txSet.peekMax(), strategy)
			primary := pool.FindTx(head.Tx.GetHash())
			if primary == nil {
				txSet.deleteMax()
				continue
			}
			if modifiedBeatsPrimary(strategy, modBest, primary) {
				entry = modBest.entry
				packageSize = modBest.sizeWithAncestors
				packageFee = modBest.feeWithAncestors
				packageSigOps = modBest.sigOpCountWithAncestors
				usingModified = true
			} else {
				entry = primary
				packageSize = primary.SumTxSizeWitAncestors
				packageFee = primary.SumTxFeeWithAncestors
				packageSigOps = primary.SumTxSigOpCountWithAncestors
				txSet.deleteMax()
			}
		}
		entryHash := entry.Tx.GetHash()

		// Everything else we might consider has a lower fee rate, so
		// the loop ends here.
		if packageFee < ba.blockMinFeeRate.GetFee(int(packageSize)) {
			break
		}

		if !ba.testPackage(uint64(packageSize), packageSigOps) {
			if usingModified {
				// The tracker always exposes its best entry, so a
				// failed one must be dropped for the next-best to be
				// considered on the following iteration.
				modified.remove(entryHash)
				failedTx[entryHash] = struct{}{}
			}
			consecutiveFailed++
			if consecutiveFailed > maxConsecutiveFailures &&
				ba.blockSize > ba.maxGeneratedBlockSize-1000 {
				// Give up if we're close to full and haven't succeeded
				// in a while.
				break
			}
			continue
		}

		ancestorSet := pool.CalculateAncestorsNoLimit(entry.Tx)
		ancestorsList := make([]*mempool.TxEntry, 0)
		if ancestorSet != nil {
			ancestorSet.Each(func(item interface{}) bool {
				ancestorsList = append(ancestorsList, item.(*mempool.TxEntry))
				return true
			})
		}
		ancestorsList = ba.onlyUnconfirmed(ancestorsList)
		ancestorsList = append(ancestorsList, entry)
		sortForBlock(ancestorsList)

		if !ba.testPackageTransactions(ancestorsList) {
			if usingModified {
				modified.remove(entryHash)
				failedTx[entryHash] = struct{}{}
			}
			continue
		}

		// This package will make it in; reset the failed counter.
		consecutiveFailed = 0

		for _, item := range ancestorsList {
			ba.addToBlock(item)
			modified.remove(item.Tx.GetHash())
		}

		descendantsUpdated += modified.adjustForCommitted(pool, ancestorsList, ba.inBlock)
	}
	return descendantsUpdated
}

// CreateNewBlock assembles a template paying scriptPubKey. It returns
// an error when a precondition fails or the finished block does not
// validate; the caller retries with fresh state.
func (ba *BlockAssembler) CreateNewBlock(scriptPubKey, scriptSig *script.Script) (*BlockTemplate, error) {
	timeStart := util.GetMicrosTime()

	ba.resetBlockAssembler()
	ba.bt = newBlockTemplate()

	// Dummy coinbase as first transaction, replaced at the end.
	ba.bt.Block.Txs = append(ba.bt.Block.Txs, tx.NewTx(0, tx.TxVersion))
	ba.bt.TxFees = append(ba.bt.TxFees, -1)
	ba.bt.TxSigOpsCount = append(ba.bt.TxSigOpsCount, -1)
	ba.bt.TxSpecialFees = append(ba.bt.TxSpecialFees, -1)

	indexPrev := ba.chainView.Tip()
	if indexPrev == nil {
		return nil, errors.New("chain has no tip, cannot assemble on top of nothing")
	}
	ba.height = indexPrev.Height + 1
	if ba.height == 1 {
		// The swap coinbase carries one output per table entry, far
		// more than the usual reserve covers.
		ba.blockSize = coinbaseReservedSize + uint64(len(chainparams.GenesisSwapTable))*p2pkhOutputSize
	}

	maxSize, err := computeMaxGeneratedBlockSize()
	if err != nil {
		return nil, err
	}
	ba.maxGeneratedBlockSize = maxSize
	ba.blockMinFeeRate = blockMinFeeRate()

	ba.bt.Block.Header.Version = blockVersion
	ba.bt.Block.Header.Time = uint32(util.GetAdjustedTime())
	ba.lockTimeCutoff = indexPrev.GetMedianTimePast()

	// Consensus-mandated commitment transactions go in ahead of fee
	// based selection and carry no ordinary fee.
	if ba.quorumSource != nil {
		for _, qcTx := range ba.quorumSource.MineableCommitments(ba.height) {
			ba.bt.Block.Txs = append(ba.bt.Block.Txs, qcTx)
			ba.bt.TxFees = append(ba.bt.TxFees, 0)
			ba.bt.TxSigOpsCount = append(ba.bt.TxSigOpsCount, 0)
			ba.bt.TxSpecialFees = append(ba.bt.TxSpecialFees, 0)
			ba.blockSize += uint64(qcTx.SerializeSize())
			ba.blockTx++
			ba.inBlock[qcTx.GetHash()] = struct{}{}
		}
	}

	descendantsUpdated := ba.addPackageTxs()
	time1 := util.GetMicrosTime()

	coinbaseTx, err := ba.createCoinbase(scriptPubKey, scriptSig, indexPrev)
	if err != nil {
		log.Error("CreateNewBlock: coinbase composition failed: %v", err)
		return nil, err
	}
	ba.bt.Block.Txs[0] = coinbaseTx
	// Slot 0 carries the negated totals so callers can recover them.
	ba.bt.TxFees[0] = -ba.fees
	ba.bt.TxSpecialFees[0] = -ba.specialTxFees
	ba.bt.TxSigOpsCount[0] = coinbaseTx.GetSigOpCount()

	log.Info("CreateNewBlock(): total size: %d txs: %d fees: %d specialTxFees: %d sigops: %d",
		ba.bt.Block.SerializeSize(), ba.blockTx, ba.fees, ba.specialTxFees, ba.blockSigOps)

	// Fill in the header.
	ba.bt.Block.Header.HashPrevBlock = *indexPrev.GetBlockHash()
	UpdateTime(ba.bt.Block, indexPrev, ba.chainParams)
	p := pow.Pow{}
	ba.bt.Block.Header.Bits = p.GetNextWorkRequired(indexPrev, &ba.bt.Block.Header, ba.chainParams)
	ba.bt.Block.Header.Nonce = 0
	ba.bt.Block.Header.MerkleRoot = merkleroot.BlockMerkleRoot(ba.bt.Block.Txs, nil)
	ba.bt.PrevBits = indexPrev.Header.Bits

	if err := ba.TestBlockValidity(ba.bt.Block, indexPrev); err != nil {
		log.Error("CreateNewBlock: TestBlockValidity failed: %v", err)
		return nil, err
	}

	time2 := util.GetMicrosTime()
	log.Debug("CreateNewBlock() packages: %.2fms (%d txs, %d updated descendants), validity: %.2fms (total %.2fms)",
		0.001*float64(time1-timeStart), ba.blockTx, descendantsUpdated,
		0.001*float64(time2-time1), 0.001*float64(time2-timeStart))

	return ba.bt, nil
}

// TestBlockValidity re-checks the assembled block before release; a
// failure means the template must not be handed to the proof-of-work
// search.
func (ba *BlockAssembler) TestBlockValidity(blk *block.Block, indexPrev *blockindex.BlockIndex) error {
	if indexPrev != ba.chainView.Tip() {
		return errcode.New(errcode.ErrTemplateStale)
	}
	if err := lblock.CheckBlock(blk, false, false); err != nil {
		return err
	}
	if err := lblock.ContextualCheckBlock(blk, indexPrev); err != nil {
		return err
	}
	return nil
}

// UpdateTime refreshes the header timestamp without re-running
// selection, keeping it above the median time past. On networks
// allowing min-difficulty blocks this can change the work required.
func UpdateTime(bk *block.Block, indexPrev *blockindex.BlockIndex, params *chainparams.Params) int64 {
	oldTime := int64(bk.Header.Time)
	newTime := indexPrev.GetMedianTimePast() + 1
	if at := util.GetAdjustedTime(); at > newTime {
		newTime = at
	}
	if oldTime < newTime {
		bk.Header.Time = uint32(newTime)
	}

	if params.FPowAllowMinDifficultyBlocks {
		p := pow.Pow{}
		bk.Header.Bits = p.GetNextWorkRequired(indexPrev, &bk.Header, params)
	}

	return newTime - oldTime
}

// CoinbaseScriptSig builds the input script of a generated coinbase:
// the new block height, the extra nonce and the client tag.
func CoinbaseScriptSig(height int32, extraNonce uint64) *script.Script {
	scriptSig := script.NewEmptyScript()
	scriptSig.PushInt64(int64(height))
	scriptSig.PushInt64(int64(extraNonce))
	scriptSig.PushData([]byte(CoinbaseFlag))
	return scriptSig
}

// BasicScriptSig is the minimal height-only coinbase input script.
func BasicScriptSig(height int32) *script.Script {
	scriptSig := script.NewEmptyScript()
	scriptSig.PushInt64(int64(height))
	return scriptSig
}

// btreeSet is a small wrapper so the selection loop can treat the
// snapshot index as a consumable max-ordered set.
type btreeSet struct {
	tree *btree.BTree
}

func (s *btreeSet) len() int {
	return s.tree.Len()
}

func (s *btreeSet) peekMax() btree.Item {
	return s.tree.Max()
}

func (s *btreeSet) deleteMax() {
	s.tree.DeleteMax()
}
