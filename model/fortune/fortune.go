package fortune

import (
	"math"

	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"

	"github.com/FortuneBlockTeam/fortuneblock/errcode"
	"github.com/FortuneBlockTeam/fortuneblock/log"
	"github.com/FortuneBlockTeam/fortuneblock/model/chain"
	"github.com/FortuneBlockTeam/fortuneblock/model/chainparams"
	"github.com/FortuneBlockTeam/fortuneblock/model/script"
	"github.com/FortuneBlockTeam/fortuneblock/model/tx"
	"github.com/FortuneBlockTeam/fortuneblock/model/txout"
	"github.com/FortuneBlockTeam/fortuneblock/util/amount"
)

const payeeCacheSize = 512

// FortunePayment computes and fills the lucky reward output of a
// coinbase transaction. The payout amount follows the percentage
// schedule from the chain parameters; the payee is derived from the
// chain itself so every block rewards a pseudo random past miner.
type FortunePayment struct {
	rewardStructures []chainparams.FortuneRewardStructure
	startBlock       int32
	defaultAddress   string

	payeeCache *lru.Cache
}

func NewFortunePayment(params *chainparams.Params) *FortunePayment {
	cache, _ := lru.New(payeeCacheSize)
	return &FortunePayment{
		rewardStructures: params.FortuneRewardStructures,
		startBlock:       params.FortuneStartBlock,
		defaultAddress:   params.FortuneDefaultAddress,
		payeeCache:       cache,
	}
}

// GetFortunePaymentAmount returns the lucky payment carved out of
// blockReward at blockHeight. Heights at or before the schedule start
// pay nothing. Ranges are scanned in order and the first one whose
// bound covers the height wins; math.MaxInt32 marks the unbounded
// terminal range.
func (fp *FortunePayment) GetFortunePaymentAmount(blockHeight int32, blockReward amount.Amount) amount.Amount {
	if blockHeight <= fp.startBlock {
		return 0
	}
	for _, rewardStructure := range fp.rewardStructures {
		if rewardStructure.BlockHeight == math.MaxInt32 || blockHeight <= rewardStructure.BlockHeight {
			return blockReward * amount.Amount(rewardStructure.Percentage) / 100
		}
	}
	return 0
}

// LuckyPayee derives the payout script for the block at nBlockHeight.
//
// The block hash at effectiveHeight = nBlockHeight-1 seeds the pick:
// its four 64 bit words are folded with xor and reduced modulo the
// looked up block's own stored height, and the coinbase payout script
// of the block at the resulting height wins the payment. When the
// effective height falls outside the chain, or the winning block has
// no recorded payout script, the configured default address is paid.
func (fp *FortunePayment) LuckyPayee(chainView *chain.Chain, nBlockHeight int32) (*script.Script, error) {
	effectiveHeight := nBlockHeight - 1
	if effectiveHeight < 1 || effectiveHeight > chainView.TipHeight() {
		return fp.defaultPayee()
	}

	seedIndex := chainView.GetIndexByHeight(effectiveHeight)
	if seedIndex == nil {
		return fp.defaultPayee()
	}

	seedHash := seedIndex.GetBlockHash()
	if cached, ok := fp.payeeCache.Get(*seedHash); ok {
		return cached.(*script.Script), nil
	}

	words := seedHash.Words()
	// The modulus is the seed block's own height field rather than the
	// tip height, so the derivation stays stable under later growth of
	// the chain.
	luckyHeight := int32((words[0] ^ words[1] ^ words[2] ^ words[3]) % uint64(seedIndex.Height))

	luckyIndex := chainView.GetIndexByHeight(luckyHeight)
	if luckyIndex == nil || luckyIndex.CoinbasePayee == nil {
		return fp.defaultPayee()
	}

	fp.payeeCache.Add(*seedHash, luckyIndex.CoinbasePayee)
	return luckyIndex.CoinbasePayee, nil
}

func (fp *FortunePayment) defaultPayee() (*script.Script, error) {
	addr, err := script.AddressFromString(fp.defaultAddress)
	if err != nil {
		log.Error("fortune: invalid default address %s: %v", fp.defaultAddress, err)
		return nil, errcode.New(errcode.ErrBadFortuneAddress)
	}
	return addr.PayToPubKeyHashScript(), nil
}

// FillFortunePayment appends the lucky output to coinbaseTx and
// deducts it from the miner remainder at output 0. Heights the
// schedule pays nothing for leave the coinbase untouched.
func (fp *FortunePayment) FillFortunePayment(coinbaseTx *tx.Tx, chainView *chain.Chain,
	nBlockHeight int32, blockReward amount.Amount) (*txout.TxOut, error) {

	fortunePayment := fp.GetFortunePaymentAmount(nBlockHeight, blockReward)
	if fortunePayment == 0 {
		return nil, nil
	}

	payee, err := fp.LuckyPayee(chainView, nBlockHeight)
	if err != nil {
		return nil, err
	}
	if payee == nil {
		return nil, errors.New("fortune: no payee available")
	}

	minerOut := coinbaseTx.GetTxOut(0)
	if minerOut == nil {
		return nil, errors.New("fortune: coinbase has no miner output")
	}
	minerOut.SetValue(minerOut.GetValue() - fortunePayment)

	fortuneOut := txout.NewTxOut(fortunePayment, payee)
	coinbaseTx.AddTxOut(fortuneOut)
	log.Info("fortune: payment %d at height %d", fortunePayment, nBlockHeight)
	return fortuneOut, nil
}
