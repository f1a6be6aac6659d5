package mining

import (
	"math"

	"github.com/FortuneBlockTeam/fortuneblock/errcode"
	"github.com/FortuneBlockTeam/fortuneblock/log"
	"github.com/FortuneBlockTeam/fortuneblock/model/block"
	"github.com/FortuneBlockTeam/fortuneblock/model/blockindex"
	"github.com/FortuneBlockTeam/fortuneblock/model/chainparams"
	"github.com/FortuneBlockTeam/fortuneblock/model/outpoint"
	"github.com/FortuneBlockTeam/fortuneblock/model/script"
	"github.com/FortuneBlockTeam/fortuneblock/model/tx"
	"github.com/FortuneBlockTeam/fortuneblock/model/txin"
	"github.com/FortuneBlockTeam/fortuneblock/model/txout"
	"github.com/FortuneBlockTeam/fortuneblock/util/amount"
)

// SmartnodePayer appends service provider outputs to the coinbase,
// reducing the miner remainder at output 0. The base for percentage
// calculations is the normal reward: subsidy plus ordinary fees,
// excluding special transaction fees.
type SmartnodePayer interface {
	FillServiceProviderPayments(coinbaseTx *tx.Tx, height int32, normalReward amount.Amount) ([]*txout.TxOut, error)
}

// ReservePayer splits the configured future-reserve fraction of the
// reward into further outputs, again reducing the miner remainder.
type ReservePayer interface {
	FillFutureReserveShare(coinbaseTx *tx.Tx, height int32, normalReward amount.Amount) ([]*txout.TxOut, error)
}

// CoinbasePayloadBuilder computes the extra payload of the special
// coinbase transaction (payout-list commitment roots). A builder may
// return an error carrying errcode.ErrBadPayoutListHash for the one
// known-recoverable condition; the composer substitutes a zeroed
// payload in that case instead of aborting.
type CoinbasePayloadBuilder interface {
	BuildCoinbasePayload(blk *block.Block, indexPrev *blockindex.BlockIndex, height int32) ([]byte, error)
}

// coinbasePayloadSize is the serialized size of the zeroed fallback
// payload: version, height and two null commitment roots.
const coinbasePayloadSize = 2 + 4 + 32 + 32

// createCoinbase composes the reward distribution for the block being
// assembled. Output 0 is the miner remainder; every payment layer
// appends its own output and subtracts from it. Height one replaces
// the whole distribution with the fixed swap table.
func (ba *BlockAssembler) createCoinbase(scriptPubKey, scriptSig *script.Script,
	indexPrev *blockindex.BlockIndex) (*tx.Tx, error) {

	coinbaseTx := tx.NewSpecialTx(0, tx.TxVersion, tx.TxTypeCoinbase, nil)
	coinbaseTx.AddTxIn(txin.NewTxIn(outpoint.NewDefaultOutPoint(), scriptSig, math.MaxUint32))

	// The subsidy schedule is keyed on the previous block.
	subsidy := chainparams.GetBlockSubsidy(indexPrev.Header.Bits, indexPrev.Height, ba.chainParams)
	normalReward := ba.fees + subsidy
	totalWithSpecial := normalReward + ba.specialTxFees

	if ba.height == 1 {
		// One-time balance migration: the first mined block pays the
		// swap table and nothing else, including no miner reward.
		for _, entry := range chainparams.GenesisSwapTable {
			addr, err := script.AddressFromString(entry.Address)
			if err != nil {
				log.Error("createCoinbase: bad swap table address %s: %v", entry.Address, err)
				return nil, errcode.NewError(errcode.ErrBadFortuneAddress, entry.Address)
			}
			coinbaseTx.AddTxOut(txout.NewTxOut(entry.Value, addr.PayToPubKeyHashScript()))
		}
		return ba.finishCoinbase(coinbaseTx, indexPrev)
	}

	coinbaseTx.AddTxOut(txout.NewTxOut(totalWithSpecial, scriptPubKey))

	if ba.smartnodePayer != nil {
		if _, err := ba.smartnodePayer.FillServiceProviderPayments(coinbaseTx, ba.height, normalReward); err != nil {
			return nil, err
		}
	}

	if _, err := ba.fortunePayment.FillFortunePayment(coinbaseTx, ba.chainView, ba.height, normalReward); err != nil {
		return nil, err
	}

	if ba.reservePayer != nil {
		if _, err := ba.reservePayer.FillFutureReserveShare(coinbaseTx, ba.height, normalReward); err != nil {
			return nil, err
		}
	}

	// The remainder must cover every layered payment exactly; a
	// negative value means the schedules are misconfigured and the
	// template is unusable.
	remainder := coinbaseTx.GetTxOut(0).GetValue()
	if remainder < 0 {
		return nil, errcode.NewError(errcode.ErrRewardOverdraft,
			"miner remainder went negative")
	}
	if total := coinbaseTx.GetValueOut(); total != totalWithSpecial {
		return nil, errcode.NewError(errcode.ErrRewardOverdraft,
			"coinbase outputs do not sum to the block reward")
	}

	return ba.finishCoinbase(coinbaseTx, indexPrev)
}

func (ba *BlockAssembler) finishCoinbase(coinbaseTx *tx.Tx, indexPrev *blockindex.BlockIndex) (*tx.Tx, error) {
	if ba.payloadBuilder == nil {
		return coinbaseTx, nil
	}

	payload, err := ba.payloadBuilder.BuildCoinbasePayload(ba.bt.Block, indexPrev, ba.height)
	if err != nil {
		if !errcode.IsErrorCode(err, errcode.ErrBadPayoutListHash) {
			return nil, errcode.NewError(errcode.ErrSpecialPayload, err.Error())
		}
		// Known-recoverable: a bad payout list hash nulls the
		// commitment instead of losing the block.
		log.Warn("createCoinbase: bad payout list hash, zeroing the coinbase payload commitment")
		payload = make([]byte, coinbasePayloadSize)
	}
	coinbaseTx.SetExtraPayload(payload)
	return coinbaseTx, nil
}
