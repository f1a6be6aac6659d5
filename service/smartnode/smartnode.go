// Package smartnode implements the coinbase payment layers owned by
// the service-provider subsystem: the per-block smartnode payout and
// the future-reserve split.
package smartnode

import (
	"github.com/pkg/errors"

	"github.com/FortuneBlockTeam/fortuneblock/errcode"
	"github.com/FortuneBlockTeam/fortuneblock/log"
	"github.com/FortuneBlockTeam/fortuneblock/model/chainparams"
	"github.com/FortuneBlockTeam/fortuneblock/model/script"
	"github.com/FortuneBlockTeam/fortuneblock/model/tx"
	"github.com/FortuneBlockTeam/fortuneblock/model/txout"
	"github.com/FortuneBlockTeam/fortuneblock/util/amount"
)

// shareDenominator scales the FutureRewardShare parts, which are
// expressed in ten-thousandths.
const shareDenominator = 10000

// PayeeSource resolves which smartnode is owed the payment at a given
// height. It abstracts the deterministic masternode list, which lives
// outside this repository.
type PayeeSource interface {
	GetSmartnodePayee(height int32) (*script.Script, bool)
}

// Payer fills the service-provider and future-reserve coinbase
// outputs. It implements the mining package's SmartnodePayer and
// ReservePayer contracts.
type Payer struct {
	params *chainparams.Params
	source PayeeSource

	// reserveScript receives the founder share when one is configured.
	reserveScript *script.Script
}

func NewPayer(params *chainparams.Params, source PayeeSource) *Payer {
	return &Payer{params: params, source: source}
}

// SetReserveScript configures the destination of the founder share.
func (p *Payer) SetReserveScript(s *script.Script) {
	p.reserveScript = s
}

// GetSmartnodePaymentAmount is the smartnode share of normalReward at
// the given height; zero before the payment start block.
func (p *Payer) GetSmartnodePaymentAmount(height int32, normalReward amount.Amount) amount.Amount {
	if height < p.params.SmartnodePaymentsStartBlock {
		return 0
	}
	return normalReward * amount.Amount(p.params.FutureRewardShare.SmartnodePart) / shareDenominator
}

// FillServiceProviderPayments appends the smartnode output to the
// coinbase and deducts it from the miner remainder at output 0. A
// missing payee at a paying height skips the payment rather than
// failing the block; the network tolerates unpaid blocks while the
// list is syncing.
func (p *Payer) FillServiceProviderPayments(coinbaseTx *tx.Tx, height int32,
	normalReward amount.Amount) ([]*txout.TxOut, error) {

	payment := p.GetSmartnodePaymentAmount(height, normalReward)
	if payment == 0 {
		return nil, nil
	}
	if p.source == nil {
		log.Debug("smartnode: no payee source wired, skipping payment at height %d", height)
		return nil, nil
	}
	payee, ok := p.source.GetSmartnodePayee(height)
	if !ok {
		log.Warn("smartnode: no payee for height %d, skipping payment", height)
		return nil, nil
	}

	minerOut := coinbaseTx.GetTxOut(0)
	if minerOut == nil {
		return nil, errors.New("smartnode: coinbase has no miner output")
	}
	minerOut.SetValue(minerOut.GetValue() - payment)

	out := txout.NewTxOut(payment, payee)
	coinbaseTx.AddTxOut(out)
	log.Info("smartnode: payment %d at height %d", payment, height)
	return []*txout.TxOut{out}, nil
}

// FillFutureReserveShare appends the founder-reserve output when the
// network configures a non-zero founder part. A non-zero share with no
// reserve destination is a configuration fault and fails the block.
func (p *Payer) FillFutureReserveShare(coinbaseTx *tx.Tx, height int32,
	normalReward amount.Amount) ([]*txout.TxOut, error) {

	share := normalReward * amount.Amount(p.params.FutureRewardShare.FounderPart) / shareDenominator
	if share == 0 {
		return nil, nil
	}
	if p.reserveScript == nil {
		return nil, errcode.NewError(errcode.ErrRewardOverdraft,
			"founder share configured without a reserve destination")
	}

	minerOut := coinbaseTx.GetTxOut(0)
	if minerOut == nil {
		return nil, errors.New("smartnode: coinbase has no miner output")
	}
	minerOut.SetValue(minerOut.GetValue() - share)

	out := txout.NewTxOut(share, p.reserveScript)
	coinbaseTx.AddTxOut(out)
	return []*txout.TxOut{out}, nil
}
