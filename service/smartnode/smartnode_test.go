package smartnode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FortuneBlockTeam/fortuneblock/errcode"
	"github.com/FortuneBlockTeam/fortuneblock/model/chainparams"
	"github.com/FortuneBlockTeam/fortuneblock/model/script"
	"github.com/FortuneBlockTeam/fortuneblock/model/tx"
	"github.com/FortuneBlockTeam/fortuneblock/model/txout"
	"github.com/FortuneBlockTeam/fortuneblock/util"
	"github.com/FortuneBlockTeam/fortuneblock/util/amount"
)

type staticPayee struct {
	payee *script.Script
}

func (s staticPayee) GetSmartnodePayee(height int32) (*script.Script, bool) {
	return s.payee, s.payee != nil
}

func testScript(tag byte) *script.Script {
	hash160 := make([]byte, util.Hash160Size)
	hash160[0] = tag
	addr, _ := script.AddressFromHash160(hash160, chainparams.MainNetParams.PubKeyHashAddressVer)
	return addr.PayToPubKeyHashScript()
}

func coinbaseWith(minerValue amount.Amount) *tx.Tx {
	coinbaseTx := tx.NewSpecialTx(0, tx.TxVersion, tx.TxTypeCoinbase, nil)
	coinbaseTx.AddTxOut(txout.NewTxOut(minerValue, testScript(0x01)))
	return coinbaseTx
}

func TestSmartnodePaymentAmount(t *testing.T) {
	params := chainparams.MainNetParams
	payer := NewPayer(&params, nil)

	reward := 500 * amount.COIN
	assert.Equal(t, amount.Amount(0),
		payer.GetSmartnodePaymentAmount(params.SmartnodePaymentsStartBlock-1, reward))

	want := reward * amount.Amount(params.FutureRewardShare.SmartnodePart) / 10000
	assert.Equal(t, want, payer.GetSmartnodePaymentAmount(params.SmartnodePaymentsStartBlock, reward))
	assert.Equal(t, want, payer.GetSmartnodePaymentAmount(params.SmartnodePaymentsStartBlock+100000, reward))
}

func TestFillServiceProviderPayments(t *testing.T) {
	params := chainparams.MainNetParams
	reward := 500 * amount.COIN
	height := params.SmartnodePaymentsStartBlock + 1

	t.Run("pays the resolved payee and reduces the remainder", func(t *testing.T) {
		payee := testScript(0x02)
		payer := NewPayer(&params, staticPayee{payee})
		coinbaseTx := coinbaseWith(reward)

		outs, err := payer.FillServiceProviderPayments(coinbaseTx, height, reward)
		require.NoError(t, err)
		require.Len(t, outs, 1)

		want := payer.GetSmartnodePaymentAmount(height, reward)
		assert.Equal(t, want, outs[0].GetValue())
		assert.True(t, outs[0].GetScriptPubKey().IsEqual(payee))
		assert.Equal(t, reward-want, coinbaseTx.GetTxOut(0).GetValue())
		assert.Equal(t, reward, coinbaseTx.GetValueOut(), "the split conserves the reward")
	})

	t.Run("before the start block nothing is paid", func(t *testing.T) {
		payer := NewPayer(&params, staticPayee{testScript(0x02)})
		coinbaseTx := coinbaseWith(reward)

		outs, err := payer.FillServiceProviderPayments(coinbaseTx, params.SmartnodePaymentsStartBlock-1, reward)
		require.NoError(t, err)
		assert.Nil(t, outs)
		assert.Equal(t, reward, coinbaseTx.GetTxOut(0).GetValue())
	})

	t.Run("missing payee skips without failing", func(t *testing.T) {
		payer := NewPayer(&params, staticPayee{nil})
		coinbaseTx := coinbaseWith(reward)

		outs, err := payer.FillServiceProviderPayments(coinbaseTx, height, reward)
		require.NoError(t, err)
		assert.Nil(t, outs)
		assert.Equal(t, reward, coinbaseTx.GetTxOut(0).GetValue())
	})

	t.Run("nil source skips without failing", func(t *testing.T) {
		payer := NewPayer(&params, nil)
		coinbaseTx := coinbaseWith(reward)

		outs, err := payer.FillServiceProviderPayments(coinbaseTx, height, reward)
		require.NoError(t, err)
		assert.Nil(t, outs)
	})
}

func TestFillFutureReserveShare(t *testing.T) {
	reward := 500 * amount.COIN

	// mainnet configures no founder part, so the layer is a no-op there
	t.Run("zero founder part is a no-op", func(t *testing.T) {
		params := chainparams.MainNetParams
		payer := NewPayer(&params, nil)
		coinbaseTx := coinbaseWith(reward)

		outs, err := payer.FillFutureReserveShare(coinbaseTx, 100, reward)
		require.NoError(t, err)
		assert.Nil(t, outs)
		assert.Equal(t, reward, coinbaseTx.GetTxOut(0).GetValue())
	})

	t.Run("configured share pays the reserve script", func(t *testing.T) {
		params := chainparams.MainNetParams
		params.FutureRewardShare.FounderPart = 500
		reserve := testScript(0x03)
		payer := NewPayer(&params, nil)
		payer.SetReserveScript(reserve)
		coinbaseTx := coinbaseWith(reward)

		outs, err := payer.FillFutureReserveShare(coinbaseTx, 100, reward)
		require.NoError(t, err)
		require.Len(t, outs, 1)

		want := reward * 500 / 10000
		assert.Equal(t, want, outs[0].GetValue())
		assert.True(t, outs[0].GetScriptPubKey().IsEqual(reserve))
		assert.Equal(t, reward-want, coinbaseTx.GetTxOut(0).GetValue())
	})

	t.Run("configured share without a destination fails", func(t *testing.T) {
		params := chainparams.MainNetParams
		params.FutureRewardShare.FounderPart = 500
		payer := NewPayer(&params, nil)
		coinbaseTx := coinbaseWith(reward)

		_, err := payer.FillFutureReserveShare(coinbaseTx, 100, reward)
		require.Error(t, err)
		assert.True(t, errcode.IsErrorCode(err, errcode.ErrRewardOverdraft))
	})
}
