package txout

import (
	"fmt"
	"io"

	"github.com/FortuneBlockTeam/fortuneblock/model/script"
	"github.com/FortuneBlockTeam/fortuneblock/util"
	"github.com/FortuneBlockTeam/fortuneblock/util/amount"
)

type TxOut struct {
	value        amount.Amount
	scriptPubKey *script.Script
}

func NewTxOut(value amount.Amount, scriptPubKey *script.Script) *TxOut {
	if scriptPubKey == nil {
		scriptPubKey = script.NewEmptyScript()
	}
	return &TxOut{
		value:        value,
		scriptPubKey: scriptPubKey,
	}
}

func (txOut *TxOut) GetValue() amount.Amount {
	return txOut.value
}

func (txOut *TxOut) SetValue(v amount.Amount) {
	txOut.value = v
}

func (txOut *TxOut) GetScriptPubKey() *script.Script {
	return txOut.scriptPubKey
}

func (txOut *TxOut) SetScriptPubKey(s *script.Script) {
	txOut.scriptPubKey = s
}

func (txOut *TxOut) EncodeSize() uint32 {
	return 8 + txOut.scriptPubKey.EncodeSize()
}

func (txOut *TxOut) Encode(writer io.Writer) error {
	if err := util.WriteUint64(writer, uint64(txOut.value)); err != nil {
		return err
	}
	return txOut.scriptPubKey.Encode(writer)
}

func (txOut *TxOut) SerializeSize() uint32 {
	return txOut.EncodeSize()
}

func (txOut *TxOut) Serialize(writer io.Writer) error {
	return txOut.Encode(writer)
}

// CheckValue rejects values outside the legal money range.
func (txOut *TxOut) CheckValue() error {
	if !amount.MoneyRange(txOut.value) {
		return fmt.Errorf("txout value %d out of money range", txOut.value)
	}
	return nil
}

func (txOut *TxOut) String() string {
	return fmt.Sprintf("TxOut ( value: %d, scriptPubKey: %s )", txOut.value, txOut.scriptPubKey.String())
}
