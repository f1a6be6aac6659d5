package txin

import (
	"fmt"
	"io"
	"math"

	"github.com/FortuneBlockTeam/fortuneblock/model/outpoint"
	"github.com/FortuneBlockTeam/fortuneblock/model/script"
	"github.com/FortuneBlockTeam/fortuneblock/util"
)

const SequenceFinal = math.MaxUint32

type TxIn struct {
	PreviousOutPoint *outpoint.OutPoint
	scriptSig        *script.Script
	Sequence         uint32
}

func NewTxIn(prevOut *outpoint.OutPoint, scriptSig *script.Script, sequence uint32) *TxIn {
	if prevOut == nil {
		prevOut = outpoint.NewDefaultOutPoint()
	}
	if scriptSig == nil {
		scriptSig = script.NewEmptyScript()
	}
	return &TxIn{
		PreviousOutPoint: prevOut,
		scriptSig:        scriptSig,
		Sequence:         sequence,
	}
}

func (txIn *TxIn) GetScriptSig() *script.Script {
	return txIn.scriptSig
}

func (txIn *TxIn) SetScriptSig(scriptSig *script.Script) {
	txIn.scriptSig = scriptSig
}

func (txIn *TxIn) EncodeSize() uint32 {
	return txIn.PreviousOutPoint.EncodeSize() + txIn.scriptSig.EncodeSize() + 4
}

func (txIn *TxIn) Encode(writer io.Writer) error {
	if err := txIn.PreviousOutPoint.Encode(writer); err != nil {
		return err
	}
	if err := txIn.scriptSig.Encode(writer); err != nil {
		return err
	}
	return util.WriteUint32(writer, txIn.Sequence)
}

func (txIn *TxIn) SerializeSize() uint32 {
	return txIn.EncodeSize()
}

func (txIn *TxIn) Serialize(writer io.Writer) error {
	return txIn.Encode(writer)
}

func (txIn *TxIn) String() string {
	return fmt.Sprintf("TxIn ( %s, scriptSig: %s, sequence: %d )",
		txIn.PreviousOutPoint.String(), txIn.scriptSig.String(), txIn.Sequence)
}
