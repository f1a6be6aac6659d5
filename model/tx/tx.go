package tx

import (
	"bytes"
	"fmt"
	"io"

	"github.com/FortuneBlockTeam/fortuneblock/model/outpoint"
	"github.com/FortuneBlockTeam/fortuneblock/model/txin"
	"github.com/FortuneBlockTeam/fortuneblock/model/txout"
	"github.com/FortuneBlockTeam/fortuneblock/util"
	"github.com/FortuneBlockTeam/fortuneblock/util/amount"
)

const (
	TxVersion = 2

	// Special transaction types carried in the high 16 bits of the
	// version field. Classic transactions use TxTypeClassic.
	TxTypeClassic          uint16 = 0
	TxTypeProviderRegister uint16 = 1
	TxTypeCoinbase         uint16 = 5
	TxTypeQuorumCommitment uint16 = 6

	// LockTimeThreshold below which a lock time is a block height,
	// at or above which it is a unix timestamp.
	LockTimeThreshold = 500000000

	MaxTxSize = 1000000
)

type Tx struct {
	hash     util.Hash // cached, computed on first GetHash
	version  int32
	txType   uint16
	ins      []*txin.TxIn
	outs     []*txout.TxOut
	lockTime uint32

	// extraPayload is present only on special transaction types.
	extraPayload []byte
}

func NewTx(lockTime uint32, version int32) *Tx {
	return &Tx{
		lockTime: lockTime,
		version:  version,
		ins:      make([]*txin.TxIn, 0),
		outs:     make([]*txout.TxOut, 0),
	}
}

func NewSpecialTx(lockTime uint32, version int32, txType uint16, payload []byte) *Tx {
	transaction := NewTx(lockTime, version)
	transaction.txType = txType
	transaction.extraPayload = payload
	return transaction
}

func (tx *Tx) AddTxIn(txIn *txin.TxIn) {
	tx.ins = append(tx.ins, txIn)
	tx.hash = util.HashZero
}

func (tx *Tx) AddTxOut(txOut *txout.TxOut) {
	tx.outs = append(tx.outs, txOut)
	tx.hash = util.HashZero
}

func (tx *Tx) GetTxIn(index int) *txin.TxIn {
	if index < 0 || index >= len(tx.ins) {
		return nil
	}
	return tx.ins[index]
}

func (tx *Tx) GetTxOut(index int) *txout.TxOut {
	if index < 0 || index >= len(tx.outs) {
		return nil
	}
	return tx.outs[index]
}

func (tx *Tx) GetIns() []*txin.TxIn {
	return tx.ins
}

func (tx *Tx) GetOuts() []*txout.TxOut {
	return tx.outs
}

func (tx *Tx) GetInsCount() int {
	return len(tx.ins)
}

func (tx *Tx) GetOutsCount() int {
	return len(tx.outs)
}

func (tx *Tx) GetVersion() int32 {
	return tx.version
}

func (tx *Tx) GetType() uint16 {
	return tx.txType
}

func (tx *Tx) GetExtraPayload() []byte {
	return tx.extraPayload
}

func (tx *Tx) SetExtraPayload(payload []byte) {
	tx.extraPayload = payload
	tx.hash = util.HashZero
}

func (tx *Tx) GetLockTime() uint32 {
	return tx.lockTime
}

// IsSpecialTx reports whether the transaction carries an extra payload.
func (tx *Tx) IsSpecialTx() bool {
	return tx.txType != TxTypeClassic
}

func (tx *Tx) IsCoinBase() bool {
	if len(tx.ins) != 1 {
		return false
	}
	return tx.ins[0].PreviousOutPoint.IsNull()
}

func (tx *Tx) GetAllPreviousOut() []outpoint.OutPoint {
	outs := make([]outpoint.OutPoint, 0, len(tx.ins))
	for _, in := range tx.ins {
		outs = append(outs, *in.PreviousOutPoint)
	}
	return outs
}

func (tx *Tx) PrevoutHashs() []util.Hash {
	outs := make([]util.Hash, 0, len(tx.ins))
	for _, in := range tx.ins {
		outs = append(outs, in.PreviousOutPoint.Hash)
	}
	return outs
}

// AnyInputIn reports whether any input spends a transaction in the
// given set.
func (tx *Tx) AnyInputIn(container map[util.Hash]struct{}) bool {
	for _, in := range tx.ins {
		if _, ok := container[in.PreviousOutPoint.Hash]; ok {
			return true
		}
	}
	return false
}

func (tx *Tx) GetValueOut() amount.Amount {
	var valueOut amount.Amount
	for _, out := range tx.outs {
		valueOut += out.GetValue()
	}
	return valueOut
}

// GetSigOpCount counts the legacy signature operations in all input
// and output scripts.
func (tx *Tx) GetSigOpCount() int {
	n := 0
	for _, in := range tx.ins {
		n += in.GetScriptSig().GetSigOpCount()
	}
	for _, out := range tx.outs {
		n += out.GetScriptPubKey().GetSigOpCount()
	}
	return n
}

// IsFinal reports whether the transaction can be mined at the given
// height and cutoff time.
func (tx *Tx) IsFinal(height int32, time int64) bool {
	if tx.lockTime == 0 {
		return true
	}

	lockTimeLimit := int64(0)
	if tx.lockTime < LockTimeThreshold {
		lockTimeLimit = int64(height)
	} else {
		lockTimeLimit = time
	}

	if int64(tx.lockTime) < lockTimeLimit {
		return true
	}

	for _, in := range tx.ins {
		if in.Sequence != txin.SequenceFinal {
			return false
		}
	}

	return true
}

func (tx *Tx) EncodeSize() uint32 {
	// version 4 bytes + lockTime 4 bytes + varints for the input and
	// output counts
	n := 8 + util.VarIntSerializeSize(uint64(len(tx.ins))) +
		util.VarIntSerializeSize(uint64(len(tx.outs)))
	for _, in := range tx.ins {
		n += in.EncodeSize()
	}
	for _, out := range tx.outs {
		n += out.EncodeSize()
	}
	if tx.IsSpecialTx() {
		n += util.VarBytesSerializeSize(tx.extraPayload)
	}
	return n
}

func (tx *Tx) Encode(writer io.Writer) error {
	version := uint32(uint16(tx.version)) | uint32(tx.txType)<<16
	if err := util.WriteUint32(writer, version); err != nil {
		return err
	}
	if err := util.WriteVarInt(writer, uint64(len(tx.ins))); err != nil {
		return err
	}
	for _, in := range tx.ins {
		if err := in.Encode(writer); err != nil {
			return err
		}
	}
	if err := util.WriteVarInt(writer, uint64(len(tx.outs))); err != nil {
		return err
	}
	for _, out := range tx.outs {
		if err := out.Encode(writer); err != nil {
			return err
		}
	}
	if err := util.WriteUint32(writer, tx.lockTime); err != nil {
		return err
	}
	if tx.IsSpecialTx() {
		return util.WriteVarBytes(writer, tx.extraPayload)
	}
	return nil
}

func (tx *Tx) SerializeSize() uint32 {
	return tx.EncodeSize()
}

func (tx *Tx) Serialize(writer io.Writer) error {
	return tx.Encode(writer)
}

// GetHash returns the double sha256 of the serialized transaction,
// computing and caching it on first use.
func (tx *Tx) GetHash() util.Hash {
	if !tx.hash.IsNull() {
		return tx.hash
	}
	buf := bytes.NewBuffer(make([]byte, 0, tx.EncodeSize()))
	if err := tx.Encode(buf); err != nil {
		return util.HashZero
	}
	tx.hash = util.DoubleSha256Hash(buf.Bytes())
	return tx.hash
}

func (tx *Tx) String() string {
	h := tx.GetHash()
	return fmt.Sprintf("Tx ( hash: %s, ins: %d, outs: %d )", h.String(), len(tx.ins), len(tx.outs))
}
