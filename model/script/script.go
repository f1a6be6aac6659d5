package script

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"io"

	"github.com/FortuneBlockTeam/fortuneblock/model/opcodes"
	"github.com/FortuneBlockTeam/fortuneblock/util"
)

const (
	MaxScriptSize = 10000

	// Sig op budgets are counted in legacy units.
	MaxPubKeysPerMultiSig = 20
)

type Script struct {
	data []byte
}

func NewScriptRaw(bytes []byte) *Script {
	script := Script{data: bytes}
	return &script
}

func NewEmptyScript() *Script {
	return &Script{data: make([]byte, 0)}
}

func (script *Script) GetData() []byte {
	return script.data
}

func (script *Script) Size() int {
	return len(script.data)
}

func (script *Script) Bytes() []byte {
	return script.data
}

func (script *Script) IsEqual(other *Script) bool {
	if script == nil || other == nil {
		return script == other
	}
	return bytes.Equal(script.data, other.data)
}

func (script *Script) EncodeSize() uint32 {
	return util.VarBytesSerializeSize(script.data)
}

func (script *Script) Encode(writer io.Writer) error {
	return util.WriteVarBytes(writer, script.data)
}

func (script *Script) SerializeSize() uint32 {
	return script.EncodeSize()
}

func (script *Script) Serialize(writer io.Writer) error {
	return script.Encode(writer)
}

// PushData appends data with the minimal push prefix.
func (script *Script) PushData(data []byte) *Script {
	dataLen := len(data)
	switch {
	case dataLen < opcodes.OP_PUSHDATA1:
		script.data = append(script.data, byte(dataLen))
	case dataLen <= 0xff:
		script.data = append(script.data, opcodes.OP_PUSHDATA1, byte(dataLen))
	case dataLen <= 0xffff:
		script.data = append(script.data, opcodes.OP_PUSHDATA2)
		buf := make([]byte, 2)
		binary.LittleEndian.PutUint16(buf, uint16(dataLen))
		script.data = append(script.data, buf...)
	default:
		script.data = append(script.data, opcodes.OP_PUSHDATA4)
		buf := make([]byte, 4)
		binary.LittleEndian.PutUint32(buf, uint32(dataLen))
		script.data = append(script.data, buf...)
	}
	script.data = append(script.data, data...)
	return script
}

// PushInt64 appends n using the small integer opcodes where possible.
func (script *Script) PushInt64(n int64) *Script {
	if n == -1 {
		script.data = append(script.data, opcodes.OP_1NEGATE)
	} else if n == 0 {
		script.data = append(script.data, opcodes.OP_0)
	} else if n > 0 && n <= 16 {
		script.data = append(script.data, byte(opcodes.OP_1-1+n))
	} else {
		scriptNum := NewScriptNum(n)
		script.PushData(scriptNum.Serialize())
	}
	return script
}

func (script *Script) PushOpCode(opCode int) *Script {
	script.data = append(script.data, byte(opCode))
	return script
}

// IsUnspendable reports whether the output can never be spent, either
// because it is provably prunable or exceeds the script size limit.
func (script *Script) IsUnspendable() bool {
	return (len(script.data) > 0 && script.data[0] == opcodes.OP_RETURN) ||
		len(script.data) > MaxScriptSize
}

// IsPayToPubKeyHash matches the canonical 25 byte p2pkh template.
func (script *Script) IsPayToPubKeyHash() bool {
	data := script.data
	return len(data) == 25 &&
		data[0] == opcodes.OP_DUP &&
		data[1] == opcodes.OP_HASH160 &&
		data[2] == 0x14 &&
		data[23] == opcodes.OP_EQUALVERIFY &&
		data[24] == opcodes.OP_CHECKSIG
}

// IsPayToScriptHash matches the canonical 23 byte p2sh template.
func (script *Script) IsPayToScriptHash() bool {
	data := script.data
	return len(data) == 23 &&
		data[0] == opcodes.OP_HASH160 &&
		data[1] == 0x14 &&
		data[22] == opcodes.OP_EQUAL
}

// GetSigOpCount counts legacy signature operations in the script.
func (script *Script) GetSigOpCount() int {
	n := 0
	data := script.data
	for i := 0; i < len(data); {
		op := int(data[i])
		switch {
		case op == opcodes.OP_CHECKSIG:
			n++
			i++
		case op == opcodes.OP_CHECKMULTISIG:
			n += MaxPubKeysPerMultiSig
			i++
		case op > 0 && op < opcodes.OP_PUSHDATA1:
			i += 1 + op
		case op == opcodes.OP_PUSHDATA1:
			if i+1 >= len(data) {
				return n
			}
			i += 2 + int(data[i+1])
		case op == opcodes.OP_PUSHDATA2:
			if i+2 >= len(data) {
				return n
			}
			i += 3 + int(binary.LittleEndian.Uint16(data[i+1:i+3]))
		case op == opcodes.OP_PUSHDATA4:
			if i+4 >= len(data) {
				return n
			}
			i += 5 + int(binary.LittleEndian.Uint32(data[i+1:i+5]))
		default:
			i++
		}
	}
	return n
}

func (script *Script) String() string {
	return hex.EncodeToString(script.data)
}
