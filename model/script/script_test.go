package script

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FortuneBlockTeam/fortuneblock/model/opcodes"
	"github.com/FortuneBlockTeam/fortuneblock/util"
)

func TestAddressRoundTrip(t *testing.T) {
	hash160 := bytes.Repeat([]byte{0x6b}, util.Hash160Size)

	addr, err := AddressFromHash160(hash160, 36)
	require.NoError(t, err)
	assert.Equal(t, byte(36), addr.Version())
	assert.Equal(t, hash160, addr.Hash160())

	str := addr.String()
	assert.Equal(t, byte('F'), str[0])

	back, err := AddressFromString(str)
	require.NoError(t, err)
	assert.Equal(t, addr.Version(), back.Version())
	assert.Equal(t, addr.Hash160(), back.Hash160())
}

func TestAddressFromStringRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "x", "FkqwU8tUU6U41PuGTPUqy93hML4QtCDPDX1"} {
		_, err := AddressFromString(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestAddressFromHash160RejectsBadLength(t *testing.T) {
	_, err := AddressFromHash160(make([]byte, 19), 36)
	assert.Error(t, err)
}

func TestPayToPubKeyHashScript(t *testing.T) {
	hash160 := bytes.Repeat([]byte{0x11}, util.Hash160Size)
	addr, err := AddressFromHash160(hash160, 36)
	require.NoError(t, err)

	s := addr.PayToPubKeyHashScript()
	assert.True(t, s.IsPayToPubKeyHash())
	assert.False(t, s.IsPayToScriptHash())
	assert.Equal(t, 25, s.Size())
	assert.Equal(t, 1, s.GetSigOpCount())
}

func TestPushDataEncodings(t *testing.T) {
	small := NewEmptyScript().PushData(make([]byte, 20))
	assert.Equal(t, byte(20), small.GetData()[0])
	assert.Equal(t, 21, small.Size())

	medium := NewEmptyScript().PushData(make([]byte, 0x60))
	assert.Equal(t, byte(opcodes.OP_PUSHDATA1), medium.GetData()[0])
	assert.Equal(t, byte(0x60), medium.GetData()[1])

	large := NewEmptyScript().PushData(make([]byte, 0x100))
	assert.Equal(t, byte(opcodes.OP_PUSHDATA2), large.GetData()[0])
	assert.Equal(t, 3+0x100, large.Size())
}

func TestPushInt64Encodings(t *testing.T) {
	assert.Equal(t, []byte{opcodes.OP_0}, NewEmptyScript().PushInt64(0).GetData())
	assert.Equal(t, []byte{opcodes.OP_1NEGATE}, NewEmptyScript().PushInt64(-1).GetData())
	assert.Equal(t, []byte{opcodes.OP_1}, NewEmptyScript().PushInt64(1).GetData())
	assert.Equal(t, []byte{opcodes.OP_16}, NewEmptyScript().PushInt64(16).GetData())

	// beyond the small integer opcodes the number is a minimal push
	assert.Equal(t, []byte{0x01, 0x11}, NewEmptyScript().PushInt64(17).GetData())
	assert.Equal(t, []byte{0x02, 0x00, 0x01}, NewEmptyScript().PushInt64(256).GetData())
}

func TestScriptNumSerialize(t *testing.T) {
	cases := []struct {
		value int64
		want  []byte
	}{
		{0, nil},
		{1, []byte{0x01}},
		{127, []byte{0x7f}},
		{128, []byte{0x80, 0x00}},
		{-1, []byte{0x81}},
		{-128, []byte{0x80, 0x80}},
		{256, []byte{0x00, 0x01}},
		{520617983, []byte{0xff, 0xff, 0x07, 0x1f}},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, NewScriptNum(c.value).Serialize(), "value %d", c.value)
	}
}

func TestIsUnspendable(t *testing.T) {
	assert.True(t, NewScriptRaw([]byte{opcodes.OP_RETURN}).IsUnspendable())
	assert.False(t, NewScriptRaw([]byte{opcodes.OP_1}).IsUnspendable())
}

func TestIsEqual(t *testing.T) {
	a := NewScriptRaw([]byte{0x51, 0x52})
	b := NewScriptRaw([]byte{0x51, 0x52})
	c := NewScriptRaw([]byte{0x51})

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestGetSigOpCountMultisig(t *testing.T) {
	s := NewEmptyScript()
	s.PushInt64(2)
	s.PushData(make([]byte, 33))
	s.PushData(make([]byte, 33))
	s.PushInt64(2)
	s.PushOpCode(opcodes.OP_CHECKMULTISIG)

	assert.Equal(t, MaxPubKeysPerMultiSig, s.GetSigOpCount())
}
