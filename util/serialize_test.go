package util

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedWidthRoundTrip(t *testing.T) {
	buf := new(bytes.Buffer)
	require.NoError(t, WriteUint8(buf, 0xab))
	require.NoError(t, WriteUint16(buf, 0xbeef))
	require.NoError(t, WriteUint32(buf, 0xdeadbeef))
	require.NoError(t, WriteUint64(buf, 0x0123456789abcdef))

	v8, err := ReadUint8(buf)
	require.NoError(t, err)
	assert.Equal(t, uint8(0xab), v8)
	v16, err := ReadUint16(buf)
	require.NoError(t, err)
	assert.Equal(t, uint16(0xbeef), v16)
	v32, err := ReadUint32(buf)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xdeadbeef), v32)
	v64, err := ReadUint64(buf)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x0123456789abcdef), v64)
	assert.Zero(t, buf.Len())
}

func TestVarIntRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 0xfc, 0xfd, 0xffff, 0x10000, 0xffffffff, 0x100000000, ^uint64(0)}
	for _, v := range values {
		buf := new(bytes.Buffer)
		require.NoError(t, WriteVarInt(buf, v))
		assert.Equal(t, int(VarIntSerializeSize(v)), buf.Len(), "value %x", v)

		got, err := ReadVarInt(buf)
		require.NoError(t, err, "value %x", v)
		assert.Equal(t, v, got)
	}
}

func TestVarIntEncodingBoundaries(t *testing.T) {
	// the discriminant byte switches representation at 0xfd
	buf := new(bytes.Buffer)
	require.NoError(t, WriteVarInt(buf, 0xfc))
	assert.Equal(t, []byte{0xfc}, buf.Bytes())

	buf.Reset()
	require.NoError(t, WriteVarInt(buf, 0xfd))
	assert.Equal(t, []byte{0xfd, 0xfd, 0x00}, buf.Bytes())
}

func TestVarBytesRoundTrip(t *testing.T) {
	payloads := [][]byte{nil, {}, {0x01}, bytes.Repeat([]byte{0x5a}, 300)}
	for _, p := range payloads {
		buf := new(bytes.Buffer)
		require.NoError(t, WriteVarBytes(buf, p))
		assert.Equal(t, int(VarBytesSerializeSize(p)), buf.Len())

		got, err := ReadVarBytes(buf, 1024)
		require.NoError(t, err)
		assert.Equal(t, len(p), len(got))
		if len(p) > 0 {
			assert.Equal(t, p, got)
		}
	}
}

func TestReadVarBytesRejectsOversize(t *testing.T) {
	buf := new(bytes.Buffer)
	require.NoError(t, WriteVarBytes(buf, bytes.Repeat([]byte{0x01}, 100)))

	_, err := ReadVarBytes(buf, 99)
	require.Error(t, err)
}

func TestReadTruncatedInput(t *testing.T) {
	_, err := ReadUint32(bytes.NewReader([]byte{0x01, 0x02}))
	assert.Error(t, err)

	_, err = ReadVarInt(bytes.NewReader([]byte{0xfe, 0x01}))
	assert.Error(t, err)

	// length prefix says 5 bytes, only 2 present
	_, err = ReadVarBytes(bytes.NewReader([]byte{0x05, 0xaa, 0xbb}), 1024)
	assert.Error(t, err)
}

func TestReadVarBytesEmptyStream(t *testing.T) {
	_, err := ReadVarInt(bytes.NewReader(nil))
	assert.ErrorIs(t, err, io.EOF)
}
