package block

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FortuneBlockTeam/fortuneblock/util"
)

func sampleHeader() *BlockHeader {
	header := NewBlockHeader()
	header.Version = 4
	header.HashPrevBlock = util.DoubleSha256Hash([]byte("prev"))
	header.MerkleRoot = util.DoubleSha256Hash([]byte("merkle"))
	header.Time = 1693000000
	header.Bits = 0x1d00ffff
	header.Nonce = 0x12345678
	return header
}

func TestBlockHeaderRoundTrip(t *testing.T) {
	header := sampleHeader()

	buf := new(bytes.Buffer)
	require.NoError(t, header.Encode(buf))
	assert.Equal(t, int(header.EncodeSize()), buf.Len())

	decoded := NewBlockHeader()
	require.NoError(t, decoded.Decode(buf))
	assert.Equal(t, header, decoded)
	assert.Equal(t, header.GetHash(), decoded.GetHash())
}

func TestBlockHeaderDecodeTruncated(t *testing.T) {
	header := sampleHeader()
	buf := new(bytes.Buffer)
	require.NoError(t, header.Encode(buf))

	truncated := buf.Bytes()[:buf.Len()-2]
	assert.Error(t, NewBlockHeader().Decode(bytes.NewReader(truncated)))
}

func TestBlockHeaderHashCoversNonce(t *testing.T) {
	header := sampleHeader()
	before := header.GetHash()
	header.Nonce++
	after := header.GetHash()
	assert.False(t, before.IsEqual(&after), "the nonce search depends on this")
}

func TestBlockHeaderIsNull(t *testing.T) {
	assert.True(t, NewBlockHeader().IsNull())
	assert.False(t, sampleHeader().IsNull())
}

func TestBlockEncodeSize(t *testing.T) {
	blk := NewBlock()
	blk.Header = *sampleHeader()

	buf := new(bytes.Buffer)
	require.NoError(t, blk.Encode(buf))
	assert.Equal(t, int(blk.EncodeSize()), buf.Len())
	assert.Equal(t, blk.EncodeSize(), blk.SerializeSize())
	assert.Equal(t, blk.Header.GetHash(), blk.GetHash())
}
