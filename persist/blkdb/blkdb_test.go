package blkdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FortuneBlockTeam/fortuneblock/model/block"
	"github.com/FortuneBlockTeam/fortuneblock/model/blockindex"
	"github.com/FortuneBlockTeam/fortuneblock/model/chain"
	"github.com/FortuneBlockTeam/fortuneblock/model/chainparams"
	"github.com/FortuneBlockTeam/fortuneblock/model/pow"
	"github.com/FortuneBlockTeam/fortuneblock/model/script"
	"github.com/FortuneBlockTeam/fortuneblock/util"
)

func openTestDB(t *testing.T) *BlockTreeDB {
	t.Helper()
	btd, err := NewBlockTreeDB(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { btd.Close() })
	return btd
}

func testIndexChain(n int32) []*blockindex.BlockIndex {
	params := &chainparams.MainNetParams
	bits := pow.BigToCompact(params.PowLimit)
	baseTime := util.GetTime() - int64(n+1)*params.TargetTimePerBlock

	indexes := make([]*blockindex.BlockIndex, 0, n)
	var prev *blockindex.BlockIndex
	for h := int32(0); h < n; h++ {
		header := block.NewBlockHeader()
		header.Time = uint32(baseTime + int64(h)*params.TargetTimePerBlock)
		header.Bits = bits
		header.Nonce = uint32(h)
		if prev != nil {
			header.HashPrevBlock = *prev.GetBlockHash()
		}
		bi := blockindex.NewBlockIndex(header)
		bi.Height = h
		bi.Prev = prev
		bi.CoinbasePayee = script.NewScriptRaw([]byte{0x76, 0xa9, byte(h)})
		indexes = append(indexes, bi)
		prev = bi
	}
	return indexes
}

func TestBlockIndexRoundTrip(t *testing.T) {
	btd := openTestDB(t)
	bi := testIndexChain(3)[2]

	require.NoError(t, btd.WriteBlockIndex(bi))

	got, err := btd.ReadBlockIndex(bi.GetBlockHash())
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, bi.Height, got.Height)
	assert.Equal(t, bi.Header.HashPrevBlock, got.Header.HashPrevBlock)
	assert.Equal(t, bi.Header.Bits, got.Header.Bits)
	assert.Equal(t, bi.Header.Time, got.Header.Time)
	assert.Equal(t, bi.Header.Nonce, got.Header.Nonce)
	require.NotNil(t, got.CoinbasePayee)
	assert.True(t, got.CoinbasePayee.IsEqual(bi.CoinbasePayee))
	assert.True(t, got.GetBlockHash().IsEqual(bi.GetBlockHash()))
}

func TestReadBlockIndexMissing(t *testing.T) {
	btd := openTestDB(t)

	var unknown util.Hash
	unknown[0] = 0xde

	got, err := btd.ReadBlockIndex(&unknown)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestNilPayeeRoundTrip(t *testing.T) {
	btd := openTestDB(t)
	bi := testIndexChain(1)[0]
	bi.CoinbasePayee = nil

	require.NoError(t, btd.WriteBlockIndex(bi))
	got, err := btd.ReadBlockIndex(bi.GetBlockHash())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.CoinbasePayee)
}

func TestTipHashRoundTrip(t *testing.T) {
	btd := openTestDB(t)

	got, err := btd.ReadTipHash()
	require.NoError(t, err)
	assert.Nil(t, got, "a fresh store has no tip")

	var tip util.Hash
	tip[5] = 0x3c
	require.NoError(t, btd.WriteTipHash(&tip))

	got, err = btd.ReadTipHash()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.IsEqual(&tip))
}

func TestSaveAndLoadChain(t *testing.T) {
	btd := openTestDB(t)
	params := &chainparams.MainNetParams

	source := chain.NewChain(params)
	indexes := testIndexChain(8)
	for _, bi := range indexes {
		source.AddToIndexMap(bi)
	}
	source.SetTip(indexes[len(indexes)-1])

	require.NoError(t, btd.SaveChain(source))

	restored := chain.NewChain(params)
	require.NoError(t, btd.LoadChain(restored))

	require.Equal(t, source.TipHeight(), restored.TipHeight())
	for h := int32(0); h <= source.TipHeight(); h++ {
		want := source.GetIndexByHeight(h)
		got := restored.GetIndexByHeight(h)
		require.NotNil(t, got, "height %d", h)
		assert.True(t, got.GetBlockHash().IsEqual(want.GetBlockHash()), "height %d", h)
		assert.True(t, got.CoinbasePayee.IsEqual(want.CoinbasePayee), "height %d", h)
	}

	// prev pointers must be wired for median-time and ancestor walks
	tip := restored.Tip()
	require.NotNil(t, tip.Prev)
	assert.Equal(t, tip.Height-1, tip.Prev.Height)
	assert.Greater(t, tip.GetMedianTimePast(), int64(0))
}

func TestLoadChainEmptyStore(t *testing.T) {
	btd := openTestDB(t)
	c := chain.NewChain(&chainparams.MainNetParams)

	require.NoError(t, btd.LoadChain(c))
	assert.Nil(t, c.Tip())
}

func TestLoadChainBrokenStore(t *testing.T) {
	btd := openTestDB(t)
	indexes := testIndexChain(4)

	// store the tip record but not its ancestors
	tip := indexes[len(indexes)-1]
	require.NoError(t, btd.WriteBlockIndex(tip))
	require.NoError(t, btd.WriteTipHash(tip.GetBlockHash()))

	c := chain.NewChain(&chainparams.MainNetParams)
	err := btd.LoadChain(c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken chain")
}
