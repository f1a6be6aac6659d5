package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FortuneBlockTeam/fortuneblock/model/block"
	"github.com/FortuneBlockTeam/fortuneblock/model/blockindex"
	"github.com/FortuneBlockTeam/fortuneblock/model/chainparams"
	"github.com/FortuneBlockTeam/fortuneblock/util"
)

func indexChain(n int32) []*blockindex.BlockIndex {
	indexes := make([]*blockindex.BlockIndex, 0, n)
	var prev *blockindex.BlockIndex
	for h := int32(0); h < n; h++ {
		header := block.NewBlockHeader()
		header.Time = uint32(1600000000 + h*120)
		header.Bits = 0x1d00ffff
		header.Nonce = uint32(h)
		if prev != nil {
			header.HashPrevBlock = *prev.GetBlockHash()
		}
		bi := blockindex.NewBlockIndex(header)
		bi.Height = h
		bi.Prev = prev
		indexes = append(indexes, bi)
		prev = bi
	}
	return indexes
}

func TestEmptyChain(t *testing.T) {
	c := NewChain(&chainparams.MainNetParams)

	assert.Nil(t, c.Tip())
	assert.Equal(t, int32(-1), c.TipHeight())
	assert.Nil(t, c.GetIndexByHeight(0))
	assert.False(t, c.Contains(nil))
}

func TestSetTipBuildsActiveVector(t *testing.T) {
	c := NewChain(&chainparams.MainNetParams)
	indexes := indexChain(6)
	for _, bi := range indexes {
		c.AddToIndexMap(bi)
	}
	c.SetTip(indexes[5])

	assert.Equal(t, int32(5), c.TipHeight())
	assert.Same(t, indexes[5], c.Tip())
	for h := int32(0); h < 6; h++ {
		assert.Same(t, indexes[h], c.GetIndexByHeight(h))
		assert.True(t, c.Contains(indexes[h]))
	}
	assert.Nil(t, c.GetIndexByHeight(6))
	assert.Nil(t, c.GetIndexByHeight(-1))
}

func TestSetTipTruncates(t *testing.T) {
	c := NewChain(&chainparams.MainNetParams)
	indexes := indexChain(6)
	c.SetTip(indexes[5])
	c.SetTip(indexes[2])

	assert.Equal(t, int32(2), c.TipHeight())
	assert.False(t, c.Contains(indexes[5]))
	assert.True(t, c.Contains(indexes[2]))

	c.SetTip(nil)
	assert.Equal(t, int32(-1), c.TipHeight())
	assert.Nil(t, c.Tip())
}

func TestContainsRejectsForkedIndex(t *testing.T) {
	c := NewChain(&chainparams.MainNetParams)
	indexes := indexChain(4)
	c.SetTip(indexes[3])

	// a fork block at an active height is not part of the active chain
	header := block.NewBlockHeader()
	header.Time = 1700000000
	header.Bits = 0x1d00ffff
	header.HashPrevBlock = *indexes[1].GetBlockHash()
	fork := blockindex.NewBlockIndex(header)
	fork.Height = 2
	fork.Prev = indexes[1]

	assert.False(t, c.Contains(fork))
	assert.True(t, c.Contains(indexes[2]))
}

func TestFindBlockIndex(t *testing.T) {
	c := NewChain(&chainparams.MainNetParams)
	indexes := indexChain(3)
	for _, bi := range indexes {
		c.AddToIndexMap(bi)
	}

	for _, bi := range indexes {
		assert.Same(t, bi, c.FindBlockIndex(*bi.GetBlockHash()))
	}
	var unknown util.Hash
	unknown[3] = 0x99
	assert.Nil(t, c.FindBlockIndex(unknown))
}

func TestMedianTimePast(t *testing.T) {
	indexes := indexChain(15)
	tip := indexes[14]

	// 11 ancestors ending at the tip, spaced 120s: the median is the
	// sixth newest
	want := int64(indexes[9].Header.Time)
	assert.Equal(t, want, tip.GetMedianTimePast())

	genesis := indexes[0]
	require.Nil(t, genesis.Prev)
	assert.Equal(t, int64(genesis.Header.Time), genesis.GetMedianTimePast())
}
