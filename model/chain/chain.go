package chain

import (
	"sync"

	"github.com/FortuneBlockTeam/fortuneblock/model/blockindex"
	"github.com/FortuneBlockTeam/fortuneblock/model/chainparams"
	"github.com/FortuneBlockTeam/fortuneblock/util"
)

// Chain is the currently active best chain together with an index of
// every known block.
type Chain struct {
	mtx      sync.RWMutex
	active   []*blockindex.BlockIndex
	indexMap map[util.Hash]*blockindex.BlockIndex
	params   *chainparams.Params
}

var globalChain *Chain
var initOnce sync.Once

// GetInstance returns the process wide chain, creating it on first use.
func GetInstance() *Chain {
	initOnce.Do(func() {
		globalChain = NewChain(chainparams.ActiveNetParams)
	})
	return globalChain
}

// InitGlobalChain replaces the process wide chain. Intended for startup
// and tests.
func InitGlobalChain(c *Chain) {
	initOnce.Do(func() {})
	globalChain = c
}

func NewChain(params *chainparams.Params) *Chain {
	return &Chain{
		active:   make([]*blockindex.BlockIndex, 0),
		indexMap: make(map[util.Hash]*blockindex.BlockIndex),
		params:   params,
	}
}

func (c *Chain) GetParams() *chainparams.Params {
	return c.params
}

// Tip returns the index entry of the best block, nil for an empty chain.
func (c *Chain) Tip() *blockindex.BlockIndex {
	c.mtx.RLock()
	defer c.mtx.RUnlock()
	if len(c.active) == 0 {
		return nil
	}
	return c.active[len(c.active)-1]
}

func (c *Chain) TipHeight() int32 {
	c.mtx.RLock()
	defer c.mtx.RUnlock()
	return int32(len(c.active)) - 1
}

func (c *Chain) Height() int32 {
	return c.TipHeight()
}

// GetIndexByHeight returns the active chain entry at the height, nil
// when out of range.
func (c *Chain) GetIndexByHeight(height int32) *blockindex.BlockIndex {
	c.mtx.RLock()
	defer c.mtx.RUnlock()
	if height < 0 || height >= int32(len(c.active)) {
		return nil
	}
	return c.active[height]
}

func (c *Chain) FindBlockIndex(hash util.Hash) *blockindex.BlockIndex {
	c.mtx.RLock()
	defer c.mtx.RUnlock()
	return c.indexMap[hash]
}

// Contains reports whether the index entry is part of the active chain.
func (c *Chain) Contains(bi *blockindex.BlockIndex) bool {
	if bi == nil {
		return false
	}
	c.mtx.RLock()
	defer c.mtx.RUnlock()
	return int(bi.Height) < len(c.active) && c.active[bi.Height] == bi
}

// AddToIndexMap registers a block index without changing the active
// chain.
func (c *Chain) AddToIndexMap(bi *blockindex.BlockIndex) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.indexMap[*bi.GetBlockHash()] = bi
}

// SetTip makes bi the active tip, truncating or extending the active
// vector so that every ancestor is in place.
func (c *Chain) SetTip(bi *blockindex.BlockIndex) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	if bi == nil {
		c.active = c.active[:0]
		return
	}
	tmp := make([]*blockindex.BlockIndex, bi.Height+1)
	for bi != nil {
		tmp[bi.Height] = bi
		bi = bi.Prev
	}
	c.active = tmp
}
