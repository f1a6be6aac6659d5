package blockindex

import (
	"math/big"
	"sort"

	"github.com/FortuneBlockTeam/fortuneblock/model/block"
	"github.com/FortuneBlockTeam/fortuneblock/model/consensus"
	"github.com/FortuneBlockTeam/fortuneblock/model/script"
	"github.com/FortuneBlockTeam/fortuneblock/util"
)

// BlockIndex is the in memory index entry for one connected block.
type BlockIndex struct {
	Header block.BlockHeader
	// Height of this entry in the active chain.
	Height int32
	// Prev is the index entry of the parent block.
	Prev *BlockIndex
	// ChainWork is the total work in the chain up to and including
	// this block.
	ChainWork big.Int
	// TxCount is the number of transactions in the block.
	TxCount int32

	// CoinbasePayee is the payout script of the block's first coinbase
	// output, retained for fortune payee lookups.
	CoinbasePayee *script.Script

	blockHash util.Hash
}

func NewBlockIndex(blkHeader *block.BlockHeader) *BlockIndex {
	bi := new(BlockIndex)
	bi.SetNull()
	bi.Header = *blkHeader
	bi.blockHash = blkHeader.GetHash()
	return bi
}

func (bi *BlockIndex) SetNull() {
	bi.Header = block.BlockHeader{}
	bi.blockHash = util.HashZero
	bi.Prev = nil
	bi.Height = 0
	bi.TxCount = 0
	bi.CoinbasePayee = nil
}

func (bi *BlockIndex) GetBlockHash() *util.Hash {
	if bi.blockHash.IsNull() {
		bi.blockHash = bi.Header.GetHash()
	}
	return &bi.blockHash
}

func (bi *BlockIndex) GetBlockTime() uint32 {
	return bi.Header.Time
}

// GetMedianTimePast returns the median block time of the last
// MedianTimeSpan blocks ending at this entry.
func (bi *BlockIndex) GetMedianTimePast() int64 {
	median := make([]int64, 0, consensus.MedianTimeSpan)
	index := bi
	for i := 0; i < consensus.MedianTimeSpan && index != nil; i++ {
		median = append(median, int64(index.GetBlockTime()))
		index = index.Prev
	}
	sort.Slice(median, func(i, j int) bool { return median[i] < median[j] })
	return median[len(median)/2]
}

// GetAncestor walks back to the entry at the given height, or nil when
// the height is out of range.
func (bi *BlockIndex) GetAncestor(height int32) *BlockIndex {
	if height > bi.Height || height < 0 {
		return nil
	}
	index := bi
	for index != nil && index.Height != height {
		index = index.Prev
	}
	return index
}
