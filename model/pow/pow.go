package pow

import (
	"math/big"

	"github.com/FortuneBlockTeam/fortuneblock/model/block"
	"github.com/FortuneBlockTeam/fortuneblock/model/blockindex"
	"github.com/FortuneBlockTeam/fortuneblock/model/chainparams"
	"github.com/FortuneBlockTeam/fortuneblock/util"
)

type Pow struct{}

// GetNextWorkRequired returns the compact difficulty for a block built
// on indexPrev with the candidate header blHeader.
func (pow *Pow) GetNextWorkRequired(indexPrev *blockindex.BlockIndex, blHeader *block.BlockHeader,
	params *chainparams.Params) uint32 {
	if indexPrev == nil {
		return BigToCompact(params.PowLimit)
	}

	// Special rule for regTest: we never retarget.
	if params.FPowNoRetargeting {
		return indexPrev.Header.Bits
	}

	if params.FPowAllowMinDifficultyBlocks {
		// A block with a timestamp more than twice the target spacing
		// after its parent may use the minimum difficulty.
		if int64(blHeader.Time) > int64(indexPrev.GetBlockTime())+params.TargetTimePerBlock*2 {
			return BigToCompact(params.PowLimit)
		}
	}

	blocksPerRetarget := int32(params.TargetTimespan / params.TargetTimePerBlock)
	if (indexPrev.Height+1)%blocksPerRetarget != 0 {
		return indexPrev.Header.Bits
	}

	firstIndex := indexPrev.GetAncestor(indexPrev.Height - blocksPerRetarget + 1)
	if firstIndex == nil {
		return indexPrev.Header.Bits
	}

	return pow.calculateNextWorkRequired(indexPrev, int64(firstIndex.GetBlockTime()), params)
}

func (pow *Pow) calculateNextWorkRequired(indexPrev *blockindex.BlockIndex, firstBlockTime int64,
	params *chainparams.Params) uint32 {
	if params.FPowNoRetargeting {
		return indexPrev.Header.Bits
	}

	// Limit adjustment step
	actualTimeSpan := int64(indexPrev.GetBlockTime()) - firstBlockTime
	if actualTimeSpan < params.TargetTimespan/4 {
		actualTimeSpan = params.TargetTimespan / 4
	}
	if actualTimeSpan > params.TargetTimespan*4 {
		actualTimeSpan = params.TargetTimespan * 4
	}

	// Retarget
	bnNew := CompactToBig(indexPrev.Header.Bits)
	bnNew.Mul(bnNew, big.NewInt(actualTimeSpan))
	bnNew.Div(bnNew, big.NewInt(params.TargetTimespan))
	if bnNew.Cmp(params.PowLimit) > 0 {
		bnNew = params.PowLimit
	}
	return BigToCompact(bnNew)
}

// CheckProofOfWork verifies the hash satisfies the claimed target and
// the target is within the network limit.
func (pow *Pow) CheckProofOfWork(hash *util.Hash, bits uint32, params *chainparams.Params) bool {
	target := CompactToBig(bits)
	if target.Sign() <= 0 || target.Cmp(params.PowLimit) > 0 ||
		HashToBig(hash).Cmp(target) > 0 {
		return false
	}

	return true
}
