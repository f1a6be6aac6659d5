package chainparams

import (
	"github.com/FortuneBlockTeam/fortuneblock/util/amount"
)

// GetBlockSubsidy returns the base reward for the block following
// prevHeight. The schedule halves the genesis reward every
// SubsidyHalvingInterval blocks. prevBits is accepted for interface
// compatibility with difficulty adjusted schedules but does not affect
// this one.
func GetBlockSubsidy(prevBits uint32, prevHeight int32, params *Params) amount.Amount {
	_ = prevBits

	halvings := (prevHeight + 1) / params.SubsidyHalvingInterval
	if halvings >= 64 {
		return 0
	}
	return params.GenesisBlockReward >> uint(halvings)
}
