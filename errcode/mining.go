package errcode

import (
	"fmt"
)

type MiningErr int

const MiningBase MiningErr = 2000

const (
	ErrBlockSizeTooSmall MiningErr = MiningBase + iota
	ErrNoMiningAddress
	ErrTemplateStale
	ErrTestBlockValidity
)

var miningErrToString = map[MiningErr]string{
	ErrBlockSizeTooSmall: "configured max generated block size leaves no room for realistic transactions",
	ErrNoMiningAddress:   "no payout address configured for generated blocks",
	ErrTemplateStale:     "chain tip moved while the template was being assembled",
	ErrTestBlockValidity: "assembled block failed validity checks",
}

func (me MiningErr) String() string {
	if s, ok := miningErrToString[me]; ok {
		return s
	}
	return fmt.Sprintf("Unknown code (%d)", me)
}
