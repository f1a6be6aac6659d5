package errcode

import (
	"fmt"
)

type RewardErr int

const RewardBase RewardErr = 3000

const (
	ErrRewardOverdraft RewardErr = RewardBase + iota
	ErrBadFortuneAddress
	ErrBadPayoutListHash
	ErrSpecialPayload
)

var rewardErrToString = map[RewardErr]string{
	ErrRewardOverdraft:   "coinbase payments exceed the available block reward",
	ErrBadFortuneAddress: "configured fortune payment address does not parse",
	ErrBadPayoutListHash: "bad payout list hash in special coinbase payload",
	ErrSpecialPayload:    "failed to compute special coinbase payload",
}

func (re RewardErr) String() string {
	if s, ok := rewardErrToString[re]; ok {
		return s
	}
	return fmt.Sprintf("Unknown code (%d)", re)
}
