package mempool

import (
	"github.com/FortuneBlockTeam/fortuneblock/model/blockindex"
)

// LockPoints track the height and time at which a transaction was
// known to be final, together with the highest input block used for
// the calculation.
type LockPoints struct {
	Height        int32
	Time          int64
	MaxInputBlock *blockindex.BlockIndex
}

func NewLockPoints() *LockPoints {
	return &LockPoints{Height: -1}
}
