package mining

import (
	"github.com/FortuneBlockTeam/fortuneblock/conf"
	"github.com/FortuneBlockTeam/fortuneblock/errcode"
	"github.com/FortuneBlockTeam/fortuneblock/model/consensus"
	"github.com/FortuneBlockTeam/fortuneblock/util"
)

const (
	// Limit the number of attempts to add transactions to the block when it is
	// close to full; this is just a simple heuristic to finish quickly if the
	// mempool has a lot of entries.
	maxConsecutiveFailures = 1000

	// Space reserved up front for the coinbase transaction.
	coinbaseReservedSize   = 1000
	coinbaseReservedSigOps = 100

	// Serialized size of a p2pkh output: 8 byte value, 1 byte script
	// length, 25 byte script.
	p2pkhOutputSize = 34

	defaultBlockMinTxFee = 1000
)

// computeMaxGeneratedBlockSize returns the cap on generated block size.
// An unset config value defaults to 1000 bytes below the consensus
// limit; a configured value too small to hold a coinbase plus at least
// one realistic transaction is an error.
func computeMaxGeneratedBlockSize() (uint64, error) {
	maxGeneratedBlockSize := uint64(consensus.MaxBlockSize - 1000)
	if conf.Cfg != nil && conf.Cfg.Mining.BlockMaxSize != 0 {
		maxGeneratedBlockSize = conf.Cfg.Mining.BlockMaxSize
	}

	if maxGeneratedBlockSize > consensus.MaxBlockSize-1000 {
		maxGeneratedBlockSize = consensus.MaxBlockSize - 1000
	}
	if maxGeneratedBlockSize < 2*coinbaseReservedSize {
		return 0, errcode.New(errcode.ErrBlockSizeTooSmall)
	}
	return maxGeneratedBlockSize, nil
}

// blockMinFeeRate is the satoshis/kB floor below which packages are not
// worth including.
func blockMinFeeRate() util.FeeRate {
	feePerK := int64(defaultBlockMinTxFee)
	if conf.Cfg != nil {
		feePerK = conf.Cfg.Mining.BlockMinTxFee
	}
	return *util.NewFeeRate(feePerK)
}
