package consensus

const (
	// MaxBlockSize is the consensus limit on serialized block size.
	MaxBlockSize = 2000000

	// MaxBlockSigOps is the consensus limit on signature operations in
	// one block.
	MaxBlockSigOps = MaxBlockSize / 50

	// CoinbaseMaturity is the number of confirmations before a coinbase
	// output may be spent.
	CoinbaseMaturity = 100

	// MedianTimeSpan is the window of blocks used for the median time
	// past calculation.
	MedianTimeSpan = 11

	// LocktimeMedianTimePast means lock time checks use the median of
	// the past blocks rather than the block time itself.
	LocktimeMedianTimePast = 1 << 1
)
