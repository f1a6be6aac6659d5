package util

import (
	"fmt"
)

// FeeRate expresses a fee as satoshis per 1000 bytes.
type FeeRate struct {
	SataoshisPerK int64
}

// GetFee returns the fee in satoshis for the given size in bytes.
func (feeRate *FeeRate) GetFee(bytes int) int64 {
	size := int64(bytes)
	fee := feeRate.SataoshisPerK * size / 1000
	if fee == 0 && size != 0 {
		if feeRate.SataoshisPerK > 0 {
			fee = 1
		}
		if feeRate.SataoshisPerK < 0 {
			fee = -1
		}
	}
	return fee
}

func (feeRate *FeeRate) GetFeePerK() int64 {
	return feeRate.GetFee(1000)
}

func (feeRate *FeeRate) Less(rate FeeRate) bool {
	return feeRate.SataoshisPerK < rate.SataoshisPerK
}

func (feeRate *FeeRate) String() string {
	return fmt.Sprintf("%d.%08d FBC/kB",
		feeRate.SataoshisPerK/100000000,
		feeRate.SataoshisPerK%100000000)
}

func NewFeeRate(amount int64) *FeeRate {
	return &FeeRate{SataoshisPerK: amount}
}

// NewFeeRateWithSize derives the rate paid by feePaid satoshis over
// size bytes.
func NewFeeRateWithSize(feePaid int64, size int64) *FeeRate {
	if size > 0 {
		return NewFeeRate(feePaid * 1000 / size)
	}
	return NewFeeRate(0)
}
