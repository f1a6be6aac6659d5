package amount

import (
	"math"

	"github.com/pkg/errors"
)

// Amount is a quantity of satoshis, the atomic unit of the currency.
type Amount int64

const (
	// COIN is the number of satoshis in one coin.
	COIN Amount = 100000000

	// MaxMoney is the total money supply cap checked by sanity tests.
	MaxMoney = 21000000 * COIN
)

// MoneyRange reports whether value is a legal monetary value.
func MoneyRange(value Amount) bool {
	return value >= 0 && value <= MaxMoney
}

// NewAmount converts a floating point coin quantity to an Amount.
// Fractions below one satoshi are rounded to the nearest satoshi.
func NewAmount(f float64) (Amount, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.New("invalid coin amount")
	}
	return Amount(round(f * float64(COIN))), nil
}

// ToCoin returns the amount expressed in whole coins.
func (a Amount) ToCoin() float64 {
	return float64(a) / float64(COIN)
}

func round(f float64) int64 {
	if f < 0 {
		return int64(f - 0.5)
	}
	return int64(f + 0.5)
}
