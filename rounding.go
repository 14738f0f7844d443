package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RoundingMode selects how [Money.Mul], [Money.Quo] and [RateConverter]
// round a result that does not fit the precision of its currency.
type RoundingMode int

const (
	// RoundUp rounds toward positive infinity (ceiling).
	RoundUp RoundingMode = iota
	// RoundDown rounds toward negative infinity (floor).
	RoundDown
	// RoundTowardZero discards the extra digits (truncation).
	RoundTowardZero
	// RoundAwayFromZero rounds to the larger magnitude.
	RoundAwayFromZero
	// RoundHalfUp rounds to the nearest neighbor, ties away from zero.
	RoundHalfUp
	// RoundHalfDown rounds to the nearest neighbor, ties toward zero.
	RoundHalfDown
	// RoundHalfEven rounds to the nearest neighbor, ties to the even neighbor
	// (banker's rounding).
	RoundHalfEven
	// RoundHalfOdd rounds to the nearest neighbor, ties to the odd neighbor.
	RoundHalfOdd
	// RoundHalfCeiling rounds to the nearest neighbor, ties toward positive infinity.
	RoundHalfCeiling
	// RoundHalfFloor rounds to the nearest neighbor, ties toward negative infinity.
	RoundHalfFloor
)

var roundingNames = [...]string{
	RoundUp:           "up",
	RoundDown:         "down",
	RoundTowardZero:   "toward zero",
	RoundAwayFromZero: "away from zero",
	RoundHalfUp:       "half up",
	RoundHalfDown:     "half down",
	RoundHalfEven:     "half even",
	RoundHalfOdd:      "half odd",
	RoundHalfCeiling:  "half ceiling",
	RoundHalfFloor:    "half floor",
}

// IsValid returns true if the mode is one of the declared rounding modes.
func (m RoundingMode) IsValid() bool {
	return m >= RoundUp && m <= RoundHalfFloor
}

func (m RoundingMode) String() string {
	if !m.IsValid() {
		return fmt.Sprintf("RoundingMode(%d)", int(m))
	}
	return roundingNames[m]
}

var two = decimal.NewFromInt(2)

// quoInt returns num / den rounded to an integer using the given mode.
// The computation is exact: only the integer quotient and the remainder
// are inspected, no intermediate result is rounded.
// The caller must ensure that den is not zero.
func quoInt(num, den decimal.Decimal, mode RoundingMode) decimal.Decimal {
	q, r := num.QuoRem(den, 0)
	if r.IsZero() {
		return q
	}

	// Sign of the exact quotient
	sign := num.Sign() * den.Sign()
	away := q.Add(decimal.NewFromInt(int64(sign)))

	// Position of the remainder relative to a half
	half := r.Abs().Mul(two).Cmp(den.Abs())

	switch mode {
	case RoundUp:
		if sign > 0 {
			return away
		}
	case RoundDown:
		if sign < 0 {
			return away
		}
	case RoundAwayFromZero:
		return away
	case RoundHalfUp:
		if half >= 0 {
			return away
		}
	case RoundHalfDown:
		if half > 0 {
			return away
		}
	case RoundHalfEven:
		if half > 0 || (half == 0 && !q.Mod(two).IsZero()) {
			return away
		}
	case RoundHalfOdd:
		if half > 0 || (half == 0 && q.Mod(two).IsZero()) {
			return away
		}
	case RoundHalfCeiling:
		if half > 0 || (half == 0 && sign > 0) {
			return away
		}
	case RoundHalfFloor:
		if half > 0 || (half == 0 && sign < 0) {
			return away
		}
	}
	return q
}

// roundStep returns d rounded to an integer multiple of step.
func roundStep(d, step decimal.Decimal, mode RoundingMode) decimal.Decimal {
	return quoInt(d, step, mode).Mul(step)
}
