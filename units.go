package money

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

var (
	// ErrCurrencyMismatch is returned when an operation combines amounts
	// denominated in different currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")
	// ErrDivisionByZero is returned when a divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrInvalidRatio is returned by allocations with invalid ratios or
	// an invalid number of parts.
	ErrInvalidRatio = errors.New("invalid ratio")
)

// ratioPrec is the number of digits kept after the decimal point by [units.ratioOf].
const ratioPrec = 14

// units is an integer number of the smallest units of a money class,
// bound to a currency.
// It performs exact arithmetic and knows nothing about validation:
// every result is expected to be re-validated by the caller.
type units struct {
	curr  Currency
	value decimal.Decimal // always an integer
}

func newUnits(c Currency, d decimal.Decimal) units {
	return units{curr: c, value: d}
}

func (u units) sameCurr(v units) bool {
	return u.curr == v.curr
}

func (u units) add(vs ...units) (units, error) {
	d := u.value
	for _, v := range vs {
		if !u.sameCurr(v) {
			return units{}, fmt.Errorf("adding %v to %v: %w", v.curr, u.curr, ErrCurrencyMismatch)
		}
		d = d.Add(v.value)
	}
	return newUnits(u.curr, d), nil
}

func (u units) sub(vs ...units) (units, error) {
	d := u.value
	for _, v := range vs {
		if !u.sameCurr(v) {
			return units{}, fmt.Errorf("subtracting %v from %v: %w", v.curr, u.curr, ErrCurrencyMismatch)
		}
		d = d.Sub(v.value)
	}
	return newUnits(u.curr, d), nil
}

// mul returns u * e rounded to a multiple of step.
func (u units) mul(e, step decimal.Decimal, mode RoundingMode) units {
	return newUnits(u.curr, roundStep(u.value.Mul(e), step, mode))
}

// quo returns u / e rounded to a multiple of step.
func (u units) quo(e, step decimal.Decimal, mode RoundingMode) (units, error) {
	if e.IsZero() {
		return units{}, ErrDivisionByZero
	}
	// u / e / step is computed as u / (e * step) to stay exact.
	return newUnits(u.curr, quoInt(u.value, e.Mul(step), mode).Mul(step)), nil
}

// mod returns the remainder of the truncated division u / v.
// The sign of the remainder follows the sign of u.
func (u units) mod(v units) (units, error) {
	if !u.sameCurr(v) {
		return units{}, fmt.Errorf("computing %v mod %v: %w", u.curr, v.curr, ErrCurrencyMismatch)
	}
	if v.value.IsZero() {
		return units{}, ErrDivisionByZero
	}
	return newUnits(u.curr, u.value.Mod(v.value)), nil
}

func (u units) cmp(v units) (int, error) {
	if !u.sameCurr(v) {
		return 0, fmt.Errorf("comparing %v and %v: %w", u.curr, v.curr, ErrCurrencyMismatch)
	}
	return u.value.Cmp(v.value), nil
}

// equal returns false for different currencies instead of failing.
func (u units) equal(v units) bool {
	return u.sameCurr(v) && u.value.Equal(v.value)
}

// ratioOf returns u / v truncated to [ratioPrec] digits.
// Currencies are not compared.
func (u units) ratioOf(v units) (decimal.Decimal, error) {
	if v.value.IsZero() {
		return decimal.Decimal{}, fmt.Errorf("computing ratio of zero: %w", ErrDivisionByZero)
	}
	q, _ := u.value.QuoRem(v.value, ratioPrec)
	return q, nil
}

func (u units) abs() units {
	return newUnits(u.curr, u.value.Abs())
}

func (u units) neg() units {
	return newUnits(u.curr, u.value.Neg())
}

// allocate splits u proportionally to the ratios.
// Every part is a multiple of step and the parts sum up to u exactly.
// Parts are computed on the absolute value and get the sign of u; the
// leftover steps go one by one to the parts with the largest discarded
// fraction, ties going to the earliest part.
func (u units) allocate(ratios []decimal.Decimal, step decimal.Decimal) ([]units, error) {
	if len(ratios) == 0 {
		return nil, fmt.Errorf("no ratios: %w", ErrInvalidRatio)
	}
	total := decimal.Zero
	for _, r := range ratios {
		if r.IsNegative() {
			return nil, fmt.Errorf("negative ratio %v: %w", r, ErrInvalidRatio)
		}
		total = total.Add(r)
	}
	if !total.IsPositive() {
		return nil, fmt.Errorf("sum of ratios must be positive: %w", ErrInvalidRatio)
	}

	// Amount in steps
	whole, _ := u.value.Abs().QuoRem(step, 0)

	shares := make([]decimal.Decimal, len(ratios))
	fracs := make([]decimal.Decimal, len(ratios))
	left := whole
	for i, r := range ratios {
		shares[i], fracs[i] = whole.Mul(r).QuoRem(total, 0)
		left = left.Sub(shares[i])
	}

	// Leftover distribution
	order := make([]int, len(ratios))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return fracs[order[i]].Cmp(fracs[order[j]]) > 0
	})
	one := decimal.NewFromInt(1)
	for i := 0; left.IsPositive(); i++ {
		k := order[i%len(order)]
		shares[k] = shares[k].Add(one)
		left = left.Sub(one)
	}

	res := make([]units, len(ratios))
	for i, s := range shares {
		s = s.Mul(step)
		if u.value.IsNegative() {
			s = s.Neg()
		}
		res[i] = newUnits(u.curr, s)
	}
	return res, nil
}

// allocateTo splits u into n parts that are as equal as possible.
// Every part is a multiple of step, and the leftover steps are distributed
// among the first parts.
func (u units) allocateTo(n int, step decimal.Decimal) ([]units, error) {
	if n <= 0 {
		return nil, fmt.Errorf("number of parts must be positive, got %v: %w", n, ErrInvalidRatio)
	}
	par := decimal.NewFromInt(int64(n))
	whole, _ := u.value.QuoRem(step, 0)
	quo, rem := whole.QuoRem(par, 0)

	ulp := decimal.NewFromInt(int64(rem.Sign()))
	res := make([]units, n)
	for i := range res {
		d := quo
		if !rem.IsZero() {
			d = d.Add(ulp)
			rem = rem.Sub(ulp)
		}
		res[i] = newUnits(u.curr, d.Mul(step))
	}
	return res, nil
}

func sumUnits(first units, rest ...units) (units, error) {
	return first.add(rest...)
}

// avgUnits returns the mean of the amounts rounded half up to a multiple of step.
func avgUnits(step decimal.Decimal, first units, rest ...units) (units, error) {
	s, err := sumUnits(first, rest...)
	if err != nil {
		return units{}, err
	}
	return s.quo(decimal.NewFromInt(int64(len(rest)+1)), step, RoundHalfUp)
}
