package money

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"regexp"

	"github.com/shopspring/decimal"
)

// Money type represents an amount of money of a particular [Subtype].
//
// The amount is stored as an arbitrary-precision integer number of the
// smallest units of the subtype, so a subtype with 2 subunits stores
// "12.34" as 1234 regardless of the currency.
// The number of digits used when the amount is formatted follows the
// currency instead, see [Money.Amount].
//
// Money values are created only by [New] and its variants, and every
// arithmetic result goes through the same validation as user input.
// The zero value is not a valid money value.
// Money is designed to be safe for concurrent use by multiple goroutines.
type Money struct {
	class  Subtype
	curr   Currency
	value  decimal.Decimal // integer number of the smallest units of class
	digits int             // number of subunits of curr
}

// formats holds precompiled amount patterns for the common numbers of subunits.
var formats = func() []*regexp.Regexp {
	res := make([]*regexp.Regexp, 19)
	for i := range res {
		res[i] = regexp.MustCompile(formatPattern(i))
	}
	return res
}()

func formatPattern(subunits int) string {
	if subunits == 0 {
		return `^-?\d+$`
	}
	return fmt.Sprintf(`^-?\d+\.\d{%d}$`, subunits)
}

func formatFor(subunits int) *regexp.Regexp {
	if subunits < len(formats) {
		return formats[subunits]
	}
	return regexp.MustCompile(formatPattern(subunits))
}

// pow10 returns 10^n for a non-negative n.
func pow10(n int) decimal.Decimal {
	return decimal.New(1, int32(n))
}

// New returns a money value of the given subtype.
// The amount must be a plain decimal string with an optional leading minus
// and exactly as many digits after the decimal point as the currency uses.
// For example, a US Dollar amount is "12.34" and a Japanese Yen amount is
// "1234".
// Exponents, thousands separators and whitespace are rejected.
//
// New returns a [*WorkError] if:
//   - the sign policy of the subtype cannot be satisfied ([ErrSignConflict]);
//   - the currency uses more subunits than the subtype stores ([ErrSubunitLimit]).
//
// New returns a [*CreateError] if:
//   - the currency is not accepted by the subtype ([ErrCurrencyNotAllowed]);
//   - the amount format is invalid ([ErrInvalidFormat]);
//   - [Subtype.Validate] rejects the value;
//   - the sign of the amount violates the sign policy.
func New(s Subtype, amount string, curr Currency) (Money, error) {
	m, err := newMoney(s, amount, curr)
	if err != nil {
		return Money{}, err
	}
	return m, nil
}

// MustNew is like [New] but panics if the money value cannot be created.
// It simplifies safe initialization of global variables holding money values.
func MustNew(s Subtype, amount string, curr Currency) Money {
	m, err := New(s, amount, curr)
	if err != nil {
		panic(fmt.Sprintf("New(%v, %q, %v) failed: %v", s.Name(), amount, curr, err))
	}
	return m
}

func newMoney(s Subtype, amount string, curr Currency) (Money, error) {
	name, policy := s.Name(), s.Sign()

	// Subtype
	if policy.Conflicting() {
		return Money{}, &WorkError{
			Op:       "New",
			Subtype:  name,
			Subunits: s.Subunits(),
			Err:      fmt.Errorf("%w: %v", ErrSignConflict, policy),
		}
	}

	// Currency
	currs := s.Currencies()
	if !currs.Contains(curr) {
		return Money{}, &CreateError{Subtype: name, Amount: amount, Currency: curr.Code(), Err: ErrCurrencyNotAllowed}
	}
	digits, err := currs.SubunitFor(curr)
	if err != nil {
		return Money{}, &CreateError{Subtype: name, Amount: amount, Currency: curr.Code(), Err: err}
	}
	if digits > s.Subunits() {
		return Money{}, &WorkError{
			Op:            "New",
			Subtype:       name,
			Subunits:      s.Subunits(),
			Other:         curr.Code(),
			OtherSubunits: digits,
			Amount:        amount,
			Err:           ErrSubunitLimit,
		}
	}

	// Format
	format := formatFor(digits)
	if !format.MatchString(amount) {
		return Money{}, &CreateError{
			Subtype:  name,
			Amount:   amount,
			Currency: curr.Code(),
			Pattern:  format.String(),
			Err:      ErrInvalidFormat,
		}
	}

	// Subunits
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, &CreateError{Subtype: name, Amount: amount, Currency: curr.Code(), Err: fmt.Errorf("%w: %w", ErrInvalidFormat, err)}
	}
	d = d.Shift(int32(s.Subunits()))
	m := Money{
		class:  s,
		curr:   curr,
		value:  decimal.NewFromBigInt(d.BigInt(), 0),
		digits: digits,
	}

	// Subtype validation
	if err := s.Validate(m); err != nil {
		var cerr *CreateError
		if errors.As(err, &cerr) {
			return Money{}, err
		}
		return Money{}, &CreateError{Subtype: name, Amount: amount, Currency: curr.Code(), Err: err}
	}

	// Sign
	if err := policy.check(m.Sign()); err != nil {
		return Money{}, &CreateError{Subtype: name, Amount: amount, Currency: curr.Code(), Err: err}
	}

	return m, nil
}

// NewFromMoney converts a money value to another subtype that stores the
// same number of subunits.
// The amount and the currency of m are validated again by [New], so the
// conversion fails if the target subtype does not accept them.
//
// NewFromMoney returns a [*WorkError] wrapping [ErrSubunitMismatch] if the
// subtypes store different numbers of subunits.
func NewFromMoney(s Subtype, m Money) (Money, error) {
	if s.Subunits() != m.class.Subunits() {
		return Money{}, &WorkError{
			Op:            "NewFromMoney",
			Subtype:       s.Name(),
			Subunits:      s.Subunits(),
			Other:         m.class.Name(),
			OtherSubunits: m.class.Subunits(),
			Err:           ErrSubunitMismatch,
		}
	}
	return New(s, m.Amount(), m.Curr())
}

// newFromDecimal wraps the result of an operation into a money value of
// subtype s.
// The amount is formatted with the number of subunits of the currency when
// no digits are lost, so that the result fails the format check of [New]
// if it does not fit the currency.
func newFromDecimal(s Subtype, d decimal.Decimal, curr Currency) (Money, error) {
	amount := d.String()
	if digits, err := s.Currencies().SubunitFor(curr); err == nil {
		if d.Equal(d.Truncate(int32(digits))) {
			amount = d.StringFixed(int32(digits))
		}
	}
	return newMoney(s, amount, curr)
}

// newFromUnits is like newFromDecimal but takes an amount in the smallest
// units of subtype s.
func newFromUnits(s Subtype, u units) (Money, error) {
	return newFromDecimal(s, u.value.Shift(-int32(s.Subunits())), u.curr)
}

// ParseJSON decodes a money value of subtype s from its JSON representation
// produced by [Money.MarshalJSON].
func ParseJSON(s Subtype, data []byte) (Money, error) {
	var v jsonMoney
	if err := json.Unmarshal(data, &v); err != nil {
		return Money{}, fmt.Errorf("unmarshaling %T: %w", Money{}, err)
	}
	c, err := NewCurrency(v.Currency)
	if err != nil {
		return Money{}, fmt.Errorf("unmarshaling %T: %w", Money{}, err)
	}
	return New(s, v.Amount, c)
}

type jsonMoney struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// MarshalJSON implements the [json.Marshaler] interface.
// The result is an object with the amount and the currency code, both as strings:
//
//	{"amount":"12.34","currency":"USD"}
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonMoney{Amount: m.Amount(), Currency: m.curr.Code()})
}

// Subtype returns the subtype of the money value.
func (m Money) Subtype() Subtype {
	return m.class
}

// Curr returns the currency of the money value.
func (m Money) Curr() Currency {
	return m.curr
}

// Amount returns the amount as a decimal string with as many digits after
// the decimal point as the currency uses.
// For example, a US Dollar amount is "12.30" and a Japanese Yen amount is "12".
//
// Amount panics if the stored value has non-zero digits beyond the
// precision of the currency, which cannot happen for values created by
// this package.
func (m Money) Amount() string {
	d := m.Decimal()
	if !d.Equal(d.Truncate(int32(m.digits))) {
		panic(fmt.Sprintf("%v.Amount() failed: %v has more than %v digit(s) after the decimal point", m.class.Name(), d, m.digits))
	}
	return d.StringFixed(int32(m.digits))
}

// Decimal returns the amount as a decimal number.
func (m Money) Decimal() decimal.Decimal {
	return m.value.Shift(-int32(m.class.Subunits()))
}

// Units returns the amount as an integer number of the smallest units of
// the subtype, for example cents for a subtype with 2 subunits.
func (m Money) Units() *big.Int {
	return m.value.BigInt()
}

// Sign returns:
//
//	-1 if m < 0
//	 0 if m = 0
//	+1 if m > 0
func (m Money) Sign() int {
	return m.value.Sign()
}

// IsZero returns true if the amount is zero.
func (m Money) IsZero() bool {
	return m.value.IsZero()
}

// IsPos returns true if the amount is greater than zero.
func (m Money) IsPos() bool {
	return m.value.IsPositive()
}

// IsNeg returns true if the amount is less than zero.
func (m Money) IsNeg() bool {
	return m.value.IsNegative()
}

// SameCurr returns true if both values are denominated in the same currency.
func (m Money) SameCurr(b Money) bool {
	return m.curr == b.curr
}

// String implements the [fmt.Stringer] interface and returns the currency
// code followed by the amount, for example "USD 12.34".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m Money) String() string {
	return m.curr.Code() + " " + m.Amount()
}

func (m Money) units() units {
	return newUnits(m.curr, m.value)
}

// step returns the number of smallest units of the subtype in one minor
// unit of the currency.
func (m Money) step() decimal.Decimal {
	return pow10(m.class.Subunits() - m.digits)
}

// sameSubunits returns a [*WorkError] if any of bs is of a subtype storing
// a different number of subunits than the subtype of m.
func (m Money) sameSubunits(op string, bs ...Money) error {
	for _, b := range bs {
		if b.class.Subunits() != m.class.Subunits() {
			return &WorkError{
				Op:            op,
				Subtype:       m.class.Name(),
				Subunits:      m.class.Subunits(),
				Other:         b.class.Name(),
				OtherSubunits: b.class.Subunits(),
				Err:           ErrSubunitMismatch,
			}
		}
	}
	return nil
}

func unitsOf(bs []Money) []units {
	res := make([]units, len(bs))
	for i, b := range bs {
		res[i] = b.units()
	}
	return res
}

// Equal returns true if both values have the same amount and currency.
// Values in different currencies are not equal.
//
// Equal returns an error if the subtypes store different numbers of subunits.
func (m Money) Equal(b Money) (bool, error) {
	if err := m.sameSubunits("Equal", b); err != nil {
		return false, err
	}
	return m.units().equal(b.units()), nil
}

// Cmp compares money values and returns:
//
//	-1 if m < b
//	 0 if m = b
//	+1 if m > b
//
// Cmp returns an error if:
//   - the subtypes store different numbers of subunits;
//   - the values are denominated in different currencies.
func (m Money) Cmp(b Money) (int, error) {
	return m.cmp("Cmp", b)
}

func (m Money) cmp(op string, b Money) (int, error) {
	if err := m.sameSubunits(op, b); err != nil {
		return 0, err
	}
	c, err := m.units().cmp(b.units())
	if err != nil {
		return 0, fmt.Errorf("%v: %w", op, err)
	}
	return c, nil
}

// Greater returns true if m > b.
// See [Money.Cmp] for the possible errors.
func (m Money) Greater(b Money) (bool, error) {
	c, err := m.cmp("Greater", b)
	return c > 0, err
}

// GreaterOrEqual returns true if m >= b.
// See [Money.Cmp] for the possible errors.
func (m Money) GreaterOrEqual(b Money) (bool, error) {
	c, err := m.cmp("GreaterOrEqual", b)
	return err == nil && c >= 0, err
}

// Less returns true if m < b.
// See [Money.Cmp] for the possible errors.
func (m Money) Less(b Money) (bool, error) {
	c, err := m.cmp("Less", b)
	return c < 0, err
}

// LessOrEqual returns true if m <= b.
// See [Money.Cmp] for the possible errors.
func (m Money) LessOrEqual(b Money) (bool, error) {
	c, err := m.cmp("LessOrEqual", b)
	return err == nil && c <= 0, err
}

// Add returns the sum of m and all addends.
// The result has the subtype of m and is validated by [New].
//
// Add returns an error if:
//   - any addend is of a subtype storing a different number of subunits;
//   - any addend is denominated in a different currency;
//   - the result is not a valid value of the subtype, for example a
//     negative sum for a non-negative subtype.
func (m Money) Add(addends ...Money) (Money, error) {
	if err := m.sameSubunits("Add", addends...); err != nil {
		return Money{}, err
	}
	u, err := m.units().add(unitsOf(addends)...)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v + ...]: %w", m, err)
	}
	return newFromUnits(m.class, u)
}

// Sub returns m minus all subtrahends.
// See [Money.Add] for the possible errors.
func (m Money) Sub(subtrahends ...Money) (Money, error) {
	if err := m.sameSubunits("Sub", subtrahends...); err != nil {
		return Money{}, err
	}
	u, err := m.units().sub(unitsOf(subtrahends)...)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v - ...]: %w", m, err)
	}
	return newFromUnits(m.class, u)
}

func parseFactor(s string) (decimal.Decimal, error) {
	if !formatAny.MatchString(s) {
		return decimal.Decimal{}, fmt.Errorf("parsing %q: %w", s, ErrInvalidFormat)
	}
	return decimal.NewFromString(s)
}

// formatAny matches plain decimal strings with any number of digits after the
// decimal point.
var formatAny = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

// Mul returns m multiplied by a factor, rounded to the precision of the
// currency with the given rounding mode.
// The factor is a plain decimal string, such as "1.5" or "-3".
//
// Mul returns an error if the factor cannot be parsed, the rounding mode
// is not valid, or the result is not a valid value of the subtype.
func (m Money) Mul(factor string, mode RoundingMode) (Money, error) {
	if !mode.IsValid() {
		return Money{}, fmt.Errorf("computing [%v * %v]: invalid rounding mode %v", m, factor, mode)
	}
	e, err := parseFactor(factor)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v * %v]: %w", m, factor, err)
	}
	return newFromUnits(m.class, m.units().mul(e, m.step(), mode))
}

// Quo returns m divided by a divisor, rounded to the precision of the
// currency with the given rounding mode.
// The divisor is a plain decimal string, such as "3" or "0.25".
//
// Quo returns an error if the divisor cannot be parsed or is zero, the
// rounding mode is not valid, or the result is not a valid value of the subtype.
func (m Money) Quo(divisor string, mode RoundingMode) (Money, error) {
	if !mode.IsValid() {
		return Money{}, fmt.Errorf("computing [%v / %v]: invalid rounding mode %v", m, divisor, mode)
	}
	e, err := parseFactor(divisor)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v / %v]: %w", m, divisor, err)
	}
	u, err := m.units().quo(e, m.step(), mode)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v / %v]: %w", m, divisor, err)
	}
	return newFromUnits(m.class, u)
}

// Mod returns the remainder of the truncated division of m by b.
// The sign of the result follows the sign of m.
//
// Mod returns an error if the subtypes store different numbers of subunits,
// the currencies differ, b is zero, or the result is not a valid value of
// the subtype.
func (m Money) Mod(b Money) (Money, error) {
	if err := m.sameSubunits("Mod", b); err != nil {
		return Money{}, err
	}
	u, err := m.units().mod(b.units())
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v mod %v]: %w", m, b, err)
	}
	return newFromUnits(m.class, u)
}

// RatioOf returns m / b as a decimal string truncated to 14 digits after
// the decimal point, with trailing zeros removed.
// Currencies are not compared, which makes RatioOf usable for deriving
// exchange rates.
//
// RatioOf returns an error if the subtypes store different numbers of
// subunits or b is zero.
func (m Money) RatioOf(b Money) (string, error) {
	if err := m.sameSubunits("RatioOf", b); err != nil {
		return "", err
	}
	d, err := m.units().ratioOf(b.units())
	if err != nil {
		return "", fmt.Errorf("computing [%v / %v]: %w", m, b, err)
	}
	return d.String(), nil
}

// Allocate splits m into parts proportional to the given ratios.
// Ratios are plain non-negative decimal strings, such as "70" and "30",
// and at least one of them must be positive.
// The parts always sum up to m exactly: the minor units left over after
// the proportional split go one by one to the parts with the largest
// discarded fraction, the earliest part winning ties.
//
// Every part is validated by [New], so for example allocating to a zero
// ratio fails for a positive-only subtype.
func (m Money) Allocate(ratios ...string) ([]Money, error) {
	rs := make([]decimal.Decimal, len(ratios))
	for i, r := range ratios {
		d, err := parseFactor(r)
		if err != nil {
			return nil, fmt.Errorf("allocating %v: %w: %w", m, ErrInvalidRatio, err)
		}
		rs[i] = d
	}
	parts, err := m.units().allocate(rs, m.step())
	if err != nil {
		return nil, fmt.Errorf("allocating %v: %w", m, err)
	}
	return m.wrapAll(parts)
}

// AllocateTo splits m into n parts that are as equal as possible.
// If m cannot be divided equally, the remaining minor units are distributed
// among the first parts.
//
// AllocateTo returns an error if n is not positive or any part is not a
// valid value of the subtype.
func (m Money) AllocateTo(n int) ([]Money, error) {
	parts, err := m.units().allocateTo(n, m.step())
	if err != nil {
		return nil, fmt.Errorf("splitting %v into %v parts: %w", m, n, err)
	}
	return m.wrapAll(parts)
}

func (m Money) wrapAll(parts []units) ([]Money, error) {
	res := make([]Money, len(parts))
	for i, p := range parts {
		b, err := newFromUnits(m.class, p)
		if err != nil {
			return nil, err
		}
		res[i] = b
	}
	return res, nil
}

// Abs returns the absolute value of m, validated by [New].
func (m Money) Abs() (Money, error) {
	return newFromUnits(m.class, m.units().abs())
}

// Neg returns m with the opposite sign, validated by [New].
func (m Money) Neg() (Money, error) {
	return newFromUnits(m.class, m.units().neg())
}

// Convert converts m to another currency using the converter.
// The result has the subtype of m and is validated by [New] for the target
// currency.
func (m Money) Convert(c Converter, to Currency) (Money, error) {
	a, err := c.Convert(NewAmount(m.curr, m.Decimal()), to)
	if err != nil {
		return Money{}, fmt.Errorf("converting %v to %v: %w", m, to, err)
	}
	return newFromDecimal(m.class, a.Decimal(), a.Curr())
}

// Min returns the smallest of the values.
// No new value is created, the result is one of the arguments.
//
// Min returns an error if the subtypes store different numbers of subunits
// or the values are denominated in different currencies.
func Min(first Money, rest ...Money) (Money, error) {
	if err := first.sameSubunits("Min", rest...); err != nil {
		return Money{}, err
	}
	res := first
	for _, b := range rest {
		c, err := b.cmp("Min", res)
		if err != nil {
			return Money{}, err
		}
		if c < 0 {
			res = b
		}
	}
	return res, nil
}

// Max returns the largest of the values.
// See [Min] for the possible errors.
func Max(first Money, rest ...Money) (Money, error) {
	if err := first.sameSubunits("Max", rest...); err != nil {
		return Money{}, err
	}
	res := first
	for _, b := range rest {
		c, err := b.cmp("Max", res)
		if err != nil {
			return Money{}, err
		}
		if c > 0 {
			res = b
		}
	}
	return res, nil
}

// Sum returns the sum of the values with the subtype of first.
// See [Money.Add] for the possible errors.
func Sum(first Money, rest ...Money) (Money, error) {
	if err := first.sameSubunits("Sum", rest...); err != nil {
		return Money{}, err
	}
	u, err := sumUnits(first.units(), unitsOf(rest)...)
	if err != nil {
		return Money{}, fmt.Errorf("computing sum: %w", err)
	}
	return newFromUnits(first.class, u)
}

// Avg returns the arithmetic mean of the values with the subtype of first,
// rounded half up to the precision of the currency.
// See [Money.Add] for the possible errors.
func Avg(first Money, rest ...Money) (Money, error) {
	if err := first.sameSubunits("Avg", rest...); err != nil {
		return Money{}, err
	}
	u, err := avgUnits(first.step(), first.units(), unitsOf(rest)...)
	if err != nil {
		return Money{}, fmt.Errorf("computing average: %w", err)
	}
	return newFromUnits(first.class, u)
}
