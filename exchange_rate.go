package money

import (
	"errors"
	"fmt"

	gdecimal "github.com/govalues/decimal"
	"github.com/shopspring/decimal"
)

// ErrNoExchangeRate is returned by [RateConverter] when no rate is known
// for a pair of currencies.
var ErrNoExchangeRate = errors.New("no exchange rate")

// Amount is a decimal amount denominated in a currency.
// Unlike [Money], an Amount is not validated against any subtype: it is
// the form in which money values are passed to and returned by a [Converter].
type Amount struct {
	curr  Currency
	value decimal.Decimal
}

// NewAmount returns an amount with the specified currency and value.
func NewAmount(curr Currency, value decimal.Decimal) Amount {
	return Amount{curr: curr, value: value}
}

// Curr returns the currency of the amount.
func (a Amount) Curr() Currency {
	return a.curr
}

// Decimal returns the value of the amount.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// String implements the [fmt.Stringer] interface, for example "USD 12.34".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount) String() string {
	return a.curr.Code() + " " + a.value.String()
}

// Converter converts amounts between currencies.
// It is used by [Money.Convert]; the returned amount is validated by [New],
// so it must not have more digits after the decimal point than the target
// currency uses.
type Converter interface {
	Convert(a Amount, to Currency) (Amount, error)
}

// ExchangeRate represents a unidirectional exchange rate between two currencies.
// This type is designed to be safe for concurrent use by multiple goroutines.
type ExchangeRate struct {
	base  Currency         // currency being exchanged
	quote Currency         // currency being obtained in exchange for the base currency
	value gdecimal.Decimal // how many units of quote currency are needed to exchange for 1 unit of the base currency
}

// NewExchRate returns a new exchange rate between the base and quote currencies.
//
// NewExchRate returns an error if:
//   - any of the currencies is the zero value;
//   - the rate is not positive;
//   - the currencies are the same and the rate is not 1.
func NewExchRate(base, quote Currency, rate gdecimal.Decimal) (ExchangeRate, error) {
	if base.IsZero() || quote.IsZero() {
		return ExchangeRate{}, fmt.Errorf("exchange rate currencies: %w", ErrInvalidCurrency)
	}
	if !rate.IsPos() {
		return ExchangeRate{}, fmt.Errorf("exchange rate must be positive")
	}
	if base == quote && !rate.IsOne() {
		return ExchangeRate{}, fmt.Errorf("exchange rate must be equal to 1")
	}
	return ExchangeRate{base: base, quote: quote, value: rate}, nil
}

// ParseExchRate converts currency and decimal strings to an exchange rate.
// See also constructors [NewCurrency] and [gdecimal.Parse].
//
// [gdecimal.Parse]: https://pkg.go.dev/github.com/govalues/decimal#Parse
func ParseExchRate(base, quote, rate string) (ExchangeRate, error) {
	b, err := NewCurrency(base)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("base currency parsing: %w", err)
	}
	q, err := NewCurrency(quote)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("quote currency parsing: %w", err)
	}
	d, err := gdecimal.Parse(rate)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("rate parsing: %w", err)
	}
	r, err := NewExchRate(b, q, d)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("rate construction: %w", err)
	}
	return r, nil
}

// MustParseExchRate is like [ParseExchRate] but panics if any of the strings cannot be parsed.
// It simplifies safe initialization of global variables holding exchange rates.
func MustParseExchRate(base, quote, rate string) ExchangeRate {
	r, err := ParseExchRate(base, quote, rate)
	if err != nil {
		panic(fmt.Sprintf("ParseExchRate(%q, %q, %q) failed: %v", base, quote, rate, err))
	}
	return r
}

// Base returns the currency being exchanged.
func (r ExchangeRate) Base() Currency {
	return r.base
}

// Quote returns the currency being obtained in exchange for the base currency.
func (r ExchangeRate) Quote() Currency {
	return r.quote
}

// Decimal returns the rate as a decimal number.
func (r ExchangeRate) Decimal() gdecimal.Decimal {
	return r.value
}

// Inv returns the inverse of the exchange rate.
// The inverse is rounded if it cannot be represented exactly.
func (r ExchangeRate) Inv() (ExchangeRate, error) {
	d, err := gdecimal.One.Quo(r.value)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("inverting %v: %w", r, err)
	}
	return NewExchRate(r.quote, r.base, d.Trim(0))
}

// SameCurr returns true if exchange rates are denominated in the same base
// and quote currencies.
func (r ExchangeRate) SameCurr(q ExchangeRate) bool {
	return q.base == r.base && q.quote == r.quote
}

// CanConv returns true if [ExchangeRate.Conv] can be used to convert the given amount.
func (r ExchangeRate) CanConv(a Amount) bool {
	return a.Curr() == r.base && r.value.IsPos()
}

// Conv returns the amount converted from the base currency to the quote
// currency, rounded to the given number of digits after the decimal point.
//
// Conv returns an error if the currency of the amount is not the base currency.
func (r ExchangeRate) Conv(a Amount, digits int, mode RoundingMode) (Amount, error) {
	if !r.CanConv(a) {
		return Amount{}, fmt.Errorf("converting %v with %v: %w", a, r, ErrCurrencyMismatch)
	}
	rate, err := decimal.NewFromString(r.value.String())
	if err != nil {
		return Amount{}, fmt.Errorf("converting %v with %v: %w", a, r, err)
	}
	step := decimal.New(1, -int32(digits))
	return NewAmount(r.quote, roundStep(a.Decimal().Mul(rate), step, mode)), nil
}

// String method implements the [fmt.Stringer] interface and returns a string
// representation of the exchange rate, for example "EUR/USD 1.0842".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r ExchangeRate) String() string {
	return r.base.String() + "/" + r.quote.String() + " " + r.value.String()
}

type currencyPair struct {
	base, quote Currency
}

// RateConverter is a [Converter] backed by a fixed set of exchange rates.
// When a rate for the requested pair is missing, the inverse of the
// reversed pair is used. Results are rounded to the number of subunits of
// the target currency.
// RateConverter is safe for concurrent use by multiple goroutines.
type RateConverter struct {
	currs Currencies
	mode  RoundingMode
	rates map[currencyPair]ExchangeRate
}

// NewRateConverter returns a converter using the registry currs to look up
// the number of subunits of target currencies, the rounding mode, and the
// given rates.
//
// NewRateConverter returns an error if the rounding mode is not valid or
// two rates share the same base and quote currencies.
func NewRateConverter(currs Currencies, mode RoundingMode, rates ...ExchangeRate) (*RateConverter, error) {
	if !mode.IsValid() {
		return nil, fmt.Errorf("invalid rounding mode %v", mode)
	}
	m := make(map[currencyPair]ExchangeRate, len(rates))
	for _, r := range rates {
		p := currencyPair{base: r.base, quote: r.quote}
		if _, ok := m[p]; ok {
			return nil, fmt.Errorf("duplicate exchange rate %v/%v", r.base, r.quote)
		}
		m[p] = r
	}
	return &RateConverter{currs: currs, mode: mode, rates: m}, nil
}

// Rate returns the exchange rate from base to quote.
// The same currency always has a rate of 1.
func (c *RateConverter) Rate(base, quote Currency) (ExchangeRate, error) {
	if base == quote {
		return NewExchRate(base, quote, gdecimal.One)
	}
	if r, ok := c.rates[currencyPair{base: base, quote: quote}]; ok {
		return r, nil
	}
	if r, ok := c.rates[currencyPair{base: quote, quote: base}]; ok {
		return r.Inv()
	}
	return ExchangeRate{}, fmt.Errorf("%v/%v: %w", base, quote, ErrNoExchangeRate)
}

// Convert implements the [Converter] interface.
func (c *RateConverter) Convert(a Amount, to Currency) (Amount, error) {
	digits, err := c.currs.SubunitFor(to)
	if err != nil {
		return Amount{}, err
	}
	r, err := c.Rate(a.Curr(), to)
	if err != nil {
		return Amount{}, err
	}
	return r.Conv(a, digits, c.mode)
}
