package money

import (
	"errors"
	"fmt"
)

//go:generate go run ./scripts/currency

// ErrUnknownCurrency is returned by [Currencies.SubunitFor] when the registry
// does not contain the currency.
var ErrUnknownCurrency = errors.New("unknown currency")

// Currencies is a registry of accepted currencies.
// A registry answers two questions: whether a currency is accepted, and how
// many digits after the decimal point the currency uses.
//
// Implementations must be safe for concurrent use by multiple goroutines.
type Currencies interface {
	// Contains returns true if the currency is accepted by the registry.
	Contains(c Currency) bool
	// SubunitFor returns the number of digits used by the minor unit of the
	// currency or an error wrapping [ErrUnknownCurrency].
	SubunitFor(c Currency) (int, error)
}

type isoCurrency struct {
	name  string
	num   string
	scale int
}

type isoCurrencies struct{}

// ISOCurrencies is the registry of currencies defined by [ISO 4217].
// Codes are matched case-sensitively, for example "USD" but not "usd".
//
// [ISO 4217]: https://en.wikipedia.org/wiki/ISO_4217
var ISOCurrencies Currencies = isoCurrencies{}

func (isoCurrencies) Contains(c Currency) bool {
	_, ok := isoLookup[c.Code()]
	return ok
}

func (isoCurrencies) SubunitFor(c Currency) (int, error) {
	iso, ok := isoLookup[c.Code()]
	if !ok {
		return 0, fmt.Errorf("ISO 4217 lookup of %q: %w", c.Code(), ErrUnknownCurrency)
	}
	return iso.scale, nil
}

// ISONum returns the [3-digit code] assigned to the currency by the ISO 4217 standard.
// The second result is false if the currency is not an ISO 4217 currency.
//
// [3-digit code]: https://en.wikipedia.org/wiki/ISO_4217#Numeric_codes
func ISONum(c Currency) (string, bool) {
	iso, ok := isoLookup[c.Code()]
	return iso.num, ok
}

// ISOName returns the English name of an ISO 4217 currency.
// The second result is false if the currency is not an ISO 4217 currency.
func ISOName(c Currency) (string, bool) {
	iso, ok := isoLookup[c.Code()]
	return iso.name, ok
}

// CurrencyList is a registry backed by a map from currency code to the number
// of digits of its minor unit.
// Use [NewCurrencyList] to build a validated list.
// A CurrencyList must not be modified after it has been shared.
type CurrencyList map[string]int

// NewCurrencyList returns a registry holding the given currencies.
//
// NewCurrencyList returns an error if a code is empty or a number of
// subunits is negative.
func NewCurrencyList(subunits map[string]int) (CurrencyList, error) {
	l := make(CurrencyList, len(subunits))
	for code, n := range subunits {
		if code == "" {
			return nil, fmt.Errorf("building currency list: %w", ErrInvalidCurrency)
		}
		if n < 0 {
			return nil, fmt.Errorf("building currency list: %q has negative number of subunits %v", code, n)
		}
		l[code] = n
	}
	return l, nil
}

// MustNewCurrencyList is like [NewCurrencyList] but panics on error.
func MustNewCurrencyList(subunits map[string]int) CurrencyList {
	l, err := NewCurrencyList(subunits)
	if err != nil {
		panic(fmt.Sprintf("NewCurrencyList(%v) failed: %v", subunits, err))
	}
	return l
}

// Contains implements the [Currencies] interface.
func (l CurrencyList) Contains(c Currency) bool {
	_, ok := l[c.Code()]
	return ok
}

// SubunitFor implements the [Currencies] interface.
func (l CurrencyList) SubunitFor(c Currency) (int, error) {
	n, ok := l[c.Code()]
	if !ok {
		return 0, fmt.Errorf("currency list lookup of %q: %w", c.Code(), ErrUnknownCurrency)
	}
	return n, nil
}

// AggregateCurrencies combines several registries.
// The first registry containing a currency decides its number of subunits.
type AggregateCurrencies []Currencies

// Contains implements the [Currencies] interface.
func (a AggregateCurrencies) Contains(c Currency) bool {
	for _, r := range a {
		if r.Contains(c) {
			return true
		}
	}
	return false
}

// SubunitFor implements the [Currencies] interface.
func (a AggregateCurrencies) SubunitFor(c Currency) (int, error) {
	for _, r := range a {
		if r.Contains(c) {
			return r.SubunitFor(c)
		}
	}
	return 0, fmt.Errorf("aggregate lookup of %q: %w", c.Code(), ErrUnknownCurrency)
}
