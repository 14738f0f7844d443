package money

import (
	"errors"
	"fmt"
)

// Currency type represents a currency code, such as "USD" or "JPY".
// The zero value is an empty code and is not a valid currency.
//
// Currency does not know anything about the scale of the currency it names.
// The number of minor units is provided by a [Currencies] registry, which
// also decides whether the currency is accepted at all.
// Currency is designed to be safe for concurrent use by multiple goroutines.
type Currency struct {
	code string
}

// ErrInvalidCurrency is returned by [NewCurrency] for an empty code.
var ErrInvalidCurrency = errors.New("invalid currency")

// NewCurrency returns a currency with the given code.
// The code is kept as is, without any case normalization.
//
// NewCurrency returns an error if the code is empty.
func NewCurrency(code string) (Currency, error) {
	if code == "" {
		return Currency{}, ErrInvalidCurrency
	}
	return Currency{code: code}, nil
}

// MustNewCurrency is like [NewCurrency] but panics if the code is empty.
// It simplifies safe initialization of global variables holding currencies.
func MustNewCurrency(code string) Currency {
	c, err := NewCurrency(code)
	if err != nil {
		panic(fmt.Sprintf("NewCurrency(%q) failed: %v", code, err))
	}
	return c
}

// Code returns the code of the currency.
func (c Currency) Code() string {
	return c.code
}

// Equal returns true if both currencies have the same code.
func (c Currency) Equal(d Currency) bool {
	return c.code == d.code
}

// IsZero returns true for the zero value of Currency.
func (c Currency) IsZero() bool {
	return c.code == ""
}

// String method implements the [fmt.Stringer] interface and returns
// the code of the currency.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Currency) String() string {
	return c.code
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also constructor [NewCurrency].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (c *Currency) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	var err error
	*c, err = NewCurrency(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Currency{}, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (c Currency) MarshalJSON() ([]byte, error) {
	text := make([]byte, 0, len(c.code)+2)
	text = append(text, '"')
	text = append(text, c.code...)
	text = append(text, '"')
	return text, nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// See also constructor [NewCurrency].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (c *Currency) UnmarshalText(text []byte) error {
	var err error
	*c, err = NewCurrency(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Currency{}, err)
	}
	return nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (c Currency) MarshalText() ([]byte, error) {
	return []byte(c.code), nil
}
