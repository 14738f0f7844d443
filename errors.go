package money

import (
	"errors"
	"fmt"
)

// Reasons of a [CreateError].
var (
	ErrCurrencyNotAllowed = errors.New("currency is not allowed")
	ErrInvalidFormat      = errors.New("invalid amount format")
	ErrMustBePositive     = errors.New("amount must be greater than zero")
	ErrMustBeNonNegative  = errors.New("amount must be zero or greater")
	ErrMustBeNonPositive  = errors.New("amount must be zero or less")
	ErrMustBeNegative     = errors.New("amount must be less than zero")
)

// Reasons of a [WorkError].
var (
	ErrSubunitLimit    = errors.New("currency exceeds subunit limit")
	ErrSubunitMismatch = errors.New("subunit mismatch")
	ErrSignConflict    = errors.New("conflicting sign policy")
)

// CreateError is returned when a money value cannot be created because
// the amount, the currency or the result of an operation is not valid
// for the subtype.
// The reason can be tested with [errors.Is], for example against
// [ErrMustBePositive].
type CreateError struct {
	Subtype  string // human-readable name of the subtype
	Amount   string // offending amount
	Currency string // offending currency code
	Pattern  string // expected amount format, set for [ErrInvalidFormat]
	Err      error  // reason
}

func (e *CreateError) Error() string {
	msg := fmt.Sprintf("cannot create %v from [%v %v]: %v", e.Subtype, e.Currency, e.Amount, e.Err)
	if e.Pattern != "" {
		msg += fmt.Sprintf(", amount must match %v", e.Pattern)
	}
	return msg
}

func (e *CreateError) Unwrap() error {
	return e.Err
}

// WorkError is returned when an operation cannot proceed for structural
// reasons, such as operands stored with different numbers of subunits
// or a currency that needs more subunits than the subtype stores.
type WorkError struct {
	Op            string // operation, for example "Add"
	Subtype       string // subtype of the receiver
	Subunits      int    // subunits of the receiver's subtype
	Other         string // subtype of the other operand, or currency code for [ErrSubunitLimit]
	OtherSubunits int    // subunits of Other
	Amount        string // amount being created, set for [ErrSubunitLimit]
	Err           error  // reason
}

func (e *WorkError) Error() string {
	switch {
	case errors.Is(e.Err, ErrSubunitLimit):
		return fmt.Sprintf("%v: cannot create %v from [%v %v]: currency has %v subunit(s), but %v supports at most %v: %v",
			e.Op, e.Subtype, e.Other, e.Amount, e.OtherSubunits, e.Subtype, e.Subunits, e.Err)
	case errors.Is(e.Err, ErrSubunitMismatch):
		return fmt.Sprintf("%v: cannot combine %v with %v subunit(s) and %v with %v subunit(s): %v",
			e.Op, e.Subtype, e.Subunits, e.Other, e.OtherSubunits, e.Err)
	}
	return fmt.Sprintf("%v: cannot work with %v: %v", e.Op, e.Subtype, e.Err)
}

func (e *WorkError) Unwrap() error {
	return e.Err
}
