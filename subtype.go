package money

import "strings"

// Subtype describes a kind of money, such as a price, a balance or a fee.
// A subtype decides which currencies are accepted, how many digits after
// the decimal point are stored, and which signs are allowed.
//
// Two [Money] values can be combined only if their subtypes store the same
// number of digits after the decimal point, see [Subtype.Subunits].
//
// Implementations must be immutable and safe for concurrent use by multiple
// goroutines. [Class] is a ready-made declarative implementation.
type Subtype interface {
	// Name returns a human-readable name used in error messages.
	Name() string
	// Subunits returns the number of digits after the decimal point stored
	// by the subtype. A currency with more digits cannot be represented.
	Subunits() int
	// Currencies returns the registry of accepted currencies.
	Currencies() Currencies
	// Sign returns the constraints on the sign of the amount.
	Sign() SignPolicy
	// Validate is called for every new value before the sign policy is
	// checked. Returning a non-nil error rejects the value.
	Validate(candidate Money) error
}

// SignPolicy is a set of constraints on the sign of an amount.
// The zero value, [AnySign], accepts every amount.
type SignPolicy uint8

const (
	// MustBePositive rejects amounts less than or equal to zero.
	MustBePositive SignPolicy = 1 << iota
	// MustBeNonNegative rejects amounts less than zero.
	MustBeNonNegative
	// MustBeNonPositive rejects amounts greater than zero.
	MustBeNonPositive
	// MustBeNegative rejects amounts greater than or equal to zero.
	MustBeNegative
)

// AnySign is a policy without constraints.
const AnySign SignPolicy = 0

// Has returns true if all constraints of q are present in p.
func (p SignPolicy) Has(q SignPolicy) bool {
	return p&q == q
}

// Conflicting returns true if no amount can satisfy the policy.
// A policy requiring both non-negative and non-positive amounts is not
// conflicting, as zero satisfies it.
func (p SignPolicy) Conflicting() bool {
	if p.Has(MustBePositive) && (p.Has(MustBeNonPositive) || p.Has(MustBeNegative)) {
		return true
	}
	return p.Has(MustBeNegative) && p.Has(MustBeNonNegative)
}

// check returns the sentinel error for the first violated constraint.
func (p SignPolicy) check(sign int) error {
	switch {
	case p.Has(MustBePositive) && sign <= 0:
		return ErrMustBePositive
	case p.Has(MustBeNonNegative) && sign < 0:
		return ErrMustBeNonNegative
	case p.Has(MustBeNonPositive) && sign > 0:
		return ErrMustBeNonPositive
	case p.Has(MustBeNegative) && sign >= 0:
		return ErrMustBeNegative
	}
	return nil
}

func (p SignPolicy) String() string {
	if p == AnySign {
		return "any"
	}
	var names []string
	if p.Has(MustBePositive) {
		names = append(names, "positive")
	}
	if p.Has(MustBeNonNegative) {
		names = append(names, "non-negative")
	}
	if p.Has(MustBeNonPositive) {
		names = append(names, "non-positive")
	}
	if p.Has(MustBeNegative) {
		names = append(names, "negative")
	}
	return strings.Join(names, "|")
}

// defaultName is reported by subtypes without a name.
const defaultName = "Money"

// Class is a declarative [Subtype].
// Class values are usually declared once as package-level variables:
//
//	var Price = money.Class{
//		Label:   "Price",
//		Scale:   2,
//		Allowed: money.ISOCurrencies,
//		Policy:  money.MustBeNonNegative,
//	}
type Class struct {
	Label   string            // human-readable name, "Money" if empty
	Scale   int               // number of digits after the decimal point
	Allowed Currencies        // accepted currencies, ISO 4217 if nil
	Policy  SignPolicy        // sign constraints
	Check   func(Money) error // optional extra validation
}

func (c Class) Name() string {
	if c.Label == "" {
		return defaultName
	}
	return c.Label
}

func (c Class) Subunits() int {
	return c.Scale
}

func (c Class) Currencies() Currencies {
	if c.Allowed == nil {
		return ISOCurrencies
	}
	return c.Allowed
}

func (c Class) Sign() SignPolicy {
	return c.Policy
}

func (c Class) Validate(candidate Money) error {
	if c.Check == nil {
		return nil
	}
	return c.Check(candidate)
}
