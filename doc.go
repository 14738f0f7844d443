/*
Package money implements currency-safe monetary values of declared kinds,
such as prices, fees or balances.
It uses the [decimal] package for exact arbitrary-precision arithmetic and
never routes amounts through binary floating-point numbers.

# Features

  - Immutable monetary values, ensuring safe usage across multiple goroutines
  - Subtypes that declare accepted currencies, stored precision and sign rules
  - Strict parsing of amounts with exactly as many digits as the currency uses
  - Arithmetic that refuses to mix values stored with different precisions
  - Re-validation of every arithmetic result, not only of user input
  - Exact allocation of amounts without losing or duplicating minor units
  - Conversion between currencies using exchange rates

# Representation

A [Money] value consists of a [Subtype], a [Currency] and an integer number
of the smallest units of the subtype.
A subtype with 2 subunits stores "12.34" as 1234 and "100" yen as 10000,
while [Money.Amount] formats each value with the number of digits of its
currency: "12.34" and "100".

Subtypes are usually declared once with the [Class] struct:

	var Balance = money.Class{
		Label:   "Balance",
		Scale:   2,
		Allowed: money.ISOCurrencies,
		Policy:  money.MustBeNonNegative,
	}

# Currencies

A [Currency] is just a code.
Whether a currency is accepted and how many digits it uses is decided by a
[Currencies] registry: [ISOCurrencies] for ISO 4217, [CurrencyList] for
custom currencies, and [AggregateCurrencies] for combinations of them.
A currency that uses more digits than a subtype stores cannot be used with
that subtype.

# Operations

Values can be compared, added, subtracted, multiplied, divided, allocated
and converted.
Every operation that combines several values first checks that their
subtypes store the same number of subunits.
Currency mismatches are reported by the arithmetic itself.
Multiplication, division and conversion take an explicit [RoundingMode].

# Errors

Validation failures are reported as [*CreateError], structural failures
such as incompatible subtypes as [*WorkError].
Both wrap sentinel errors that can be tested with [errors.Is].
No operation returns a partial result.
*/
package money
