package money_test

import (
	"errors"
	"fmt"

	"github.com/govalues/money/v2"
	"github.com/shopspring/decimal"
)

var (
	Price   = money.Class{Label: "Price", Scale: 2, Policy: money.MustBePositive}
	Balance = money.Class{Label: "Balance", Scale: 2, Policy: money.MustBeNonNegative}
	Ledger  = money.Class{Label: "Ledger", Scale: 4}

	usd = money.MustNewCurrency("USD")
	eur = money.MustNewCurrency("EUR")
	jpy = money.MustNewCurrency("JPY")
)

func TaxAmount(priceAfterTax money.Money, taxRate string) (money.Money, money.Money, error) {
	// Price
	rate, err := decimal.NewFromString(taxRate)
	if err != nil {
		return money.Money{}, money.Money{}, err
	}
	rate = rate.Add(decimal.NewFromInt(1))

	priceBeforeTax, err := priceAfterTax.Quo(rate.String(), money.RoundHalfUp)
	if err != nil {
		return money.Money{}, money.Money{}, err
	}

	// Tax Amount
	taxAmount, err := priceAfterTax.Sub(priceBeforeTax)
	if err != nil {
		return money.Money{}, money.Money{}, err
	}

	return priceBeforeTax, taxAmount, nil
}

// In this example, the sales tax amount is calculated for a product with
// a given price after tax, using a specified tax rate.
func Example_taxCalculation() {
	priceAfterTax := money.MustNew(Price, "10.00", usd)

	priceBeforeTax, vatAmount, err := TaxAmount(priceAfterTax, "0.065")
	if err != nil {
		panic(err)
	}

	fmt.Printf("Price (before tax) = %v\n", priceBeforeTax)
	fmt.Printf("VAT 6.5%%           = %v\n", vatAmount)
	fmt.Printf("Price (after tax)  = %v\n", priceAfterTax)

	// Output:
	// Price (before tax) = USD 9.39
	// VAT 6.5%           = USD 0.61
	// Price (after tax)  = USD 10.00
}

// In this example, a bill is split between guests and a tip is allocated
// between the waiter and the kitchen, without losing a single cent.
func Example_billSplitting() {
	bill := money.MustNew(Price, "100.00", usd)

	shares, err := bill.AllocateTo(3)
	if err != nil {
		panic(err)
	}
	for i, s := range shares {
		fmt.Printf("Guest %d = %v\n", i+1, s)
	}

	tip, err := bill.Mul("0.15", money.RoundHalfUp)
	if err != nil {
		panic(err)
	}
	parts, err := tip.Allocate("70", "30")
	if err != nil {
		panic(err)
	}
	fmt.Printf("Tip     = %v\n", tip)
	fmt.Printf("Waiter  = %v\n", parts[0])
	fmt.Printf("Kitchen = %v\n", parts[1])

	// Output:
	// Guest 1 = USD 33.34
	// Guest 2 = USD 33.33
	// Guest 3 = USD 33.33
	// Tip     = USD 15.00
	// Waiter  = USD 10.50
	// Kitchen = USD 4.50
}

func Example_subunitMismatch() {
	a := money.MustNew(Balance, "1.00", usd)
	b := money.MustNew(Ledger, "1.00", usd)
	_, err := a.Add(b)
	fmt.Println(err)
	fmt.Println(errors.Is(err, money.ErrSubunitMismatch))
	// Output:
	// Add: cannot combine Balance with 2 subunit(s) and Ledger with 4 subunit(s): subunit mismatch
	// true
}

func ExampleNew() {
	a, err := money.New(Price, "12.34", usd)
	if err != nil {
		panic(err)
	}
	fmt.Println(a)
	fmt.Println(a.Units())
	// Output:
	// USD 12.34
	// 1234
}

func ExampleNew_zeroSubunits() {
	a, err := money.New(Balance, "100", jpy)
	if err != nil {
		panic(err)
	}
	fmt.Println(a.Amount(), a.Units())

	_, err = money.New(Balance, "100.00", jpy)
	fmt.Println(err)
	// Output:
	// 100 10000
	// cannot create Balance from [JPY 100.00]: invalid amount format, amount must match ^-?\d+$
}

func ExampleNew_errors() {
	_, err := money.New(Price, "12.3", usd)
	fmt.Println(errors.Is(err, money.ErrInvalidFormat))

	_, err = money.New(Price, "0.00", usd)
	fmt.Println(errors.Is(err, money.ErrMustBePositive))

	_, err = money.New(Price, "1.000", money.MustNewCurrency("OMR"))
	fmt.Println(errors.Is(err, money.ErrSubunitLimit))

	_, err = money.New(Price, "1.00", money.MustNewCurrency("XBT"))
	fmt.Println(errors.Is(err, money.ErrCurrencyNotAllowed))
	// Output:
	// true
	// true
	// true
	// true
}

func ExampleMustNew() {
	fmt.Println(money.MustNew(Ledger, "-1.2345", money.MustNewCurrency("CLF")))
	// Output: CLF -1.2345
}

func ExampleNewFromMoney() {
	b := money.MustNew(Balance, "0.00", usd)
	_, err := money.NewFromMoney(Price, b)
	fmt.Println(err)
	// Output: cannot create Price from [USD 0.00]: amount must be greater than zero
}

func ExampleParseJSON() {
	m, err := money.ParseJSON(Price, []byte(`{"amount":"12.34","currency":"USD"}`))
	if err != nil {
		panic(err)
	}
	fmt.Println(m)
	// Output: USD 12.34
}

func ExampleMoney_MarshalJSON() {
	data, err := money.MustNew(Price, "12.34", usd).MarshalJSON()
	if err != nil {
		panic(err)
	}
	fmt.Println(string(data))
	// Output: {"amount":"12.34","currency":"USD"}
}

func ExampleMoney_Add() {
	a := money.MustNew(Price, "10.00", usd)
	b := money.MustNew(Price, "0.50", usd)
	fmt.Println(a.Add(b))
	// Output: USD 10.50 <nil>
}

func ExampleMoney_Sub() {
	a := money.MustNew(Balance, "5.00", usd)
	b := money.MustNew(Balance, "10.00", usd)
	_, err := a.Sub(b)
	fmt.Println(err)
	fmt.Println(errors.Is(err, money.ErrMustBeNonNegative))
	// Output:
	// cannot create Balance from [USD -5.00]: amount must be zero or greater
	// true
}

func ExampleMoney_Mul() {
	a := money.MustNew(Price, "10.01", usd)
	fmt.Println(a.Mul("0.5", money.RoundHalfUp))
	fmt.Println(a.Mul("0.5", money.RoundHalfEven))
	// Output:
	// USD 5.01 <nil>
	// USD 5.00 <nil>
}

func ExampleMoney_Quo() {
	a := money.MustNew(Price, "10.00", usd)
	fmt.Println(a.Quo("3", money.RoundHalfUp))
	fmt.Println(a.Quo("3", money.RoundUp))
	// Output:
	// USD 3.33 <nil>
	// USD 3.34 <nil>
}

func ExampleMoney_Mod() {
	a := money.MustNew(Ledger, "-10.00", usd)
	b := money.MustNew(Ledger, "3.00", usd)
	fmt.Println(a.Mod(b))
	// Output: USD -1.00 <nil>
}

func ExampleMoney_RatioOf() {
	a := money.MustNew(Balance, "1.00", usd)
	b := money.MustNew(Balance, "3.00", usd)
	fmt.Println(a.RatioOf(b))
	// Output: 0.33333333333333 <nil>
}

func ExampleMoney_Allocate() {
	a := money.MustNew(Balance, "0.05", usd)
	fmt.Println(a.Allocate("3", "7"))
	// Output: [USD 0.02 USD 0.03] <nil>
}

func ExampleMoney_AllocateTo() {
	a := money.MustNew(Ledger, "-1.01", usd)
	fmt.Println(a.AllocateTo(3))
	// Output: [USD -0.34 USD -0.34 USD -0.33] <nil>
}

func ExampleMoney_Cmp() {
	a := money.MustNew(Price, "1.00", usd)
	b := money.MustNew(Balance, "2.00", usd)
	fmt.Println(a.Cmp(b))
	fmt.Println(b.Cmp(a))

	_, err := a.Cmp(money.MustNew(Price, "1.00", eur))
	fmt.Println(errors.Is(err, money.ErrCurrencyMismatch))
	// Output:
	// -1 <nil>
	// 1 <nil>
	// true
}

func ExampleMoney_Equal() {
	a := money.MustNew(Price, "1.00", usd)
	fmt.Println(a.Equal(money.MustNew(Balance, "1.00", usd)))
	fmt.Println(a.Equal(money.MustNew(Price, "1.00", eur)))
	// Output:
	// true <nil>
	// false <nil>
}

func ExampleMoney_Convert() {
	conv, err := money.NewRateConverter(money.ISOCurrencies, money.RoundHalfUp,
		money.MustParseExchRate("EUR", "USD", "1.0842"),
	)
	if err != nil {
		panic(err)
	}
	a := money.MustNew(Price, "100.00", eur)
	fmt.Println(a.Convert(conv, usd))
	// Output: USD 108.42 <nil>
}

func ExampleMoney_Neg() {
	fmt.Println(money.MustNew(Ledger, "1.00", usd).Neg())
	_, err := money.MustNew(Balance, "1.00", usd).Neg()
	fmt.Println(errors.Is(err, money.ErrMustBeNonNegative))
	// Output:
	// USD -1.00 <nil>
	// true
}

func ExampleSum() {
	a := money.MustNew(Balance, "1.00", usd)
	b := money.MustNew(Balance, "2.00", usd)
	c := money.MustNew(Balance, "3.00", usd)
	fmt.Println(money.Sum(a, b, c))
	// Output: USD 6.00 <nil>
}

func ExampleAvg() {
	a := money.MustNew(Balance, "0.01", usd)
	b := money.MustNew(Balance, "0.02", usd)
	fmt.Println(money.Avg(a, b))
	// Output: USD 0.02 <nil>
}

func ExampleMin() {
	a := money.MustNew(Balance, "3.00", usd)
	b := money.MustNew(Balance, "1.00", usd)
	fmt.Println(money.Min(a, b))
	fmt.Println(money.Max(a, b))
	// Output:
	// USD 1.00 <nil>
	// USD 3.00 <nil>
}

func ExampleCurrencyList() {
	wallet := money.Class{
		Label:   "Wallet",
		Scale:   8,
		Allowed: money.AggregateCurrencies{money.ISOCurrencies, money.MustNewCurrencyList(map[string]int{"XBT": 8})},
		Policy:  money.MustBeNonNegative,
	}
	fmt.Println(money.New(wallet, "0.00000001", money.MustNewCurrency("XBT")))
	fmt.Println(money.New(wallet, "12.34", usd))
	// Output:
	// XBT 0.00000001 <nil>
	// USD 12.34 <nil>
}

func ExampleISONum() {
	fmt.Println(money.ISONum(usd))
	fmt.Println(money.ISOName(usd))
	// Output:
	// 840 true
	// US Dollar true
}

func ExampleExchangeRate_Inv() {
	r := money.MustParseExchRate("EUR", "USD", "1.25")
	fmt.Println(r.Inv())
	// Output: USD/EUR 0.8 <nil>
}

func ExampleRateConverter_Rate() {
	conv, err := money.NewRateConverter(money.ISOCurrencies, money.RoundHalfEven,
		money.MustParseExchRate("EUR", "USD", "1.25"),
	)
	if err != nil {
		panic(err)
	}
	fmt.Println(conv.Rate(usd, eur))
	_, err = conv.Rate(usd, jpy)
	fmt.Println(errors.Is(err, money.ErrNoExchangeRate))
	// Output:
	// USD/EUR 0.8 <nil>
	// true
}
