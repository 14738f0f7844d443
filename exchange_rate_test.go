package money

import (
	"testing"

	gdecimal "github.com/govalues/decimal"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExchRate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			b, q Currency
			d    string
		}{
			{eur, usd, "1.0842"},
			{usd, jpy, "150.123"},
			{usd, usd, "1"},
			{usd, usd, "1.000"},
			{usd, xbt, "0.00001"},
		}
		for _, tt := range tests {
			r, err := NewExchRate(tt.b, tt.q, gdecimal.MustParse(tt.d))
			require.NoError(t, err, "NewExchRate(%v, %v, %v)", tt.b, tt.q, tt.d)
			assert.Equal(t, tt.b, r.Base())
			assert.Equal(t, tt.q, r.Quote())
			assert.Equal(t, tt.d, r.Decimal().String())
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []struct {
			b, q Currency
			d    string
		}{
			{eur, usd, "0"},
			{eur, usd, "-1.1"},
			{usd, usd, "1.0001"},
			{usd, usd, "0.5"},
			{Currency{}, usd, "1"},
			{usd, Currency{}, "1"},
		}
		for _, tt := range tests {
			_, err := NewExchRate(tt.b, tt.q, gdecimal.MustParse(tt.d))
			assert.Error(t, err, "NewExchRate(%v, %v, %v)", tt.b, tt.q, tt.d)
		}
	})
}

func TestParseExchRate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, err := ParseExchRate("EUR", "USD", "1.0842")
		require.NoError(t, err)
		assert.Equal(t, "EUR/USD 1.0842", r.String())
	})

	t.Run("error", func(t *testing.T) {
		tests := []struct {
			b, q, d string
		}{
			{"", "USD", "1"},
			{"EUR", "", "1"},
			{"EUR", "USD", ""},
			{"EUR", "USD", "abc"},
			{"EUR", "USD", "-1"},
			{"EUR", "EUR", "2"},
		}
		for _, tt := range tests {
			_, err := ParseExchRate(tt.b, tt.q, tt.d)
			assert.Error(t, err, "ParseExchRate(%q, %q, %q)", tt.b, tt.q, tt.d)
			assert.Panics(t, func() { MustParseExchRate(tt.b, tt.q, tt.d) }, "MustParseExchRate(%q, %q, %q)", tt.b, tt.q, tt.d)
		}

		_, err := ParseExchRate("", "USD", "1")
		assert.ErrorIs(t, err, ErrInvalidCurrency)
	})
}

func TestExchangeRate_Inv(t *testing.T) {
	tests := []struct {
		b, q, d string
		want    string
	}{
		{"EUR", "USD", "2", "USD/EUR 0.5"},
		{"EUR", "USD", "1.25", "USD/EUR 0.8"},
		{"USD", "JPY", "100", "JPY/USD 0.01"},
		{"EUR", "USD", "1.1", "USD/EUR 0.9090909090909090909"},
		{"USD", "USD", "1", "USD/USD 1"},
	}
	for _, tt := range tests {
		r := MustParseExchRate(tt.b, tt.q, tt.d)
		got, err := r.Inv()
		require.NoError(t, err, "%v.Inv()", r)
		assert.Equal(t, tt.want, got.String(), "%v.Inv()", r)
	}
}

func TestExchangeRate_SameCurr(t *testing.T) {
	r := MustParseExchRate("EUR", "USD", "1.1")
	assert.True(t, r.SameCurr(MustParseExchRate("EUR", "USD", "1.2")))
	assert.False(t, r.SameCurr(MustParseExchRate("USD", "EUR", "0.9")))
	assert.False(t, r.SameCurr(MustParseExchRate("EUR", "JPY", "160")))
}

func TestExchangeRate_Conv(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			b, q, d string
			amount  string
			digits  int
			mode    RoundingMode
			want    string
		}{
			{"EUR", "USD", "1.1", "10.00", 2, RoundHalfUp, "11"},
			{"EUR", "USD", "1.0842", "100.00", 2, RoundHalfUp, "108.42"},
			{"EUR", "USD", "1.0842", "0.05", 2, RoundHalfUp, "0.05"},
			{"EUR", "USD", "1.0842", "0.05", 2, RoundDown, "0.05"},
			{"EUR", "USD", "1.0842", "0.05", 2, RoundUp, "0.06"},
			{"USD", "JPY", "150.123", "10.00", 0, RoundHalfUp, "1501"},
			{"USD", "JPY", "150.5", "1.00", 0, RoundHalfEven, "150"},
			{"USD", "JPY", "150.5", "-1.00", 0, RoundHalfUp, "-151"},
			{"USD", "XBT", "0.00001", "10.00", 8, RoundHalfUp, "0.0001"},
		}
		for _, tt := range tests {
			r := MustParseExchRate(tt.b, tt.q, tt.d)
			a := NewAmount(r.Base(), decimal.RequireFromString(tt.amount))
			require.True(t, r.CanConv(a))
			got, err := r.Conv(a, tt.digits, tt.mode)
			require.NoError(t, err, "%v.Conv(%v)", r, a)
			assert.Equal(t, r.Quote(), got.Curr())
			want := decimal.RequireFromString(tt.want)
			assert.True(t, want.Equal(got.Decimal()), "%v.Conv(%v) = %v, want %v", r, a, got, want)
		}
	})

	t.Run("error", func(t *testing.T) {
		r := MustParseExchRate("EUR", "USD", "1.1")
		a := NewAmount(usd, decimal.NewFromInt(1))
		assert.False(t, r.CanConv(a))
		_, err := r.Conv(a, 2, RoundHalfUp)
		assert.ErrorIs(t, err, ErrCurrencyMismatch)
	})
}

func TestAmount_String(t *testing.T) {
	a := NewAmount(eur, decimal.RequireFromString("12.5"))
	assert.Equal(t, "EUR 12.5", a.String())
	assert.Equal(t, eur, a.Curr())
}

func TestNewRateConverter(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		c, err := NewRateConverter(ISOCurrencies, RoundHalfEven,
			MustParseExchRate("EUR", "USD", "1.1"),
			MustParseExchRate("USD", "EUR", "0.9"),
		)
		require.NoError(t, err)
		r, err := c.Rate(usd, eur)
		require.NoError(t, err)
		assert.Equal(t, "USD/EUR 0.9", r.String())
	})

	t.Run("error", func(t *testing.T) {
		_, err := NewRateConverter(ISOCurrencies, RoundingMode(99))
		assert.Error(t, err)

		_, err = NewRateConverter(ISOCurrencies, RoundHalfUp,
			MustParseExchRate("EUR", "USD", "1.1"),
			MustParseExchRate("EUR", "USD", "1.2"),
		)
		assert.Error(t, err)
	})
}

func TestRateConverter_Rate(t *testing.T) {
	c, err := NewRateConverter(ISOCurrencies, RoundHalfUp,
		MustParseExchRate("EUR", "USD", "1.25"),
		MustParseExchRate("USD", "JPY", "150"),
	)
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		tests := []struct {
			b, q Currency
			want string
		}{
			{eur, usd, "EUR/USD 1.25"},
			{usd, eur, "USD/EUR 0.8"},
			{usd, jpy, "USD/JPY 150"},
			{jpy, jpy, "JPY/JPY 1"},
		}
		for _, tt := range tests {
			got, err := c.Rate(tt.b, tt.q)
			require.NoError(t, err, "Rate(%v, %v)", tt.b, tt.q)
			assert.Equal(t, tt.want, got.String())
		}
	})

	t.Run("error", func(t *testing.T) {
		_, err := c.Rate(eur, jpy)
		assert.ErrorIs(t, err, ErrNoExchangeRate)
	})
}

func TestRateConverter_Convert(t *testing.T) {
	c, err := NewRateConverter(ISOCurrencies, RoundHalfUp, MustParseExchRate("EUR", "USD", "1.0842"))
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		got, err := c.Convert(NewAmount(eur, decimal.RequireFromString("100")), usd)
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("108.42").Equal(got.Decimal()))
	})

	t.Run("error", func(t *testing.T) {
		_, err := c.Convert(NewAmount(eur, decimal.NewFromInt(1)), xbt)
		assert.ErrorIs(t, err, ErrUnknownCurrency)
		_, err = c.Convert(NewAmount(eur, decimal.NewFromInt(1)), jpy)
		assert.ErrorIs(t, err, ErrNoExchangeRate)
	})
}
