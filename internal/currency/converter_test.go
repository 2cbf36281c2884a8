package currency_test

import (
	"testing"

	"github.com/cornexhq/cornex-connect/internal/currency"
	"github.com/cornexhq/cornex-connect/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_ThroughBase(t *testing.T) {
	c := currency.NewConverterWithRates([]currency.Rate{
		{Code: "USD", PerUSD: decimal.NewFromInt(1)},
		{Code: "EUR", PerUSD: decimal.NewFromFloat(0.5)},
		{Code: "JPY", PerUSD: decimal.NewFromInt(100)},
	})

	got, err := c.Convert(decimal.NewFromInt(10), "USD", "EUR")
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(5)), "got %s", got)

	// EUR -> JPY crosses through USD
	got, err = c.Convert(decimal.NewFromInt(5), "EUR", "JPY")
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(1000)), "got %s", got)
}

func TestConvert_SameCurrencyIsIdentity(t *testing.T) {
	c := currency.NewConverter()

	amount := decimal.NewFromFloat(123.45)
	got, err := c.Convert(amount, "usd", "USD")

	require.NoError(t, err)
	assert.True(t, got.Equal(amount))
}

func TestConvert_CaseInsensitiveCodes(t *testing.T) {
	c := currency.NewConverter()

	_, err := c.Convert(decimal.NewFromInt(1), "eur", "jpy")
	require.NoError(t, err)
}

func TestConvert_UnknownCurrency(t *testing.T) {
	c := currency.NewConverter()

	_, err := c.Convert(decimal.NewFromInt(1), "USD", "XXX")
	assert.ErrorIs(t, err, domain.ErrCurrencyUnknown)

	_, err = c.Convert(decimal.NewFromInt(1), "XXX", "USD")
	assert.ErrorIs(t, err, domain.ErrCurrencyUnknown)
}

func TestRates_SortedAndFiltered(t *testing.T) {
	c := currency.NewConverterWithRates([]currency.Rate{
		{Code: "JPY", PerUSD: decimal.NewFromInt(100)},
		{Code: "BAD", PerUSD: decimal.Zero},
		{Code: "EUR", PerUSD: decimal.NewFromFloat(0.9)},
	})

	rates := c.Rates()

	require.Len(t, rates, 2)
	assert.Equal(t, "EUR", rates[0].Code)
	assert.Equal(t, "JPY", rates[1].Code)
}
