// Package currency converts display amounts between supported currencies
// through a fixed USD-based rate table. The recommendation engine always
// emits amounts in the record's native currency; conversion happens only
// at the presentation boundary.
package currency

import (
	"sort"
	"strings"

	"github.com/cornexhq/cornex-connect/internal/domain"
	"github.com/shopspring/decimal"
)

// Rate is units of the currency per one USD.
type Rate struct {
	Code   string          `json:"code"`
	Symbol string          `json:"symbol"`
	PerUSD decimal.Decimal `json:"per_usd"`
}

// Converter holds an immutable rate table keyed by upper-case currency code.
type Converter struct {
	rates map[string]Rate
}

func defaultRates() []Rate {
	return []Rate{
		{Code: "USD", Symbol: "$", PerUSD: decimal.NewFromInt(1)},
		{Code: "EUR", Symbol: "€", PerUSD: decimal.NewFromFloat(0.92)},
		{Code: "GBP", Symbol: "£", PerUSD: decimal.NewFromFloat(0.79)},
		{Code: "JPY", Symbol: "¥", PerUSD: decimal.NewFromFloat(149.50)},
		{Code: "CNY", Symbol: "¥", PerUSD: decimal.NewFromFloat(7.24)},
		{Code: "KRW", Symbol: "₩", PerUSD: decimal.NewFromFloat(1330.0)},
		{Code: "IDR", Symbol: "Rp", PerUSD: decimal.NewFromFloat(15600.0)},
		{Code: "VND", Symbol: "₫", PerUSD: decimal.NewFromFloat(24500.0)},
		{Code: "THB", Symbol: "฿", PerUSD: decimal.NewFromFloat(35.70)},
	}
}

// NewConverter builds a converter with the built-in rate table.
func NewConverter() *Converter {
	return NewConverterWithRates(defaultRates())
}

// NewConverterWithRates builds a converter from an explicit rate table.
// Rates with a non-positive PerUSD are dropped.
func NewConverterWithRates(rates []Rate) *Converter {
	table := make(map[string]Rate, len(rates))
	for _, rate := range rates {
		if !rate.PerUSD.IsPositive() {
			continue
		}
		table[strings.ToUpper(rate.Code)] = rate
	}

	return &Converter{rates: table}
}

// Rates lists the supported rates sorted by currency code.
func (c *Converter) Rates() []Rate {
	rates := make([]Rate, 0, len(c.rates))
	for _, rate := range c.rates {
		rates = append(rates, rate)
	}
	sort.Slice(rates, func(i, j int) bool { return rates[i].Code < rates[j].Code })

	return rates
}

// Convert translates amount from one currency to another through USD.
func (c *Converter) Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	fromRate, ok := c.rates[strings.ToUpper(from)]
	if !ok {
		return decimal.Zero, domain.ErrCurrencyUnknown
	}

	toRate, ok := c.rates[strings.ToUpper(to)]
	if !ok {
		return decimal.Zero, domain.ErrCurrencyUnknown
	}

	if fromRate.Code == toRate.Code {
		return amount, nil
	}

	usd := amount.DivRound(fromRate.PerUSD, 8)

	return usd.Mul(toRate.PerUSD), nil
}
