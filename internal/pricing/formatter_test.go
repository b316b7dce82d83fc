package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCurrencyCode(t *testing.T) {
	f := XTextFormatter{}

	assert.Equal(t, "GBP", f.CurrencyCode("en_GB"))
	assert.Equal(t, "USD", f.CurrencyCode("en_US"))
	assert.Equal(t, "EUR", f.CurrencyCode("de_DE"))
	assert.Equal(t, "EUR", f.CurrencyCode("de-DE"))

	// no region, no currency; the display fallback must not leak its
	// region into currency derivation
	assert.Equal(t, "", f.CurrencyCode("not a locale"))
	assert.Equal(t, "", f.CurrencyCode(""))

	// a language alone does not imply a country
	assert.Equal(t, "", f.CurrencyCode("en"))
}

func TestCurrencySymbol(t *testing.T) {
	f := XTextFormatter{}

	assert.Equal(t, "£", f.CurrencySymbol("en_GB"))
	assert.Equal(t, "$", f.CurrencySymbol("en_US"))
	assert.Equal(t, "", f.CurrencySymbol("not a locale"))
	assert.Equal(t, "", f.CurrencySymbol("en"))
}

func TestFormat(t *testing.T) {
	f := XTextFormatter{}

	assert.Equal(t, "16.66", f.Format(decimal.RequireFromString("16.66"), "en_GB"))
	assert.Equal(t, "16,66", f.Format(decimal.RequireFromString("16.66"), "de_DE"))
}

func TestFormatCurrency(t *testing.T) {
	f := XTextFormatter{}

	got := f.FormatCurrency(decimal.RequireFromString("19.99"), "GBP", "en_GB")
	assert.Contains(t, got, "£")
	assert.Contains(t, got, "19.99")

	// a bad code degrades to a plain number
	got = f.FormatCurrency(decimal.RequireFromString("19.99"), "???", "en_GB")
	assert.Equal(t, "19.99", got)
}
