package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// XTextFormatter renders amounts with the CLDR data shipped in
// golang.org/x/text: currency strings per locale, currency codes and
// symbols derived from the locale's region.
type XTextFormatter struct {
	// Fallback is used when a locale does not parse. Zero value means
	// language.English.
	Fallback language.Tag
}

func (f XTextFormatter) tag(locale string) language.Tag {
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		if f.Fallback.IsRoot() {
			return language.English
		}
		return f.Fallback
	}
	return tag
}

// unit derives a currency from the locale's own region. Unlike tag it
// never consults the display fallback, and only a region spelled out in
// the locale counts; an inferred one would give "en" a dollar sign.
func (f XTextFormatter) unit(locale string) (currency.Unit, bool) {
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return currency.Unit{}, false
	}
	region, conf := tag.Region()
	if conf != language.Exact || !region.IsCountry() {
		return currency.Unit{}, false
	}
	return currency.FromRegion(region)
}

// Format renders a plain localized number at two fraction digits.
func (f XTextFormatter) Format(amount decimal.Decimal, locale string) string {
	p := message.NewPrinter(f.tag(locale))
	return p.Sprintf("%v", number.Decimal(amount.InexactFloat64(), number.Scale(2)))
}

// FormatCurrency renders a currency string for the given ISO 4217 code.
func (f XTextFormatter) FormatCurrency(amount decimal.Decimal, currencyCode, locale string) string {
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return f.Format(amount, locale)
	}
	p := message.NewPrinter(f.tag(locale))
	return p.Sprintf("%v", currency.Symbol(unit.Amount(amount.InexactFloat64())))
}

// CurrencyCode returns the ISO 4217 code for the locale's region, or
// "" when the locale carries no resolvable country.
func (f XTextFormatter) CurrencyCode(locale string) string {
	unit, ok := f.unit(locale)
	if !ok {
		return ""
	}
	return unit.String()
}

// CurrencySymbol returns the locale's currency symbol, or "" when no
// currency resolves.
func (f XTextFormatter) CurrencySymbol(locale string) string {
	unit, ok := f.unit(locale)
	if !ok {
		return ""
	}
	p := message.NewPrinter(f.tag(locale))
	return p.Sprintf("%v", currency.Symbol(unit))
}
