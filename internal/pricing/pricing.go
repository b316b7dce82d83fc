// Package pricing derives the tax-inclusive price surface of a sellable
// entity: tax rate resolution, tax amount, gross price, rounded display
// variants, translated tax labels and locale-formatted renderings.
package pricing

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/silvercommerce/tax-admin/internal/model"
	"github.com/silvercommerce/tax-admin/pkg/extension"
	"github.com/silvercommerce/tax-admin/pkg/maths"
)

// ErrNegativeBasePrice is returned when an entity carries a negative
// tax-exclusive price. It is never silently clamped.
var ErrNegativeBasePrice = errors.New("pricing: base price must not be negative")

// Taxable is the consumer contract: anything with a tax-exclusive
// price, an optional explicit rate or category, and a persisted
// identity can be priced.
type Taxable interface {
	GetBasePrice() decimal.Decimal
	GetTaxRate() *model.TaxRate
	GetTaxCategory() *model.TaxCategory
	GetLocale() string
	// GetShowPriceWithTax and GetShowTaxString are the entity's own
	// display preferences; nil falls back to the configured default.
	GetShowPriceWithTax() *bool
	GetShowTaxString() *bool
	Exists() bool
}

// LocaleProvider supplies the ambient locale chain used when neither
// the caller nor the entity pins one: an authenticated actor's declared
// locale first, then the process-wide default.
type LocaleProvider interface {
	CurrentLocale() string
	CurrentActorLocale() string
}

// CurrencyFormatter renders amounts for humans. Implementations own
// every locale concern; the pipeline only chooses which amount to hand
// over.
type CurrencyFormatter interface {
	Format(amount decimal.Decimal, locale string) string
	FormatCurrency(amount decimal.Decimal, currencyCode, locale string) string
	CurrencyCode(locale string) string
	CurrencySymbol(locale string) string
}

// Translator resolves a message key to a localized string, falling back
// to the given template. Placeholders use {name} syntax.
type Translator interface {
	Translate(key, defaultTemplate string, placeholders map[string]string) string
}

// Config is the explicit configuration value object for a calculator.
// It is passed at construction, never read from ambient globals, so
// tests can vary it per call without cross-test leakage.
type Config struct {
	// Precision is the display precision for the Rounded* variants.
	Precision int32
	// Mode is the rounding direction used for intermediate tax math.
	Mode maths.Mode
	// Version selects the historical algorithm variant for rounding
	// and price-plus-tax aggregation.
	Version maths.Version
	// ShowPriceWithTax is the default for tax-inclusive display when
	// the caller does not say.
	ShowPriceWithTax bool
	// ShowTaxString is the default for appending the tax label to
	// rendered prices.
	ShowTaxString bool
}

// DefaultConfig returns the stock configuration: 2-digit display
// precision, nearest rounding, V2 algorithm, tax-exclusive display.
func DefaultConfig() Config {
	return Config{
		Precision: 2,
		Mode:      maths.ModeNearest,
		Version:   maths.V2,
	}
}

// Hooks groups the override seams, one per derived stage. Observers
// registered here can veto or replace any computed value; the first
// non-nil result per stage wins.
type Hooks struct {
	NoTaxPrice         extension.Hooks[Taxable, decimal.Decimal]
	TaxPercentage      extension.Hooks[Taxable, decimal.Decimal]
	TaxAmount          extension.Hooks[Taxable, decimal.Decimal]
	PriceAndTax        extension.Hooks[Taxable, decimal.Decimal]
	RoundedPriceAndTax extension.Hooks[Taxable, decimal.Decimal]
	TaxLabel           extension.Hooks[Taxable, string]
}
