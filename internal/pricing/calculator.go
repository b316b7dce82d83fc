package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/silvercommerce/tax-admin/internal/model"
	"github.com/silvercommerce/tax-admin/pkg/maths"
)

const (
	// taxAmountPlaces is the intermediate precision for the tax amount,
	// finer than the display precision.
	taxAmountPlaces = 4
	// sumPlaces is the precision the V2 variant re-rounds the
	// price-plus-tax sum to.
	sumPlaces = 3
)

var oneHundred = decimal.NewFromInt(100)

// Calculator derives the full price surface for taxable entities. It is
// stateless between calls and safe for concurrent use once observers
// are registered; every query recomputes from current inputs.
type Calculator struct {
	cfg        Config
	locales    LocaleProvider
	formatter  CurrencyFormatter
	translator Translator
	hooks      *Hooks

	// optional per-request geo context, set via WithGeo
	country string
	region  string
}

// NewCalculator builds a calculator around the given configuration and
// collaborators. Register overrides through Hooks before sharing it.
func NewCalculator(cfg Config, locales LocaleProvider, formatter CurrencyFormatter, translator Translator) *Calculator {
	return &Calculator{
		cfg:        cfg,
		locales:    locales,
		formatter:  formatter,
		translator: translator,
		hooks:      &Hooks{},
	}
}

// Hooks exposes the override registries. Registration is construction
// time wiring, not per-request.
func (c *Calculator) Hooks() *Hooks { return c.hooks }

// Config returns the calculator's configuration value object.
func (c *Calculator) Config() Config { return c.cfg }

// WithGeo returns a copy of the calculator pinned to an explicit
// country (ISO-3166 alpha-2) and optional subdivision code, bypassing
// the locale-derived fallback for rate resolution.
func (c *Calculator) WithGeo(country, region string) *Calculator {
	clone := *c
	clone.country = country
	clone.region = region
	return &clone
}

// EffectiveRate resolves the rate actually used for an entity: the
// explicit override when set and persisted, else the first eligible
// rate of its category, else the sentinel no-rate. Evaluated fresh on
// every call; resolution never fails.
func (c *Calculator) EffectiveRate(entity Taxable) model.TaxRate {
	if rate := entity.GetTaxRate(); rate != nil && rate.Exists() {
		return *rate
	}

	if category := entity.GetTaxCategory(); category != nil {
		country := c.country
		if country == "" {
			country = CountryFromLocale(c.resolveGeoLocale(entity))
		}
		if rate, ok := category.ResolveRate(country, c.region); ok {
			return rate
		}
	}

	return model.SentinelRate()
}

// NoTaxPrice returns the entity's tax-exclusive price, unrounded.
// Rounding happens only at the Rounded* display boundaries.
func (c *Calculator) NoTaxPrice(entity Taxable) (decimal.Decimal, error) {
	base := entity.GetBasePrice()
	if base.IsNegative() {
		return decimal.Decimal{}, ErrNegativeBasePrice
	}
	return c.hooks.NoTaxPrice.Resolve(entity, base), nil
}

// TaxPercentage returns the effective rate's percentage.
func (c *Calculator) TaxPercentage(entity Taxable) decimal.Decimal {
	percent := c.EffectiveRate(entity).Rate
	return c.hooks.TaxPercentage.Resolve(entity, percent)
}

// TaxAmount returns the tax owed on the entity's base price, rounded to
// four places in the configured direction. An entity without a
// persisted identity has no committed price to tax and yields zero.
func (c *Calculator) TaxAmount(entity Taxable) (decimal.Decimal, error) {
	if !entity.Exists() {
		return decimal.Zero, nil
	}

	base := entity.GetBasePrice()
	if base.IsNegative() {
		return decimal.Decimal{}, ErrNegativeBasePrice
	}

	percent := c.TaxPercentage(entity)
	tax, err := maths.Round(base.Div(oneHundred).Mul(percent), taxAmountPlaces, c.cfg.Mode, c.cfg.Version)
	if err != nil {
		return decimal.Decimal{}, err
	}

	return c.hooks.TaxAmount.Resolve(entity, tax), nil
}

// PriceAndTax returns the gross price. The V2 variant re-rounds the sum
// to three places; V1 returns the raw sum.
func (c *Calculator) PriceAndTax(entity Taxable) (decimal.Decimal, error) {
	notax, err := c.NoTaxPrice(entity)
	if err != nil {
		return decimal.Decimal{}, err
	}
	tax, err := c.TaxAmount(entity)
	if err != nil {
		return decimal.Decimal{}, err
	}

	sum := notax.Add(tax)
	if c.cfg.Version == maths.V2 {
		sum = sum.Round(sumPlaces)
	}

	return c.hooks.PriceAndTax.Resolve(entity, sum), nil
}

// RoundedNoTaxPrice is NoTaxPrice at display precision, rounded in the
// configured direction.
func (c *Calculator) RoundedNoTaxPrice(entity Taxable) (decimal.Decimal, error) {
	notax, err := c.NoTaxPrice(entity)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return maths.Round(notax, c.cfg.Precision, c.cfg.Mode, c.cfg.Version)
}

// RoundedTaxAmount is TaxAmount at display precision, rounded in the
// configured direction.
func (c *Calculator) RoundedTaxAmount(entity Taxable) (decimal.Decimal, error) {
	tax, err := c.TaxAmount(entity)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return maths.Round(tax, c.cfg.Precision, c.cfg.Mode, c.cfg.Version)
}

// RoundedPriceAndTax is the gross price at display precision. V1 sums
// the independently rounded parts (round-then-sum); V2 rounds the
// summed gross price (sum-then-round). The two need not agree
// bit-for-bit.
func (c *Calculator) RoundedPriceAndTax(entity Taxable) (decimal.Decimal, error) {
	var price decimal.Decimal

	if c.cfg.Version == maths.V1 {
		notax, err := c.RoundedNoTaxPrice(entity)
		if err != nil {
			return decimal.Decimal{}, err
		}
		tax, err := c.RoundedTaxAmount(entity)
		if err != nil {
			return decimal.Decimal{}, err
		}
		price = notax.Add(tax)
	} else {
		sum, err := c.PriceAndTax(entity)
		if err != nil {
			return decimal.Decimal{}, err
		}
		price, err = maths.Round(sum, c.cfg.Precision, c.cfg.Mode, c.cfg.Version)
		if err != nil {
			return decimal.Decimal{}, err
		}
	}

	return c.hooks.RoundedPriceAndTax.Resolve(entity, price), nil
}

// ShowPriceWithTax resolves whether prices for the entity display tax
// inclusive: the entity's own preference when set, otherwise the
// configured default.
func (c *Calculator) ShowPriceWithTax(entity Taxable) bool {
	if v := entity.GetShowPriceWithTax(); v != nil {
		return *v
	}
	return c.cfg.ShowPriceWithTax
}

// ShowTaxString resolves whether the tax label accompanies the
// entity's displayed price.
func (c *Calculator) ShowTaxString(entity Taxable) bool {
	if v := entity.GetShowTaxString(); v != nil {
		return *v
	}
	return c.cfg.ShowTaxString
}

// TaxLabel renders the string shown next to a price: "inc. VAT" when
// the price includes tax, "ex. VAT" when it does not, empty when no
// rate resolves. includeTax overrides the entity's own preference,
// which in turn overrides the configured default.
func (c *Calculator) TaxLabel(entity Taxable, includeTax *bool) string {
	rate := c.EffectiveRate(entity)

	include := c.ShowPriceWithTax(entity)
	if includeTax != nil {
		include = *includeTax
	}

	label := ""
	if rate.Exists() && include {
		label = c.translator.Translate(
			"TaxIncludes",
			"inc. {title}",
			map[string]string{"title": rate.Title},
		)
	} else if rate.Exists() {
		label = c.translator.Translate(
			"TaxExcludes",
			"ex. {title}",
			map[string]string{"title": rate.Title},
		)
	}

	return c.hooks.TaxLabel.Resolve(entity, label)
}

// FormattedPrice renders the rounded gross or net price for the
// entity's locale. Without a resolvable currency code it degrades to a
// plain localized number.
func (c *Calculator) FormattedPrice(entity Taxable, includeTax bool) (string, error) {
	var (
		amount decimal.Decimal
		err    error
	)
	if includeTax {
		amount, err = c.RoundedPriceAndTax(entity)
	} else {
		amount, err = c.RoundedNoTaxPrice(entity)
	}
	if err != nil {
		return "", err
	}

	locale := c.displayLocale(entity)
	code := c.formatter.CurrencyCode(locale)
	if code == "" {
		return c.formatter.Format(amount, locale), nil
	}
	return c.formatter.FormatCurrency(amount, code, locale), nil
}

// displayLocale picks the locale used for formatting: the entity's own
// locale, else the process-wide default.
func (c *Calculator) displayLocale(entity Taxable) string {
	if locale := entity.GetLocale(); locale != "" {
		return locale
	}
	return c.locales.CurrentLocale()
}

// resolveGeoLocale picks the locale used to derive a country for rate
// resolution: the entity's locale, else the actor's declared locale,
// else the process-wide default.
func (c *Calculator) resolveGeoLocale(entity Taxable) string {
	if locale := entity.GetLocale(); locale != "" {
		return locale
	}
	if locale := c.locales.CurrentActorLocale(); locale != "" {
		return locale
	}
	return c.locales.CurrentLocale()
}
