package pricing

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silvercommerce/tax-admin/internal/model"
	"github.com/silvercommerce/tax-admin/pkg/maths"
)

var _ Taxable = (*model.Product)(nil)

// --- Fakes ---

type fakeFormatter struct {
	codes map[string]string
}

func (f fakeFormatter) Format(a decimal.Decimal, locale string) string {
	return a.StringFixed(2)
}

func (f fakeFormatter) FormatCurrency(a decimal.Decimal, code, locale string) string {
	return code + " " + a.StringFixed(2)
}

func (f fakeFormatter) CurrencyCode(locale string) string { return f.codes[locale] }

func (f fakeFormatter) CurrencySymbol(locale string) string { return "£" }

type templateTranslator struct{}

func (templateTranslator) Translate(key, def string, ph map[string]string) string {
	out := def
	for name, value := range ph {
		out = strings.ReplaceAll(out, "{"+name+"}", value)
	}
	return out
}

// --- Fixtures ---

func vatRate() *model.TaxRate {
	r := model.TaxRate{
		ID:    uuid.New(),
		Title: "VAT",
		Rate:  decimal.NewFromInt(20),
		Zones: []model.Zone{
			{
				ID:   uuid.New(),
				Name: "UK",
				Regions: []model.Region{
					{ID: uuid.New(), CountryCode: "GB", Code: "GLS"},
				},
			},
			{
				ID:   uuid.New(),
				Name: "Germany",
				Regions: []model.Region{
					{ID: uuid.New(), CountryCode: "DE"},
				},
			},
		},
	}
	return &r
}

func reducedRate() *model.TaxRate {
	r := model.TaxRate{
		ID:    uuid.New(),
		Title: "Reduced",
		Rate:  decimal.NewFromInt(5),
		Zones: []model.Zone{
			{
				ID:   uuid.New(),
				Name: "US",
				Regions: []model.Region{
					{ID: uuid.New(), CountryCode: "US", Code: "NY"},
				},
			},
		},
	}
	return &r
}

func standardCategory() *model.TaxCategory {
	vat := vatRate()
	reduced := reducedRate()
	return &model.TaxCategory{
		ID:    uuid.New(),
		Title: "Standard Goods",
		Rates: []model.CategoryRate{
			{TaxRateID: vat.ID, TaxRate: *vat, Position: 0},
			{TaxRateID: reduced.ID, TaxRate: *reduced, Position: 1},
		},
	}
}

func savedProduct(price string) *model.Product {
	return &model.Product{
		ID:        uuid.New(),
		StockID:   "SKU-1",
		Title:     "Widget",
		BasePrice: decimal.RequireFromString(price),
	}
}

func newCalculator(cfg Config) *Calculator {
	return NewCalculator(
		cfg,
		StaticLocaleProvider{Default: "en_GB"},
		fakeFormatter{codes: map[string]string{"en_GB": "GBP", "en_US": "USD"}},
		templateTranslator{},
	)
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// --- Effective rate resolution ---

func TestEffectiveRateExplicitOverride(t *testing.T) {
	calc := newCalculator(DefaultConfig())

	p := savedProduct("10")
	p.TaxRate = reducedRate()
	p.TaxCategory = standardCategory()

	rate := calc.EffectiveRate(p)
	assert.Equal(t, "Reduced", rate.Title)
}

func TestEffectiveRateFromCategoryByLocale(t *testing.T) {
	calc := newCalculator(DefaultConfig())

	p := savedProduct("10")
	p.TaxCategory = standardCategory()

	// default locale en_GB resolves to GB, matching the VAT zone
	rate := calc.EffectiveRate(p)
	assert.Equal(t, "VAT", rate.Title)
}

func TestEffectiveRateActorLocaleBeatsDefault(t *testing.T) {
	calc := NewCalculator(
		DefaultConfig(),
		StaticLocaleProvider{Default: "en_GB", Actor: "de_DE"},
		fakeFormatter{},
		templateTranslator{},
	)

	p := savedProduct("10")
	p.TaxCategory = standardCategory()

	rate := calc.EffectiveRate(p)
	assert.Equal(t, "VAT", rate.Title) // Germany zone, still VAT

	// pin the geo explicitly and the locale chain is bypassed
	rate = calc.WithGeo("US", "").EffectiveRate(p)
	assert.Equal(t, "Reduced", rate.Title)
}

func TestEffectiveRateEntityLocaleWins(t *testing.T) {
	calc := newCalculator(DefaultConfig())

	p := savedProduct("10")
	p.Locale = "en_US"
	p.TaxCategory = standardCategory()

	rate := calc.EffectiveRate(p)
	assert.Equal(t, "Reduced", rate.Title)
}

func TestEffectiveRateSentinelFallback(t *testing.T) {
	calc := newCalculator(DefaultConfig())

	p := savedProduct("10")
	rate := calc.EffectiveRate(p)
	assert.False(t, rate.Exists())
	assert.True(t, rate.Rate.IsZero())

	// unmatched geo also falls through to the sentinel
	p.TaxCategory = standardCategory()
	rate = calc.WithGeo("ES", "").EffectiveRate(p)
	assert.False(t, rate.Exists())
}

func TestEffectiveRateIgnoresUnsavedOverride(t *testing.T) {
	calc := newCalculator(DefaultConfig())

	p := savedProduct("10")
	p.TaxRate = &model.TaxRate{Title: "Draft", Rate: decimal.NewFromInt(99)}
	p.TaxCategory = standardCategory()

	rate := calc.EffectiveRate(p)
	assert.Equal(t, "VAT", rate.Title)
}

// --- Derived values ---

func TestNoTaxPrice(t *testing.T) {
	calc := newCalculator(DefaultConfig())

	p := savedProduct("16.66")
	got, err := calc.NoTaxPrice(p)
	require.NoError(t, err)
	assert.True(t, got.Equal(dec("16.66")))
}

func TestNoTaxPriceNegative(t *testing.T) {
	calc := newCalculator(DefaultConfig())

	p := savedProduct("-1")
	_, err := calc.NoTaxPrice(p)
	assert.ErrorIs(t, err, ErrNegativeBasePrice)

	_, err = calc.TaxAmount(p)
	assert.ErrorIs(t, err, ErrNegativeBasePrice)
}

func TestTaxAmount(t *testing.T) {
	calc := newCalculator(DefaultConfig())

	p := savedProduct("16.66")
	p.TaxRate = vatRate()

	tax, err := calc.TaxAmount(p)
	require.NoError(t, err)
	assert.True(t, tax.Equal(dec("3.332")), "got %s", tax)

	rounded, err := calc.RoundedTaxAmount(p)
	require.NoError(t, err)
	assert.True(t, rounded.Equal(dec("3.33")), "got %s", rounded)
}

func TestTaxAmountDirectionalRounding(t *testing.T) {
	// 82.83 at 20% is 16.566; display rounding at 2 places splits by
	// direction while the intermediate stays at 4 places.
	p := savedProduct("82.83")
	p.TaxRate = vatRate()

	up := DefaultConfig()
	up.Mode = maths.ModeUp
	calcUp := newCalculator(up)

	down := DefaultConfig()
	down.Mode = maths.ModeDown
	calcDown := newCalculator(down)

	taxUp, err := calcUp.TaxAmount(p)
	require.NoError(t, err)
	assert.True(t, taxUp.Equal(dec("16.566")), "got %s", taxUp)

	roundedUp, err := calcUp.RoundedTaxAmount(p)
	require.NoError(t, err)
	assert.True(t, roundedUp.Equal(dec("16.57")), "got %s", roundedUp)

	roundedDown, err := calcDown.RoundedTaxAmount(p)
	require.NoError(t, err)
	assert.True(t, roundedDown.Equal(dec("16.56")), "got %s", roundedDown)
}

func TestTaxAmountUnsavedEntity(t *testing.T) {
	calc := newCalculator(DefaultConfig())

	p := &model.Product{BasePrice: dec("100")}
	p.TaxRate = vatRate()

	tax, err := calc.TaxAmount(p)
	require.NoError(t, err)
	assert.True(t, tax.IsZero())
}

func TestTaxAmountSentinelRate(t *testing.T) {
	calc := newCalculator(DefaultConfig())

	p := savedProduct("100")
	tax, err := calc.TaxAmount(p)
	require.NoError(t, err)
	assert.True(t, tax.IsZero())
	assert.True(t, calc.TaxPercentage(p).IsZero())
}

func TestPriceAndTax(t *testing.T) {
	calc := newCalculator(DefaultConfig())

	p := savedProduct("16.66")
	p.TaxRate = vatRate()

	gross, err := calc.PriceAndTax(p)
	require.NoError(t, err)
	assert.True(t, gross.Equal(dec("19.992")), "got %s", gross)

	rounded, err := calc.RoundedPriceAndTax(p)
	require.NoError(t, err)
	assert.True(t, rounded.Equal(dec("19.99")), "got %s", rounded)
}

// The V1 and V2 variants disagree on how the rounded gross price is
// derived: V1 sums the independently rounded parts, V2 rounds the sum.
// With a half-way base and a half-way tax the two drift apart by a
// penny, which is the documented round-trip property.
func TestRoundedPriceAndTaxVariants(t *testing.T) {
	p := savedProduct("2.125")
	p.TaxRate = vatRate() // 20% of 2.125 = 0.425

	v1 := DefaultConfig()
	v1.Version = maths.V1
	calcV1 := newCalculator(v1)

	calcV2 := newCalculator(DefaultConfig())

	got1, err := calcV1.RoundedPriceAndTax(p)
	require.NoError(t, err)
	assert.True(t, got1.Equal(dec("2.56")), "v1 got %s", got1)

	got2, err := calcV2.RoundedPriceAndTax(p)
	require.NoError(t, err)
	assert.True(t, got2.Equal(dec("2.55")), "v2 got %s", got2)

	// round-then-sum of the V2 parts does not match its sum-then-round
	notax, err := calcV2.RoundedNoTaxPrice(p)
	require.NoError(t, err)
	tax, err := calcV2.RoundedTaxAmount(p)
	require.NoError(t, err)
	assert.False(t, notax.Add(tax).Equal(got2))
}

// --- Override hooks ---

func TestHookFirstNonNilWins(t *testing.T) {
	calc := newCalculator(DefaultConfig())

	calc.Hooks().TaxAmount.Observe(func(e Taxable, base decimal.Decimal) *decimal.Decimal {
		return nil
	})
	calc.Hooks().TaxAmount.Observe(func(e Taxable, base decimal.Decimal) *decimal.Decimal {
		v := dec("1.11")
		return &v
	})
	calc.Hooks().TaxAmount.Observe(func(e Taxable, base decimal.Decimal) *decimal.Decimal {
		v := dec("9.99")
		return &v
	})

	p := savedProduct("16.66")
	p.TaxRate = vatRate()

	tax, err := calc.TaxAmount(p)
	require.NoError(t, err)
	assert.True(t, tax.Equal(dec("1.11")), "got %s", tax)

	// the override feeds the next stage
	gross, err := calc.PriceAndTax(p)
	require.NoError(t, err)
	assert.True(t, gross.Equal(dec("17.77")), "got %s", gross)
}

func TestHookOnNoTaxPrice(t *testing.T) {
	calc := newCalculator(DefaultConfig())
	calc.Hooks().NoTaxPrice.Observe(func(e Taxable, base decimal.Decimal) *decimal.Decimal {
		v := base.Mul(dec("0.5"))
		return &v
	})

	p := savedProduct("100")
	got, err := calc.NoTaxPrice(p)
	require.NoError(t, err)
	assert.True(t, got.Equal(dec("50")))
}

func TestHookOnTaxPercentage(t *testing.T) {
	calc := newCalculator(DefaultConfig())
	calc.Hooks().TaxPercentage.Observe(func(e Taxable, base decimal.Decimal) *decimal.Decimal {
		v := dec("10")
		return &v
	})

	p := savedProduct("100")
	p.TaxRate = vatRate()

	assert.True(t, calc.TaxPercentage(p).Equal(dec("10")))

	tax, err := calc.TaxAmount(p)
	require.NoError(t, err)
	assert.True(t, tax.Equal(dec("10")), "got %s", tax)
}

func TestHookOnTaxLabel(t *testing.T) {
	calc := newCalculator(DefaultConfig())
	calc.Hooks().TaxLabel.Observe(func(e Taxable, base string) *string {
		v := base + " (20%)"
		return &v
	})

	p := savedProduct("100")
	p.TaxRate = vatRate()

	assert.Equal(t, "ex. VAT (20%)", calc.TaxLabel(p, nil))
}

// --- Labels and formatting ---

func TestTaxLabel(t *testing.T) {
	calc := newCalculator(DefaultConfig())

	p := savedProduct("100")
	p.TaxRate = vatRate()

	assert.Equal(t, "ex. VAT", calc.TaxLabel(p, nil))

	include := true
	assert.Equal(t, "inc. VAT", calc.TaxLabel(p, &include))

	exclude := false
	assert.Equal(t, "ex. VAT", calc.TaxLabel(p, &exclude))
}

func TestTaxLabelConfiguredDefault(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ShowPriceWithTax = true
	calc := newCalculator(cfg)

	p := savedProduct("100")
	p.TaxRate = vatRate()

	assert.Equal(t, "inc. VAT", calc.TaxLabel(p, nil))
}

func TestTaxLabelEntityPreference(t *testing.T) {
	calc := newCalculator(DefaultConfig())

	p := savedProduct("100")
	p.TaxRate = vatRate()

	include := true
	p.ShowPriceWithTax = &include
	assert.Equal(t, "inc. VAT", calc.TaxLabel(p, nil))

	// an explicit override still beats the entity's preference
	exclude := false
	assert.Equal(t, "ex. VAT", calc.TaxLabel(p, &exclude))

	p.ShowPriceWithTax = &exclude
	assert.Equal(t, "ex. VAT", calc.TaxLabel(p, nil))
}

func TestTaxLabelNoRate(t *testing.T) {
	calc := newCalculator(DefaultConfig())

	p := savedProduct("100")
	assert.Equal(t, "", calc.TaxLabel(p, nil))
}

func TestFormattedPrice(t *testing.T) {
	calc := newCalculator(DefaultConfig())

	p := savedProduct("16.66")
	p.TaxRate = vatRate()

	got, err := calc.FormattedPrice(p, false)
	require.NoError(t, err)
	assert.Equal(t, "GBP 16.66", got)

	got, err = calc.FormattedPrice(p, true)
	require.NoError(t, err)
	assert.Equal(t, "GBP 19.99", got)
}

// Without a resolvable currency code the price degrades to a plain
// localized number.
func TestFormattedPricePlainNumberFallback(t *testing.T) {
	calc := newCalculator(DefaultConfig())

	p := savedProduct("16.66")
	p.Locale = "zz_ZZ" // fake formatter knows no currency for this

	got, err := calc.FormattedPrice(p, false)
	require.NoError(t, err)
	assert.Equal(t, "16.66", got)
}
