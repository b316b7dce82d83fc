package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/silvercommerce/tax-admin/internal/model"
	"github.com/silvercommerce/tax-admin/internal/pricing"
)

type fakeProductRepo struct {
	products map[uuid.UUID]*model.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]*model.Product)}
}

func (f *fakeProductRepo) Create(ctx context.Context, p *model.Product) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) Update(ctx context.Context, p *model.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (f *fakeProductRepo) FindByStockID(ctx context.Context, siteID uuid.UUID, stockID string) (*model.Product, error) {
	for _, p := range f.products {
		if p.SiteID == siteID && p.StockID == stockID {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProductRepo) List(ctx context.Context, siteID uuid.UUID, page, limit int, search string) ([]model.Product, int64, error) {
	var out []model.Product
	for _, p := range f.products {
		if p.SiteID == siteID {
			out = append(out, *p)
		}
	}
	return out, int64(len(out)), nil
}

func newPricingFixture(t *testing.T) (PricingService, *fakeProductRepo, *fakeRateRepo, uuid.UUID) {
	t.Helper()

	cfg := pricing.DefaultConfig()
	cfg.ShowTaxString = true
	cfg.ShowPriceWithTax = true
	calc := pricing.NewCalculator(
		cfg,
		pricing.StaticLocaleProvider{Default: "en_GB"},
		pricing.XTextFormatter{},
		pricing.NewCatalogTranslator("en_GB", pricing.NewDefaultCatalog()),
	)

	products := newFakeProductRepo()
	rates := newFakeRateRepo()
	categories := newFakeCategoryRepo()
	siteID := uuid.New()
	return NewPricingService(calc, products, rates, categories), products, rates, siteID
}

func TestQuoteExplicitAmountWithRate(t *testing.T) {
	ctx := context.Background()
	svc, _, rates, siteID := newPricingFixture(t)

	vat := &model.TaxRate{Title: "VAT", Rate: decimal.NewFromInt(20), Global: true, SiteID: siteID}
	require.NoError(t, rates.Create(ctx, vat))

	quote, err := svc.Quote(ctx, siteID, QuoteRequest{
		BasePrice: "16.66",
		TaxRateID: vat.ID.String(),
	})
	require.NoError(t, err)

	assert.Equal(t, "16.66", quote.NoTaxPrice)
	assert.Equal(t, "20", quote.TaxPercentage)
	assert.Equal(t, "3.332", quote.TaxAmount)
	assert.Equal(t, "19.992", quote.PriceAndTax)
	assert.Equal(t, "16.66", quote.RoundedNoTaxPrice)
	assert.Equal(t, "3.33", quote.RoundedTaxAmount)
	assert.Equal(t, "19.99", quote.RoundedPriceAndTax)
	assert.Equal(t, "VAT", quote.RateTitle)
	assert.Equal(t, "inc. VAT", quote.TaxLabel)
	assert.NotEmpty(t, quote.FormattedPrice)
}

func TestQuoteStoredProduct(t *testing.T) {
	ctx := context.Background()
	svc, products, rates, siteID := newPricingFixture(t)

	vat := &model.TaxRate{Title: "VAT", Rate: decimal.NewFromInt(20), Global: true, SiteID: siteID}
	require.NoError(t, rates.Create(ctx, vat))

	product := &model.Product{
		StockID:   "SKU-1",
		Title:     "Widget",
		BasePrice: decimal.RequireFromString("49.99"),
		SiteID:    siteID,
		TaxRateID: &vat.ID,
		TaxRate:   vat,
	}
	require.NoError(t, products.Create(ctx, product))

	quote, err := svc.Quote(ctx, siteID, QuoteRequest{ProductID: product.ID.String()})
	require.NoError(t, err)

	assert.Equal(t, "9.998", quote.TaxAmount)
	assert.Equal(t, "59.988", quote.PriceAndTax)
	assert.Equal(t, "59.99", quote.RoundedPriceAndTax)
}

func TestQuoteNoRateResolves(t *testing.T) {
	ctx := context.Background()
	svc, _, _, siteID := newPricingFixture(t)

	quote, err := svc.Quote(ctx, siteID, QuoteRequest{BasePrice: "100"})
	require.NoError(t, err)

	assert.Equal(t, "0", quote.TaxPercentage)
	assert.Equal(t, "0", quote.TaxAmount)
	assert.Equal(t, "100", quote.PriceAndTax)
	assert.Empty(t, quote.RateTitle)
	assert.Empty(t, quote.TaxLabel)
}

func TestQuoteNegativeBasePrice(t *testing.T) {
	ctx := context.Background()
	svc, _, _, siteID := newPricingFixture(t)

	_, err := svc.Quote(ctx, siteID, QuoteRequest{BasePrice: "-1"})
	assert.ErrorIs(t, err, pricing.ErrNegativeBasePrice)
}

func TestQuoteMalformedInputs(t *testing.T) {
	ctx := context.Background()
	svc, _, _, siteID := newPricingFixture(t)

	_, err := svc.Quote(ctx, siteID, QuoteRequest{BasePrice: "ten"})
	assert.Error(t, err)

	_, err = svc.Quote(ctx, siteID, QuoteRequest{ProductID: "not-a-uuid"})
	assert.Error(t, err)

	_, err = svc.Quote(ctx, siteID, QuoteRequest{BasePrice: "10", TaxRateID: uuid.New().String()})
	assert.Error(t, err) // unknown rate
}
