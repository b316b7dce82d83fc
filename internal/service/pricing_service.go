package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/silvercommerce/tax-admin/internal/model"
	"github.com/silvercommerce/tax-admin/internal/pricing"
	"github.com/silvercommerce/tax-admin/internal/repository"
)

// --- DTOs ---

// QuoteRequest prices either a stored product (by id) or an ad-hoc
// amount with an explicit rate or category.
type QuoteRequest struct {
	ProductID     string `json:"product_id"`
	BasePrice     string `json:"base_price"`
	TaxRateID     string `json:"tax_rate_id"`
	TaxCategoryID string `json:"tax_category_id"`
	Locale        string `json:"locale"`
	Country       string `json:"country" binding:"omitempty,len=2"`
	Region        string `json:"region" binding:"omitempty,max=3"`
	IncludeTax    *bool  `json:"include_tax"`
}

type QuoteResponse struct {
	NoTaxPrice         string `json:"no_tax_price"`
	TaxPercentage      string `json:"tax_percentage"`
	TaxAmount          string `json:"tax_amount"`
	PriceAndTax        string `json:"price_and_tax"`
	RoundedNoTaxPrice  string `json:"rounded_no_tax_price"`
	RoundedTaxAmount   string `json:"rounded_tax_amount"`
	RoundedPriceAndTax string `json:"rounded_price_and_tax"`
	RateTitle          string `json:"rate_title,omitempty"`
	TaxLabel           string `json:"tax_label,omitempty"`
	FormattedPrice     string `json:"formatted_price"`
}

// --- Interface ---

type PricingService interface {
	Quote(ctx context.Context, siteID uuid.UUID, req QuoteRequest) (QuoteResponse, error)
	QuoteEntity(entity pricing.Taxable, country, region string, includeTax *bool) (QuoteResponse, error)
	Calculator() *pricing.Calculator
}

type pricingService struct {
	calc       *pricing.Calculator
	products   repository.ProductRepository
	rates      repository.TaxRateRepository
	categories repository.TaxCategoryRepository
}

func NewPricingService(
	calc *pricing.Calculator,
	products repository.ProductRepository,
	rates repository.TaxRateRepository,
	categories repository.TaxCategoryRepository,
) PricingService {
	return &pricingService{calc: calc, products: products, rates: rates, categories: categories}
}

// Calculator exposes the underlying calculator so hosts can register
// override hooks at wiring time.
func (s *pricingService) Calculator() *pricing.Calculator { return s.calc }

// --- Implementation ---

func (s *pricingService) Quote(ctx context.Context, siteID uuid.UUID, req QuoteRequest) (QuoteResponse, error) {
	entity, err := s.resolveEntity(ctx, siteID, req)
	if err != nil {
		return QuoteResponse{}, err
	}
	return s.QuoteEntity(entity, req.Country, req.Region, req.IncludeTax)
}

// QuoteEntity derives the full price surface for an already-loaded
// entity, optionally pinned to an explicit geo.
func (s *pricingService) QuoteEntity(entity pricing.Taxable, country, region string, includeTax *bool) (QuoteResponse, error) {
	calc := s.calc
	if country != "" {
		calc = calc.WithGeo(country, region)
	}

	notax, err := calc.NoTaxPrice(entity)
	if err != nil {
		return QuoteResponse{}, err
	}
	tax, err := calc.TaxAmount(entity)
	if err != nil {
		return QuoteResponse{}, err
	}
	gross, err := calc.PriceAndTax(entity)
	if err != nil {
		return QuoteResponse{}, err
	}
	roundedNoTax, err := calc.RoundedNoTaxPrice(entity)
	if err != nil {
		return QuoteResponse{}, err
	}
	roundedTax, err := calc.RoundedTaxAmount(entity)
	if err != nil {
		return QuoteResponse{}, err
	}
	roundedGross, err := calc.RoundedPriceAndTax(entity)
	if err != nil {
		return QuoteResponse{}, err
	}

	include := calc.ShowPriceWithTax(entity)
	if includeTax != nil {
		include = *includeTax
	}
	formatted, err := calc.FormattedPrice(entity, include)
	if err != nil {
		return QuoteResponse{}, err
	}

	rate := calc.EffectiveRate(entity)
	res := QuoteResponse{
		NoTaxPrice:         notax.String(),
		TaxPercentage:      calc.TaxPercentage(entity).String(),
		TaxAmount:          tax.String(),
		PriceAndTax:        gross.String(),
		RoundedNoTaxPrice:  roundedNoTax.String(),
		RoundedTaxAmount:   roundedTax.String(),
		RoundedPriceAndTax: roundedGross.String(),
		FormattedPrice:     formatted,
	}
	if rate.Exists() {
		res.RateTitle = rate.Title
	}
	if calc.ShowTaxString(entity) {
		res.TaxLabel = calc.TaxLabel(entity, includeTax)
	}
	return res, nil
}

// resolveEntity turns a quote request into a Taxable: a stored product
// when product_id is set, otherwise an ad-hoc entity built from the
// explicit amount plus rate or category.
func (s *pricingService) resolveEntity(ctx context.Context, siteID uuid.UUID, req QuoteRequest) (pricing.Taxable, error) {
	if req.ProductID != "" {
		id, err := uuid.Parse(req.ProductID)
		if err != nil {
			return nil, fmt.Errorf("invalid product id: %w", err)
		}
		product, err := s.products.FindByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch product: %w", err)
		}
		return product, nil
	}

	base, err := decimal.NewFromString(req.BasePrice)
	if err != nil {
		return nil, fmt.Errorf("invalid base price: %w", err)
	}

	// ad-hoc entities get a synthetic identity so the tax formula runs
	entity := &model.Product{
		ID:        uuid.New(),
		BasePrice: base,
		Locale:    req.Locale,
		SiteID:    siteID,
	}

	if req.TaxRateID != "" {
		id, err := uuid.Parse(req.TaxRateID)
		if err != nil {
			return nil, fmt.Errorf("invalid tax rate id: %w", err)
		}
		rate, err := s.rates.FindByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch tax rate: %w", err)
		}
		entity.TaxRateID = &rate.ID
		entity.TaxRate = rate
		return entity, nil
	}

	if req.TaxCategoryID != "" {
		id, err := uuid.Parse(req.TaxCategoryID)
		if err != nil {
			return nil, fmt.Errorf("invalid tax category id: %w", err)
		}
		category, err := s.categories.FindByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch tax category: %w", err)
		}
		entity.TaxCategoryID = &category.ID
		entity.TaxCategory = category
	}

	return entity, nil
}
