package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/silvercommerce/tax-admin/internal/model"
	"github.com/silvercommerce/tax-admin/internal/repository"
)

// --- DTOs ---

type CreateProductRequest struct {
	StockID          string `json:"stock_id" binding:"required"`
	Title            string `json:"title" binding:"required"`
	BasePrice        string `json:"base_price" binding:"required"`
	Locale           string `json:"locale"`
	TaxCategoryID    string `json:"tax_category_id"`
	TaxRateID        string `json:"tax_rate_id"`
	ShowPriceWithTax *bool  `json:"show_price_with_tax"`
	ShowTaxString    *bool  `json:"show_tax_string"`
}

type UpdateProductRequest struct {
	StockID          string `json:"stock_id" binding:"required"`
	Title            string `json:"title" binding:"required"`
	BasePrice        string `json:"base_price" binding:"required"`
	Locale           string `json:"locale"`
	TaxCategoryID    string `json:"tax_category_id"`
	TaxRateID        string `json:"tax_rate_id"`
	ShowPriceWithTax *bool  `json:"show_price_with_tax"`
	ShowTaxString    *bool  `json:"show_tax_string"`
}

type ProductResponse struct {
	ID               string  `json:"id"`
	StockID          string  `json:"stock_id"`
	Title            string  `json:"title"`
	BasePrice        string  `json:"base_price"`
	Locale           string  `json:"locale"`
	SiteID           string  `json:"site_id"`
	TaxCategoryID    *string `json:"tax_category_id"`
	TaxRateID        *string `json:"tax_rate_id"`
	ShowPriceWithTax *bool   `json:"show_price_with_tax"`
	ShowTaxString    *bool   `json:"show_tax_string"`
	CreatedAt        string  `json:"created_at"`
}

// --- Interface ---

type ProductService interface {
	List(ctx context.Context, siteID uuid.UUID, page, limit int, search string) ([]ProductResponse, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*ProductResponse, error)
	Create(ctx context.Context, siteID uuid.UUID, req CreateProductRequest) (ProductResponse, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (ProductResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Pricing(ctx context.Context, id uuid.UUID, country, region string, includeTax *bool) (QuoteResponse, error)
}

type productService struct {
	products repository.ProductRepository
	pricing  PricingService
}

func NewProductService(products repository.ProductRepository, pricing PricingService) ProductService {
	return &productService{products: products, pricing: pricing}
}

// --- Implementation ---

func (s *productService) List(ctx context.Context, siteID uuid.UUID, page, limit int, search string) ([]ProductResponse, int64, error) {
	products, total, err := s.products.List(ctx, siteID, page, limit, search)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch products: %w", err)
	}

	res := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		res = append(res, toProductResponse(p))
	}
	return res, total, nil
}

func (s *productService) Get(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}
	res := toProductResponse(*product)
	return &res, nil
}

func (s *productService) Create(ctx context.Context, siteID uuid.UUID, req CreateProductRequest) (ProductResponse, error) {
	product, err := buildProduct(siteID, req.StockID, req.Title, req.BasePrice, req.Locale, req.TaxCategoryID, req.TaxRateID)
	if err != nil {
		return ProductResponse{}, err
	}
	product.ShowPriceWithTax = req.ShowPriceWithTax
	product.ShowTaxString = req.ShowTaxString

	if err := s.products.Create(ctx, product); err != nil {
		return ProductResponse{}, fmt.Errorf("failed to create product: %w", err)
	}
	return toProductResponse(*product), nil
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (ProductResponse, error) {
	existing, err := s.products.FindByID(ctx, id)
	if err != nil {
		return ProductResponse{}, fmt.Errorf("failed to fetch product: %w", err)
	}

	updated, err := buildProduct(existing.SiteID, req.StockID, req.Title, req.BasePrice, req.Locale, req.TaxCategoryID, req.TaxRateID)
	if err != nil {
		return ProductResponse{}, err
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	updated.ShowPriceWithTax = req.ShowPriceWithTax
	updated.ShowTaxString = req.ShowTaxString

	if err := s.products.Update(ctx, updated); err != nil {
		return ProductResponse{}, fmt.Errorf("failed to update product: %w", err)
	}
	return toProductResponse(*updated), nil
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

// Pricing returns the full tax breakdown for a stored product,
// optionally pinned to an explicit buyer geo.
func (s *productService) Pricing(ctx context.Context, id uuid.UUID, country, region string, includeTax *bool) (QuoteResponse, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return QuoteResponse{}, fmt.Errorf("failed to fetch product: %w", err)
	}
	return s.pricing.QuoteEntity(product, country, region, includeTax)
}

// --- Helpers ---

func buildProduct(siteID uuid.UUID, stockID, title, basePrice, locale, categoryID, rateID string) (*model.Product, error) {
	base, err := decimal.NewFromString(basePrice)
	if err != nil {
		return nil, fmt.Errorf("invalid base price: %w", err)
	}

	product := &model.Product{
		StockID:   stockID,
		Title:     title,
		BasePrice: base,
		Locale:    locale,
		SiteID:    siteID,
	}

	if categoryID != "" {
		id, err := uuid.Parse(categoryID)
		if err != nil {
			return nil, fmt.Errorf("invalid tax category id: %w", err)
		}
		product.TaxCategoryID = &id
	}
	if rateID != "" {
		id, err := uuid.Parse(rateID)
		if err != nil {
			return nil, fmt.Errorf("invalid tax rate id: %w", err)
		}
		product.TaxRateID = &id
	}

	return product, nil
}

func toProductResponse(p model.Product) ProductResponse {
	res := ProductResponse{
		ID:               p.ID.String(),
		StockID:          p.StockID,
		Title:            p.Title,
		BasePrice:        p.BasePrice.String(),
		Locale:           p.Locale,
		SiteID:           p.SiteID.String(),
		ShowPriceWithTax: p.ShowPriceWithTax,
		ShowTaxString:    p.ShowTaxString,
		CreatedAt:        p.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if p.TaxCategoryID != nil {
		id := p.TaxCategoryID.String()
		res.TaxCategoryID = &id
	}
	if p.TaxRateID != nil {
		id := p.TaxRateID.String()
		res.TaxRateID = &id
	}
	return res
}
