package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/silvercommerce/tax-admin/internal/model"
	"github.com/silvercommerce/tax-admin/internal/repository"
	"github.com/silvercommerce/tax-admin/internal/websocket"
)

// --- DTOs ---

type CreateTaxCategoryRequest struct {
	Title   string `json:"title" binding:"required"`
	Default bool   `json:"default"`
}

type UpdateTaxCategoryRequest struct {
	Title   string `json:"title" binding:"required"`
	Default bool   `json:"default"`
}

type AttachRateRequest struct {
	TaxRateID string `json:"tax_rate_id" binding:"required"`
	Position  int    `json:"position"`
	Location  int    `json:"location" binding:"omitempty,oneof=0 1 2"`
}

type TaxCategoryResponse struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Default   bool              `json:"default"`
	SiteID    string            `json:"site_id"`
	RatesList string            `json:"rates_list"`
	Rates     []TaxRateResponse `json:"rates"`
	CreatedAt string            `json:"created_at"`
}

// --- Interface ---

type TaxCategoryService interface {
	List(ctx context.Context, siteID uuid.UUID, page, limit int) ([]TaxCategoryResponse, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*TaxCategoryResponse, error)
	Create(ctx context.Context, siteID uuid.UUID, req CreateTaxCategoryRequest) (TaxCategoryResponse, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateTaxCategoryRequest) (TaxCategoryResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetDefault(ctx context.Context, id uuid.UUID) error
	AttachRate(ctx context.Context, categoryID uuid.UUID, req AttachRateRequest) error
	DetachRate(ctx context.Context, categoryID, rateID uuid.UUID) error
	SeedDefaults(ctx context.Context, siteID uuid.UUID) error
}

type taxCategoryService struct {
	categories repository.TaxCategoryRepository
	rates      repository.TaxRateRepository
	txm        repository.TransactionManager
	notifier   Notifier
}

func NewTaxCategoryService(
	categories repository.TaxCategoryRepository,
	rates repository.TaxRateRepository,
	txm repository.TransactionManager,
	notifier Notifier,
) TaxCategoryService {
	return &taxCategoryService{categories: categories, rates: rates, txm: txm, notifier: notifier}
}

// --- Implementation ---

func (s *taxCategoryService) List(ctx context.Context, siteID uuid.UUID, page, limit int) ([]TaxCategoryResponse, int64, error) {
	categories, total, err := s.categories.List(ctx, siteID, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch tax categories: %w", err)
	}

	res := make([]TaxCategoryResponse, 0, len(categories))
	for _, c := range categories {
		res = append(res, toTaxCategoryResponse(c))
	}
	return res, total, nil
}

func (s *taxCategoryService) Get(ctx context.Context, id uuid.UUID) (*TaxCategoryResponse, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tax category: %w", err)
	}
	res := toTaxCategoryResponse(*category)
	return &res, nil
}

func (s *taxCategoryService) Create(ctx context.Context, siteID uuid.UUID, req CreateTaxCategoryRequest) (TaxCategoryResponse, error) {
	category := model.TaxCategory{
		Title:   req.Title,
		Default: req.Default,
		SiteID:  siteID,
	}

	err := s.txm.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.categories.Create(txCtx, &category); err != nil {
			return fmt.Errorf("failed to create tax category: %w", err)
		}
		if category.Default {
			return s.categories.DemoteSiblings(txCtx, siteID, category.ID)
		}
		return nil
	})
	if err != nil {
		return TaxCategoryResponse{}, err
	}

	s.notifier.NotifyConfigChange(websocket.EventCategoryChanged, siteID, category.ID)
	return toTaxCategoryResponse(category), nil
}

func (s *taxCategoryService) Update(ctx context.Context, id uuid.UUID, req UpdateTaxCategoryRequest) (TaxCategoryResponse, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return TaxCategoryResponse{}, fmt.Errorf("failed to fetch tax category: %w", err)
	}

	category.Title = req.Title
	category.Default = req.Default

	err = s.txm.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.categories.Update(txCtx, category); err != nil {
			return fmt.Errorf("failed to update tax category: %w", err)
		}
		if category.Default {
			return s.categories.DemoteSiblings(txCtx, category.SiteID, category.ID)
		}
		return nil
	})
	if err != nil {
		return TaxCategoryResponse{}, err
	}

	s.notifier.NotifyConfigChange(websocket.EventCategoryChanged, category.SiteID, category.ID)
	return toTaxCategoryResponse(*category), nil
}

func (s *taxCategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch tax category: %w", err)
	}

	if err := s.categories.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete tax category: %w", err)
	}

	s.notifier.NotifyConfigChange(websocket.EventCategoryDeleted, category.SiteID, category.ID)
	return nil
}

// SetDefault promotes the category to the site default and demotes
// every sibling in the same transaction, so exactly one default
// remains per site.
func (s *taxCategoryService) SetDefault(ctx context.Context, id uuid.UUID) error {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch tax category: %w", err)
	}

	category.Default = true
	err = s.txm.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.categories.Update(txCtx, category); err != nil {
			return fmt.Errorf("failed to update tax category: %w", err)
		}
		return s.categories.DemoteSiblings(txCtx, category.SiteID, category.ID)
	})
	if err != nil {
		return err
	}

	s.notifier.NotifyConfigChange(websocket.EventCategoryChanged, category.SiteID, category.ID)
	return nil
}

func (s *taxCategoryService) AttachRate(ctx context.Context, categoryID uuid.UUID, req AttachRateRequest) error {
	rateID, err := uuid.Parse(req.TaxRateID)
	if err != nil {
		return fmt.Errorf("invalid tax rate id: %w", err)
	}

	category, err := s.categories.FindByID(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("failed to fetch tax category: %w", err)
	}

	assoc := model.CategoryRate{
		TaxCategoryID: categoryID,
		TaxRateID:     rateID,
		Position:      req.Position,
		Location:      req.Location,
	}
	if err := s.categories.AttachRate(ctx, &assoc); err != nil {
		return fmt.Errorf("failed to attach rate: %w", err)
	}

	s.notifier.NotifyConfigChange(websocket.EventCategoryChanged, category.SiteID, categoryID)
	return nil
}

func (s *taxCategoryService) DetachRate(ctx context.Context, categoryID, rateID uuid.UUID) error {
	category, err := s.categories.FindByID(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("failed to fetch tax category: %w", err)
	}

	if err := s.categories.DetachRate(ctx, categoryID, rateID); err != nil {
		return fmt.Errorf("failed to detach rate: %w", err)
	}

	s.notifier.NotifyConfigChange(websocket.EventCategoryChanged, category.SiteID, categoryID)
	return nil
}

// SeedDefaults installs the stock tax configuration for a new site: a
// "Standard Goods" default category with the usual UK rates attached.
// Idempotent per site; an already-seeded site is left untouched.
func (s *taxCategoryService) SeedDefaults(ctx context.Context, siteID uuid.UUID) error {
	count, err := s.categories.CountBySite(ctx, siteID)
	if err != nil {
		return fmt.Errorf("failed to count tax categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	seedRates := []model.TaxRate{
		{Title: "VAT", Rate: decimal.NewFromInt(20), SiteID: siteID},
		{Title: "Reduced rate", Rate: decimal.NewFromInt(5), SiteID: siteID},
		{Title: "Zero rate", Rate: decimal.NewFromInt(0), SiteID: siteID},
	}

	err = s.txm.RunInTx(ctx, func(txCtx context.Context) error {
		for i := range seedRates {
			existing, err := s.rates.FindByTitle(txCtx, siteID, seedRates[i].Title)
			switch {
			case err == nil:
				seedRates[i] = *existing
			case errors.Is(err, gorm.ErrRecordNotFound):
				if err := s.rates.Create(txCtx, &seedRates[i]); err != nil {
					return fmt.Errorf("failed to seed tax rate %q: %w", seedRates[i].Title, err)
				}
			default:
				return fmt.Errorf("failed to look up tax rate %q: %w", seedRates[i].Title, err)
			}
		}

		category := model.TaxCategory{
			Title:   "Standard Goods",
			Default: true,
			SiteID:  siteID,
		}
		if err := s.categories.Create(txCtx, &category); err != nil {
			return fmt.Errorf("failed to seed tax category: %w", err)
		}
		if err := s.categories.DemoteSiblings(txCtx, siteID, category.ID); err != nil {
			return err
		}

		assoc := model.CategoryRate{
			TaxCategoryID: category.ID,
			TaxRateID:     seedRates[0].ID,
			Position:      0,
			Location:      model.LocationShipping,
		}
		if err := s.categories.AttachRate(txCtx, &assoc); err != nil {
			return fmt.Errorf("failed to seed category rate: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info().Str("site_id", siteID.String()).Msg("seeded default tax configuration")
	return nil
}

// --- Helpers ---

func toTaxCategoryResponse(c model.TaxCategory) TaxCategoryResponse {
	rates := make([]TaxRateResponse, 0, len(c.Rates))
	for _, rate := range c.OrderedRates() {
		rates = append(rates, toTaxRateResponse(rate))
	}
	return TaxCategoryResponse{
		ID:        c.ID.String(),
		Title:     c.Title,
		Default:   c.Default,
		SiteID:    c.SiteID.String(),
		RatesList: c.RatesList(),
		Rates:     rates,
		CreatedAt: c.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
