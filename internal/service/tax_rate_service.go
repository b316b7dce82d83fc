package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/silvercommerce/tax-admin/internal/model"
	"github.com/silvercommerce/tax-admin/internal/repository"
	"github.com/silvercommerce/tax-admin/internal/websocket"
)

// ErrNegativeRate rejects writes with a rate percentage below zero.
var ErrNegativeRate = errors.New("tax rate percentage must not be negative")

// Notifier pushes tax-config-change events to subscribed storefronts.
// The websocket hub is the production implementation.
type Notifier interface {
	NotifyConfigChange(eventType string, siteID, entityID uuid.UUID)
}

// NopNotifier discards every event; used in tests and one-shot tools.
type NopNotifier struct{}

func (NopNotifier) NotifyConfigChange(eventType string, siteID, entityID uuid.UUID) {}

// --- DTOs ---

type CreateTaxRateRequest struct {
	Title   string   `json:"title" binding:"required"`
	Rate    string   `json:"rate" binding:"required"` // Decimal string, e.g. "20" = 20%
	Global  bool     `json:"global"`
	ZoneIDs []string `json:"zone_ids"`
}

type UpdateTaxRateRequest struct {
	Title   string   `json:"title" binding:"required"`
	Rate    string   `json:"rate" binding:"required"`
	Global  bool     `json:"global"`
	ZoneIDs []string `json:"zone_ids"`
}

type TaxRateResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Rate      string `json:"rate"`
	Global    bool   `json:"global"`
	ZonesList string `json:"zones_list"`
	SiteID    string `json:"site_id"`
	CreatedAt string `json:"created_at"`
}

// --- Interface ---

type TaxRateService interface {
	List(ctx context.Context, siteID uuid.UUID, page, limit int) ([]TaxRateResponse, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*TaxRateResponse, error)
	Create(ctx context.Context, siteID uuid.UUID, req CreateTaxRateRequest) (TaxRateResponse, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateTaxRateRequest) (TaxRateResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type taxRateService struct {
	rates    repository.TaxRateRepository
	txm      repository.TransactionManager
	notifier Notifier
}

func NewTaxRateService(rates repository.TaxRateRepository, txm repository.TransactionManager, notifier Notifier) TaxRateService {
	return &taxRateService{rates: rates, txm: txm, notifier: notifier}
}

// --- Implementation ---

func (s *taxRateService) List(ctx context.Context, siteID uuid.UUID, page, limit int) ([]TaxRateResponse, int64, error) {
	rates, total, err := s.rates.List(ctx, siteID, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch tax rates: %w", err)
	}

	res := make([]TaxRateResponse, 0, len(rates))
	for _, r := range rates {
		res = append(res, toTaxRateResponse(r))
	}
	return res, total, nil
}

func (s *taxRateService) Get(ctx context.Context, id uuid.UUID) (*TaxRateResponse, error) {
	rate, err := s.rates.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tax rate: %w", err)
	}
	res := toTaxRateResponse(*rate)
	return &res, nil
}

func (s *taxRateService) Create(ctx context.Context, siteID uuid.UUID, req CreateTaxRateRequest) (TaxRateResponse, error) {
	percent, zoneIDs, err := parseTaxRateFields(req.Rate, req.ZoneIDs)
	if err != nil {
		return TaxRateResponse{}, err
	}

	rate := model.TaxRate{
		Title:  req.Title,
		Rate:   percent,
		Global: req.Global,
		SiteID: siteID,
	}

	err = s.txm.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.rates.Create(txCtx, &rate); err != nil {
			return fmt.Errorf("failed to create tax rate: %w", err)
		}
		if len(zoneIDs) > 0 {
			if err := s.rates.ReplaceZones(txCtx, &rate, zoneIDs); err != nil {
				return fmt.Errorf("failed to attach zones: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return TaxRateResponse{}, err
	}

	s.notifier.NotifyConfigChange(websocket.EventRateChanged, siteID, rate.ID)
	return toTaxRateResponse(rate), nil
}

func (s *taxRateService) Update(ctx context.Context, id uuid.UUID, req UpdateTaxRateRequest) (TaxRateResponse, error) {
	percent, zoneIDs, err := parseTaxRateFields(req.Rate, req.ZoneIDs)
	if err != nil {
		return TaxRateResponse{}, err
	}

	rate, err := s.rates.FindByID(ctx, id)
	if err != nil {
		return TaxRateResponse{}, fmt.Errorf("failed to fetch tax rate: %w", err)
	}

	rate.Title = req.Title
	rate.Rate = percent
	rate.Global = req.Global

	err = s.txm.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.rates.Update(txCtx, rate); err != nil {
			return fmt.Errorf("failed to update tax rate: %w", err)
		}
		return s.rates.ReplaceZones(txCtx, rate, zoneIDs)
	})
	if err != nil {
		return TaxRateResponse{}, err
	}

	s.notifier.NotifyConfigChange(websocket.EventRateChanged, rate.SiteID, rate.ID)
	return toTaxRateResponse(*rate), nil
}

func (s *taxRateService) Delete(ctx context.Context, id uuid.UUID) error {
	rate, err := s.rates.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch tax rate: %w", err)
	}

	if err := s.rates.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete tax rate: %w", err)
	}

	s.notifier.NotifyConfigChange(websocket.EventRateDeleted, rate.SiteID, rate.ID)
	return nil
}

// --- Helpers ---

func parseTaxRateFields(rate string, zoneIDs []string) (decimal.Decimal, []uuid.UUID, error) {
	percent, err := decimal.NewFromString(rate)
	if err != nil {
		return decimal.Decimal{}, nil, fmt.Errorf("invalid rate: %w", err)
	}
	if percent.IsNegative() {
		return decimal.Decimal{}, nil, ErrNegativeRate
	}

	ids := make([]uuid.UUID, 0, len(zoneIDs))
	for _, raw := range zoneIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return decimal.Decimal{}, nil, fmt.Errorf("invalid zone id %q: %w", raw, err)
		}
		ids = append(ids, id)
	}

	return percent, ids, nil
}

func toTaxRateResponse(r model.TaxRate) TaxRateResponse {
	return TaxRateResponse{
		ID:        r.ID.String(),
		Title:     r.Title,
		Rate:      r.Rate.String(),
		Global:    r.Global,
		ZonesList: r.ZonesList(),
		SiteID:    r.SiteID.String(),
		CreatedAt: r.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
