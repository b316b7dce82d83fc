package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/silvercommerce/tax-admin/internal/model"
	"github.com/silvercommerce/tax-admin/internal/repository"
	"github.com/silvercommerce/tax-admin/internal/websocket"
)

// --- DTOs ---

type RegionRequest struct {
	Name        string `json:"name"`
	CountryCode string `json:"country_code" binding:"required,len=2"`
	Code        string `json:"code" binding:"omitempty,max=3"` // subdivision
}

type CreateZoneRequest struct {
	Name    string          `json:"name" binding:"required"`
	Regions []RegionRequest `json:"regions" binding:"dive"`
}

type UpdateZoneRequest struct {
	Name    string          `json:"name" binding:"required"`
	Regions []RegionRequest `json:"regions" binding:"dive"`
}

type RegionResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	CountryCode string `json:"country_code"`
	Code        string `json:"code"`
}

type ZoneResponse struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	SiteID  string           `json:"site_id"`
	Regions []RegionResponse `json:"regions"`
}

// --- Interface ---

type ZoneService interface {
	List(ctx context.Context, siteID uuid.UUID, page, limit int) ([]ZoneResponse, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*ZoneResponse, error)
	Create(ctx context.Context, siteID uuid.UUID, req CreateZoneRequest) (ZoneResponse, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateZoneRequest) (ZoneResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type zoneService struct {
	zones    repository.ZoneRepository
	txm      repository.TransactionManager
	notifier Notifier
}

func NewZoneService(zones repository.ZoneRepository, txm repository.TransactionManager, notifier Notifier) ZoneService {
	return &zoneService{zones: zones, txm: txm, notifier: notifier}
}

// --- Implementation ---

func (s *zoneService) List(ctx context.Context, siteID uuid.UUID, page, limit int) ([]ZoneResponse, int64, error) {
	zones, total, err := s.zones.List(ctx, siteID, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch zones: %w", err)
	}

	res := make([]ZoneResponse, 0, len(zones))
	for _, z := range zones {
		res = append(res, toZoneResponse(z))
	}
	return res, total, nil
}

func (s *zoneService) Get(ctx context.Context, id uuid.UUID) (*ZoneResponse, error) {
	zone, err := s.zones.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch zone: %w", err)
	}
	res := toZoneResponse(*zone)
	return &res, nil
}

func (s *zoneService) Create(ctx context.Context, siteID uuid.UUID, req CreateZoneRequest) (ZoneResponse, error) {
	zone := model.Zone{
		Name:    req.Name,
		SiteID:  siteID,
		Regions: toRegions(req.Regions),
	}

	if err := s.zones.Create(ctx, &zone); err != nil {
		return ZoneResponse{}, fmt.Errorf("failed to create zone: %w", err)
	}

	s.notifier.NotifyConfigChange(websocket.EventZoneChanged, siteID, zone.ID)
	return toZoneResponse(zone), nil
}

func (s *zoneService) Update(ctx context.Context, id uuid.UUID, req UpdateZoneRequest) (ZoneResponse, error) {
	zone, err := s.zones.FindByID(ctx, id)
	if err != nil {
		return ZoneResponse{}, fmt.Errorf("failed to fetch zone: %w", err)
	}

	zone.Name = req.Name

	err = s.txm.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.zones.Update(txCtx, zone); err != nil {
			return fmt.Errorf("failed to update zone: %w", err)
		}
		return s.zones.ReplaceRegions(txCtx, zone, toRegions(req.Regions))
	})
	if err != nil {
		return ZoneResponse{}, err
	}

	updated, err := s.zones.FindByID(ctx, id)
	if err != nil {
		return ZoneResponse{}, fmt.Errorf("failed to reload zone: %w", err)
	}

	s.notifier.NotifyConfigChange(websocket.EventZoneChanged, zone.SiteID, zone.ID)
	return toZoneResponse(*updated), nil
}

func (s *zoneService) Delete(ctx context.Context, id uuid.UUID) error {
	zone, err := s.zones.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch zone: %w", err)
	}

	if err := s.zones.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete zone: %w", err)
	}

	s.notifier.NotifyConfigChange(websocket.EventZoneChanged, zone.SiteID, zone.ID)
	return nil
}

// --- Helpers ---

func toRegions(reqs []RegionRequest) []model.Region {
	regions := make([]model.Region, 0, len(reqs))
	for _, r := range reqs {
		regions = append(regions, model.Region{
			Name:        r.Name,
			CountryCode: r.CountryCode,
			Code:        r.Code,
		})
	}
	return regions
}

func toZoneResponse(z model.Zone) ZoneResponse {
	regions := make([]RegionResponse, 0, len(z.Regions))
	for _, r := range z.Regions {
		regions = append(regions, RegionResponse{
			ID:          r.ID.String(),
			Name:        r.Name,
			CountryCode: r.CountryCode,
			Code:        r.Code,
		})
	}
	return ZoneResponse{
		ID:      z.ID.String(),
		Name:    z.Name,
		SiteID:  z.SiteID.String(),
		Regions: regions,
	}
}
