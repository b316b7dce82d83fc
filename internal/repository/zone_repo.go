package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/silvercommerce/tax-admin/internal/model"
)

type ZoneRepository interface {
	Create(ctx context.Context, zone *model.Zone) error
	Update(ctx context.Context, zone *model.Zone) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Zone, error)
	List(ctx context.Context, siteID uuid.UUID, page, limit int) ([]model.Zone, int64, error)
	ReplaceRegions(ctx context.Context, zone *model.Zone, regions []model.Region) error
}

type zoneRepository struct {
	db *gorm.DB
}

func NewZoneRepository(db *gorm.DB) ZoneRepository {
	return &zoneRepository{db: db}
}

func (r *zoneRepository) Create(ctx context.Context, zone *model.Zone) error {
	return GetDB(ctx, r.db).Create(zone).Error
}

func (r *zoneRepository) Update(ctx context.Context, zone *model.Zone) error {
	return GetDB(ctx, r.db).Save(zone).Error
}

func (r *zoneRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.Zone{}).Error
}

func (r *zoneRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Zone, error) {
	var zone model.Zone
	if err := GetDB(ctx, r.db).
		Preload("Regions").
		First(&zone, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &zone, nil
}

func (r *zoneRepository) List(ctx context.Context, siteID uuid.UUID, page, limit int) ([]model.Zone, int64, error) {
	var zones []model.Zone
	var total int64

	db := GetDB(ctx, r.db)
	if err := db.Model(&model.Zone{}).Where("site_id = ?", siteID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := db.Where("site_id = ?", siteID).
		Preload("Regions").
		Order("name asc").
		Offset(offset).Limit(limit).
		Find(&zones).Error; err != nil {
		return nil, 0, err
	}

	return zones, total, nil
}

// ReplaceRegions swaps the zone's region rows for the given set.
func (r *zoneRepository) ReplaceRegions(ctx context.Context, zone *model.Zone, regions []model.Region) error {
	return GetDB(ctx, r.db).Model(zone).Association("Regions").Replace(regions)
}
