package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/silvercommerce/tax-admin/internal/model"
)

type TaxRateRepository interface {
	Create(ctx context.Context, rate *model.TaxRate) error
	Update(ctx context.Context, rate *model.TaxRate) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.TaxRate, error)
	List(ctx context.Context, siteID uuid.UUID, page, limit int) ([]model.TaxRate, int64, error)
	ReplaceZones(ctx context.Context, rate *model.TaxRate, zoneIDs []uuid.UUID) error
	FindByTitle(ctx context.Context, siteID uuid.UUID, title string) (*model.TaxRate, error)
}

type taxRateRepository struct {
	db *gorm.DB
}

func NewTaxRateRepository(db *gorm.DB) TaxRateRepository {
	return &taxRateRepository{db: db}
}

func (r *taxRateRepository) Create(ctx context.Context, rate *model.TaxRate) error {
	return GetDB(ctx, r.db).Create(rate).Error
}

func (r *taxRateRepository) Update(ctx context.Context, rate *model.TaxRate) error {
	return GetDB(ctx, r.db).Save(rate).Error
}

func (r *taxRateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.TaxRate{}).Error
}

func (r *taxRateRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.TaxRate, error) {
	var rate model.TaxRate
	if err := GetDB(ctx, r.db).
		Preload("Zones.Regions").
		First(&rate, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rate, nil
}

func (r *taxRateRepository) List(ctx context.Context, siteID uuid.UUID, page, limit int) ([]model.TaxRate, int64, error) {
	var rates []model.TaxRate
	var total int64

	db := GetDB(ctx, r.db)
	if err := db.Model(&model.TaxRate{}).Where("site_id = ?", siteID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := db.Where("site_id = ?", siteID).
		Preload("Zones.Regions").
		Order("title asc").
		Offset(offset).Limit(limit).
		Find(&rates).Error; err != nil {
		return nil, 0, err
	}

	return rates, total, nil
}

// ReplaceZones swaps the rate's zone associations for the given set.
func (r *taxRateRepository) ReplaceZones(ctx context.Context, rate *model.TaxRate, zoneIDs []uuid.UUID) error {
	zones := make([]model.Zone, len(zoneIDs))
	for i, id := range zoneIDs {
		zones[i] = model.Zone{ID: id}
	}
	return GetDB(ctx, r.db).Model(rate).Association("Zones").Replace(zones)
}

func (r *taxRateRepository) FindByTitle(ctx context.Context, siteID uuid.UUID, title string) (*model.TaxRate, error) {
	var rate model.TaxRate
	if err := GetDB(ctx, r.db).
		Where("site_id = ? AND title = ?", siteID, title).
		First(&rate).Error; err != nil {
		return nil, err
	}
	return &rate, nil
}
