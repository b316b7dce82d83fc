package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/silvercommerce/tax-admin/internal/model"
)

type TaxCategoryRepository interface {
	Create(ctx context.Context, category *model.TaxCategory) error
	Update(ctx context.Context, category *model.TaxCategory) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.TaxCategory, error)
	List(ctx context.Context, siteID uuid.UUID, page, limit int) ([]model.TaxCategory, int64, error)
	FindDefault(ctx context.Context, siteID uuid.UUID) (*model.TaxCategory, error)
	FindByTitle(ctx context.Context, siteID uuid.UUID, title string) (*model.TaxCategory, error)
	CountBySite(ctx context.Context, siteID uuid.UUID) (int64, error)
	DemoteSiblings(ctx context.Context, siteID, exceptID uuid.UUID) error
	AttachRate(ctx context.Context, assoc *model.CategoryRate) error
	DetachRate(ctx context.Context, categoryID, rateID uuid.UUID) error
}

type taxCategoryRepository struct {
	db *gorm.DB
}

func NewTaxCategoryRepository(db *gorm.DB) TaxCategoryRepository {
	return &taxCategoryRepository{db: db}
}

func (r *taxCategoryRepository) Create(ctx context.Context, category *model.TaxCategory) error {
	return GetDB(ctx, r.db).Create(category).Error
}

func (r *taxCategoryRepository) Update(ctx context.Context, category *model.TaxCategory) error {
	return GetDB(ctx, r.db).Save(category).Error
}

func (r *taxCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.TaxCategory{}).Error
}

func (r *taxCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.TaxCategory, error) {
	var category model.TaxCategory
	if err := GetDB(ctx, r.db).
		Preload("Rates", func(db *gorm.DB) *gorm.DB {
			return db.Order("category_rates.position asc")
		}).
		Preload("Rates.TaxRate.Zones.Regions").
		First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *taxCategoryRepository) List(ctx context.Context, siteID uuid.UUID, page, limit int) ([]model.TaxCategory, int64, error) {
	var categories []model.TaxCategory
	var total int64

	db := GetDB(ctx, r.db)
	if err := db.Model(&model.TaxCategory{}).Where("site_id = ?", siteID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := db.Where("site_id = ?", siteID).
		Preload("Rates", func(db *gorm.DB) *gorm.DB {
			return db.Order("category_rates.position asc")
		}).
		Preload("Rates.TaxRate.Zones.Regions").
		Order("title asc").
		Offset(offset).Limit(limit).
		Find(&categories).Error; err != nil {
		return nil, 0, err
	}

	return categories, total, nil
}

func (r *taxCategoryRepository) FindDefault(ctx context.Context, siteID uuid.UUID) (*model.TaxCategory, error) {
	var category model.TaxCategory
	if err := GetDB(ctx, r.db).
		Where("site_id = ? AND \"default\" = ?", siteID, true).
		Preload("Rates.TaxRate.Zones.Regions").
		First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *taxCategoryRepository) FindByTitle(ctx context.Context, siteID uuid.UUID, title string) (*model.TaxCategory, error) {
	var category model.TaxCategory
	if err := GetDB(ctx, r.db).
		Where("site_id = ? AND title = ?", siteID, title).
		First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *taxCategoryRepository) CountBySite(ctx context.Context, siteID uuid.UUID) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&model.TaxCategory{}).Where("site_id = ?", siteID).Count(&count).Error
	return count, err
}

// DemoteSiblings clears the default flag on every other category of the
// site. Callers run it inside the same transaction as the write that
// sets a new default, so exactly one default survives.
func (r *taxCategoryRepository) DemoteSiblings(ctx context.Context, siteID, exceptID uuid.UUID) error {
	return GetDB(ctx, r.db).
		Model(&model.TaxCategory{}).
		Where("site_id = ? AND id != ? AND \"default\" = ?", siteID, exceptID, true).
		Update("default", false).Error
}

func (r *taxCategoryRepository) AttachRate(ctx context.Context, assoc *model.CategoryRate) error {
	return GetDB(ctx, r.db).Create(assoc).Error
}

func (r *taxCategoryRepository) DetachRate(ctx context.Context, categoryID, rateID uuid.UUID) error {
	return GetDB(ctx, r.db).
		Where("tax_category_id = ? AND tax_rate_id = ?", categoryID, rateID).
		Delete(&model.CategoryRate{}).Error
}
