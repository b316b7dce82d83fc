package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/silvercommerce/tax-admin/internal/model"
)

type SiteRepository interface {
	Create(ctx context.Context, site *model.Site) error
	Update(ctx context.Context, site *model.Site) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Site, error)
	List(ctx context.Context, page, limit int) ([]model.Site, int64, error)
	EnsureDefault(ctx context.Context, name, defaultLocale string) (*model.Site, error)
}

type siteRepository struct {
	db *gorm.DB
}

func NewSiteRepository(db *gorm.DB) SiteRepository {
	return &siteRepository{db: db}
}

func (r *siteRepository) Create(ctx context.Context, site *model.Site) error {
	return GetDB(ctx, r.db).Create(site).Error
}

func (r *siteRepository) Update(ctx context.Context, site *model.Site) error {
	return GetDB(ctx, r.db).Save(site).Error
}

func (r *siteRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Site, error) {
	var site model.Site
	if err := GetDB(ctx, r.db).First(&site, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &site, nil
}

func (r *siteRepository) List(ctx context.Context, page, limit int) ([]model.Site, int64, error) {
	var sites []model.Site
	var total int64

	db := GetDB(ctx, r.db)
	if err := db.Model(&model.Site{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := db.Order("name asc").Offset(offset).Limit(limit).Find(&sites).Error; err != nil {
		return nil, 0, err
	}

	return sites, total, nil
}

// EnsureDefault returns the site with the given name, creating it on
// first boot.
func (r *siteRepository) EnsureDefault(ctx context.Context, name, defaultLocale string) (*model.Site, error) {
	site := model.Site{Name: name, DefaultLocale: defaultLocale}
	if err := GetDB(ctx, r.db).
		Where("name = ?", name).
		FirstOrCreate(&site).Error; err != nil {
		return nil, err
	}
	return &site, nil
}
