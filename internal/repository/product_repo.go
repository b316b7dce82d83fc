package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/silvercommerce/tax-admin/internal/model"
)

type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	FindByStockID(ctx context.Context, siteID uuid.UUID, stockID string) (*model.Product, error)
	List(ctx context.Context, siteID uuid.UUID, page, limit int, search string) ([]model.Product, int64, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

// taxPreloads loads everything rate resolution needs in one query tree.
func taxPreloads(db *gorm.DB) *gorm.DB {
	return db.
		Preload("TaxRate.Zones.Regions").
		Preload("TaxCategory.Rates", func(db *gorm.DB) *gorm.DB {
			return db.Order("category_rates.position asc")
		}).
		Preload("TaxCategory.Rates.TaxRate.Zones.Regions")
}

func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	return GetDB(ctx, r.db).Create(product).Error
}

func (r *productRepository) Update(ctx context.Context, product *model.Product) error {
	return GetDB(ctx, r.db).Save(product).Error
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.Product{}).Error
}

func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	var product model.Product
	if err := taxPreloads(GetDB(ctx, r.db)).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) FindByStockID(ctx context.Context, siteID uuid.UUID, stockID string) (*model.Product, error) {
	var product model.Product
	if err := taxPreloads(GetDB(ctx, r.db)).
		Where("site_id = ? AND stock_id = ?", siteID, stockID).
		First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) List(ctx context.Context, siteID uuid.UUID, page, limit int, search string) ([]model.Product, int64, error) {
	var products []model.Product
	var total int64

	db := GetDB(ctx, r.db)
	query := db.Model(&model.Product{}).Where("site_id = ?", siteID)
	if search != "" {
		query = query.Where("title ILIKE ? OR stock_id ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	find := taxPreloads(db).Where("site_id = ?", siteID)
	if search != "" {
		find = find.Where("title ILIKE ? OR stock_id ILIKE ?", "%"+search+"%", "%"+search+"%")
	}
	if err := find.Order("title asc").Offset(offset).Limit(limit).Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, total, nil
}
