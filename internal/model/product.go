package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product is a sellable entity priced by the tax engine. BasePrice is
// tax exclusive; the effective tax rate comes from the explicit
// TaxRate override when set, otherwise from the TaxCategory.
type Product struct {
	ID            uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	StockID       string          `gorm:"type:varchar(100);uniqueIndex;not null" json:"stock_id"`
	Title         string          `gorm:"type:varchar(255);not null" json:"title"`
	BasePrice     decimal.Decimal `gorm:"type:decimal(12,4);not null" json:"base_price"`
	Locale        string          `gorm:"type:varchar(20)" json:"locale"` // empty = site default
	SiteID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"site_id"`
	TaxCategoryID *uuid.UUID      `gorm:"type:uuid;index" json:"tax_category_id"`
	TaxCategory   *TaxCategory    `gorm:"foreignKey:TaxCategoryID" json:"tax_category,omitempty"`
	TaxRateID     *uuid.UUID      `gorm:"type:uuid;index" json:"tax_rate_id"`
	TaxRate       *TaxRate        `gorm:"foreignKey:TaxRateID" json:"tax_rate,omitempty"`
	// Per-product display preferences; null falls back to the site-wide
	// pricing defaults.
	ShowPriceWithTax *bool          `gorm:"type:boolean" json:"show_price_with_tax,omitempty"`
	ShowTaxString    *bool          `gorm:"type:boolean" json:"show_tax_string,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

// GetBasePrice returns the tax-exclusive price.
func (p *Product) GetBasePrice() decimal.Decimal { return p.BasePrice }

// GetTaxRate returns the explicit rate override, nil when unset.
func (p *Product) GetTaxRate() *TaxRate { return p.TaxRate }

// GetTaxCategory returns the product's category, nil when unset.
func (p *Product) GetTaxCategory() *TaxCategory { return p.TaxCategory }

// GetLocale returns the product's own locale, empty when it should
// fall back to the ambient locale chain.
func (p *Product) GetLocale() string { return p.Locale }

// GetShowPriceWithTax returns the product's display preference, nil
// when the site default applies.
func (p *Product) GetShowPriceWithTax() *bool { return p.ShowPriceWithTax }

// GetShowTaxString returns the product's tax-label preference, nil
// when the site default applies.
func (p *Product) GetShowTaxString() *bool { return p.ShowTaxString }

// Exists reports whether the product has a persisted identity. An
// unsaved product has no committed price to tax.
func (p *Product) Exists() bool { return p.ID != uuid.Nil }
