package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Site represents a single storefront tenant. Every tax rate and tax
// category belongs to exactly one site, and the default-category
// invariant is enforced per site.
type Site struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name          string         `gorm:"type:varchar(255);not null" json:"name"`
	DefaultLocale string         `gorm:"type:varchar(20);default:'en_GB'" json:"default_locale"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
