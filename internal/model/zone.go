package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Zone is a named geographic grouping of regions that a tax rate can be
// scoped to (e.g. "UK", "EU").
type Zone struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string         `gorm:"type:varchar(255);not null" json:"name"`
	SiteID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"site_id"`
	Regions   []Region       `gorm:"foreignKey:ZoneID;constraint:OnDelete:CASCADE" json:"regions"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Region is a single entry within a zone: an ISO-3166 2-letter country
// code plus an optional ISO-3166-2 subdivision code.
type Region struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ZoneID      uuid.UUID `gorm:"type:uuid;not null;index" json:"zone_id"`
	Name        string    `gorm:"type:varchar(255)" json:"name"`
	CountryCode string    `gorm:"type:varchar(2);not null;index" json:"country_code"`
	Code        string    `gorm:"type:varchar(3)" json:"code"` // subdivision, optional
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Matches reports whether this region covers the given country and,
// when a subdivision is supplied, that specific subdivision. A supplied
// subdivision narrows the match; it never broadens it.
func (r Region) Matches(country, subdivision string) bool {
	if !strings.EqualFold(r.CountryCode, country) {
		return false
	}
	if subdivision == "" {
		return true
	}
	return strings.EqualFold(r.Code, subdivision)
}

// Contains reports whether any region of the zone matches the given
// country and optional subdivision.
func (z Zone) Contains(country, subdivision string) bool {
	for _, region := range z.Regions {
		if region.Matches(country, subdivision) {
			return true
		}
	}
	return false
}
