package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TaxRate maps a class of goods to a percentage of tax. A rate is
// either global (applies irrespective of the buyer's location) or
// scoped to one or more geographic zones.
type TaxRate struct {
	ID        uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title     string          `gorm:"type:varchar(255);not null" json:"title"`
	Rate      decimal.Decimal `gorm:"type:decimal(10,4);not null" json:"rate"` // percentage, e.g. 20 = 20%
	Global    bool            `gorm:"default:false" json:"global"`
	SiteID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"site_id"`
	Zones     []Zone          `gorm:"many2many:tax_rate_zones" json:"zones,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt gorm.DeletedAt  `gorm:"index" json:"-"`
}

// SentinelRate returns the identity-less zero rate used whenever no
// real rate resolves. It keeps downstream arithmetic total: callers
// distinguish it from a persisted zero-rate record via Exists, never
// via nil.
func SentinelRate() TaxRate {
	return TaxRate{Rate: decimal.Zero}
}

// Exists reports whether the rate is a persisted record rather than
// the sentinel no-rate.
func (r TaxRate) Exists() bool {
	return r.ID != uuid.Nil
}

// AppliesTo reports whether the rate is a candidate for the given
// geo-context: either the rate is global, or one of its zones contains
// a region matching the country (and subdivision, when supplied).
func (r TaxRate) AppliesTo(country, subdivision string) bool {
	if r.Global {
		return true
	}
	for _, zone := range r.Zones {
		if zone.Contains(country, subdivision) {
			return true
		}
	}
	return false
}

// ZonesList returns a comma-separated list of zone names, for summary
// display.
func (r TaxRate) ZonesList() string {
	names := make([]string, 0, len(r.Zones))
	for _, zone := range r.Zones {
		names = append(names, zone.Name)
	}
	return strings.Join(names, ", ")
}
