package model

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Location tags recorded per category-rate association. They are not
// consumed by rate resolution; downstream address-selection logic uses
// them to decide which of the buyer's addresses a rate keys off.
const (
	LocationShipping = iota
	LocationBilling
	LocationStore
)

// TaxCategory is a named bucket of rates for a class of goods. At most
// one category per site carries Default=true; the write path enforces
// this by demoting siblings in the same transaction.
type TaxCategory struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title     string         `gorm:"type:varchar(255);not null" json:"title"`
	Default   bool           `gorm:"default:false;index" json:"default"`
	SiteID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"site_id"`
	Rates     []CategoryRate `gorm:"foreignKey:TaxCategoryID;constraint:OnDelete:CASCADE" json:"rates"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// CategoryRate is the ordered association between a category and a
// rate. Position controls resolution precedence; Location is an
// auxiliary tag (see Location constants).
type CategoryRate struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TaxCategoryID uuid.UUID `gorm:"type:uuid;not null;index" json:"tax_category_id"`
	TaxRateID     uuid.UUID `gorm:"type:uuid;not null;index" json:"tax_rate_id"`
	TaxRate       TaxRate   `gorm:"foreignKey:TaxRateID" json:"tax_rate"`
	Position      int       `gorm:"type:int;not null;default:0" json:"position"`
	Location      int       `gorm:"type:int;not null;default:0" json:"location"`
	CreatedAt     time.Time `json:"created_at"`
}

// OrderedRates returns the category's rates in declared position order.
func (c TaxCategory) OrderedRates() []TaxRate {
	assocs := make([]CategoryRate, len(c.Rates))
	copy(assocs, c.Rates)
	sort.SliceStable(assocs, func(i, j int) bool {
		return assocs[i].Position < assocs[j].Position
	})

	rates := make([]TaxRate, 0, len(assocs))
	for _, a := range assocs {
		rates = append(rates, a.TaxRate)
	}
	return rates
}

// ResolveRate returns the first rate, in declared order, applicable to
// the given country and optional subdivision. Precedence is entirely
// positional: a global rate at the front of the list shadows every
// geo-scoped rate behind it. When nothing matches the sentinel no-rate
// is returned with ok=false; resolution never fails.
func (c TaxCategory) ResolveRate(country, subdivision string) (TaxRate, bool) {
	for _, rate := range c.OrderedRates() {
		if rate.AppliesTo(country, subdivision) {
			return rate, true
		}
	}
	return SentinelRate(), false
}

// RatesList returns a comma-separated list of rate titles, for summary
// display.
func (c TaxCategory) RatesList() string {
	titles := make([]string, 0, len(c.Rates))
	for _, rate := range c.OrderedRates() {
		titles = append(titles, rate.Title)
	}
	return strings.Join(titles, ", ")
}
