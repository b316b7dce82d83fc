package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountryFromLocale(t *testing.T) {
	tests := []struct {
		locale string
		want   string
	}{
		{"en_GB", "GB"},
		{"en-GB", "GB"},
		{"de_DE", "DE"},
		{"en_US", "US"},
		{"gb", "GB"},
		{"GB", "GB"},
		{"", ""},
		{"not a locale", ""},
		{"en", ""}, // language without a region is not a country
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CountryFromLocale(tt.locale), "locale %q", tt.locale)
	}
}

func TestStaticLocaleProvider(t *testing.T) {
	p := StaticLocaleProvider{Default: "en_GB", Actor: "de_DE"}
	assert.Equal(t, "en_GB", p.CurrentLocale())
	assert.Equal(t, "de_DE", p.CurrentActorLocale())

	empty := StaticLocaleProvider{}
	assert.Equal(t, "", empty.CurrentLocale())
	assert.Equal(t, "", empty.CurrentActorLocale())
}
