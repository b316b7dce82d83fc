package pricing

import (
	"strings"

	"golang.org/x/text/language"
)

// StaticLocaleProvider is the stock LocaleProvider: a fixed process
// default plus an optional per-request actor locale.
type StaticLocaleProvider struct {
	Default string
	Actor   string
}

func (p StaticLocaleProvider) CurrentLocale() string { return p.Default }

func (p StaticLocaleProvider) CurrentActorLocale() string { return p.Actor }

// CountryFromLocale normalizes a locale tag down to its 2-letter
// region component: "en_GB" and "en-GB" both yield "GB", a bare
// country code passes through, and anything unresolvable yields "".
func CountryFromLocale(locale string) string {
	if locale == "" {
		return ""
	}
	if len(locale) == 2 {
		region, err := language.ParseRegion(strings.ToUpper(locale))
		if err != nil || !region.IsCountry() {
			return ""
		}
		return region.String()
	}

	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return ""
	}

	// only a region spelled out in the tag counts; inferred regions
	// would turn "pt" into "BR"
	region, conf := tag.Region()
	if conf != language.Exact || !region.IsCountry() {
		return ""
	}
	return region.String()
}
