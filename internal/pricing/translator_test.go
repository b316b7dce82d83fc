package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestTranslateFromCatalog(t *testing.T) {
	tr := NewCatalogTranslator("en_GB", NewDefaultCatalog())

	got := tr.Translate("TaxIncludes", "inc. {title}", map[string]string{"title": "VAT"})
	assert.Equal(t, "inc. VAT", got)

	got = tr.Translate("TaxExcludes", "ex. {title}", map[string]string{"title": "VAT"})
	assert.Equal(t, "ex. VAT", got)
}

func TestTranslateLocalizedCatalog(t *testing.T) {
	c := NewDefaultCatalog()
	c.SetString(language.German, "TaxIncludes", "inkl. {title}")

	tr := NewCatalogTranslator("de_DE", c)
	got := tr.Translate("TaxIncludes", "inc. {title}", map[string]string{"title": "MwSt"})
	assert.Equal(t, "inkl. MwSt", got)
}

func TestTranslateFallsBackToEnglish(t *testing.T) {
	tr := NewCatalogTranslator("fr_FR", NewDefaultCatalog())

	got := tr.Translate("TaxExcludes", "ex. {title}", map[string]string{"title": "TVA"})
	assert.Equal(t, "ex. TVA", got)
}

func TestTranslateMissingKeyUsesDefaultTemplate(t *testing.T) {
	tr := NewCatalogTranslator("en_GB", NewDefaultCatalog())

	got := tr.Translate("Unknown", "fallback {name}", map[string]string{"name": "x"})
	assert.Equal(t, "fallback x", got)

	got = tr.Translate("Unknown", "static fallback", nil)
	assert.Equal(t, "static fallback", got)
}
