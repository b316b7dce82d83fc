package pricing

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// CatalogTranslator resolves message keys against an x/text message
// catalog and substitutes {name} placeholders. Keys missing from the
// catalog fall back to the caller's default template, so the pipeline
// always renders something sensible.
type CatalogTranslator struct {
	printer *message.Printer
}

// NewCatalogTranslator builds a translator for the given locale over a
// catalog. Use NewDefaultCatalog for the stock English tax labels.
func NewCatalogTranslator(locale string, c catalog.Catalog) *CatalogTranslator {
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		tag = language.English
	}
	return &CatalogTranslator{
		printer: message.NewPrinter(tag, message.Catalog(c)),
	}
}

// NewDefaultCatalog returns a catalog seeded with the English tax label
// messages. Hosts add their own languages on top.
func NewDefaultCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	b.SetString(language.English, "TaxIncludes", "inc. {title}")
	b.SetString(language.English, "TaxExcludes", "ex. {title}")
	return b
}

// Translate looks up key in the catalog, falls back to defaultTemplate
// when the catalog has nothing better than the key itself, then
// substitutes {name} placeholders.
func (t *CatalogTranslator) Translate(key, defaultTemplate string, placeholders map[string]string) string {
	tmpl := t.printer.Sprintf(key)
	if tmpl == "" || tmpl == key {
		tmpl = defaultTemplate
	}

	if len(placeholders) == 0 {
		return tmpl
	}
	pairs := make([]string, 0, len(placeholders)*2)
	for name, value := range placeholders {
		pairs = append(pairs, "{"+name+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}
