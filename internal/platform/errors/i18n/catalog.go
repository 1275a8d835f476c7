// Package i18n renders user-facing error messages from the locale catalogs.
package i18n

import (
	"strings"
	"sync"
	"text/template"

	i18ncatalog "github.com/louisbranch/apollo/internal/platform/i18n/catalog"
)

const errorsNamespace = "errors"

// Code mirrors errors.Code so this package stays below it in the import graph.
type Code = string

// Catalog holds the error templates of one locale. Templates are compiled
// when the catalog is built; a template that fails to compile renders its
// source text.
type Catalog struct {
	locale    string
	templates map[Code]*template.Template
	sources   map[Code]string
}

// catalogs caches built catalogs by resolved locale.
var catalogs sync.Map

// GetCatalog returns the catalog for locale. Locales without an errors
// namespace fall back to the base locale.
func GetCatalog(locale string) *Catalog {
	requested := strings.TrimSpace(locale)
	if requested == "" {
		requested = i18ncatalog.BaseLocale
	}
	if cached, ok := catalogs.Load(requested); ok {
		return cached.(*Catalog)
	}
	resolved, messages := i18ncatalog.Default().Namespace(requested, errorsNamespace)
	built, _ := catalogs.LoadOrStore(resolved, NewCatalog(resolved, messages))
	if requested != resolved {
		catalogs.Store(requested, built)
	}
	return built.(*Catalog)
}

// NewCatalog compiles messages for locale.
func NewCatalog(locale string, messages map[Code]string) *Catalog {
	c := &Catalog{
		locale:    locale,
		templates: make(map[Code]*template.Template, len(messages)),
		sources:   make(map[Code]string, len(messages)),
	}
	for code, text := range messages {
		c.sources[code] = text
		tmpl, err := template.New(code).Option("missingkey=zero").Parse(text)
		if err != nil {
			continue
		}
		c.templates[code] = tmpl
	}
	return c
}

// Locale reports the locale the catalog was resolved to.
func (c *Catalog) Locale() string {
	return c.locale
}

// Format renders the template for code with metadata. Unknown codes render
// as the code itself. Missing metadata keys render empty.
func (c *Catalog) Format(code Code, metadata map[string]string) string {
	source, ok := c.sources[code]
	if !ok {
		return code
	}
	tmpl, ok := c.templates[code]
	if !ok {
		return source
	}
	if metadata == nil {
		metadata = map[string]string{}
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, metadata); err != nil {
		return source
	}
	return b.String()
}
