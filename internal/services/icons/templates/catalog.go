package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/apollo/internal/platform/branding"
	"github.com/louisbranch/apollo/internal/platform/icons"
	"github.com/louisbranch/apollo/internal/platform/icons/iconsvg"
	"github.com/louisbranch/apollo/internal/services/icons/routepath"
	"github.com/louisbranch/apollo/internal/services/shared/components"
	"golang.org/x/text/message"
)

// Localizer translates message keys.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// htmlWriter writes escaped markup and remembers the first error.
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) component(c templ.Component) {
	if h.err != nil {
		return
	}
	h.err = c.Render(h.ctx, h.w)
}

func render(fn func(h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{ctx: ctx, w: w}
		fn(h)
		return h.err
	})
}

// PageTitle returns the localized document title of the catalog page.
func PageTitle(loc Localizer) string {
	return branding.PageTitle(loc.Sprintf("catalog.title"))
}

// CatalogFullPage renders the complete HTML document.
func CatalogFullPage(view CatalogView, loc Localizer) templ.Component {
	return render(func(h *htmlWriter) {
		h.raw(`<!DOCTYPE html><html lang="`)
		h.text(view.Lang)
		h.raw(`"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		h.text(PageTitle(loc))
		h.raw(`</title><link rel="stylesheet" href="`)
		h.text(routepath.FontCSS)
		h.raw(`"><script src="https://unpkg.com/htmx.org@2.0.4" defer></script></head><body>`)
		h.component(iconsvg.Sprite())
		h.raw(`<main id="main" class="container mx-auto p-4">`)
		h.component(CatalogPage(view, loc))
		h.raw(`</main></body></html>`)
	})
}

// CatalogPage renders the catalog body used for full and HTMX responses.
func CatalogPage(view CatalogView, loc Localizer) templ.Component {
	return render(func(h *htmlWriter) {
		h.raw(`<section class="catalog"><h1>`)
		h.text(loc.Sprintf("catalog.title"))
		h.raw(`</h1><p class="summary">`)
		h.text(loc.Sprintf("catalog.summary", view.Total, view.FontFamily))
		h.raw(`</p>`)
		h.component(components.DisclaimerList([]components.Disclaimer{
			{Icon: icons.Lock, Text: loc.Sprintf("catalog.disclaimer.codepoints")},
			{Icon: icons.Info, Text: loc.Sprintf("catalog.disclaimer.unicode")},
			{Text: loc.Sprintf("catalog.disclaimer.styling")},
		}))
		h.raw(`<input type="search" name="q" value="`)
		h.text(view.Query)
		h.raw(`" placeholder="`)
		h.text(loc.Sprintf("catalog.search.placeholder"))
		h.raw(`" hx-get="`)
		h.text(routepath.Catalog)
		h.raw(`" hx-trigger="input changed delay:250ms" hx-target="#catalog-table" hx-select="#catalog-table" hx-swap="outerHTML">`)
		h.component(CatalogTable(view.Rows, view.Message, loc))
		h.component(ResolveForm(loc))
		h.raw(`</section>`)
	})
}

// CatalogTable renders the icon table, or message when it is set.
func CatalogTable(rows []IconRow, msg string, loc Localizer) templ.Component {
	return render(func(h *htmlWriter) {
		h.raw(`<div id="catalog-table">`)
		if msg != "" {
			h.raw(`<p class="empty">`)
			h.text(msg)
			h.raw(`</p></div>`)
			return
		}
		h.raw(`<table class="table"><thead><tr><th>`)
		h.text(loc.Sprintf("catalog.column.icon"))
		h.raw(`</th><th>`)
		h.text(loc.Sprintf("catalog.column.key"))
		h.raw(`</th><th>`)
		h.text(loc.Sprintf("catalog.column.codepoint"))
		h.raw(`</th><th>`)
		h.text(loc.Sprintf("catalog.column.label"))
		h.raw(`</th></tr></thead><tbody>`)
		for _, row := range rows {
			writeIconRow(h, row)
		}
		h.raw(`</tbody></table></div>`)
	})
}

func writeIconRow(h *htmlWriter, row IconRow) {
	h.raw(`<tr data-key="`)
	h.text(row.Key)
	h.raw(`"><td>`)
	h.component(iconsvg.Use(row.Icon, iconsvg.Props{Size: "20", Title: row.Label}))
	h.raw(` <span class="name">`)
	h.text(row.Name)
	h.raw(`</span></td><td><code>`)
	h.text(row.Key)
	h.raw(`</code></td><td><code>`)
	h.text(row.Codepoint)
	h.raw(`</code> <small>`)
	h.text(row.Hex)
	h.raw(`</small></td><td>`)
	h.text(row.Label)
	h.raw(`</td></tr>`)
}

// ResolveForm renders the textarea that posts references to resolve.
func ResolveForm(loc Localizer) templ.Component {
	return render(func(h *htmlWriter) {
		h.raw(`<form class="resolve" hx-post="`)
		h.text(routepath.CatalogResolve)
		h.raw(`" hx-target="#resolve-results" hx-swap="innerHTML"><h2>`)
		h.text(loc.Sprintf("catalog.resolve.title"))
		h.raw(`</h2><label for="refs">`)
		h.text(loc.Sprintf("catalog.resolve.hint"))
		h.raw(`</label>`)
		h.component(components.Textarea(components.TextareaProps{
			ID:          "refs",
			Name:        "refs",
			Rows:        4,
			Placeholder: "add\nU+F11E\n61724",
		}))
		h.raw(`<button type="submit" class="btn">`)
		h.text(loc.Sprintf("catalog.resolve.submit"))
		h.raw(`</button><div id="resolve-results"></div></form>`)
	})
}

// ResolveResults renders the outcome of a resolve request.
func ResolveResults(rows []ResolveRow, loc Localizer) templ.Component {
	return render(func(h *htmlWriter) {
		if len(rows) == 0 {
			h.raw(`<p class="empty">`)
			h.text(loc.Sprintf("catalog.resolve.empty"))
			h.raw(`</p>`)
			return
		}
		h.raw(`<table class="table resolved"><tbody>`)
		for _, row := range rows {
			if !row.Found {
				h.raw(`<tr class="unknown"><td><code>`)
				h.text(row.Ref)
				h.raw(`</code></td><td colspan="3">`)
				h.text(loc.Sprintf("catalog.resolve.unknown"))
				h.raw(`</td></tr>`)
				continue
			}
			writeIconRow(h, row.Row)
		}
		h.raw(`</tbody></table>`)
	})
}
