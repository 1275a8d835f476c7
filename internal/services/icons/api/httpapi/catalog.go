package httpapi

import (
	"net/http"

	"github.com/louisbranch/apollo/internal/platform/icons"
	iconsi18n "github.com/louisbranch/apollo/internal/services/icons/i18n"
	"github.com/louisbranch/apollo/internal/services/icons/metrics"
	"github.com/louisbranch/apollo/internal/services/icons/templates"
	"github.com/louisbranch/apollo/internal/services/shared/htmx"
)

// maxResolveBytes caps the resolve form body.
const maxResolveBytes = 64 << 10

func (h *Handler) handleCatalog(w http.ResponseWriter, r *http.Request) {
	loc, tag := iconsi18n.Localize(w, r)
	query := r.URL.Query().Get("q")
	matches := icons.Find(query)

	view := templates.CatalogView{
		Lang:       tag.String(),
		Query:      query,
		Total:      icons.Len(),
		FontFamily: icons.FontFamily,
		Rows:       templates.BuildIconRows(matches),
	}
	if len(matches) == 0 {
		view.Message = loc.Sprintf("catalog.empty")
	}
	htmx.PushURL(w, r, r.URL.RequestURI())
	htmx.RenderPage(w, r, templates.CatalogPage(view, loc), templates.CatalogFullPage(view, loc), htmx.TitleTag(templates.PageTitle(loc)))
}

func (h *Handler) handleResolve(w http.ResponseWriter, r *http.Request) {
	loc, _ := iconsi18n.Localize(w, r)
	r.Body = http.MaxBytesReader(w, r.Body, maxResolveBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	rows := templates.BuildResolveRows(r.PostFormValue("refs"))
	for _, row := range rows {
		result := metrics.ResultHit
		if !row.Found {
			result = metrics.ResultUnknown
		}
		h.metrics.ObserveLookup(metrics.SurfaceHTTP, result)
	}
	htmx.RenderPage(w, r, templates.ResolveResults(rows, loc), nil, "")
}
