// Package httpapi serves the icon registry over HTTP: JSON lookups, SVG
// rendering, the font stylesheet, the HTML catalog and the release ledger.
package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/louisbranch/apollo/internal/platform/grpc/pagination"
	"github.com/louisbranch/apollo/internal/platform/icons"
	"github.com/louisbranch/apollo/internal/platform/requestctx"
	iconsi18n "github.com/louisbranch/apollo/internal/services/icons/i18n"
	"github.com/louisbranch/apollo/internal/services/icons/lookup"
	"github.com/louisbranch/apollo/internal/services/icons/metrics"
	"github.com/louisbranch/apollo/internal/services/icons/routepath"
	"github.com/louisbranch/apollo/internal/services/icons/storage"
	"github.com/louisbranch/apollo/internal/services/shared/route"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/louisbranch/apollo/internal/services/icons/api/httpapi"

// DefaultPageSize configures icon list paging.
var DefaultPageSize = pagination.PageSizeConfig{Default: 50, Max: 200}

// Config wires the handler dependencies. Store is optional; without it the
// release routes are not mounted.
type Config struct {
	Store    storage.ReleaseStore
	Metrics  *metrics.Metrics
	Renderer *lookup.Renderer
	// FontURL is the font file referenced by the generated stylesheet.
	FontURL  string
	PageSize pagination.PageSizeConfig
}

// Handler serves every HTTP route of the icon service.
type Handler struct {
	store    storage.ReleaseStore
	metrics  *metrics.Metrics
	renderer *lookup.Renderer
	pageSize pagination.PageSizeConfig
	fontCSS  string
	tracer   trace.Tracer
}

// New builds a handler from cfg, filling unset fields with defaults.
func New(cfg Config) *Handler {
	if cfg.Renderer == nil {
		cfg.Renderer = lookup.NewRenderer(lookup.DefaultCacheTTL, cfg.Metrics)
	}
	if cfg.PageSize.Default <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	return &Handler{
		store:    cfg.Store,
		metrics:  cfg.Metrics,
		renderer: cfg.Renderer,
		pageSize: cfg.PageSize,
		fontCSS:  icons.FontCSS(icons.CSSOptions{FontURL: strings.TrimSpace(cfg.FontURL)}),
		tracer:   otel.Tracer(tracerName),
	}
}

// Routes returns the mux with every route mounted, instrumented by the
// request metrics middleware.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+routepath.Healthz, h.handleHealthz)
	if h.metrics != nil {
		mux.Handle("GET "+routepath.Metrics, h.metrics.Handler())
	}

	mux.HandleFunc("GET "+routepath.APIIcons, h.handleListIcons)
	mux.HandleFunc("GET "+routepath.APIIconsPattern, h.handleGetIcon)
	mux.HandleFunc("GET "+routepath.SVGPattern, h.handleSVG)
	mux.HandleFunc("GET "+routepath.Sprite, h.handleSprite)
	mux.HandleFunc("GET "+routepath.FontCSS, h.handleFontCSS)

	mux.HandleFunc("GET "+routepath.Catalog, h.handleCatalog)
	mux.HandleFunc("GET "+routepath.Catalog+"/{$}", route.TrailingSlashHandler())
	mux.HandleFunc("POST "+routepath.CatalogResolve, h.handleResolve)
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, routepath.Catalog, http.StatusFound)
	})

	if h.store != nil {
		mux.HandleFunc("GET "+routepath.APIReleases, h.handleListReleases)
		mux.HandleFunc("GET "+routepath.APIRelease, h.handleGetRelease)
		mux.HandleFunc("GET "+routepath.APICompat, h.handleCompat)
	}
	return withLocale(h.metrics.Middleware(mux))
}

// withLocale resolves the caller locale once per request.
func withLocale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tag, _ := iconsi18n.ResolveTag(r)
		next.ServeHTTP(w, r.WithContext(requestctx.WithLocale(r.Context(), iconsi18n.Locale(tag))))
	})
}

func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (h *Handler) startSpan(r *http.Request, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return h.tracer.Start(r.Context(), name, trace.WithAttributes(attrs...))
}
