package domain

import (
	"context"

	"github.com/louisbranch/apollo/internal/platform/icons"
	"github.com/louisbranch/apollo/internal/services/icons/lookup"
	"github.com/louisbranch/apollo/internal/services/icons/metrics"
)

// Registry answers icon queries. The gRPC registry client satisfies it, as
// does Local.
type Registry interface {
	LookupIcon(ctx context.Context, ref string) (lookup.IconView, error)
	ListIcons(ctx context.Context, query string) ([]lookup.IconView, error)
	RenderIcon(ctx context.Context, req lookup.RenderRequest) (string, error)
}

// Local serves queries from the compiled icon table.
type Local struct {
	renderer *lookup.Renderer
	metrics  *metrics.Metrics
}

// NewLocal creates an in-process registry.
func NewLocal(renderer *lookup.Renderer, m *metrics.Metrics) *Local {
	if renderer == nil {
		renderer = lookup.NewRenderer(lookup.DefaultCacheTTL, m)
	}
	return &Local{renderer: renderer, metrics: m}
}

func (l *Local) LookupIcon(_ context.Context, ref string) (lookup.IconView, error) {
	def, err := lookup.Observe(l.metrics, metrics.SurfaceMCP, ref)
	if err != nil {
		return lookup.IconView{}, err
	}
	return lookup.ViewOf(def), nil
}

func (l *Local) ListIcons(_ context.Context, query string) ([]lookup.IconView, error) {
	return lookup.Views(icons.Find(query)), nil
}

func (l *Local) RenderIcon(_ context.Context, req lookup.RenderRequest) (string, error) {
	markup, _, err := l.renderer.Render(req, metrics.SurfaceMCP)
	return markup, err
}
