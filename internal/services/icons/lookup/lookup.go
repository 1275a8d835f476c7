// Package lookup resolves icon references and renders them for every
// surface of the icon service.
package lookup

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/louisbranch/apollo/internal/platform/errors"
	"github.com/louisbranch/apollo/internal/platform/icons"
	"github.com/louisbranch/apollo/internal/platform/icons/iconsvg"
	"github.com/louisbranch/apollo/internal/services/icons/metrics"
	gocache "github.com/patrickmn/go-cache"
)

const (
	// DefaultCacheTTL bounds how long a rendered SVG is reused.
	DefaultCacheTTL = 10 * time.Minute
	cleanupInterval = 20 * time.Minute
)

var sizePattern = regexp.MustCompile(`^([0-9]{1,4}(?:\.[0-9]{1,2})?)(px|em|rem|%)?$`)

// Resolve turns a free-form reference into the definition it names.
func Resolve(ref string) (icons.Definition, error) {
	icon, err := icons.Parse(ref)
	if err != nil {
		return icons.Definition{}, err
	}
	return icons.Lookup(icon)
}

// ValidSize reports whether size is usable as an SVG width and height.
// The empty string selects the default size.
func ValidSize(size string) bool {
	if size == "" {
		return true
	}
	match := sizePattern.FindStringSubmatch(size)
	if match == nil {
		return false
	}
	value, err := strconv.ParseFloat(match[1], 64)
	return err == nil && value > 0
}

// RenderRequest selects an icon and its presentation.
type RenderRequest struct {
	Ref   string
	Size  string
	Color string
}

// Renderer renders standalone SVG documents and reuses recent results.
type Renderer struct {
	cache   *gocache.Cache
	metrics *metrics.Metrics
}

// NewRenderer creates a renderer whose cache keeps entries for ttl. A
// non-positive ttl uses DefaultCacheTTL.
func NewRenderer(ttl time.Duration, m *metrics.Metrics) *Renderer {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Renderer{
		cache:   gocache.New(ttl, cleanupInterval),
		metrics: m,
	}
}

// Render returns the SVG markup for req along with its definition.
func (r *Renderer) Render(req RenderRequest, surface string) (string, icons.Definition, error) {
	def, err := Resolve(req.Ref)
	if err != nil {
		r.metrics.ObserveLookup(surface, resultOf(err))
		return "", icons.Definition{}, err
	}
	size := strings.TrimSpace(req.Size)
	if !ValidSize(size) {
		r.metrics.ObserveLookup(surface, metrics.ResultInvalid)
		return "", icons.Definition{}, apperrors.WithMetadata(
			apperrors.CodeRenderInvalidSize,
			"invalid svg size "+size,
			map[string]string{"Size": size},
		)
	}
	r.metrics.ObserveLookup(surface, metrics.ResultHit)

	color := strings.TrimSpace(req.Color)
	key := def.Key + "|" + size + "|" + color
	if cached, ok := r.cache.Get(key); ok {
		r.metrics.ObserveSVGCache(true)
		return cached.(string), def, nil
	}
	r.metrics.ObserveSVGCache(false)

	markup, err := iconsvg.Markup(def.Icon, iconsvg.Props{Size: size, Color: color, Title: def.Label})
	if err != nil {
		return "", icons.Definition{}, err
	}
	r.cache.SetDefault(key, markup)
	return markup, def, nil
}

// CachedItems reports how many rendered documents are held.
func (r *Renderer) CachedItems() int {
	return r.cache.ItemCount()
}

// Observe resolves ref and records the outcome against surface.
func Observe(m *metrics.Metrics, surface, ref string) (icons.Definition, error) {
	def, err := Resolve(ref)
	if err != nil {
		m.ObserveLookup(surface, resultOf(err))
		return icons.Definition{}, err
	}
	m.ObserveLookup(surface, metrics.ResultHit)
	return def, nil
}

func resultOf(err error) string {
	if apperrors.CodeOf(err) == apperrors.CodeIconUnknown {
		return metrics.ResultUnknown
	}
	return metrics.ResultInvalid
}
