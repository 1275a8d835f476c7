// Package routepath names the HTTP routes of the icon service.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root    = "/"
	Healthz = "/healthz"
	Metrics = "/metrics"
)

const (
	APIIcons        = "/api/icons"
	APIIconsPattern = "/api/icons/{ref}"
	APIReleases     = "/api/releases"
	APIRelease      = "/api/releases/{version}"
	APICompat       = "/api/compat"
)

const (
	SVGPattern = "/svg/{ref}"
	Sprite     = "/sprite.svg"
	FontCSS    = "/apollo.css"
)

const (
	Catalog        = "/catalog"
	CatalogResolve = "/catalog/resolve"
)

// Icon returns the JSON route for one icon reference.
func Icon(ref string) string {
	return APIIcons + "/" + escapeSegment(ref)
}

// SVG returns the SVG route for one icon reference.
func SVG(ref string) string {
	return "/svg/" + escapeSegment(ref)
}

// Release returns the JSON route for one release version.
func Release(version string) string {
	return APIReleases + "/" + escapeSegment(version)
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
