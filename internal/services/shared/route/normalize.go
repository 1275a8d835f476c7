// Package route holds path helpers shared by HTTP surfaces.
package route

import (
	"net/http"
	"strings"
)

// RedirectTrailingSlash sends requests like "/catalog/" to "/catalog",
// keeping the query string. It reports whether a redirect was written.
func RedirectTrailingSlash(w http.ResponseWriter, r *http.Request) bool {
	if w == nil || r == nil || r.URL == nil {
		return false
	}

	canonical := strings.TrimRight(r.URL.Path, "/")
	if canonical == "" {
		canonical = "/"
	}
	if canonical == r.URL.Path {
		return false
	}
	if r.URL.RawQuery != "" {
		canonical += "?" + r.URL.RawQuery
	}
	http.Redirect(w, r, canonical, http.StatusMovedPermanently)
	return true
}

// TrailingSlashHandler redirects to the canonical path and answers 404 for
// paths that are already canonical.
func TrailingSlashHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !RedirectTrailingSlash(w, r) {
			http.NotFound(w, r)
		}
	}
}
