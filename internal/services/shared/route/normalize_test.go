package route

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRedirectTrailingSlash(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		target   string
		wantOK   bool
		wantCode int
		wantLoc  string
	}{
		{
			name:     "catalog trailing slash",
			target:   "/catalog/",
			wantOK:   true,
			wantCode: http.StatusMovedPermanently,
			wantLoc:  "/catalog",
		},
		{
			name:     "keeps query",
			target:   "/catalog//?q=add&lang=pt-BR",
			wantOK:   true,
			wantCode: http.StatusMovedPermanently,
			wantLoc:  "/catalog?q=add&lang=pt-BR",
		},
		{
			name:     "canonical path",
			target:   "/catalog",
			wantOK:   false,
			wantCode: http.StatusOK,
		},
		{
			name:     "root path",
			target:   "/",
			wantOK:   false,
			wantCode: http.StatusOK,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			rec := httptest.NewRecorder()

			got := RedirectTrailingSlash(rec, req)
			if got != tc.wantOK {
				t.Fatalf("RedirectTrailingSlash = %v, want %v", got, tc.wantOK)
			}
			if rec.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantCode)
			}
			if got {
				if loc := rec.Header().Get("Location"); loc != tc.wantLoc {
					t.Fatalf("location = %q, want %q", loc, tc.wantLoc)
				}
			}
		})
	}
}

func TestTrailingSlashHandlerNotFoundForCanonicalPath(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	TrailingSlashHandler()(rec, httptest.NewRequest(http.MethodGet, "/catalog", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
