package httpapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	apperrors "github.com/louisbranch/apollo/internal/platform/errors"
	"github.com/louisbranch/apollo/internal/platform/icons"
	"github.com/louisbranch/apollo/internal/services/icons/compat"
	"github.com/louisbranch/apollo/internal/services/icons/storage"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type releaseSummaryResponse struct {
	Version     string    `json:"version"`
	PublishedAt time.Time `json:"published_at"`
	IconCount   int       `json:"icon_count"`
}

type releaseEntryResponse struct {
	Key       string `json:"key"`
	Name      string `json:"name"`
	Codepoint string `json:"codepoint"`
}

type releaseResponse struct {
	Version     string                 `json:"version"`
	PublishedAt time.Time              `json:"published_at"`
	Icons       []releaseEntryResponse `json:"icons"`
}

type violationResponse struct {
	Kind     string `json:"kind"`
	Key      string `json:"key"`
	Previous string `json:"previous"`
	Current  string `json:"current,omitempty"`
	Breaking bool   `json:"breaking"`
}

type compatResponse struct {
	Against    string              `json:"against"`
	Breaking   bool                `json:"breaking"`
	Violations []violationResponse `json:"violations"`
	Added      []string            `json:"added"`
}

func (h *Handler) handleListReleases(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.startSpan(r, "releases.List")
	defer span.End()

	summaries, err := h.store.ListReleases(ctx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		writeError(w, r, apperrors.Wrap(apperrors.CodeUnknown, "list releases", err))
		return
	}
	resp := make([]releaseSummaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		resp = append(resp, releaseSummaryResponse{
			Version:     summary.Version,
			PublishedAt: summary.PublishedAt.UTC(),
			IconCount:   summary.IconCount,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"releases": resp})
}

func (h *Handler) handleGetRelease(w http.ResponseWriter, r *http.Request) {
	version := strings.TrimSpace(r.PathValue("version"))
	ctx, span := h.startSpan(r, "releases.Get", attribute.String("release.version", version))
	defer span.End()

	release, err := h.store.GetRelease(ctx, version)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		writeError(w, r, releaseError(version, err))
		return
	}
	resp := releaseResponse{
		Version:     release.Version,
		PublishedAt: release.PublishedAt.UTC(),
		Icons:       make([]releaseEntryResponse, 0, len(release.Entries)),
	}
	for _, entry := range release.Entries {
		resp.Icons = append(resp.Icons, releaseEntryResponse(entry))
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleCompat checks the current table against ?version= or, when unset,
// the whole release history.
func (h *Handler) handleCompat(w http.ResponseWriter, r *http.Request) {
	version := strings.TrimSpace(r.URL.Query().Get("version"))
	ctx, span := h.startSpan(r, "releases.Compat", attribute.String("release.version", version))
	defer span.End()

	var report compat.Report
	if version == "" {
		history, err := compat.History(ctx, h.store)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			writeError(w, r, releaseError("latest", err))
			return
		}
		report = compat.CheckHistory(history, icons.Catalog())
	} else {
		release, err := h.store.GetRelease(ctx, version)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			writeError(w, r, releaseError(version, err))
			return
		}
		report = compat.Check(release, icons.Catalog())
	}
	resp := compatResponse{
		Against:    report.Against,
		Breaking:   report.Breaking(),
		Violations: make([]violationResponse, 0, len(report.Violations)),
		Added:      report.Added,
	}
	if resp.Added == nil {
		resp.Added = []string{}
	}
	for _, v := range report.Violations {
		resp.Violations = append(resp.Violations, violationResponse{
			Kind:     string(v.Kind),
			Key:      v.Key,
			Previous: v.Previous,
			Current:  v.Current,
			Breaking: v.Kind.Breaking(),
		})
	}
	span.SetAttributes(attribute.Int("compat.violations", len(report.Violations)))
	writeJSON(w, http.StatusOK, resp)
}

func releaseError(version string, err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return apperrors.WrapWithMetadata(apperrors.CodeReleaseNotFound, "release "+version+" not found", map[string]string{"Version": version}, err)
	}
	return apperrors.Wrap(apperrors.CodeUnknown, "load release "+version, err)
}
