package httpapi

import (
	"net/http"
	"strings"

	apperrors "github.com/louisbranch/apollo/internal/platform/errors"
	"github.com/louisbranch/apollo/internal/platform/grpc/pagination"
	"github.com/louisbranch/apollo/internal/platform/icons"
	"github.com/louisbranch/apollo/internal/platform/icons/iconsvg"
	"github.com/louisbranch/apollo/internal/services/icons/lookup"
	"github.com/louisbranch/apollo/internal/services/icons/metrics"
	"github.com/louisbranch/apollo/internal/services/icons/routepath"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type iconResponse struct {
	lookup.IconView
	SVG string `json:"svg"`
}

type listIconsResponse struct {
	Icons         []iconResponse `json:"icons"`
	Total         int            `json:"total"`
	NextPageToken string         `json:"next_page_token,omitempty"`
}

func iconResponseOf(def icons.Definition) iconResponse {
	return iconResponse{IconView: lookup.ViewOf(def), SVG: routepath.SVG(def.Key)}
}

func (h *Handler) handleListIcons(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	_, span := h.startSpan(r, "icons.List", attribute.String("icons.query", query.Get("q")))
	defer span.End()

	pageSizeRaw := query.Get("page_size")
	pageSize, err := pagination.ParsePageSize(pageSizeRaw, h.pageSize)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		writeError(w, r, apperrors.WrapWithMetadata(apperrors.CodePageSizeInvalid, err.Error(), map[string]string{"PageSize": pageSizeRaw}, err))
		return
	}

	matches := icons.Find(query.Get("q"))
	pageToken := strings.TrimSpace(query.Get("page_token"))
	page, err := pagination.ByKey(matches, func(def icons.Definition) string { return def.Key }, pageSize, pageToken)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		writeError(w, r, apperrors.WrapWithMetadata(apperrors.CodePageTokenInvalid, err.Error(), map[string]string{"PageToken": pageToken}, err))
		return
	}
	resp := listIconsResponse{
		Icons:         make([]iconResponse, 0, len(page.Items)),
		Total:         len(matches),
		NextPageToken: page.NextPageToken,
	}
	for _, def := range page.Items {
		resp.Icons = append(resp.Icons, iconResponseOf(def))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetIcon(w http.ResponseWriter, r *http.Request) {
	ref := r.PathValue("ref")
	_, span := h.startSpan(r, "icons.Get", attribute.String("icons.ref", ref))
	defer span.End()

	def, err := lookup.Observe(h.metrics, metrics.SurfaceHTTP, ref)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, iconResponseOf(def))
}

func (h *Handler) handleSVG(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := lookup.RenderRequest{
		Ref:   r.PathValue("ref"),
		Size:  query.Get("size"),
		Color: query.Get("color"),
	}
	_, span := h.startSpan(r, "icons.RenderSVG", attribute.String("icons.ref", req.Ref))
	defer span.End()

	markup, _, err := h.renderer.Render(req, metrics.SurfaceHTTP)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		writeError(w, r, err)
		return
	}
	writeSVG(w, markup)
}

func (h *Handler) handleSprite(w http.ResponseWriter, r *http.Request) {
	var b strings.Builder
	if err := iconsvg.Sprite().Render(r.Context(), &b); err != nil {
		writeError(w, r, apperrors.Wrap(apperrors.CodeUnknown, "render sprite", err))
		return
	}
	writeSVG(w, b.String())
}

func (h *Handler) handleFontCSS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write([]byte(h.fontCSS))
}

func writeSVG(w http.ResponseWriter, markup string) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(markup))
}
