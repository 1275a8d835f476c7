package httpapi

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/louisbranch/apollo/internal/platform/errors"
	"github.com/louisbranch/apollo/internal/platform/requestctx"
	iconsi18n "github.com/louisbranch/apollo/internal/services/icons/i18n"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

// writeError renders err as a JSON error localized for the request.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := apperrors.CodeOf(err)
	locale := requestctx.LocaleFromContext(r.Context())
	if locale == "" {
		tag, _ := iconsi18n.ResolveTag(r)
		locale = iconsi18n.Locale(tag)
	}
	message := apperrors.Localize(err, locale)
	writeJSON(w, code.HTTPStatus(), errorResponse{Error: errorBody{Code: string(code), Message: message}})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	_ = encoder.Encode(payload)
}
