package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/ledgerkeeper/internal/common"
)

const (
	msgUnauthorized       = "unauthorized"
	msgInvalidBody        = "invalid request body"
	msgInvalidCredentials = "invalid email or secret"
	msgInternal           = "internal error"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", common.BearerScheme)
	writeError(w, http.StatusUnauthorized, msgUnauthorized)
}

// writeServiceError maps service errors to HTTP responses. Anything
// unrecognised is logged and answered with a generic 500.
func (h *handlers) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, common.ErrDuplicateEmail):
		writeError(w, http.StatusBadRequest, common.ErrDuplicateEmail.Error())
	case errors.Is(err, common.ErrorNotFound), errors.Is(err, common.ErrInvalidCredentials):
		writeError(w, http.StatusBadRequest, msgInvalidCredentials)
	case errors.Is(err, common.ErrMissingToken), errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrTokenExpired):
		writeUnauthorized(w)
	default:
		h.logger.Error(r.Context(), "request failed", "error", err.Error(), "request_id", requestIDFromContext(r.Context()))
		writeError(w, http.StatusInternalServerError, msgInternal)
	}
}
