package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"odms-backend/internal/domain"
	"odms-backend/internal/logger"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeServiceError maps domain errors onto HTTP statuses. Anything
// outside the workflow taxonomy is an infrastructure fault and surfaces
// as a 500.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrRequestNotFound), errors.Is(err, domain.ErrUserNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrPermissionDenied):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrInvalidStageTransition):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrMissingReason), errors.Is(err, domain.ErrUnknownRole):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidOTP), errors.Is(err, domain.ErrOTPExpired):
		writeError(w, http.StatusUnauthorized, err.Error())
	default:
		logger.Error("Request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
