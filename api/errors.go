package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"roulette/models"

	log "github.com/sirupsen/logrus"
)

// statusForError maps the settlement error taxonomy onto HTTP status codes.
// Anything unrecognized is an internal fault and must not leak its message.
func statusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrInvalidWagers),
		errors.Is(err, models.ErrInsufficientBalance):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrPlayerNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrAccountBlocked):
		return http.StatusForbidden
	case errors.Is(err, models.ErrRateLimited):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := statusForError(err)

	body := ErrorResponse{Code: "internal_error", Message: "internal error"}
	var spinErr *models.SpinError
	if status != http.StatusInternalServerError && errors.As(err, &spinErr) {
		body.Code = spinErr.Code
		body.Message = spinErr.Message
	}

	if status == http.StatusInternalServerError {
		log.WithError(err).Error("Request failed")
	}

	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.WithError(err).Error("Failed to encode response")
	}
}
