package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/fhuszti/r2-uploader-go/internal/logger"
	"github.com/fhuszti/r2-uploader-go/internal/validation"
)

type ErrorResponse struct {
	Success bool              `json:"success"`
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

func WriteError(w http.ResponseWriter, r *http.Request, status int, msg string, err error) {
	if err != nil {
		logger.Errorf(r.Context(), "❌  %s: %v", msg, err)
	} else {
		logger.Error(r.Context(), "❌  "+msg)
	}
	w.Header().Set("Cache-Control", "no-store, max-age=0, must-revalidate")
	RespondJSON(w, r, status, ErrorResponse{Error: msg})
}

// WriteUpstreamError folds the upstream failure into the message sent back,
// e.g. "Failed to generate presigned URL: storage: unauthorized".
func WriteUpstreamError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	WriteError(w, r, http.StatusInternalServerError, fmt.Sprintf("%s: %v", msg, err), nil)
}

// WriteValidationError renders validator failures as {"filename":"required"}
// details under a short message.
func WriteValidationError(w http.ResponseWriter, r *http.Request, errs error) {
	details := validation.ErrorsToMap(errs)
	msg := "Invalid request"
	if details["filename"] == "required" {
		msg = "Filename is required"
	}
	logger.Warnf(r.Context(), "❌  Validation failed: %v", details)
	w.Header().Set("Cache-Control", "no-store, max-age=0, must-revalidate")
	RespondJSON(w, r, http.StatusBadRequest, ErrorResponse{Error: msg, Details: details})
}

func RespondJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Errorf(r.Context(), "❌  Failed to encode JSON response: %v", err)
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		WriteError(w, r, http.StatusBadRequest, "Invalid request", fmt.Errorf("invalid JSON: %w", err))
		return false
	}
	return true
}
