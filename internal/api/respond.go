// Package api exposes the record store and the balance/match engines over a
// local HTTP surface for the UI.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MohamedRadiWebDev/ACC/internal/models"
	"github.com/MohamedRadiWebDev/ACC/internal/store"
)

// ErrorResponse represents an API error response.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// writeJSON writes a JSON response body.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeJSONError writes a JSON error response.
func writeJSONError(w http.ResponseWriter, status int, errCode, description string) {
	writeJSON(w, status, ErrorResponse{
		Error:            errCode,
		ErrorDescription: description,
	})
}

// writeError maps the error taxonomy onto HTTP statuses: validation errors
// are 400, missing records 404, anything else a 500 from the store layer.
func writeError(w http.ResponseWriter, err error) {
	var vErr *models.ValidationError
	switch {
	case errors.As(err, &vErr):
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", vErr.Error())
	case errors.Is(err, store.ErrNotFound):
		writeJSONError(w, http.StatusNotFound, "not_found", err.Error())
	default:
		writeJSONError(w, http.StatusInternalServerError, "server_error", err.Error())
	}
}

// decodeBody decodes a JSON request body into v.
func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return models.Invalid("body", "malformed JSON payload")
	}
	return nil
}
