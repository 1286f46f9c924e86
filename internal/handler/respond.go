package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/eazyvenue/backend/internal/validate"
)

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // status line already sent
	json.NewEncoder(w).Encode(v)
}

// decodeBody decodes and validates a JSON request body into dst.
// On failure it writes the error response itself and returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request_too_large", "request body too large", nil)
			return false
		}
		writeRequestError(w, "invalid JSON body", nil)
		return false
	}
	if details := validate.Struct(dst); details != nil {
		writeRequestError(w, "request validation failed", details)
		return false
	}
	return true
}

// venueIDParam parses the {id} path parameter.
// On failure it writes the error response itself and returns false.
func venueIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeRequestError(w, "invalid venue id", nil)
		return uuid.Nil, false
	}
	return id, true
}
