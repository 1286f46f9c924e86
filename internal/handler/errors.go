package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pkordes/eazyvenue/backend/internal/domain"
)

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a machine-readable code, a human-readable message and,
// for request validation failures, one message per offending field.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// conflictMessages holds the wording clients see for each booking conflict.
var conflictMessages = []struct {
	err error
	msg string
}{
	{domain.ErrAlreadyBooked, "Venue already booked for this date"},
	{domain.ErrDateBlocked, "Date is blocked by venue owner"},
	{domain.ErrDateAlreadyBooked, "Date is already booked"},
	{domain.ErrDateAlreadyBlocked, "Date is already blocked"},
}

// writeServiceError maps a service error onto its HTTP response.
// notFound is the message used for domain.ErrNotFound, because the handler
// is the layer that knows what was being looked up.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", notFound, nil)
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusBadRequest, "conflict", conflictMessage(err), nil)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusUnprocessableEntity, "validation_error", unwrapMessage(err), nil)
	default:
		slog.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error", nil)
	}
}

// writeRequestError reports a request rejected before reaching the service
// layer (malformed body, unparsable id, struct-tag failures).
func writeRequestError(w http.ResponseWriter, message string, details map[string]string) {
	writeError(w, http.StatusUnprocessableEntity, "validation_error", message, details)
}

func writeError(w http.ResponseWriter, status int, code, message string, details map[string]string) {
	writeJSON(w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message, Details: details}})
}

func conflictMessage(err error) string {
	for _, c := range conflictMessages {
		if errors.Is(err, c.err) {
			return c.msg
		}
	}
	return "conflict"
}

// unwrapMessage extracts the human-readable part from a wrapped validation error.
// e.g. "service.VenueService.Create: validation error: name is required" → "name is required"
func unwrapMessage(err error) string {
	msg := err.Error()
	const marker = "validation error: "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}
