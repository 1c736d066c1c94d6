package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/mplath/tasknest/internal/redact"
)

// ErrorResponse is the standard error payload. Message mirrors the single
// message shape of the original API; Errors carries the aggregated
// field-level validation messages when there are several.
type ErrorResponse struct {
	Message string   `json:"message,omitempty"`
	Errors  []string `json:"errors,omitempty"`
	TraceID string   `json:"trace_id,omitempty"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithError writes a JSON error response with a single message.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	traceID := GetTraceID(r.Context())

	slog.Debug("sending error response",
		"status_code", status,
		"message", message,
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, ErrorResponse{
		Message: message,
		TraceID: traceID,
	})
}

// RespondWithValidationErrors writes a 400 response carrying every violated
// field's message, not just the first one.
func RespondWithValidationErrors(w http.ResponseWriter, r *http.Request, messages []string) {
	RespondWithJSON(w, r, http.StatusBadRequest, ErrorResponse{
		Errors:  messages,
		TraceID: GetTraceID(r.Context()),
	})
}

// RespondWithErrorAndLog writes a sanitized JSON error response and logs the
// underlying error at a level matching the status class. The raw error text
// is redacted before logging and never reaches the client.
func RespondWithErrorAndLog(w http.ResponseWriter, r *http.Request, status int, safeMessage string, err error) {
	traceID := GetTraceID(r.Context())

	logAttrs := []any{
		"status_code", status,
		"error", redact.Error(err),
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method,
	}
	if status >= http.StatusInternalServerError {
		slog.Error("request failed", logAttrs...)
	} else {
		slog.Debug("request rejected", logAttrs...)
	}

	RespondWithJSON(w, r, status, ErrorResponse{
		Message: safeMessage,
		TraceID: traceID,
	})
}
