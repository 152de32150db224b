// Package response writes the versioned JSON envelope for handlers and
// middleware that run outside the operation layer.
package response

import (
	"encoding/json"
	"log/slog"
	"net/http"

	domainerrors "github.com/listenupapp/shelves-server/internal/errors"
)

// EnvelopeVersion is the wire version carried in every response body.
const EnvelopeVersion = 1

// Envelope provides a consistent JSON response structure.
type Envelope struct {
	Version int        `json:"v"`
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

// ErrorBody is the error member of a failed response.
type ErrorBody struct {
	Code    string `json:"code" doc:"Machine-readable error code"`
	Message string `json:"message" doc:"Human-readable error message"`
	Details any    `json:"details,omitempty" doc:"Additional error details"`
}

// Success wraps data in a successful envelope.
func Success(data any) Envelope {
	return Envelope{Version: EnvelopeVersion, Success: true, Data: data}
}

// Failure wraps body in a failed envelope.
func Failure(body *ErrorBody) Envelope {
	return Envelope{Version: EnvelopeVersion, Success: false, Error: body}
}

// FromError converts a domain error to an error body. The cause is never
// included.
func FromError(err *domainerrors.Error) *ErrorBody {
	return &ErrorBody{
		Code:    string(err.Code),
		Message: err.Message,
		Details: err.Details,
	}
}

// JSON writes data in an envelope with the given status code.
func JSON(w http.ResponseWriter, status int, data any, logger *slog.Logger) {
	write(w, status, Envelope{Version: EnvelopeVersion, Success: status < 400, Data: data}, logger)
}

// Error writes err as a failed envelope with the status for its code.
func Error(w http.ResponseWriter, err *domainerrors.Error, logger *slog.Logger) {
	write(w, err.HTTPStatus(), Failure(FromError(err)), logger)
}

// TooManyRequests writes a 429 response asking the client to retry after
// the given number of seconds.
func TooManyRequests(w http.ResponseWriter, retryAfter string, logger *slog.Logger) {
	w.Header().Set("Retry-After", retryAfter)
	Error(w, domainerrors.RateLimited("too many requests, please try again later"), logger)
}

func write(w http.ResponseWriter, status int, envelope Envelope, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(envelope); err != nil && logger != nil {
		logger.Error("failed to encode response", "error", err)
	}
}
