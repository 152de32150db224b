package api

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domainerrors "github.com/listenupapp/shelves-server/internal/errors"
	"github.com/listenupapp/shelves-server/internal/http/response"
)

// APIError is a custom error type that implements huma.StatusError.
// It carries errors raised by huma itself (schema validation, bad requests)
// in the same shape as domain errors.
type APIError struct { //nolint:revive // API prefix is intentional for clarity
	status  int
	cause   error
	Code    string `json:"code" doc:"Machine-readable error code"`
	Message string `json:"message" doc:"Human-readable error message"`
	Details any    `json:"details,omitempty" doc:"Additional error details"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// GetStatus implements huma.StatusError.
func (e *APIError) GetStatus() int {
	return e.status
}

// ContentType returns the content type for the error response.
func (e *APIError) ContentType(_ string) string {
	return "application/json"
}

// RegisterErrorHandler configures huma to use domain errors.
// Call this after creating the huma.API but before registering routes.
func RegisterErrorHandler() {
	huma.NewError = func(status int, message string, errs ...error) huma.StatusError {
		fields := map[string]string{}
		var cause error
		for _, err := range errs {
			var domainErr *domainerrors.Error
			if errors.As(err, &domainErr) {
				return domainErr
			}

			var detail *huma.ErrorDetail
			if errors.As(err, &detail) {
				fields[detail.Location] = detail.Message
				continue
			}
			if err != nil {
				cause = err
			}
		}

		// Schema failures are invalid arguments like any other.
		if status == http.StatusUnprocessableEntity {
			status = http.StatusBadRequest
		}

		apiErr := &APIError{
			status:  status,
			cause:   cause,
			Code:    statusToCode(status),
			Message: message,
		}
		if len(fields) > 0 && status < http.StatusInternalServerError {
			apiErr.Details = fields
		}
		return apiErr
	}
}

// statusToCode maps HTTP status codes to our domain error codes.
func statusToCode(status int) string {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return string(domainerrors.CodeValidation)
	case http.StatusUnauthorized:
		return string(domainerrors.CodeUnauthorized)
	case http.StatusForbidden:
		return string(domainerrors.CodeForbidden)
	case http.StatusNotFound:
		return string(domainerrors.CodeNotFound)
	case http.StatusConflict:
		return string(domainerrors.CodeConflict)
	case http.StatusTooManyRequests:
		return string(domainerrors.CodeRateLimited)
	default:
		return string(domainerrors.CodeInternal)
	}
}

// errorBody converts any error handed to the envelope into its wire form.
func errorBody(status int, err error) *response.ErrorBody {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return &response.ErrorBody{Code: apiErr.Code, Message: apiErr.Message, Details: apiErr.Details}
	}

	var domainErr *domainerrors.Error
	if errors.As(err, &domainErr) {
		return response.FromError(domainErr)
	}

	body := &response.ErrorBody{Code: statusToCode(status), Message: err.Error()}
	if status >= http.StatusInternalServerError {
		body.Message = "internal server error"
	}
	return body
}
