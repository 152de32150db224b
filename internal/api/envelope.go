package api

import (
	"net/http"
	"strconv"

	"github.com/danielgtaylor/huma/v2"

	"github.com/listenupapp/shelves-server/internal/http/response"
)

// EnvelopeVersion is the wire version of response bodies.
const EnvelopeVersion = response.EnvelopeVersion

// APIEnvelope is the body of every API response.
type APIEnvelope = response.Envelope //nolint:revive // API prefix is intentional for clarity

// EnvelopeTransformer wraps operation output in the response envelope.
// Errors become {"success":false,"error":{...}}; anything else is data,
// successful only below 400.
func EnvelopeTransformer(_ huma.Context, status string, v any) (any, error) {
	code, err := strconv.Atoi(status)
	if err != nil {
		code = http.StatusInternalServerError
	}

	if err, ok := v.(error); ok {
		return response.Failure(errorBody(code, err)), nil
	}

	envelope := response.Success(v)
	envelope.Success = code < http.StatusBadRequest
	return envelope, nil
}
