package validation_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/listenupapp/shelves-server/internal/errors"
	"github.com/listenupapp/shelves-server/internal/validation"
)

type testRequest struct {
	Name   string `json:"name" validate:"required,max=10"`
	Handle string `json:"handle" validate:"required,min=3,handle"`
	Note   string `json:"note,omitempty" validate:"max=5"`
}

func TestValidator_ValidateSuccess(t *testing.T) {
	v := validation.New()

	err := v.Validate(testRequest{Name: "SciFi", Handle: "ada.l_1"})
	assert.NoError(t, err)
}

func TestValidator_ValidateErrors(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name      string
		req       testRequest
		wantField string
		wantMsg   string
	}{
		{
			name:      "missing required field",
			req:       testRequest{Name: "", Handle: "ada"},
			wantField: "name",
			wantMsg:   "is required",
		},
		{
			name:      "too long",
			req:       testRequest{Name: strings.Repeat("x", 11), Handle: "ada"},
			wantField: "name",
			wantMsg:   "must not exceed 10 characters",
		},
		{
			name:      "too short",
			req:       testRequest{Name: "SciFi", Handle: "ad"},
			wantField: "handle",
			wantMsg:   "must be at least 3 characters",
		},
		{
			name:      "bad handle characters",
			req:       testRequest{Name: "SciFi", Handle: "ada lovelace"},
			wantField: "handle",
			wantMsg:   "may only contain letters, digits, '.', '-' and '_'",
		},
		{
			name:      "optional field still bounded",
			req:       testRequest{Name: "SciFi", Handle: "ada", Note: "too long"},
			wantField: "note",
			wantMsg:   "must not exceed 5 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)
			require.Error(t, err)

			var domainErr *domainerrors.Error
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, domainerrors.CodeValidation, domainErr.Code)
			assert.Equal(t, http.StatusBadRequest, domainErr.HTTPStatus())

			details, ok := domainErr.Details.(map[string]string)
			require.True(t, ok)
			assert.Equal(t, tt.wantMsg, details[tt.wantField])
		})
	}
}

func TestValidator_ReportsEveryField(t *testing.T) {
	v := validation.New()

	err := v.Validate(testRequest{})
	require.Error(t, err)

	var domainErr *domainerrors.Error
	require.ErrorAs(t, err, &domainErr)
	details := domainErr.Details.(map[string]string)
	assert.Contains(t, details, "name")
	assert.Contains(t, details, "handle")
}
