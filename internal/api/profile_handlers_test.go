package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile_GetAndUpdateContact(t *testing.T) {
	ts := setupTestServer(t, 100)
	alice, authz := ts.register(t, "alice")

	resp := ts.api.Get("/api/v1/users/me", authz)
	require.Equal(t, http.StatusOK, resp.Code)
	var profile ProfileResponse
	decodeEnvelope(t, resp, &profile)
	assert.Equal(t, alice.ID, profile.ID)
	assert.Equal(t, "alice", profile.Handle)
	assert.Equal(t, "@alice", profile.Contact)

	resp = ts.api.Patch("/api/v1/users/me/contact", authz, map[string]any{"contact": "  @alice_reads  "})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	decodeEnvelope(t, resp, &profile)
	assert.Equal(t, "@alice_reads", profile.Contact)

	resp = ts.api.Patch("/api/v1/users/me/contact", authz, map[string]any{"contact": ""})
	require.Equal(t, http.StatusOK, resp.Code)
	decodeEnvelope(t, resp, &profile)
	assert.Empty(t, profile.Contact)
}

func TestProfile_ContactTooLong(t *testing.T) {
	ts := setupTestServer(t, 100)
	_, authz := ts.register(t, "alice")

	resp := ts.api.Patch("/api/v1/users/me/contact", authz, map[string]any{"contact": strings.Repeat("x", 201)})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
