package api

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"log/slog"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/require"

	"github.com/listenupapp/shelves-server/internal/auth"
	"github.com/listenupapp/shelves-server/internal/domain"
	"github.com/listenupapp/shelves-server/internal/ratelimit"
	"github.com/listenupapp/shelves-server/internal/service"
	"github.com/listenupapp/shelves-server/internal/store/sqlstore"
)

// testServer wraps the API server for handler tests.
type testServer struct {
	*Server
	api    humatest.TestAPI
	store  *sqlstore.Store
	users  *service.UserService
	tokens *auth.TokenService
}

// setupTestServer builds a server over a temporary SQLite store. burst
// bounds writes per user.
func setupTestServer(t *testing.T, burst int) *testServer {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)

	st, err := sqlstore.OpenSQLite(filepath.Join(t.TempDir(), "test.db"), logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	key := make([]byte, 32)
	_, err = rand.Read(key)
	require.NoError(t, err)
	tokens, err := auth.NewTokenService(key, 15*time.Minute)
	require.NoError(t, err)

	limiter := ratelimit.New(0.001, burst)
	t.Cleanup(limiter.Stop)

	services := &Services{
		Membership: service.NewMembershipService(st, logger),
		Content:    service.NewContentService(st, logger),
		Book:       service.NewBookService(st, logger),
		Profile:    service.NewProfileService(st, logger),
	}

	srv := NewServer(st, services, tokens, limiter, []string{"*"}, logger)

	return &testServer{
		Server: srv,
		api:    humatest.Wrap(t, srv.API()),
		store:  st,
		users:  service.NewUserService(st, logger),
		tokens: tokens,
	}
}

// register creates a user and returns it with an Authorization header value.
func (ts *testServer) register(t *testing.T, handle string) (*domain.User, string) {
	t.Helper()

	user, err := ts.users.Register(context.Background(), handle, "@"+handle)
	require.NoError(t, err)

	token, err := ts.tokens.GenerateAccessToken(user)
	require.NoError(t, err)

	return user, "Authorization: Bearer " + token
}

// decodeEnvelope unpacks the envelope and decodes data into out when given.
func decodeEnvelope(t *testing.T, resp *httptest.ResponseRecorder, out any) rawEnvelope {
	t.Helper()

	var env rawEnvelope
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &env), resp.Body.String())
	if out != nil {
		require.NoError(t, json.Unmarshal(env.Data, out))
	}
	return env
}

type rawEnvelope struct {
	Version int             `json:"v"`
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

// createShelf creates a shelf over HTTP and returns its response.
func (ts *testServer) createShelf(t *testing.T, authz, name string, public bool) ShelfResponse {
	t.Helper()

	resp := ts.api.Post("/api/v1/shelves", authz, map[string]any{"name": name, "is_public": public})
	require.Equal(t, 201, resp.Code, resp.Body.String())

	var shelf ShelfResponse
	decodeEnvelope(t, resp, &shelf)
	return shelf
}

// createBook creates a book over HTTP and returns its response.
func (ts *testServer) createBook(t *testing.T, authz, title string) BookResponse {
	t.Helper()

	resp := ts.api.Post("/api/v1/books", authz, map[string]any{"title": title, "author": "Ursula K. Le Guin"})
	require.Equal(t, 201, resp.Code, resp.Body.String())

	var book BookResponse
	decodeEnvelope(t, resp, &book)
	return book
}
