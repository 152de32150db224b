package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/listenupapp/shelves-server/internal/auth"
	domainerrors "github.com/listenupapp/shelves-server/internal/errors"
)

type principalKey struct{}

// GetUserID returns the authenticated principal, or an UNAUTHORIZED error
// for anonymous requests.
func GetUserID(ctx context.Context) (string, error) {
	if userID := principalFrom(ctx); userID != "" {
		return userID, nil
	}
	return "", domainerrors.Unauthorized("authentication required")
}

func principalFrom(ctx context.Context) string {
	userID, _ := ctx.Value(principalKey{}).(string) //nolint:errcheck // absent means anonymous
	return userID
}

func withPrincipal(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, principalKey{}, userID)
}

// bearerToken extracts the token from an "Authorization: Bearer" header.
func bearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// authMiddleware resolves the request principal from its bearer token.
// Requests without a valid token proceed anonymously; GetUserID rejects them
// on routes that need a caller.
func authMiddleware(tokens *auth.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			claims, err := tokens.VerifyAccessToken(token)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(withPrincipal(r.Context(), claims.Principal())))
		})
	}
}
