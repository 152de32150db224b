package api

import (
	"net/http"

	"github.com/listenupapp/shelves-server/internal/http/response"
)

// writeRateLimit limits mutating requests per authenticated user.
// Reads and anonymous requests pass through; the latter are rejected by the
// handlers anyway.
func (s *Server) writeRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.writeLimiter == nil || !isWrite(r.Method) {
			next.ServeHTTP(w, r)
			return
		}

		userID := principalFrom(r.Context())
		if userID != "" && !s.writeLimiter.Allow(userID) {
			s.logger.Warn("rate limit exceeded",
				"user_id", userID,
				"method", r.Method,
				"path", r.URL.Path,
			)
			response.TooManyRequests(w, "1", s.logger)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func isWrite(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}
