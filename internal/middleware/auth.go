package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

const (
	// AdminTokenHeader is checked when no Authorization header is present,
	// for admin UI integrations that cannot set bearer credentials.
	AdminTokenHeader = "X-Admin-Token"

	bearerPrefix = "Bearer "
)

// RequireAdminToken rejects requests that do not carry the shared admin
// API token. An empty token disables the check.
func RequireAdminToken(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if token == "" {
			return next
		}
		expected := []byte(token)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			presented, ok := adminToken(r)
			if !ok {
				w.Header().Set("WWW-Authenticate", `Bearer realm="admin"`)
				respondUnauthorized(w, r, "Authentication required")
				return
			}
			if subtle.ConstantTimeCompare([]byte(presented), expected) != 1 {
				respondUnauthorized(w, r, "Invalid admin token")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func adminToken(r *http.Request) (string, bool) {
	if auth := r.Header.Get("Authorization"); auth != "" {
		if !strings.HasPrefix(auth, bearerPrefix) {
			return "", false
		}
		t := strings.TrimSpace(auth[len(bearerPrefix):])
		return t, t != ""
	}
	if t := r.Header.Get(AdminTokenHeader); t != "" {
		return t, true
	}
	return "", false
}
