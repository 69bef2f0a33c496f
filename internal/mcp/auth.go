// ABOUTME: Bearer-token middleware for the hosted HTTP endpoints.
// ABOUTME: Open access when no token is configured; 401/403 otherwise.
package mcp

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"
)

// BearerAuth wraps next with a bearer-token check against apiToken. When
// apiToken is empty the handler is returned unchanged (open access, local
// development).
func BearerAuth(next http.Handler, apiToken string) http.Handler {
	if apiToken == "" {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			writeAuthError(w, http.StatusUnauthorized, "Missing or invalid Authorization header")
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		if subtle.ConstantTimeCompare([]byte(token), []byte(apiToken)) != 1 {
			writeAuthError(w, http.StatusForbidden, "Invalid API token")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func writeAuthError(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}
