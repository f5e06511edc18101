package auth

import (
	"net/http"
	"strings"
)

// TokenFromRequest extracts the bearer token from the Authorization header,
// falling back to the "token" cookie. Returns "" when no token is present.
func TokenFromRequest(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, "Bearer ")
		if len(parts) == 2 && strings.TrimSpace(parts[1]) != "" {
			return strings.TrimSpace(parts[1])
		}
	}

	cookie, err := r.Cookie("token")
	if err == nil {
		return cookie.Value
	}
	return ""
}
