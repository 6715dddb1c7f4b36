package middleware

import (
	"context"
	"net/http"
	"strings"

	"prms/backend/services"
)

// Define context keys
type contextKey string

const UserIDKey contextKey = "user_id"

// Auth verifies the Bearer session token and stores the acting user id
// in the request context. OPTIONS requests pass through for CORS
// preflight.
func Auth(tokens *services.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header is required", http.StatusUnauthorized)
				return
			}
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				http.Error(w, "Invalid Authorization header format", http.StatusUnauthorized)
				return
			}

			userID, err := tokens.Parse(parts[1])
			if err != nil {
				http.Error(w, "Invalid or expired token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext returns the acting user id set by Auth, or 0 when
// the request was not authenticated.
func UserIDFromContext(r *http.Request) int64 {
	id, _ := r.Context().Value(UserIDKey).(int64)
	return id
}

// WithUserID returns a request carrying the given acting user id, used
// by tests to bypass token verification.
func WithUserID(r *http.Request, userID int64) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), UserIDKey, userID))
}
