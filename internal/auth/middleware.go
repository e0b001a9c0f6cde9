package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
)

// contextKey is a private type for context values set by the middleware.
type contextKey struct{}

// claimsContextKey is the context key under which verified claims are stored.
var claimsContextKey = contextKey{}

// bearerPrefix is the expected Authorization scheme.
const bearerPrefix = "Bearer "

// Middleware returns an access control gate for protected routes.
//
// Each request passes through extract -> verify -> admit: the bearer token is
// read from the Authorization header, checked for signature and expiry, and
// on success the decoded claims are attached to the request context. Any
// failure short-circuits with 401 before the handler is invoked. The gate is
// stateless and has no side effects.
func Middleware(tm *TokenManager, logger zerolog.Logger) func(http.Handler) http.Handler {
	log := logger.With().Str("component", "auth_middleware").Logger()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := extractBearerToken(r)
			if !ok {
				writeUnauthorized(w)
				return
			}

			claims, err := tm.Verify(token)
			if err != nil {
				log.Debug().Err(err).Str("path", r.URL.Path).Msg("token verification failed")
				writeUnauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), claimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractBearerToken reads the token from the Authorization header.
// Returns false if the header is absent or not a Bearer credential.
func extractBearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" || !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	if token == "" {
		return "", false
	}

	return token, true
}

// ClaimsFromContext retrieves the verified claims attached by Middleware.
// Returns false if the request did not pass through the middleware.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(*Claims)
	return claims, ok
}

// writeUnauthorized writes the 401 response used for every admission failure.
// The body does not distinguish missing, malformed, and expired tokens.
func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"message":"authorization required"}`))
}
