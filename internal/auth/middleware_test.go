package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_ValidToken(t *testing.T) {
	tm := NewTokenManager([]byte("test-secret"), time.Hour)
	token, err := tm.Issue("user-123", "ash01")
	require.NoError(t, err)

	var gotClaims *Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		require.True(t, ok)
		gotClaims = claims
		w.WriteHeader(http.StatusOK)
	})

	handler := Middleware(tm, zerolog.Nop())(next)

	req := httptest.NewRequest(http.MethodGet, "/api/items", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, gotClaims)
	assert.Equal(t, "user-123", gotClaims.UserID)
	assert.Equal(t, "ash01", gotClaims.Username)
}

func TestMiddleware_Rejections(t *testing.T) {
	tm := NewTokenManager([]byte("test-secret"), time.Hour)

	expiredTM := NewTokenManager([]byte("test-secret"), -time.Minute)
	expiredToken, err := expiredTM.Issue("user-123", "ash01")
	require.NoError(t, err)

	otherTM := NewTokenManager([]byte("other-secret"), time.Hour)
	foreignToken, err := otherTM.Issue("user-123", "ash01")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "no header", header: ""},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz"},
		{name: "bearer without token", header: "Bearer "},
		{name: "garbage token", header: "Bearer not-a-token"},
		{name: "expired token", header: "Bearer " + expiredToken},
		{name: "wrong signature", header: "Bearer " + foreignToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlerCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handlerCalled = true
			})

			handler := Middleware(tm, zerolog.Nop())(next)

			req := httptest.NewRequest(http.MethodGet, "/api/items", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, handlerCalled, "protected handler must not run")

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "authorization required", body["message"])
		})
	}
}

func TestClaimsFromContext_Absent(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := ClaimsFromContext(req.Context())
	assert.False(t, ok)
}
