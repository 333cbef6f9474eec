package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireScope(t *testing.T) {
	const secret = "secret"

	handler := RequireScope(secret, "write")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, "test-caller", claims.Subject)
		w.WriteHeader(http.StatusNoContent)
	}))

	issueToken := func(t *testing.T, scopes string) string {
		t.Helper()
		token, err := NewTokenIssuer(secret, "test-caller").Issue(scopes)
		require.NoError(t, err)
		return token
	}

	t.Run("valid token with scope passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/place-order", nil)
		req.Header.Set("Authorization", "Bearer "+issueToken(t, "read write"))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("missing header is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/place-order", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed token is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/place-order", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing scope is forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/place-order", nil)
		req.Header.Set("Authorization", "Bearer "+issueToken(t, "read"))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
