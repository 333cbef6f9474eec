package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuer_Issue(t *testing.T) {
	t.Run("issued token verifies with the same secret", func(t *testing.T) {
		issuer := NewTokenIssuer("secret", "orchestrator-service")

		token, err := issuer.Issue("read write")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := VerifyToken(token, "secret")
		require.NoError(t, err)
		assert.Equal(t, "orchestrator-service", claims.Subject)
		assert.True(t, claims.HasScope("read"))
		assert.True(t, claims.HasScope("write"))
		assert.False(t, claims.HasScope("admin"))
	})

	t.Run("token is cached for identical scopes", func(t *testing.T) {
		issuer := NewTokenIssuer("secret", "orchestrator-service")

		first, err := issuer.Issue("read")
		require.NoError(t, err)
		second, err := issuer.Issue("read")
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("changing scopes mints a fresh token", func(t *testing.T) {
		issuer := NewTokenIssuer("secret", "orchestrator-service")

		read, err := issuer.Issue("read")
		require.NoError(t, err)
		write, err := issuer.Issue("write")
		require.NoError(t, err)

		assert.NotEqual(t, read, write)

		claims, err := VerifyToken(write, "secret")
		require.NoError(t, err)
		assert.False(t, claims.HasScope("read"))
	})
}

func TestVerifyToken(t *testing.T) {
	t.Run("wrong secret is rejected", func(t *testing.T) {
		issuer := NewTokenIssuer("secret", "orchestrator-service")
		token, err := issuer.Issue("read")
		require.NoError(t, err)

		_, err = VerifyToken(token, "other-secret")
		assert.Error(t, err)
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		_, err := VerifyToken("not-a-jwt", "secret")
		assert.Error(t, err)
	})
}
