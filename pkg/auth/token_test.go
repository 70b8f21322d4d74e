package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	t.Run("Issued tokens verify", func(t *testing.T) {
		tok, exp, err := m.Issue("user-1", "admin@example.com", "Admin User")
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

		claims, err := m.Verify(tok)
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.Subject)
		assert.Equal(t, "admin@example.com", claims.Email)
	})

	t.Run("Should reject tokens signed with another secret", func(t *testing.T) {
		other := NewTokenManager("other-secret", time.Hour)
		tok, _, err := other.Issue("user-1", "a@b.c", "")
		require.NoError(t, err)
		_, err = m.Verify(tok)
		assert.Error(t, err)
	})

	t.Run("Should reject expired tokens", func(t *testing.T) {
		past := NewTokenManager("test-secret", time.Minute)
		past.now = func() time.Time { return time.Now().Add(-time.Hour) }
		tok, _, err := past.Issue("user-1", "a@b.c", "")
		require.NoError(t, err)

		_, err = m.Verify(tok)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("Disabled without secret", func(t *testing.T) {
		off := NewTokenManager("", time.Hour)
		assert.False(t, off.Enabled())
		_, _, err := off.Issue("u", "e", "")
		assert.ErrorIs(t, err, ErrNoSecret)
	})
}
