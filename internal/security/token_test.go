package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager("unit-test-secret-0123456789abcdefghij")

	token, err := m.IssueAccessToken("user@test.com", 30*time.Minute)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := m.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user@test.com", claims.Subject)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestTokenManager_Expired(t *testing.T) {
	m := NewTokenManager("unit-test-secret-0123456789abcdefghij")

	token, err := m.IssueAccessToken("user@test.com", -time.Minute)
	assert.NoError(t, err)

	claims, err := m.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
	assert.Nil(t, claims)
}

func TestTokenManager_InvalidToken(t *testing.T) {
	m := NewTokenManager("unit-test-secret-0123456789abcdefghij")

	t.Run("Garbage", func(t *testing.T) {
		claims, err := m.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.Nil(t, claims)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		other := NewTokenManager("a-different-secret-0123456789abcdefgh")
		token, err := other.IssueAccessToken("user@test.com", time.Minute)
		assert.NoError(t, err)

		claims, err := m.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.Nil(t, claims)
	})
}
