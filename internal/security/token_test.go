package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour, 24*time.Hour)

	t.Run("AccessToken", func(t *testing.T) {
		token, err := tm.GenerateAccessToken(5, "owner@gym.test", "ADMIN")
		assert.NoError(t, err)

		claims, err := tm.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, int64(5), claims.UserID)
		assert.Equal(t, "owner@gym.test", claims.Email)
		assert.Equal(t, "ADMIN", claims.Role)
		assert.Equal(t, TokenTypeAccess, claims.Type)
	})

	t.Run("RefreshToken", func(t *testing.T) {
		token, err := tm.GenerateRefreshToken(5, "owner@gym.test")
		assert.NoError(t, err)

		claims, err := tm.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, TokenTypeRefresh, claims.Type)
		assert.Empty(t, claims.Role)
	})
}

func TestTokenManager_ValidateToken(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour, 24*time.Hour)

	t.Run("Garbage", func(t *testing.T) {
		_, err := tm.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		other := NewTokenManager("ffffffffffffffffffffffffffffffff", time.Hour, 24*time.Hour)
		token, err := other.GenerateAccessToken(5, "owner@gym.test", "USER")
		assert.NoError(t, err)

		_, err = tm.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Expired", func(t *testing.T) {
		expired := &tokenManager{secret: []byte(testSecret), accessTTL: -time.Minute, refreshTTL: time.Hour}
		token, err := expired.GenerateAccessToken(5, "owner@gym.test", "USER")
		assert.NoError(t, err)

		_, err = tm.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})
}
