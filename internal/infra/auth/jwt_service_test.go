package auth

import (
	"testing"
	"time"

	"saferoute/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string) *config.Config {
	return &config.Config{Auth: &config.AuthConfig{Enabled: true, JWTSecret: secret}}
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)

	_, err = NewJWTService(newTestConfig(""))
	assert.Error(t, err)
}

func TestJWTService_ValidateToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test-secret"))
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		token, err := IssueToken("test-secret", "user-123", time.Minute)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "user-123", claims.Subject)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := IssueToken("other-secret", "user-123", time.Minute)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := IssueToken("test-secret", "user-123", -time.Minute)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("missing subject", func(t *testing.T) {
		token, err := IssueToken("test-secret", "", time.Minute)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("unexpected signing method", func(t *testing.T) {
		claims := jwt.RegisteredClaims{
			Subject:   "user-123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.Error(t, err)
	})
}
