// file: service/token_service_test.go

package service

import (
	"go-auth-api/config"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		AccessSecret:  "test-access-secret",
		RefreshSecret: "test-refresh-secret",
		AccessTTL:     15 * time.Minute,
		RefreshTTL:    24 * time.Hour,
	}
}

func TestTokenService_RefreshRoundTrip(t *testing.T) {
	tokens := NewTokenService(testJWTConfig())
	jti := uuid.NewString()

	signed, err := tokens.GenerateRefreshToken(42, jti)
	assert.NoError(t, err)

	claims, err := tokens.VerifyRefreshToken(signed)
	assert.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, jti, claims.ID)
}

func TestTokenService_AccessRoundTrip(t *testing.T) {
	tokens := NewTokenService(testJWTConfig())

	signed, err := tokens.GenerateAccessToken(7)
	assert.NoError(t, err)

	claims, err := tokens.VerifyAccessToken(signed)
	assert.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
}

// Tokens of one class must never verify under the other class's key.
func TestTokenService_ClassesAreNotInterchangeable(t *testing.T) {
	tokens := NewTokenService(testJWTConfig())

	accessToken, err := tokens.GenerateAccessToken(42)
	assert.NoError(t, err)
	refreshToken, err := tokens.GenerateRefreshToken(42, uuid.NewString())
	assert.NoError(t, err)

	_, err = tokens.VerifyRefreshToken(accessToken)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = tokens.VerifyAccessToken(refreshToken)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenService_ExpiredRefreshTokenRejected(t *testing.T) {
	cfg := testJWTConfig()
	cfg.RefreshTTL = -time.Minute
	tokens := NewTokenService(cfg)

	signed, err := tokens.GenerateRefreshToken(42, uuid.NewString())
	assert.NoError(t, err)

	_, err = tokens.VerifyRefreshToken(signed)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

// A refresh token without a jti must be rejected even though its signature
// checks out.
func TestTokenService_RefreshTokenWithoutIDIsMalformed(t *testing.T) {
	tokens := NewTokenService(testJWTConfig())

	signed, err := tokens.GenerateRefreshToken(42, "")
	assert.NoError(t, err)

	_, err = tokens.VerifyRefreshToken(signed)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestTokenService_GarbageInputRejected(t *testing.T) {
	tokens := NewTokenService(testJWTConfig())

	_, err := tokens.VerifyRefreshToken("not.a.token")
	assert.Error(t, err)

	_, err = tokens.VerifyAccessToken("")
	assert.Error(t, err)
}
