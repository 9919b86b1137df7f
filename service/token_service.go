// file: service/token_service.go

package service

import (
	"errors"
	"fmt"
	"go-auth-api/config"
	"go-auth-api/logger"
	"go-auth-api/model"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token verification failure kinds.
var (
	ErrTokenInvalid   = errors.New("token signature or claims invalid")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("token payload malformed")
)

// TokenService signs and verifies the two token classes. Access and refresh
// tokens use distinct secrets, so one class can never be presented as the
// other.
type TokenService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewTokenService(cfg config.JWTConfig) *TokenService {
	return &TokenService{
		accessSecret:  []byte(cfg.AccessSecret),
		refreshSecret: []byte(cfg.RefreshSecret),
		accessTTL:     cfg.AccessTTL,
		refreshTTL:    cfg.RefreshTTL,
	}
}

// RefreshTTL reports the refresh token lifetime. The stored record's expiry
// is derived from the same value so the claim and the record cannot diverge.
func (s *TokenService) RefreshTTL() time.Duration {
	return s.refreshTTL
}

// GenerateAccessToken signs a short-lived token carrying only the user id.
func (s *TokenService) GenerateAccessToken(userID int) (string, error) {
	claims := &model.AppClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.accessSecret)
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", userID).Error("Failed to sign access token")
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return tokenString, nil
}

// GenerateRefreshToken signs a token carrying the user id and the unique
// token identifier (jti) under the refresh secret.
func (s *TokenService) GenerateRefreshToken(userID int, jti string) (string, error) {
	claims := &model.AppClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.refreshTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.refreshSecret)
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", userID).Error("Failed to sign refresh token")
		return "", fmt.Errorf("failed to sign refresh token: %w", err)
	}
	return tokenString, nil
}

// VerifyAccessToken validates signature and expiry under the access secret.
func (s *TokenService) VerifyAccessToken(tokenString string) (*model.AppClaims, error) {
	return s.verify(tokenString, s.accessSecret)
}

// VerifyRefreshToken validates signature and expiry under the refresh secret.
// A signature-valid token without a jti is malformed; it must never be
// treated as a usable refresh token.
func (s *TokenService) VerifyRefreshToken(tokenString string) (*model.AppClaims, error) {
	claims, err := s.verify(tokenString, s.refreshSecret)
	if err != nil {
		return nil, err
	}
	if claims.ID == "" {
		return nil, ErrTokenMalformed
	}
	return claims, nil
}

func (s *TokenService) verify(tokenString string, secret []byte) (*model.AppClaims, error) {
	claims := &model.AppClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		default:
			return nil, ErrTokenInvalid
		}
	}

	if !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
