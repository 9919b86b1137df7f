package service

import (
	"context"
	"errors"
	"go-auth-api/logger"
	"go-auth-api/model"
	"go-auth-api/repository"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// TokenPair is the issued credential pair returned by register, login and
// refresh.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// AuthService orchestrates credential verification, token issuance and
// refresh rotation. It never mutates refresh records directly; all record
// lifecycle goes through the token repository.
type AuthService struct {
	userRepo    repository.IUserRepository
	tokenRepo   repository.ITokenRepository
	tokens      *TokenService
	maxSessions int
}

func NewAuthService(userRepo repository.IUserRepository, tokenRepo repository.ITokenRepository, tokens *TokenService, maxSessions int) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		tokenRepo:   tokenRepo,
		tokens:      tokens,
		maxSessions: maxSessions,
	}
}

func (s *AuthService) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to hash password")
		return "", err
	}
	return string(bytes), nil
}

func (s *AuthService) CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// Register creates the user and issues the first token pair. A duplicate
// email is reported as ErrEmailTaken.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, *TokenPair, error) {
	hashedPassword, err := s.HashPassword(req.Password)
	if err != nil {
		return nil, nil, err
	}

	user := &model.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  hashedPassword,
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, nil, ErrEmailTaken
		}
		return nil, nil, err
	}

	pair, err := s.issueTokenPair(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Login verifies credentials and issues a new token pair. Unknown email and
// wrong password both yield ErrInvalidCredentials. Previously issued refresh
// tokens stay valid; concurrent sessions are permitted (subject to the
// configured cap).
func (s *AuthService) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokenPair(ctx, user.ID)
}

// Refresh rotates a presented refresh token: verify the signature, consume
// the stored record exactly once, then issue and persist a new pair. Forged,
// expired, already-consumed and mismatched tokens all fail identically with
// ErrInvalidRefreshToken.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	if refreshToken == "" {
		return nil, ErrInvalidRefreshToken
	}

	claims, err := s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	// The consume is the single point of truth for replay: of N concurrent
	// attempts with this token, exactly one reaches the issuance below.
	if _, err := s.tokenRepo.Consume(ctx, claims.ID, claims.UserID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}

	return s.issueTokenPair(ctx, claims.UserID)
}

func (s *AuthService) issueTokenPair(ctx context.Context, userID int) (*TokenPair, error) {
	jti := uuid.NewString()

	accessToken, err := s.tokens.GenerateAccessToken(userID)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.tokens.GenerateRefreshToken(userID, jti)
	if err != nil {
		return nil, err
	}

	record := &model.RefreshToken{
		UserID:    userID,
		JTI:       jti,
		Token:     refreshToken,
		ExpiresAt: time.Now().Add(s.tokens.RefreshTTL()),
	}
	if err := s.tokenRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	if s.maxSessions > 0 {
		// Best effort: a failed trim leaves extra sessions behind, it does
		// not invalidate the pair just issued.
		if _, err := s.tokenRepo.TrimUserSessions(ctx, userID, s.maxSessions); err != nil {
			logger.Log.WithError(err).WithField("user_id", userID).Warn("Failed to trim user sessions")
		}
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
