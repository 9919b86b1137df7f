// file: repository/token_repository.go

package repository

import (
	"context"
	"database/sql"
	"go-auth-api/logger"
	"go-auth-api/model"

	"github.com/sirupsen/logrus"
)

// ITokenRepository defines the contract for refresh token storage. The store
// owns the record lifecycle; callers mutate records only through these
// operations.
type ITokenRepository interface {
	Create(ctx context.Context, token *model.RefreshToken) error
	FindValid(ctx context.Context, jti string, userID int) (*model.RefreshToken, error)
	Consume(ctx context.Context, jti string, userID int) (*model.RefreshToken, error)
	DeleteExpired(ctx context.Context) (int64, error)
	TrimUserSessions(ctx context.Context, userID, keep int) (int64, error)
}

// TokenRepository implements ITokenRepository.
type TokenRepository struct {
	DB *sql.DB
}

// NewTokenRepository creates a new TokenRepository.
func NewTokenRepository(db *sql.DB) *TokenRepository {
	return &TokenRepository{DB: db}
}

// Create inserts a new refresh token record. A jti collision is surfaced as
// ErrDuplicateTokenID; the caller must not retry with the same id.
func (r *TokenRepository) Create(ctx context.Context, token *model.RefreshToken) error {
	log := logger.Log.WithFields(logrus.Fields{
		"user_id":    token.UserID,
		"jti":        token.JTI,
		"expires_at": token.ExpiresAt,
	})
	log.Info("Executing query to create a new refresh token")

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `INSERT INTO refresh_tokens (user_id, jti, token, expires_at) VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	err := r.DB.QueryRowContext(ctx, query, token.UserID, token.JTI, token.Token, token.ExpiresAt).
		Scan(&token.ID, &token.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			log.WithError(err).Error("Refresh token id collision on insert")
			return ErrDuplicateTokenID
		}
		log.WithError(err).Error("Failed to execute create refresh token query")
		return err
	}
	return nil
}

// FindValid retrieves a refresh token that matches both keys and has not
// expired. An expired-but-present record is indistinguishable from an absent
// one.
func (r *TokenRepository) FindValid(ctx context.Context, jti string, userID int) (*model.RefreshToken, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	token := &model.RefreshToken{}
	query := `SELECT id, user_id, jti, token, expires_at, created_at FROM refresh_tokens WHERE jti = $1 AND user_id = $2 AND expires_at > NOW()`
	err := r.DB.QueryRowContext(ctx, query, jti, userID).
		Scan(&token.ID, &token.UserID, &token.JTI, &token.Token, &token.ExpiresAt, &token.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		logger.Log.WithError(err).Error("Failed to execute find refresh token query")
		return nil, err
	}
	return token, nil
}

// Consume atomically finds and deletes a live refresh token in a single
// statement. Of N concurrent consumers of the same token, exactly one gets
// the record back; the rest get ErrNotFound. This is the point of truth for
// "can this token be used again".
func (r *TokenRepository) Consume(ctx context.Context, jti string, userID int) (*model.RefreshToken, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"user_id": userID,
		"jti":     jti,
	})
	log.Info("Executing query to consume a refresh token")

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	token := &model.RefreshToken{}
	query := `DELETE FROM refresh_tokens WHERE jti = $1 AND user_id = $2 AND expires_at > NOW() RETURNING id, user_id, jti, token, expires_at, created_at`
	err := r.DB.QueryRowContext(ctx, query, jti, userID).
		Scan(&token.ID, &token.UserID, &token.JTI, &token.Token, &token.ExpiresAt, &token.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		log.WithError(err).Error("Failed to execute consume refresh token query")
		return nil, err
	}
	return token, nil
}

// DeleteExpired purges refresh tokens past their expiry. Run out-of-band by
// the sweeper, never in the request path.
func (r *TokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.DB.ExecContext(ctx, `DELETE FROM refresh_tokens WHERE expires_at <= NOW()`)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute delete expired refresh tokens query")
		return 0, err
	}
	return res.RowsAffected()
}

// TrimUserSessions deletes the user's oldest refresh tokens beyond keep,
// enforcing the configured session cap.
func (r *TokenRepository) TrimUserSessions(ctx context.Context, userID, keep int) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `DELETE FROM refresh_tokens WHERE user_id = $1 AND id NOT IN (
		SELECT id FROM refresh_tokens WHERE user_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2
	)`
	res, err := r.DB.ExecContext(ctx, query, userID, keep)
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", userID).Error("Failed to execute trim user sessions query")
		return 0, err
	}
	return res.RowsAffected()
}
