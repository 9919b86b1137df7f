// file: service/sweeper.go

package service

import (
	"context"
	"go-auth-api/logger"
	"go-auth-api/repository"
	"time"
)

// TokenSweeper periodically purges expired refresh token records. Leaving
// stale records around is a resource leak, not a correctness problem, so the
// sweep runs out-of-band and never in the request path.
type TokenSweeper struct {
	tokenRepo repository.ITokenRepository
	interval  time.Duration
}

func NewTokenSweeper(tokenRepo repository.ITokenRepository, interval time.Duration) *TokenSweeper {
	if interval <= 0 {
		interval = time.Hour
	}
	return &TokenSweeper{tokenRepo: tokenRepo, interval: interval}
}

// Start launches the sweep loop. It returns immediately; the loop stops when
// ctx is cancelled.
func (s *TokenSweeper) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				logger.Log.Info("Token sweeper stopped")
				return
			case <-ticker.C:
				s.sweep(ctx)
			}
		}
	}()
}

func (s *TokenSweeper) sweep(ctx context.Context) {
	removed, err := s.tokenRepo.DeleteExpired(ctx)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to sweep expired refresh tokens")
		return
	}
	if removed > 0 {
		logger.Log.WithField("removed", removed).Info("Swept expired refresh tokens")
	}
}
