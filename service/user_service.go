// file: service/user_service.go

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"go-auth-api/model"
	"go-auth-api/repository"
	"time"
)

const userInfoCacheTTL = 10 * time.Minute

// UserService serves user records for authenticated callers, with a
// cache-aside layer in front of the database. User records are immutable in
// this subsystem, so TTL expiry is the only invalidation needed.
type UserService struct {
	userRepo repository.IUserRepository
	cache    ICacheClient
}

func NewUserService(userRepo repository.IUserRepository, cache ICacheClient) *UserService {
	return &UserService{
		userRepo: userRepo,
		cache:    cache,
	}
}

// GetUserInfo returns the user record minus the password hash. A vanished
// subject is reported as ErrUserNotFound.
func (s *UserService) GetUserInfo(ctx context.Context, userID int) (*model.User, error) {
	cacheKey := fmt.Sprintf("user:info:%d", userID)

	// 1. Try the cache first.
	if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
		var user model.User
		if err := json.Unmarshal([]byte(cached), &user); err == nil {
			return &user, nil
		}
	}

	// 2. Cache miss. Fetch from the database.
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.Password = ""

	// 3. Store the result for future requests. The hash is excluded from the
	// JSON encoding, so it never reaches the cache.
	if data, err := json.Marshal(user); err == nil {
		s.cache.Set(ctx, cacheKey, data, userInfoCacheTTL)
	}

	return user, nil
}
