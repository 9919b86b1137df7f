package service

import "errors"

// Failure kinds surfaced to handlers. Credential and token failures are
// deliberately coarse so the boundary cannot leak which check failed.
var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrEmailTaken          = errors.New("user already exists")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrUserNotFound        = errors.New("user not found")
)
