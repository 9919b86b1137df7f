package repository

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrNotFound is returned when a record is absent, expired, or does not
	// match the caller's keys. Callers cannot distinguish those cases.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail is returned when a user insert hits the unique
	// email constraint.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrDuplicateTokenID is returned when a refresh token insert hits the
	// unique jti constraint. Token ids are generated from crypto/rand, so
	// this indicates a serious fault and is never retried silently.
	ErrDuplicateTokenID = errors.New("refresh token id already exists")
)

const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode
}
