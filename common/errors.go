package common

import (
	"encoding/json"
	"go-auth-api/logger"
	"net/http"

	"github.com/sirupsen/logrus"
)

type AppError struct {
	Code    int    `json:"-"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewValidationError reports bad or duplicate input (HTTP 400).
func NewValidationError(message string, err error) *AppError {
	return NewAppError(http.StatusBadRequest, message, err)
}

// NewAuthError reports failed credential or token checks (HTTP 401). The
// message stays generic; the underlying cause is only logged.
func NewAuthError(message string, err error) *AppError {
	return NewAppError(http.StatusUnauthorized, message, err)
}

// NewNotFoundError reports a missing resource (HTTP 404).
func NewNotFoundError(message string, err error) *AppError {
	return NewAppError(http.StatusNotFound, message, err)
}

// NewServerError reports a backing-store or unexpected failure (HTTP 500).
func NewServerError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, "Server error", err)
}

func (e *AppError) Send(w http.ResponseWriter) {
	if e.Err != nil {
		logger.Log.WithFields(logrus.Fields{
			"status_code":    e.Code,
			"internal_error": e.Err.Error(),
		}).Error(e.Message)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(e.Code)
	json.NewEncoder(w).Encode(e)
}
