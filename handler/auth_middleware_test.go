// file: handler/auth_middleware_test.go

package handler

import (
	"go-auth-api/service"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	tokens := service.NewTokenService(testJWTConfig)
	middleware := NewAuthMiddleware(tokens)

	var gotUserID int
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = r.Context().Value(UserIDKey).(int)
		w.WriteHeader(http.StatusOK)
	})

	t.Run("valid token passes the user id to the next handler", func(t *testing.T) {
		accessToken, err := tokens.GenerateAccessToken(42)
		assert.NoError(t, err)

		req, _ := http.NewRequest("GET", "/user/info", nil)
		req.Header.Set("Authorization", "Bearer "+accessToken)
		rr := httptest.NewRecorder()
		middleware(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 42, gotUserID)
	})

	t.Run("missing header", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/user/info", nil)
		rr := httptest.NewRecorder()
		middleware(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/user/info", nil)
		req.Header.Set("Authorization", "Token abc")
		rr := httptest.NewRecorder()
		middleware(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("refresh token is not accepted as an access token", func(t *testing.T) {
		refreshToken, err := tokens.GenerateRefreshToken(42, "some-jti")
		assert.NoError(t, err)

		req, _ := http.NewRequest("GET", "/user/info", nil)
		req.Header.Set("Authorization", "Bearer "+refreshToken)
		rr := httptest.NewRecorder()
		middleware(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
