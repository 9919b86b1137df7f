package handler

import (
	"context"
	"go-auth-api/common"
	"go-auth-api/service"
	"net/http"
	"strings"
)

type contextKey string

const UserIDKey contextKey = "userID"

// NewAuthMiddleware builds the Bearer-token guard around the access-token
// verifier. The key material lives in the TokenService; nothing here reads
// ambient configuration.
func NewAuthMiddleware(tokens *service.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				common.NewAuthError("Authorization header is required", nil).Send(w)
				return
			}

			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
				common.NewAuthError("Invalid authorization header format", nil).Send(w)
				return
			}

			claims, err := tokens.VerifyAccessToken(headerParts[1])
			if err != nil {
				common.NewAuthError("Invalid or expired token", err).Send(w)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
