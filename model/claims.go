package model

import "github.com/golang-jwt/jwt/v5"

// AppClaims is the claim set for both token classes. Access tokens carry only
// the user id; refresh tokens additionally set RegisteredClaims.ID (the jti).
type AppClaims struct {
	UserID int `json:"user_id"`
	jwt.RegisteredClaims
}
