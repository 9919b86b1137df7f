// file: model/token.go

package model

import "time"

// RefreshToken holds the data for a stored refresh token. JTI is the unique
// token identifier embedded in the signed token; it is the consumption key.
type RefreshToken struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	JTI       string    `json:"jti"`
	Token     string    `json:"-"` // The signed token is not exposed in JSON responses.
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
