package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by every token the platform accepts. Session tokens fill
// UserID; tokens minted by the identity service fill IdentityID instead
// (the profile may not exist yet at that point).
type Claims struct {
	UserID     uint   `json:"userId,omitempty"`
	IdentityID string `json:"identityId,omitempty"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken mints a session JWT for a logged-in profile.
func GenerateToken(userID uint, email, role, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
