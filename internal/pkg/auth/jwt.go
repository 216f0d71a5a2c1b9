// Package auth issues and verifies the bearer tokens used by the HTTP
// adapter. Tokens are HS256-signed JWTs whose subject is the caller's
// email; role resolution happens against the user store on every request,
// so tokens carry identity only, never authority.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a token fails signature or expiry checks.
var ErrInvalidToken = errors.New("invalid token")

// Claims extends the registered JWT claims with the caller's email.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// TokenManager signs and verifies access tokens with a shared HS256 secret.
type TokenManager struct {
	secretKey []byte
	validity  time.Duration
}

// NewTokenManager creates a TokenManager with the given secret and token lifetime.
func NewTokenManager(secretKey []byte, validity time.Duration) *TokenManager {
	return &TokenManager{secretKey: secretKey, validity: validity}
}

// GenerateToken issues a signed token for the given email.
func (m *TokenManager) GenerateToken(email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.validity)),
		},
		Email: email,
	})

	return token.SignedString(m.secretKey)
}

// EmailFromToken verifies the token and returns the email it was issued for.
// Returns ErrInvalidToken for any token that does not verify, including
// tokens signed with a different method or secret and expired tokens.
func (m *TokenManager) EmailFromToken(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secretKey, nil
	})
	if err != nil {
		return "", errors.Join(ErrInvalidToken, err)
	}

	if !token.Valid || claims.Email == "" {
		return "", ErrInvalidToken
	}

	return claims.Email, nil
}
