package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the claims carried by navigation API access tokens.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenVerifier validates bearer tokens issued by the identity provider.
type TokenVerifier interface {
	// ValidateToken checks the signature and expiry of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
