package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for the access tokens. The subject is
// the username; current role and active status are re-resolved against the
// user store on every use, never trusted from the token.
type Claims struct {
	jwt.RegisteredClaims
}

// Username returns the token subject.
func (c *Claims) Username() string {
	return c.Subject
}

// TokenService defines the interface for issuing and validating bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed token binding the username as subject with an
	// absolute expiry of now + the configured TTL.
	Issue(username string) (token string, expiresAt time.Time, err error)

	// Validate checks signature integrity and expiry of a token string.
	Validate(tokenString string) (*Claims, error)

	// AccessTokenDuration returns the configured token lifetime.
	AccessTokenDuration() time.Duration
}
