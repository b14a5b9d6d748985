// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"notaspro/config"
	domainerrors "notaspro/internal/domain/errors"
	"notaspro/internal/domain/service"
)

const defaultAccessTTL = 30 * time.Minute

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// The signing key is process-wide configuration loaded once at startup;
// rotating it invalidates all outstanding tokens.
type jwtService struct {
	secret    string
	accessTTL time.Duration
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := cfg.JWT.AccessTTL
	if ttl == 0 {
		ttl = defaultAccessTTL
	}

	return &jwtService{
		secret:    cfg.JWT.Secret,
		accessTTL: ttl,
	}, nil
}

// NewJWTServiceWithTTL builds a token service with an explicit TTL. A zero
// TTL is kept as-is, which issues tokens that are already expired.
func NewJWTServiceWithTTL(secret string, ttl time.Duration) (service.TokenService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{secret: secret, accessTTL: ttl}, nil
}

// Issue creates a signed token with the username as subject and an absolute
// expiry of now + TTL.
func (s *jwtService) Issue(username string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.accessTTL)

	claims := &service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "failed to sign token")
	}

	return signed, expiresAt, nil
}

// Validate checks signature integrity and expiry of a token string.
// A bad signature or malformed token always maps to ErrTokenInvalid; only a
// well-signed token past its expiry maps to ErrTokenExpired.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrSignatureInvalid):
			return nil, domainerrors.ErrTokenInvalid.WrapMessage("token signature verification failed")
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, domainerrors.ErrTokenExpired.WrapMessage("token past its expiry")
		default:
			return nil, domainerrors.ErrTokenInvalid.WrapMessage("failed to parse token structure")
		}
	}

	if !token.Valid {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("token failed validation")
	}

	return claims, nil
}

// AccessTokenDuration returns the configured token lifetime.
func (s *jwtService) AccessTokenDuration() time.Duration {
	return s.accessTTL
}
