package auth

import (
	"strings"
	"testing"
	"time"

	domainerrors "notaspro/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc, err := NewJWTServiceWithTTL("test-secret", time.Minute)
	require.NoError(t, err)

	token, expiresAt, err := svc.Issue("alice")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Minute), expiresAt, 5*time.Second)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username())
}

func TestJWTService_ExpiredToken(t *testing.T) {
	// Zero TTL issues a token whose expiry is already in the past.
	svc, err := NewJWTServiceWithTTL("test-secret", 0)
	require.NoError(t, err)

	token, _, err := svc.Issue("alice")
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
}

func TestJWTService_TamperedSignatureIsInvalidNotExpired(t *testing.T) {
	// Even an expired token must report invalid when the signature is bad.
	svc, err := NewJWTServiceWithTTL("test-secret", 0)
	require.NoError(t, err)

	token, _, err := svc.Issue("alice")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "." + "AAAA" + parts[2][4:]

	_, err = svc.Validate(tampered)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
	assert.NotErrorIs(t, err, domainerrors.ErrTokenExpired)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTServiceWithTTL("secret-a", time.Minute)
	require.NoError(t, err)
	verifier, err := NewJWTServiceWithTTL("secret-b", time.Minute)
	require.NoError(t, err)

	token, _, err := issuer.Issue("alice")
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestJWTService_GarbageToken(t *testing.T) {
	svc, err := NewJWTServiceWithTTL("test-secret", time.Minute)
	require.NoError(t, err)

	_, err = svc.Validate("definitely-not-a-jwt")
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}
