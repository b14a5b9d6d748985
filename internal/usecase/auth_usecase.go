// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"notaspro/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the data required for a credential to log in.
type LoginInput struct {
	Username string
	Password string
}

// BootstrapAdminInput defines the data for the single-use administrator
// bootstrap.
type BootstrapAdminInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the issued bearer token after a successful login.
type LoginOutput struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int64
}

// AuthUsecase defines the authentication operations the delivery layer
// depends on.
type AuthUsecase interface {
	// Login verifies a username/password pair and issues a bearer token.
	// Unknown usernames and wrong passwords produce the same failure.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// CurrentUser resolves a bearer token to the live credential. The role
	// and active flag come from the store, never from the token.
	CurrentUser(ctx context.Context, tokenString string) (*entity.User, error)

	// BootstrapAdmin creates the first administrator credential. Once any
	// admin exists the operation is permanently disabled.
	BootstrapAdmin(ctx context.Context, input *BootstrapAdminInput) (*entity.User, error)
}
