// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"notaspro/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateUsername is returned when the store's unique constraint on
// username rejects a write.
var ErrDuplicateUsername = errors.New("username already exists")

// UserRepository defines the standard operations for credential persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID, with the role resolved.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindByUsername retrieves a single user by exact username match, with the role resolved.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// List returns users ordered by ID using offset/limit pagination.
	List(ctx context.Context, offset, limit int) ([]*entity.User, error)

	// Create persists a new credential. The store's unique constraint on
	// username is the only cross-request invariant.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing credential (active flag, role, password hash).
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a credential. Outstanding tokens for it fail
	// verification afterwards.
	Delete(ctx context.Context, id uint) error

	// CountByRole reports how many credentials currently hold the named role.
	CountByRole(ctx context.Context, role entity.RoleName) (int64, error)
}
