package repository

import (
	"context"
	"errors"

	"notaspro/internal/domain/entity"
)

// ErrRoleNotFound is returned when a role lookup by name or ID misses.
var ErrRoleNotFound = errors.New("role not found")

// RoleRepository defines the operations for the fixed role set.
type RoleRepository interface {
	// FindByName retrieves a role by its unique name.
	FindByName(ctx context.Context, name entity.RoleName) (*entity.Role, error)

	// FindByID retrieves a role by its primary key.
	FindByID(ctx context.Context, id uint) (*entity.Role, error)

	// List returns all roles.
	List(ctx context.Context) ([]*entity.Role, error)

	// EnsureByName creates the role if absent and returns the stored row.
	// It is idempotent: concurrent or repeated calls for the same name
	// converge on a single row.
	EnsureByName(ctx context.Context, name entity.RoleName) (*entity.Role, error)
}
