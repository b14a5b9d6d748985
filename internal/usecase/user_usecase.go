package usecase

import (
	"context"

	"notaspro/internal/domain/entity"
)

// CreateUserInput defines the data required to register a credential. The
// password always arrives in plaintext and is hashed before storage.
type CreateUserInput struct {
	Username string
	Password string
	Role     entity.RoleName
	IsActive bool
}

// UpdateUserInput defines the mutable credential fields. A nil field means
// "leave unchanged"; Password set to a non-empty string replaces the hash.
type UpdateUserInput struct {
	Username *string
	Password *string
	Role     *entity.RoleName
	IsActive *bool
}

// ListInput is the shared offset/limit pagination input.
type ListInput struct {
	Offset int
	Limit  int
}

// UserUsecase defines credential management operations.
type UserUsecase interface {
	Create(ctx context.Context, input *CreateUserInput) (*entity.User, error)
	Get(ctx context.Context, id uint) (*entity.User, error)
	List(ctx context.Context, input *ListInput) ([]*entity.User, error)
	Update(ctx context.Context, id uint, input *UpdateUserInput) (*entity.User, error)
	Delete(ctx context.Context, id uint) error
}

// RoleSeeder reconciles the fixed role set at startup.
type RoleSeeder interface {
	// EnsureDefaultRoles creates any missing seeded role. It is idempotent
	// and safe to run on every start.
	EnsureDefaultRoles(ctx context.Context) error
}
