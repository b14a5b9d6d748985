package impl

import (
	"context"
	"log/slog"

	deliverycontext "notaspro/internal/delivery/context"
	"notaspro/internal/domain/entity"
	domainerrors "notaspro/internal/domain/errors"
	"notaspro/internal/domain/repository"
	"notaspro/internal/domain/service"
	"notaspro/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	RoleRepo repository.RoleRepository
	Hasher   service.PasswordHasher
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		roleRepo: params.RoleRepo,
		hasher:   params.Hasher,
		logger:   params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *userService) resolveRole(ctx context.Context, name entity.RoleName) (*entity.Role, error) {
	if !name.IsValid() {
		return nil, domainerrors.ErrRoleNotFound.WrapMessage("unknown role name")
	}

	role, err := srv.roleRepo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			return nil, domainerrors.ErrRoleNotFound.WrapMessage("role not seeded")
		}

		return nil, errors.Wrap(err, "failed to resolve role by name")
	}

	return role, nil
}

// Create registers a credential. The password always arrives in plaintext
// and is hashed here; a pre-hashed value from a client is never accepted.
func (srv *userService) Create(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	role, err := srv.resolveRole(ctx, input.Role)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	newUser := &entity.User{
		Username:     input.Username,
		PasswordHash: hashedPassword,
		IsActive:     input.IsActive,
		RoleID:       role.ID,
	}
	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, domainerrors.ErrDuplicateUsername.WrapMessage("username taken")
		}

		return nil, errors.Wrap(err, "failed to create credential")
	}
	newUser.Role = role

	srv.log(ctx).Info("Credential created", slog.Any("userID", newUser.ID), slog.String("role", role.Name.String()))

	return newUser, nil
}

func (srv *userService) Get(ctx context.Context, id uint) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("credential lookup missed")
		}

		return nil, errors.Wrap(err, "failed to find credential")
	}

	return user, nil
}

func (srv *userService) List(ctx context.Context, input *usecase.ListInput) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx, input.Offset, input.Limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list credentials")
	}

	return users, nil
}

// Update applies the provided fields. A non-nil Password replaces the hash
// after hashing server-side.
func (srv *userService) Update(ctx context.Context, id uint, input *usecase.UpdateUserInput) (*entity.User, error) {
	user, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.Password != nil && *input.Password != "" {
		hashedPassword, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash replacement password")
		}
		user.PasswordHash = hashedPassword
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	if input.Role != nil {
		role, err := srv.resolveRole(ctx, *input.Role)
		if err != nil {
			return nil, err
		}
		user.RoleID = role.ID
		user.Role = role
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, domainerrors.ErrDuplicateUsername.WrapMessage("username taken")
		}
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("credential vanished during update")
		}

		return nil, errors.Wrap(err, "failed to update credential")
	}

	return user, nil
}

func (srv *userService) Delete(ctx context.Context, id uint) error {
	if err := srv.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("credential lookup missed")
		}

		return errors.Wrap(err, "failed to delete credential")
	}

	srv.log(ctx).Info("Credential deleted", slog.Any("userID", id))

	return nil
}
