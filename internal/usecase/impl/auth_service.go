// Package impl contains the implementation of the application's business logic.
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

// unknownUserHash is a throwaway bcrypt hash compared against when the
// username does not exist, so both login failure paths pay the same
// bcrypt cost.
const unknownUserHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies the credential and issues a bearer token. Unknown
// username, wrong password, and inactive account all surface as the same
// ErrInvalidCredentials so the response does not reveal which check failed.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Burn the same bcrypt cost as the known-username path.
			srv.hasher.Check(input.Password, unknownUserHash)
			srv.log(ctx).Warn("Login failed", slog.String("username", input.Username))

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to look up login credential")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	if !user.IsActive {
		srv.log(ctx).Warn("Login rejected for inactive credential", slog.String("username", input.Username))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	token, _, err := srv.tokenService.Issue(user.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	srv.log(ctx).Debug("Login succeeded", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(srv.tokenService.AccessTokenDuration().Seconds()),
	}, nil
}

// CurrentUser resolves a bearer token to the live credential. Role and
// active status come from the store on every call, never from the token.
func (srv *authService) CurrentUser(ctx context.Context, tokenString string) (*entity.User, error) {
	claims, err := srv.tokenService.Validate(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByUsername(ctx, claims.Username())
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("token subject no longer exists")
		}

		return nil, errors.Wrap(err, "failed to resolve token subject")
	}

	if !user.IsActive {
		return nil, domainerrors.ErrUserInactive.WrapMessage("token subject is inactive")
	}

	return user, nil
}

// bootstrapAdminLock names the exclusive transaction lock held while the
// first administrator is created.
const bootstrapAdminLock = "auth:bootstrap-admin"

// BootstrapAdmin creates the first administrator credential. The count and
// the insert run inside one exclusive transaction, so concurrent calls queue
// on the lock and every one after the first sees the committed admin and
// fails; once any credential holds the admin role the operation stays
// disabled until the store says otherwise.
func (srv *authService) BootstrapAdmin(ctx context.Context, input *usecase.BootstrapAdminInput) (*entity.User, error) {
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash bootstrap password")
	}

	var created *entity.User
	err = srv.txManager.ExecuteExclusive(ctx, bootstrapAdminLock, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		roleRepo := repoFactory.RoleRepo()

		count, err := userRepo.CountByRole(ctx, entity.RoleAdmin)
		if err != nil {
			return errors.Wrap(err, "failed to count admin credentials")
		}
		if count > 0 {
			return domainerrors.ErrBootstrapDisabled.WrapMessage("bootstrap already consumed")
		}

		adminRole, err := roleRepo.EnsureByName(ctx, entity.RoleAdmin)
		if err != nil {
			return errors.Wrap(err, "failed to ensure admin role")
		}

		newUser := &entity.User{
			Username:     input.Username,
			PasswordHash: hashedPassword,
			IsActive:     true,
			RoleID:       adminRole.ID,
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			if errors.Is(err, repository.ErrDuplicateUsername) {
				return domainerrors.ErrDuplicateUsername.WrapMessage("bootstrap username taken")
			}

			return errors.Wrap(err, "failed to create bootstrap credential")
		}
		newUser.Role = adminRole
		created = newUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Bootstrap admin failed", slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Bootstrap admin created", slog.Any("userID", created.ID))

	return created, nil
}
