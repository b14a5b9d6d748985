package impl

import (
	"context"
	"log/slog"

	deliverycontext "notaspro/internal/delivery/context"
	"notaspro/internal/domain/entity"
	domainerrors "notaspro/internal/domain/errors"
	"notaspro/internal/domain/repository"
	"notaspro/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// guardianService implements the GuardianUsecase interface.
type guardianService struct {
	guardianRepo repository.GuardianRepository
	logger       *slog.Logger
}

// GuardianServiceParams holds dependencies for guardianService, injected by Fx.
type GuardianServiceParams struct {
	fx.In

	GuardianRepo repository.GuardianRepository
	Logger       *slog.Logger
}

// NewGuardianService is the constructor for guardianService.
func NewGuardianService(params GuardianServiceParams) usecase.GuardianUsecase {
	return &guardianService{guardianRepo: params.GuardianRepo, logger: params.Logger}
}

func (srv *guardianService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *guardianService) Create(ctx context.Context, input *usecase.CreateProfileInput) (*entity.Guardian, error) {
	guardian := &entity.Guardian{Name: input.Name, UserID: input.UserID}
	if err := srv.guardianRepo.Create(ctx, guardian); err != nil {
		return nil, errors.Wrap(err, "failed to create guardian")
	}

	srv.log(ctx).Info("Guardian created", slog.Any("guardianID", guardian.ID))

	return guardian, nil
}

func (srv *guardianService) Get(ctx context.Context, id uint) (*entity.Guardian, error) {
	guardian, err := srv.guardianRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrGuardianNotFound) {
			return nil, domainerrors.ErrEntityNotFound.WrapMessage("guardian lookup missed")
		}

		return nil, errors.Wrap(err, "failed to find guardian")
	}

	return guardian, nil
}

func (srv *guardianService) List(ctx context.Context, input *usecase.ListInput) ([]*entity.Guardian, error) {
	guardians, err := srv.guardianRepo.List(ctx, input.Offset, input.Limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list guardians")
	}

	return guardians, nil
}

func (srv *guardianService) Update(ctx context.Context, id uint, input *usecase.UpdateProfileInput) (*entity.Guardian, error) {
	guardian, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		guardian.Name = *input.Name
	}

	if err := srv.guardianRepo.Update(ctx, guardian); err != nil {
		return nil, errors.Wrap(err, "failed to update guardian")
	}

	return guardian, nil
}

func (srv *guardianService) Delete(ctx context.Context, id uint) error {
	if err := srv.guardianRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrGuardianNotFound) {
			return domainerrors.ErrEntityNotFound.WrapMessage("guardian lookup missed")
		}

		return errors.Wrap(err, "failed to delete guardian")
	}

	srv.log(ctx).Info("Guardian deleted", slog.Any("guardianID", id))

	return nil
}
