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

// teacherService implements the TeacherUsecase interface.
type teacherService struct {
	teacherRepo repository.TeacherRepository
	logger      *slog.Logger
}

// TeacherServiceParams holds dependencies for teacherService, injected by Fx.
type TeacherServiceParams struct {
	fx.In

	TeacherRepo repository.TeacherRepository
	Logger      *slog.Logger
}

// NewTeacherService is the constructor for teacherService.
func NewTeacherService(params TeacherServiceParams) usecase.TeacherUsecase {
	return &teacherService{teacherRepo: params.TeacherRepo, logger: params.Logger}
}

func (srv *teacherService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *teacherService) Create(ctx context.Context, input *usecase.CreateProfileInput) (*entity.Teacher, error) {
	teacher := &entity.Teacher{Name: input.Name, UserID: input.UserID}
	if err := srv.teacherRepo.Create(ctx, teacher); err != nil {
		return nil, errors.Wrap(err, "failed to create teacher")
	}

	srv.log(ctx).Info("Teacher created", slog.Any("teacherID", teacher.ID))

	return teacher, nil
}

func (srv *teacherService) Get(ctx context.Context, id uint) (*entity.Teacher, error) {
	teacher, err := srv.teacherRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTeacherNotFound) {
			return nil, domainerrors.ErrEntityNotFound.WrapMessage("teacher lookup missed")
		}

		return nil, errors.Wrap(err, "failed to find teacher")
	}

	return teacher, nil
}

func (srv *teacherService) List(ctx context.Context, input *usecase.ListInput) ([]*entity.Teacher, error) {
	teachers, err := srv.teacherRepo.List(ctx, input.Offset, input.Limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list teachers")
	}

	return teachers, nil
}

func (srv *teacherService) Update(ctx context.Context, id uint, input *usecase.UpdateProfileInput) (*entity.Teacher, error) {
	teacher, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		teacher.Name = *input.Name
	}

	if err := srv.teacherRepo.Update(ctx, teacher); err != nil {
		return nil, errors.Wrap(err, "failed to update teacher")
	}

	return teacher, nil
}

func (srv *teacherService) Delete(ctx context.Context, id uint) error {
	if err := srv.teacherRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTeacherNotFound) {
			return domainerrors.ErrEntityNotFound.WrapMessage("teacher lookup missed")
		}

		return errors.Wrap(err, "failed to delete teacher")
	}

	srv.log(ctx).Info("Teacher deleted", slog.Any("teacherID", id))

	return nil
}
