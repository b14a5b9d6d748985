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

// subjectService implements the SubjectUsecase interface.
type subjectService struct {
	subjectRepo repository.SubjectRepository
	logger      *slog.Logger
}

// SubjectServiceParams holds dependencies for subjectService, injected by Fx.
type SubjectServiceParams struct {
	fx.In

	SubjectRepo repository.SubjectRepository
	Logger      *slog.Logger
}

// NewSubjectService is the constructor for subjectService.
func NewSubjectService(params SubjectServiceParams) usecase.SubjectUsecase {
	return &subjectService{subjectRepo: params.SubjectRepo, logger: params.Logger}
}

func (srv *subjectService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *subjectService) Create(ctx context.Context, input *usecase.CreateSubjectInput) (*entity.Subject, error) {
	subject := &entity.Subject{
		Name:          input.Name,
		Description:   input.Description,
		AcademicGrade: input.AcademicGrade,
	}
	if err := srv.subjectRepo.Create(ctx, subject); err != nil {
		return nil, errors.Wrap(err, "failed to create subject")
	}

	srv.log(ctx).Info("Subject created", slog.Any("subjectID", subject.ID))

	return subject, nil
}

func (srv *subjectService) Get(ctx context.Context, id uint) (*entity.Subject, error) {
	subject, err := srv.subjectRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSubjectNotFound) {
			return nil, domainerrors.ErrEntityNotFound.WrapMessage("subject lookup missed")
		}

		return nil, errors.Wrap(err, "failed to find subject")
	}

	return subject, nil
}

func (srv *subjectService) List(ctx context.Context, input *usecase.ListInput) ([]*entity.Subject, error) {
	subjects, err := srv.subjectRepo.List(ctx, input.Offset, input.Limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subjects")
	}

	return subjects, nil
}

func (srv *subjectService) Update(ctx context.Context, id uint, input *usecase.UpdateSubjectInput) (*entity.Subject, error) {
	subject, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		subject.Name = *input.Name
	}
	if input.Description != nil {
		subject.Description = *input.Description
	}
	if input.AcademicGrade != nil {
		subject.AcademicGrade = *input.AcademicGrade
	}

	if err := srv.subjectRepo.Update(ctx, subject); err != nil {
		return nil, errors.Wrap(err, "failed to update subject")
	}

	return subject, nil
}

func (srv *subjectService) Delete(ctx context.Context, id uint) error {
	if err := srv.subjectRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSubjectNotFound) {
			return domainerrors.ErrEntityNotFound.WrapMessage("subject lookup missed")
		}

		return errors.Wrap(err, "failed to delete subject")
	}

	srv.log(ctx).Info("Subject deleted", slog.Any("subjectID", id))

	return nil
}
