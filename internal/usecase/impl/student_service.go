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

// studentService implements the StudentUsecase interface.
type studentService struct {
	studentRepo  repository.StudentRepository
	guardianRepo repository.GuardianRepository
	logger       *slog.Logger
}

// StudentServiceParams holds dependencies for studentService, injected by Fx.
type StudentServiceParams struct {
	fx.In

	StudentRepo  repository.StudentRepository
	GuardianRepo repository.GuardianRepository
	Logger       *slog.Logger
}

// NewStudentService is the constructor for studentService.
func NewStudentService(params StudentServiceParams) usecase.StudentUsecase {
	return &studentService{
		studentRepo:  params.StudentRepo,
		guardianRepo: params.GuardianRepo,
		logger:       params.Logger,
	}
}

func (srv *studentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *studentService) checkGuardian(ctx context.Context, guardianID *uint) error {
	if guardianID == nil {
		return nil
	}
	if _, err := srv.guardianRepo.FindByID(ctx, *guardianID); err != nil {
		if errors.Is(err, repository.ErrGuardianNotFound) {
			return domainerrors.ErrEntityNotFound.WrapMessage("guardian does not exist")
		}

		return errors.Wrap(err, "failed to check guardian")
	}

	return nil
}

func (srv *studentService) Create(ctx context.Context, input *usecase.CreateStudentInput) (*entity.Student, error) {
	if err := srv.checkGuardian(ctx, input.GuardianID); err != nil {
		return nil, err
	}

	student := &entity.Student{
		Name:          input.Name,
		AcademicGrade: input.AcademicGrade,
		UserID:        input.UserID,
		GuardianID:    input.GuardianID,
	}
	if err := srv.studentRepo.Create(ctx, student); err != nil {
		return nil, errors.Wrap(err, "failed to create student")
	}

	srv.log(ctx).Info("Student created", slog.Any("studentID", student.ID))

	return student, nil
}

func (srv *studentService) Get(ctx context.Context, id uint) (*entity.Student, error) {
	student, err := srv.studentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			return nil, domainerrors.ErrEntityNotFound.WrapMessage("student lookup missed")
		}

		return nil, errors.Wrap(err, "failed to find student")
	}

	return student, nil
}

func (srv *studentService) List(ctx context.Context, input *usecase.ListInput) ([]*entity.Student, error) {
	students, err := srv.studentRepo.List(ctx, input.Offset, input.Limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list students")
	}

	return students, nil
}

func (srv *studentService) Update(ctx context.Context, id uint, input *usecase.UpdateStudentInput) (*entity.Student, error) {
	student, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		student.Name = *input.Name
	}
	if input.AcademicGrade != nil {
		student.AcademicGrade = *input.AcademicGrade
	}
	if input.GuardianID != nil {
		if err := srv.checkGuardian(ctx, input.GuardianID); err != nil {
			return nil, err
		}
		student.GuardianID = input.GuardianID
	}

	if err := srv.studentRepo.Update(ctx, student); err != nil {
		return nil, errors.Wrap(err, "failed to update student")
	}

	return student, nil
}

func (srv *studentService) Delete(ctx context.Context, id uint) error {
	if err := srv.studentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			return domainerrors.ErrEntityNotFound.WrapMessage("student lookup missed")
		}

		return errors.Wrap(err, "failed to delete student")
	}

	srv.log(ctx).Info("Student deleted", slog.Any("studentID", id))

	return nil
}
