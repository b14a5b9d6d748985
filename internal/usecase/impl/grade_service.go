package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "notaspro/internal/delivery/context"
	"notaspro/internal/domain/entity"
	domainerrors "notaspro/internal/domain/errors"
	"notaspro/internal/domain/repository"
	"notaspro/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// gradeService implements the GradeUsecase interface.
type gradeService struct {
	gradeRepo   repository.GradeRepository
	studentRepo repository.StudentRepository
	subjectRepo repository.SubjectRepository
	logger      *slog.Logger
}

// GradeServiceParams holds dependencies for gradeService, injected by Fx.
type GradeServiceParams struct {
	fx.In

	GradeRepo   repository.GradeRepository
	StudentRepo repository.StudentRepository
	SubjectRepo repository.SubjectRepository
	Logger      *slog.Logger
}

// NewGradeService is the constructor for gradeService.
func NewGradeService(params GradeServiceParams) usecase.GradeUsecase {
	return &gradeService{
		gradeRepo:   params.GradeRepo,
		studentRepo: params.StudentRepo,
		subjectRepo: params.SubjectRepo,
		logger:      params.Logger,
	}
}

func (srv *gradeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *gradeService) checkReferences(ctx context.Context, studentID, subjectID uint) error {
	if _, err := srv.studentRepo.FindByID(ctx, studentID); err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			return domainerrors.ErrEntityNotFound.WrapMessage("student does not exist")
		}

		return errors.Wrap(err, "failed to check student")
	}
	if _, err := srv.subjectRepo.FindByID(ctx, subjectID); err != nil {
		if errors.Is(err, repository.ErrSubjectNotFound) {
			return domainerrors.ErrEntityNotFound.WrapMessage("subject does not exist")
		}

		return errors.Wrap(err, "failed to check subject")
	}

	return nil
}

// Create records a grade after confirming both ends of the relation exist.
// A zero AssignedAt defaults to now.
func (srv *gradeService) Create(ctx context.Context, input *usecase.CreateGradeInput) (*entity.Grade, error) {
	if err := srv.checkReferences(ctx, input.StudentID, input.SubjectID); err != nil {
		return nil, err
	}

	assignedAt := input.AssignedAt
	if assignedAt.IsZero() {
		assignedAt = time.Now()
	}

	grade := &entity.Grade{
		StudentID:  input.StudentID,
		SubjectID:  input.SubjectID,
		Score:      input.Score,
		AssignedAt: assignedAt,
	}
	if err := srv.gradeRepo.Create(ctx, grade); err != nil {
		return nil, errors.Wrap(err, "failed to create grade")
	}

	srv.log(ctx).Info("Grade recorded",
		slog.Any("gradeID", grade.ID),
		slog.Any("studentID", grade.StudentID),
		slog.Any("subjectID", grade.SubjectID))

	return grade, nil
}

func (srv *gradeService) Get(ctx context.Context, id uint) (*entity.Grade, error) {
	grade, err := srv.gradeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrGradeNotFound) {
			return nil, domainerrors.ErrEntityNotFound.WrapMessage("grade lookup missed")
		}

		return nil, errors.Wrap(err, "failed to find grade")
	}

	return grade, nil
}

func (srv *gradeService) List(ctx context.Context, input *usecase.ListInput) ([]*entity.Grade, error) {
	grades, err := srv.gradeRepo.List(ctx, input.Offset, input.Limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list grades")
	}

	return grades, nil
}

// ListByStudent returns every grade for one student. The student must
// exist; an unknown ID is a 404, not an empty list.
func (srv *gradeService) ListByStudent(ctx context.Context, studentID uint) ([]*entity.Grade, error) {
	if _, err := srv.studentRepo.FindByID(ctx, studentID); err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			return nil, domainerrors.ErrEntityNotFound.WrapMessage("student does not exist")
		}

		return nil, errors.Wrap(err, "failed to check student")
	}

	grades, err := srv.gradeRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list grades by student")
	}

	return grades, nil
}

func (srv *gradeService) Update(ctx context.Context, id uint, input *usecase.UpdateGradeInput) (*entity.Grade, error) {
	grade, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Score != nil {
		grade.Score = *input.Score
	}
	if input.AssignedAt != nil {
		grade.AssignedAt = *input.AssignedAt
	}

	if err := srv.gradeRepo.Update(ctx, grade); err != nil {
		return nil, errors.Wrap(err, "failed to update grade")
	}

	return grade, nil
}

func (srv *gradeService) Delete(ctx context.Context, id uint) error {
	if err := srv.gradeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrGradeNotFound) {
			return domainerrors.ErrEntityNotFound.WrapMessage("grade lookup missed")
		}

		return errors.Wrap(err, "failed to delete grade")
	}

	srv.log(ctx).Info("Grade deleted", slog.Any("gradeID", id))

	return nil
}
