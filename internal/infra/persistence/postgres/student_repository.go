package postgres

import (
	"context"

	"notaspro/internal/domain/entity"
	domainerrors "notaspro/internal/domain/errors"
	"notaspro/internal/domain/repository"
	"notaspro/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// studentRepository implements the repository.StudentRepository interface using GORM.
type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository is the constructor for studentRepository.
func NewStudentRepository(db *gorm.DB) repository.StudentRepository {
	return &studentRepository{db: db}
}

func (repo *studentRepository) FindByID(ctx context.Context, id uint) (*entity.Student, error) {
	var studentM model.StudentModel
	if err := repo.db.WithContext(ctx).First(&studentM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStudentNotFound
		}

		return nil, errors.Wrap(err, "failed to find student by id")
	}

	return toStudentDomain(&studentM), nil
}

func (repo *studentRepository) List(ctx context.Context, offset, limit int) ([]*entity.Student, error) {
	var models []model.StudentModel
	err := repo.db.WithContext(ctx).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list students")
	}

	students := make([]*entity.Student, 0, len(models))
	for i := range models {
		students = append(students, toStudentDomain(&models[i]))
	}

	return students, nil
}

func (repo *studentRepository) Create(ctx context.Context, student *entity.Student) error {
	studentM := fromStudentDomain(student)
	if err := repo.db.WithContext(ctx).Create(studentM).Error; err != nil {
		return mapRecordWriteError(err, "failed to create student")
	}

	student.ID = studentM.ID

	return nil
}

func (repo *studentRepository) Update(ctx context.Context, student *entity.Student) error {
	studentM := fromStudentDomain(student)
	if err := repo.db.WithContext(ctx).Save(studentM).Error; err != nil {
		return mapRecordWriteError(err, "failed to update student")
	}

	return nil
}

func (repo *studentRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.StudentModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete student")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStudentNotFound
	}

	return nil
}

// mapRecordWriteError converts constraint violations on academic record
// writes into domain errors shared by the record repositories.
func mapRecordWriteError(err error, details string) error {
	if isUniqueConstraintViolation(err) {
		return domainerrors.ErrValidationFailed.WrapMessage("record violates a uniqueness constraint")
	}
	if isForeignKeyConstraintViolation(err) {
		return domainerrors.ErrEntityNotFound.WrapMessage("record references a missing row")
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

func toStudentDomain(data *model.StudentModel) *entity.Student {
	if data == nil {
		return nil
	}

	return &entity.Student{
		ID:            data.ID,
		Name:          data.Name,
		AcademicGrade: data.AcademicGrade,
		UserID:        data.UserID,
		GuardianID:    data.GuardianID,
	}
}

func fromStudentDomain(data *entity.Student) *model.StudentModel {
	if data == nil {
		return nil
	}

	return &model.StudentModel{
		ID:            data.ID,
		Name:          data.Name,
		AcademicGrade: data.AcademicGrade,
		UserID:        data.UserID,
		GuardianID:    data.GuardianID,
	}
}
