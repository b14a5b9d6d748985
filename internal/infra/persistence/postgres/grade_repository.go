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

// gradeRepository implements the repository.GradeRepository interface using GORM.
type gradeRepository struct {
	db *gorm.DB
}

// NewGradeRepository is the constructor for gradeRepository.
func NewGradeRepository(db *gorm.DB) repository.GradeRepository {
	return &gradeRepository{db: db}
}

func (repo *gradeRepository) FindByID(ctx context.Context, id uint) (*entity.Grade, error) {
	var gradeM model.GradeModel
	if err := repo.db.WithContext(ctx).First(&gradeM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGradeNotFound
		}

		return nil, errors.Wrap(err, "failed to find grade by id")
	}

	return toGradeDomain(&gradeM), nil
}

func (repo *gradeRepository) ListByStudent(ctx context.Context, studentID uint) ([]*entity.Grade, error) {
	var models []model.GradeModel
	err := repo.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("id").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list grades by student")
	}

	grades := make([]*entity.Grade, 0, len(models))
	for i := range models {
		grades = append(grades, toGradeDomain(&models[i]))
	}

	return grades, nil
}

func (repo *gradeRepository) List(ctx context.Context, offset, limit int) ([]*entity.Grade, error) {
	var models []model.GradeModel
	err := repo.db.WithContext(ctx).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list grades")
	}

	grades := make([]*entity.Grade, 0, len(models))
	for i := range models {
		grades = append(grades, toGradeDomain(&models[i]))
	}

	return grades, nil
}

func (repo *gradeRepository) Create(ctx context.Context, grade *entity.Grade) error {
	gradeM := fromGradeDomain(grade)
	if err := repo.db.WithContext(ctx).Create(gradeM).Error; err != nil {
		return mapRecordWriteError(err, "failed to create grade")
	}

	grade.ID = gradeM.ID

	return nil
}

func (repo *gradeRepository) Update(ctx context.Context, grade *entity.Grade) error {
	gradeM := fromGradeDomain(grade)
	if err := repo.db.WithContext(ctx).Save(gradeM).Error; err != nil {
		return mapRecordWriteError(err, "failed to update grade")
	}

	return nil
}

func (repo *gradeRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.GradeModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete grade")
	}
	if result.RowsAffected == 0 {
		return repository.ErrGradeNotFound
	}

	return nil
}

func toGradeDomain(data *model.GradeModel) *entity.Grade {
	if data == nil {
		return nil
	}

	return &entity.Grade{
		ID:         data.ID,
		StudentID:  data.StudentID,
		SubjectID:  data.SubjectID,
		Score:      data.Score,
		AssignedAt: data.AssignedAt,
	}
}

func fromGradeDomain(data *entity.Grade) *model.GradeModel {
	if data == nil {
		return nil
	}

	return &model.GradeModel{
		ID:         data.ID,
		StudentID:  data.StudentID,
		SubjectID:  data.SubjectID,
		Score:      data.Score,
		AssignedAt: data.AssignedAt,
	}
}
