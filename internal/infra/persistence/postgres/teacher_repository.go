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

// teacherRepository implements the repository.TeacherRepository interface using GORM.
type teacherRepository struct {
	db *gorm.DB
}

// NewTeacherRepository is the constructor for teacherRepository.
func NewTeacherRepository(db *gorm.DB) repository.TeacherRepository {
	return &teacherRepository{db: db}
}

func (repo *teacherRepository) FindByID(ctx context.Context, id uint) (*entity.Teacher, error) {
	var teacherM model.TeacherModel
	if err := repo.db.WithContext(ctx).First(&teacherM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTeacherNotFound
		}

		return nil, errors.Wrap(err, "failed to find teacher by id")
	}

	return toTeacherDomain(&teacherM), nil
}

func (repo *teacherRepository) List(ctx context.Context, offset, limit int) ([]*entity.Teacher, error) {
	var models []model.TeacherModel
	err := repo.db.WithContext(ctx).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list teachers")
	}

	teachers := make([]*entity.Teacher, 0, len(models))
	for i := range models {
		teachers = append(teachers, toTeacherDomain(&models[i]))
	}

	return teachers, nil
}

func (repo *teacherRepository) Create(ctx context.Context, teacher *entity.Teacher) error {
	teacherM := fromTeacherDomain(teacher)
	if err := repo.db.WithContext(ctx).Create(teacherM).Error; err != nil {
		return mapRecordWriteError(err, "failed to create teacher")
	}

	teacher.ID = teacherM.ID

	return nil
}

func (repo *teacherRepository) Update(ctx context.Context, teacher *entity.Teacher) error {
	teacherM := fromTeacherDomain(teacher)
	if err := repo.db.WithContext(ctx).Save(teacherM).Error; err != nil {
		return mapRecordWriteError(err, "failed to update teacher")
	}

	return nil
}

func (repo *teacherRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.TeacherModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete teacher")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTeacherNotFound
	}

	return nil
}

func toTeacherDomain(data *model.TeacherModel) *entity.Teacher {
	if data == nil {
		return nil
	}

	return &entity.Teacher{
		ID:     data.ID,
		Name:   data.Name,
		UserID: data.UserID,
	}
}

func fromTeacherDomain(data *entity.Teacher) *model.TeacherModel {
	if data == nil {
		return nil
	}

	return &model.TeacherModel{
		ID:     data.ID,
		Name:   data.Name,
		UserID: data.UserID,
	}
}
