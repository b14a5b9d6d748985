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

// subjectRepository implements the repository.SubjectRepository interface using GORM.
type subjectRepository struct {
	db *gorm.DB
}

// NewSubjectRepository is the constructor for subjectRepository.
func NewSubjectRepository(db *gorm.DB) repository.SubjectRepository {
	return &subjectRepository{db: db}
}

func (repo *subjectRepository) FindByID(ctx context.Context, id uint) (*entity.Subject, error) {
	var subjectM model.SubjectModel
	if err := repo.db.WithContext(ctx).First(&subjectM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubjectNotFound
		}

		return nil, errors.Wrap(err, "failed to find subject by id")
	}

	return toSubjectDomain(&subjectM), nil
}

func (repo *subjectRepository) List(ctx context.Context, offset, limit int) ([]*entity.Subject, error) {
	var models []model.SubjectModel
	err := repo.db.WithContext(ctx).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subjects")
	}

	subjects := make([]*entity.Subject, 0, len(models))
	for i := range models {
		subjects = append(subjects, toSubjectDomain(&models[i]))
	}

	return subjects, nil
}

func (repo *subjectRepository) Create(ctx context.Context, subject *entity.Subject) error {
	subjectM := fromSubjectDomain(subject)
	if err := repo.db.WithContext(ctx).Create(subjectM).Error; err != nil {
		return mapRecordWriteError(err, "failed to create subject")
	}

	subject.ID = subjectM.ID

	return nil
}

func (repo *subjectRepository) Update(ctx context.Context, subject *entity.Subject) error {
	subjectM := fromSubjectDomain(subject)
	if err := repo.db.WithContext(ctx).Save(subjectM).Error; err != nil {
		return mapRecordWriteError(err, "failed to update subject")
	}

	return nil
}

func (repo *subjectRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.SubjectModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete subject")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSubjectNotFound
	}

	return nil
}

func toSubjectDomain(data *model.SubjectModel) *entity.Subject {
	if data == nil {
		return nil
	}

	return &entity.Subject{
		ID:            data.ID,
		Name:          data.Name,
		Description:   data.Description,
		AcademicGrade: data.AcademicGrade,
	}
}

func fromSubjectDomain(data *entity.Subject) *model.SubjectModel {
	if data == nil {
		return nil
	}

	return &model.SubjectModel{
		ID:            data.ID,
		Name:          data.Name,
		Description:   data.Description,
		AcademicGrade: data.AcademicGrade,
	}
}
