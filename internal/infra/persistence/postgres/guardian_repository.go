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

// guardianRepository implements the repository.GuardianRepository interface using GORM.
type guardianRepository struct {
	db *gorm.DB
}

// NewGuardianRepository is the constructor for guardianRepository.
func NewGuardianRepository(db *gorm.DB) repository.GuardianRepository {
	return &guardianRepository{db: db}
}

func (repo *guardianRepository) FindByID(ctx context.Context, id uint) (*entity.Guardian, error) {
	var guardianM model.GuardianModel
	if err := repo.db.WithContext(ctx).First(&guardianM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGuardianNotFound
		}

		return nil, errors.Wrap(err, "failed to find guardian by id")
	}

	return toGuardianDomain(&guardianM), nil
}

func (repo *guardianRepository) List(ctx context.Context, offset, limit int) ([]*entity.Guardian, error) {
	var models []model.GuardianModel
	err := repo.db.WithContext(ctx).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list guardians")
	}

	guardians := make([]*entity.Guardian, 0, len(models))
	for i := range models {
		guardians = append(guardians, toGuardianDomain(&models[i]))
	}

	return guardians, nil
}

func (repo *guardianRepository) Create(ctx context.Context, guardian *entity.Guardian) error {
	guardianM := fromGuardianDomain(guardian)
	if err := repo.db.WithContext(ctx).Create(guardianM).Error; err != nil {
		return mapRecordWriteError(err, "failed to create guardian")
	}

	guardian.ID = guardianM.ID

	return nil
}

func (repo *guardianRepository) Update(ctx context.Context, guardian *entity.Guardian) error {
	guardianM := fromGuardianDomain(guardian)
	if err := repo.db.WithContext(ctx).Save(guardianM).Error; err != nil {
		return mapRecordWriteError(err, "failed to update guardian")
	}

	return nil
}

func (repo *guardianRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.GuardianModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete guardian")
	}
	if result.RowsAffected == 0 {
		return repository.ErrGuardianNotFound
	}

	return nil
}

func toGuardianDomain(data *model.GuardianModel) *entity.Guardian {
	if data == nil {
		return nil
	}

	return &entity.Guardian{
		ID:     data.ID,
		Name:   data.Name,
		UserID: data.UserID,
	}
}

func fromGuardianDomain(data *entity.Guardian) *model.GuardianModel {
	if data == nil {
		return nil
	}

	return &model.GuardianModel{
		ID:     data.ID,
		Name:   data.Name,
		UserID: data.UserID,
	}
}
