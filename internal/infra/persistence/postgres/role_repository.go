package postgres

import (
	"context"

	"notaspro/internal/domain/entity"
	domainerrors "notaspro/internal/domain/errors"
	"notaspro/internal/domain/repository"
	"notaspro/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// roleRepository implements the repository.RoleRepository interface using GORM.
type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository is the constructor for roleRepository.
func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &roleRepository{db: db}
}

// FindByName retrieves a role by its unique name.
func (repo *roleRepository) FindByName(ctx context.Context, name entity.RoleName) (*entity.Role, error) {
	var roleM model.RoleModel
	err := repo.db.WithContext(ctx).
		Where("name = ?", name.String()).
		First(&roleM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoleNotFound
		}

		return nil, errors.Wrap(err, "failed to find role by name")
	}

	return toRoleDomain(&roleM), nil
}

// FindByID retrieves a role by its primary key.
func (repo *roleRepository) FindByID(ctx context.Context, id uint) (*entity.Role, error) {
	var roleM model.RoleModel
	err := repo.db.WithContext(ctx).First(&roleM, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoleNotFound
		}

		return nil, errors.Wrap(err, "failed to find role by id")
	}

	return toRoleDomain(&roleM), nil
}

// List returns all roles.
func (repo *roleRepository) List(ctx context.Context) ([]*entity.Role, error) {
	var models []model.RoleModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list roles")
	}

	roles := make([]*entity.Role, 0, len(models))
	for i := range models {
		roles = append(roles, toRoleDomain(&models[i]))
	}

	return roles, nil
}

// EnsureByName creates the role if absent and returns the stored row.
// ON CONFLICT DO NOTHING plus a re-read makes concurrent calls converge on
// a single row under the unique constraint on name.
func (repo *roleRepository) EnsureByName(ctx context.Context, name entity.RoleName) (*entity.Role, error) {
	roleM := model.RoleModel{Name: name.String()}
	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&roleM).Error
	if err != nil && !isUniqueConstraintViolation(err) {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to ensure role")
	}

	return repo.FindByName(ctx, name)
}
