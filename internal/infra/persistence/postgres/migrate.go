package postgres

import (
	"notaspro/internal/errors"
	"notaspro/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for every persisted model. Tables
// are migrated in dependency order so foreign keys resolve.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.RoleModel{},
		&model.UserModel{},
		&model.TeacherModel{},
		&model.GuardianModel{},
		&model.StudentModel{},
		&model.SubjectModel{},
		&model.GradeModel{},
	)
	if err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
