// Package model holds the GORM persistence models, kept separate from the
// pure domain entities.
package model

import "time"

// RoleModel mirrors the 'roles' table. The role set is small, fixed, and
// reconciled at startup.
type RoleModel struct {
	ID   uint   `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(50);uniqueIndex;not null"`
}

// TableName explicitly sets the table name for GORM.
func (RoleModel) TableName() string {
	return "roles"
}

// UserModel mirrors the 'users' table: one row per credential.
type UserModel struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"type:varchar(50);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	IsActive     bool   `gorm:"not null;default:true"`
	RoleID       uint   `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Role *RoleModel `gorm:"foreignKey:RoleID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
