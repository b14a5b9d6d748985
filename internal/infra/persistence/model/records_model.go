package model

import "time"

// TeacherModel mirrors the 'teachers' table. Each teacher profile links
// one-to-one with a credential.
type TeacherModel struct {
	ID     uint   `gorm:"primaryKey;autoIncrement"`
	Name   string `gorm:"type:varchar(100);not null"`
	UserID uint   `gorm:"uniqueIndex;not null"`

	User *UserModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (TeacherModel) TableName() string {
	return "teachers"
}

// GuardianModel mirrors the 'guardians' table.
type GuardianModel struct {
	ID     uint   `gorm:"primaryKey;autoIncrement"`
	Name   string `gorm:"type:varchar(100);not null"`
	UserID uint   `gorm:"uniqueIndex;not null"`

	User *UserModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (GuardianModel) TableName() string {
	return "guardians"
}

// StudentModel mirrors the 'students' table. GuardianID is nullable.
type StudentModel struct {
	ID            uint   `gorm:"primaryKey;autoIncrement"`
	Name          string `gorm:"type:varchar(100);not null"`
	AcademicGrade string `gorm:"type:varchar(50);not null"`
	UserID        uint   `gorm:"uniqueIndex;not null"`
	GuardianID    *uint

	User     *UserModel     `gorm:"foreignKey:UserID"`
	Guardian *GuardianModel `gorm:"foreignKey:GuardianID"`
}

// TableName explicitly sets the table name for GORM.
func (StudentModel) TableName() string {
	return "students"
}

// SubjectModel mirrors the 'subjects' table.
type SubjectModel struct {
	ID            uint   `gorm:"primaryKey;autoIncrement"`
	Name          string `gorm:"type:varchar(100);uniqueIndex;not null"`
	Description   string `gorm:"type:varchar(255)"`
	AcademicGrade string `gorm:"type:varchar(50)"`
}

// TableName explicitly sets the table name for GORM.
func (SubjectModel) TableName() string {
	return "subjects"
}

// GradeModel mirrors the 'grades' table: one score per student per subject
// per assignment date.
type GradeModel struct {
	ID         uint    `gorm:"primaryKey;autoIncrement"`
	StudentID  uint    `gorm:"not null;index"`
	SubjectID  uint    `gorm:"not null;index"`
	Score      float64 `gorm:"not null"`
	AssignedAt time.Time

	Student *StudentModel `gorm:"foreignKey:StudentID"`
	Subject *SubjectModel `gorm:"foreignKey:SubjectID"`
}

// TableName explicitly sets the table name for GORM.
func (GradeModel) TableName() string {
	return "grades"
}
