package usecase

import (
	"context"
	"time"

	"notaspro/internal/domain/entity"
)

// CreateStudentInput defines the data required to register a student profile.
type CreateStudentInput struct {
	Name          string
	AcademicGrade string
	UserID        uint
	GuardianID    *uint
}

// UpdateStudentInput defines the mutable student fields.
type UpdateStudentInput struct {
	Name          *string
	AcademicGrade *string
	GuardianID    *uint
}

// StudentUsecase defines student profile operations.
type StudentUsecase interface {
	Create(ctx context.Context, input *CreateStudentInput) (*entity.Student, error)
	Get(ctx context.Context, id uint) (*entity.Student, error)
	List(ctx context.Context, input *ListInput) ([]*entity.Student, error)
	Update(ctx context.Context, id uint, input *UpdateStudentInput) (*entity.Student, error)
	Delete(ctx context.Context, id uint) error
}

// CreateProfileInput defines the data shared by teacher and guardian
// profiles: a display name and the credential it belongs to.
type CreateProfileInput struct {
	Name   string
	UserID uint
}

// UpdateProfileInput defines the mutable teacher/guardian fields.
type UpdateProfileInput struct {
	Name *string
}

// TeacherUsecase defines teacher profile operations.
type TeacherUsecase interface {
	Create(ctx context.Context, input *CreateProfileInput) (*entity.Teacher, error)
	Get(ctx context.Context, id uint) (*entity.Teacher, error)
	List(ctx context.Context, input *ListInput) ([]*entity.Teacher, error)
	Update(ctx context.Context, id uint, input *UpdateProfileInput) (*entity.Teacher, error)
	Delete(ctx context.Context, id uint) error
}

// GuardianUsecase defines guardian profile operations.
type GuardianUsecase interface {
	Create(ctx context.Context, input *CreateProfileInput) (*entity.Guardian, error)
	Get(ctx context.Context, id uint) (*entity.Guardian, error)
	List(ctx context.Context, input *ListInput) ([]*entity.Guardian, error)
	Update(ctx context.Context, id uint, input *UpdateProfileInput) (*entity.Guardian, error)
	Delete(ctx context.Context, id uint) error
}

// CreateSubjectInput defines the data required to register a subject.
type CreateSubjectInput struct {
	Name          string
	Description   string
	AcademicGrade string
}

// UpdateSubjectInput defines the mutable subject fields.
type UpdateSubjectInput struct {
	Name          *string
	Description   *string
	AcademicGrade *string
}

// SubjectUsecase defines subject operations.
type SubjectUsecase interface {
	Create(ctx context.Context, input *CreateSubjectInput) (*entity.Subject, error)
	Get(ctx context.Context, id uint) (*entity.Subject, error)
	List(ctx context.Context, input *ListInput) ([]*entity.Subject, error)
	Update(ctx context.Context, id uint, input *UpdateSubjectInput) (*entity.Subject, error)
	Delete(ctx context.Context, id uint) error
}

// CreateGradeInput defines the data required to record a grade. A zero
// AssignedAt defaults to the current date.
type CreateGradeInput struct {
	StudentID  uint
	SubjectID  uint
	Score      float64
	AssignedAt time.Time
}

// UpdateGradeInput defines the mutable grade fields.
type UpdateGradeInput struct {
	Score      *float64
	AssignedAt *time.Time
}

// GradeUsecase defines grade operations.
type GradeUsecase interface {
	Create(ctx context.Context, input *CreateGradeInput) (*entity.Grade, error)
	Get(ctx context.Context, id uint) (*entity.Grade, error)
	List(ctx context.Context, input *ListInput) ([]*entity.Grade, error)
	ListByStudent(ctx context.Context, studentID uint) ([]*entity.Grade, error)
	Update(ctx context.Context, id uint, input *UpdateGradeInput) (*entity.Grade, error)
	Delete(ctx context.Context, id uint) error
}
