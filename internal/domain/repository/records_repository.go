package repository

import (
	"context"
	"errors"

	"notaspro/internal/domain/entity"
)

// Domain-specific errors for academic record persistence.
var (
	ErrStudentNotFound  = errors.New("student not found")
	ErrTeacherNotFound  = errors.New("teacher not found")
	ErrGuardianNotFound = errors.New("guardian not found")
	ErrSubjectNotFound  = errors.New("subject not found")
	ErrGradeNotFound    = errors.New("grade not found")
)

// StudentRepository defines the operations for student profile persistence.
type StudentRepository interface {
	FindByID(ctx context.Context, id uint) (*entity.Student, error)
	List(ctx context.Context, offset, limit int) ([]*entity.Student, error)
	Create(ctx context.Context, student *entity.Student) error
	Update(ctx context.Context, student *entity.Student) error
	Delete(ctx context.Context, id uint) error
}

// TeacherRepository defines the operations for teacher profile persistence.
type TeacherRepository interface {
	FindByID(ctx context.Context, id uint) (*entity.Teacher, error)
	List(ctx context.Context, offset, limit int) ([]*entity.Teacher, error)
	Create(ctx context.Context, teacher *entity.Teacher) error
	Update(ctx context.Context, teacher *entity.Teacher) error
	Delete(ctx context.Context, id uint) error
}

// GuardianRepository defines the operations for guardian profile persistence.
type GuardianRepository interface {
	FindByID(ctx context.Context, id uint) (*entity.Guardian, error)
	List(ctx context.Context, offset, limit int) ([]*entity.Guardian, error)
	Create(ctx context.Context, guardian *entity.Guardian) error
	Update(ctx context.Context, guardian *entity.Guardian) error
	Delete(ctx context.Context, id uint) error
}

// SubjectRepository defines the operations for subject persistence.
type SubjectRepository interface {
	FindByID(ctx context.Context, id uint) (*entity.Subject, error)
	List(ctx context.Context, offset, limit int) ([]*entity.Subject, error)
	Create(ctx context.Context, subject *entity.Subject) error
	Update(ctx context.Context, subject *entity.Subject) error
	Delete(ctx context.Context, id uint) error
}

// GradeRepository defines the operations for grade persistence.
type GradeRepository interface {
	FindByID(ctx context.Context, id uint) (*entity.Grade, error)
	ListByStudent(ctx context.Context, studentID uint) ([]*entity.Grade, error)
	List(ctx context.Context, offset, limit int) ([]*entity.Grade, error)
	Create(ctx context.Context, grade *entity.Grade) error
	Update(ctx context.Context, grade *entity.Grade) error
	Delete(ctx context.Context, id uint) error
}
