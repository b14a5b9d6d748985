package entity

import "time"

// Teacher is the staff profile linked one-to-one with a credential.
type Teacher struct {
	ID     uint
	Name   string
	UserID uint
}

// Guardian (acudiente) is the profile of a student's legal guardian.
type Guardian struct {
	ID     uint
	Name   string
	UserID uint
}

// Student is the enrolled-student profile. GuardianID is nil when no
// guardian has been linked yet.
type Student struct {
	ID            uint
	Name          string
	AcademicGrade string // e.g. "5A", the grade level the student attends.
	UserID        uint
	GuardianID    *uint
}

// Subject (materia) is a course that grades are recorded against.
type Subject struct {
	ID            uint
	Name          string
	Description   string
	AcademicGrade string
}

// Grade (nota) is a single score a student received in a subject.
type Grade struct {
	ID         uint
	StudentID  uint
	SubjectID  uint
	Score      float64
	AssignedAt time.Time
}
