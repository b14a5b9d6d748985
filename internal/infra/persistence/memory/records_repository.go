package memory

import (
	"context"
	"sort"

	"notaspro/internal/domain/entity"
	"notaspro/internal/domain/repository"
)

func sortedIDs[T any](table map[uint]T) []uint {
	ids := make([]uint, 0, len(table))
	for id := range table {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

func pageIDs(ids []uint, offset, limit int) []uint {
	if offset >= len(ids) {
		return nil
	}
	ids = ids[offset:]
	if limit > 0 && limit < len(ids) {
		ids = ids[:limit]
	}

	return ids
}

type studentRepo struct {
	store *Store
}

func (r *studentRepo) FindByID(_ context.Context, id uint) (*entity.Student, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	student, ok := r.store.students[id]
	if !ok {
		return nil, repository.ErrStudentNotFound
	}
	clone := *student

	return &clone, nil
}

func (r *studentRepo) List(_ context.Context, offset, limit int) ([]*entity.Student, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	students := make([]*entity.Student, 0)
	for _, id := range pageIDs(sortedIDs(r.store.students), offset, limit) {
		clone := *r.store.students[id]
		students = append(students, &clone)
	}

	return students, nil
}

func (r *studentRepo) Create(_ context.Context, student *entity.Student) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextStudentID++
	student.ID = r.store.nextStudentID
	clone := *student
	r.store.students[student.ID] = &clone

	return nil
}

func (r *studentRepo) Update(_ context.Context, student *entity.Student) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.students[student.ID]; !ok {
		return repository.ErrStudentNotFound
	}
	clone := *student
	r.store.students[student.ID] = &clone

	return nil
}

func (r *studentRepo) Delete(_ context.Context, id uint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.students[id]; !ok {
		return repository.ErrStudentNotFound
	}
	delete(r.store.students, id)

	return nil
}

type teacherRepo struct {
	store *Store
}

func (r *teacherRepo) FindByID(_ context.Context, id uint) (*entity.Teacher, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	teacher, ok := r.store.teachers[id]
	if !ok {
		return nil, repository.ErrTeacherNotFound
	}
	clone := *teacher

	return &clone, nil
}

func (r *teacherRepo) List(_ context.Context, offset, limit int) ([]*entity.Teacher, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	teachers := make([]*entity.Teacher, 0)
	for _, id := range pageIDs(sortedIDs(r.store.teachers), offset, limit) {
		clone := *r.store.teachers[id]
		teachers = append(teachers, &clone)
	}

	return teachers, nil
}

func (r *teacherRepo) Create(_ context.Context, teacher *entity.Teacher) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextTeacherID++
	teacher.ID = r.store.nextTeacherID
	clone := *teacher
	r.store.teachers[teacher.ID] = &clone

	return nil
}

func (r *teacherRepo) Update(_ context.Context, teacher *entity.Teacher) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.teachers[teacher.ID]; !ok {
		return repository.ErrTeacherNotFound
	}
	clone := *teacher
	r.store.teachers[teacher.ID] = &clone

	return nil
}

func (r *teacherRepo) Delete(_ context.Context, id uint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.teachers[id]; !ok {
		return repository.ErrTeacherNotFound
	}
	delete(r.store.teachers, id)

	return nil
}

type guardianRepo struct {
	store *Store
}

func (r *guardianRepo) FindByID(_ context.Context, id uint) (*entity.Guardian, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	guardian, ok := r.store.guardians[id]
	if !ok {
		return nil, repository.ErrGuardianNotFound
	}
	clone := *guardian

	return &clone, nil
}

func (r *guardianRepo) List(_ context.Context, offset, limit int) ([]*entity.Guardian, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	guardians := make([]*entity.Guardian, 0)
	for _, id := range pageIDs(sortedIDs(r.store.guardians), offset, limit) {
		clone := *r.store.guardians[id]
		guardians = append(guardians, &clone)
	}

	return guardians, nil
}

func (r *guardianRepo) Create(_ context.Context, guardian *entity.Guardian) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextGuardianID++
	guardian.ID = r.store.nextGuardianID
	clone := *guardian
	r.store.guardians[guardian.ID] = &clone

	return nil
}

func (r *guardianRepo) Update(_ context.Context, guardian *entity.Guardian) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.guardians[guardian.ID]; !ok {
		return repository.ErrGuardianNotFound
	}
	clone := *guardian
	r.store.guardians[guardian.ID] = &clone

	return nil
}

func (r *guardianRepo) Delete(_ context.Context, id uint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.guardians[id]; !ok {
		return repository.ErrGuardianNotFound
	}
	delete(r.store.guardians, id)

	return nil
}

type subjectRepo struct {
	store *Store
}

func (r *subjectRepo) FindByID(_ context.Context, id uint) (*entity.Subject, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	subject, ok := r.store.subjects[id]
	if !ok {
		return nil, repository.ErrSubjectNotFound
	}
	clone := *subject

	return &clone, nil
}

func (r *subjectRepo) List(_ context.Context, offset, limit int) ([]*entity.Subject, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	subjects := make([]*entity.Subject, 0)
	for _, id := range pageIDs(sortedIDs(r.store.subjects), offset, limit) {
		clone := *r.store.subjects[id]
		subjects = append(subjects, &clone)
	}

	return subjects, nil
}

func (r *subjectRepo) Create(_ context.Context, subject *entity.Subject) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextSubjectID++
	subject.ID = r.store.nextSubjectID
	clone := *subject
	r.store.subjects[subject.ID] = &clone

	return nil
}

func (r *subjectRepo) Update(_ context.Context, subject *entity.Subject) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.subjects[subject.ID]; !ok {
		return repository.ErrSubjectNotFound
	}
	clone := *subject
	r.store.subjects[subject.ID] = &clone

	return nil
}

func (r *subjectRepo) Delete(_ context.Context, id uint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.subjects[id]; !ok {
		return repository.ErrSubjectNotFound
	}
	delete(r.store.subjects, id)

	return nil
}

type gradeRepo struct {
	store *Store
}

func (r *gradeRepo) FindByID(_ context.Context, id uint) (*entity.Grade, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	grade, ok := r.store.grades[id]
	if !ok {
		return nil, repository.ErrGradeNotFound
	}
	clone := *grade

	return &clone, nil
}

func (r *gradeRepo) ListByStudent(_ context.Context, studentID uint) ([]*entity.Grade, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	grades := make([]*entity.Grade, 0)
	for _, id := range sortedIDs(r.store.grades) {
		if r.store.grades[id].StudentID == studentID {
			clone := *r.store.grades[id]
			grades = append(grades, &clone)
		}
	}

	return grades, nil
}

func (r *gradeRepo) List(_ context.Context, offset, limit int) ([]*entity.Grade, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	grades := make([]*entity.Grade, 0)
	for _, id := range pageIDs(sortedIDs(r.store.grades), offset, limit) {
		clone := *r.store.grades[id]
		grades = append(grades, &clone)
	}

	return grades, nil
}

func (r *gradeRepo) Create(_ context.Context, grade *entity.Grade) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextGradeID++
	grade.ID = r.store.nextGradeID
	clone := *grade
	r.store.grades[grade.ID] = &clone

	return nil
}

func (r *gradeRepo) Update(_ context.Context, grade *entity.Grade) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.grades[grade.ID]; !ok {
		return repository.ErrGradeNotFound
	}
	clone := *grade
	r.store.grades[grade.ID] = &clone

	return nil
}

func (r *gradeRepo) Delete(_ context.Context, id uint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.grades[id]; !ok {
		return repository.ErrGradeNotFound
	}
	delete(r.store.grades, id)

	return nil
}
