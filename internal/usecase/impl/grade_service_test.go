package impl

import (
	"context"
	"testing"
	"time"

	domainerrors "notaspro/internal/domain/errors"
	"notaspro/internal/infra/persistence/memory"
	"notaspro/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGradeFixture(t *testing.T) (*memory.Store, usecase.GradeUsecase, uint, uint) {
	t.Helper()
	store := memory.NewStore()
	ctx := context.Background()

	studentUC := NewStudentService(StudentServiceParams{
		StudentRepo:  store.Students(),
		GuardianRepo: store.Guardians(),
		Logger:       discardLogger(),
	})
	subjectUC := NewSubjectService(SubjectServiceParams{
		SubjectRepo: store.Subjects(),
		Logger:      discardLogger(),
	})

	student, err := studentUC.Create(ctx, &usecase.CreateStudentInput{
		Name: "Carlos", AcademicGrade: "5", UserID: 1,
	})
	require.NoError(t, err)
	subject, err := subjectUC.Create(ctx, &usecase.CreateSubjectInput{
		Name: "Matemáticas", AcademicGrade: "5",
	})
	require.NoError(t, err)

	gradeUC := NewGradeService(GradeServiceParams{
		GradeRepo:   store.Grades(),
		StudentRepo: store.Students(),
		SubjectRepo: store.Subjects(),
		Logger:      discardLogger(),
	})

	return store, gradeUC, student.ID, subject.ID
}

func TestGradeService_CreateDefaultsAssignedAt(t *testing.T) {
	_, gradeUC, studentID, subjectID := newGradeFixture(t)

	before := time.Now()
	grade, err := gradeUC.Create(context.Background(), &usecase.CreateGradeInput{
		StudentID: studentID,
		SubjectID: subjectID,
		Score:     4.5,
	})
	require.NoError(t, err)

	assert.InDelta(t, 4.5, grade.Score, 0.0001)
	assert.False(t, grade.AssignedAt.Before(before))
	assert.NotZero(t, grade.ID)
}

func TestGradeService_CreateUnknownStudentOrSubject(t *testing.T) {
	_, gradeUC, studentID, subjectID := newGradeFixture(t)
	ctx := context.Background()

	_, err := gradeUC.Create(ctx, &usecase.CreateGradeInput{
		StudentID: 9999, SubjectID: subjectID, Score: 3,
	})
	assert.ErrorIs(t, err, domainerrors.ErrEntityNotFound)

	_, err = gradeUC.Create(ctx, &usecase.CreateGradeInput{
		StudentID: studentID, SubjectID: 9999, Score: 3,
	})
	assert.ErrorIs(t, err, domainerrors.ErrEntityNotFound)
}

func TestGradeService_ListByStudent(t *testing.T) {
	_, gradeUC, studentID, subjectID := newGradeFixture(t)
	ctx := context.Background()

	for _, score := range []float64{2.5, 3.8, 4.9} {
		_, err := gradeUC.Create(ctx, &usecase.CreateGradeInput{
			StudentID: studentID, SubjectID: subjectID, Score: score,
		})
		require.NoError(t, err)
	}

	grades, err := gradeUC.ListByStudent(ctx, studentID)
	require.NoError(t, err)
	assert.Len(t, grades, 3)

	_, err = gradeUC.ListByStudent(ctx, 9999)
	assert.ErrorIs(t, err, domainerrors.ErrEntityNotFound)
}

func TestGradeService_UpdateAndDelete(t *testing.T) {
	_, gradeUC, studentID, subjectID := newGradeFixture(t)
	ctx := context.Background()

	grade, err := gradeUC.Create(ctx, &usecase.CreateGradeInput{
		StudentID: studentID, SubjectID: subjectID, Score: 2.0,
	})
	require.NoError(t, err)

	newScore := 4.2
	updated, err := gradeUC.Update(ctx, grade.ID, &usecase.UpdateGradeInput{Score: &newScore})
	require.NoError(t, err)
	assert.InDelta(t, 4.2, updated.Score, 0.0001)

	require.NoError(t, gradeUC.Delete(ctx, grade.ID))
	_, err = gradeUC.Get(ctx, grade.ID)
	assert.ErrorIs(t, err, domainerrors.ErrEntityNotFound)
}
