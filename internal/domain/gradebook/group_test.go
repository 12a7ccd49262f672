package gradebook

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/gradebook/internal/domain/shared"
)

func groupWithScores(t *testing.T, scores map[string][]float64, order ...string) *Group {
	t.Helper()
	g := NewGroup("A1")
	for _, id := range order {
		require.True(t, g.AddStudent(NewOnSiteStudent(id, "Student "+id)).OK())
		for _, s := range scores[id] {
			require.True(t, g.RegisterGrade(id, "Test", s).OK())
		}
	}
	return g
}

func TestGroup_AddStudent(t *testing.T) {
	g := NewGroup("A1")

	res := g.AddStudent(NewOnSiteStudent("S1", "Ann"))
	assert.True(t, res.OK())
	assert.Equal(t, "Student Ann added to group A1.", res.Message())
	assert.NoError(t, res.Err())
	assert.Empty(t, g.Grades("S1"))
}

func TestGroup_AddStudent_Duplicate(t *testing.T) {
	g := NewGroup("A1")
	require.True(t, g.AddStudent(NewOnSiteStudent("S1", "Ann")).OK())
	require.True(t, g.RegisterGrade("S1", "Midterm", 80).OK())

	res := g.AddStudent(NewRemoteStudent("S1", "Impostor", "Teams"))
	assert.False(t, res.OK())
	assert.Equal(t, "Student with ID S1 already exists in group A1.", res.Message())
	assert.ErrorIs(t, res.Err(), shared.ErrAlreadyExists)

	assert.Equal(t, 1, g.Len())
	student, ok := g.FindStudent("S1")
	require.True(t, ok)
	assert.Equal(t, "Ann", student.Name)
	assert.Equal(t, VariantOnSite, student.Variant)
	assert.Len(t, g.Grades("S1"), 1)
}

func TestGroup_AddStudent_UnknownVariant(t *testing.T) {
	g := NewGroup("A1")

	res := g.AddStudent(Student{ID: "S1", Name: "Ann", Variant: Variant("hybrid")})
	assert.False(t, res.OK())
	assert.Equal(t, "Student with ID S1 has an unknown type.", res.Message())
	assert.ErrorIs(t, res.Err(), shared.ErrUnknownVariant)
	assert.Equal(t, 0, g.Len())

	res = g.AddStudent(Student{ID: "S2", Name: "Bob"})
	assert.False(t, res.OK(), "the zero Variant is not a valid variant")

	_, ok := g.FindStudent("S1")
	assert.False(t, ok)
	assert.False(t, g.RegisterGrade("S1", "Quiz", 80).OK())
}

func TestGroup_FindStudent_Idempotent(t *testing.T) {
	g := NewGroup("A1")
	require.True(t, g.AddStudent(NewOnSiteStudent("S1", "Ann")).OK())

	first, ok1 := g.FindStudent("S1")
	second, ok2 := g.FindStudent("S1")
	assert.True(t, ok1)
	assert.True(t, ok2)
	assert.Equal(t, first, second)

	_, ok := g.FindStudent("missing")
	assert.False(t, ok)
	_, ok = g.FindStudent("missing")
	assert.False(t, ok)
	assert.Equal(t, 1, g.Len())
}

func TestGroup_RegisterGrade(t *testing.T) {
	g := NewGroup("A1")
	require.True(t, g.AddStudent(NewOnSiteStudent("S1", "Ann")).OK())

	t.Run("success", func(t *testing.T) {
		res := g.RegisterGrade("S1", "Midterm", 88)
		assert.True(t, res.OK())
		assert.Equal(t, "Grade 88.0 for Midterm registered for Ann.", res.Message())
	})

	t.Run("unknown student", func(t *testing.T) {
		res := g.RegisterGrade("S9", "Midterm", 88)
		assert.False(t, res.OK())
		assert.Equal(t, "Student with ID S9 not found in group A1.", res.Message())
		assert.ErrorIs(t, res.Err(), shared.ErrNotFound)
		assert.Empty(t, g.Grades("S9"))
	})

	t.Run("score out of range", func(t *testing.T) {
		res := g.RegisterGrade("S1", "Final", 101)
		assert.False(t, res.OK())
		assert.Equal(t, "Error registering grade: Score must be between 0 and 100.", res.Message())
		assert.ErrorIs(t, res.Err(), shared.ErrValueOutOfRange)
	})

	grades := g.Grades("S1")
	require.Len(t, grades, 1)
	assert.Equal(t, "Midterm", grades[0].AssessmentName())
	assert.Equal(t, 88.0, grades[0].Score())
}

func TestGroup_StudentAverage(t *testing.T) {
	g := groupWithScores(t, map[string][]float64{"S1": {80, 90, 100}}, "S1", "S2")

	res := g.StudentAverage("S1")
	assert.True(t, res.OK())
	assert.Equal(t, 90.0, res.Data())
	assert.Equal(t, "Average grade for student S1 calculated.", res.Message())

	noGrades := g.StudentAverage("S2")
	assert.False(t, noGrades.OK())
	assert.Equal(t, 0.0, noGrades.Data())
	assert.Equal(t, "No grades found for student ID S2 in group A1.", noGrades.Message())

	unknown := g.StudentAverage("S9")
	assert.False(t, unknown.OK())
	assert.Equal(t, 0.0, unknown.Data())
}

func TestGroup_StudentAverage_OrderIndependent(t *testing.T) {
	a := groupWithScores(t, map[string][]float64{"S1": {55, 70, 100}}, "S1")
	b := groupWithScores(t, map[string][]float64{"S1": {100, 55, 70}}, "S1")
	assert.InDelta(t, a.StudentAverage("S1").Data(), b.StudentAverage("S1").Data(), 1e-9)
}

func TestGroup_ApprovedPercentage(t *testing.T) {
	g := groupWithScores(t, map[string][]float64{
		"S1": {95},
		"S2": {60},
		"S3": {70},
	}, "S1", "S2", "S3", "S4")

	res := g.ApprovedPercentage()
	assert.True(t, res.OK())
	assert.Equal(t, 50.0, res.Data())
	assert.Equal(t, "Approved percentage for group A1 calculated.", res.Message())
}

func TestGroup_ApprovedPercentage_Empty(t *testing.T) {
	res := NewGroup("A1").ApprovedPercentage()
	assert.False(t, res.OK())
	assert.Equal(t, 0.0, res.Data())
	assert.Equal(t, "No students in group A1.", res.Message())
	assert.ErrorIs(t, res.Err(), shared.ErrInvalidState)
}

func TestGroup_GradesReport(t *testing.T) {
	g := NewGroup("A1")
	require.True(t, g.AddStudent(NewOnSiteStudent("S1", "Ann")).OK())
	require.True(t, g.AddStudent(NewRemoteStudent("S2", "Bob", "Zoom")).OK())
	require.True(t, g.RegisterGrade("S1", "Midterm", 88).OK())
	require.True(t, g.RegisterGrade("S1", "Final", 92.5).OK())

	res := g.GradesReport()
	require.True(t, res.OK())
	assert.Equal(t, "Grade list generated.", res.Message())

	want := strings.Join([]string{
		"--- Grades for Group: A1 ---",
		"Student ID: S1, Name: Ann (Type: Onsite)",
		"  Grades:",
		"    - Midterm: 88.0",
		"    - Final: 92.5",
		"    Average: 90.25",
		"------------------------------",
		"Student ID: S2, Name: Bob (Type: Remote, Platform: Zoom)",
		"  No grades registered yet.",
		"------------------------------",
	}, "\n")
	assert.Equal(t, want, res.Data())
}

func TestGroup_GradesReport_Empty(t *testing.T) {
	res := NewGroup("B2").GradesReport()
	assert.False(t, res.OK())
	assert.Equal(t, "No students in group B2.", res.Message())
	assert.Empty(t, res.Data())
}

func TestGroup_Students_InsertionOrder(t *testing.T) {
	g := groupWithScores(t, nil, "S3", "S1", "S2")

	var ids []string
	for _, s := range g.Students() {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"S3", "S1", "S2"}, ids)
}
