package gradebook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/gradebook/internal/domain/shared"
)

func TestProfessor_AddCourse(t *testing.T) {
	p := NewProfessor("P001", "Dr. Albus Dumbledore")

	res := p.AddCourse(NewCourse("Algorithms", "CS201"))
	assert.True(t, res.OK())
	assert.Equal(t, "Course Algorithms added to professor Dr. Albus Dumbledore's courses.", res.Message())

	dup := p.AddCourse(NewCourse("Advanced Algorithms", "CS201"))
	assert.False(t, dup.OK())
	assert.Equal(t, "Course Advanced Algorithms (CS201) already exists for this professor.", dup.Message())
	assert.ErrorIs(t, dup.Err(), shared.ErrCourseAlreadyExists)

	// Same name, different code is allowed.
	assert.True(t, p.AddCourse(NewCourse("Algorithms", "CS202")).OK())
	assert.Len(t, p.Courses(), 2)
}

func TestProfessor_FindCourse(t *testing.T) {
	p := NewProfessor("P001", "Dr. Albus Dumbledore")
	algo := NewCourse("Algorithms", "CS201")
	algebra := NewCourse("Álgebra Lineal", "MA101")
	require.True(t, p.AddCourse(algo).OK())
	require.True(t, p.AddCourse(algebra).OK())

	tests := []struct {
		query string
		want  *Course
	}{
		{"Algorithms", algo},
		{"algorithms", algo},
		{"ALGORITHMS", algo},
		{"álgebra lineal", algebra},
		{"ÁLGEBRA LINEAL", algebra},
	}
	for _, tt := range tests {
		got, ok := p.FindCourse(tt.query)
		require.True(t, ok, tt.query)
		assert.Same(t, tt.want, got, tt.query)
	}

	_, ok := p.FindCourse("CS201")
	assert.False(t, ok, "lookup is by name, not code")
	assert.Len(t, p.Courses(), 2)
}

func TestProfessor_EndToEnd(t *testing.T) {
	p := NewProfessor("P001", "Dr. Albus Dumbledore")
	require.True(t, p.AddCourse(NewCourse("Algorithms", "CS201")).OK())

	course, ok := p.FindCourse("Algorithms")
	require.True(t, ok)
	require.True(t, course.AddGroup(NewGroup("A1")).OK())
	require.True(t, course.AddStudentToGroup("A1", NewOnSiteStudent("S1", "Ann")).OK())
	require.True(t, course.RegisterGradeInGroup("A1", "S1", "Midterm", 88).OK())
	require.True(t, course.RegisterGradeInGroup("A1", "S1", "Final", 92).OK())

	group, ok := course.FindGroup("A1")
	require.True(t, ok)

	avg := group.StudentAverage("S1")
	assert.True(t, avg.OK())
	assert.Equal(t, 90.0, avg.Data())

	pct := course.GroupApprovedPercentage("A1")
	assert.True(t, pct.OK())
	assert.Equal(t, 100.0, pct.Data())
}
