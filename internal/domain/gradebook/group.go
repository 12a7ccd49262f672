package gradebook

import (
	"fmt"
	"strings"

	"github.com/alem-hub/gradebook/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// GROUP
// ══════════════════════════════════════════════════════════════════════════════

const (
	// ApprovalThreshold is the minimum average (inclusive) for a student to pass.
	ApprovalThreshold = 70.0

	reportDividerWidth = 30
)

// Group is a roster of students within a course, the unit at which grades
// and the pass rate are computed.
type Group struct {
	name     string
	students *orderedIndex[string, Student]

	// gradesByStudent has exactly one entry per student in students.
	gradesByStudent map[string][]Grade
}

// NewGroup creates an empty group.
func NewGroup(name string) *Group {
	return &Group{
		name:            name,
		students:        newOrderedIndex[string, Student](),
		gradesByStudent: make(map[string][]Grade),
	}
}

// Name returns the group name, unique within its course.
func (g *Group) Name() string { return g.name }

// Len returns the number of students in the group.
func (g *Group) Len() int { return g.students.len() }

// Students returns the students in insertion order.
func (g *Group) Students() []Student { return g.students.values() }

// Grades returns a copy of the grades recorded for studentID, in recording order.
func (g *Group) Grades(studentID string) []Grade {
	grades := g.gradesByStudent[studentID]
	out := make([]Grade, len(grades))
	copy(out, grades)
	return out
}

// AddStudent enrolls student with an empty grade sequence.
// A second student with the same ID, or a student of an unknown variant,
// is rejected.
func (g *Group) AddStudent(student Student) shared.Result[shared.NoData] {
	if !student.Variant.IsValid() {
		return shared.Fail(shared.ErrUnknownVariant,
			fmt.Sprintf("Student with ID %s has an unknown type.", student.ID), shared.NoData{})
	}
	if !g.students.insert(student.ID, student) {
		return shared.Fail(shared.ErrStudentAlreadyExists,
			fmt.Sprintf("Student with ID %s already exists in group %s.", student.ID, g.name), shared.NoData{})
	}
	g.gradesByStudent[student.ID] = []Grade{}
	return shared.Ok(fmt.Sprintf("Student %s added to group %s.", student.Name, g.name), shared.NoData{})
}

// FindStudent looks a student up by ID.
func (g *Group) FindStudent(id string) (Student, bool) {
	return g.students.get(id)
}

// RegisterGrade appends a grade to the student's sequence.
func (g *Group) RegisterGrade(studentID, assessmentName string, score float64) shared.Result[shared.NoData] {
	student, ok := g.FindStudent(studentID)
	if !ok {
		return shared.Fail(shared.ErrStudentNotFound,
			fmt.Sprintf("Student with ID %s not found in group %s.", studentID, g.name), shared.NoData{})
	}

	grade, err := NewGrade(assessmentName, score)
	if err != nil {
		return shared.Fail(err, "Error registering grade: "+shared.MessageOf(err), shared.NoData{})
	}

	g.gradesByStudent[studentID] = append(g.gradesByStudent[studentID], grade)
	return shared.Ok(fmt.Sprintf("Grade %s for %s registered for %s.",
		FormatScore(score), assessmentName, student.Name), shared.NoData{})
}

// StudentAverage returns the arithmetic mean of the student's scores.
// Unknown students and students without grades fail with a zero payload.
func (g *Group) StudentAverage(studentID string) shared.Result[float64] {
	grades := g.gradesByStudent[studentID]
	if len(grades) == 0 {
		return shared.Fail(shared.ErrNoGrades,
			fmt.Sprintf("No grades found for student ID %s in group %s.", studentID, g.name), 0.0)
	}

	var total float64
	for _, grade := range grades {
		total += grade.score
	}
	return shared.Ok(fmt.Sprintf("Average grade for student %s calculated.", studentID),
		total/float64(len(grades)))
}

// GradesReport renders every student's grades and average in enrollment order.
func (g *Group) GradesReport() shared.Result[string] {
	if g.students.len() == 0 {
		return shared.Fail(shared.ErrEmptyGroup, fmt.Sprintf("No students in group %s.", g.name), "")
	}

	divider := strings.Repeat("-", reportDividerWidth)
	lines := []string{fmt.Sprintf("--- Grades for Group: %s ---", g.name)}

	for _, student := range g.students.values() {
		lines = append(lines, student.Describe())

		grades := g.gradesByStudent[student.ID]
		if len(grades) == 0 {
			lines = append(lines, "  No grades registered yet.")
		} else {
			lines = append(lines, "  Grades:")
			for _, grade := range grades {
				lines = append(lines, fmt.Sprintf("    - %s: %s", grade.assessmentName, FormatScore(grade.score)))
			}
			if avg := g.StudentAverage(student.ID); avg.OK() {
				lines = append(lines, fmt.Sprintf("    Average: %.2f", avg.Data()))
			}
		}
		lines = append(lines, divider)
	}

	return shared.Ok("Grade list generated.", strings.Join(lines, "\n"))
}

// ApprovedPercentage returns the share of students whose average reaches
// ApprovalThreshold, as a percentage of all students in the group.
// Students without grades count as not approved.
func (g *Group) ApprovedPercentage() shared.Result[float64] {
	total := g.students.len()
	if total == 0 {
		return shared.Fail(shared.ErrEmptyGroup, fmt.Sprintf("No students in group %s.", g.name), 0.0)
	}

	approved := 0
	for _, student := range g.students.values() {
		if avg := g.StudentAverage(student.ID); avg.OK() && avg.Data() >= ApprovalThreshold {
			approved++
		}
	}

	return shared.Ok(fmt.Sprintf("Approved percentage for group %s calculated.", g.name),
		float64(approved)/float64(total)*100)
}
