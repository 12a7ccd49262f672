package gradebook

import (
	"fmt"

	"github.com/alem-hub/gradebook/internal/domain/shared"
)

// Course owns a set of groups and forwards student and grade operations to
// the group they name.
type Course struct {
	name   string
	code   string
	groups *orderedIndex[string, *Group]
}

// NewCourse creates a course without groups.
func NewCourse(name, code string) *Course {
	return &Course{
		name:   name,
		code:   code,
		groups: newOrderedIndex[string, *Group](),
	}
}

// Name returns the course name.
func (c *Course) Name() string { return c.name }

// Code returns the course code, unique per professor.
func (c *Course) Code() string { return c.code }

// Groups returns the course's groups in insertion order.
func (c *Course) Groups() []*Group { return c.groups.values() }

// AddGroup attaches group to the course. Group names are unique per course.
func (c *Course) AddGroup(group *Group) shared.Result[shared.NoData] {
	if !c.groups.insert(group.Name(), group) {
		return shared.Fail(shared.ErrGroupAlreadyExists,
			fmt.Sprintf("Group %s already exists in course %s.", group.Name(), c.name), shared.NoData{})
	}
	return shared.Ok(fmt.Sprintf("Group %s added to course %s.", group.Name(), c.name), shared.NoData{})
}

// FindGroup looks a group up by exact name.
func (c *Course) FindGroup(name string) (*Group, bool) {
	return c.groups.get(name)
}

// AddStudentToGroup forwards to Group.AddStudent.
func (c *Course) AddStudentToGroup(groupName string, student Student) shared.Result[shared.NoData] {
	group, ok := c.FindGroup(groupName)
	if !ok {
		return groupNotFound(c, groupName, shared.NoData{})
	}
	return group.AddStudent(student)
}

// RegisterGradeInGroup forwards to Group.RegisterGrade.
func (c *Course) RegisterGradeInGroup(groupName, studentID, assessmentName string, score float64) shared.Result[shared.NoData] {
	group, ok := c.FindGroup(groupName)
	if !ok {
		return groupNotFound(c, groupName, shared.NoData{})
	}
	return group.RegisterGrade(studentID, assessmentName, score)
}

// GroupReport forwards to Group.GradesReport.
func (c *Course) GroupReport(groupName string) shared.Result[string] {
	group, ok := c.FindGroup(groupName)
	if !ok {
		return groupNotFound(c, groupName, "")
	}
	return group.GradesReport()
}

// GroupApprovedPercentage forwards to Group.ApprovedPercentage.
func (c *Course) GroupApprovedPercentage(groupName string) shared.Result[float64] {
	group, ok := c.FindGroup(groupName)
	if !ok {
		return groupNotFound(c, groupName, 0.0)
	}
	return group.ApprovedPercentage()
}

func groupNotFound[T any](c *Course, groupName string, zero T) shared.Result[T] {
	return shared.Fail(shared.ErrGroupNotFound,
		fmt.Sprintf("Group %s not found in course %s.", groupName, c.name), zero)
}
