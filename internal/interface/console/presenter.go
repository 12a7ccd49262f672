package console

import (
	"fmt"
	"strings"

	"github.com/alem-hub/gradebook/internal/domain/gradebook"
)

// ══════════════════════════════════════════════════════════════════════════════
// PRESENTER
// Text blocks printed by the session. Kept free of I/O so they can be
// asserted on directly.
// ══════════════════════════════════════════════════════════════════════════════

const menuText = `
===== Professor Menu =====
1. Add a new Course
2. Add a new Group to a Course
3. Add Student to a Group
4. Register Grade for a Student
5. Show Grades List for a Group
6. Calculate Approved Percentage for a Group
7. Exit
==========================`

// formatCourseList renders the numbered course picker.
func formatCourseList(courses []*gradebook.Course) string {
	if len(courses) == 0 {
		return "No courses registered yet."
	}

	var sb strings.Builder
	sb.WriteString("\n--- Your Courses ---\n")
	for i, c := range courses {
		fmt.Fprintf(&sb, "%d. %s (%s)\n", i+1, c.Name(), c.Code())
	}
	sb.WriteString("--------------------")
	return sb.String()
}

// formatGroupList renders the numbered group picker for course.
func formatGroupList(course *gradebook.Course) string {
	groups := course.Groups()
	if len(groups) == 0 {
		return fmt.Sprintf("No groups registered for %s yet.", course.Name())
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n--- Groups in %s ---\n", course.Name())
	for i, g := range groups {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, g.Name())
	}
	sb.WriteString("------------------------")
	return sb.String()
}

// formatApprovedPercentage renders the outcome of menu option 6.
func formatApprovedPercentage(groupName string, pct float64) string {
	return fmt.Sprintf("Percentage of approved students in %s: %.2f%%", groupName, pct)
}
