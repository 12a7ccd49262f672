// Package gradebook is the in-memory academic record model.
//
// Ownership is a strict tree: a Professor owns Courses, a Course owns
// Groups, and a Group owns its Students together with each student's
// ordered sequence of Grades. Commands flow down the tree and Results flow
// back up unchanged:
//
//	prof := gradebook.NewProfessor("P001", "Dr. Albus Dumbledore")
//	algo := gradebook.NewCourse("Algorithms", "CS201")
//	prof.AddCourse(algo)
//	algo.AddGroup(gradebook.NewGroup("A1"))
//	algo.AddStudentToGroup("A1", gradebook.NewOnSiteStudent("S1", "Ann"))
//	algo.RegisterGradeInGroup("A1", "S1", "Midterm", 88)
//
//	res := algo.GroupApprovedPercentage("A1")
//	if res.OK() {
//	    fmt.Printf("%.2f%%\n", res.Data())
//	}
//
// Expected failures (duplicates, unknown ids, empty groups, out-of-range
// scores) are reported as failed shared.Result values, never as panics.
//
// The model is not safe for concurrent use. A caller sharing one tree
// between goroutines must serialize access per Group, since registering a
// student or a grade updates two containers together.
package gradebook
