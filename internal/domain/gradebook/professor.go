package gradebook

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/alem-hub/gradebook/internal/domain/shared"
)

// Professor is the root of the record tree.
type Professor struct {
	id      string
	name    string
	courses *orderedIndex[string, *Course]
}

// NewProfessor creates a professor without courses.
func NewProfessor(id, name string) *Professor {
	return &Professor{
		id:      id,
		name:    name,
		courses: newOrderedIndex[string, *Course](),
	}
}

// ID returns the professor identifier.
func (p *Professor) ID() string { return p.id }

// Name returns the professor display name.
func (p *Professor) Name() string { return p.name }

// Courses returns the professor's courses in insertion order.
func (p *Professor) Courses() []*Course { return p.courses.values() }

// AddCourse registers course. Course codes are unique per professor.
func (p *Professor) AddCourse(course *Course) shared.Result[shared.NoData] {
	if !p.courses.insert(course.Code(), course) {
		return shared.Fail(shared.ErrCourseAlreadyExists,
			fmt.Sprintf("Course %s (%s) already exists for this professor.", course.Name(), course.Code()), shared.NoData{})
	}
	return shared.Ok(fmt.Sprintf("Course %s added to professor %s's courses.", course.Name(), p.name), shared.NoData{})
}

// FindCourse returns the first course whose name matches name, ignoring case.
func (p *Professor) FindCourse(name string) (*Course, bool) {
	want := foldName(name)
	for _, course := range p.courses.values() {
		if foldName(course.Name()) == want {
			return course, true
		}
	}
	return nil, false
}

// foldName normalizes to NFC before case folding so that composed and
// decomposed accents ("Álgebra") compare equal.
func foldName(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}
