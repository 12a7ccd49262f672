package gradebook

import (
	"fmt"
	"strings"

	"github.com/alem-hub/gradebook/internal/domain/shared"
)

// Variant is the attendance mode of a student. The set is closed.
type Variant string

const (
	// VariantOnSite - the student attends in person.
	VariantOnSite Variant = "onsite"
	// VariantRemote - the student connects through a platform.
	VariantRemote Variant = "remote"
)

// IsValid reports whether v is one of the known variants.
func (v Variant) IsValid() bool {
	switch v {
	case VariantOnSite, VariantRemote:
		return true
	default:
		return false
	}
}

// ParseVariant maps the console codes to a Variant: "P" (presencial) is
// on-site and "D" (distancia) is remote. Matching ignores case and
// surrounding whitespace.
func ParseVariant(code string) (Variant, error) {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "P":
		return VariantOnSite, nil
	case "D":
		return VariantRemote, nil
	default:
		return "", shared.ErrUnknownVariant
	}
}

// Student is a group member. Identity is ID; students are never mutated
// after creation.
type Student struct {
	ID      string
	Name    string
	Variant Variant

	// Platform is the connection platform of a remote student (e.g. Zoom).
	// Empty for on-site students.
	Platform string
}

// NewOnSiteStudent creates an on-site student.
func NewOnSiteStudent(id, name string) Student {
	return Student{ID: id, Name: name, Variant: VariantOnSite}
}

// NewRemoteStudent creates a remote student connecting through platform.
func NewRemoteStudent(id, name, platform string) Student {
	return Student{ID: id, Name: name, Variant: VariantRemote, Platform: platform}
}

// Describe renders the student's display line.
func (s Student) Describe() string {
	switch s.Variant {
	case VariantRemote:
		return fmt.Sprintf("Student ID: %s, Name: %s (Type: Remote, Platform: %s)", s.ID, s.Name, s.Platform)
	default:
		return fmt.Sprintf("Student ID: %s, Name: %s (Type: Onsite)", s.ID, s.Name)
	}
}
