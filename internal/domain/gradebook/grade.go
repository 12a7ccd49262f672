package gradebook

import (
	"math"
	"strconv"
	"strings"

	"github.com/alem-hub/gradebook/internal/domain/shared"
)

const (
	// MinScore is the lowest accepted score (inclusive).
	MinScore = 0.0
	// MaxScore is the highest accepted score (inclusive).
	MaxScore = 100.0
)

// Grade is one recorded assessment score. Grades are write-once.
type Grade struct {
	assessmentName string
	score          float64
}

// NewGrade validates score and builds a Grade.
// Scores outside [MinScore, MaxScore], NaN included, are rejected.
func NewGrade(assessmentName string, score float64) (Grade, error) {
	if !(score >= MinScore && score <= MaxScore) {
		return Grade{}, shared.ErrScoreOutOfRange
	}
	return Grade{assessmentName: assessmentName, score: score}, nil
}

// AssessmentName returns the name of the assessment, e.g. "Midterm".
func (g Grade) AssessmentName() string { return g.assessmentName }

// Score returns the recorded score.
func (g Grade) Score() float64 { return g.score }

// FormatScore renders a score as the shortest decimal that round-trips,
// always keeping one fractional digit: 88 -> "88.0", 92.5 -> "92.5".
// Magnitudes below 1e-4 or from 1e16 up switch to exponent form (1e-05).
func FormatScore(score float64) string {
	if abs := math.Abs(score); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(score, 'e', -1, 64)
	}
	s := strconv.FormatFloat(score, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
