package assessment

import (
	"errors"
	"fmt"
)

// ErrNoRiskLevel is returned when a score falls outside every declared band.
// Callers must surface it rather than defaulting to a band, since silently
// picking one would misreport risk.
var ErrNoRiskLevel = errors.New("no risk level matches score")

// AnswerSet records at most one chosen option value per question. It is a
// per-session working set, never shared across sessions.
type AnswerSet map[string]int

// NewAnswerSet returns an empty answer set.
func NewAnswerSet() AnswerSet {
	return make(AnswerSet)
}

// Record sets or overwrites the answer for a question. The caller is
// responsible for passing a value taken from the question's own options.
func (s AnswerSet) Record(questionID string, points int) {
	s[questionID] = points
}

// Score sums the recorded option values. It is defined on partial sets for
// live feedback; the result is only submittable once IsComplete holds.
func (s AnswerSet) Score() int {
	total := 0
	for _, points := range s {
		total += points
	}
	return total
}

// IsComplete reports whether the answered question ids are exactly the ids
// declared by the assessment, order irrelevant.
func (s AnswerSet) IsComplete(a *Assessment) bool {
	if len(s) != len(a.Questions) {
		return false
	}
	for _, q := range a.Questions {
		if _, ok := s[q.ID]; !ok {
			return false
		}
	}
	return true
}

// ResolveRiskLevel returns the band containing score, scanning bands in
// declaration order. Catalogs are validated at load time to be contiguous and
// non-overlapping, so the first match is also the only one.
func (a *Assessment) ResolveRiskLevel(score int) (RiskLevel, error) {
	for _, rl := range a.RiskLevels {
		if rl.Contains(score) {
			return rl, nil
		}
	}
	return RiskLevel{}, fmt.Errorf("%w: %d (assessment %s)", ErrNoRiskLevel, score, a.ID)
}
