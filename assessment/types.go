// Package assessment holds the screening questionnaire catalog and the pure
// risk-scoring evaluator. Catalog data is immutable after load; all scoring
// state lives in the caller's AnswerSet.
package assessment

import (
	"github.com/hirassa/screening-api/locale"
)

// Option is one selectable answer with its point value.
type Option struct {
	Label  locale.Text `json:"label"`
	Points int         `json:"points"`
}

// Question is a multiple-choice question within an assessment.
type Question struct {
	ID      string      `json:"id"`
	Text    locale.Text `json:"text"`
	Options []Option    `json:"options"`
}

// MaxPoints returns the highest option value declared for the question.
func (q Question) MaxPoints() int {
	max := 0
	for _, opt := range q.Options {
		if opt.Points > max {
			max = opt.Points
		}
	}
	return max
}

// OffersPoints reports whether points matches one of the question's options.
func (q Question) OffersPoints(points int) bool {
	for _, opt := range q.Options {
		if opt.Points == points {
			return true
		}
	}
	return false
}

// RiskColor tags a risk band for presentation only.
type RiskColor string

const (
	ColorGreen  RiskColor = "green"
	ColorYellow RiskColor = "yellow"
	ColorOrange RiskColor = "orange"
	ColorRed    RiskColor = "red"
)

// KnownColor reports whether c is one of the recognized band colors.
func KnownColor(c RiskColor) bool {
	switch c {
	case ColorGreen, ColorYellow, ColorOrange, ColorRed:
		return true
	}
	return false
}

// RiskLevel is an inclusive score band with localized guidance text.
type RiskLevel struct {
	MinScore int         `json:"minScore"`
	MaxScore int         `json:"maxScore"`
	Label    locale.Text `json:"label"`
	Message  locale.Text `json:"message"`
	Color    RiskColor   `json:"color"`
}

// Contains reports whether score falls inside the band, both ends inclusive.
func (rl RiskLevel) Contains(score int) bool {
	return score >= rl.MinScore && score <= rl.MaxScore
}

// Assessment is a named questionnaire with its scoring bands.
type Assessment struct {
	ID          string      `json:"id"`
	Name        locale.Text `json:"name"`
	Description locale.Text `json:"description"`
	Questions   []Question  `json:"questions"`
	RiskLevels  []RiskLevel `json:"riskLevels"`
}

// MaxScore returns the highest achievable score: the sum of every question's
// maximum option value.
func (a *Assessment) MaxScore() int {
	total := 0
	for _, q := range a.Questions {
		total += q.MaxPoints()
	}
	return total
}

// Question returns the question with the given id.
func (a *Assessment) Question(id string) (Question, bool) {
	for _, q := range a.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
