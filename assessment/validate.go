package assessment

import (
	"fmt"
	"sort"
	"strings"
)

// Validate checks the structural integrity of an assessment. It is called
// once at catalog load so that a malformed catalog fails the process at
// startup instead of surfacing as a missing band at scoring time.
func (a *Assessment) Validate() error {
	if strings.TrimSpace(a.ID) == "" {
		return fmt.Errorf("assessment id is empty")
	}
	if !a.Name.Complete() {
		return fmt.Errorf("assessment %s: name is missing a locale variant", a.ID)
	}
	if !a.Description.Complete() {
		return fmt.Errorf("assessment %s: description is missing a locale variant", a.ID)
	}

	if err := a.validateQuestions(); err != nil {
		return err
	}

	return a.validateRiskLevels()
}

func (a *Assessment) validateQuestions() error {
	if len(a.Questions) == 0 {
		return fmt.Errorf("assessment %s: no questions", a.ID)
	}

	seen := make(map[string]bool, len(a.Questions))
	for _, q := range a.Questions {
		if strings.TrimSpace(q.ID) == "" {
			return fmt.Errorf("assessment %s: question with empty id", a.ID)
		}
		if seen[q.ID] {
			return fmt.Errorf("assessment %s: duplicate question id %s", a.ID, q.ID)
		}
		seen[q.ID] = true

		if !q.Text.Complete() {
			return fmt.Errorf("assessment %s: question %s is missing a locale variant", a.ID, q.ID)
		}
		if len(q.Options) < 2 {
			return fmt.Errorf("assessment %s: question %s has fewer than 2 options", a.ID, q.ID)
		}
		for i, opt := range q.Options {
			if !opt.Label.Complete() {
				return fmt.Errorf("assessment %s: question %s option %d is missing a locale variant", a.ID, q.ID, i)
			}
			if opt.Points < 0 {
				return fmt.Errorf("assessment %s: question %s option %d has negative points", a.ID, q.ID, i)
			}
		}
	}

	return nil
}

// validateRiskLevels asserts that the bands partition [0, MaxScore] with no
// gaps and no overlaps. A sorted copy is checked so declaration order stays
// free for presentation.
func (a *Assessment) validateRiskLevels() error {
	if len(a.RiskLevels) == 0 {
		return fmt.Errorf("assessment %s: no risk levels", a.ID)
	}

	for i, rl := range a.RiskLevels {
		if rl.MinScore > rl.MaxScore {
			return fmt.Errorf("assessment %s: risk level %d has minScore %d > maxScore %d",
				a.ID, i, rl.MinScore, rl.MaxScore)
		}
		if !rl.Label.Complete() || !rl.Message.Complete() {
			return fmt.Errorf("assessment %s: risk level %d is missing a locale variant", a.ID, i)
		}
		if !KnownColor(rl.Color) {
			return fmt.Errorf("assessment %s: risk level %d has unknown color %q", a.ID, i, rl.Color)
		}
	}

	bands := make([]RiskLevel, len(a.RiskLevels))
	copy(bands, a.RiskLevels)
	sort.Slice(bands, func(i, j int) bool { return bands[i].MinScore < bands[j].MinScore })

	if bands[0].MinScore != 0 {
		return fmt.Errorf("assessment %s: risk levels start at %d, want 0", a.ID, bands[0].MinScore)
	}

	for i := 1; i < len(bands); i++ {
		prev, cur := bands[i-1], bands[i]
		if cur.MinScore <= prev.MaxScore {
			return fmt.Errorf("assessment %s: risk levels [%d,%d] and [%d,%d] overlap",
				a.ID, prev.MinScore, prev.MaxScore, cur.MinScore, cur.MaxScore)
		}
		if cur.MinScore != prev.MaxScore+1 {
			return fmt.Errorf("assessment %s: gap between risk levels at score %d",
				a.ID, prev.MaxScore+1)
		}
	}

	maxScore := a.MaxScore()
	last := bands[len(bands)-1]
	if last.MaxScore != maxScore {
		return fmt.Errorf("assessment %s: risk levels end at %d, want max achievable score %d",
			a.ID, last.MaxScore, maxScore)
	}

	return nil
}
