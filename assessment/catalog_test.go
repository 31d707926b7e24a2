package assessment

import (
	"errors"
	"strings"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	catalog, err := Default()
	if err != nil {
		t.Fatalf("Default() unexpected error: %v", err)
	}

	if catalog.Len() == 0 {
		t.Fatal("default catalog is empty")
	}

	a, err := catalog.Get("diabetes-risk")
	if err != nil {
		t.Fatalf("Get(diabetes-risk) unexpected error: %v", err)
	}

	if a.MaxScore() != 26 {
		t.Errorf("diabetes-risk MaxScore() = %d, want 26", a.MaxScore())
	}

	// Every achievable score resolves to exactly one band
	for score := 0; score <= a.MaxScore(); score++ {
		if _, err := a.ResolveRiskLevel(score); err != nil {
			t.Errorf("ResolveRiskLevel(%d) unexpected error: %v", score, err)
		}
	}
}

func TestCatalogGetUnknown(t *testing.T) {
	catalog, err := Default()
	if err != nil {
		t.Fatalf("Default() unexpected error: %v", err)
	}

	_, err = catalog.Get("no-such-assessment")
	if !errors.Is(err, ErrUnknownAssessment) {
		t.Errorf("Get(no-such-assessment) error = %v, want ErrUnknownAssessment", err)
	}
}

func TestNewCatalogRejectsDuplicateIDs(t *testing.T) {
	_, err := NewCatalog(twoQuestionAssessment(), twoQuestionAssessment())
	if err == nil {
		t.Fatal("expected error for duplicate assessment ids")
	}
	if !strings.Contains(err.Error(), "duplicate assessment id") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateRejectsMalformedCatalogs(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(a *Assessment)
		wantErr string
	}{
		{
			name:    "empty id",
			mutate:  func(a *Assessment) { a.ID = " " },
			wantErr: "id is empty",
		},
		{
			name:    "no questions",
			mutate:  func(a *Assessment) { a.Questions = nil },
			wantErr: "no questions",
		},
		{
			name: "duplicate question ids",
			mutate: func(a *Assessment) {
				a.Questions[1].ID = a.Questions[0].ID
			},
			wantErr: "duplicate question id",
		},
		{
			name: "single option question",
			mutate: func(a *Assessment) {
				a.Questions[0].Options = a.Questions[0].Options[:1]
			},
			wantErr: "fewer than 2 options",
		},
		{
			name: "missing locale variant on question",
			mutate: func(a *Assessment) {
				a.Questions[0].Text.Ar = ""
			},
			wantErr: "missing a locale variant",
		},
		{
			name:    "no risk levels",
			mutate:  func(a *Assessment) { a.RiskLevels = nil },
			wantErr: "no risk levels",
		},
		{
			name: "inverted band",
			mutate: func(a *Assessment) {
				a.RiskLevels[0].MinScore = 3
				a.RiskLevels[0].MaxScore = 1
			},
			wantErr: "minScore",
		},
		{
			name: "bands do not start at zero",
			mutate: func(a *Assessment) {
				a.RiskLevels[0].MinScore = 1
			},
			wantErr: "want 0",
		},
		{
			name: "gap between bands",
			mutate: func(a *Assessment) {
				a.RiskLevels[1].MinScore = 4 // leaves score 3 uncovered
			},
			wantErr: "gap between risk levels",
		},
		{
			name: "overlapping bands",
			mutate: func(a *Assessment) {
				a.RiskLevels[1].MinScore = 2 // overlaps [0,2]
			},
			wantErr: "overlap",
		},
		{
			name: "bands end below max achievable score",
			mutate: func(a *Assessment) {
				a.RiskLevels[2].MaxScore = 8
			},
			wantErr: "max achievable score",
		},
		{
			name: "unknown color",
			mutate: func(a *Assessment) {
				a.RiskLevels[0].Color = "purple"
			},
			wantErr: "unknown color",
		},
		{
			name: "negative option points",
			mutate: func(a *Assessment) {
				a.Questions[0].Options[0].Points = -1
			},
			wantErr: "negative points",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := twoQuestionAssessment()
			tt.mutate(a)

			err := a.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidateAcceptsWellFormedCatalog(t *testing.T) {
	if err := twoQuestionAssessment().Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
}
