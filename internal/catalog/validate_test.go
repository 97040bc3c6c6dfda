package catalog

import (
	"errors"
	"strings"
	"testing"
)

func validQuestion(id int) Question {
	return Question{ID: id, Weight: 1, Section: "S", Text: "Q?", Options: []string{"a", "b", "c"}}
}

func TestValidate_SeedPasses(t *testing.T) {
	if err := Validate(seedQuestions(), seedProfiles()); err != nil {
		t.Fatalf("seed catalog validation failed: %v", err)
	}
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name      string
		questions []Question
		profiles  []Profile
		want      string
	}{
		{
			name:     "no questions",
			profiles: seedProfiles(),
			want:     "no questions",
		},
		{
			name:      "duplicate id",
			questions: []Question{validQuestion(1), validQuestion(1)},
			profiles:  seedProfiles(),
			want:      "duplicate question ID: 1",
		},
		{
			name: "two options",
			questions: []Question{
				{ID: 1, Weight: 1, Section: "S", Text: "Q?", Options: []string{"a", "b"}},
			},
			profiles: seedProfiles(),
			want:     "exactly 3 options",
		},
		{
			name: "zero weight",
			questions: []Question{
				{ID: 1, Weight: 0, Section: "S", Text: "Q?", Options: []string{"a", "b", "c"}},
			},
			profiles: seedProfiles(),
			want:     "weight must be > 0",
		},
		{
			name: "empty section",
			questions: []Question{
				{ID: 1, Weight: 1, Section: " ", Text: "Q?", Options: []string{"a", "b", "c"}},
			},
			profiles: seedProfiles(),
			want:     "section is empty",
		},
		{
			name:      "missing profile",
			questions: []Question{validQuestion(1)},
			profiles:  seedProfiles()[:2],
			want:      `missing profile "arrojado"`,
		},
		{
			name:      "unknown profile",
			questions: []Question{validQuestion(1)},
			profiles:  append(seedProfiles(), Profile{Key: "agressivo", Name: "X"}),
			want:      `unknown profile key: "agressivo"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.questions, tt.profiles)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error should mention %q, got: %v", tt.want, err)
			}
		})
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	qs := []Question{
		{ID: 1, Weight: -1, Section: "S", Text: "Q?", Options: []string{"a"}},
	}
	err := Validate(qs, nil)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	// weight, options and three missing profiles
	if len(verr.Problems) != 5 {
		t.Errorf("expected 5 problems, got %d: %v", len(verr.Problems), verr.Problems)
	}
}

func TestNew_RejectsInvalid(t *testing.T) {
	if _, err := New(nil, seedProfiles()); err == nil {
		t.Fatal("expected error for empty catalog")
	}
}
