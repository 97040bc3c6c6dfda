package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/topocapital/suitability/internal/catalog"
)

func allAt(c *catalog.Catalog, idx int) Answers {
	a := make(Answers)
	for _, q := range c.Questions() {
		a[q.ID] = idx
	}
	return a
}

func TestClassify_EmptyAnswersIsConservative(t *testing.T) {
	r := Evaluate(catalog.MustBuiltin(), Answers{})
	assert.Equal(t, 0.0, r.Score)
	assert.Equal(t, 32.0, r.MaxScore)
	assert.Equal(t, 0.0, r.Normalized)
	assert.Equal(t, catalog.Conservative, r.Profile)
	assert.Equal(t, 0, r.Answered)
	assert.Equal(t, 10, r.Total)
}

func TestClassify_AllHighestIsAggressive(t *testing.T) {
	c := catalog.MustBuiltin()
	r := Evaluate(c, allAt(c, 2))
	assert.InDelta(t, 100.0, r.Normalized, 1e-9)
	assert.Equal(t, catalog.Aggressive, r.Profile)
}

func TestClassify_AllMiddleIsModerate(t *testing.T) {
	c := catalog.MustBuiltin()
	r := Evaluate(c, allAt(c, 1))
	assert.InDelta(t, 50.0, r.Normalized, 1e-9)
	assert.Equal(t, catalog.Moderate, r.Profile)
}

func TestClassify_Examples(t *testing.T) {
	c := catalog.MustBuiltin()
	tests := []struct {
		name       string
		answers    Answers
		normalized float64
		want       catalog.ProfileKey
	}{
		{
			// q2 (w2.5) and q4 (w2) at option 2 -> 9/32
			name:       "two heavy answers",
			answers:    Answers{2: 2, 4: 2},
			normalized: 28.125,
			want:       catalog.Conservative,
		},
		{
			// 1*1 + 2*1 + 2*1.5 + 2*1 + 2*2 + 2*2 = 16 -> 50%
			name:       "experience and tolerance",
			answers:    Answers{0: 1, 6: 2, 7: 2, 8: 2, 1: 2, 4: 2},
			normalized: 50,
			want:       catalog.Moderate,
		},
		{
			// all 2 except q0 at 0: 30/32
			name:       "nearly all riskiest",
			answers:    Answers{0: 0, 6: 2, 7: 2, 8: 2, 1: 2, 2: 2, 3: 2, 4: 2, 5: 2, 9: 2},
			normalized: 93.75,
			want:       catalog.Aggressive,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Evaluate(c, tt.answers)
			assert.InDelta(t, tt.normalized, r.Normalized, 1e-9)
			assert.Equal(t, tt.want, r.Profile)
			assert.Equal(t, tt.want, Classify(c, tt.answers))
		})
	}
}

func TestProfileFor_Boundaries(t *testing.T) {
	tests := []struct {
		normalized float64
		want       catalog.ProfileKey
	}{
		{0, catalog.Conservative},
		{40, catalog.Conservative},
		{40.0001, catalog.Moderate},
		{70, catalog.Moderate},
		{70.0001, catalog.Aggressive},
		{100, catalog.Aggressive},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ProfileFor(tt.normalized), "normalized=%v", tt.normalized)
	}
}

// Five unit-weight questions can land exactly on both thresholds.
func TestClassify_ExactBoundary(t *testing.T) {
	qs := make([]catalog.Question, 5)
	for i := range qs {
		qs[i] = catalog.Question{ID: i, Weight: 1, Section: "S", Text: "Q", Options: []string{"a", "b", "c"}}
	}
	c, err := catalog.New(qs, catalog.MustBuiltin().Profiles())
	require.NoError(t, err)

	// 4 of 10 points -> 40%.
	r := Evaluate(c, Answers{0: 2, 1: 2})
	assert.InDelta(t, 40.0, r.Normalized, 1e-9)
	assert.Equal(t, catalog.Conservative, r.Profile)

	// 7 of 10 points -> 70%.
	r = Evaluate(c, Answers{0: 2, 1: 2, 2: 2, 3: 1})
	assert.InDelta(t, 70.0, r.Normalized, 1e-9)
	assert.Equal(t, catalog.Moderate, r.Profile)
}

func TestClassify_UnknownIDsIgnored(t *testing.T) {
	c := catalog.MustBuiltin()
	base := Answers{2: 1, 4: 2}
	withExtra := base.Clone()
	withExtra[99] = 2
	withExtra[-1] = 2

	assert.Equal(t, Evaluate(c, base), Evaluate(c, withExtra))
}

func TestClassify_Monotonic(t *testing.T) {
	c := catalog.MustBuiltin()
	rank := map[catalog.ProfileKey]int{
		catalog.Conservative: 0,
		catalog.Moderate:     1,
		catalog.Aggressive:   2,
	}

	answers := Answers{}
	prev := Evaluate(c, answers)
	// Raise one answer at a time; the score and the profile never go down.
	for _, q := range c.Questions() {
		for idx := 1; idx <= 2; idx++ {
			answers[q.ID] = idx
			cur := Evaluate(c, answers)
			assert.GreaterOrEqual(t, cur.Normalized, prev.Normalized)
			assert.GreaterOrEqual(t, rank[cur.Profile], rank[prev.Profile])
			prev = cur
		}
	}
	assert.Equal(t, catalog.Aggressive, prev.Profile)
}

func TestClassify_Deterministic(t *testing.T) {
	c := catalog.MustBuiltin()
	a := Answers{0: 1, 7: 2, 2: 1, 9: 0}
	first := Evaluate(c, a)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, Evaluate(c, a))
	}
}

func TestClassify_DoesNotMutateAnswers(t *testing.T) {
	a := Answers{0: 1}
	Classify(catalog.MustBuiltin(), a)
	assert.Equal(t, Answers{0: 1}, a)
}
