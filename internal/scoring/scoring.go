// Package scoring maps an answer set onto an investor profile.
package scoring

import (
	"github.com/topocapital/suitability/internal/catalog"
)

// Profile thresholds on the normalized 0-100 score. Both are inclusive
// upper bounds.
const (
	ConservativeMax = 40.0
	ModerateMax     = 70.0
)

// Answers maps question ID to the chosen option index.
type Answers map[int]int

// Clone returns an independent copy.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Result holds the intermediate values of a classification.
type Result struct {
	Score      float64            `json:"score"`
	MaxScore   float64            `json:"max_score"`
	Normalized float64            `json:"normalized"`
	Answered   int                `json:"answered"`
	Total      int                `json:"total"`
	Profile    catalog.ProfileKey `json:"profile"`
}

// Evaluate scores answers against every question in the catalog.
// Unanswered questions count as the lowest-risk option and IDs that are not
// in the catalog are ignored.
func Evaluate(c *catalog.Catalog, answers Answers) Result {
	var r Result
	for _, q := range c.Questions() {
		r.MaxScore += q.MaxScore()
		r.Total++
		idx, ok := answers[q.ID]
		if !ok {
			continue
		}
		r.Answered++
		r.Score += float64(idx) * q.Weight
	}
	if r.MaxScore > 0 {
		// Multiply first so scores exactly on a threshold stay on it.
		r.Normalized = r.Score * 100 / r.MaxScore
	}
	r.Profile = ProfileFor(r.Normalized)
	return r
}

// Classify returns the profile key for an answer set.
func Classify(c *catalog.Catalog, answers Answers) catalog.ProfileKey {
	return Evaluate(c, answers).Profile
}

// ProfileFor buckets a normalized score.
func ProfileFor(normalized float64) catalog.ProfileKey {
	switch {
	case normalized <= ConservativeMax:
		return catalog.Conservative
	case normalized <= ModerateMax:
		return catalog.Moderate
	default:
		return catalog.Aggressive
	}
}
