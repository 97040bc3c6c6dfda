package catalog

import (
	"fmt"
	"math"
	"strings"
)

// ValidationError lists every structural problem found in a catalog.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("catalog validation failed:\n  %s", strings.Join(e.Problems, "\n  "))
}

// Validate performs all structural checks on a question and profile set.
// Returns a *ValidationError describing all problems found, or nil if valid.
func Validate(questions []Question, profiles []Profile) error {
	var errs []string

	if len(questions) == 0 {
		errs = append(errs, "catalog has no questions")
	}

	seen := make(map[int]bool, len(questions))
	for i, q := range questions {
		prefix := fmt.Sprintf("question %d (position %d)", q.ID, i)
		if seen[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %d", q.ID))
		}
		seen[q.ID] = true

		if q.Weight <= 0 || math.IsNaN(q.Weight) || math.IsInf(q.Weight, 0) {
			errs = append(errs, fmt.Sprintf("%s: weight must be > 0, got %v", prefix, q.Weight))
		}
		if strings.TrimSpace(q.Section) == "" {
			errs = append(errs, fmt.Sprintf("%s: section is empty", prefix))
		}
		if strings.TrimSpace(q.Text) == "" {
			errs = append(errs, fmt.Sprintf("%s: text is empty", prefix))
		}
		if len(q.Options) != OptionCount {
			errs = append(errs, fmt.Sprintf("%s: must have exactly %d options, got %d", prefix, OptionCount, len(q.Options)))
		}
	}

	keys := make(map[ProfileKey]bool, len(profiles))
	for _, p := range profiles {
		if keys[p.Key] {
			errs = append(errs, fmt.Sprintf("duplicate profile key: %q", p.Key))
		}
		keys[p.Key] = true

		if !isKnownKey(p.Key) {
			errs = append(errs, fmt.Sprintf("unknown profile key: %q", p.Key))
		}
		if strings.TrimSpace(p.Name) == "" {
			errs = append(errs, fmt.Sprintf("profile %q: name is empty", p.Key))
		}
		for _, s := range p.Allocation {
			if s.Percent < 0 {
				errs = append(errs, fmt.Sprintf("profile %q: asset %q has negative percent %v", p.Key, s.Asset, s.Percent))
			}
		}
	}
	for _, k := range AllProfileKeys() {
		if !keys[k] {
			errs = append(errs, fmt.Sprintf("missing profile %q", k))
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Problems: errs}
	}
	return nil
}

// AllocationWarnings reports profiles whose allocation does not add up to
// 100%. These are shown to the operator but never block startup.
func AllocationWarnings(c *Catalog) []string {
	var out []string
	for _, p := range c.Profiles() {
		total := p.AllocationTotal()
		if math.Abs(total-100) > 0.01 {
			out = append(out, fmt.Sprintf("profile %q allocation sums to %.2f%%", p.Key, total))
		}
	}
	return out
}

func isKnownKey(k ProfileKey) bool {
	for _, known := range AllProfileKeys() {
		if k == known {
			return true
		}
	}
	return false
}
