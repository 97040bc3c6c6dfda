package catalog

import (
	"fmt"
)

// ProfileKey identifies one of the fixed investor profiles.
type ProfileKey string

const (
	Conservative ProfileKey = "conservador"
	Moderate     ProfileKey = "moderado"
	Aggressive   ProfileKey = "arrojado"
)

// AllProfileKeys returns the profile keys from lowest to highest risk.
func AllProfileKeys() []ProfileKey {
	return []ProfileKey{Conservative, Moderate, Aggressive}
}

// OptionCount is the number of answer options every question carries.
// The option index doubles as its risk score.
const OptionCount = 3

// Question is a single weighted quiz question.
type Question struct {
	ID      int      `yaml:"id" json:"id"`
	Weight  float64  `yaml:"weight" json:"weight"`
	Section string   `yaml:"section" json:"section"`
	Text    string   `yaml:"text" json:"text"`
	Options []string `yaml:"options" json:"options"`
}

// MaxScore is the contribution of the question when the riskiest option is chosen.
func (q Question) MaxScore() float64 {
	return float64(OptionCount-1) * q.Weight
}

// Slice is one asset class of a model portfolio.
type Slice struct {
	Asset   string  `yaml:"asset" json:"asset"`
	Percent float64 `yaml:"percent" json:"percent"`
}

// Metrics are pre-formatted performance figures shown verbatim.
type Metrics struct {
	Return         string `yaml:"retorno" json:"retorno"`
	Volatility     string `yaml:"volatilidade" json:"volatilidade"`
	Sharpe         string `yaml:"sharpe" json:"sharpe"`
	CDIPerformance string `yaml:"cdi" json:"cdi"`
}

// Metric is a labelled display value.
type Metric struct {
	Label string
	Value string
}

// Items returns the metrics in display order.
func (m Metrics) Items() []Metric {
	return []Metric{
		{Label: "Retorno", Value: m.Return},
		{Label: "Volatilidade", Value: m.Volatility},
		{Label: "Índice de Sharpe", Value: m.Sharpe},
		{Label: "Performance sobre o CDI", Value: m.CDIPerformance},
	}
}

// Profile is an investor profile and its model portfolio.
type Profile struct {
	Key         ProfileKey `yaml:"key" json:"key"`
	Name        string     `yaml:"name" json:"name"`
	Description string     `yaml:"description" json:"description"`
	Allocation  []Slice    `yaml:"allocation" json:"allocation"`
	Metrics     Metrics    `yaml:"metrics" json:"metrics"`
}

// AllocationTotal sums the allocation percentages.
func (p Profile) AllocationTotal() float64 {
	var total float64
	for _, s := range p.Allocation {
		total += s.Percent
	}
	return total
}

// Catalog is the immutable set of questions and profiles for one quiz.
type Catalog struct {
	questions []Question
	sections  []Section
	byID      map[int]int
	profiles  map[ProfileKey]Profile
}

// New validates the questions and profiles and builds a catalog.
// The inputs are copied; later changes to them do not affect the catalog.
func New(questions []Question, profiles []Profile) (*Catalog, error) {
	if err := Validate(questions, profiles); err != nil {
		return nil, err
	}

	c := &Catalog{
		questions: make([]Question, len(questions)),
		byID:      make(map[int]int, len(questions)),
		profiles:  make(map[ProfileKey]Profile, len(profiles)),
	}
	for i, q := range questions {
		q.Options = append([]string(nil), q.Options...)
		c.questions[i] = q
		c.byID[q.ID] = i
	}
	for _, p := range profiles {
		p.Allocation = append([]Slice(nil), p.Allocation...)
		c.profiles[p.Key] = p
	}
	c.sections = GroupBySection(c.questions)
	return c, nil
}

// Builtin builds the catalog shipped with the binary. Each call returns a
// fresh catalog; callers build it once at startup and pass it along.
func Builtin() (*Catalog, error) {
	c, err := New(seedQuestions(), seedProfiles())
	if err != nil {
		return nil, fmt.Errorf("built-in catalog: %w", err)
	}
	return c, nil
}

// MustBuiltin is like Builtin but panics on error.
func MustBuiltin() *Catalog {
	c, err := Builtin()
	if err != nil {
		panic(err)
	}
	return c
}

// Questions returns all questions in catalog order.
func (c *Catalog) Questions() []Question {
	return append([]Question(nil), c.questions...)
}

// Len returns the number of questions.
func (c *Catalog) Len() int { return len(c.questions) }

// Question looks up a question by ID.
func (c *Catalog) Question(id int) (Question, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Question{}, false
	}
	return c.questions[i], true
}

// Sections returns the questions grouped by section in first-seen order.
func (c *Catalog) Sections() []Section {
	return c.sections
}

// Section returns the named section.
func (c *Catalog) Section(name string) (Section, bool) {
	for _, s := range c.sections {
		if s.Name == name {
			return s, true
		}
	}
	return Section{}, false
}

// Profile looks up a profile by key. Callers render a "not found" state
// when ok is false.
func (c *Catalog) Profile(key ProfileKey) (Profile, bool) {
	p, ok := c.profiles[key]
	return p, ok
}

// Profiles returns every profile from lowest to highest risk.
func (c *Catalog) Profiles() []Profile {
	out := make([]Profile, 0, len(c.profiles))
	for _, k := range AllProfileKeys() {
		if p, ok := c.profiles[k]; ok {
			out = append(out, p)
		}
	}
	return out
}

// MaxScore is the sum of every question's maximum contribution.
func (c *Catalog) MaxScore() float64 {
	var total float64
	for _, q := range c.questions {
		total += q.MaxScore()
	}
	return total
}
