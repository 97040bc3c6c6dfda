package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	c := MustBuiltin()
	require.NotNil(t, c)
	assert.Equal(t, 10, c.Len())
	assert.Len(t, c.Profiles(), 3)
}

func TestDefault_MaxScore(t *testing.T) {
	// Weights sum to 16, each question contributes at most 2x its weight.
	assert.InDelta(t, 32.0, MustBuiltin().MaxScore(), 1e-9)
}

func TestGroupBySection_FirstSeenOrder(t *testing.T) {
	sections := MustBuiltin().Sections()
	require.Len(t, sections, 3)

	assert.Equal(t, "Experiência", sections[0].Name)
	assert.Equal(t, "Objetivos", sections[1].Name)
	assert.Equal(t, "Tolerância", sections[2].Name)

	ids := func(s Section) []int {
		var out []int
		for _, q := range s.Questions {
			out = append(out, q.ID)
		}
		return out
	}
	assert.Equal(t, []int{0, 6}, ids(sections[0]))
	assert.Equal(t, []int{7, 8}, ids(sections[1]))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 9}, ids(sections[2]))
}

func TestGroupBySection_InterleavedSections(t *testing.T) {
	qs := []Question{
		{ID: 1, Section: "B"},
		{ID: 2, Section: "A"},
		{ID: 3, Section: "B"},
		{ID: 4, Section: "C"},
		{ID: 5, Section: "A"},
	}
	sections := GroupBySection(qs)
	require.Len(t, sections, 3)
	assert.Equal(t, "B", sections[0].Name)
	assert.Equal(t, "A", sections[1].Name)
	assert.Equal(t, "C", sections[2].Name)
	assert.Equal(t, 1, sections[0].Questions[0].ID)
	assert.Equal(t, 3, sections[0].Questions[1].ID)
	assert.Equal(t, 5, sections[1].Questions[1].ID)
}

func TestGroupBySection_PreservesEveryQuestion(t *testing.T) {
	qs := MustBuiltin().Questions()
	total := 0
	for _, s := range GroupBySection(qs) {
		total += len(s.Questions)
	}
	assert.Equal(t, len(qs), total)
}

func TestGroupBySection_Empty(t *testing.T) {
	assert.Empty(t, GroupBySection(nil))
}

func TestSectionMap(t *testing.T) {
	m := SectionMap(MustBuiltin().Questions())
	assert.Len(t, m, 3)
	assert.Len(t, m["Tolerância"], 6)
}

func TestOffset(t *testing.T) {
	sections := MustBuiltin().Sections()
	assert.Equal(t, 0, Offset(sections, 0))
	assert.Equal(t, 2, Offset(sections, 1))
	assert.Equal(t, 4, Offset(sections, 2))
	assert.Equal(t, 10, Offset(sections, 3))
}

func TestProfile_Lookup(t *testing.T) {
	c := MustBuiltin()
	for _, k := range AllProfileKeys() {
		p, ok := c.Profile(k)
		require.True(t, ok, "profile %q", k)
		assert.Equal(t, k, p.Key)
		assert.Len(t, p.Allocation, 8)
		assert.InDelta(t, 100.0, p.AllocationTotal(), 1e-9)
	}

	_, ok := c.Profile("agressivo")
	assert.False(t, ok)
}

func TestProfile_Metrics(t *testing.T) {
	p, ok := MustBuiltin().Profile(Moderate)
	require.True(t, ok)
	items := p.Metrics.Items()
	require.Len(t, items, 4)
	assert.Equal(t, "Retorno", items[0].Label)
	assert.Equal(t, "14,8% a.a.", items[0].Value)
	assert.Equal(t, "Performance sobre o CDI", items[3].Label)
	assert.Equal(t, "126,98%", items[3].Value)
}

func TestQuestion_Lookup(t *testing.T) {
	q, ok := MustBuiltin().Question(2)
	require.True(t, ok)
	assert.Equal(t, 2.5, q.Weight)
	assert.Equal(t, 5.0, q.MaxScore())

	_, ok = MustBuiltin().Question(42)
	assert.False(t, ok)
}

func TestNew_CopiesInput(t *testing.T) {
	qs := seedQuestions()
	c, err := New(qs, seedProfiles())
	require.NoError(t, err)

	qs[0].Text = "mutated"
	qs[0].Options[0] = "mutated"

	q, _ := c.Question(qs[0].ID)
	assert.NotEqual(t, "mutated", q.Text)
	assert.NotEqual(t, "mutated", q.Options[0])
}

func TestAllocationWarnings(t *testing.T) {
	assert.Empty(t, AllocationWarnings(MustBuiltin()))

	profiles := seedProfiles()
	profiles[0].Allocation = profiles[0].Allocation[:2]
	c, err := New(seedQuestions(), profiles)
	require.NoError(t, err)

	warnings := AllocationWarnings(c)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "conservador")
}
