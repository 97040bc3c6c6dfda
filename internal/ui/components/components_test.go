package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/topocapital/suitability/internal/catalog"
)

func press(code rune) tea.KeyPressMsg { return tea.KeyPressMsg{Code: code} }

func TestOptionList_Navigate(t *testing.T) {
	l := NewOptionList(4, []string{"a", "b", "c"}, -1)
	assert.Equal(t, 4, l.QuestionID)
	assert.Equal(t, 0, l.Cursor)
	assert.Equal(t, -1, l.Chosen)

	l, _ = l.Update(press(tea.KeyDown))
	l, _ = l.Update(press(tea.KeyDown))
	l, _ = l.Update(press(tea.KeyDown))
	assert.Equal(t, 2, l.Cursor)

	l, _ = l.Update(press(tea.KeyUp))
	assert.Equal(t, 1, l.Cursor)
	assert.Equal(t, -1, l.Chosen)
}

func TestOptionList_PickWithSpace(t *testing.T) {
	l := NewOptionList(0, []string{"a", "b", "c"}, -1)
	l, _ = l.Update(press(tea.KeyDown))
	l, cmd := l.Update(press(tea.KeySpace))
	assert.Nil(t, cmd)
	assert.Equal(t, 1, l.Chosen)
}

func TestOptionList_PickWithDigit(t *testing.T) {
	l := NewOptionList(0, []string{"a", "b", "c"}, 0)
	l, _ = l.Update(press('3'))
	assert.Equal(t, 2, l.Chosen)
	assert.Equal(t, 2, l.Cursor)

	l, _ = l.Update(press('9'))
	assert.Equal(t, 2, l.Chosen)
}

func TestOptionList_ViewMarksChosen(t *testing.T) {
	l := NewOptionList(0, []string{"Nenhuma", "Alguma"}, 1)
	v := l.View()
	assert.Contains(t, v, "● 2. Alguma")
	assert.Contains(t, v, "○ 1. Nenhuma")
}

func TestVisibleSlicesSkipsZero(t *testing.T) {
	slices := []catalog.Slice{{Asset: "a", Percent: 10}, {Asset: "b", Percent: 0}, {Asset: "c", Percent: 90}}
	assert.Equal(t, []int{0, 2}, VisibleSlices(slices))
}

func TestAllocationChart(t *testing.T) {
	p, ok := catalog.MustBuiltin().Profile(catalog.Conservative)
	require.True(t, ok)
	chart := AllocationChart(p.Allocation, 100)
	for _, s := range p.Allocation {
		if s.Percent > 0 {
			assert.Contains(t, chart, ChartLabel(s.Percent))
		}
	}
	assert.Contains(t, AllocationChart(nil, 80), "Sem alocação")
}

func TestChartLabel(t *testing.T) {
	assert.Equal(t, "12.5%", ChartLabel(12.5))
	assert.Equal(t, "40.0%", ChartLabel(40))
}

func TestMenu_SkipsDisabled(t *testing.T) {
	called := false
	m := NewMenu([]MenuItem{
		{Label: "off", Disabled: true},
		{Label: "on", Action: func() tea.Cmd { called = true; return nil }},
		{Label: "off2", Disabled: true},
	})
	assert.Equal(t, 1, m.Selected)

	m, _ = m.Update(press(tea.KeyDown))
	assert.Equal(t, 1, m.Selected)

	_, _ = m.Update(press(tea.KeyEnter))
	assert.True(t, called)
}

func TestButton(t *testing.T) {
	assert.Contains(t, NewButton("Próximo", "Enter", true).View(), "[Enter] Próximo")
	assert.Contains(t, NewButton("Voltar", "", false).View(), "Voltar")
}

func TestProgressBar(t *testing.T) {
	assert.Contains(t, NewProgressBar("", 0.5, true, 40).View(), "50%")
}
