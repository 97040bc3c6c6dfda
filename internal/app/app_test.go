package app

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/topocapital/suitability/internal/catalog"
	"github.com/topocapital/suitability/internal/router"
	"github.com/topocapital/suitability/internal/screens/quiz"
	"github.com/topocapital/suitability/internal/screens/results"
	"github.com/topocapital/suitability/internal/store"
)

// memoryEvents is an in-memory store.EventRepo covering what the app writes.
type memoryEvents struct {
	store.EventRepo
	actions []string
	results []store.ResultData
}

func (m *memoryEvents) AppendSessionEvent(_ context.Context, d store.SessionEventData) error {
	m.actions = append(m.actions, d.Action)
	return nil
}

func (m *memoryEvents) AppendResult(_ context.Context, d store.ResultData) error {
	m.results = append(m.results, d)
	return nil
}

func press(r rune) tea.KeyPressMsg { return tea.KeyPressMsg{Code: r, Text: string(r)} }

var (
	enter = tea.KeyPressMsg{Code: tea.KeyEnter}
	esc   = tea.KeyPressMsg{Code: tea.KeyEscape}
)

// drive runs msg through the model and follows the resulting commands,
// skipping tea.Quit and batches.
func drive(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	for i := 0; msg != nil && i < 10; i++ {
		next, cmd := m.Update(msg)
		m = next.(AppModel)
		if cmd == nil {
			return m
		}
		msg = cmd()
		if _, ok := msg.(tea.QuitMsg); ok {
			return m
		}
		if _, ok := msg.(tea.BatchMsg); ok {
			return m
		}
	}
	return m
}

func newTestApp(events store.EventRepo) AppModel {
	m := newAppModel(Options{Catalog: catalog.MustBuiltin(), Events: events})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(AppModel)
}

func TestApp_FullRun(t *testing.T) {
	events := &memoryEvents{}
	m := newTestApp(events)

	m = drive(t, m, enter) // Começar Agora
	require.IsType(t, &quiz.QuizScreen{}, m.router.Active())
	assert.Contains(t, m.render(), "0% concluído")

	for i := 0; i < 10; i++ {
		m = drive(t, m, press('1'))
		m = drive(t, m, enter)
	}
	require.IsType(t, &results.ResultsScreen{}, m.router.Active())
	assert.Equal(t, 2, m.router.Depth())
	assert.Contains(t, m.render(), "Análise Concluída!")
	assert.NotContains(t, m.render(), "concluído")

	require.Len(t, events.results, 1)
	assert.Equal(t, "conservador", events.results[0].Profile)

	m = drive(t, m, press('r'))
	require.IsType(t, &quiz.QuizScreen{}, m.router.Active())
	assert.Equal(t, 2, m.router.Depth())
	assert.Equal(t, []string{store.ActionStart, store.ActionComplete, store.ActionRestart}, events.actions)
}

func TestApp_EscapeFromQuizAbandons(t *testing.T) {
	events := &memoryEvents{}
	m := newTestApp(events)

	m = drive(t, m, enter)
	m = drive(t, m, esc)

	assert.Equal(t, 1, m.router.Depth())
	assert.Equal(t, []string{store.ActionStart, store.ActionAbandon}, events.actions)
}

func TestApp_BackFromFirstQuestionResumes(t *testing.T) {
	events := &memoryEvents{}
	m := newTestApp(events)

	m = drive(t, m, enter)
	m = drive(t, m, press('2'))
	first := m.router.Active()
	m = drive(t, m, tea.KeyPressMsg{Code: tea.KeyLeft})
	assert.Equal(t, 1, m.router.Depth())

	m = drive(t, m, enter)
	require.Same(t, first, m.router.Active())
	idx, ok := first.(*quiz.QuizScreen).State().Answer(0)
	require.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.Equal(t, []string{store.ActionStart}, events.actions)
}

func TestRun_RequiresCatalog(t *testing.T) {
	assert.Error(t, Run(Options{}))
}

func TestApp_EscapeFromResultsGoesHome(t *testing.T) {
	m := newTestApp(nil)
	m = drive(t, m, enter)
	for i := 0; i < 10; i++ {
		m = drive(t, m, press('3'))
		m = drive(t, m, enter)
	}
	require.IsType(t, &results.ResultsScreen{}, m.router.Active())

	m = drive(t, m, esc)
	assert.Equal(t, 1, m.router.Depth())
}

func TestApp_EscapeAtRootIsIgnored(t *testing.T) {
	m := newTestApp(nil)
	m = drive(t, m, esc)
	assert.Equal(t, 1, m.router.Depth())
}

func TestApp_TooSmall(t *testing.T) {
	m := newAppModel(Options{Catalog: catalog.MustBuiltin()})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	assert.Contains(t, next.(AppModel).render(), "Terminal muito pequeno")
}

func TestApp_FooterUsesScreenHints(t *testing.T) {
	m := newTestApp(nil)
	m = drive(t, m, enter)
	assert.Contains(t, m.render(), "Glossário")
}

func TestApp_PopMessageReturnsHome(t *testing.T) {
	m := newTestApp(nil)
	m = drive(t, m, enter)
	m = drive(t, m, router.PopScreenMsg{})
	assert.Equal(t, 1, m.router.Depth())
}
