package welcome

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/topocapital/suitability/internal/catalog"
	"github.com/topocapital/suitability/internal/router"
	"github.com/topocapital/suitability/internal/screen"
)

type stubScreen struct{ title string }

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return s.title }
func (s *stubScreen) Title() string                          { return s.title }

func newTestWelcome(withHistory bool) (*WelcomeScreen, *int) {
	quizzes := 0
	opts := Options{
		Sections: catalog.MustBuiltin().Sections(),
		Quiz: func() screen.Screen {
			quizzes++
			return &stubScreen{title: "quiz"}
		},
	}
	if withHistory {
		opts.History = func() screen.Screen { return &stubScreen{title: "history"} }
	}
	return New(opts), &quizzes
}

func TestView_ShowsIntroAndSections(t *testing.T) {
	w, _ := newTestWelcome(true)
	v := w.View(120, 40)
	assert.Contains(t, v, "Análise de Suitability")
	assert.Contains(t, v, "Começar Agora")
	for _, name := range []string{"Experiência", "Objetivos", "Tolerância"} {
		assert.Contains(t, v, name)
	}
	assert.Contains(t, v, "Medimos")
}

func TestEnterPushesQuiz(t *testing.T) {
	w, quizzes := newTestWelcome(false)
	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.Equal(t, "quiz", msg.Screen.Title())
	assert.Equal(t, 1, *quizzes)
}

func TestHistoryEntry(t *testing.T) {
	w, _ := newTestWelcome(true)
	w.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.Equal(t, "history", msg.Screen.Title())
}

func TestHistoryHiddenWithoutStore(t *testing.T) {
	w, _ := newTestWelcome(false)
	assert.NotContains(t, w.View(120, 40), "Histórico")
}
