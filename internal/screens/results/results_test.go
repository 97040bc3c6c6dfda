package results

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/topocapital/suitability/internal/catalog"
	"github.com/topocapital/suitability/internal/router"
	"github.com/topocapital/suitability/internal/scoring"
	"github.com/topocapital/suitability/internal/screen"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return "quiz" }
func (s *stubScreen) Title() string                          { return "quiz" }

func press(r rune) tea.KeyPressMsg { return tea.KeyPressMsg{Code: r, Text: string(r)} }

func newTestResults(profile catalog.ProfileKey, restart func() screen.Screen) *ResultsScreen {
	return New(Options{
		Catalog: catalog.MustBuiltin(),
		Result:  scoring.Result{Score: 10, MaxScore: 34, Normalized: 29.4, Profile: profile},
		Restart: restart,
	})
}

func TestView_ShowsProfile(t *testing.T) {
	s := newTestResults(catalog.Moderate, nil)
	p, ok := catalog.MustBuiltin().Profile(catalog.Moderate)
	require.True(t, ok)

	v := s.View(140, 50)
	assert.Contains(t, v, "Análise Concluída!")
	assert.Contains(t, v, p.Name)
	assert.Contains(t, v, "Alocação do Portfólio")
	assert.Contains(t, v, "Retorno")
	assert.Contains(t, v, p.Metrics.Sharpe)
	assert.Contains(t, v, "Baixar Relatório")
}

func TestView_CompactMetrics(t *testing.T) {
	s := newTestResults(catalog.Conservative, nil)
	v := s.View(140, 24)
	assert.Contains(t, v, "Volatilidade:")
}

func TestView_UnknownProfile(t *testing.T) {
	s := newTestResults("agressivo", nil)
	v := s.View(120, 40)
	assert.Contains(t, v, "Perfil não encontrado")
	assert.NotContains(t, v, "Alocação do Portfólio")
}

func TestRestart(t *testing.T) {
	calls := 0
	s := newTestResults(catalog.Aggressive, func() screen.Screen {
		calls++
		return &stubScreen{}
	})

	_, cmd := s.Update(press('r'))
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &stubScreen{}, msg.Screen)
	assert.Equal(t, 1, calls)
}

func TestRestart_Disabled(t *testing.T) {
	s := newTestResults(catalog.Aggressive, nil)
	_, cmd := s.Update(press('r'))
	assert.Nil(t, cmd)
}

func TestDownloadShowsNotice(t *testing.T) {
	s := newTestResults(catalog.Aggressive, nil)
	assert.NotContains(t, s.View(140, 50), "implementada em breve")

	_, cmd := s.Update(press('d'))
	assert.Nil(t, cmd)
	assert.Contains(t, s.View(140, 50), "implementada em breve")
}

func TestHeaderProgressHidden(t *testing.T) {
	_, ok := newTestResults(catalog.Moderate, nil).HeaderProgress()
	assert.False(t, ok)
}
