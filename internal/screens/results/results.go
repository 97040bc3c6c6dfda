// Package results shows the classified profile and its model portfolio.
package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/topocapital/suitability/internal/catalog"
	"github.com/topocapital/suitability/internal/router"
	"github.com/topocapital/suitability/internal/scoring"
	"github.com/topocapital/suitability/internal/screen"
	"github.com/topocapital/suitability/internal/ui/components"
	"github.com/topocapital/suitability/internal/ui/layout"
	"github.com/topocapital/suitability/internal/ui/theme"
)

const (
	heading        = "Análise Concluída!"
	subheading     = "Seu perfil de investidor foi identificado"
	notFound       = "Perfil não encontrado"
	downloadNotice = "Funcionalidade de download será implementada em breve!"
)

// Options configures the results screen.
type Options struct {
	Catalog *catalog.Catalog
	Result  scoring.Result
	// Restart builds a fresh questionnaire. nil disables the action.
	Restart func() screen.Screen
}

// ResultsScreen displays the outcome of a completed questionnaire.
type ResultsScreen struct {
	opts    Options
	profile catalog.Profile
	found   bool
	notice  string
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)
var _ screen.ProgressProvider = (*ResultsScreen)(nil)

// New creates a results screen for r.
func New(opts Options) *ResultsScreen {
	p, ok := opts.Catalog.Profile(opts.Result.Profile)
	return &ResultsScreen{opts: opts, profile: p, found: ok}
}

func (s *ResultsScreen) Init() tea.Cmd { return nil }

func (s *ResultsScreen) Title() string { return "Resultado" }

// HeaderProgress hides the percentage; it only shows while answering.
func (s *ResultsScreen) HeaderProgress() (int, bool) { return 0, false }

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{}
	if s.opts.Restart != nil {
		hints = append(hints, layout.KeyHint{Key: "r", Description: "Refazer Questionário"})
	}
	return append(hints,
		layout.KeyHint{Key: "d", Description: "Baixar Relatório"},
		layout.KeyHint{Key: "Esc", Description: "Início"},
	)
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "r":
		if s.opts.Restart == nil {
			return s, nil
		}
		next := s.opts.Restart()
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	case "d":
		s.notice = downloadNotice
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	inner := min(width-8, 100)
	center := func(str string) string { return lipgloss.PlaceHorizontal(width, lipgloss.Center, str) }

	var b strings.Builder
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(heading)))
	b.WriteString("\n")
	b.WriteString(center(theme.Subtitle.Render(subheading)))
	b.WriteString("\n\n")

	if !s.found {
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(notFound)))
		b.WriteString("\n\n")
		b.WriteString(center(s.buttons()))
		return b.String()
	}

	r := s.opts.Result
	card := theme.FocusedCard.Width(inner).Render(
		theme.Title.Render(s.profile.Name) + "\n" +
			lipgloss.NewStyle().Width(inner-4).Foreground(theme.Text).Render(s.profile.Description) + "\n\n" +
			theme.Hint.Render(fmt.Sprintf("Pontuação: %.1f de %.1f (%.0f/100)", r.Score, r.MaxScore, r.Normalized)),
	)
	b.WriteString(center(card))
	b.WriteString("\n")

	if layout.IsCompactHeight(height) {
		parts := make([]string, 0, 4)
		for _, m := range s.profile.Metrics.Items() {
			parts = append(parts, m.Label+": "+m.Value)
		}
		b.WriteString(center(theme.Body.Render(strings.Join(parts, "  │  "))))
	} else {
		b.WriteString(center(components.MetricCards(s.profile.Metrics.Items(), inner)))
	}
	b.WriteString("\n\n")

	b.WriteString(center(theme.Selected.Render("Alocação do Portfólio")))
	b.WriteString("\n")
	b.WriteString(center(components.AllocationChart(s.profile.Allocation, inner)))
	b.WriteString("\n\n")
	b.WriteString(center(s.buttons()))

	if s.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(center(theme.Notice.Render(s.notice)))
	}
	return b.String()
}

func (s *ResultsScreen) buttons() string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		components.NewButton("Refazer Questionário", "r", s.opts.Restart != nil).View(),
		"  ",
		components.NewButton("Baixar Relatório", "d", true).View(),
	)
}
