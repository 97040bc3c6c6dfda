package welcome

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/topocapital/suitability/internal/catalog"
	"github.com/topocapital/suitability/internal/router"
	"github.com/topocapital/suitability/internal/screen"
	"github.com/topocapital/suitability/internal/ui/components"
	"github.com/topocapital/suitability/internal/ui/layout"
	"github.com/topocapital/suitability/internal/ui/theme"
)

const (
	heading = "Análise de Suitability"
	blurb   = "Descubra qual portfólio de investimentos é mais adequado para seu perfil respondendo algumas perguntas estratégicas."
)

// taglines describe what each section measures.
var taglines = map[string]string{
	"Experiência": "Avaliamos seu conhecimento em investimentos",
	"Objetivos":   "Entendemos suas metas financeiras",
	"Tolerância":  "Medimos sua tolerância ao risco",
}

// Options wires the welcome screen to the screens it opens.
type Options struct {
	Sections []catalog.Section
	Quiz     func() screen.Screen
	History  func() screen.Screen // nil hides the entry
}

// WelcomeScreen is the root screen: an introduction and the main menu.
type WelcomeScreen struct {
	sections []catalog.Section
	menu     components.Menu
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates the welcome screen.
func New(opts Options) *WelcomeScreen {
	push := func(factory func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			s := factory()
			return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
		}
	}

	items := []components.MenuItem{{Label: "Começar Agora", Action: push(opts.Quiz)}}
	if opts.History != nil {
		items = append(items, components.MenuItem{Label: "Histórico de Análises", Action: push(opts.History)})
	}
	items = append(items, components.MenuItem{Label: "Sair", Action: func() tea.Cmd { return tea.Quit }})

	return &WelcomeScreen{sections: opts.Sections, menu: components.NewMenu(items)}
}

func (w *WelcomeScreen) Init() tea.Cmd { return nil }

func (w *WelcomeScreen) Title() string { return "Bem-vindo" }

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Selecionar"},
		{Key: "Ctrl+C", Description: "Sair"},
	}
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	w.menu, cmd = w.menu.Update(msg)
	return w, cmd
}

func (w *WelcomeScreen) View(width, height int) string {
	title := theme.Title.Render(heading)
	intro := lipgloss.NewStyle().
		Width(min(width-8, 72)).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(blurb)

	content := lipgloss.JoinVertical(lipgloss.Center,
		title, "", intro, "", w.sectionCards(width), "", w.menu.View())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (w *WelcomeScreen) sectionCards(width int) string {
	if len(w.sections) == 0 {
		return ""
	}
	cardWidth := max(min((width-8)/len(w.sections)-2, 30), 16)
	cards := make([]string, len(w.sections))
	for i, sec := range w.sections {
		body := theme.Selected.Render(sec.Name) + "\n" +
			theme.Hint.Render(taglines[sec.Name])
		cards[i] = theme.Card.Width(cardWidth).Align(lipgloss.Center).Render(body)
	}
	if layout.IsCompactWidth(width) && len(cards) > 1 {
		return lipgloss.JoinVertical(lipgloss.Center, cards...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}
