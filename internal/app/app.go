// Package app assembles the screens into the Bubble Tea program.
package app

import (
	"errors"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/topocapital/suitability/internal/catalog"
	"github.com/topocapital/suitability/internal/glossary"
	"github.com/topocapital/suitability/internal/router"
	"github.com/topocapital/suitability/internal/screen"
	"github.com/topocapital/suitability/internal/screens/history"
	"github.com/topocapital/suitability/internal/screens/quiz"
	"github.com/topocapital/suitability/internal/screens/results"
	"github.com/topocapital/suitability/internal/screens/welcome"
	"github.com/topocapital/suitability/internal/session"
	"github.com/topocapital/suitability/internal/store"
	"github.com/topocapital/suitability/internal/ui/layout"
	"github.com/topocapital/suitability/internal/wizard"
)

// Options holds the dependencies of the program.
type Options struct {
	Catalog  *catalog.Catalog
	Events   store.EventRepo   // nil runs without history
	Glossary *glossary.Service // nil or disabled shows definitions only
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel wires the screens. Screens reach each other through the
// factories built here so none of them imports another.
func newAppModel(opts Options) AppModel {
	wiz := wizard.New(opts.Catalog)

	var rec session.Recorder
	if opts.Events != nil {
		rec = opts.Events
	}
	tracker := session.NewTracker(rec)

	// paused holds a run the user backed out of from its first question.
	var paused *quiz.QuizScreen
	var newQuiz func(action string) screen.Screen
	newResults := func(s wizard.State) screen.Screen {
		return results.New(results.Options{
			Catalog: opts.Catalog,
			Result:  *s.Result,
			Restart: func() screen.Screen { return newQuiz(store.ActionRestart) },
		})
	}
	newQuiz = func(action string) screen.Screen {
		return quiz.New(quiz.Options{
			Wizard:   wiz,
			Tracker:  tracker,
			Glossary: opts.Glossary,
			Action:   action,
			Results:  newResults,
			Pause:    func(q *quiz.QuizScreen) { paused = q },
		})
	}

	welcomeOpts := welcome.Options{
		Sections: opts.Catalog.Sections(),
		Quiz: func() screen.Screen {
			if q := paused; q != nil {
				paused = nil
				return q
			}
			return newQuiz(store.ActionStart)
		},
	}
	if opts.Events != nil {
		events := opts.Events
		welcomeOpts.History = func() screen.Screen { return history.New(events, opts.Catalog) }
	}

	return AppModel{router: router.New(welcome.New(welcomeOpts))}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if h, ok := m.router.Active().(screen.EscapeHandler); ok && h.HandlesEscape() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the header, the active screen and the footer.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	header := layout.RenderHeader(active.Title(), headerProgress(active), m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func headerProgress(s screen.Screen) int {
	if p, ok := s.(screen.ProgressProvider); ok {
		if pct, show := p.HeaderProgress(); show {
			return pct
		}
	}
	return -1
}

func (m AppModel) footerHints(s screen.Screen) []layout.KeyHint {
	if p, ok := s.(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Voltar"},
			{Key: "Ctrl+C", Description: "Sair"},
		}
	}
	return []layout.KeyHint{{Key: "Ctrl+C", Description: "Sair"}}
}

// Run starts the Bubble Tea program. The catalog is required.
func Run(opts Options) error {
	if opts.Catalog == nil {
		return errors.New("app: catalog is required")
	}
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Erro ao executar o programa:", err)
		return err
	}
	return nil
}
