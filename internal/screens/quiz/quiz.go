// Package quiz is the question-by-question screen of the questionnaire.
package quiz

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/topocapital/suitability/internal/glossary"
	"github.com/topocapital/suitability/internal/router"
	"github.com/topocapital/suitability/internal/screen"
	"github.com/topocapital/suitability/internal/session"
	"github.com/topocapital/suitability/internal/store"
	"github.com/topocapital/suitability/internal/ui/components"
	"github.com/topocapital/suitability/internal/ui/layout"
	"github.com/topocapital/suitability/internal/ui/theme"
	"github.com/topocapital/suitability/internal/wizard"
)

const needAnswer = "Selecione uma opção para continuar."

var (
	keyNext     = key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "próximo"))
	keyGlossary = key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "glossário"))
	keyEsc      = key.NewBinding(key.WithKeys("esc"))
)

// Options configures a questionnaire run.
type Options struct {
	Wizard   *wizard.Wizard
	Tracker  *session.Tracker
	Glossary *glossary.Service // optional
	// Action is store.ActionStart or store.ActionRestart.
	Action string
	// Results builds the screen shown once the answers are classified.
	Results func(wizard.State) screen.Screen
	// Pause, when set, receives the screen when the user backs out of the
	// first question, so the run can be resumed with its answers.
	Pause func(*QuizScreen)
}

// QuizScreen walks the wizard from the first question to the results.
type QuizScreen struct {
	opts    Options
	state   wizard.State
	options components.OptionList
	panel   *glossaryPanel
	notice  string
	begun   bool
	log     *zap.Logger
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.ProgressProvider = (*QuizScreen)(nil)
var _ screen.EscapeHandler = (*QuizScreen)(nil)

// New creates a quiz positioned on the first question.
func New(opts Options) *QuizScreen {
	if opts.Action == "" {
		opts.Action = store.ActionStart
	}
	w := opts.Wizard
	state, _ := w.Start(w.Initial())

	q := &QuizScreen{opts: opts, state: state, log: zap.L().Named("quiz")}
	q.syncOptions()
	return q
}

// State returns the wizard state.
func (q *QuizScreen) State() wizard.State { return q.state }

// Init records the start of the run. A resumed screen is not recorded again.
func (q *QuizScreen) Init() tea.Cmd {
	if q.begun {
		return nil
	}
	q.begun = true
	if q.opts.Tracker != nil {
		if err := q.opts.Tracker.Begin(context.Background(), q.opts.Action); err != nil {
			q.log.Warn("record session start", zap.Error(err))
		}
	}
	return nil
}

func (q *QuizScreen) Title() string { return "Questionário" }

func (q *QuizScreen) HandlesEscape() bool { return true }

func (q *QuizScreen) HeaderProgress() (int, bool) {
	return q.opts.Wizard.Progress(q.state).OverallPercent(), true
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	if q.panel != nil {
		return q.panel.keyHints()
	}
	next := "Próximo"
	if q.opts.Wizard.Progress(q.state).IsLast {
		next = "Finalizar"
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "1-3/Espaço", Description: "Escolher"},
		{Key: "Enter", Description: next},
		{Key: "←", Description: "Voltar"},
		{Key: "?", Description: "Glossário"},
		{Key: "Esc", Description: "Sair"},
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if q.panel != nil {
		if k, ok := msg.(tea.KeyPressMsg); ok && (key.Matches(k, keyEsc) || key.Matches(k, keyGlossary)) {
			q.panel = nil
			return q, nil
		}
		var cmd tea.Cmd
		q.panel, cmd = q.panel.update(msg)
		return q, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, keyEsc):
			return q, q.abandon()
		case key.Matches(msg, keyNext):
			return q, q.next()
		case key.Matches(msg, components.KeyBack):
			return q, q.prev()
		case key.Matches(msg, keyGlossary):
			q.panel = newGlossaryPanel(q.opts.Glossary, q.termsOnScreen())
			return q, nil
		}
	}

	var cmd tea.Cmd
	before := q.options.Chosen
	q.options, cmd = q.options.Update(msg)
	if q.options.Chosen != before {
		q.pick(q.options.QuestionID, q.options.Chosen)
	}
	return q, cmd
}

// pick records the answer for the question the option list was built for,
// which is always the one on screen.
func (q *QuizScreen) pick(id, index int) {
	next, err := q.opts.Wizard.Select(q.state, id, index)
	if err != nil {
		q.log.Warn("select option", zap.Int("question", id), zap.Int("index", index), zap.Error(err))
		return
	}
	q.state = next
	q.notice = ""
}

func (q *QuizScreen) next() tea.Cmd {
	next, err := q.opts.Wizard.Next(q.state)
	if err != nil {
		q.notice = needAnswer
		return nil
	}
	q.state = next
	q.notice = ""

	if next.Phase == wizard.PhaseResults && next.Result != nil {
		if q.opts.Tracker != nil {
			if err := q.opts.Tracker.Complete(context.Background(), *next.Result); err != nil {
				q.log.Warn("record result", zap.Error(err))
			}
		}
		q.log.Info("assessment complete",
			zap.String("profile", string(next.Result.Profile)),
			zap.Float64("normalized", next.Result.Normalized))
		results := q.opts.Results(next)
		return func() tea.Msg { return router.ReplaceScreenMsg{Screen: results} }
	}
	q.syncOptions()
	return nil
}

func (q *QuizScreen) prev() tea.Cmd {
	prev, err := q.opts.Wizard.Prev(q.state)
	if err != nil {
		return nil
	}
	if prev.Phase == wizard.PhaseWelcome {
		q.notice = ""
		if q.opts.Pause != nil {
			q.opts.Pause(q)
		}
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
	q.state = prev
	q.notice = ""
	q.syncOptions()
	return nil
}

func (q *QuizScreen) abandon() tea.Cmd {
	if q.opts.Tracker != nil {
		answered := q.opts.Wizard.Progress(q.state).Answered
		if err := q.opts.Tracker.Abandon(context.Background(), answered); err != nil {
			q.log.Warn("record abandon", zap.Error(err))
		}
	}
	return func() tea.Msg { return router.PopScreenMsg{} }
}

// syncOptions rebuilds the option list for the question on screen.
func (q *QuizScreen) syncOptions() {
	_, cur, ok := q.opts.Wizard.Current(q.state)
	if !ok {
		q.options = components.OptionList{}
		return
	}
	chosen := -1
	if idx, answered := q.state.Answer(cur.ID); answered {
		chosen = idx
	}
	q.options = components.NewOptionList(cur.ID, cur.Options, chosen)
}

func (q *QuizScreen) termsOnScreen() []glossary.Term {
	_, cur, ok := q.opts.Wizard.Current(q.state)
	if !ok {
		return glossary.All()
	}
	terms := glossary.TermsIn(append([]string{cur.Text}, cur.Options...)...)
	if len(terms) == 0 {
		return glossary.All()
	}
	return terms
}

func (q *QuizScreen) View(width, height int) string {
	if q.panel != nil {
		return q.panel.view(width, height)
	}

	sec, cur, ok := q.opts.Wizard.Current(q.state)
	if !ok {
		return ""
	}
	p := q.opts.Wizard.Progress(q.state)
	inner := min(width-8, 90)

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		theme.Selected.Render("Seção: "+sec.Name),
		theme.Hint.Render(fmt.Sprintf("   (%d de %d)", p.SectionNumber, p.SectionCount)),
	)
	counter := theme.Hint.Render(fmt.Sprintf("Pergunta %d de %d", p.QuestionNumber, p.Total))
	bar := components.NewProgressBar("", p.SectionProgress, false, inner).View()

	question := lipgloss.NewStyle().
		Width(inner).
		Foreground(theme.Text).
		Bold(true).
		Render(cur.Text)

	nextLabel := "Próximo"
	if p.IsLast {
		nextLabel = "Finalizar"
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		components.NewButton("Voltar", "←", true).View(),
		"  ",
		components.NewButton(nextLabel, "Enter", q.opts.Wizard.CanAdvance(q.state)).View(),
	)

	parts := []string{header, counter, bar, "", question, "", q.options.View(), buttons}
	if q.notice != "" {
		parts = append(parts, "", theme.Notice.Render(q.notice))
	}
	if terms := glossary.TermsIn(append([]string{cur.Text}, cur.Options...)...); len(terms) > 0 {
		names := make([]string, len(terms))
		for i, t := range terms {
			names[i] = t.Name
		}
		parts = append(parts, "", theme.Hint.Render("Termos no glossário (?): "+strings.Join(names, ", ")))
	}

	content := lipgloss.NewStyle().Width(inner).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
