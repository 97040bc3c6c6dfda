package quiz

import (
	"context"
	"errors"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/topocapital/suitability/internal/glossary"
	"github.com/topocapital/suitability/internal/llm"
	"github.com/topocapital/suitability/internal/ui/components"
	"github.com/topocapital/suitability/internal/ui/layout"
	"github.com/topocapital/suitability/internal/ui/theme"
)

const explainTimeout = 45 * time.Second

type explainedMsg struct {
	key         string
	explanation *glossary.Explanation
	err         error
}

// glossaryPanel lists the terms of the current question. Enter asks the
// glossary service for a longer explanation of the selected term.
type glossaryPanel struct {
	svc     *glossary.Service
	terms   []glossary.Term
	cursor  int
	loading map[string]bool
	results map[string]explainedMsg
	spinner spinner.Model
}

func newGlossaryPanel(svc *glossary.Service, terms []glossary.Term) *glossaryPanel {
	return &glossaryPanel{
		svc:     svc,
		terms:   terms,
		loading: make(map[string]bool),
		results: make(map[string]explainedMsg),
		spinner: spinner.New(spinner.WithSpinner(spinner.MiniDot), spinner.WithStyle(theme.Selected)),
	}
}

func (p *glossaryPanel) keyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "↑↓", Description: "Termos"}}
	if p.svc.Enabled() {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Explicar com IA"})
	}
	return append(hints, layout.KeyHint{Key: "?/Esc", Description: "Fechar"})
}

func (p *glossaryPanel) update(msg tea.Msg) (*glossaryPanel, tea.Cmd) {
	switch msg := msg.(type) {
	case explainedMsg:
		delete(p.loading, msg.key)
		p.results[msg.key] = msg
		return p, nil

	case spinner.TickMsg:
		if len(p.loading) == 0 {
			return p, nil
		}
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, components.KeyUp):
			if p.cursor > 0 {
				p.cursor--
			}
		case key.Matches(msg, components.KeyDown):
			if p.cursor < len(p.terms)-1 {
				p.cursor++
			}
		case key.Matches(msg, components.KeyConfirm):
			return p, p.explain()
		}
	}
	return p, nil
}

func (p *glossaryPanel) explain() tea.Cmd {
	if !p.svc.Enabled() || len(p.terms) == 0 {
		return nil
	}
	term := p.terms[p.cursor]
	if p.loading[term.Key] {
		return nil
	}
	if r, done := p.results[term.Key]; done && r.err == nil {
		return nil
	}
	p.loading[term.Key] = true
	delete(p.results, term.Key)

	svc := p.svc
	fetch := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), explainTimeout)
		defer cancel()
		e, err := svc.Explain(ctx, term)
		return explainedMsg{key: term.Key, explanation: e, err: err}
	}
	return tea.Batch(p.spinner.Tick, fetch)
}

func (p *glossaryPanel) view(width, height int) string {
	inner := min(width-8, 90)
	var b strings.Builder
	b.WriteString(theme.Title.Render("Glossário") + "\n\n")

	for i, t := range p.terms {
		name := "  " + t.Name
		style := theme.Unselected
		if i == p.cursor {
			name = "▸ " + t.Name
			style = theme.Selected
		}
		b.WriteString(style.Render(name) + "\n")
	}

	if len(p.terms) > 0 {
		t := p.terms[p.cursor]
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Width(inner).Foreground(theme.Text).Render(t.Definition))
		b.WriteString("\n\n")
		b.WriteString(p.explanationView(t, inner))
	}

	content := theme.FocusedCard.Width(inner + 4).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (p *glossaryPanel) explanationView(t glossary.Term, width int) string {
	switch {
	case !p.svc.Enabled():
		return theme.Hint.Render("Configure um provedor de IA para explicações detalhadas.")
	case p.loading[t.Key]:
		return p.spinner.View() + " " + theme.Hint.Render("Gerando explicação...")
	}

	r, ok := p.results[t.Key]
	if !ok {
		return theme.Hint.Render("Pressione Enter para uma explicação detalhada.")
	}
	if r.err != nil {
		msg := "Não foi possível gerar a explicação agora."
		if errors.Is(r.err, llm.ErrNotConfigured) {
			msg = "Nenhum provedor de IA configurado."
		}
		return lipgloss.NewStyle().Foreground(theme.Error).Render(msg)
	}

	e := r.explanation
	text := e.Explanation
	if e.Example != "" {
		text += "\n\nExemplo: " + e.Example
	}
	if e.Risk != "" && e.Risk != "n/a" {
		text += "\nRisco: " + e.Risk
	}
	return lipgloss.NewStyle().Width(width).Foreground(theme.Text).Render(text)
}
