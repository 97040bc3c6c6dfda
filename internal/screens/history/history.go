// Package history lists past assessment results from the event store.
package history

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/table"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/topocapital/suitability/internal/catalog"
	"github.com/topocapital/suitability/internal/screen"
	"github.com/topocapital/suitability/internal/store"
	"github.com/topocapital/suitability/internal/ui/layout"
	"github.com/topocapital/suitability/internal/ui/theme"
)

// Limit is the number of results loaded.
const Limit = 50

// Source is the part of store.EventRepo the screen reads.
type Source interface {
	QueryResults(ctx context.Context, opts store.QueryOpts) ([]store.ResultRecord, error)
	CountByProfile(ctx context.Context) ([]store.ProfileCount, error)
}

type historyLoadedMsg struct {
	Results []store.ResultRecord
	Counts  []store.ProfileCount
	Err     error
}

// HistoryScreen displays past results, newest first.
type HistoryScreen struct {
	src     Source
	cat     *catalog.Catalog
	results []store.ResultRecord
	counts  []store.ProfileCount
	table   table.Model
	loaded  bool
	errMsg  string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a HistoryScreen. cat names the profiles.
func New(src Source, cat *catalog.Catalog) *HistoryScreen {
	t := table.New(
		table.WithColumns(columns()),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(theme.Primary).Bold(true)
	styles.Selected = styles.Selected.Foreground(theme.Navy).Background(theme.Primary)
	t.SetStyles(styles)

	return &HistoryScreen{src: src, cat: cat, table: t}
}

func columns() []table.Column {
	return []table.Column{
		{Title: "Data", Width: 16},
		{Title: "Perfil", Width: 22},
		{Title: "Pontuação", Width: 10},
		{Title: "Respostas", Width: 10},
		{Title: "Duração", Width: 8},
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	src := s.src
	return func() tea.Msg {
		ctx := context.Background()
		results, err := src.QueryResults(ctx, store.QueryOpts{Limit: Limit})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		counts, err := src.CountByProfile(ctx)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Results: results, Counts: counts}
	}
}

func (s *HistoryScreen) Title() string { return "Histórico" }

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Esc", Description: "Voltar"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(historyLoadedMsg); ok {
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.results, s.counts = msg.Results, msg.Counts
		s.table.SetRows(s.rows())
		return s, nil
	}

	var cmd tea.Cmd
	s.table, cmd = s.table.Update(msg)
	return s, cmd
}

func (s *HistoryScreen) rows() []table.Row {
	rows := make([]table.Row, len(s.results))
	for i, r := range s.results {
		rows[i] = table.Row{
			r.Timestamp.Local().Format("02/01/2006 15:04"),
			s.profileLabel(r.Profile),
			fmt.Sprintf("%.0f/100", r.Normalized),
			fmt.Sprintf("%d/%d", r.Answered, r.Total),
			fmt.Sprintf("%d:%02d", r.DurationSecs/60, r.DurationSecs%60),
		}
	}
	return rows
}

// profileLabel returns the profile name without the brand suffix, or the
// raw key for profiles the catalog no longer has.
func (s *HistoryScreen) profileLabel(key string) string {
	if s.cat == nil {
		return key
	}
	p, ok := s.cat.Profile(catalog.ProfileKey(key))
	if !ok {
		return key
	}
	name, _, _ := strings.Cut(p.Name, " - ")
	return name
}

func (s *HistoryScreen) View(width, height int) string {
	msgStyle := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	switch {
	case s.errMsg != "":
		return msgStyle.Foreground(theme.Error).Render("\n\nErro ao carregar histórico: " + s.errMsg)
	case !s.loaded:
		return msgStyle.Foreground(theme.TextDim).Render("\n\nCarregando histórico...")
	case len(s.results) == 0:
		return msgStyle.Foreground(theme.TextDim).Italic(true).
			Render("\n\nNenhuma análise concluída ainda.")
	}

	s.table.SetHeight(max(height-6, 3))

	parts := make([]string, 0, len(s.counts))
	for _, c := range s.counts {
		parts = append(parts, fmt.Sprintf("%s: %d", s.profileLabel(c.Profile), c.Count))
	}
	summary := theme.Hint.Render(strings.Join(parts, "   "))

	body := lipgloss.JoinVertical(lipgloss.Left,
		theme.Selected.Render(fmt.Sprintf("Últimas %d análises", len(s.results))),
		"",
		s.table.View(),
		"",
		summary,
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, body)
}
