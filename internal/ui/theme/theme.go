package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/topocapital/suitability/internal/catalog"
)

// Topo Capital palette, navy and blue with warm accents.
var (
	Primary   = lipgloss.Color("#4A90D9") // Topo blue, readable on dark
	Navy      = lipgloss.Color("#002147")
	Secondary = lipgloss.Color("#6A994E") // Green
	Accent    = lipgloss.Color("#F28482") // Coral
	Success   = lipgloss.Color("#22C55E")
	Error     = lipgloss.Color("#F43F5E")
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#94A3B8")
	BgCard    = lipgloss.Color("#0B1F3A")
	Border    = lipgloss.Color("#2A3F5F")
)

// ChartColor returns the colour of the i-th allocation slice, cycling
// through the chart palette.
func ChartColor(i int) color.Color {
	palette := catalog.ChartColors
	return lipgloss.Color(palette[i%len(palette)])
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Notice = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)

	FocusedCard = Card.
			BorderForeground(Primary)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Chosen = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Primary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Navy).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Foreground(TextDim).
			Padding(0, 2)
)
