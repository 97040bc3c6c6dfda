package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/topocapital/suitability/internal/catalog"
	"github.com/topocapital/suitability/internal/ui/theme"
)

// ChartLabel formats an allocation percentage the way the chart shows it.
func ChartLabel(percent float64) string {
	return fmt.Sprintf("%.1f%%", percent)
}

// VisibleSlices returns the slices worth drawing, skipping zero allocations
// and keeping each slice's position for colour lookup.
func VisibleSlices(slices []catalog.Slice) []int {
	var out []int
	for i, s := range slices {
		if s.Percent > 0 {
			out = append(out, i)
		}
	}
	return out
}

// AllocationChart renders one horizontal bar per non-zero slice, scaled so
// the largest slice fills the bar area.
func AllocationChart(slices []catalog.Slice, width int) string {
	visible := VisibleSlices(slices)
	if len(visible) == 0 {
		return theme.Hint.Render("Sem alocação definida")
	}

	nameWidth, largest := 0, 0.0
	for _, i := range visible {
		nameWidth = max(nameWidth, lipgloss.Width(slices[i].Asset))
		largest = max(largest, slices[i].Percent)
	}
	const labelWidth = 7 // "100.0%"
	barArea := max(width-nameWidth-labelWidth-4, 4)

	var b strings.Builder
	for _, i := range visible {
		s := slices[i]
		n := max(int(float64(barArea)*s.Percent/largest+0.5), 1)

		name := lipgloss.NewStyle().Width(nameWidth).Foreground(theme.Text).Render(s.Asset)
		bar := lipgloss.NewStyle().Foreground(theme.ChartColor(i)).Render(strings.Repeat("█", n))
		label := lipgloss.NewStyle().Foreground(theme.TextDim).Render(ChartLabel(s.Percent))

		b.WriteString(name + "  " + bar + " " + label + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// MetricCards renders the profile metrics as a row of cards, or a column
// when the width does not fit them side by side.
func MetricCards(items []catalog.Metric, width int) string {
	cards := make([]string, len(items))
	cardWidth := max(width/max(len(items), 1)-2, 18)
	for i, m := range items {
		body := lipgloss.NewStyle().Foreground(theme.TextDim).Render(m.Label) + "\n" +
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Value)
		cards[i] = theme.Card.Width(cardWidth).Render(body)
	}
	if (cardWidth+2)*len(items) > width {
		return lipgloss.JoinVertical(lipgloss.Left, cards...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}
