package components

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/topocapital/suitability/internal/ui/theme"
)

// OptionList shows the answer options of one question. The cursor moves
// with the arrow keys; Space picks the option under the cursor and a digit
// picks that option directly. The owner reads Chosen after each Update.
type OptionList struct {
	QuestionID int
	Options    []string
	Cursor     int
	Chosen     int // -1 when nothing is chosen
}

// NewOptionList creates a list for question id with the cursor on the
// chosen option, or the first one.
func NewOptionList(id int, options []string, chosen int) OptionList {
	l := OptionList{QuestionID: id, Options: options, Chosen: -1}
	if chosen >= 0 && chosen < len(options) {
		l.Chosen = chosen
		l.Cursor = chosen
	}
	return l
}

// Update handles navigation and picking.
func (l OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return l, nil
	}

	switch {
	case key.Matches(kmsg, KeyUp):
		if l.Cursor > 0 {
			l.Cursor--
		}
	case key.Matches(kmsg, KeyDown):
		if l.Cursor < len(l.Options)-1 {
			l.Cursor++
		}
	case key.Matches(kmsg, KeyPick):
		idx := l.Cursor
		if n, err := strconv.Atoi(kmsg.String()); err == nil {
			idx = n - 1
		}
		if idx < 0 || idx >= len(l.Options) {
			return l, nil
		}
		l.Cursor, l.Chosen = idx, idx
	}
	return l, nil
}

// View renders the options, marking the cursor and the chosen one.
func (l OptionList) View() string {
	var b strings.Builder
	for i, opt := range l.Options {
		pointer := "  "
		if i == l.Cursor {
			pointer = "▸ "
		}
		mark := "○"
		if i == l.Chosen {
			mark = "●"
		}
		line := fmt.Sprintf("%s%s %d. %s", pointer, mark, i+1, opt)

		switch {
		case i == l.Chosen:
			b.WriteString(theme.Chosen.Render(line))
		case i == l.Cursor:
			b.WriteString(theme.Selected.Render(line))
		default:
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
