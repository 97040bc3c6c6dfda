package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/topocapital/suitability/internal/ui/layout"
)

// Screen is one page of the application.
type Screen interface {
	// Init returns an initial command when the screen is first shown.
	Init() tea.Cmd

	// Update handles messages and returns the updated screen and a command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider lets a screen supply its own footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// ProgressProvider lets a screen show an overall completion percentage in
// the header. ok is false when there is nothing to show.
type ProgressProvider interface {
	HeaderProgress() (percent int, ok bool)
}

// EscapeHandler lets a screen consume Esc itself (to close an overlay)
// instead of the app popping it.
type EscapeHandler interface {
	HandlesEscape() bool
}
