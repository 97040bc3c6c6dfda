package components

import "charm.land/bubbles/v2/key"

// Shared key bindings.
var (
	KeyUp      = key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "acima"))
	KeyDown    = key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "abaixo"))
	KeyConfirm = key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "confirmar"))
	KeyPick    = key.NewBinding(key.WithKeys("space", "1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-3", "escolher"))
	KeyBack    = key.NewBinding(key.WithKeys("left", "backspace"), key.WithHelp("←", "voltar"))
)
