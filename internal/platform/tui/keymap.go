package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-jumper/internal/input"
)

// KeyMapper routes terminal key events into the input sources. Steering keys
// arm the key source; menu and flow keys queue one-shot edges on the
// aggregator. This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// Apply feeds a key event into the given sources. It reports whether the key
// was a quit or screenshot request, which the model handles itself.
func (km *KeyMapper) Apply(msg tea.KeyMsg, keys *input.KeySource, agg *input.Aggregator) (quit, screenshot bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return true, false
	case "ctrl+s":
		return false, true

	case "a", "left":
		keys.PressLeft()
	case "d", "right":
		keys.PressRight()
	case "enter", " ":
		agg.Confirm()
	case "p", "esc":
		agg.Pause()
	}

	return false, false
}
