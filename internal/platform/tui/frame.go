// Package tui provides the Bubble Tea integration for the jumper. It owns
// the terminal loop, input mapping, and score persistence around the pure
// simulation core.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// framesPerSecond is the display cadence. It is deliberately distinct from
// the simulation tick rate: the fixed-step loop drains wall-clock time into
// simulation steps, so rendering faster or slower never changes physics.
const framesPerSecond = 60

// FrameMsg is sent once per displayed frame, carrying the wall-clock time.
type FrameMsg time.Time

// frameCmd returns a command that sends the next frame message.
func frameCmd() tea.Cmd {
	return tea.Tick(time.Second/framesPerSecond, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
