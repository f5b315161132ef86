package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic platform generation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Mode identifies the current phase of the game flow state machine.
type Mode int

const (
	ModeMenu Mode = iota // Title screen; waiting for confirm
	ModePlay             // Simulation running
	ModeGameOver         // Player fell below the viewport; waiting for confirm
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlay:
		return "play"
	case ModeGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// GameState represents the externally visible state of the game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score  int  // Current score (maximum height climbed)
	Mode   Mode // Current flow state
	Paused bool // Whether the game is paused
}

// GameOver reports whether the game has ended.
func (s GameState) GameOver() bool {
	return s.Mode == ModeGameOver
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
