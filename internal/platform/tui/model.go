package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/input"
	"github.com/vovakirdan/tui-jumper/internal/jumper"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

// Model is the Bubble Tea model running one jumper session. Per displayed
// frame it drains the fixed-step loop, feeding each simulation step one input
// frame from the aggregator, and renders only after the drain completes.
type Model struct {
	game   *jumper.Game
	screen *core.Screen
	store  *storage.Store
	config core.RuntimeConfig

	loop   *FixedStepLoop
	keys   *input.KeySource
	agg    *input.Aggregator
	mapper *KeyMapper

	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether the run has been saved for the current game over
}

// NewModel creates a Bubble Tea model for the given game.
func NewModel(game *jumper.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	keys := input.NewKeySource(input.DefaultHoldTicks)

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		config: cfg,
		loop:   NewFixedStepLoop(cfg.TickRate),
		keys:   keys,
		agg:    input.NewAggregator(keys),
		mapper: NewKeyMapper(),
	}
}

// Init initializes the model and starts the frame pump.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return frameCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey feeds keyboard input into the sources.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	quit, screenshot := m.mapper.Apply(msg, m.keys, m.agg)
	if quit {
		m.quitting = true
		return m, tea.Quit
	}
	if screenshot {
		m.saveScreenshot()
	}
	return m, nil
}

// handleResize rebuilds the world for the new terminal dimensions. A run in
// progress cannot survive a field resize; game over keeps its final screen.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if m.gameState.Mode != core.ModeGameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleFrame drains elapsed wall-clock time into simulation steps, then
// schedules the next frame. Rendering happens in View, after the drain.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	steps := m.loop.Advance(now)
	for i := 0; i < steps; i++ {
		result := m.game.Step(m.agg.Frame())
		m.gameState = result.State
		m.keys.Tick()
	}

	if m.gameState.Mode == core.ModeGameOver {
		m.saveRunOnce()
	} else {
		m.scoreSaved = false
	}

	return m, frameCmd()
}

// saveRunOnce persists the finished run the first time game over is seen.
func (m *Model) saveRunOnce() {
	if m.scoreSaved || m.store == nil || m.gameState.Score <= 0 {
		m.scoreSaved = true
		return
	}
	//nolint:errcheck // Best-effort save, session continues regardless
	m.store.SaveRun(m.game.ID(), m.gameState.Score, m.config.Seed, m.game.Snapshot().Tick)
	m.scoreSaved = true
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".jumper", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, session continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(game *jumper.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
