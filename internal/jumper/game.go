// Package jumper implements an endless vertical platformer: a figure ascends
// a procedurally generated tower of platforms, the camera follows upward
// progress, and score is maximum height climbed.
//
// The package is pure simulation: fixed ticks in, state out, no terminal
// dependencies. Given the same seed and input sequence it produces identical
// trajectories.
package jumper

import (
	"math/rand"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
)

// Package-level config, set before game creation by the CLI layer.
var configPath string

// SetConfigPath sets a custom config file path for subsequent games.
func SetConfigPath(path string) {
	configPath = path
}

// Game holds the complete simulation state: player, platform field, camera,
// and the menu/play/gameover flow machine.
type Game struct {
	params config.JumperConfig
	cfg    core.RuntimeConfig

	player Player
	field  *Field
	camera Camera

	mode   core.Mode
	paused bool
	tick   uint64
	err    error
}

// New creates a new game, loading configuration from the path set via
// SetConfigPath (or defaults).
func New() *Game {
	params, err := config.LoadJumper(configPath)
	if err != nil {
		params = config.DefaultJumperConfig()
	}
	return NewWithParams(params)
}

// NewWithParams creates a new game with explicit simulation parameters.
// Used by tests to pin constants independently of config files.
func NewWithParams(params config.JumperConfig) *Game {
	return &Game{params: params}
}

// ID returns the unique identifier for this game, used for score storage.
func (g *Game) ID() string {
	return "jumper"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Jumper"
}

// Reset initializes the game for a fresh session: a new world is built and
// the flow machine starts at the menu.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.mode = core.ModeMenu
	g.paused = false
	g.tick = 0
	g.err = nil
	g.rebuildWorld()
}

// rebuildWorld reconstructs player, platform field, and camera wholesale.
// Nothing survives across a reset.
func (g *Game) rebuildWorld() {
	fieldW := float64(g.cfg.ScreenW)
	fieldH := float64(g.cfg.ScreenH)

	g.player = newPlayer(g.params.Player, fieldW, fieldH)

	rng := rand.New(rand.NewSource(g.cfg.Seed))
	g.field = newField(g.params.Platforms, rng, fieldW)
	// The starting platform sits directly under the spawn point, just above
	// the bottom edge.
	g.field.seed(g.player.X+g.player.W/2, fieldH-2, g.params.Platforms.SeedCount)

	g.camera = Camera{}
}

func (g *Game) viewportH() float64 {
	return float64(g.cfg.ScreenH)
}

func (g *Game) lookahead() float64 {
	return g.viewportH() * g.params.Platforms.LookaheadFactor
}

// Step advances the game by one fixed tick. Menu and gameover run no
// physics; a confirm edge is the only input they process. During play the
// tick pipeline is: player motion, landing resolution, camera follow,
// platform generation and oscillation, culling, then the fall check.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.mode {
	case core.ModeMenu:
		if in.Has(core.ActionConfirm) {
			g.mode = core.ModePlay
		}

	case core.ModeGameOver:
		if in.Has(core.ActionConfirm) {
			g.rebuildWorld()
			g.tick = 0
			g.mode = core.ModePlay
		}

	case core.ModePlay:
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if g.paused {
			break
		}
		g.tick++
		g.stepPlay(in)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) stepPlay(in core.InputFrame) {
	left := in.Has(core.ActionLeft)
	right := in.Has(core.ActionRight)

	g.player = stepPlayer(g.player, left, right, g.params.Physics, float64(g.cfg.ScreenW))

	g.player, _ = resolveLanding(
		g.player,
		g.field.Platforms(),
		g.params.Collision.Tolerance,
		g.params.Physics.JumpSpeed,
	)

	g.camera = g.camera.follow(g.player.Y, g.viewportH(), g.params.Camera.RaiseFraction)

	if err := g.field.Extend(g.camera.Y, g.lookahead()); err != nil {
		// Internal invariant violation; stop simulating rather than hang.
		g.err = err
		g.mode = core.ModeGameOver
		return
	}
	g.field.Oscillate()
	g.field.Cull(g.camera.Y, g.viewportH())

	if g.player.Y-g.camera.Y > g.viewportH()+g.params.Platforms.CullMargin {
		g.mode = core.ModeGameOver
	}
}

// State returns the externally visible game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.camera.Score(),
		Mode:   g.mode,
		Paused: g.paused,
	}
}

// Err returns the internal invariant violation that ended the game, if any.
func (g *Game) Err() error {
	return g.err
}
