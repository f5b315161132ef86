package jumper

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

func newTestGame(seed int64) *Game {
	g := NewWithParams(config.DefaultJumperConfig())
	g.Reset(testRuntime(seed))
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestMenuRunsNoPhysics(t *testing.T) {
	g := newTestGame(1)

	before := g.Snapshot()
	for i := 0; i < 10; i++ {
		g.Step(frame())
	}
	after := g.Snapshot()

	if after != before {
		t.Errorf("menu must not simulate: %+v != %+v", after, before)
	}
	if after.Mode != core.ModeMenu {
		t.Errorf("mode = %v, expected menu", after.Mode)
	}
}

func TestConfirmStartsPlay(t *testing.T) {
	g := newTestGame(1)

	result := g.Step(frame(core.ActionConfirm))
	if result.State.Mode != core.ModePlay {
		t.Errorf("mode after confirm = %v, expected play", result.State.Mode)
	}

	// Physics now runs: gravity accumulates
	g.Step(frame())
	if g.Snapshot().PlayerVY <= 0 {
		t.Error("player should start falling once play begins")
	}
}

func TestDeterminism(t *testing.T) {
	// Identical seed and input sequence produce bit-identical trajectories.
	script := func(i int) core.InputFrame {
		switch {
		case i == 0:
			return frame(core.ActionConfirm)
		case i%7 < 3:
			return frame(core.ActionRight)
		case i%11 < 2:
			return frame(core.ActionLeft)
		default:
			return frame()
		}
	}

	g1 := newTestGame(12345)
	g2 := newTestGame(12345)

	for i := 0; i < 600; i++ {
		g1.Step(script(i))
		g2.Step(script(i))

		s1, s2 := g1.Snapshot(), g2.Snapshot()
		if s1 != s2 {
			t.Fatalf("trajectories diverged at tick %d: %+v != %+v", i, s1, s2)
		}
	}
}

func TestResetClearsState(t *testing.T) {
	g := newTestGame(42)

	g.Step(frame(core.ActionConfirm))
	for i := 0; i < 100; i++ {
		g.Step(frame(core.ActionRight))
	}

	g.Reset(testRuntime(42))

	s := g.Snapshot()
	if s.Tick != 0 {
		t.Errorf("Reset should clear tick, got %d", s.Tick)
	}
	if s.Mode != core.ModeMenu {
		t.Errorf("Reset should return to menu, got %v", s.Mode)
	}
	if s.Score != 0 {
		t.Errorf("Reset should clear score, got %d", s.Score)
	}
	if s.CameraY != 0 {
		t.Errorf("Reset should zero the camera, got %v", s.CameraY)
	}
}

func TestResetIsReproducible(t *testing.T) {
	// Same seed after a reset rebuilds the identical world.
	g := newTestGame(9)
	first := g.field.Platforms()[0]

	g.Step(frame(core.ActionConfirm))
	for i := 0; i < 50; i++ {
		g.Step(frame())
	}

	g.Reset(testRuntime(9))
	if g.field.Platforms()[0] != first {
		t.Error("reset with the same seed should rebuild the same start platform")
	}
}

func TestRightDriftOntoStartPlatform(t *testing.T) {
	// Spawned above the start platform, steering right for 30 ticks: gravity
	// pulls the player onto the platform and the first bounce fires while the
	// player has drifted rightward.
	g := newTestGame(99)
	params := config.DefaultJumperConfig()

	startX := g.player.X
	g.Step(frame(core.ActionConfirm))

	sawBounce := false
	for i := 0; i < 30; i++ {
		g.Step(frame(core.ActionRight))
		if g.Snapshot().PlayerVY == -params.Physics.JumpSpeed {
			sawBounce = true
		}
	}

	if !sawBounce {
		t.Error("expected a bounce off the start platform within 30 ticks")
	}
	if g.player.X <= startX {
		t.Errorf("player should have drifted right: %v -> %v", startX, g.player.X)
	}
	if g.player.Facing != FacingRight {
		t.Error("facing should be right")
	}
	if g.player.VX <= 0 || g.player.VX > params.Physics.MaxSpeed {
		t.Errorf("VX = %v, expected within (0, %v]", g.player.VX, params.Physics.MaxSpeed)
	}
}

func TestNoInputRunEndsInSingleGameOver(t *testing.T) {
	g := newTestGame(7)
	params := config.DefaultJumperConfig()

	g.Step(frame(core.ActionConfirm))

	lookahead := 24 * params.Platforms.LookaheadFactor
	cullLimit := func() float64 { return g.camera.Y + 24 + params.Platforms.CullMargin }

	transitions := 0
	prevMode := core.ModePlay
	prevScore := 0

	const maxTicks = 20000
	for i := 0; i < maxTicks && g.mode != core.ModeGameOver; i++ {
		g.Step(frame())

		s := g.Snapshot()
		if s.Mode == core.ModeGameOver && prevMode != core.ModeGameOver {
			transitions++
		}
		prevMode = s.Mode

		// Score never decreases, even while falling
		if s.Score < prevScore {
			t.Fatalf("score decreased at tick %d: %d -> %d", i, prevScore, s.Score)
		}
		prevScore = s.Score

		// The field is never starved within the lookahead band
		if s.HighestGeneratedY > g.camera.Y-lookahead {
			t.Fatalf("lookahead starved at tick %d: topmost %v, trigger %v", i, s.HighestGeneratedY, g.camera.Y-lookahead)
		}

		// No platform survives beyond the cull bound
		for _, pl := range g.field.Platforms() {
			if pl.Y > cullLimit() {
				t.Fatalf("platform at %v survived past the cull bound %v at tick %d", pl.Y, cullLimit(), i)
			}
		}
	}

	if g.mode != core.ModeGameOver {
		t.Fatalf("player never fell below the viewport within %d ticks", maxTicks)
	}
	if transitions != 1 {
		t.Fatalf("expected exactly one transition into game over, got %d", transitions)
	}

	// After game over no physics runs and no collision is re-entered.
	frozen := g.Snapshot()
	for i := 0; i < 200; i++ {
		g.Step(frame())
	}
	if g.Snapshot() != frozen {
		t.Error("game over must freeze the world until confirm")
	}
	if g.Err() != nil {
		t.Errorf("a regular fall must not report an internal error, got %v", g.Err())
	}
}

func TestGameOverConfirmRestartsFresh(t *testing.T) {
	g := newTestGame(7)
	g.Step(frame(core.ActionConfirm))

	for i := 0; i < 20000 && g.mode != core.ModeGameOver; i++ {
		g.Step(frame())
	}
	if g.mode != core.ModeGameOver {
		t.Fatal("expected game over")
	}

	result := g.Step(frame(core.ActionConfirm))
	if result.State.Mode != core.ModePlay {
		t.Errorf("confirm in game over should restart into play, got %v", result.State.Mode)
	}
	if result.State.Score != 0 {
		t.Errorf("restart should reset score, got %d", result.State.Score)
	}

	s := g.Snapshot()
	if s.CameraY != 0 {
		t.Errorf("restart should rebuild the camera, got %v", s.CameraY)
	}
	if s.PlayerVY != 0 {
		t.Errorf("restart should rebuild the player, got VY %v", s.PlayerVY)
	}
}

func TestDegenerateConfigReportsStall(t *testing.T) {
	params := config.DefaultJumperConfig()
	params.Platforms.MinGap = 0
	params.Platforms.MaxGap = 0
	params.Platforms.SeedCount = 0

	g := NewWithParams(params)
	g.Reset(testRuntime(3))
	g.Step(frame(core.ActionConfirm))
	g.Step(frame())

	if !errors.Is(g.Err(), ErrGenerationStalled) {
		t.Errorf("expected ErrGenerationStalled, got %v", g.Err())
	}
	if g.mode != core.ModeGameOver {
		t.Errorf("a stalled generator should end the game, got %v", g.mode)
	}
}

func TestPauseHaltsSimulation(t *testing.T) {
	g := newTestGame(11)
	g.Step(frame(core.ActionConfirm))
	g.Step(frame())

	g.Step(frame(core.ActionPause))
	paused := g.Snapshot()
	if !g.State().Paused {
		t.Fatal("pause action should pause")
	}

	for i := 0; i < 50; i++ {
		g.Step(frame(core.ActionRight))
	}
	if g.Snapshot() != paused {
		t.Error("paused game must not simulate")
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Error("pause action should toggle back")
	}
}

func TestRenderProducesVisibleWorld(t *testing.T) {
	g := newTestGame(5)
	g.Step(frame(core.ActionConfirm))
	g.Step(frame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// Player block is visible near the spawn point
	found := false
	for y := 0; y < 24 && !found; y++ {
		for x := 0; x < 80 && !found; x++ {
			if screen.Get(x, y) == PlayerChar {
				found = true
			}
		}
	}
	if !found {
		t.Error("rendered screen should contain the player")
	}

	// HUD shows the score
	if !strings.Contains(screen.Row(0), "Score") {
		t.Errorf("HUD row should show the score, got %q", screen.Row(0))
	}
}
