package jumper

import "github.com/vovakirdan/tui-jumper/internal/core"

// Snapshot captures the simulation state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Mode     core.Mode
	Score    int
	PlayerX  float64
	PlayerY  float64
	PlayerVX float64
	PlayerVY float64
	Facing   Facing
	CameraY  float64

	PlatformCount     int
	HighestGeneratedY float64
}

// Snapshot returns the current simulation snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:              g.tick,
		Mode:              g.mode,
		Score:             g.camera.Score(),
		PlayerX:           g.player.X,
		PlayerY:           g.player.Y,
		PlayerVX:          g.player.VX,
		PlayerVY:          g.player.VY,
		Facing:            g.player.Facing,
		CameraY:           g.camera.Y,
		PlatformCount:     len(g.field.Platforms()),
		HighestGeneratedY: g.field.HighestGeneratedY(),
	}
}
