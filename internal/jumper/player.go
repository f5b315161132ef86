package jumper

import (
	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
)

// Facing is the player's horizontal orientation, used only for rendering.
type Facing int

const (
	FacingLeft Facing = iota
	FacingRight
)

// Player is the controllable figure. It is a plain value: each tick consumes
// the previous value and produces the next one, so there is no hidden aliasing
// between the simulation and the renderer. Y decreases upward.
type Player struct {
	X, Y     float64 // Top-left corner in world space
	VX, VY   float64 // Velocity in cells per tick
	W, H     float64 // Fixed for the player's lifetime
	Facing   Facing
	HighestY float64 // Minimum Y ever reached; never increases
}

func newPlayer(cfg config.JumperPlayer, fieldW, fieldH float64) Player {
	x := fieldW/2 - cfg.Width/2
	y := fieldH - cfg.SpawnOffset
	return Player{
		X:        x,
		Y:        y,
		W:        cfg.Width,
		H:        cfg.Height,
		Facing:   FacingRight,
		HighestY: y,
	}
}

func (p Player) left() float64   { return p.X }
func (p Player) right() float64  { return p.X + p.W }
func (p Player) top() float64    { return p.Y }
func (p Player) bottom() float64 { return p.Y + p.H }

// stepPlayer advances the player by one fixed tick.
//
// Horizontal: exactly one asserted direction accelerates and sets facing;
// both or neither decays velocity by friction. Speed is clamped to
// ±MaxSpeed after either branch. Vertical: gravity is applied
// unconditionally with no terminal velocity. Position integrates by
// explicit Euler, then wraps at the field boundaries: once the player is
// fully off one side it reappears just outside the other, making the field
// a horizontal cylinder.
func stepPlayer(p Player, left, right bool, phy config.JumperPhysics, fieldW float64) Player {
	switch {
	case left && !right:
		p.VX -= phy.Accel
		p.Facing = FacingLeft
	case right && !left:
		p.VX += phy.Accel
		p.Facing = FacingRight
	default:
		p.VX *= phy.Friction
	}
	p.VX = core.ClampF(p.VX, -phy.MaxSpeed, phy.MaxSpeed)

	p.VY += phy.Gravity

	p.X += p.VX
	p.Y += p.VY

	if p.right() < 0 {
		p.X = fieldW
	} else if p.left() > fieldW {
		p.X = -p.W
	}

	if p.Y < p.HighestY {
		p.HighestY = p.Y
	}
	return p
}

// bounce sets the vertical velocity to the fixed upward jump speed,
// overwriting whatever it was. It never accumulates.
func bounce(p Player, jumpSpeed float64) Player {
	p.VY = -jumpSpeed
	return p
}
