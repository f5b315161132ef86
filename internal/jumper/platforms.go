package jumper

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/tui-jumper/internal/config"
)

// Kind distinguishes platform behavior.
type Kind int

const (
	KindStatic Kind = iota
	KindOscillating
)

// Platform is a landable surface. Oscillating platforms carry a horizontal
// velocity and reflect elastically off the field walls; static ones have
// VX == 0.
type Platform struct {
	X, Y float64
	W, H float64
	Kind Kind
	VX   float64
}

func (pl Platform) right() float64 { return pl.X + pl.W }

// ErrGenerationStalled reports that the generation loop hit its iteration
// bound without reaching the lookahead band. It indicates a broken
// configuration (e.g. a non-positive minimum gap), not a runtime condition.
var ErrGenerationStalled = errors.New("jumper: platform generation stalled")

// Field owns the platform set. Platforms are kept in creation order, and that
// order is the landing resolution order: tests and the collision resolver
// rely on it.
type Field struct {
	platforms []Platform
	rng       *rand.Rand
	width     float64
	cfg       config.JumperPlatforms
	highestY  float64 // Y of the topmost platform generated so far
}

// newField creates an empty field. The RNG is the only source of randomness
// in the simulation; seeding it makes the whole run reproducible.
func newField(cfg config.JumperPlatforms, rng *rand.Rand, width float64) *Field {
	return &Field{
		platforms: make([]Platform, 0, 32),
		rng:       rng,
		width:     width,
		cfg:       cfg,
	}
}

// Platforms returns the platform set in creation order.
func (f *Field) Platforms() []Platform {
	return f.platforms
}

// HighestGeneratedY returns the Y of the topmost platform created so far.
func (f *Field) HighestGeneratedY() float64 {
	return f.highestY
}

// seed places one guaranteed platform whose top is at startY, centered under
// startX, then stacks count more platforms upward with sampled gaps.
func (f *Field) seed(startX, startY float64, count int) {
	w := f.sampleWidth()
	x := startX - w/2
	if x < 0 {
		x = 0
	}
	if x+w > f.width {
		x = f.width - w
	}
	f.platforms = append(f.platforms, Platform{
		X: x, Y: startY,
		W: w, H: f.cfg.Height,
		Kind: KindStatic,
	})
	f.highestY = startY

	y := startY
	for i := 0; i < count; i++ {
		y -= f.sampleGap()
		f.platforms = append(f.platforms, f.sample(y))
		f.highestY = y
	}
}

// Extend generates platforms until the topmost one is at or above the
// lookahead band over the camera. Each iteration moves the top of the field
// up by at least the minimum gap, so the loop is bounded; the explicit
// iteration cap turns a degenerate configuration into a detectable error
// instead of a hang.
func (f *Field) Extend(cameraY, lookahead float64) error {
	trigger := cameraY - lookahead
	if f.highestY <= trigger {
		return nil
	}
	if f.cfg.MinGap <= 0 {
		return ErrGenerationStalled
	}

	maxIter := int((f.highestY-trigger)/f.cfg.MinGap) + 2
	for i := 0; f.highestY > trigger; i++ {
		if i >= maxIter {
			return ErrGenerationStalled
		}
		y := f.highestY - f.sampleGap()
		f.platforms = append(f.platforms, f.sample(y))
		f.highestY = y
	}
	return nil
}

// Oscillate advances every oscillating platform by its velocity, clamping to
// the field walls and inverting direction on contact. The reflection is
// perfectly elastic: no speed is gained or lost.
func (f *Field) Oscillate() {
	for i := range f.platforms {
		pl := &f.platforms[i]
		if pl.Kind != KindOscillating {
			continue
		}
		pl.X += pl.VX
		if pl.X < 0 {
			pl.X = 0
			pl.VX = -pl.VX
		} else if pl.right() > f.width {
			pl.X = f.width - pl.W
			pl.VX = -pl.VX
		}
	}
}

// Cull removes platforms far enough below the visible area that they can
// never be collided with again. Runs after Extend so a platform is never
// culled in the tick it was still relevant. Creation order of the survivors
// is preserved.
func (f *Field) Cull(cameraY, viewportH float64) {
	limit := cameraY + viewportH + f.cfg.CullMargin
	kept := f.platforms[:0]
	for _, pl := range f.platforms {
		if pl.Y <= limit {
			kept = append(kept, pl)
		}
	}
	f.platforms = kept
}

func (f *Field) sampleWidth() float64 {
	return f.cfg.MinWidth + f.rng.Float64()*(f.cfg.MaxWidth-f.cfg.MinWidth)
}

func (f *Field) sampleGap() float64 {
	return f.cfg.MinGap + f.rng.Float64()*(f.cfg.MaxGap-f.cfg.MinGap)
}

// sample synthesizes a platform at the given height: width and x uniform so
// the platform fits the field, oscillating with the configured probability
// and a random initial direction.
func (f *Field) sample(y float64) Platform {
	w := f.sampleWidth()
	x := f.rng.Float64() * (f.width - w)

	pl := Platform{
		X: x, Y: y,
		W: w, H: f.cfg.Height,
		Kind: KindStatic,
	}
	if f.rng.Float64() < f.cfg.OscillateChance {
		pl.Kind = KindOscillating
		pl.VX = f.cfg.OscillateSpeed
		if f.rng.Float64() < 0.5 {
			pl.VX = -pl.VX
		}
	}
	return pl
}
