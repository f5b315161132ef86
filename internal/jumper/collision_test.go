package jumper

import "testing"

const (
	testTolerance = 1.0
	testJumpSpeed = 1.0
)

// fallingPlayer is positioned so that its bottom edge (10.5) has just crossed
// into the landing band of a platform whose top is at y=10.
func fallingPlayer() Player {
	return Player{X: 10, Y: 8.5, VY: 1.0, W: 3, H: 2}
}

func TestLandingSnapsAndBounces(t *testing.T) {
	p := fallingPlayer()
	platforms := []Platform{{X: 9, Y: 10, W: 6, H: 1}}

	p, landed := resolveLanding(p, platforms, testTolerance, testJumpSpeed)
	if !landed {
		t.Fatal("expected a landing")
	}
	if p.bottom() != 10 {
		t.Errorf("player bottom should rest exactly on the platform top, got %v", p.bottom())
	}
	if p.VY != -testJumpSpeed {
		t.Errorf("VY after landing = %v, expected %v", p.VY, -testJumpSpeed)
	}
}

func TestLandingFirstMatchWins(t *testing.T) {
	p := fallingPlayer()

	// Both platforms satisfy every predicate; the second is closer to the
	// player, but field order decides.
	first := Platform{X: 9, Y: 10, W: 6, H: 1}
	second := Platform{X: 9, Y: 9.6, W: 6, H: 1}

	got, landed := resolveLanding(p, []Platform{first, second}, testTolerance, testJumpSpeed)
	if !landed {
		t.Fatal("expected a landing")
	}
	if got.bottom() != first.Y {
		t.Errorf("resolver should pick the first platform in field order: bottom = %v, expected %v", got.bottom(), first.Y)
	}

	// Reversing creation order flips the winner.
	got, landed = resolveLanding(p, []Platform{second, first}, testTolerance, testJumpSpeed)
	if !landed {
		t.Fatal("expected a landing")
	}
	if got.bottom() != second.Y {
		t.Errorf("reversed order should pick the other platform: bottom = %v, expected %v", got.bottom(), second.Y)
	}
}

func TestNoLandingWhileAscending(t *testing.T) {
	p := fallingPlayer()
	p.VY = -0.5 // ascending through the platform band
	platforms := []Platform{{X: 9, Y: 10, W: 6, H: 1}}

	got, landed := resolveLanding(p, platforms, testTolerance, testJumpSpeed)
	if landed {
		t.Error("ascending player must pass through platforms")
	}
	if got != p {
		t.Errorf("resolver must not touch an ascending player: %+v != %+v", got, p)
	}
}

func TestNoLandingWhenStartedBelowSurface(t *testing.T) {
	// Bottom edge 11.5, previous bottom 10.5: the tick started already below
	// the platform top at 10, so the platform must not catch the player even
	// though the bottom is inside the band.
	p := Player{X: 10, Y: 9.5, VY: 1.0, W: 3, H: 2}
	platforms := []Platform{{X: 9, Y: 10, W: 6, H: 1}}

	_, landed := resolveLanding(p, platforms, testTolerance, testJumpSpeed)
	if landed {
		t.Error("player embedded below the surface must not be caught")
	}
}

func TestNoLandingOnTouchingEdges(t *testing.T) {
	p := fallingPlayer() // horizontal extent [10, 13]

	// Platform starting exactly at the player's right edge
	right := []Platform{{X: 13, Y: 10, W: 6, H: 1}}
	if _, landed := resolveLanding(p, right, testTolerance, testJumpSpeed); landed {
		t.Error("touching right edges must not count as overlap")
	}

	// Platform ending exactly at the player's left edge
	left := []Platform{{X: 4, Y: 10, W: 6, H: 1}}
	if _, landed := resolveLanding(p, left, testTolerance, testJumpSpeed); landed {
		t.Error("touching left edges must not count as overlap")
	}

	// The smallest overlap does count
	overlapping := []Platform{{X: 12.9, Y: 10, W: 6, H: 1}}
	if _, landed := resolveLanding(p, overlapping, testTolerance, testJumpSpeed); !landed {
		t.Error("strict overlap should land")
	}
}

func TestNoLandingBeyondToleranceBand(t *testing.T) {
	// Bottom edge 12.5 is past top+height+tolerance = 12: stepped through the
	// whole band in one tick.
	p := Player{X: 10, Y: 10.5, VY: 3.0, W: 3, H: 2}
	platforms := []Platform{{X: 9, Y: 10, W: 6, H: 1}}

	_, landed := resolveLanding(p, platforms, testTolerance, testJumpSpeed)
	if landed {
		t.Error("bottom beyond the tolerance band must not land")
	}
}
