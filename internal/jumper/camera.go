package jumper

import "math"

// Camera tracks the world-to-screen vertical offset. Y only ever decreases
// (the camera only rises); lowestY records the furthest it has risen and is
// what the score derives from, so the score survives later falls.
type Camera struct {
	Y       float64
	lowestY float64
}

// follow raises the camera just enough to pin the player at the threshold
// screen height whenever they climb above it. It never moves down and never
// overshoots.
func (c Camera) follow(playerY, viewportH, raiseFraction float64) Camera {
	threshold := viewportH * raiseFraction
	screenY := playerY - c.Y
	if screenY < threshold {
		c.Y -= threshold - screenY
	}
	if c.Y < c.lowestY {
		c.lowestY = c.Y
	}
	return c
}

// Score is the net upward distance the camera has traveled, floored to an
// integer. Monotonically non-decreasing across a run.
func (c Camera) Score() int {
	return int(math.Floor(-c.lowestY))
}
