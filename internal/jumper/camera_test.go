package jumper

import (
	"math"
	"testing"
)

func TestCameraRaisesToPinPlayer(t *testing.T) {
	c := Camera{}

	// Player at y=2 is above the threshold 0.4*24 = 9.6: the camera rises by
	// exactly the deficit, pinning the player at the threshold.
	c = c.follow(2, 24, 0.4)

	if math.Abs(c.Y-(2-24*0.4)) > 1e-12 {
		t.Errorf("camera Y = %v, expected %v", c.Y, 2-24*0.4)
	}
	if math.Abs((2-c.Y)-24*0.4) > 1e-12 {
		t.Errorf("player screen y = %v, expected pinned at %v", 2-c.Y, 24*0.4)
	}
}

func TestCameraNeverDescends(t *testing.T) {
	c := Camera{}
	c = c.follow(2, 24, 0.4)
	raised := c.Y

	// Player falls far below the threshold: camera must hold
	c = c.follow(50, 24, 0.4)
	if c.Y != raised {
		t.Errorf("camera moved down: %v -> %v", raised, c.Y)
	}

	// Player below the threshold but above the old pin: still no movement
	c = c.follow(raised+15, 24, 0.4)
	if c.Y != raised {
		t.Errorf("camera moved without the player crossing the threshold: %v", c.Y)
	}
}

func TestCameraScoreMonotonic(t *testing.T) {
	c := Camera{}

	c = c.follow(2, 24, 0.4)
	score := c.Score()
	if score != 7 {
		t.Errorf("score = %d, expected floor(7.6) = 7", score)
	}

	// Falling never reduces the score
	c = c.follow(100, 24, 0.4)
	if c.Score() < score {
		t.Errorf("score decreased while falling: %d -> %d", score, c.Score())
	}

	// Climbing higher increases it
	c = c.follow(-20, 24, 0.4)
	if c.Score() <= score {
		t.Errorf("score should grow with new height, got %d", c.Score())
	}
}

func TestCameraScoreStartsAtZero(t *testing.T) {
	c := Camera{}
	if c.Score() != 0 {
		t.Errorf("fresh camera score = %d, expected 0", c.Score())
	}
}
