// Package config provides YAML-based game configuration loading for the
// jumper platform.
package config

import "fmt"

// JumperConfig contains all tunable constants for the jumper simulation.
// World coordinates are in screen cells; velocities are cells per tick.
type JumperConfig struct {
	Physics   JumperPhysics   `yaml:"physics"`
	Player    JumperPlayer    `yaml:"player"`
	Platforms JumperPlatforms `yaml:"platforms"`
	Camera    JumperCamera    `yaml:"camera"`
	Collision JumperCollision `yaml:"collision"`
}

// JumperPhysics defines motion parameters. Gravity pulls down (+y);
// jump_speed is the magnitude of the upward bounce velocity.
type JumperPhysics struct {
	Gravity   float64 `yaml:"gravity"`
	Accel     float64 `yaml:"accel"`
	Friction  float64 `yaml:"friction"`
	MaxSpeed  float64 `yaml:"max_speed"`
	JumpSpeed float64 `yaml:"jump_speed"`
}

// JumperPlayer defines the player's fixed dimensions and spawn placement.
// SpawnOffset is how many cells above the bottom of the viewport the player
// spawns.
type JumperPlayer struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	SpawnOffset float64 `yaml:"spawn_offset"`
}

// JumperPlatforms defines platform generation parameters.
// LookaheadFactor scales the viewport height into the generation lookahead
// band; CullMargin is how far below the viewport a platform may survive.
type JumperPlatforms struct {
	Height          float64 `yaml:"height"`
	MinWidth        float64 `yaml:"min_width"`
	MaxWidth        float64 `yaml:"max_width"`
	MinGap          float64 `yaml:"min_gap"`
	MaxGap          float64 `yaml:"max_gap"`
	OscillateChance float64 `yaml:"oscillate_chance"`
	OscillateSpeed  float64 `yaml:"oscillate_speed"`
	SeedCount       int     `yaml:"seed_count"`
	LookaheadFactor float64 `yaml:"lookahead_factor"`
	CullMargin      float64 `yaml:"cull_margin"`
}

// JumperCamera defines camera-follow parameters. RaiseFraction is the screen
// height fraction at which the player is pinned when climbing.
type JumperCamera struct {
	RaiseFraction float64 `yaml:"raise_fraction"`
}

// JumperCollision defines landing detection parameters. Tolerance widens the
// landing band below a platform's top so large per-tick falls don't tunnel
// through.
type JumperCollision struct {
	Tolerance float64 `yaml:"tolerance"`
}

// Validate rejects degenerate configurations that would break simulation
// invariants, in particular a non-positive minimum gap, which would let the
// generation loop stall.
func (c JumperConfig) Validate() error {
	if c.Physics.Gravity <= 0 {
		return fmt.Errorf("config: gravity must be positive, got %v", c.Physics.Gravity)
	}
	if c.Physics.JumpSpeed <= 0 {
		return fmt.Errorf("config: jump_speed must be positive, got %v", c.Physics.JumpSpeed)
	}
	if c.Physics.Friction < 0 || c.Physics.Friction >= 1 {
		return fmt.Errorf("config: friction must be in [0, 1), got %v", c.Physics.Friction)
	}
	if c.Physics.MaxSpeed <= 0 {
		return fmt.Errorf("config: max_speed must be positive, got %v", c.Physics.MaxSpeed)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return fmt.Errorf("config: player dimensions must be positive")
	}
	if c.Platforms.MinGap <= 0 {
		return fmt.Errorf("config: min_gap must be positive, got %v", c.Platforms.MinGap)
	}
	if c.Platforms.MaxGap < c.Platforms.MinGap {
		return fmt.Errorf("config: max_gap %v is below min_gap %v", c.Platforms.MaxGap, c.Platforms.MinGap)
	}
	if c.Platforms.MinWidth <= 0 || c.Platforms.MaxWidth < c.Platforms.MinWidth {
		return fmt.Errorf("config: platform width range [%v, %v] is invalid", c.Platforms.MinWidth, c.Platforms.MaxWidth)
	}
	if c.Platforms.OscillateChance < 0 || c.Platforms.OscillateChance > 1 {
		return fmt.Errorf("config: oscillate_chance must be in [0, 1], got %v", c.Platforms.OscillateChance)
	}
	if c.Platforms.LookaheadFactor <= 0 {
		return fmt.Errorf("config: lookahead_factor must be positive, got %v", c.Platforms.LookaheadFactor)
	}
	if c.Camera.RaiseFraction <= 0 || c.Camera.RaiseFraction >= 1 {
		return fmt.Errorf("config: raise_fraction must be in (0, 1), got %v", c.Camera.RaiseFraction)
	}
	if c.Collision.Tolerance < 0 {
		return fmt.Errorf("config: tolerance must be non-negative, got %v", c.Collision.Tolerance)
	}
	return nil
}
