package config

import (
	_ "embed"
)

//go:embed defaults/jumper.yaml
var defaultJumperYAML []byte

// DefaultJumperConfig returns the default jumper configuration.
// Kept in sync with defaults/jumper.yaml as a fallback if the embed
// ever fails to parse.
func DefaultJumperConfig() JumperConfig {
	return JumperConfig{
		Physics: JumperPhysics{
			Gravity:   0.025,
			Accel:     0.03,
			Friction:  0.85,
			MaxSpeed:  0.6,
			JumpSpeed: 1.0,
		},
		Player: JumperPlayer{
			Width:       3,
			Height:      2,
			SpawnOffset: 6,
		},
		Platforms: JumperPlatforms{
			Height:          1,
			MinWidth:        5,
			MaxWidth:        12,
			MinGap:          3,
			MaxGap:          8,
			OscillateChance: 0.2,
			OscillateSpeed:  0.15,
			SeedCount:       12,
			LookaheadFactor: 1.0,
			CullMargin:      4,
		},
		Camera: JumperCamera{
			RaiseFraction: 0.4,
		},
		Collision: JumperCollision{
			Tolerance: 1.0,
		},
	}
}
