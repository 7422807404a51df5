package config

import (
	_ "embed"
	"math"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyYAML returns the embedded default configuration document.
func DefaultFlappyYAML() []byte {
	out := make([]byte, len(defaultFlappyYAML))
	copy(out, defaultFlappyYAML)
	return out
}

// DefaultFlappyConfig returns the default game configuration.
// Values are per-frame at the 60 Hz reference rate, in world units.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: WorldConfig{
			Width:  800,
			Height: 450,
		},
		Bird: BirdConfig{
			StartX:        0.4,
			StartY:        0.2,
			Width:         60,
			Height:        60,
			HitboxPadding: 6,
		},
		Physics: PhysicsConfig{
			Gravity:       0.3,
			JumpImpulse:   -6,
			MaxFallSpeed:  8,
			RotationSpeed: 0.08,
			MaxTilt:       math.Pi / 6,
		},
		Bounds: BoundsConfig{
			ClampTop:    42,
			ClampBottom: 40,
			CeilingLine: 40,
			GroundLine:  40,
		},
		Obstacles: ObstacleConfig{
			PipeWidth:       100,
			GapSize:         150,
			Speed:           2,
			GapMargin:       80,
			SpawnOffset:     50,
			Cadence:         CadenceTime,
			SpawnIntervalMs: 1800,
			Spacing:         216,
			Placement:       PlacementCorrelated,
		},
		Chaser: ChaserConfig{
			Enabled:       false,
			Width:         48,
			Height:        48,
			HitboxPadding: 4,
			StartX:        -48,
			Speed:         0.6,
			TrailDistance: 30,
			Smoothing:     0.04,
		},
	}
}

// ApplyFlappyPreset modifies the config based on a difficulty preset.
// Easy and hard replace the stream parameters as a set so that speed and
// spawn spacing stay tuned together. An empty preset is a no-op.
func ApplyFlappyPreset(cfg *FlappyConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Obstacles.Placement = PlacementFixed
		cfg.Obstacles.GapSize = 170
		cfg.Obstacles.GapMargin = 90
		cfg.Obstacles.Speed = 1.6
		cfg.Obstacles.SpawnIntervalMs = 2000
		cfg.Obstacles.Spacing = 192
		cfg.Chaser.Speed = 0.4
	case DifficultyHard:
		cfg.Obstacles.Placement = PlacementCorrelated
		cfg.Obstacles.GapSize = 125
		cfg.Obstacles.Speed = 2.6
		cfg.Obstacles.SpawnIntervalMs = 1500
		cfg.Obstacles.Spacing = 234
		cfg.Chaser.Speed = 0.8
	}
}

// EnableChase switches the config into chase mode.
func EnableChase(cfg *FlappyConfig) {
	cfg.Chaser.Enabled = true
}
