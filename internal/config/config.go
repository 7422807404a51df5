// Package config provides YAML-based game configuration loading, difficulty
// presets and validation for the game.
package config

// Gap placement policies.
const (
	PlacementFixed      = "fixed"      // Every gap centered between the bounds
	PlacementCorrelated = "correlated" // Random walk from the previous gap center
)

// Spawn cadences.
const (
	CadenceTime     = "time"     // Spawn every spawn_interval_ms of elapsed time
	CadenceDistance = "distance" // Spawn spacing world units after the previous pipe
)

// FlappyConfig contains all configuration for the game.
type FlappyConfig struct {
	World     WorldConfig    `yaml:"world"`
	Bird      BirdConfig     `yaml:"bird"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Bounds    BoundsConfig   `yaml:"bounds"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Chaser    ChaserConfig   `yaml:"chaser"`
}

// WorldConfig defines the logical play field in world units.
// The renderer scales the world onto whatever terminal it gets.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BirdConfig defines the controlled entity.
type BirdConfig struct {
	StartX        float64 `yaml:"start_x"` // Fraction of world width
	StartY        float64 `yaml:"start_y"` // Fraction of world height
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	HitboxPadding float64 `yaml:"hitbox_padding"`
}

// PhysicsConfig defines per-frame physics constants (60 Hz reference frame).
type PhysicsConfig struct {
	Gravity       float64 `yaml:"gravity"`
	JumpImpulse   float64 `yaml:"jump_impulse"`
	MaxFallSpeed  float64 `yaml:"max_fall_speed"`
	RotationSpeed float64 `yaml:"rotation_speed"`
	MaxTilt       float64 `yaml:"max_tilt"` // Radians
}

// BoundsConfig defines the vertical boundaries.
// The clamp margins bound the bird softly and are never fatal.
// The ceiling and ground lines anchor the pipes and decide ground crashes.
type BoundsConfig struct {
	ClampTop    float64 `yaml:"clamp_top"`
	ClampBottom float64 `yaml:"clamp_bottom"`
	CeilingLine float64 `yaml:"ceiling_line"`
	GroundLine  float64 `yaml:"ground_line"`
}

// ObstacleConfig defines the pipe stream.
type ObstacleConfig struct {
	PipeWidth       float64 `yaml:"pipe_width"`
	GapSize         float64 `yaml:"gap_size"`
	Speed           float64 `yaml:"speed"`
	GapMargin       float64 `yaml:"gap_margin"`   // Distance from the lines to the extreme gap centers
	SpawnOffset     float64 `yaml:"spawn_offset"` // Spawn this far past the right edge
	Cadence         string  `yaml:"cadence"`
	SpawnIntervalMs float64 `yaml:"spawn_interval_ms"`
	Spacing         float64 `yaml:"spacing"`
	Placement       string  `yaml:"placement"`
}

// ChaserConfig defines the pursuing hazard used by chase mode.
type ChaserConfig struct {
	Enabled       bool    `yaml:"enabled"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	HitboxPadding float64 `yaml:"hitbox_padding"`
	StartX        float64 `yaml:"start_x"`        // Initial x in world units
	Speed         float64 `yaml:"speed"`          // Horizontal closing speed per frame
	TrailDistance float64 `yaml:"trail_distance"` // How far behind the bird it settles
	Smoothing     float64 `yaml:"smoothing"`      // Fraction of vertical distance closed per frame
}

// CeilingY returns the y of the ceiling line.
func (c FlappyConfig) CeilingY() float64 {
	return c.Bounds.CeilingLine
}

// GroundY returns the y of the ground line.
func (c FlappyConfig) GroundY() float64 {
	return c.World.Height - c.Bounds.GroundLine
}

// MinGapY returns the highest allowed gap center.
func (c FlappyConfig) MinGapY() float64 {
	return c.CeilingY() + c.Obstacles.GapMargin
}

// MaxGapY returns the lowest allowed gap center.
func (c FlappyConfig) MaxGapY() float64 {
	return c.GroundY() - c.Obstacles.GapMargin
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficultyPreset maps a CLI string to a preset.
// Unknown or empty strings return "" which leaves the config untouched.
func ParseDifficultyPreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
