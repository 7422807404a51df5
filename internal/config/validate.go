package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/skybrick/internal/core"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

func invalid(field, format string, args ...any) error {
	return fmt.Errorf("config: %s: %s: %w", field, fmt.Sprintf(format, args...), ErrInvalidConfig)
}

// validatePadding rejects paddings that would leave an empty hitbox.
func validatePadding(field string, pad, w, h float64) error {
	if pad < 0 {
		return invalid(field, "must not be negative, got %g", pad)
	}
	if 2*pad >= w || 2*pad >= h {
		return invalid(field, "%g collapses the %gx%g hitbox", pad, w, h)
	}
	return nil
}

// Validate reports the first malformed value in the configuration.
func (c FlappyConfig) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return invalid("world", "size must be positive, got %gx%g", c.World.Width, c.World.Height)
	}

	if err := c.validateBird(); err != nil {
		return err
	}
	if err := c.validateBounds(); err != nil {
		return err
	}
	if err := c.validateObstacles(); err != nil {
		return err
	}
	if c.Chaser.Enabled {
		if err := c.validateChaser(); err != nil {
			return err
		}
	}
	return nil
}

func (c FlappyConfig) validateBird() error {
	b := c.Bird
	if b.Width <= 0 || b.Height <= 0 {
		return invalid("bird", "size must be positive, got %gx%g", b.Width, b.Height)
	}
	if err := validatePadding("bird.hitbox_padding", b.HitboxPadding, b.Width, b.Height); err != nil {
		return err
	}
	if b.StartX < 0 || b.StartX > 1 || b.StartY < 0 || b.StartY > 1 {
		return invalid("bird.start", "fractions must be within [0, 1], got (%g, %g)", b.StartX, b.StartY)
	}

	p := c.Physics
	if p.Gravity < 0 {
		return invalid("physics.gravity", "must not be negative, got %g", p.Gravity)
	}
	if p.JumpImpulse >= 0 {
		return invalid("physics.jump_impulse", "must be negative, got %g", p.JumpImpulse)
	}
	if p.MaxFallSpeed <= 0 {
		return invalid("physics.max_fall_speed", "must be positive, got %g", p.MaxFallSpeed)
	}
	if p.RotationSpeed < 0 || p.MaxTilt < 0 {
		return invalid("physics.rotation", "speed and tilt must not be negative")
	}
	return nil
}

func (c FlappyConfig) validateBounds() error {
	b := c.Bounds
	if b.ClampTop < 0 || b.ClampBottom < 0 || b.CeilingLine < 0 || b.GroundLine < 0 {
		return invalid("bounds", "margins must not be negative")
	}
	if c.World.Height-b.ClampBottom-c.Bird.Height <= b.ClampTop {
		return invalid("bounds", "clamp range leaves no room for the bird")
	}
	if c.GroundY() <= c.CeilingY() {
		return invalid("bounds", "ground line %g is not below ceiling line %g", c.GroundY(), c.CeilingY())
	}
	return nil
}

func (c FlappyConfig) validateObstacles() error {
	o := c.Obstacles
	if o.PipeWidth <= 0 {
		return invalid("obstacles.pipe_width", "must be positive, got %g", o.PipeWidth)
	}
	if o.GapSize <= 0 {
		return invalid("obstacles.gap_size", "must be positive, got %g", o.GapSize)
	}
	if o.Speed <= 0 {
		return invalid("obstacles.speed", "must be positive, got %g", o.Speed)
	}
	if o.GapMargin < 0 {
		return invalid("obstacles.gap_margin", "must not be negative, got %g", o.GapMargin)
	}
	if c.MinGapY() > c.MaxGapY() {
		return invalid("obstacles.gap_margin", "gap range [%g, %g] is inverted", c.MinGapY(), c.MaxGapY())
	}
	if c.MinGapY()-o.GapSize/2 < c.CeilingY() {
		return invalid("obstacles.gap_size", "top segment would have negative height")
	}
	if c.MaxGapY()+o.GapSize/2 > c.GroundY() {
		return invalid("obstacles.gap_size", "bottom segment would have negative height")
	}

	switch o.Placement {
	case PlacementFixed, PlacementCorrelated:
	default:
		return invalid("obstacles.placement", "unknown policy %q", o.Placement)
	}

	switch o.Cadence {
	case CadenceTime:
		if o.SpawnIntervalMs <= 0 {
			return invalid("obstacles.spawn_interval_ms", "must be positive, got %g", o.SpawnIntervalMs)
		}
		if spacing := o.Speed * core.FrameMultiplier(o.SpawnIntervalMs); spacing <= o.PipeWidth {
			return invalid("obstacles.spawn_interval_ms", "pipes would overlap: spacing %g <= width %g", spacing, o.PipeWidth)
		}
	case CadenceDistance:
		if o.Spacing <= o.PipeWidth {
			return invalid("obstacles.spacing", "pipes would overlap: spacing %g <= width %g", o.Spacing, o.PipeWidth)
		}
	default:
		return invalid("obstacles.cadence", "unknown cadence %q", o.Cadence)
	}
	return nil
}

func (c FlappyConfig) validateChaser() error {
	ch := c.Chaser
	if ch.Width <= 0 || ch.Height <= 0 {
		return invalid("chaser", "size must be positive, got %gx%g", ch.Width, ch.Height)
	}
	if err := validatePadding("chaser.hitbox_padding", ch.HitboxPadding, ch.Width, ch.Height); err != nil {
		return err
	}
	if ch.Speed <= 0 {
		return invalid("chaser.speed", "must be positive, got %g", ch.Speed)
	}
	if ch.TrailDistance < 0 {
		return invalid("chaser.trail_distance", "must not be negative, got %g", ch.TrailDistance)
	}
	if ch.Smoothing <= 0 || ch.Smoothing > 1 {
		return invalid("chaser.smoothing", "must be within (0, 1], got %g", ch.Smoothing)
	}
	if c.World.Height-c.Bounds.ClampBottom-ch.Height <= c.Bounds.ClampTop {
		return invalid("chaser", "clamp range leaves no room for the chaser")
	}
	return nil
}
