package flappy

import (
	"math"

	"github.com/vovakirdan/skybrick/internal/config"
	"github.com/vovakirdan/skybrick/internal/core"
)

// Chaser is the pursuing hazard of chase mode.
// It homes toward a point trailing the bird: at a fixed speed horizontally
// and by exponential smoothing vertically.
type Chaser struct {
	X, Y          float64
	Width, Height float64

	topBound    float64
	bottomBound float64

	cfg config.ChaserConfig
}

// NewChaser creates a chaser using the given configuration.
func NewChaser(cfg config.FlappyConfig) *Chaser {
	return &Chaser{
		Width:  cfg.Chaser.Width,
		Height: cfg.Chaser.Height,
		cfg:    cfg.Chaser,
	}
}

// Reset puts the chaser at its start position, level with the bird.
func (c *Chaser) Reset(bird *Bird, worldH float64, bounds config.BoundsConfig) {
	c.topBound = bounds.ClampTop
	c.bottomBound = worldH - bounds.ClampBottom - c.Height
	c.X = c.cfg.StartX
	c.Y = core.ClampF(bird.Y+bird.Height/2-c.Height/2, c.topBound, c.bottomBound)
}

// Step moves the chaser one sample of elapsed time closer to its target.
func (c *Chaser) Step(elapsedMs float64, bird *Bird) {
	k := core.FrameMultiplier(elapsedMs)

	targetX := bird.X - c.cfg.TrailDistance
	dx := targetX - c.X
	if step := c.cfg.Speed * k; math.Abs(dx) <= step {
		c.X = targetX
	} else {
		c.X += math.Copysign(step, dx)
	}

	targetY := bird.Y + bird.Height/2 - c.Height/2
	alpha := math.Min(1, c.cfg.Smoothing*k)
	c.Y += (targetY - c.Y) * alpha
	c.Y = core.ClampF(c.Y, c.topBound, c.bottomBound)
}

// Box returns the visual box.
func (c *Chaser) Box() core.Box {
	return core.NewBox(c.X, c.Y, c.Width, c.Height)
}

// Hitbox returns the collision box, inset from the visual box.
func (c *Chaser) Hitbox() core.Box {
	return c.Box().Inset(c.cfg.HitboxPadding)
}

// Catches reports whether the chaser overlaps the bird.
func (c *Chaser) Catches(bird *Bird) bool {
	return Overlaps(c.Hitbox(), bird.Hitbox())
}
