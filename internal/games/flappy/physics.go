package flappy

import (
	"github.com/vovakirdan/skybrick/internal/config"
	"github.com/vovakirdan/skybrick/internal/core"
)

// Bird is the player-controlled entity.
// Velocity is positive when falling. Rotation is visual only.
type Bird struct {
	X, Y          float64
	Width, Height float64
	Velocity      float64
	Rotation      float64

	topBound    float64
	bottomBound float64

	physics config.PhysicsConfig
	bird    config.BirdConfig
	bounds  config.BoundsConfig
}

// NewBird creates a bird using the given configuration.
// Call Init before stepping it.
func NewBird(cfg config.FlappyConfig) *Bird {
	return &Bird{
		Width:   cfg.Bird.Width,
		Height:  cfg.Bird.Height,
		physics: cfg.Physics,
		bird:    cfg.Bird,
		bounds:  cfg.Bounds,
	}
}

// Init places the bird at its start position in a world of the given size.
func (b *Bird) Init(worldW, worldH float64) {
	b.X = worldW * b.bird.StartX
	b.Y = worldH * b.bird.StartY
	b.Velocity = 0
	b.Rotation = 0
	b.topBound = b.bounds.ClampTop
	b.bottomBound = worldH - b.bounds.ClampBottom - b.Height
}

// Jump replaces the current velocity with the jump impulse.
func (b *Bird) Jump() {
	b.Velocity = b.physics.JumpImpulse
}

// Step integrates one sample of elapsed time.
func (b *Bird) Step(elapsedMs float64) {
	k := core.FrameMultiplier(elapsedMs)

	b.Velocity += b.physics.Gravity * k
	if b.Velocity > b.physics.MaxFallSpeed {
		b.Velocity = b.physics.MaxFallSpeed
	}
	b.Y += b.Velocity * k

	if b.Velocity < 0 {
		b.Rotation = -b.physics.MaxTilt
	} else {
		b.Rotation += b.physics.RotationSpeed * k
		if b.Rotation > b.physics.MaxTilt {
			b.Rotation = b.physics.MaxTilt
		}
	}

	b.clamp()
}

// clamp keeps the bird inside the soft bounds. Any clamp stops the bird.
func (b *Bird) clamp() {
	if b.Y < b.topBound {
		b.Y = b.topBound
		b.Velocity = 0
	}
	if b.Y > b.bottomBound {
		b.Y = b.bottomBound
		b.Velocity = 0
	}
}

// TopBound returns the smallest y the bird may occupy.
func (b *Bird) TopBound() float64 {
	return b.topBound
}

// BottomBound returns the largest y the bird may occupy.
func (b *Bird) BottomBound() float64 {
	return b.bottomBound
}

// Box returns the visual box.
func (b *Bird) Box() core.Box {
	return core.NewBox(b.X, b.Y, b.Width, b.Height)
}

// Hitbox returns the collision box, inset from the visual box.
func (b *Bird) Hitbox() core.Box {
	return b.Box().Inset(b.bird.HitboxPadding)
}
