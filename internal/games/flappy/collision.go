package flappy

import "github.com/vovakirdan/skybrick/internal/core"

// Overlaps reports whether two boxes overlap.
// Touching edges and corners are not collisions. Hitboxes are assumed to
// have positive size, which config validation guarantees.
func Overlaps(a, b core.Box) bool {
	return a.Intersects(b)
}

// HitGround reports whether the box has reached the ground line.
func HitGround(b core.Box, groundY float64) bool {
	return b.Bottom() >= groundY
}

// HitCeiling reports whether the box has reached the ceiling line.
// Ceiling contact never ends a run; the bird clamp absorbs it.
func HitCeiling(b core.Box, ceilingY float64) bool {
	return b.Y <= ceilingY
}

// HitAnyObstacle reports whether the hitbox overlaps either segment of any pipe.
func HitAnyObstacle(hitbox core.Box, pipes []Pipe) bool {
	for _, p := range pipes {
		if Overlaps(hitbox, p.Top) || Overlaps(hitbox, p.Bottom) {
			return true
		}
	}
	return false
}
