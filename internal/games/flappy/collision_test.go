package flappy

import (
	"testing"

	"github.com/vovakirdan/skybrick/internal/core"
)

func TestOverlaps(t *testing.T) {
	a := core.NewBox(0, 0, 10, 10)

	tests := []struct {
		name string
		b    core.Box
		want bool
	}{
		{"identical", core.NewBox(0, 0, 10, 10), true},
		{"partial", core.NewBox(5, 5, 10, 10), true},
		{"contained", core.NewBox(2, 2, 3, 3), true},
		{"shared right edge", core.NewBox(10, 0, 10, 10), false},
		{"shared bottom edge", core.NewBox(0, 10, 10, 10), false},
		{"shared corner", core.NewBox(10, 10, 5, 5), false},
		{"just inside edge", core.NewBox(9.999, 0, 10, 10), true},
		{"disjoint", core.NewBox(20, 20, 5, 5), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(a, tc.b); got != tc.want {
				t.Errorf("Overlaps(a, b) = %v, expected %v", got, tc.want)
			}
			if got := Overlaps(tc.b, a); got != tc.want {
				t.Errorf("Overlaps(b, a) = %v, expected %v (not symmetric)", got, tc.want)
			}
		})
	}
}

func TestHitGroundAndCeiling(t *testing.T) {
	const groundY, ceilingY = 410.0, 40.0

	if !HitGround(core.NewBox(0, 350, 10, 60), groundY) {
		t.Error("box touching the ground line should hit it")
	}
	if HitGround(core.NewBox(0, 349.9, 10, 60), groundY) {
		t.Error("box above the ground line should not hit it")
	}
	if !HitCeiling(core.NewBox(0, 40, 10, 10), ceilingY) {
		t.Error("box touching the ceiling line should hit it")
	}
	if HitCeiling(core.NewBox(0, 42, 10, 10), ceilingY) {
		t.Error("box below the ceiling line should not hit it")
	}
}

func TestHitAnyObstacle(t *testing.T) {
	pipes := []Pipe{
		{Top: core.NewBox(100, 40, 100, 110), Bottom: core.NewBox(100, 300, 100, 110)},
		{Top: core.NewBox(400, 40, 100, 60), Bottom: core.NewBox(400, 250, 100, 160)},
	}

	tests := []struct {
		name   string
		hitbox core.Box
		want   bool
	}{
		{"in first gap", core.NewBox(120, 160, 40, 40), false},
		{"first top segment", core.NewBox(120, 140, 40, 40), true},
		{"second bottom segment", core.NewBox(420, 240, 40, 40), true},
		{"between pipes", core.NewBox(250, 50, 40, 300), false},
		{"touching first pipe edge", core.NewBox(60, 100, 40, 40), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := HitAnyObstacle(tc.hitbox, pipes); got != tc.want {
				t.Errorf("HitAnyObstacle = %v, expected %v", got, tc.want)
			}
		})
	}

	if HitAnyObstacle(core.NewBox(0, 0, 1000, 1000), nil) {
		t.Error("no pipes should never collide")
	}
}
