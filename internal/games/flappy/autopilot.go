package flappy

// Autopilot flaps whenever the falling bird sinks below the center of the
// next gap. It is good enough to clear fixed-center pipes indefinitely.
type Autopilot struct {
	Slack float64 // How far below the target the bird may sink before flapping
}

// ShouldJump decides whether to flap this frame.
func (a Autopilot) ShouldJump(s Snapshot) bool {
	target := (s.CeilingY + s.GroundY) / 2
	for _, p := range s.Pipes {
		if p.Right() > s.Bird.X {
			target = p.GapY
			break
		}
	}
	center := s.Bird.Y + s.Bird.H/2
	return s.BirdVelocity >= 0 && center > target+a.Slack
}
