package flappy

import "github.com/vovakirdan/skybrick/internal/core"

// Snapshot is a read-only view of one frame for renderers.
// Pipes is reused by the next Snapshot call on the same engine.
type Snapshot struct {
	State     RunState
	Score     int
	HighScore int
	Crashed   bool

	World    core.Box // Whole play field
	CeilingY float64
	GroundY  float64

	Bird         core.Box
	BirdRotation float64
	BirdVelocity float64
	Pipes        []Pipe

	Chaser       core.Box
	ChaserActive bool
}

// Snapshot captures the current frame.
func (e *Engine) Snapshot() Snapshot {
	e.snapPipes = append(e.snapPipes[:0], e.pipes.Pipes()...)

	s := Snapshot{
		State:        e.state,
		Score:        e.score,
		HighScore:    e.highScore,
		Crashed:      e.crashed,
		World:        core.NewBox(0, 0, e.cfg.World.Width, e.cfg.World.Height),
		CeilingY:     e.cfg.CeilingY(),
		GroundY:      e.cfg.GroundY(),
		Bird:         e.bird.Box(),
		BirdRotation: e.bird.Rotation,
		BirdVelocity: e.bird.Velocity,
		Pipes:        e.snapPipes,
	}
	if e.chaser != nil {
		s.Chaser = e.chaser.Box()
		s.ChaserActive = true
	}
	return s
}
