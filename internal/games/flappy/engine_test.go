package flappy

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/skybrick/internal/config"
	"github.com/vovakirdan/skybrick/internal/core"
)

type recordingAudio struct {
	played []core.SoundEffect
}

func (a *recordingAudio) Play(e core.SoundEffect) {
	a.played = append(a.played, e)
}

func (a *recordingAudio) count(e core.SoundEffect) int {
	n := 0
	for _, p := range a.played {
		if p == e {
			n++
		}
	}
	return n
}

type memoryScores struct {
	high   int
	offers []int
}

func (s *memoryScores) ReadHighScore() int { return s.high }

func (s *memoryScores) WriteHighScoreIfGreater(score int) {
	s.offers = append(s.offers, score)
	if score > s.high {
		s.high = score
	}
}

type countingRenderer struct {
	frames int
	last   Snapshot
}

func (r *countingRenderer) Render(s Snapshot) {
	r.frames++
	r.last = s
}

func fixedConfig() config.FlappyConfig {
	cfg := config.DefaultFlappyConfig()
	cfg.Obstacles.Placement = config.PlacementFixed
	return cfg
}

func mustEngine(t *testing.T, cfg config.FlappyConfig, opts Options) *Engine {
	t.Helper()
	e, err := NewEngine(cfg, opts)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

// fly advances an active engine under the autopilot until it crashes or
// frames run out. Returns the frame count actually run.
func fly(e *Engine, frames int) int {
	pilot := Autopilot{Slack: 10}
	for i := 0; i < frames; i++ {
		if pilot.ShouldJump(e.Snapshot()) {
			e.Jump()
		}
		if out := e.Advance(core.FrameMs); out.Crashed {
			return i + 1
		}
	}
	return frames
}

func TestNewEngineRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.FlappyConfig)
	}{
		{"negative gap", func(c *config.FlappyConfig) { c.Obstacles.GapSize = -1 }},
		{"empty bird hitbox", func(c *config.FlappyConfig) { c.Bird.HitboxPadding = 30 }},
		{"empty chaser hitbox", func(c *config.FlappyConfig) {
			config.EnableChase(c)
			c.Chaser.HitboxPadding = c.Chaser.Width / 2
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultFlappyConfig()
			tc.mutate(&cfg)
			if _, err := NewEngine(cfg, Options{}); !errors.Is(err, config.ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestEngineStartsIdle(t *testing.T) {
	e := mustEngine(t, config.DefaultFlappyConfig(), Options{Scores: &memoryScores{high: 7}})

	if e.State() != StateIdle {
		t.Errorf("State() = %v, expected Idle", e.State())
	}
	if e.HighScore() != 7 {
		t.Errorf("HighScore() = %d, expected 7 from the store", e.HighScore())
	}
	if e.Pipes().Live() != 0 {
		t.Errorf("idle engine has %d pipes", e.Pipes().Live())
	}

	// Idle frames do nothing
	y := e.Bird().Y
	for i := 0; i < 100; i++ {
		e.Advance(core.FrameMs)
	}
	if e.Bird().Y != y {
		t.Error("bird moved while idle")
	}
}

func TestEngineCommandsByState(t *testing.T) {
	e := mustEngine(t, config.DefaultFlappyConfig(), Options{})

	type step struct {
		cmd  Command
		want bool
		then RunState
	}
	steps := []step{
		{CommandJump, false, StateIdle},
		{CommandRestart, false, StateIdle},
		{CommandPause, false, StateIdle},
		{CommandResume, false, StateIdle},
		{CommandTogglePause, false, StateIdle},
		{CommandStart, true, StateActive},
		{CommandStart, false, StateActive},
		{CommandRestart, false, StateActive},
		{CommandResume, false, StateActive},
		{CommandJump, true, StateActive},
		{CommandPause, true, StateSuspended},
		{CommandJump, false, StateSuspended},
		{CommandPause, false, StateSuspended},
		{CommandStart, false, StateSuspended},
		{CommandResume, true, StateActive},
		{CommandTogglePause, true, StateSuspended},
		{CommandTogglePause, true, StateActive},
	}

	for i, s := range steps {
		if got := e.Apply(s.cmd); got != s.want {
			t.Errorf("step %d: Apply(%v) = %v, expected %v", i, s.cmd, got, s.want)
		}
		if e.State() != s.then {
			t.Errorf("step %d: state %v, expected %v", i, e.State(), s.then)
		}
	}
}

func TestEngineStartSetsUpRun(t *testing.T) {
	audio := &recordingAudio{}
	e := mustEngine(t, config.DefaultFlappyConfig(), Options{Audio: audio})

	e.Start()

	if e.Pipes().Live() != 1 {
		t.Errorf("expected the first pipe on start, live=%d", e.Pipes().Live())
	}
	if x := e.Pipes().Pipes()[0].X(); x != 850 {
		t.Errorf("first pipe at %f, expected 850", x)
	}
	if audio.count(core.SoundRunStarted) != 1 {
		t.Errorf("expected one run-started sound, got %v", audio.played)
	}
}

func TestEngineGroundCrash(t *testing.T) {
	audio := &recordingAudio{}
	scores := &memoryScores{high: 3}
	e := mustEngine(t, config.DefaultFlappyConfig(), Options{Audio: audio, Scores: scores})
	e.Start()

	crashedAt := -1
	for i := 0; i < 200; i++ {
		if out := e.Advance(core.FrameMs); out.Crashed {
			crashedAt = i
			break
		}
	}

	if crashedAt < 0 {
		t.Fatal("falling bird never crashed")
	}
	if e.State() != StateTerminal {
		t.Errorf("State() = %v, expected Terminal", e.State())
	}
	if !HitGround(e.Bird().Box(), e.Config().GroundY()) {
		t.Error("crash should have been on the ground")
	}
	if audio.count(core.SoundCrashed) != 1 {
		t.Errorf("expected one crash sound, got %v", audio.played)
	}
	if len(scores.offers) != 1 || scores.offers[0] != 0 {
		t.Errorf("expected a single offer of 0, got %v", scores.offers)
	}
	if e.HighScore() != 3 {
		t.Errorf("HighScore() = %d, expected 3", e.HighScore())
	}

	// Terminal frames change nothing
	y := e.Bird().Y
	if out := e.Advance(core.FrameMs); out.Crashed || out.Scored {
		t.Error("terminal frame reported events")
	}
	if e.Bird().Y != y {
		t.Error("bird moved after the crash")
	}
}

func TestEngineCeilingIsNotFatal(t *testing.T) {
	e := mustEngine(t, config.DefaultFlappyConfig(), Options{})
	e.Start()

	// Flap every frame: the bird pins itself to the top clamp
	for i := 0; i < 120; i++ {
		e.Jump()
		if out := e.Advance(core.FrameMs); out.Crashed {
			t.Fatalf("frame %d: ceiling contact ended the run", i)
		}
	}
	if e.Bird().Y != e.Bird().TopBound() {
		t.Errorf("bird y = %f, expected top clamp %f", e.Bird().Y, e.Bird().TopBound())
	}
}

func TestEngineScoresThroughGaps(t *testing.T) {
	audio := &recordingAudio{}
	scores := &memoryScores{}
	e := mustEngine(t, fixedConfig(), Options{Audio: audio, Scores: scores})
	e.Start()

	if ran := fly(e, 2000); ran != 2000 {
		t.Fatalf("autopilot crashed on frame %d with score %d", ran, e.Score())
	}
	if e.Score() < 10 {
		t.Errorf("Score() = %d, expected at least 10 after 2000 frames", e.Score())
	}
	if audio.count(core.SoundScored) != e.Score() {
		t.Errorf("%d score sounds for score %d", audio.count(core.SoundScored), e.Score())
	}

	// Every passed pipe scored exactly once
	passed := 0
	for _, p := range e.Pipes().Pipes() {
		if p.Passed {
			passed++
			if p.Right() >= e.Bird().X+e.Bird().Width {
				t.Errorf("pipe at %f marked passed before the bird cleared it", p.X())
			}
		}
	}
	if passed > e.Score() {
		t.Errorf("%d live pipes passed but score is %d", passed, e.Score())
	}
}

func TestEnginePipeCrash(t *testing.T) {
	scores := &memoryScores{}
	e := mustEngine(t, fixedConfig(), Options{Scores: scores})
	e.Start()

	// Hold the bird high so it meets the top segment of the first pipe
	pilot := Autopilot{Slack: 0}
	crashedAt := -1
	for i := 0; i < 1000; i++ {
		s := e.Snapshot()
		s.Pipes = nil
		s.CeilingY, s.GroundY = 40, 160 // Target a center of 100
		if pilot.ShouldJump(s) {
			e.Jump()
		}
		if out := e.Advance(core.FrameMs); out.Crashed {
			crashedAt = i
			break
		}
	}

	if crashedAt < 0 {
		t.Fatal("bird never hit the pipe")
	}
	if HitGround(e.Bird().Box(), e.Config().GroundY()) {
		t.Error("crash should have been on a pipe, not the ground")
	}
	if !e.Pipes().Collides(e.Bird().Hitbox()) {
		t.Error("crash frame should show the hitbox overlapping a pipe")
	}
	if e.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", e.Score())
	}
}

func TestEngineHighScoreOffer(t *testing.T) {
	scores := &memoryScores{high: 2}
	e := mustEngine(t, fixedConfig(), Options{Scores: scores})
	e.Start()
	fly(e, 1000)

	// Drop into the ground to end the run with a real score
	for e.State() == StateActive {
		e.Advance(core.FrameMs)
	}

	got := e.Score()
	if got <= 2 {
		t.Fatalf("expected a score above 2, got %d", got)
	}
	if len(scores.offers) != 1 || scores.offers[0] != got {
		t.Errorf("offers = %v, expected [%d]", scores.offers, got)
	}
	if e.HighScore() != got || scores.high != got {
		t.Errorf("high score engine=%d store=%d, expected %d", e.HighScore(), scores.high, got)
	}
}

func TestEngineRestartIsIdempotent(t *testing.T) {
	e := mustEngine(t, fixedConfig(), Options{})
	e.Start()
	fly(e, 600)
	for e.State() == StateActive {
		e.Advance(core.FrameMs)
	}

	if !e.Restart() {
		t.Fatal("Restart() from Terminal should apply")
	}
	if e.Restart() {
		t.Error("second Restart() should be ignored while active")
	}

	b := e.Bird()
	if e.Score() != 0 {
		t.Errorf("Score() = %d after restart", e.Score())
	}
	if e.Pipes().Live() != 1 {
		t.Errorf("live pipes = %d after restart, expected 1", e.Pipes().Live())
	}
	if b.X != 320 || b.Y != 90 || b.Velocity != 0 || b.Rotation != 0 {
		t.Errorf("bird pose after restart = (%f, %f, v=%f, r=%f)", b.X, b.Y, b.Velocity, b.Rotation)
	}
	if e.State() != StateActive {
		t.Errorf("State() = %v, expected Active", e.State())
	}
}

func TestEnginePauseFreezes(t *testing.T) {
	e := mustEngine(t, config.DefaultFlappyConfig(), Options{})
	e.Start()
	e.Advance(core.FrameMs)
	e.Pause()

	y := e.Bird().Y
	x := e.Pipes().Pipes()[0].X()
	for i := 0; i < 300; i++ {
		if out := e.Tick(core.FrameMs); out.Crashed || out.Scored {
			t.Fatal("suspended engine reported events")
		}
	}
	if e.Bird().Y != y || e.Pipes().Pipes()[0].X() != x {
		t.Error("world moved while suspended")
	}

	e.Resume()
	e.Advance(core.FrameMs)
	if e.Bird().Y == y {
		t.Error("world did not move after resume")
	}
}

func TestCommandQueueDrainIsDetached(t *testing.T) {
	var q CommandQueue
	q.Push(CommandStart)
	q.Push(CommandJump)

	drained := q.Drain()
	for range drained {
		// Pushing while the drained batch is processed must not clobber it
		q.Push(CommandPause)
	}

	if len(drained) != 2 || drained[0] != CommandStart || drained[1] != CommandJump {
		t.Errorf("drained batch changed to %v", drained)
	}
	next := q.Drain()
	if len(next) != 2 || next[0] != CommandPause || next[1] != CommandPause {
		t.Errorf("second batch %v, expected two pauses", next)
	}
	if rest := q.Drain(); len(rest) != 0 {
		t.Errorf("queue not empty after drain: %v", rest)
	}
}

func TestEngineTickDrainsInputAndRenders(t *testing.T) {
	queue := &CommandQueue{}
	renderer := &countingRenderer{}
	e := mustEngine(t, config.DefaultFlappyConfig(), Options{Input: queue, Renderer: renderer})

	queue.Push(CommandStart)
	queue.Push(CommandJump)
	e.Tick(core.FrameMs)

	if e.State() != StateActive {
		t.Fatalf("State() = %v, expected Active", e.State())
	}
	if e.Bird().Velocity >= 0 {
		t.Errorf("queued jump not applied, velocity %f", e.Bird().Velocity)
	}
	if renderer.frames != 1 || renderer.last.State != StateActive {
		t.Errorf("renderer frames=%d state=%v", renderer.frames, renderer.last.State)
	}
	if len(queue.Drain()) != 0 {
		t.Error("queue not drained by Tick")
	}
}

func TestEngineTickClampsStalls(t *testing.T) {
	a := mustEngine(t, config.DefaultFlappyConfig(), Options{Seed: 1})
	b := mustEngine(t, config.DefaultFlappyConfig(), Options{Seed: 1})
	a.Start()
	b.Start()

	a.Tick(5000)
	b.Advance(core.FrameMs)

	if a.Bird().Y != b.Bird().Y || a.Pipes().Pipes()[0].X() != b.Pipes().Pipes()[0].X() {
		t.Error("a stalled tick should advance exactly one nominal frame")
	}
}

func TestEngineDeterminism(t *testing.T) {
	run := func() []Snapshot {
		e, err := NewEngine(config.DefaultFlappyConfig(), Options{Seed: 12345})
		if err != nil {
			t.Fatal(err)
		}
		e.Start()

		rng := rand.New(rand.NewSource(99))
		pilot := Autopilot{Slack: 10}
		var frames []Snapshot
		for i := 0; i < 1500 && e.State() == StateActive; i++ {
			if pilot.ShouldJump(e.Snapshot()) {
				e.Jump()
			}
			e.Tick(8 + rng.Float64()*20)
			s := e.Snapshot()
			s.Pipes = append([]Pipe(nil), s.Pipes...)
			frames = append(frames, s)
		}
		return frames
	}

	first := run()
	second := run()

	if len(first) != len(second) {
		t.Fatalf("runs lasted %d and %d frames", len(first), len(second))
	}
	for i := range first {
		a, b := first[i], second[i]
		if a.Bird != b.Bird || a.Score != b.Score || a.State != b.State || len(a.Pipes) != len(b.Pipes) {
			t.Fatalf("frame %d differs: %+v vs %+v", i, a, b)
		}
		for j := range a.Pipes {
			if a.Pipes[j] != b.Pipes[j] {
				t.Fatalf("frame %d pipe %d differs", i, j)
			}
		}
	}
}

func TestChaseEngineCatchesBird(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	config.EnableChase(&cfg)
	audio := &recordingAudio{}
	e := mustEngine(t, cfg, Options{Audio: audio})
	e.Start()

	c := e.Chaser()
	if c == nil {
		t.Fatal("chase mode should have a chaser")
	}

	// Park the chaser on its settled point next to the bird
	b := e.Bird()
	c.X = b.X - cfg.Chaser.TrailDistance
	c.Y = b.Y + b.Height/2 - c.Height/2

	out := e.Advance(core.FrameMs)
	if !out.Crashed || e.State() != StateTerminal {
		t.Fatalf("chaser overlap should end the run, outcome %+v state %v", out, e.State())
	}
	if audio.count(core.SoundCrashed) != 1 {
		t.Errorf("expected one crash sound, got %v", audio.played)
	}
}

func TestClassicEngineHasNoChaser(t *testing.T) {
	e := mustEngine(t, config.DefaultFlappyConfig(), Options{})
	if e.Chaser() != nil {
		t.Error("classic mode should not build a chaser")
	}
	if e.Snapshot().ChaserActive {
		t.Error("classic snapshot reports an active chaser")
	}
}
