package flappy

import (
	"fmt"

	"github.com/vovakirdan/skybrick/internal/config"
	"github.com/vovakirdan/skybrick/internal/core"
)

// RunState is the lifecycle state of the engine.
type RunState int

const (
	StateIdle      RunState = iota // Title screen, waiting for the first start
	StateActive                    // A run is in progress
	StateSuspended                 // A run is paused
	StateTerminal                  // The run ended in a crash
)

// String returns a human-readable name for the state.
func (s RunState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateActive:
		return "Active"
	case StateSuspended:
		return "Suspended"
	case StateTerminal:
		return "Terminal"
	default:
		return "Unknown"
	}
}

// Options wires the engine to its collaborators. Nil fields are no-ops.
type Options struct {
	Seed     int64
	Renderer Renderer
	Audio    AudioSink
	Scores   ScoreStore
	Input    InputSource
}

// Outcome reports the events of a single frame.
type Outcome struct {
	Scored  bool
	Crashed bool
}

// Engine advances one game: bird, pipes, optional chaser, score and state.
// It is not safe for concurrent use.
type Engine struct {
	cfg    config.FlappyConfig
	state  RunState
	bird   *Bird
	pipes  *PipeManager
	chaser *Chaser // nil unless chase mode is enabled

	score     int
	highScore int
	crashed   bool

	renderer Renderer
	audio    AudioSink
	scores   ScoreStore
	input    InputSource

	snapPipes []Pipe
}

// NewEngine validates the configuration and builds an idle engine.
// The high score is read from the store once, here.
func NewEngine(cfg config.FlappyConfig, opts Options) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("flappy: new engine: %w", err)
	}

	e := &Engine{
		cfg:      cfg,
		state:    StateIdle,
		bird:     NewBird(cfg),
		pipes:    NewPipeManager(cfg, opts.Seed),
		renderer: opts.Renderer,
		audio:    opts.Audio,
		scores:   opts.Scores,
		input:    opts.Input,
	}
	if e.renderer == nil {
		e.renderer = nopRenderer{}
	}
	if e.audio == nil {
		e.audio = nopAudio{}
	}
	if e.scores == nil {
		e.scores = nopScores{}
	}
	if e.input == nil {
		e.input = nopInput{}
	}
	if cfg.Chaser.Enabled {
		e.chaser = NewChaser(cfg)
	}

	e.highScore = e.scores.ReadHighScore()
	e.bird.Init(cfg.World.Width, cfg.World.Height)
	if e.chaser != nil {
		e.chaser.Reset(e.bird, cfg.World.Height, cfg.Bounds)
	}
	return e, nil
}

// Start begins the first run from the title screen.
func (e *Engine) Start() bool {
	if e.state != StateIdle {
		return false
	}
	e.beginRun()
	return true
}

// Restart begins a new run after a crash.
func (e *Engine) Restart() bool {
	if e.state != StateTerminal {
		return false
	}
	e.beginRun()
	return true
}

func (e *Engine) beginRun() {
	e.score = 0
	e.crashed = false
	e.bird.Init(e.cfg.World.Width, e.cfg.World.Height)
	e.pipes.Reset()
	e.pipes.Spawn(e.pipes.SpawnX())
	if e.chaser != nil {
		e.chaser.Reset(e.bird, e.cfg.World.Height, e.cfg.Bounds)
	}
	e.state = StateActive
	e.audio.Play(core.SoundRunStarted)
}

// Jump flaps the bird during a run.
func (e *Engine) Jump() bool {
	if e.state != StateActive {
		return false
	}
	e.bird.Jump()
	return true
}

// Pause suspends an active run.
func (e *Engine) Pause() bool {
	if e.state != StateActive {
		return false
	}
	e.state = StateSuspended
	return true
}

// Resume continues a suspended run.
func (e *Engine) Resume() bool {
	if e.state != StateSuspended {
		return false
	}
	e.state = StateActive
	return true
}

// TogglePause pauses an active run or resumes a suspended one.
func (e *Engine) TogglePause() bool {
	if e.state == StateSuspended {
		return e.Resume()
	}
	return e.Pause()
}

// Apply executes a command and reports whether it changed anything.
func (e *Engine) Apply(c Command) bool {
	switch c {
	case CommandJump:
		return e.Jump()
	case CommandStart:
		return e.Start()
	case CommandRestart:
		return e.Restart()
	case CommandPause:
		return e.Pause()
	case CommandResume:
		return e.Resume()
	case CommandTogglePause:
		return e.TogglePause()
	default:
		return false
	}
}

// Advance simulates one frame of elapsedMs. Outside an active run it does nothing.
// Callers are expected to pass a normalized sample; Tick does that for them.
func (e *Engine) Advance(elapsedMs float64) Outcome {
	if e.state != StateActive {
		return Outcome{}
	}

	e.bird.Step(elapsedMs)
	e.pipes.Update(elapsedMs)
	if e.chaser != nil {
		e.chaser.Step(elapsedMs, e.bird)
	}

	if HitGround(e.bird.Box(), e.cfg.GroundY()) ||
		e.pipes.Collides(e.bird.Hitbox()) ||
		(e.chaser != nil && e.chaser.Catches(e.bird)) {
		e.crash()
		return Outcome{Crashed: true}
	}

	if e.pipes.CheckPassed(e.bird.X + e.bird.Width) {
		e.score++
		e.audio.Play(core.SoundScored)
		return Outcome{Scored: true}
	}
	return Outcome{}
}

func (e *Engine) crash() {
	e.state = StateTerminal
	e.crashed = true
	e.audio.Play(core.SoundCrashed)
	e.scores.WriteHighScoreIfGreater(e.score)
	if e.score > e.highScore {
		e.highScore = e.score
	}
}

// Tick drains queued commands, advances one normalized frame and pushes a
// snapshot to the renderer.
func (e *Engine) Tick(elapsedMs float64) Outcome {
	for _, c := range e.input.Drain() {
		e.Apply(c)
	}
	out := e.Advance(core.NormalizeElapsed(elapsedMs))
	e.renderer.Render(e.Snapshot())
	return out
}

// State returns the lifecycle state.
func (e *Engine) State() RunState {
	return e.state
}

// Score returns the score of the current or last run.
func (e *Engine) Score() int {
	return e.score
}

// HighScore returns the best score known to the engine.
func (e *Engine) HighScore() int {
	return e.highScore
}

// Bird returns the bird. Callers must not modify it.
func (e *Engine) Bird() *Bird {
	return e.bird
}

// Pipes returns the pipe manager. Callers must not modify it.
func (e *Engine) Pipes() *PipeManager {
	return e.pipes
}

// Chaser returns the chaser, or nil outside chase mode.
func (e *Engine) Chaser() *Chaser {
	return e.chaser
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() config.FlappyConfig {
	return e.cfg
}
