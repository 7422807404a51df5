// Package loop drives a game without a terminal.
// It is used by the simulate command and by tests that need wall-clock ticking.
package loop

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/vovakirdan/skybrick/internal/core"
)

// ErrStopped is returned by Run after Stop.
var ErrStopped = errors.New("loop: stopped")

// Stepper advances a simulation by one frame.
type Stepper interface {
	Step(in core.InputFrame, elapsedMs float64) core.StepResult
}

// InputFunc produces the input for the next frame.
type InputFunc func(frame int) core.InputFrame

// FrameFunc observes each frame's result. Returning false ends Run.
type FrameFunc func(frame int, res core.StepResult) bool

// Options configures a Loop.
type Options struct {
	FPS      int       // Frames per second; defaults to 60
	Realtime bool      // Sleep between frames and feed measured elapsed time
	MaxFrame int       // Stop after this many frames; 0 means unbounded
	Input    InputFunc // Nil means no input
	OnFrame  FrameFunc // Nil means run until stopped
	Now      func() time.Time
}

// Loop ticks a Stepper at a fixed rate on the caller's goroutine.
type Loop struct {
	game   Stepper
	opts   Options
	clock  core.FrameClock
	frames int

	stop     chan struct{}
	stopOnce sync.Once
}

// New creates a loop for game.
func New(game Stepper, opts Options) *Loop {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Loop{
		game: game,
		opts: opts,
		stop: make(chan struct{}),
	}
}

// Interval returns the wall time between frames.
func (l *Loop) Interval() time.Duration {
	return time.Second / time.Duration(l.opts.FPS)
}

// FrameMs returns the simulated frame length used when not realtime.
func (l *Loop) FrameMs() float64 {
	return 1000 / float64(l.opts.FPS)
}

// Frames returns how many frames have been stepped.
func (l *Loop) Frames() int {
	return l.frames
}

// Stop ends Run. Safe to call more than once and from any goroutine.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stop)
	})
}

// Run steps frames until the frame limit, OnFrame returning false,
// Stop, or ctx cancellation. The first two return nil.
func (l *Loop) Run(ctx context.Context) error {
	if !l.opts.Realtime {
		return l.runFast(ctx)
	}

	ticker := time.NewTicker(l.Interval())
	defer ticker.Stop()

	l.clock.Reset()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.stop:
			return ErrStopped
		case <-ticker.C:
			if !l.step(l.clock.Tick(l.opts.Now())) {
				return nil
			}
		}
	}
}

// runFast steps back to back with a constant frame length.
func (l *Loop) runFast(ctx context.Context) error {
	elapsed := l.FrameMs()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.stop:
			return ErrStopped
		default:
		}
		if !l.step(elapsed) {
			return nil
		}
	}
}

// step runs one frame and reports whether to continue.
func (l *Loop) step(elapsedMs float64) bool {
	in := core.NewInputFrame()
	if l.opts.Input != nil {
		in = l.opts.Input(l.frames)
	}

	res := l.game.Step(in, elapsedMs)
	frame := l.frames
	l.frames++

	if l.opts.OnFrame != nil && !l.opts.OnFrame(frame, res) {
		return false
	}
	return l.opts.MaxFrame == 0 || l.frames < l.opts.MaxFrame
}
