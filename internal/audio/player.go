// Package audio plays the game's one-shot sound effects through the system speaker.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/skybrick/internal/core"
)

// DefaultSampleRate is used when Options leaves SampleRate unset.
const DefaultSampleRate = beep.SampleRate(44100)

// Options configures a Player.
type Options struct {
	SampleRate beep.SampleRate
	Volume     float64 // Linear gain in [0, 1]
	Muted      bool
}

// Player mixes effects into a single speaker stream.
// A Player that failed to open the device, or was muted, drops every effect.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	rate   beep.SampleRate
	volume float64
	ready  bool
	played int
	logger *log.Logger
}

// NewPlayer opens the speaker unless muted. Device errors leave the player silent.
func NewPlayer(opts Options, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.Default()
	}
	if opts.SampleRate <= 0 {
		opts.SampleRate = DefaultSampleRate
	}
	if opts.Volume <= 0 || opts.Volume > 1 {
		opts.Volume = 1
	}

	p := &Player{
		mixer:  &beep.Mixer{},
		rate:   opts.SampleRate,
		volume: opts.Volume,
		logger: logger,
	}
	if opts.Muted {
		logger.Debug("audio muted")
		return p
	}

	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		logger.Warn("audio unavailable, continuing without sound", "err", err)
		return p
	}
	speaker.Play(p.mixer)
	p.ready = true
	return p
}

// Silent returns a player that never touches the audio device.
func Silent() *Player {
	return NewPlayer(Options{Muted: true}, log.Default())
}

// Enabled reports whether effects reach the speaker.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ready
}

// Play queues effect on the mixer and returns immediately.
func (p *Player) Play(effect core.SoundEffect) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	s := Build(effect, p.rate, p.volume)
	if s == nil {
		p.logger.Debug("unknown sound effect", "effect", effect)
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	p.played++
}

// Played counts effects handed to the mixer.
func (p *Player) Played() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played
}

// Close stops pending effects. The player is silent afterwards.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	speaker.Clear()
	p.ready = false
}
