package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/skybrick/internal/core"
)

// Wave selects an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Effect timings.
const (
	startNoteDuration = 60 * time.Millisecond
	scoreDuration     = 100 * time.Millisecond
	crashDuration     = 300 * time.Millisecond
	attack            = 5 * time.Millisecond
)

type oscillator struct {
	freq     float64
	phase    float64
	position int
	duration int
	wave     Wave
	rate     beep.SampleRate
	noise    *rand.Rand
}

// NewOscillator returns a finite streamer producing duration worth of samples.
func NewOscillator(freq float64, duration time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    rand.New(rand.NewSource(int64(freq) + 1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (int, bool) {
	if o.position >= o.duration {
		return 0, false
	}
	for i := range samples {
		if o.position >= o.duration {
			return i, true
		}

		var v float64
		switch o.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2 * (o.phase - 0.5)
		case WaveNoise:
			v = o.noise.Float64()*2 - 1
		}
		samples[i][0] = v
		samples[i][1] = v

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a streamer in over attack and out over release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope applies a linear attack/release envelope to s.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att, rel := rate.N(attack), rate.N(release)
	if att+rel > total {
		rel = total - att
		if rel < 0 {
			att, rel = total, 0
		}
	}
	return &envelope{streamer: s, attack: att, release: rel, total: total}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		gain := 1.0
		if e.position < e.attack {
			gain = float64(e.position) / float64(e.attack)
		}
		if releaseStart := e.total - e.release; e.release > 0 && e.position >= releaseStart {
			gain = float64(e.total-e.position) / float64(e.release)
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly by vol; zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Build returns the streamer for effect at the given rate and volume.
func Build(effect core.SoundEffect, rate beep.SampleRate, vol float64) beep.Streamer {
	var s beep.Streamer
	switch effect {
	case core.SoundRunStarted:
		s = runStartedSound(rate)
	case core.SoundScored:
		s = scoredSound(rate)
	case core.SoundCrashed:
		s = crashedSound(rate)
	default:
		return nil
	}
	return newVolume(s, vol)
}

// Duration reports how long the streamer built for effect plays.
func Duration(effect core.SoundEffect) time.Duration {
	switch effect {
	case core.SoundRunStarted:
		return 2 * startNoteDuration
	case core.SoundScored:
		return scoreDuration
	case core.SoundCrashed:
		return crashDuration
	default:
		return 0
	}
}

// runStartedSound is a rising two-note chirp.
func runStartedSound(rate beep.SampleRate) beep.Streamer {
	note := func(freq float64) beep.Streamer {
		osc := NewOscillator(freq, startNoteDuration, WaveSquare, rate)
		return NewEnvelope(osc, startNoteDuration, attack, 20*time.Millisecond, rate)
	}
	return beep.Seq(note(523.25), note(783.99))
}

// scoredSound is a short square-wave blip at A5.
func scoredSound(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(880, scoreDuration, WaveSquare, rate)
	return NewEnvelope(osc, scoreDuration, attack, 40*time.Millisecond, rate)
}

// crashedSound mixes a noise burst with a low saw thud.
func crashedSound(rate beep.SampleRate) beep.Streamer {
	noise := NewEnvelope(NewOscillator(0, crashDuration, WaveNoise, rate), crashDuration, attack, 250*time.Millisecond, rate)
	thud := NewEnvelope(NewOscillator(70, crashDuration, WaveSaw, rate), crashDuration, attack, 200*time.Millisecond, rate)
	return beep.Take(rate.N(crashDuration), beep.Mix(newVolume(noise, 0.6), newVolume(thud, 0.4)))
}
