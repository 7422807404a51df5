package core

import "time"

const (
	// FrameMs is the reference frame duration in milliseconds (60 Hz).
	FrameMs = 16.67

	// MaxElapsedMs is the largest elapsed sample accepted as-is.
	// Anything larger (a backgrounded terminal, a debugger pause) is
	// replaced with FrameMs.
	MaxElapsedMs = 100.0
)

// NormalizeElapsed clamps an elapsed-time sample before it reaches the
// simulation. Stalls become a single nominal frame and negative samples
// become zero.
func NormalizeElapsed(ms float64) float64 {
	if ms < 0 {
		return 0
	}
	if ms > MaxElapsedMs {
		return FrameMs
	}
	return ms
}

// FrameMultiplier converts elapsed milliseconds into the dimensionless
// multiplier k used to scale per-frame constants.
func FrameMultiplier(elapsedMs float64) float64 {
	return elapsedMs / FrameMs
}

// FrameClock measures wall time between frames.
type FrameClock struct {
	last time.Time
}

// Tick records now and returns the normalized milliseconds since the
// previous tick. The first tick reports one nominal frame.
func (c *FrameClock) Tick(now time.Time) float64 {
	if c.last.IsZero() {
		c.last = now
		return FrameMs
	}
	elapsed := float64(now.Sub(c.last)) / float64(time.Millisecond)
	c.last = now
	return NormalizeElapsed(elapsed)
}

// Reset forgets the previous tick so the next one reports a nominal frame.
func (c *FrameClock) Reset() {
	c.last = time.Time{}
}
