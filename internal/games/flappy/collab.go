package flappy

import "github.com/vovakirdan/skybrick/internal/core"

// Renderer receives a read-only snapshot after every tick.
type Renderer interface {
	Render(s Snapshot)
}

// AudioSink plays one-shot sound effects. Calls must not block.
type AudioSink interface {
	Play(effect core.SoundEffect)
}

// ScoreStore persists the best score. Read errors should read as 0.
type ScoreStore interface {
	ReadHighScore() int
	WriteHighScoreIfGreater(score int)
}

// InputSource yields the commands queued since the previous tick.
type InputSource interface {
	Drain() []Command
}

// Command is a discrete player request.
type Command int

const (
	CommandJump Command = iota
	CommandStart
	CommandRestart
	CommandPause
	CommandResume
	CommandTogglePause
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandJump:
		return "Jump"
	case CommandStart:
		return "Start"
	case CommandRestart:
		return "Restart"
	case CommandPause:
		return "Pause"
	case CommandResume:
		return "Resume"
	case CommandTogglePause:
		return "TogglePause"
	default:
		return "Unknown"
	}
}

type nopRenderer struct{}

func (nopRenderer) Render(Snapshot) {}

type nopAudio struct{}

func (nopAudio) Play(core.SoundEffect) {}

type nopScores struct{}

func (nopScores) ReadHighScore() int          { return 0 }
func (nopScores) WriteHighScoreIfGreater(int) {}

type nopInput struct{}

func (nopInput) Drain() []Command { return nil }

// CommandQueue is an InputSource fed by the caller.
type CommandQueue struct {
	pending []Command
}

// Push queues a command for the next Drain.
func (q *CommandQueue) Push(c Command) {
	q.pending = append(q.pending, c)
}

// Drain returns the queued commands and empties the queue.
// The caller owns the returned slice; later pushes never write into it.
func (q *CommandQueue) Drain() []Command {
	out := q.pending
	q.pending = nil
	return out
}
