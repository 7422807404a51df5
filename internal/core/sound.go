package core

// SoundEffect names a one-shot sound requested by a game.
type SoundEffect int

const (
	SoundRunStarted SoundEffect = iota // A run began
	SoundScored                        // A point was awarded
	SoundCrashed                       // The run ended
)

// String returns a human-readable name for the effect.
func (s SoundEffect) String() string {
	switch s {
	case SoundRunStarted:
		return "RunStarted"
	case SoundScored:
		return "Scored"
	case SoundCrashed:
		return "Crashed"
	default:
		return "Unknown"
	}
}
