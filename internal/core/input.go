package core

import "strings"

// Action is a player intent, decoupled from the key or button that produced it.
type Action uint8

const (
	ActionNone    Action = iota
	ActionJump           // Space, W, Up, mouse click - flap, or start a run from the title
	ActionConfirm        // Enter - start a run or pick a menu entry
	ActionBack           // B - return to the menu
	ActionRestart        // R - restart after a crash
	ActionQuit           // Q, Ctrl+C - leave the game
	ActionPause          // P, Escape - toggle pause

	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:    "None",
	ActionJump:    "Jump",
	ActionConfirm: "Confirm",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is the set of actions triggered during one frame.
// The zero value is an empty frame; repeating an action within a frame
// has no extra effect.
type InputFrame struct {
	mask uint16
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks a as triggered. ActionNone and unknown actions are ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	f.mask |= 1 << a
}

// Has reports whether a was triggered.
func (f InputFrame) Has(a Action) bool {
	if a >= actionCount {
		return false
	}
	return f.mask&(1<<a) != 0
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return f.mask == 0
}

// Clear empties the frame for the next tick.
func (f *InputFrame) Clear() {
	f.mask = 0
}

// String lists the triggered actions, e.g. "Jump|Pause".
func (f InputFrame) String() string {
	if f.Empty() {
		return "None"
	}
	var names []string
	for a := ActionJump; a < actionCount; a++ {
		if f.Has(a) {
			names = append(names, a.String())
		}
	}
	return strings.Join(names, "|")
}
