package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	var f InputFrame
	if !f.Empty() || f.Has(ActionJump) {
		t.Fatal("zero frame should be empty")
	}

	f.Set(ActionJump)
	f.Set(ActionJump)
	f.Set(ActionPause)
	if !f.Has(ActionJump) || !f.Has(ActionPause) {
		t.Error("set actions missing")
	}
	if f.Has(ActionRestart) {
		t.Error("unset action reported")
	}
	if got := f.String(); got != "Jump|Pause" {
		t.Errorf("String() = %q, expected Jump|Pause", got)
	}

	f.Clear()
	if !f.Empty() || f.String() != "None" {
		t.Errorf("cleared frame = %q", f.String())
	}
}

func TestInputFrameIgnoresNoneAndUnknown(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionNone)
	f.Set(Action(200))
	if !f.Empty() {
		t.Error("none/unknown actions should not mark the frame")
	}
	if f.Has(Action(200)) {
		t.Error("unknown action reported")
	}
}

func TestInputFrameIsAValue(t *testing.T) {
	a := NewInputFrame()
	b := a
	b.Set(ActionJump)
	if a.Has(ActionJump) {
		t.Error("copies should not share actions")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:    "None",
		ActionJump:    "Jump",
		ActionRestart: "Restart",
		Action(99):    "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", a, got, want)
		}
	}
}

func TestPalette(t *testing.T) {
	p := Palette()
	if len(p) != int(colorCount)-1 {
		t.Fatalf("palette has %d colors, expected %d", len(p), colorCount-1)
	}
	for _, c := range p {
		if c.ANSI() == "" {
			t.Errorf("color %d has no code", c)
		}
	}
	if ColorDefault.ANSI() != "" || Color(250).ANSI() != "" {
		t.Error("default and out-of-range colors should have no code")
	}
	if ColorOrange.ANSI() != "208" {
		t.Errorf("orange = %q", ColorOrange.ANSI())
	}
}
