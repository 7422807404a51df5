package flappy

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/skybrick/internal/core"
)

// Visual characters for rendering
const (
	BirdChar      = '█'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	BrickChar     = '▓'
	MortarChar    = '░'
	ChaserChar    = '▒'
	CrashChar     = '✖'
)

// viewport maps world units onto screen cells.
type viewport struct {
	sx, sy float64
}

func newViewport(world core.Box, dst *core.Screen) viewport {
	return viewport{
		sx: float64(dst.Width()) / world.W,
		sy: float64(dst.Height()) / world.H,
	}
}

// rect converts a world box into the cells it touches. Non-empty boxes
// always cover at least one cell.
func (v viewport) rect(b core.Box) core.Rect {
	x0 := int(math.Floor(b.X * v.sx))
	y0 := int(math.Floor(b.Y * v.sy))
	x1 := int(math.Ceil(b.Right() * v.sx))
	y1 := int(math.Ceil(b.Bottom() * v.sy))
	if b.W > 0 && x1 <= x0 {
		x1 = x0 + 1
	}
	if b.H > 0 && y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	s := g.view.last
	v := newViewport(s.World, dst)

	for _, p := range s.Pipes {
		drawPipe(dst, v, p)
	}

	if s.ChaserActive {
		dst.DrawRect(v.rect(s.Chaser), ChaserChar, core.ColorChaser)
	}

	g.drawBird(dst, v, s)
	drawBricks(dst, v, s)
	g.drawHUD(dst, s)

	switch s.State {
	case StateIdle:
		drawCenteredMessage(dst, "S K Y B R I C K", "SPACE, ENTER or click to start")
	case StateSuspended:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case StateTerminal:
		drawCenteredMessage(dst, "GAME OVER  "+g.crashFace,
			fmt.Sprintf("Score: %d  Best: %d  |  Press R to restart", s.Score, s.HighScore))
	}
}

// drawPipe renders both segments of a pipe with caps facing the gap.
func drawPipe(dst *core.Screen, v viewport, p Pipe) {
	top := v.rect(p.Top)
	dst.DrawRect(top, PipeChar, core.ColorPipe)
	if top.H > 0 {
		dst.DrawHLine(top.X, top.Bottom()-1, top.W, PipeCapTop, core.ColorPipeCap)
	}

	bottom := v.rect(p.Bottom)
	dst.DrawRect(bottom, PipeChar, core.ColorPipe)
	if bottom.H > 0 {
		dst.DrawHLine(bottom.X, bottom.Y, bottom.W, PipeCapBottom, core.ColorPipeCap)
	}
}

// drawBird renders the bird, with a nose that follows its tilt.
func (g *Game) drawBird(dst *core.Screen, v viewport, s Snapshot) {
	r := v.rect(s.Bird)

	if s.Crashed {
		dst.DrawRect(r, CrashChar, core.ColorCrash)
		return
	}

	dst.DrawRect(r, BirdChar, core.ColorBird)

	nose := '▶'
	switch {
	case s.BirdRotation < -0.1:
		nose = '▲'
	case s.BirdRotation > 0.3:
		nose = '▼'
	}
	dst.SetColored(r.Right()-1, r.Y, nose, core.ColorBeak)
}

// drawBricks renders the ceiling and ground walls.
func drawBricks(dst *core.Screen, v viewport, s Snapshot) {
	ceilRows := core.Clamp(int(math.Floor(s.CeilingY*v.sy)), 0, dst.Height())
	groundRow := core.Clamp(int(math.Ceil(s.GroundY*v.sy)), ceilRows, dst.Height())

	for y := 0; y < dst.Height(); y++ {
		if y >= ceilRows && y < groundRow {
			continue
		}
		offset := (y % 2) * 2
		for x := 0; x < dst.Width(); x++ {
			if (x+offset)%4 == 3 {
				dst.SetColored(x, y, MortarChar, core.ColorMortar)
			} else {
				dst.SetColored(x, y, BrickChar, core.ColorBrick)
			}
		}
	}
}

// drawHUD renders the score line over the ceiling.
func (g *Game) drawHUD(dst *core.Screen, s Snapshot) {
	hud := fmt.Sprintf(" Score: %d  Best: %d ", s.Score, s.HighScore)
	dst.DrawTextColored(2, 0, hud, core.ColorHUD)

	if s.ChaserActive {
		tag := " CHASE "
		dst.DrawTextColored(dst.Width()-utf8.RuneCountInString(tag)-2, 0, tag, core.ColorChaser)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
// The box shrinks to fit screens narrower or shorter than it.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleLen := utf8.RuneCountInString(title)
	subtitleLen := utf8.RuneCountInString(subtitle)

	boxW := core.Clamp(core.Max(titleLen, subtitleLen)+4, 0, w)
	boxH := core.Clamp(5, 0, h)
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	titleX := core.Clamp(boxX+(boxW-titleLen)/2, boxX+1, box.Right())
	subtitleX := core.Clamp(boxX+(boxW-subtitleLen)/2, boxX+1, box.Right())
	dst.DrawTextColored(titleX, boxY+1, title, core.ColorTitle)
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
