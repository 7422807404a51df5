package core

// Color is a foreground color for a screen cell.
type Color uint8

// Terminal palette.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray

	colorCount
)

// Roles of the play field. Renderers draw with these, not raw palette entries.
const (
	ColorBird    = ColorBrightYellow
	ColorBeak    = ColorOrange
	ColorCrash   = ColorBrightRed
	ColorPipe    = ColorGreen
	ColorPipeCap = ColorBrightGreen
	ColorBrick   = ColorRed
	ColorMortar  = ColorGray
	ColorChaser  = ColorBrightMagenta
	ColorHUD     = ColorBrightWhite
	ColorTitle   = ColorBrightYellow
)

// ANSI 256-color codes; the first fifteen match the classic 16-color set.
var ansiCodes = [colorCount]string{
	ColorRed:           "1",
	ColorGreen:         "2",
	ColorYellow:        "3",
	ColorBlue:          "4",
	ColorMagenta:       "5",
	ColorCyan:          "6",
	ColorWhite:         "7",
	ColorBrightRed:     "9",
	ColorBrightGreen:   "10",
	ColorBrightYellow:  "11",
	ColorBrightBlue:    "12",
	ColorBrightMagenta: "13",
	ColorBrightCyan:    "14",
	ColorBrightWhite:   "15",
	ColorOrange:        "208",
	ColorGray:          "245",
}

// ANSI returns the terminal color code, or "" for the terminal default.
func (c Color) ANSI() string {
	if c >= colorCount {
		return ""
	}
	return ansiCodes[c]
}

// Palette lists every color that has a terminal code.
func Palette() []Color {
	out := make([]Color, 0, colorCount)
	for c := ColorDefault + 1; c < colorCount; c++ {
		out = append(out, c)
	}
	return out
}
