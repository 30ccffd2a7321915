package sim

// ColorTag identifies a palette color for ships and ripples. Ships are
// always palette-colored; a ripple may carry the out-of-palette
// Invisible tag, which matches ships of every color and is never drawn.
type ColorTag uint8

const (
	White ColorTag = iota
	Red
	Yellow
	Green
	Cyan
	Blue
	Magenta
	Invisible
)

// PaletteSize is the number of drawable colors (Invisible excluded).
const PaletteSize = 7

var colorNames = [...]string{
	White:     "white",
	Red:       "red",
	Yellow:    "yellow",
	Green:     "green",
	Cyan:      "cyan",
	Blue:      "blue",
	Magenta:   "magenta",
	Invisible: "invisible",
}

func (c ColorTag) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}

// paletteRGB holds the draw color per palette entry, softened on the
// secondary channels so colors stay distinct when intensity-scaled.
var paletteRGB = [PaletteSize][3]float64{
	White:   {1.0, 1.0, 1.0},
	Red:     {1.0, 0.3, 0.3},
	Yellow:  {1.0, 1.0, 0.3},
	Green:   {0.3, 1.0, 0.3},
	Cyan:    {0.3, 1.0, 1.0},
	Blue:    {0.3, 0.3, 1.0},
	Magenta: {1.0, 0.3, 1.0},
}

// RGB returns the draw color components in [0,1]. Invisible has no draw
// color and returns black.
func (c ColorTag) RGB() (r, g, b float64) {
	if c >= PaletteSize {
		return 0, 0, 0
	}
	return paletteRGB[c][0], paletteRGB[c][1], paletteRGB[c][2]
}
