package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ripple-fleet/sim"
)

// RGB color definitions for the status bar and overlays
var (
	RgbStatusText   = tcell.NewRGBColor(220, 220, 220) // Light gray
	RgbStatusDim    = tcell.NewRGBColor(140, 140, 140) // Dim gray
	RgbVariantBg    = tcell.NewRGBColor(60, 60, 120)   // Slate blue badge
	RgbPausedBg     = tcell.NewRGBColor(200, 160, 0)   // Amber badge
	RgbMutedBg      = tcell.NewRGBColor(90, 90, 90)    // Gray badge
	RgbPauseOverlay = tcell.NewRGBColor(255, 255, 255) // White
)

// paletteColor converts a palette tag to a terminal color, scaled by
// intensity in [0,1]. Invisible never reaches here; callers skip it.
func paletteColor(tag sim.ColorTag, intensity float64) tcell.Color {
	cr, cg, cb := tag.RGB()
	return tcell.NewRGBColor(
		scaleChannel(cr, intensity),
		scaleChannel(cg, intensity),
		scaleChannel(cb, intensity),
	)
}

func scaleChannel(c, intensity float64) int32 {
	v := int(c * intensity * 255)
	if v > 255 {
		v = 255
	}
	if v < 0 {
		v = 0
	}
	return int32(v)
}
