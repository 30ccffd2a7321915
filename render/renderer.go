package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ripple-fleet/parameter"
	"github.com/lixenwraith/ripple-fleet/sim"
	"github.com/lixenwraith/ripple-fleet/vmath"
)

// Status carries the shell-owned indicator state a snapshot doesn't
// know: the spawn brush, pause and mute flags, and the measured tick
// rate.
type Status struct {
	Brush  sim.ColorTag
	Paused bool
	Muted  bool
	TPS    float64
}

// Renderer draws simulation snapshots onto a tcell screen. The bottom
// row is reserved for the status bar; everything above it is the field.
type Renderer struct {
	screen tcell.Screen
	width  int
	height int
	proj   Projection
}

// New creates a renderer sized to the screen.
func New(screen tcell.Screen) *Renderer {
	r := &Renderer{screen: screen}
	w, h := screen.Size()
	r.Resize(w, h)
	return r
}

// Resize refits the projection to the new screen size and returns the
// domain half-extents the simulation bounds should follow.
func (r *Renderer) Resize(width, height int) (halfW, halfH float64) {
	r.width = width
	r.height = height

	fieldRows := height - 1 // bottom row is the status bar
	if fieldRows < 1 {
		fieldRows = 1
	}
	r.proj = FitProjection(width, fieldRows)
	return r.proj.HalfW, r.proj.HalfH
}

// Bounds returns the current domain half-extents.
func (r *Renderer) Bounds() (halfW, halfH float64) {
	return r.proj.HalfW, r.proj.HalfH
}

// CellToDomain maps a clicked cell to domain coordinates. The second
// return is false on the status row or off the field.
func (r *Renderer) CellToDomain(col, row int) (vmath.Vec2, bool) {
	if !r.proj.Contains(col, row) {
		return vmath.Vec2{}, false
	}
	return r.proj.CellToDomain(col, row), true
}

// Draw renders one frame: ripples under ships, then the status bar and,
// when paused, the overlay.
func (r *Renderer) Draw(snap *sim.Snapshot, st Status) {
	r.screen.Clear()

	for _, rip := range snap.Ripples {
		r.drawRipple(rip, snap.MaxRadius)
	}
	for _, shp := range snap.Ships {
		r.drawShip(shp, snap.HeadingLength)
	}

	r.drawStatusBar(snap, st)

	if st.Paused {
		r.drawPauseOverlay()
	}

	r.screen.Show()
}

// drawRipple plots the ripple's circle as an angle-stepped polyline.
// Young ripples draw bright and heavy; intensity fades linearly as the
// radius approaches expiry.
func (r *Renderer) drawRipple(rip sim.RippleView, maxRadius float64) {
	if rip.Color == sim.Invisible {
		return
	}

	intensity := (maxRadius - rip.Radius) / maxRadius
	if intensity < 0 {
		intensity = 0
	}

	glyph := rippleGlyph(intensity)
	style := tcell.StyleDefault.Foreground(paletteColor(rip.Color, intensity))

	prevX, prevY := r.proj.DomainToCell(vmath.Vec2{X: rip.Pos.X + rip.Radius, Y: rip.Pos.Y})
	for k := 1; k <= parameter.RippleSegments; k++ {
		theta := 2 * math.Pi * float64(k) / float64(parameter.RippleSegments)
		x, y := r.proj.DomainToCell(vmath.Vec2{
			X: rip.Pos.X + rip.Radius*math.Cos(theta),
			Y: rip.Pos.Y + rip.Radius*math.Sin(theta),
		})
		r.plotSegment(prevX, prevY, x, y, glyph, style)
		prevX, prevY = x, y
	}
}

// rippleGlyph picks the shade glyph for a ring's draw thickness.
func rippleGlyph(intensity float64) rune {
	thickness := intensity * parameter.RippleThicknessGain
	switch {
	case thickness >= parameter.RippleThicknessHeavy:
		return '█'
	case thickness >= parameter.RippleThicknessMedium:
		return '▓'
	default:
		return '░'
	}
}

// plotSegment fills the cells along a straight segment by stepping a
// progress fraction, one step per cell of Chebyshev distance.
func (r *Renderer) plotSegment(fromX, fromY, toX, toY int, glyph rune, style tcell.Style) {
	steps := absInt(toX - fromX)
	if d := absInt(toY - fromY); d > steps {
		steps = d
	}
	if steps == 0 {
		r.setCell(fromX, fromY, glyph, style)
		return
	}

	dx := float64(toX - fromX)
	dy := float64(toY - fromY)
	for i := 0; i <= steps; i++ {
		progress := float64(i) / float64(steps)
		x := fromX + int(dx*progress)
		y := fromY + int(dy*progress)
		r.setCell(x, y, glyph, style)
	}
}

// drawShip draws the body cell and, when it lands in a different cell,
// a dim tick one cell toward the heading.
func (r *Renderer) drawShip(shp sim.ShipView, headingLength float64) {
	col, row := r.proj.DomainToCell(shp.Pos)
	r.setCell(col, row, '•', tcell.StyleDefault.Foreground(paletteColor(shp.Color, 1.0)))

	if headingLength <= 0 {
		return
	}
	tickCol := col + int(math.Round(shp.Heading.X/headingLength))
	tickRow := row - int(math.Round(shp.Heading.Y/headingLength))
	if tickCol == col && tickRow == row {
		return
	}
	r.setCell(tickCol, tickRow, '·', tcell.StyleDefault.Foreground(paletteColor(shp.Color, 0.5)))
}

// setCell writes one cell if it lies on the field.
func (r *Renderer) setCell(col, row int, glyph rune, style tcell.Style) {
	if !r.proj.Contains(col, row) {
		return
	}
	r.screen.SetContent(col, row, glyph, nil, style)
}

// drawStatusBar draws the status bar on the bottom row.
func (r *Renderer) drawStatusBar(snap *sim.Snapshot, st Status) {
	statusY := r.height - 1
	defaultStyle := tcell.StyleDefault

	// Clear status bar
	for x := 0; x < r.width; x++ {
		r.screen.SetContent(x, statusY, ' ', nil, defaultStyle)
	}

	// Draw variant badge
	variantText := fmt.Sprintf(" %s ", strings.ToUpper(snap.Variant.String()))
	variantStyle := defaultStyle.Foreground(RgbStatusText).Background(RgbVariantBg)
	for i, ch := range variantText {
		if i < r.width {
			r.screen.SetContent(i, statusY, ch, nil, variantStyle)
		}
	}

	// Draw spawn brush in its own color
	startX := len(variantText) + 1
	brushText := fmt.Sprintf("brush:%s", st.Brush.String())
	brushStyle := defaultStyle.Foreground(RgbStatusDim)
	if st.Brush != sim.Invisible {
		brushStyle = defaultStyle.Foreground(paletteColor(st.Brush, 1.0))
	}
	for i, ch := range brushText {
		if startX+i < r.width {
			r.screen.SetContent(startX+i, statusY, ch, nil, brushStyle)
		}
	}
	startX += len(brushText) + 2

	// Draw flocking multipliers
	tuneText := fmt.Sprintf("C:%d A:%d S:%d", snap.Tunables.Cohesion, snap.Tunables.Alignment, snap.Tunables.Separation)
	tuneStyle := defaultStyle.Foreground(RgbStatusText)
	for i, ch := range tuneText {
		if startX+i < r.width {
			r.screen.SetContent(startX+i, statusY, ch, nil, tuneStyle)
		}
	}

	// Calculate positions and draw counters + badges from the right
	countText := fmt.Sprintf(" Ships: %d  Ripples: %d  Tick: %d  %.1f t/s ", len(snap.Ships), len(snap.Ripples), snap.Tick, st.TPS)
	var pausedText, mutedText string
	if st.Paused {
		pausedText = " PAUSED "
	}
	if st.Muted {
		mutedText = " MUTE "
	}

	rightX := r.width - len(countText) - len(pausedText) - len(mutedText)
	if rightX < 0 {
		rightX = 0
	}

	countStyle := defaultStyle.Foreground(RgbStatusDim)
	for i, ch := range countText {
		if rightX+i < r.width {
			r.screen.SetContent(rightX+i, statusY, ch, nil, countStyle)
		}
	}
	rightX += len(countText)

	if st.Paused {
		pausedStyle := defaultStyle.Foreground(tcell.ColorBlack).Background(RgbPausedBg)
		for i, ch := range pausedText {
			if rightX+i < r.width {
				r.screen.SetContent(rightX+i, statusY, ch, nil, pausedStyle)
			}
		}
		rightX += len(pausedText)
	}

	if st.Muted {
		mutedStyle := defaultStyle.Foreground(RgbStatusText).Background(RgbMutedBg)
		for i, ch := range mutedText {
			if rightX+i < r.width {
				r.screen.SetContent(rightX+i, statusY, ch, nil, mutedStyle)
			}
		}
	}
}

// drawPauseOverlay prints a centered PAUSED marker over the field.
func (r *Renderer) drawPauseOverlay() {
	const label = " PAUSED "
	row := r.proj.Rows / 2
	startX := (r.width - len(label)) / 2
	if startX < 0 {
		startX = 0
	}
	style := tcell.StyleDefault.Foreground(RgbPauseOverlay).Reverse(true)
	for i, ch := range label {
		if startX+i < r.width {
			r.screen.SetContent(startX+i, row, ch, nil, style)
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
