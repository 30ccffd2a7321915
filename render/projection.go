package render

import (
	"math"

	"github.com/lixenwraith/ripple-fleet/parameter"
	"github.com/lixenwraith/ripple-fleet/vmath"
)

// Projection maps domain coordinates onto a grid of terminal cells. The
// domain is centered, y-up; the grid is top-left origin, y-down. A cell
// is assumed CellAspect times as wide as it is tall, so the effective
// grid width is Cols*CellAspect when fitting the aspect ratio.
type Projection struct {
	Cols, Rows int

	// HalfW and HalfH are the domain half-extents the grid spans. The
	// shorter effective axis always spans the nominal domain; the longer
	// one stretches so cells stay square in domain units.
	HalfW, HalfH float64
}

// FitProjection builds the projection for a grid of the given size,
// widening the domain along the longer effective axis.
func FitProjection(cols, rows int) Projection {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	effW := float64(cols) * parameter.CellAspect
	effH := float64(rows)

	halfW := parameter.DomainHalfWidth
	halfH := parameter.DomainHalfHeight
	if effW <= effH {
		halfH = parameter.DomainHalfHeight * effH / effW
	} else {
		halfW = parameter.DomainHalfWidth * effW / effH
	}

	return Projection{Cols: cols, Rows: rows, HalfW: halfW, HalfH: halfH}
}

// DomainToCell maps a domain position to its cell. Positions outside the
// spanned domain map outside [0,Cols)x[0,Rows); callers bounds-check
// before drawing.
func (p Projection) DomainToCell(pos vmath.Vec2) (col, row int) {
	col = int(math.Floor((pos.X + p.HalfW) / (2 * p.HalfW) * float64(p.Cols)))
	row = int(math.Floor((p.HalfH - pos.Y) / (2 * p.HalfH) * float64(p.Rows)))
	return col, row
}

// CellToDomain maps a cell to the domain position of its center, the
// inverse of DomainToCell up to cell resolution.
func (p Projection) CellToDomain(col, row int) vmath.Vec2 {
	return vmath.Vec2{
		X: (float64(col)+0.5)/float64(p.Cols)*(2*p.HalfW) - p.HalfW,
		Y: p.HalfH - (float64(row)+0.5)/float64(p.Rows)*(2*p.HalfH),
	}
}

// Contains reports whether the cell lies on the grid.
func (p Projection) Contains(col, row int) bool {
	return col >= 0 && col < p.Cols && row >= 0 && row < p.Rows
}
