package sim

import (
	"github.com/lixenwraith/ripple-fleet/vmath"
)

// The ship pipeline. Every pass walks the full ship ring with the
// rebuild idiom (remove head, mutate the copy, re-insert at the new
// head, rotate) and the full ripple ring read-only (peek, rotate), so
// each pass sees the output of the previous one and every ship/ripple
// pair is examined exactly once per pass.

// translateAndReflect applies the per-ship velocity increment, then
// clamps and reflects on the domain boundary, both axes, same tick.
func (s *Simulation) translateAndReflect() {
	n := s.ships.Len()
	for i := 0; i < n; i++ {
		shp := s.ships.PeekHead()
		s.ships.RemoveHead()

		shp.Pos = shp.Pos.Add(shp.Vel)
		shp.Pos.X, shp.Vel.X, _ = vmath.ReflectAxis(shp.Pos.X, shp.Vel.X, s.cfg.HalfWidth, s.cfg.ShipRadius, s.cfg.BoundsScale)
		shp.Pos.Y, shp.Vel.Y, _ = vmath.ReflectAxis(shp.Pos.Y, shp.Vel.Y, s.cfg.HalfHeight, s.cfg.ShipRadius, s.cfg.BoundsScale)

		s.ships.InsertAtHead(shp)
		s.ships.Rotate()
	}
}

// displaceShips pushes each ship radially away from every overlapping
// ripple whose color matches (Invisible matches all). The push scales
// with the ripple's remaining life and lands on both heading and
// position; pushes apply sequentially, so a later ripple in the walk
// sees the position already moved by an earlier one.
func (s *Simulation) displaceShips() {
	n := s.ships.Len()
	for i := 0; i < n; i++ {
		shp := s.ships.PeekHead()
		s.ships.RemoveHead()

		m := s.ripples.Len()
		for j := 0; j < m; j++ {
			rip := s.ripples.PeekHead()
			if (rip.Color == Invisible || rip.Color == shp.Color) &&
				vmath.WithinRadius(rip.Pos, shp.Pos, rip.Radius) {
				push := shp.Pos.Sub(rip.Pos).Scale(s.intensity(rip.Radius))
				shp.Heading = shp.Heading.Add(push)
				shp.Pos = shp.Pos.Add(push)
			}
			s.ripples.Rotate()
		}

		shp.Heading = vmath.NormalizeToLength(shp.Heading, s.cfg.HeadingLength)
		s.ships.InsertAtHead(shp)
		s.ships.Rotate()
	}
}

// cohesionPass pulls overlapped ships toward a running positional
// average scaled by the cohesion multiplier. Overlap is spatial only;
// color does not gate the flocking passes.
//
// The literal variant keeps one sum and one tally for the whole pass:
// the tally counts every (ship, ripple) pair examined, overlapping or
// not, and the sum carries across ships, so the divisor depends on
// ripple count even when nothing overlaps. Kept for parity with the
// historical engine. The corrected variant keeps per-ship sums and
// counts only overlapping pairs, leaving non-overlapped ships
// untouched.
func (s *Simulation) cohesionPass() {
	mult := float64(s.tun.Cohesion)

	var sumX, sumY float64
	tally := 0

	n := s.ships.Len()
	for i := 0; i < n; i++ {
		shp := s.ships.PeekHead()
		s.ships.RemoveHead()

		if s.cfg.Variant == FlockCorrected {
			sumX, sumY = 0, 0
			tally = 0
		}

		m := s.ripples.Len()
		for j := 0; j < m; j++ {
			rip := s.ripples.PeekHead()
			if s.cfg.Variant == FlockLiteral {
				tally++
			}
			if vmath.WithinRadius(rip.Pos, shp.Pos, rip.Radius) {
				if s.cfg.Variant == FlockCorrected {
					tally++
				}
				sumX += shp.Pos.X
				sumY += shp.Pos.Y
				shp.Pos.X = (sumX / float64(tally)) * mult
				shp.Pos.Y = (sumY / float64(tally)) * mult
			}
			s.ripples.Rotate()
		}

		shp.Heading = vmath.NormalizeToLength(shp.Heading, s.cfg.HeadingLength)
		s.ships.InsertAtHead(shp)
		s.ships.Rotate()
	}
}

// alignmentPass has the cohesion pass's shape but accumulates headings
// into the running sums; the averaged heading, scaled by the alignment
// multiplier, is written to the ship's position. Same literal/corrected
// tally split as cohesionPass.
func (s *Simulation) alignmentPass() {
	mult := float64(s.tun.Alignment)

	var sumX, sumY float64
	tally := 0

	n := s.ships.Len()
	for i := 0; i < n; i++ {
		shp := s.ships.PeekHead()
		s.ships.RemoveHead()

		if s.cfg.Variant == FlockCorrected {
			sumX, sumY = 0, 0
			tally = 0
		}

		m := s.ripples.Len()
		for j := 0; j < m; j++ {
			rip := s.ripples.PeekHead()
			if s.cfg.Variant == FlockLiteral {
				tally++
			}
			if vmath.WithinRadius(rip.Pos, shp.Pos, rip.Radius) {
				if s.cfg.Variant == FlockCorrected {
					tally++
				}
				sumX += shp.Heading.X
				sumY += shp.Heading.Y
				shp.Pos.X = (sumX / float64(tally)) * mult
				shp.Pos.Y = (sumY / float64(tally)) * mult
			}
			s.ripples.Rotate()
		}

		shp.Heading = vmath.NormalizeToLength(shp.Heading, s.cfg.HeadingLength)
		s.ships.InsertAtHead(shp)
		s.ships.Rotate()
	}
}

// separationPass rescales an overlapped ship's position by the
// separation multiplier, once per overlapping ripple. The last
// overlapping ripple examined wins; the min naming of the historical
// engine suggested a nearest-neighbor search that was never performed,
// and the retained behavior is the shipped one.
func (s *Simulation) separationPass() {
	mult := float64(s.tun.Separation)

	var minX, minY float64

	n := s.ships.Len()
	for i := 0; i < n; i++ {
		shp := s.ships.PeekHead()
		s.ships.RemoveHead()

		m := s.ripples.Len()
		for j := 0; j < m; j++ {
			rip := s.ripples.PeekHead()
			if vmath.WithinRadius(rip.Pos, shp.Pos, rip.Radius) {
				minX = shp.Pos.X
				minY = shp.Pos.Y
				shp.Pos.X = minX * mult
				shp.Pos.Y = minY * mult
			}
			s.ripples.Rotate()
		}

		shp.Heading = vmath.NormalizeToLength(shp.Heading, s.cfg.HeadingLength)
		s.ships.InsertAtHead(shp)
		s.ships.Rotate()
	}
}
