package sim

import (
	"math/rand"
	"testing"

	"github.com/lixenwraith/ripple-fleet/parameter"
	"github.com/lixenwraith/ripple-fleet/vmath"
)

// Helper functions for simulation core tests

const testEps = 1e-12

// testConfig returns a config sized for hand-built populations: no
// random ships, unscaled bounds, historical constants otherwise.
func testConfig() Config {
	cfg := DefaultConfig()
	cfg.ShipCount = 0
	cfg.BoundsScale = 1
	return cfg
}

// makeSim builds a simulation from cfg and inserts the given ships so
// that ships[0] sits at the ring head and the walk order matches the
// argument order.
func makeSim(t *testing.T, cfg Config, ships ...Ship) *Simulation {
	t.Helper()
	s, err := New(cfg, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := len(ships) - 1; i >= 0; i-- {
		s.ships.InsertAtHead(ships[i])
	}
	return s
}

// addRipples inserts ripples so that ripples[0] is walked first.
func addRipples(s *Simulation, ripples ...Ripple) {
	for i := len(ripples) - 1; i >= 0; i-- {
		s.ripples.InsertAtHead(ripples[i])
	}
}

// shipAt returns a resting ship: no velocity, heading along +X at the
// fixed length.
func shipAt(x, y float64, color ColorTag) Ship {
	return Ship{
		Pos:     vmath.Vec2{X: x, Y: y},
		Heading: vmath.Vec2{X: parameter.HeadingLength},
		Color:   color,
	}
}

// collectShips walks the ship ring once, head first, and returns the
// elements in walk order.
func collectShips(s *Simulation) []Ship {
	out := make([]Ship, 0, s.ships.Len())
	n := s.ships.Len()
	for i := 0; i < n; i++ {
		out = append(out, s.ships.PeekHead())
		s.ships.Rotate()
	}
	return out
}
