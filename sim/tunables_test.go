package sim

import "testing"

// TestAdjustClampsAtZero verifies decrements clamp at zero and
// increments are unbounded.
func TestAdjustClampsAtZero(t *testing.T) {
	var tun Tunables

	if got := tun.AdjustCohesion(-3); got != 0 {
		t.Errorf("cohesion after -3 = %d, want 0", got)
	}
	if got := tun.AdjustCohesion(2); got != 2 {
		t.Errorf("cohesion after +2 = %d, want 2", got)
	}
	if got := tun.AdjustCohesion(-5); got != 0 {
		t.Errorf("cohesion after -5 = %d, want 0", got)
	}
	if got := tun.AdjustAlignment(1); got != 1 {
		t.Errorf("alignment after +1 = %d, want 1", got)
	}
	if got := tun.AdjustAlignment(-2); got != 0 {
		t.Errorf("alignment after -2 = %d, want 0", got)
	}
	if got := tun.AdjustSeparation(1000000); got != 1000000 {
		t.Errorf("separation after large increment = %d, want 1000000", got)
	}
	if got := tun.AdjustSeparation(-1); got != 999999 {
		t.Errorf("separation after -1 = %d, want 999999", got)
	}
}

// TestSimulationAdjusters verifies the simulation-level adjusters
// mutate the shared tunables.
func TestSimulationAdjusters(t *testing.T) {
	s := makeSim(t, testConfig())

	s.AdjustCohesion(4)
	s.AdjustAlignment(2)
	s.AdjustSeparation(-9)

	got := s.Tunables()
	want := Tunables{Cohesion: 4, Alignment: 2, Separation: 0}
	if got != want {
		t.Errorf("tunables = %+v, want %+v", got, want)
	}
}
