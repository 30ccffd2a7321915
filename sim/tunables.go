package sim

// Tunables are the three operator-adjustable flocking multipliers.
// Non-negative integers: decrements clamp at zero, increments are
// unbounded.
type Tunables struct {
	Cohesion   int
	Alignment  int
	Separation int
}

func clampZero(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// AdjustCohesion applies delta and returns the new value.
func (t *Tunables) AdjustCohesion(delta int) int {
	t.Cohesion = clampZero(t.Cohesion + delta)
	return t.Cohesion
}

// AdjustAlignment applies delta and returns the new value.
func (t *Tunables) AdjustAlignment(delta int) int {
	t.Alignment = clampZero(t.Alignment + delta)
	return t.Alignment
}

// AdjustSeparation applies delta and returns the new value.
func (t *Tunables) AdjustSeparation(delta int) int {
	t.Separation = clampZero(t.Separation + delta)
	return t.Separation
}
