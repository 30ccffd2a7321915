package engine

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lixenwraith/ripple-fleet/events"
	"github.com/lixenwraith/ripple-fleet/sim"
	"github.com/lixenwraith/ripple-fleet/vmath"
)

// newTestSim builds an empty-population simulation for scheduler tests.
func newTestSim(t *testing.T) *sim.Simulation {
	t.Helper()
	cfg := sim.DefaultConfig()
	cfg.ShipCount = 0
	s, err := sim.New(cfg, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("sim.New: %v", err)
	}
	return s
}

// pumpFrames keeps frameReady fed until stop closes, standing in for
// the render loop.
func pumpFrames(frameReady chan<- struct{}, stop <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(5 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				select {
				case frameReady <- struct{}{}:
				default:
				}
			}
		}
	}()
}

// waitUntil polls cond until it holds or the deadline passes.
func waitUntil(t *testing.T, timeout time.Duration, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out: %s", msg)
}

// TestSchedulerCreation verifies a snapshot is available before the
// first tick.
func TestSchedulerCreation(t *testing.T) {
	var paused atomic.Bool
	frameReady := make(chan struct{}, 1)
	sc, updateDone := NewScheduler(newTestSim(t), events.NewQueue(), &paused, 20*time.Millisecond, frameReady)

	if updateDone == nil {
		t.Fatal("updateDone channel is nil")
	}
	snap := sc.Latest()
	if snap == nil {
		t.Fatal("Latest() = nil before start")
	}
	if snap.Tick != 0 {
		t.Errorf("initial snapshot tick = %d, want 0", snap.Tick)
	}
	if sc.TickCount() != 0 {
		t.Errorf("tick count = %d before start, want 0", sc.TickCount())
	}
}

// TestSchedulerTicking verifies the tick rate stays near the configured
// interval while frames are ready.
func TestSchedulerTicking(t *testing.T) {
	var paused atomic.Bool
	frameReady := make(chan struct{}, 1)
	stop := make(chan struct{})
	defer close(stop)
	pumpFrames(frameReady, stop)

	sc, _ := NewScheduler(newTestSim(t), events.NewQueue(), &paused, 50*time.Millisecond, frameReady)
	sc.Start()
	defer sc.Stop()

	time.Sleep(550 * time.Millisecond)

	tickCount := sc.TickCount()
	if tickCount < 8 {
		t.Errorf("tick count = %d after 550ms, expected at least 8", tickCount)
	}
	if tickCount > 14 {
		t.Errorf("tick count = %d after 550ms, expected at most 14", tickCount)
	}
	if snap := sc.Latest(); snap.Tick == 0 {
		t.Error("snapshot tick still 0 after ticking")
	}
}

// TestSchedulerThrottlesWithoutFrames verifies the frameReady gate: with
// no renderer consuming snapshots, ticking falls back to the stall
// timeout rate instead of the configured interval.
func TestSchedulerThrottlesWithoutFrames(t *testing.T) {
	var paused atomic.Bool
	frameReady := make(chan struct{}, 1)

	sc, _ := NewScheduler(newTestSim(t), events.NewQueue(), &paused, 50*time.Millisecond, frameReady)
	sc.Start()
	defer sc.Stop()

	time.Sleep(550 * time.Millisecond)

	// Each tick now waits out the 2x interval timeout, so the rate is
	// roughly halved against the fed case.
	tickCount := sc.TickCount()
	if tickCount < 2 {
		t.Errorf("tick count = %d after 550ms, expected at least 2", tickCount)
	}
	if tickCount > 8 {
		t.Errorf("tick count = %d after 550ms, expected throttling below 8", tickCount)
	}
}

// TestSchedulerStopIdempotent verifies repeated Stop calls are safe and
// freeze the tick count.
func TestSchedulerStopIdempotent(t *testing.T) {
	var paused atomic.Bool
	frameReady := make(chan struct{}, 1)
	stop := make(chan struct{})
	defer close(stop)
	pumpFrames(frameReady, stop)

	sc, _ := NewScheduler(newTestSim(t), events.NewQueue(), &paused, 20*time.Millisecond, frameReady)
	sc.Start()

	waitUntil(t, 2*time.Second, func() bool { return sc.TickCount() >= 1 }, "first tick")

	sc.Stop()
	sc.Stop()
	sc.Stop()

	initial := sc.TickCount()
	time.Sleep(100 * time.Millisecond)
	if final := sc.TickCount(); final != initial {
		t.Errorf("tick count advanced after stop: %d -> %d", initial, final)
	}
}

// TestSchedulerAppliesEvents verifies queued control events reach the
// simulation in FIFO order before the tick runs.
func TestSchedulerAppliesEvents(t *testing.T) {
	var paused atomic.Bool
	frameReady := make(chan struct{}, 1)
	stop := make(chan struct{})
	defer close(stop)
	pumpFrames(frameReady, stop)

	queue := events.NewQueue()
	queue.Push(events.Event{Type: events.EventRippleSpawn, Payload: &events.RippleSpawnPayload{
		Pos:   vmath.Vec2{X: 0.1, Y: 0.2},
		Color: sim.Cyan,
	}})
	queue.Push(events.Event{Type: events.EventTuneAdjust, Payload: &events.TuneAdjustPayload{
		Param: events.TuneCohesion,
		Delta: 5,
	}})
	queue.Push(events.Event{Type: events.EventBoundsResize, Payload: &events.BoundsResizePayload{
		HalfW: 2,
		HalfH: 1.5,
	}})
	queue.Push(events.Event{Type: events.EventVariantToggle})

	sc, _ := NewScheduler(newTestSim(t), queue, &paused, 20*time.Millisecond, frameReady)
	sc.Start()
	defer sc.Stop()

	waitUntil(t, 2*time.Second, func() bool { return sc.TickCount() >= 1 }, "first tick")

	snap := sc.Latest()
	if len(snap.Ripples) != 1 {
		t.Fatalf("ripple count = %d, want 1", len(snap.Ripples))
	}
	if rip := snap.Ripples[0]; rip.Color != sim.Cyan || rip.Pos.X != 0.1 {
		t.Errorf("ripple = %+v, want Cyan at x=0.1", rip)
	}
	if snap.Tunables.Cohesion != 5 {
		t.Errorf("cohesion = %d, want 5", snap.Tunables.Cohesion)
	}
	if snap.HalfWidth != 2 || snap.HalfHeight != 1.5 {
		t.Errorf("bounds = %gx%g, want 2x1.5", snap.HalfWidth, snap.HalfHeight)
	}
	if snap.Variant != sim.FlockCorrected {
		t.Errorf("variant = %v, want corrected after toggle", snap.Variant)
	}
}

// TestSchedulerPauseGatesTicks verifies a paused scheduler applies
// control events but never ticks, and resumes cleanly.
func TestSchedulerPauseGatesTicks(t *testing.T) {
	var paused atomic.Bool
	paused.Store(true)

	frameReady := make(chan struct{}, 1)
	stop := make(chan struct{})
	defer close(stop)
	pumpFrames(frameReady, stop)

	queue := events.NewQueue()
	sc, _ := NewScheduler(newTestSim(t), queue, &paused, 20*time.Millisecond, frameReady)
	sc.Start()
	defer sc.Stop()

	queue.Push(events.Event{Type: events.EventTuneAdjust, Payload: &events.TuneAdjustPayload{
		Param: events.TuneAlignment,
		Delta: 2,
	}})

	waitUntil(t, 2*time.Second, func() bool { return sc.Latest().Tunables.Alignment == 2 }, "event applied while paused")

	if sc.TickCount() != 0 {
		t.Errorf("tick count = %d while paused, want 0", sc.TickCount())
	}
	if snap := sc.Latest(); snap.Tick != 0 {
		t.Errorf("snapshot tick = %d while paused, want 0", snap.Tick)
	}

	paused.Store(false)
	waitUntil(t, 2*time.Second, func() bool { return sc.TickCount() >= 1 }, "tick after unpause")
}

// TestGoRunsFunction verifies the crash-wrapped goroutine launcher
// actually runs its function.
func TestGoRunsFunction(t *testing.T) {
	var wg sync.WaitGroup
	var ran atomic.Bool
	wg.Add(1)
	Go(func() {
		ran.Store(true)
		wg.Done()
	})
	wg.Wait()
	if !ran.Load() {
		t.Error("function did not run")
	}
}
