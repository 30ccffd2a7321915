// Package engine drives the simulation on a fixed tick and publishes
// immutable snapshots for the renderer. The scheduler goroutine is the
// only writer of simulation state; input reaches it through the event
// queue and output leaves it through an atomic snapshot pointer.
package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/ripple-fleet/events"
	"github.com/lixenwraith/ripple-fleet/parameter"
	"github.com/lixenwraith/ripple-fleet/sim"
)

// Scheduler runs simulation ticks on a fixed interval
// Handles pause-aware scheduling without busy-wait and stays loosely
// coupled to the render loop through the frameReady/updateDone pair
type Scheduler struct {
	sim   *sim.Simulation
	queue *events.Queue

	isPaused *atomic.Bool

	tickInterval time.Duration

	// Tick counter for debugging and metrics
	tickCount atomic.Uint64

	// Latest published state, read by the render loop
	snapshot atomic.Pointer[sim.Snapshot]

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	// Frame synchronization channels
	frameReady <-chan struct{} // Receive signal that frame is ready
	updateDone chan<- struct{} // Send signal that update is complete
}

// NewScheduler creates a scheduler with the specified tick interval.
// Receives the frameReady sync (receive) channel and returns the
// updateDone (send) channel. A snapshot of the initial state is
// published immediately so Latest never returns nil.
func NewScheduler(
	s *sim.Simulation,
	queue *events.Queue,
	isPaused *atomic.Bool,
	tickInterval time.Duration,
	frameReady <-chan struct{},
) (*Scheduler, <-chan struct{}) {
	updateDone := make(chan struct{}, 1)

	sc := &Scheduler{
		sim:          s,
		queue:        queue,
		isPaused:     isPaused,
		tickInterval: tickInterval,
		frameReady:   frameReady,
		updateDone:   updateDone,
		stopChan:     make(chan struct{}),
	}
	sc.snapshot.Store(s.Snapshot())

	return sc, updateDone
}

// Start begins the scheduler loop
func (sc *Scheduler) Start() {
	if sc.running.CompareAndSwap(false, true) {
		sc.wg.Add(1)
		// Use Go for safe execution with centralized crash handling
		Go(sc.schedulerLoop)
	}
}

// Stop halts the scheduler loop
func (sc *Scheduler) Stop() {
	sc.stopOnce.Do(func() {
		if sc.running.CompareAndSwap(true, false) {
			close(sc.stopChan)
			sc.wg.Wait()
		}
	})
}

// Latest returns the most recently published snapshot
func (sc *Scheduler) Latest() *sim.Snapshot {
	return sc.snapshot.Load()
}

// TickCount returns the number of completed ticks
func (sc *Scheduler) TickCount() uint64 {
	return sc.tickCount.Load()
}

// schedulerLoop runs the main scheduling loop with pause awareness
func (sc *Scheduler) schedulerLoop() {
	defer sc.wg.Done()

	nextTickDeadline := time.Now().Add(sc.tickInterval)

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		select {
		case <-sc.stopChan:
			return
		default:
		}

		var sleepDuration time.Duration

		if sc.isPaused.Load() {
			// Control events stay responsive while paused; republish so
			// the status bar reflects them. Longer sleep saves CPU
			if sc.drainEvents() {
				sc.snapshot.Store(sc.sim.Snapshot())
			}
			sleepDuration = sc.tickInterval * parameter.SchedulerStallFactor
		} else {
			now := time.Now()

			if !now.Before(nextTickDeadline) {
				// Wait for the renderer to consume the last snapshot,
				// bounded so a stalled renderer cannot stop the clock
				select {
				case <-sc.frameReady:
				case <-time.After(sc.tickInterval * parameter.SchedulerStallFactor):
				case <-sc.stopChan:
					return
				}

				sc.processTick()

				nextTickDeadline = nextTickDeadline.Add(sc.tickInterval)

				// Drift correction: re-anchor when too far behind
				maxBehind := sc.tickInterval * parameter.SchedulerStallFactor
				if now.Sub(nextTickDeadline) > maxBehind {
					nextTickDeadline = now.Add(sc.tickInterval)
				}

				sc.tickCount.Add(1)

				select {
				case sc.updateDone <- struct{}{}:
				default:
				}

				sleepDuration = time.Until(nextTickDeadline)
				if sleepDuration < 0 {
					sleepDuration = 0
				}
			} else {
				sleepDuration = nextTickDeadline.Sub(now)
			}
		}

		if sleepDuration > 0 {
			timer.Reset(sleepDuration)
			select {
			case <-timer.C:
			case <-sc.stopChan:
				return
			}
		}
	}
}

// processTick executes one clock cycle
func (sc *Scheduler) processTick() {
	if sc.isPaused.Load() {
		return
	}

	sc.drainEvents()
	sc.sim.Tick()
	sc.snapshot.Store(sc.sim.Snapshot())
}

// drainEvents applies all pending control events and reports whether
// any arrived
func (sc *Scheduler) drainEvents() bool {
	pending := sc.queue.Consume()
	for _, ev := range pending {
		sc.applyEvent(ev)
	}
	return len(pending) > 0
}

func (sc *Scheduler) applyEvent(ev events.Event) {
	switch ev.Type {
	case events.EventRippleSpawn:
		if p, ok := ev.Payload.(*events.RippleSpawnPayload); ok {
			sc.sim.SpawnRipple(p.Pos, p.Color)
		}
	case events.EventTuneAdjust:
		if p, ok := ev.Payload.(*events.TuneAdjustPayload); ok {
			switch p.Param {
			case events.TuneCohesion:
				sc.sim.AdjustCohesion(p.Delta)
			case events.TuneAlignment:
				sc.sim.AdjustAlignment(p.Delta)
			case events.TuneSeparation:
				sc.sim.AdjustSeparation(p.Delta)
			}
		}
	case events.EventBoundsResize:
		if p, ok := ev.Payload.(*events.BoundsResizePayload); ok {
			sc.sim.SetBounds(p.HalfW, p.HalfH)
		}
	case events.EventVariantToggle:
		if sc.sim.Variant() == sim.FlockLiteral {
			sc.sim.SetVariant(sim.FlockCorrected)
		} else {
			sc.sim.SetVariant(sim.FlockLiteral)
		}
	}
}
