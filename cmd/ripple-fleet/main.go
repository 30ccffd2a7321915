package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ripple-fleet/audio"
	"github.com/lixenwraith/ripple-fleet/config"
	"github.com/lixenwraith/ripple-fleet/engine"
	"github.com/lixenwraith/ripple-fleet/events"
	"github.com/lixenwraith/ripple-fleet/render"
	"github.com/lixenwraith/ripple-fleet/sim"
)

var (
	configFlag  = flag.String("config", "", "Path to TOML config file")
	debugFlag   = flag.Bool("debug", false, "Enable file logging under logs/")
	muteFlag    = flag.Bool("mute", false, "Start with spawn tones muted")
	variantFlag = flag.String("variant", "", "Flocking variant: literal or corrected")
	shipsFlag   = flag.Int("ships", 0, "Override ship count")
	seedFlag    = flag.Int64("seed", 0, "Population seed (0 seeds from the clock)")
)

// brushKeys maps the color selection keys to the spawn brush.
var brushKeys = map[rune]sim.ColorTag{
	'w': sim.White,
	'r': sim.Red,
	'y': sim.Yellow,
	'g': sim.Green,
	'c': sim.Cyan,
	'b': sim.Blue,
	'm': sim.Magenta,
	'n': sim.Invisible,
}

// app owns the shell state around the simulation: the screen, the
// renderer, the event queue into the scheduler, and the operator
// toggles that never reach the sim.
type app struct {
	screen    tcell.Screen
	renderer  *render.Renderer
	queue     *events.Queue
	scheduler *engine.Scheduler
	sound     *audio.SoundManager

	frameReady chan struct{}
	updateDone <-chan struct{}
	frameTick  time.Duration

	isPaused    *atomic.Bool
	brush       sim.ColorTag
	muted       bool
	lastButtons tcell.ButtonMask

	// Tick rate sampling for the status bar
	lastTicks  uint64
	lastSample time.Time
	tps        float64
}

func main() {
	// Panic recovery: restore the terminal before reporting the crash
	defer func() {
		if r := recover(); r != nil {
			engine.HandleCrash(r)
		}
	}()

	flag.Parse()

	conf, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ripple-fleet: %v\n", err)
		os.Exit(1)
	}

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	simCfg, err := conf.SimConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ripple-fleet: %v\n", err)
		os.Exit(1)
	}

	seed := conf.Simulation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	simulation, err := sim.New(simCfg, rand.New(rand.NewSource(seed)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ripple-fleet: %v\n", err)
		os.Exit(1)
	}
	log.Printf("starting: %d ships, variant %s, seed %d", simCfg.ShipCount, simCfg.Variant, seed)

	// Initial multipliers; the sim starts everything at zero
	simulation.AdjustCohesion(conf.Simulation.Cohesion)
	simulation.AdjustAlignment(conf.Simulation.Alignment)
	simulation.AdjustSeparation(conf.Simulation.Separation)

	sound := audio.NewSoundManager(conf.Audio.Volume)
	if conf.Audio.Enabled {
		if err := sound.Initialize(); err != nil {
			fmt.Printf("Audio initialization failed: %v (continuing without audio)\n", err)
		} else {
			defer sound.Cleanup()
		}
	}
	muted := *muteFlag
	if muted {
		sound.ToggleMute()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	// Crash cleanup for engine goroutines: restore the terminal before
	// the stack trace prints
	engine.SetCrashCleanup(func() {
		screen.Fini()
	})

	renderer := render.New(screen)
	simulation.SetBounds(renderer.Bounds())

	// Frame synchronization channel, primed so the scheduler can take
	// the first tick without waiting on the renderer
	frameReady := make(chan struct{}, 1)
	frameReady <- struct{}{}

	isPaused := &atomic.Bool{}
	queue := events.NewQueue()
	scheduler, updateDone := engine.NewScheduler(simulation, queue, isPaused, conf.TickInterval(), frameReady)
	scheduler.Start()
	defer scheduler.Stop()

	a := &app{
		screen:     screen,
		renderer:   renderer,
		queue:      queue,
		scheduler:  scheduler,
		sound:      sound,
		frameReady: frameReady,
		updateDone: updateDone,
		frameTick:  conf.FrameInterval(),
		isPaused:   isPaused,
		brush:      sim.White,
		muted:      muted,
		lastSample: time.Now(),
	}
	a.run()
}

// loadConfig resolves the run configuration: the config file when one
// is named, then the command-line overrides, then validation.
func loadConfig() (*config.Config, error) {
	conf := config.DefaultConfig()
	if *configFlag != "" {
		parsed, err := config.ParseConfig(*configFlag)
		if err != nil {
			return nil, err
		}
		conf = parsed
	}

	if *variantFlag != "" {
		conf.Simulation.Variant = *variantFlag
	}
	if *shipsFlag != 0 {
		conf.Simulation.Ships = *shipsFlag
	}
	if *seedFlag != 0 {
		conf.Simulation.Seed = *seedFlag
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// run is the main frame loop: terminal events on one channel, the frame
// ticker on the other.
func (a *app) run() {
	frameTicker := time.NewTicker(a.frameTick)
	defer frameTicker.Stop()

	eventChan := make(chan tcell.Event, 256)
	// Input polling uses its own goroutine as it blocks on the terminal
	engine.Go(func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return // Screen finalized
			}
			eventChan <- ev
		}
	})

	var updatePending bool

	for {
		select {
		case ev := <-eventChan:
			if !a.handleInput(ev) {
				return
			}

		case <-frameTicker.C:
			a.sampleTickRate()

			// Check if a simulation update completed since last frame
			select {
			case <-a.updateDone:
				updatePending = false
			default:
				updatePending = true
			}

			a.renderer.Draw(a.scheduler.Latest(), render.Status{
				Brush:  a.brush,
				Paused: a.isPaused.Load(),
				Muted:  a.muted,
				TPS:    a.tps,
			})

			// Signal ready for the next update (non-blocking)
			if !updatePending && !a.isPaused.Load() {
				select {
				case a.frameReady <- struct{}{}:
				default:
					// Channel full, skip signal
				}
			}
		}
	}
}

// handleInput dispatches one terminal event. Returns false to quit.
func (a *app) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)

	case *tcell.EventMouse:
		buttons := ev.Buttons()
		if buttons&tcell.Button1 != 0 && a.lastButtons&tcell.Button1 == 0 {
			a.spawnAt(ev.Position())
		}
		a.lastButtons = buttons

	case *tcell.EventResize:
		halfW, halfH := a.renderer.Resize(ev.Size())
		a.queue.Push(events.Event{
			Type:      events.EventBoundsResize,
			Payload:   &events.BoundsResizePayload{HalfW: halfW, HalfH: halfH},
			Timestamp: time.Now(),
		})
		a.screen.Sync()
	}
	return true
}

func (a *app) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
		return a.handleRune(ev.Rune())
	}
	return true
}

// handleRune applies the keyboard map: brush colors, multiplier
// adjustments, and the shell toggles.
func (a *app) handleRune(r rune) bool {
	if color, ok := brushKeys[r]; ok {
		a.brush = color
		return true
	}

	switch r {
	case 'q':
		return false
	case 'k':
		a.pushTune(events.TuneCohesion, -1)
	case 'K':
		a.pushTune(events.TuneCohesion, +1)
	case 'a':
		a.pushTune(events.TuneAlignment, -1)
	case 'A':
		a.pushTune(events.TuneAlignment, +1)
	case 's':
		a.pushTune(events.TuneSeparation, -1)
	case 'S':
		a.pushTune(events.TuneSeparation, +1)
	case 'v':
		a.queue.Push(events.Event{Type: events.EventVariantToggle, Timestamp: time.Now()})
	case 'p', ' ':
		a.isPaused.Store(!a.isPaused.Load())
	case 'u':
		a.muted = a.sound.ToggleMute()
	}
	return true
}

// spawnAt converts a screen click into a domain spawn event.
func (a *app) spawnAt(col, row int) {
	pos, ok := a.renderer.CellToDomain(col, row)
	if !ok {
		return
	}
	a.queue.Push(events.Event{
		Type:      events.EventRippleSpawn,
		Payload:   &events.RippleSpawnPayload{Pos: pos, Color: a.brush},
		Timestamp: time.Now(),
	})
	a.sound.PlaySpawn(a.brush)
}

func (a *app) pushTune(param events.TuneParam, delta int) {
	a.queue.Push(events.Event{
		Type:      events.EventTuneAdjust,
		Payload:   &events.TuneAdjustPayload{Param: param, Delta: delta},
		Timestamp: time.Now(),
	})
}

// sampleTickRate refreshes the ticks-per-second estimate about once a
// second.
func (a *app) sampleTickRate() {
	now := time.Now()
	elapsed := now.Sub(a.lastSample)
	if elapsed < time.Second {
		return
	}
	ticks := a.scheduler.TickCount()
	a.tps = float64(ticks-a.lastTicks) / elapsed.Seconds()
	a.lastTicks = ticks
	a.lastSample = now
}
