package audio

import (
	"math"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/ripple-fleet/parameter"
	"github.com/lixenwraith/ripple-fleet/sim"
)

const (
	sampleRate = beep.SampleRate(parameter.AudioSampleRate)
)

// spawnFrequencyHz maps each palette color, plus the invisible brush,
// to its spawn tone pitch.
var spawnFrequencyHz = [...]float64{
	sim.White:     500,
	sim.Red:       1000,
	sim.Yellow:    1500,
	sim.Green:     2000,
	sim.Cyan:      2500,
	sim.Blue:      3000,
	sim.Magenta:   3500,
	sim.Invisible: 5000,
}

// SoundManager plays the spawn tones. Safe to use uninitialized: every
// operation degrades to a no-op until Initialize succeeds.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool
}

// NewSoundManager creates a sound manager with the given tone volume,
// clamped to [0,1].
func NewSoundManager(volume float64) *SoundManager {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.mixer.Clear()
	speaker.Close()
	sm.initialized = false
}

// PlaySpawn plays the short tone for a ripple spawned in the given
// color. Invisible spawns carry the highest pitch.
func (sm *SoundManager) PlaySpawn(color sim.ColorTag) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	if int(color) >= len(spawnFrequencyHz) {
		return
	}

	tone := NewSpawnToneGenerator(sampleRate, spawnFrequencyHz[color], sm.volume)
	speaker.Lock()
	sm.mixer.Add(beep.Take(sampleRate.N(parameter.SpawnToneDuration), tone))
	speaker.Unlock()
}

// ToggleMute flips the mute flag, silencing any tone still sounding,
// and returns the new state.
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	if sm.muted && sm.initialized {
		speaker.Lock()
		sm.mixer.Clear()
		speaker.Unlock()
	}
	return sm.muted
}

// SpawnToneGenerator generates a sine tone with a short attack/release
// envelope so the burst doesn't click.
type SpawnToneGenerator struct {
	sr      beep.SampleRate
	freq    float64
	volume  float64
	pos     int
	attack  int
	release int
	total   int
}

// NewSpawnToneGenerator creates a spawn tone generator
func NewSpawnToneGenerator(sr beep.SampleRate, freq, volume float64) *SpawnToneGenerator {
	return &SpawnToneGenerator{
		sr:      sr,
		freq:    freq,
		volume:  volume,
		attack:  sr.N(parameter.SpawnToneAttack),
		release: sr.N(parameter.SpawnToneRelease),
		total:   sr.N(parameter.SpawnToneDuration),
	}
}

func (g *SpawnToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := 1.0
		if g.pos < g.attack {
			envelope = float64(g.pos) / float64(g.attack)
		} else if rem := g.total - g.pos; rem < g.release {
			if rem < 0 {
				rem = 0
			}
			envelope = float64(rem) / float64(g.release)
		}

		sample := g.volume * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SpawnToneGenerator) Err() error {
	return nil
}
