// Package config loads the TOML run configuration. File values override
// defaults per key; an absent key keeps its default.
package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/ripple-fleet/parameter"
	"github.com/lixenwraith/ripple-fleet/sim"
)

// Config holds the parameters of one run.
type Config struct {
	Simulation SimulationConfig `toml:"simulation"`
	Display    DisplayConfig    `toml:"display"`
	Audio      AudioConfig      `toml:"audio"`
}

// SimulationConfig tunes the particle simulation.
type SimulationConfig struct {
	Ships   int    `toml:"ships"`
	Variant string `toml:"variant"` // literal or corrected
	Seed    int64  `toml:"seed"`    // 0 seeds from the clock
	TickMs  int    `toml:"tick_ms"`

	// Initial flocking multipliers
	Cohesion   int `toml:"cohesion"`
	Alignment  int `toml:"alignment"`
	Separation int `toml:"separation"`

	// Physics overrides
	SpeedMin        float64 `toml:"speed_min"`
	SpeedMax        float64 `toml:"speed_max"`
	RippleIncrement float64 `toml:"ripple_increment"`
	RippleMaxRadius float64 `toml:"ripple_max_radius"`
}

// DisplayConfig tunes the terminal frontend.
type DisplayConfig struct {
	FrameMs int `toml:"frame_ms"`
}

// AudioConfig tunes the spawn tones.
type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

// DefaultConfig returns the built-in run parameters.
func DefaultConfig() *Config {
	return &Config{
		Simulation: SimulationConfig{
			Ships:           parameter.ShipCount,
			Variant:         sim.FlockLiteral.String(),
			TickMs:          int(parameter.TickInterval / time.Millisecond),
			SpeedMin:        parameter.ShipSpeedMin,
			SpeedMax:        parameter.ShipSpeedMax,
			RippleIncrement: parameter.RippleRadiusIncrement,
			RippleMaxRadius: parameter.RippleMaxRadius,
		},
		Display: DisplayConfig{
			FrameMs: int(parameter.FrameUpdateInterval / time.Millisecond),
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  parameter.SpawnToneVolume,
		},
	}
}

// ParseConfig parses the TOML config file whose path is provided. The
// file overwrites default parameters key by key.
func ParseConfig(path string) (*Config, error) {
	conf := DefaultConfig()
	if _, err := toml.DecodeFile(path, conf); err != nil {
		return nil, fmt.Errorf("config parse: %w", err)
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// Validate rejects configurations the application cannot run on.
func (c *Config) Validate() error {
	if c.Simulation.Ships <= 0 {
		return fmt.Errorf("config: ships must be positive, got %d", c.Simulation.Ships)
	}
	if _, err := ParseVariant(c.Simulation.Variant); err != nil {
		return err
	}
	if c.Simulation.TickMs <= 0 {
		return fmt.Errorf("config: tick_ms must be positive, got %d", c.Simulation.TickMs)
	}
	if c.Simulation.Cohesion < 0 || c.Simulation.Alignment < 0 || c.Simulation.Separation < 0 {
		return fmt.Errorf("config: flocking multipliers must be non-negative, got %d/%d/%d",
			c.Simulation.Cohesion, c.Simulation.Alignment, c.Simulation.Separation)
	}
	if c.Simulation.SpeedMin <= 0 || c.Simulation.SpeedMax < c.Simulation.SpeedMin {
		return fmt.Errorf("config: speed range [%g, %g] invalid", c.Simulation.SpeedMin, c.Simulation.SpeedMax)
	}
	if c.Simulation.RippleIncrement <= 0 {
		return fmt.Errorf("config: ripple_increment must be positive, got %g", c.Simulation.RippleIncrement)
	}
	if c.Simulation.RippleMaxRadius <= 0 {
		return fmt.Errorf("config: ripple_max_radius must be positive, got %g", c.Simulation.RippleMaxRadius)
	}
	if c.Display.FrameMs <= 0 {
		return fmt.Errorf("config: frame_ms must be positive, got %d", c.Display.FrameMs)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("config: volume must be in [0,1], got %g", c.Audio.Volume)
	}
	return nil
}

// ParseVariant resolves a flocking variant name.
func ParseVariant(name string) (sim.FlockVariant, error) {
	switch name {
	case "literal":
		return sim.FlockLiteral, nil
	case "corrected":
		return sim.FlockCorrected, nil
	}
	return 0, fmt.Errorf("config: unknown variant %q (want literal or corrected)", name)
}

// SimConfig builds the simulation core config this run describes.
func (c *Config) SimConfig() (sim.Config, error) {
	variant, err := ParseVariant(c.Simulation.Variant)
	if err != nil {
		return sim.Config{}, err
	}

	sc := sim.DefaultConfig()
	sc.ShipCount = c.Simulation.Ships
	sc.SpeedMin = c.Simulation.SpeedMin
	sc.SpeedMax = c.Simulation.SpeedMax
	sc.RippleIncrement = c.Simulation.RippleIncrement
	sc.RippleMaxRadius = c.Simulation.RippleMaxRadius
	sc.Variant = variant
	return sc, nil
}

// TickInterval returns the simulation tick interval.
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.Simulation.TickMs) * time.Millisecond
}

// FrameInterval returns the render frame interval.
func (c *Config) FrameInterval() time.Duration {
	return time.Duration(c.Display.FrameMs) * time.Millisecond
}
