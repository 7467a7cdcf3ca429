package server

import (
	"flag"
	"time"

	"lightcast/internal/system"
)

const (
	// DefaultTickInterval is the wall-clock period between world ticks.
	DefaultTickInterval = 250 * time.Millisecond

	// DefaultLanternRadius is the light radius a new lantern bearer carries.
	DefaultLanternRadius = 6

	MinLanternRadius = 1
	MaxLanternRadius = 16

	// TorchRadius is the radius of every torch placed by a layout.
	TorchRadius = 5
)

// Config carries the tunables of a Server.
type Config struct {
	TickInterval  time.Duration
	LanternRadius int
	// Gradient is the initial falloff mode of new lanterns.
	Gradient bool
	Lighting system.LightingConfig
}

// DefaultConfig returns the settings used when no flags are given.
func DefaultConfig() Config {
	return Config{
		TickInterval:  DefaultTickInterval,
		LanternRadius: DefaultLanternRadius,
		Gradient:      true,
	}
}

// RegisterFlags binds the config fields to fs.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.DurationVar(&c.TickInterval, "tick", c.TickInterval, "World tick interval")
	fs.IntVar(&c.LanternRadius, "radius", c.LanternRadius, "Initial lantern radius in tiles")
	fs.BoolVar(&c.Gradient, "gradient", c.Gradient, "Lanterns fade with distance")
	fs.BoolVar(&c.Lighting.Strict, "strict", c.Lighting.Strict, "Panic on out-of-bounds light writes")
	fs.Func("combine", "How overlapping lights merge: max or overwrite (default max)", func(s string) error {
		rule, err := system.ParseCombineRule(s)
		if err != nil {
			return err
		}
		c.Lighting.Combine = rule
		return nil
	})
}

// normalize fills zero fields with defaults and clamps the radius.
func (c Config) normalize() Config {
	if c.TickInterval <= 0 {
		c.TickInterval = DefaultTickInterval
	}
	if c.LanternRadius <= 0 {
		c.LanternRadius = DefaultLanternRadius
	}
	c.LanternRadius = min(max(c.LanternRadius, MinLanternRadius), MaxLanternRadius)
	return c
}
