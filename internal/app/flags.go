package app

import (
	"flag"
	"fmt"
	"sort"
	"strings"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim      string
	Scale    int
	TPS      int
	Seed     int64
	HUDWidth int

	// Options is passed to the sim factory as its configuration map.
	Options map[string]string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "autopoiesis", Scale: 3, TPS: 30, HUDWidth: 260, Options: map[string]string{}}
}

// Bind attaches the configuration to the provided FlagSet. Sim options are
// given as repeated -set key=value pairs.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset (0 keeps the sim default)")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the parameter panel in pixels; 0 hides it")
	fs.Func("set", "sim option as key=value (repeatable), e.g. -set decay_rate=0.02", c.setOption)
}

func (c *Config) setOption(kv string) error {
	key, value, ok := strings.Cut(kv, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", kv)
	}
	if c.Options == nil {
		c.Options = map[string]string{}
	}
	c.Options[key] = strings.TrimSpace(value)
	return nil
}

// OptionKeys lists the configured sim option keys in sorted order.
func (c *Config) OptionKeys() []string {
	keys := make([]string, 0, len(c.Options))
	for k := range c.Options {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
