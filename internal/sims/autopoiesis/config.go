package autopoiesis

import "strconv"

// Params holds the reaction tunables.
type Params struct {
	// DecayRate is the chance a selected link disintegrates.
	DecayRate float64
	// Catalysts is the number of catalysts seeded at construction.
	Catalysts int
	// BondNeighborhood selects where bonding partners are searched.
	BondNeighborhood Connectivity
	// StepsPerFrame is how many updates the Sim adapter runs per Step.
	StepsPerFrame int
	// Checks re-validates every invariant around each update and panics on
	// the first violation. Meant for tests and debugging runs.
	Checks bool
}

// Config controls the seed region and the reaction parameters.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  250,
		Height: 250,
		Seed:   1337,
		Params: Params{
			DecayRate:        0.01,
			Catalysts:        2,
			BondNeighborhood: Conn8,
			StepsPerFrame:    100,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Values that fail to parse or fall out of range are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["decay_rate"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.DecayRate = parsed
		}
	}
	if v, ok := cfg["catalysts"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.Catalysts = parsed
		}
	}
	if c.Params.Catalysts > c.Width*c.Height {
		c.Params.Catalysts = c.Width * c.Height
	}
	if v, ok := cfg["bond_neighborhood"]; ok {
		switch v {
		case "4":
			c.Params.BondNeighborhood = Conn4
		case "8":
			c.Params.BondNeighborhood = Conn8
		}
	}
	if v, ok := cfg["steps_per_frame"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.StepsPerFrame = parsed
		}
	}
	if v, ok := cfg["checks"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Params.Checks = parsed
		}
	}
	return c
}
