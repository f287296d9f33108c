package main

import (
	"flag"
	"fmt"
	"strconv"
)

// ServerConfig holds the server configuration.
type ServerConfig struct {
	Addr     string
	LogLevel string
	TPS      int
	View     int
	// Sim is handed to autopoiesis.FromMap.
	Sim map[string]string
}

// configResolver resolves a single option from a flag, then an environment
// variable, then a default.
type configResolver struct {
	flagName    string
	envVarName  string
	defaultVal  string
	description string
	setter      func(*ServerConfig, string) error
}

func simOption(key string) func(*ServerConfig, string) error {
	return func(c *ServerConfig, v string) error {
		if v != "" {
			c.Sim[key] = v
		}
		return nil
	}
}

func intOption(name string, dst func(*ServerConfig) *int) func(*ServerConfig, string) error {
	return func(c *ServerConfig, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return fmt.Errorf("invalid %s %q", name, v)
		}
		*dst(c) = n
		return nil
	}
}

func resolvers() []configResolver {
	return []configResolver{
		{
			flagName:    "addr",
			envVarName:  "AUTOPOIESIS_ADDR",
			defaultVal:  ":8080",
			description: "HTTP listen address",
			setter:      func(c *ServerConfig, v string) error { c.Addr = v; return nil },
		},
		{
			flagName:    "log-level",
			envVarName:  "AUTOPOIESIS_LOG_LEVEL",
			defaultVal:  "info",
			description: "log level: debug, info, warn, error",
			setter:      func(c *ServerConfig, v string) error { c.LogLevel = v; return nil },
		},
		{
			flagName:    "tps",
			envVarName:  "AUTOPOIESIS_TPS",
			defaultVal:  "20",
			description: "frames computed and broadcast per second",
			setter:      intOption("tps", func(c *ServerConfig) *int { return &c.TPS }),
		},
		{
			flagName:    "view",
			envVarName:  "AUTOPOIESIS_VIEW",
			defaultVal:  "0",
			description: "side of the square window sent to clients; 0 sends the whole bounding box",
			setter:      intOption("view", func(c *ServerConfig) *int { return &c.View }),
		},
		{flagName: "w", envVarName: "AUTOPOIESIS_WIDTH", description: "seed region width", setter: simOption("w")},
		{flagName: "h", envVarName: "AUTOPOIESIS_HEIGHT", description: "seed region height", setter: simOption("h")},
		{flagName: "seed", envVarName: "AUTOPOIESIS_SEED", description: "random seed", setter: simOption("seed")},
		{flagName: "decay-rate", envVarName: "AUTOPOIESIS_DECAY_RATE", description: "link decay probability", setter: simOption("decay_rate")},
		{flagName: "catalysts", envVarName: "AUTOPOIESIS_CATALYSTS", description: "number of catalysts", setter: simOption("catalysts")},
		{flagName: "bond-neighborhood", envVarName: "AUTOPOIESIS_BOND_NEIGHBORHOOD", description: "bond search neighborhood: 4 or 8", setter: simOption("bond_neighborhood")},
		{flagName: "steps-per-frame", envVarName: "AUTOPOIESIS_STEPS_PER_FRAME", description: "updates per frame", setter: simOption("steps_per_frame")},
		{flagName: "checks", envVarName: "AUTOPOIESIS_CHECKS", description: "validate invariants after every update", setter: simOption("checks")},
	}
}

// loadServerConfig parses args into fs and resolves every option.
func loadServerConfig(fs *flag.FlagSet, args []string, getenv func(string) string) (ServerConfig, error) {
	cfg := ServerConfig{Sim: map[string]string{}}
	rs := resolvers()

	flagVars := make(map[string]*string, len(rs))
	for _, r := range rs {
		flagVars[r.flagName] = fs.String(r.flagName, "", r.description)
	}
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	for _, r := range rs {
		value := r.defaultVal
		if v := *flagVars[r.flagName]; v != "" {
			value = v
		} else if v := getenv(r.envVarName); v != "" {
			value = v
		}
		if err := r.setter(&cfg, value); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}
