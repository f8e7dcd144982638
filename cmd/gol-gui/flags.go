package main

import (
	"flag"
	"fmt"
	"strings"
)

// simFlags collects repeatable key=value settings passed to life.FromMap.
type simFlags map[string]string

func (f simFlags) String() string {
	parts := make([]string, 0, len(f))
	for k, v := range f {
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, ",")
}

func (f simFlags) Set(value string) error {
	key, val, ok := strings.Cut(value, "=")
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	f[key] = val
	return nil
}

// Config represents the command-line parameters for the GUI.
type Config struct {
	Sim   simFlags
	Scale int
	TPS   int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: simFlags{"size": "48", "workers": "16", "pattern": "random"}, Scale: 12, TPS: 10}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Var(c.Sim, "set", "simulation setting in key=value form (size, workers, pattern, x, y, seed, cells); repeatable")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
}
