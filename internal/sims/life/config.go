package life

import (
	"fmt"
	"strconv"

	"parlife/internal/core"
	"parlife/internal/setup"
)

// Config controls the grid, its partitioning and the initial population.
type Config struct {
	Size       int
	Workers    int
	MaxWorkers int

	Pattern string
	Origin  core.Point
	Cells   []core.Point
	Seed    int64

	// Live makes the engine publish a Frame after every generation.
	Live bool
}

// DefaultConfig returns a 12x12 grid split over four workers with a glider in
// the top-left chunk.
func DefaultConfig() Config {
	return Config{
		Size:       12,
		Workers:    4,
		MaxWorkers: 36,
		Pattern:    "glider",
		Origin:     core.Point{X: 2, Y: 2},
		Seed:       42,
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unparseable values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["max_workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.MaxWorkers = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok && v != "" {
		c.Pattern = v
	}
	if v, ok := cfg["x"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Origin.X = parsed
		}
	}
	if v, ok := cfg["y"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Origin.Y = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["live"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Live = parsed
		}
	}
	if v, ok := cfg["cells"]; ok {
		if parsed, err := setup.ParseCells(v, c.Size); err == nil {
			c.Cells = parsed
		}
	}
	return c
}

// Validate rejects configurations that cannot be run. It never clamps.
func (c Config) Validate() error {
	if _, err := Partition(c.Size, c.Workers, c.MaxWorkers); err != nil {
		return err
	}
	if c.Pattern != "" && c.Pattern != PatternNone {
		if _, ok := core.Seeders()[c.Pattern]; !ok {
			return fmt.Errorf("%w: unknown pattern %q", core.ErrInvalidInput, c.Pattern)
		}
	}
	for _, p := range c.Cells {
		if p.X < 1 || p.Y < 1 || p.X > c.Size || p.Y > c.Size {
			return fmt.Errorf("%w: cell (%d,%d) outside [1,%d]", core.ErrOutOfBounds, p.X, p.Y, c.Size)
		}
	}
	return nil
}
