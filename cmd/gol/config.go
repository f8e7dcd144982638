package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"parlife/internal/core"
	"parlife/internal/setup"
	"parlife/internal/sims/life"
)

// Config represents the command-line parameters for the application.
// Workers and Steps hold the raw text so they go through the same parsers
// as interactive answers.
type Config struct {
	Size       int
	Workers    string
	MaxWorkers int
	Steps      string
	Pattern    string
	X, Y       int
	Cells      string
	Seed       int64

	Live        bool
	Invert      bool
	Interactive bool
	Delay       time.Duration
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := life.DefaultConfig()
	return &Config{
		Size:       d.Size,
		Workers:    strconv.Itoa(d.Workers),
		MaxWorkers: d.MaxWorkers,
		Steps:      "40",
		Pattern:    d.Pattern,
		X:          d.Origin.X,
		Y:          d.Origin.Y,
		Seed:       d.Seed,
		Delay:      100 * time.Millisecond,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Size, "size", c.Size, "side length of the live grid")
	fs.StringVar(&c.Workers, "workers", c.Workers, "worker count; a perfect square whose root divides -size")
	fs.IntVar(&c.MaxWorkers, "max-workers", c.MaxWorkers, "largest accepted worker count")
	fs.StringVar(&c.Steps, "steps", c.Steps, "generations to run; 0 runs until q in live mode")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, fmt.Sprintf("initial pattern (%s or %s)", life.PatternNames(), life.PatternNone))
	fs.IntVar(&c.X, "x", c.X, "pattern origin column")
	fs.IntVar(&c.Y, "y", c.Y, "pattern origin row")
	fs.StringVar(&c.Cells, "cells", c.Cells, `extra live cells, e.g. "3,2 4,3;2,4"`)
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random pattern")
	fs.BoolVar(&c.Live, "live", c.Live, "draw every generation in the terminal")
	fs.BoolVar(&c.Invert, "invert", c.Invert, "invert terminal colors")
	fs.BoolVar(&c.Interactive, "interactive", c.Interactive, "ask for cells, workers and steps on stdin")
	fs.DurationVar(&c.Delay, "delay", c.Delay, "minimum time each generation stays on screen in live mode")
}

// AcceptedWorkers lists the worker counts the grid size allows.
func (c *Config) AcceptedWorkers() []int {
	return life.ValidWorkerCounts(c.Size, c.MaxWorkers)
}

// StepCount parses the generation budget. Live mode also accepts 0, meaning
// run until the user quits.
func (c *Config) StepCount() (int, error) {
	if c.Live && strings.TrimSpace(c.Steps) == "0" {
		return 0, nil
	}
	return setup.ParseSteps(c.Steps)
}

// LifeConfig validates the flags and converts them into an engine config.
func (c *Config) LifeConfig() (life.Config, error) {
	if _, err := c.StepCount(); err != nil {
		return life.Config{}, err
	}
	workers, err := setup.ParseWorkers(c.Workers, c.AcceptedWorkers())
	if err != nil {
		return life.Config{}, err
	}
	cells, err := setup.ParseCells(c.Cells, c.Size)
	if err != nil {
		return life.Config{}, err
	}
	cfg := life.Config{
		Size:       c.Size,
		Workers:    workers,
		MaxWorkers: c.MaxWorkers,
		Pattern:    c.Pattern,
		Origin:     core.Point{X: c.X, Y: c.Y},
		Cells:      cells,
		Seed:       c.Seed,
		Live:       c.Live,
	}
	if err := cfg.Validate(); err != nil {
		return life.Config{}, err
	}
	return cfg, nil
}
