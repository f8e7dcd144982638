package life

import (
	"errors"
	"slices"
	"testing"

	"parlife/internal/core"
)

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"size":    "24",
		"workers": "16",
		"pattern": "toad",
		"x":       "5",
		"y":       "6",
		"seed":    "9",
		"live":    "true",
		"cells":   "1,1 2,2",
	})
	if c.Size != 24 || c.Workers != 16 || c.Pattern != "toad" || c.Seed != 9 || !c.Live {
		t.Fatalf("unexpected config %+v", c)
	}
	if c.Origin != (core.Point{X: 5, Y: 6}) {
		t.Fatalf("origin = %+v", c.Origin)
	}
	if !slices.Equal(c.Cells, []core.Point{{X: 1, Y: 1}, {X: 2, Y: 2}}) {
		t.Fatalf("cells = %v", c.Cells)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestFromMapKeepsDefaultsOnBadValues(t *testing.T) {
	c := FromMap(map[string]string{"size": "-3", "workers": "many", "cells": "0,0"})
	d := DefaultConfig()
	if c.Size != d.Size || c.Workers != d.Workers || len(c.Cells) != 0 {
		t.Fatalf("bad values must keep defaults, got %+v", c)
	}
	if FromMap(nil).Pattern != d.Pattern {
		t.Fatal("nil map must return defaults")
	}
}

func TestValidateNeverClamps(t *testing.T) {
	c := DefaultConfig()
	c.Workers = 8
	err := c.Validate()
	var cfgErr *core.ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Value != 8 {
		t.Fatalf("Validate err = %v, want ConfigError for 8 workers", err)
	}
	if c.Workers != 8 {
		t.Fatal("Validate must not modify the worker count")
	}
}
