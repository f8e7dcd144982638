package life

import (
	"fmt"

	"parlife/internal/core"
)

// PatternNone seeds nothing; only explicitly listed cells start alive.
const PatternNone = "none"

// randomDensity is the fraction of cells the random pattern brings to life.
const randomDensity = 0.3

var shapes = map[string][]core.Point{
	"glider":     {{X: 1, Y: 0}, {X: 2, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}},
	"blinker":    {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}},
	"block":      {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
	"toad":       {{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}},
	"beacon":     {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 3, Y: 2}, {X: 2, Y: 3}, {X: 3, Y: 3}},
	"rpentomino": {{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 2}},
	"diagonal":   {{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}},
	"lshape":     {{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
}

func init() {
	for name, cells := range shapes {
		core.RegisterSeeder(name, placeShape(cells))
	}
	core.RegisterSeeder("random", func(g *core.Grid, _ core.Point, seed int64) error {
		core.FillDensity(core.NewRNG(seed), g, randomDensity)
		return nil
	})
}

func placeShape(cells []core.Point) core.Seeder {
	return func(g *core.Grid, origin core.Point, _ int64) error {
		for _, c := range cells {
			if err := g.Set(origin.X+c.X, origin.Y+c.Y, true); err != nil {
				return err
			}
		}
		return nil
	}
}

// Shape returns the cell offsets of a fixed pattern.
func Shape(name string) ([]core.Point, bool) {
	cells, ok := shapes[name]
	if !ok {
		return nil, false
	}
	return append([]core.Point(nil), cells...), true
}

// Place seeds g with the named pattern at origin.
func Place(g *core.Grid, name string, origin core.Point, seed int64) error {
	seeder, ok := core.Seeders()[name]
	if !ok {
		return fmt.Errorf("%w: unknown pattern %q", core.ErrInvalidInput, name)
	}
	if err := seeder(g, origin, seed); err != nil {
		return fmt.Errorf("placing %s at (%d,%d): %w", name, origin.X, origin.Y, err)
	}
	return nil
}

// PatternNames lists the available patterns.
func PatternNames() []string {
	return core.SeederNames()
}
