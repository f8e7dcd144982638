package life

import (
	"errors"
	"slices"
	"testing"

	"parlife/internal/core"
)

func TestPatternNames(t *testing.T) {
	names := PatternNames()
	for _, want := range []string{"glider", "blinker", "random", "lshape", "diagonal"} {
		if !slices.Contains(names, want) {
			t.Fatalf("pattern %q missing from %v", want, names)
		}
	}
	if !slices.IsSorted(names) {
		t.Fatalf("names not sorted: %v", names)
	}
}

func TestPlaceGliderAtOrigin(t *testing.T) {
	g := core.NewGrid(12)
	if err := Place(g, "glider", core.Point{X: 2, Y: 2}, 0); err != nil {
		t.Fatalf("Place: %v", err)
	}
	for _, p := range []core.Point{{X: 3, Y: 2}, {X: 4, Y: 3}, {X: 2, Y: 4}, {X: 3, Y: 4}, {X: 4, Y: 4}} {
		if !g.At(p.X, p.Y) {
			t.Fatalf("glider cell (%d,%d) not set", p.X, p.Y)
		}
	}
	if g.Alive() != 5 {
		t.Fatalf("alive = %d, want 5", g.Alive())
	}
}

func TestPlaceRejectsOffGrid(t *testing.T) {
	g := core.NewGrid(4)
	if err := Place(g, "blinker", core.Point{X: 3, Y: 1}, 0); !errors.Is(err, core.ErrOutOfBounds) {
		t.Fatalf("err = %v, want ErrOutOfBounds", err)
	}
	if err := Place(g, "nope", core.Point{X: 1, Y: 1}, 0); !errors.Is(err, core.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestRandomPatternIsDeterministic(t *testing.T) {
	a, b, c := core.NewGrid(12), core.NewGrid(12), core.NewGrid(12)
	for _, g := range []*core.Grid{a, b} {
		if err := Place(g, "random", core.Point{}, 11); err != nil {
			t.Fatal(err)
		}
	}
	if err := Place(c, "random", core.Point{}, 12); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("same seed must produce the same population")
	}
	if slices.Equal(a.Cells(), c.Cells()) {
		t.Fatal("different seeds should produce different populations")
	}
	if !a.BorderClear() {
		t.Fatal("random fill must leave the border dead")
	}
}

func TestShapeReturnsCopy(t *testing.T) {
	cells, ok := Shape("block")
	if !ok || len(cells) != 4 {
		t.Fatalf("Shape(block) = %v, %v", cells, ok)
	}
	cells[0] = core.Point{X: 9, Y: 9}
	again, _ := Shape("block")
	if again[0] == cells[0] {
		t.Fatal("Shape must not expose the registry slice")
	}
}
