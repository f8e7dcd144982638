package setup

import (
	"errors"
	"slices"
	"testing"

	"parlife/internal/core"
)

func TestParseCells(t *testing.T) {
	cells, err := ParseCells("3,2 4,3;2,4  3,4;4,4 3,2", 12)
	if err != nil {
		t.Fatalf("ParseCells: %v", err)
	}
	want := []core.Point{{X: 3, Y: 2}, {X: 4, Y: 3}, {X: 2, Y: 4}, {X: 3, Y: 4}, {X: 4, Y: 4}}
	if !slices.Equal(cells, want) {
		t.Fatalf("cells = %v, want %v", cells, want)
	}

	empty, err := ParseCells("   ", 12)
	if err != nil || len(empty) != 0 {
		t.Fatalf("blank input = %v, %v; want no cells", empty, err)
	}
}

func TestParseCellsRejectsBadInput(t *testing.T) {
	for _, input := range []string{"3", "a,2", "2,b", "0,1", "1,13", "13,1"} {
		if _, err := ParseCells(input, 12); !errors.Is(err, core.ErrInvalidInput) {
			t.Fatalf("ParseCells(%q) err = %v, want ErrInvalidInput", input, err)
		}
	}
}

func TestParseSteps(t *testing.T) {
	if n, err := ParseSteps(" 40 "); err != nil || n != 40 {
		t.Fatalf("ParseSteps = %d, %v; want 40", n, err)
	}
	for _, input := range []string{"", "ten", "0", "-3"} {
		if _, err := ParseSteps(input); !errors.Is(err, core.ErrInvalidInput) {
			t.Fatalf("ParseSteps(%q) err = %v, want ErrInvalidInput", input, err)
		}
	}
}

func TestParseWorkers(t *testing.T) {
	accepted := []int{1, 4, 9, 16, 36}
	if n, err := ParseWorkers("9", accepted); err != nil || n != 9 {
		t.Fatalf("ParseWorkers = %d, %v; want 9", n, err)
	}
	for _, input := range []string{"5", "x", "144"} {
		if _, err := ParseWorkers(input, accepted); !errors.Is(err, core.ErrInvalidInput) {
			t.Fatalf("ParseWorkers(%q) err = %v, want ErrInvalidInput", input, err)
		}
	}
}
