package life

import (
	"errors"
	"slices"
	"testing"

	"parlife/internal/core"
)

func TestPartitionTilesLiveArea(t *testing.T) {
	for _, workers := range []int{1, 4, 9, 16, 36} {
		chunks, err := Partition(12, workers, 36)
		if err != nil {
			t.Fatalf("Partition(12, %d): %v", workers, err)
		}
		if len(chunks) != workers {
			t.Fatalf("workers=%d: got %d chunks", workers, len(chunks))
		}

		owners := make(map[core.Point]int)
		for _, c := range chunks {
			if c.Size*c.Size*workers != 144 {
				t.Fatalf("workers=%d: chunk size %d does not tile 12x12", workers, c.Size)
			}
			for y := c.Y0; y < c.Y0+c.Size; y++ {
				for x := c.X0; x < c.X0+c.Size; x++ {
					owners[core.Point{X: x, Y: y}]++
				}
			}
		}
		for y := 1; y <= 12; y++ {
			for x := 1; x <= 12; x++ {
				if n := owners[core.Point{X: x, Y: y}]; n != 1 {
					t.Fatalf("workers=%d: cell (%d,%d) owned %d times", workers, x, y, n)
				}
			}
		}
		if len(owners) != 144 {
			t.Fatalf("workers=%d: chunks cover %d cells outside the live area", workers, len(owners)-144)
		}
	}
}

func TestPartitionRejectsInvalidCounts(t *testing.T) {
	for _, workers := range []int{0, -4, 2, 3, 5, 25, 49, 144} {
		_, err := Partition(12, workers, 36)
		if !errors.Is(err, core.ErrConfiguration) {
			t.Fatalf("Partition(12, %d) err = %v, want configuration error", workers, err)
		}
		var cfgErr *core.ConfigError
		if !errors.As(err, &cfgErr) || cfgErr.Field != "workers" {
			t.Fatalf("Partition(12, %d) err = %v, want workers ConfigError", workers, err)
		}
	}
	if _, err := Partition(0, 1, 36); !errors.Is(err, core.ErrConfiguration) {
		t.Fatalf("zero size err = %v, want configuration error", err)
	}
}

func TestValidWorkerCounts(t *testing.T) {
	if got, want := ValidWorkerCounts(12, 36), []int{1, 4, 9, 16, 36}; !slices.Equal(got, want) {
		t.Fatalf("ValidWorkerCounts(12, 36) = %v, want %v", got, want)
	}
	if got, want := ValidWorkerCounts(8, 0), []int{1, 4, 16, 64}; !slices.Equal(got, want) {
		t.Fatalf("ValidWorkerCounts(8, 0) = %v, want %v", got, want)
	}
}

func TestChunkContains(t *testing.T) {
	c := Chunk{X0: 7, Y0: 1, Size: 6}
	if !c.Contains(7, 1) || !c.Contains(12, 6) {
		t.Fatal("chunk must contain its corners")
	}
	if c.Contains(6, 1) || c.Contains(7, 7) {
		t.Fatal("chunk must not contain neighbouring cells")
	}
}
