package life

import (
	"fmt"

	"parlife/internal/core"
)

// Chunk is the square region of live cells owned by one worker. X0 and Y0 are
// the grid coordinates of its top-left cell.
type Chunk struct {
	X0, Y0 int
	Size   int
}

// Contains reports whether (x, y) lies inside the chunk.
func (c Chunk) Contains(x, y int) bool {
	return x >= c.X0 && y >= c.Y0 && x < c.X0+c.Size && y < c.Y0+c.Size
}

func (c Chunk) String() string {
	return fmt.Sprintf("chunk(%d,%d)+%d", c.X0, c.Y0, c.Size)
}

// Partition splits a side*side live area into workers equal square chunks.
// workers must be a perfect square k*k with k dividing side.
func Partition(side, workers, maxWorkers int) ([]Chunk, error) {
	if side <= 0 {
		return nil, &core.ConfigError{Field: "size", Value: side, Reason: "must be positive"}
	}
	if workers <= 0 {
		return nil, &core.ConfigError{Field: "workers", Value: workers, Reason: "must be positive"}
	}
	if maxWorkers > 0 && workers > maxWorkers {
		return nil, &core.ConfigError{Field: "workers", Value: workers, Reason: fmt.Sprintf("exceeds limit of %d", maxWorkers)}
	}
	k := isqrt(workers)
	if k*k != workers {
		return nil, &core.ConfigError{Field: "workers", Value: workers, Reason: "not a perfect square"}
	}
	if side%k != 0 {
		return nil, &core.ConfigError{Field: "workers", Value: workers, Reason: fmt.Sprintf("chunks do not tile a %dx%d grid", side, side)}
	}

	size := side / k
	area := Chunk{X0: 1, Y0: 1, Size: side}
	chunks := make([]Chunk, 0, workers)
	for row := 0; row < k; row++ {
		for col := 0; col < k; col++ {
			c := Chunk{X0: 1 + col*size, Y0: 1 + row*size, Size: size}
			if !area.Contains(c.X0, c.Y0) || !area.Contains(c.X0+size-1, c.Y0+size-1) {
				return nil, &core.ConfigError{Field: "workers", Value: workers, Reason: c.String() + " leaves the live area"}
			}
			chunks = append(chunks, c)
		}
	}
	return chunks, nil
}

// ValidWorkerCounts lists the worker counts Partition accepts for side.
func ValidWorkerCounts(side, maxWorkers int) []int {
	var counts []int
	for k := 1; k <= side; k++ {
		n := k * k
		if maxWorkers > 0 && n > maxWorkers {
			break
		}
		if side%k == 0 {
			counts = append(counts, n)
		}
	}
	return counts
}

func isqrt(n int) int {
	k := 0
	for (k+1)*(k+1) <= n {
		k++
	}
	return k
}
