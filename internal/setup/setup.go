// Package setup parses the initial-population and run inputs a user types in.
// Every failure wraps core.ErrInvalidInput so callers can re-prompt.
package setup

import (
	"fmt"
	"strconv"
	"strings"

	"parlife/internal/core"
)

// ParseCells reads coordinates written as "x,y" pairs separated by spaces or
// semicolons, e.g. "3,2 4,3;2,4". Each coordinate must lie in [1, side].
// Duplicates are dropped.
func ParseCells(input string, side int) ([]core.Point, error) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ';' || r == ' ' || r == '\t' || r == '\n'
	})
	seen := make(map[core.Point]bool, len(fields))
	cells := make([]core.Point, 0, len(fields))
	for _, field := range fields {
		xs, ys, ok := strings.Cut(field, ",")
		if !ok {
			return nil, fmt.Errorf("%w: %q is not an x,y pair", core.ErrInvalidInput, field)
		}
		x, err := strconv.Atoi(strings.TrimSpace(xs))
		if err != nil {
			return nil, fmt.Errorf("%w: x in %q: %v", core.ErrInvalidInput, field, err)
		}
		y, err := strconv.Atoi(strings.TrimSpace(ys))
		if err != nil {
			return nil, fmt.Errorf("%w: y in %q: %v", core.ErrInvalidInput, field, err)
		}
		if x < 1 || y < 1 || x > side || y > side {
			return nil, fmt.Errorf("%w: (%d,%d) outside [1,%d]", core.ErrInvalidInput, x, y, side)
		}
		p := core.Point{X: x, Y: y}
		if seen[p] {
			continue
		}
		seen[p] = true
		cells = append(cells, p)
	}
	return cells, nil
}

// ParseSteps reads a positive generation budget.
func ParseSteps(input string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("%w: step count %q is not a number", core.ErrInvalidInput, input)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: step count must be positive, got %d", core.ErrInvalidInput, n)
	}
	return n, nil
}

// ParseWorkers reads a worker count and checks it against the accepted set.
func ParseWorkers(input string, accepted []int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("%w: worker count %q is not a number", core.ErrInvalidInput, input)
	}
	for _, a := range accepted {
		if a == n {
			return n, nil
		}
	}
	return 0, fmt.Errorf("%w: worker count %d not in %v", core.ErrInvalidInput, n, accepted)
}
