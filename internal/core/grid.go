package core

import "fmt"

// Point addresses a cell on a Grid. Live cells use coordinates 1..Side.
type Point struct {
	X, Y int
}

// Grid stores a square board of boolean cells in row-major order. The live
// area is surrounded by a one-cell border that always stays dead, so neighbour
// lookups for any live cell never leave the backing slice.
type Grid struct {
	side   int
	stride int
	data   []bool
}

// NewGrid allocates a grid with a live area of side*side cells. It panics
// when side < 1.
func NewGrid(side int) *Grid {
	if side < 1 {
		panic(fmt.Sprintf("core: grid side %d, want at least 1", side))
	}
	stride := side + 2
	return &Grid{side: side, stride: stride, data: make([]bool, stride*stride)}
}

// Side returns the length of the live area.
func (g *Grid) Side() int { return g.side }

// Size returns the live area dimensions.
func (g *Grid) Size() Size { return Size{W: g.side, H: g.side} }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.stride + x }

// InBounds reports whether (x, y) addresses the grid, border included.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.stride && y < g.stride
}

// Interior reports whether (x, y) lies inside the live area.
func (g *Grid) Interior(x, y int) bool {
	return x >= 1 && y >= 1 && x <= g.side && y <= g.side
}

// Get returns the state of the cell at (x, y).
func (g *Grid) Get(x, y int) (bool, error) {
	if !g.InBounds(x, y) {
		return false, fmt.Errorf("%w: (%d,%d) outside [0,%d]", ErrOutOfBounds, x, y, g.side+1)
	}
	return g.data[g.Index(x, y)], nil
}

// Set writes the state of the cell at (x, y). Border cells accept only false.
func (g *Grid) Set(x, y int, alive bool) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) outside [0,%d]", ErrOutOfBounds, x, y, g.side+1)
	}
	if alive && !g.Interior(x, y) {
		return fmt.Errorf("%w: (%d,%d) is border padding", ErrOutOfBounds, x, y)
	}
	g.data[g.Index(x, y)] = alive
	return nil
}

// At reads a cell without bounds checks. Callers must pass coordinates that
// were validated up front.
func (g *Grid) At(x, y int) bool { return g.data[y*g.stride+x] }

// Put writes a cell without bounds checks.
func (g *Grid) Put(x, y int, alive bool) { g.data[y*g.stride+x] = alive }

// LiveNeighbors counts the live cells in the Moore neighbourhood of (x, y).
// (x, y) must be an interior coordinate.
func (g *Grid) LiveNeighbors(x, y int) int {
	n := 0
	above := (y-1)*g.stride + x
	row := y*g.stride + x
	below := (y+1)*g.stride + x
	for _, i := range [8]int{above - 1, above, above + 1, row - 1, row + 1, below - 1, below, below + 1} {
		if g.data[i] {
			n++
		}
	}
	return n
}

// Alive counts live cells.
func (g *Grid) Alive() int {
	n := 0
	for _, c := range g.data {
		if c {
			n++
		}
	}
	return n
}

// Snapshot copies the live area into a fresh [y][x] matrix indexed from zero.
func (g *Grid) Snapshot() [][]bool {
	out := make([][]bool, g.side)
	for y := range out {
		start := g.Index(1, y+1)
		out[y] = append([]bool(nil), g.data[start:start+g.side]...)
	}
	return out
}

// Cells returns the live area as 0/1 bytes in row-major order.
func (g *Grid) Cells() []uint8 {
	out := make([]uint8, 0, g.side*g.side)
	for y := 1; y <= g.side; y++ {
		for x := 1; x <= g.side; x++ {
			if g.At(x, y) {
				out = append(out, 1)
				continue
			}
			out = append(out, 0)
		}
	}
	return out
}

// BorderClear reports whether every padding cell is dead.
func (g *Grid) BorderClear() bool {
	last := g.stride - 1
	for i := 0; i < g.stride; i++ {
		if g.At(i, 0) || g.At(i, last) || g.At(0, i) || g.At(last, i) {
			return false
		}
	}
	return true
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = false
	}
}
