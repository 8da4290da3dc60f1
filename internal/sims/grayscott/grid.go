package grayscott

import "fmt"

// Cell holds the two species concentrations at one grid position: A is the
// inhibitor/substrate, B the activator. Values are never clamped and may
// drift outside [0, 1] as the reaction runs.
type Cell struct {
	A, B float64
}

// Grid is a fixed-size 2D field of cells stored row-major. Dimensions are
// immutable for the grid's lifetime.
type Grid struct {
	w, h  int
	cells []Cell
}

// NewGrid allocates a w×h grid. Degenerate dimensions are rejected rather
// than allocating an empty field.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("grid dimensions must be positive, got %dx%d", w, h)
	}
	return &Grid{w: w, h: h, cells: make([]Cell, w*h)}, nil
}

// Width reports the horizontal cell count.
func (g *Grid) Width() int { return g.w }

// Height reports the vertical cell count.
func (g *Grid) Height() int { return g.h }

// Index maps coordinates to the backing slice offset. Every access in the
// package goes through this mapping.
func (g *Grid) Index(x, y int) int { return x + y*g.w }

// InBounds reports whether (x, y) lies inside the grid. Neighbors that fail
// this check are omitted from the stencil; there is no wraparound.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// At returns a mutable reference to the cell at (x, y).
func (g *Grid) At(x, y int) *Cell { return &g.cells[g.Index(x, y)] }

// Cells exposes the backing slice in row-major order.
func (g *Grid) Cells() []Cell { return g.cells }

// Clear resets every cell to zero concentrations.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Cell{}
	}
}
