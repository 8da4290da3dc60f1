package grayscott

import (
	"image/color"

	"rd-lab/internal/core"
)

// World runs the Gray-Scott reaction-diffusion model over a fixed grid. Two
// buffers alternate between readable and writable roles by step parity, so
// every update pass reads a consistent previous state and never mutates the
// buffer it reads from.
type World struct {
	cfg Config

	w, h int

	// bufs[step%2] holds the state after `step` completed update passes;
	// the other slot is the destination of the next pass.
	bufs [2]*Grid
	step int

	feedAt RateField
	killAt RateField

	display []uint8
	palette []color.RGBA
}

// New returns a World with the reference configuration at the provided
// dimensions.
func New(w, h int) (*World, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig validates the configuration, allocates both buffers once,
// and seeds the initial state. No further allocation happens while stepping.
func NewWithConfig(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	a, err := NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	b, err := NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	w := &World{
		cfg:     cfg,
		w:       cfg.Width,
		h:       cfg.Height,
		bufs:    [2]*Grid{a, b},
		display: make([]uint8, cfg.Width*cfg.Height),
	}
	w.feedAt, w.killAt = rateFields(cfg)
	w.Reset(cfg.Seed)
	return w, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "grayscott" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Config returns the configuration the world was built with.
func (w *World) Config() Config { return w.cfg }

// Steps reports how many update passes have completed since the last reset.
func (w *World) Steps() int { return w.step }

// Current returns the buffer holding the state after Steps() completed
// passes. Callers must not retain the reference across a Step.
func (w *World) Current() *Grid { return w.bufs[w.step%2] }

// Reset reseeds the readable buffer according to the configured seeding mode
// and clears the scratch buffer. The circle mode is fully deterministic and
// ignores the seed; the spots and noise modes fall back to the configured
// seed when given zero.
func (w *World) Reset(seed int64) {
	w.step = 0
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.seed(w.bufs[0], effective)
	w.bufs[1].Clear()
}

// Step advances the simulation by one pass, reading the current buffer and
// writing every cell of the other.
func (w *World) Step() {
	src := w.bufs[w.step%2]
	dst := w.bufs[(w.step+1)%2]
	for y := 0; y < w.h; y++ {
		for x := 0; x < w.w; x++ {
			dst.cells[dst.Index(x, y)] = w.nextCell(src, x, y)
		}
	}
	w.step++
}

// neighborDifference accumulates the weighted difference between the cell at
// (x, y) and its Moore neighborhood: the center contributes its negated
// concentrations, orthogonal neighbors the adjacent weight, diagonal
// neighbors the diagonal weight. Out-of-bounds neighbors are omitted
// entirely, so edge and corner cells sum fewer terms.
func (w *World) neighborDifference(g *Grid, x, y int) Cell {
	var diff Cell
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				center := g.cells[g.Index(x, y)]
				diff.A -= center.A
				diff.B -= center.B
				continue
			}
			nx := x + dx
			ny := y + dy
			if !g.InBounds(nx, ny) {
				continue
			}
			weight := w.cfg.Params.DiagonalWeight
			if dx == 0 || dy == 0 {
				weight = w.cfg.Params.AdjacentWeight
			}
			neighbor := g.cells[g.Index(nx, ny)]
			diff.A += weight * neighbor.A
			diff.B += weight * neighbor.B
		}
	}
	return diff
}

// nextCell computes the forward-Euler update for the cell at (x, y). It is a
// pure function of the source grid: it reads only src and writes nothing.
func (w *World) nextCell(src *Grid, x, y int) Cell {
	cell := src.cells[src.Index(x, y)]
	diff := w.neighborDifference(src, x, y)
	reaction := cell.A * cell.B * cell.B
	feed := w.feedAt(x, y)
	kill := w.killAt(x, y)
	p := w.cfg.Params
	return Cell{
		A: cell.A + (p.DiffusionA*diff.A - reaction + feed*(1-cell.A))*p.TimeStep,
		B: cell.B + (p.DiffusionB*diff.B + reaction - (kill+feed)*cell.B)*p.TimeStep,
	}
}

// Cells quantizes the current state into the display buffer: the activator
// fraction b/(a+b) mapped onto 0..255 and clamped. File export does not use
// this path; it renders exact per-pixel colors instead.
func (w *World) Cells() []uint8 {
	cells := w.Current().Cells()
	for i := range cells {
		w.display[i] = displayValue(cells[i])
	}
	return w.display
}

func displayValue(c Cell) uint8 {
	denom := c.A + c.B
	if denom == 0 {
		return 0
	}
	v := int(c.B / denom * 255)
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

func init() {
	core.Register("grayscott", func(cfg map[string]string) (core.Sim, error) {
		return NewWithConfig(FromMap(cfg))
	})
}
