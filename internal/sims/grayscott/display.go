package grayscott

import (
	"image"
	"image/color"
)

// Palette returns the 256-entry display gradient for the configured colors.
// The slice is cached; callers must not mutate it.
func (w *World) Palette() []color.RGBA {
	if w.palette == nil {
		w.palette = Palette(w.cfg.ColorA, w.cfg.ColorB)
	}
	return w.palette
}

// RenderTo paints the current state into img with the configured colors,
// using the exact export color path rather than the quantized display
// buffer.
func (w *World) RenderTo(img *image.RGBA) {
	RenderFrame(w.Current(), img, w.cfg.ColorA, w.cfg.ColorB)
}

// ProbeCell reports the concentrations at (x, y) of the current state.
func (w *World) ProbeCell(x, y int) (a, b float64, ok bool) {
	g := w.Current()
	if !g.InBounds(x, y) {
		return 0, 0, false
	}
	c := g.cells[g.Index(x, y)]
	return c.A, c.B, true
}

// FieldStats reports the mean concentrations of the current state.
func (w *World) FieldStats() (meanA, meanB float64) {
	cells := w.Current().Cells()
	if len(cells) == 0 {
		return 0, 0
	}
	var sumA, sumB float64
	for _, c := range cells {
		sumA += c.A
		sumB += c.B
	}
	n := float64(len(cells))
	return sumA / n, sumB / n
}
