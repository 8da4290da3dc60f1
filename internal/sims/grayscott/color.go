package grayscott

import (
	"image"
	"image/color"
)

// lerpChannel interpolates one color channel with truncation toward zero.
// Exported images are defined by this exact arithmetic, so the fractional
// part of the scaled delta is dropped, never rounded.
func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(int(a) + int(float64(int(b)-int(a))*t))
}

// CellColor maps a cell to its display color, interpolating from the
// substrate color to the activator color by the activator fraction b/(a+b).
// The second return is false when both concentrations are zero and the cell
// has no defined color.
func CellColor(c Cell, from, to color.RGBA) (color.RGBA, bool) {
	denom := c.A + c.B
	if denom == 0 {
		return color.RGBA{}, false
	}
	t := c.B / denom
	return color.RGBA{
		R: lerpChannel(from.R, to.R, t),
		G: lerpChannel(from.G, to.G, t),
		B: lerpChannel(from.B, to.B, t),
		A: 255,
	}, true
}

// RenderFrame paints the grid into img, leaving the pixels of colorless
// cells untouched. Successive frames drawn onto one canvas therefore keep
// earlier content wherever the current state has no color.
func RenderFrame(g *Grid, img *image.RGBA, from, to color.RGBA) {
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c, ok := CellColor(*g.At(x, y), from, to)
			if !ok {
				continue
			}
			img.SetRGBA(x, y, c)
		}
	}
}

// Palette precomputes the 256-entry gradient the interactive renderer
// indexes with quantized cell values.
func Palette(from, to color.RGBA) []color.RGBA {
	p := make([]color.RGBA, 256)
	for i := range p {
		t := float64(i) / 255
		p[i] = color.RGBA{
			R: lerpChannel(from.R, to.R, t),
			G: lerpChannel(from.G, to.G, t),
			B: lerpChannel(from.B, to.B, t),
			A: 255,
		}
	}
	return p
}
