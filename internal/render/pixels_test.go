package render

import (
	"bytes"
	"image/color"
	"testing"
)

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{
		{R: 0, G: 0, B: 0, A: 255},
		{R: 10, G: 20, B: 30, A: 255},
		{R: 200, G: 100, B: 50, A: 255},
	}
	cells := []uint8{0, 1, 2, 9}
	buf := make([]byte, len(cells)*4)

	FillPaletteRGBA(buf, cells, palette)

	want := []byte{
		0, 0, 0, 255,
		10, 20, 30, 255,
		200, 100, 50, 255,
		// Out-of-range values clamp to the last entry.
		200, 100, 50, 255,
	}
	if !bytes.Equal(buf, want) {
		t.Fatalf("buffer:\n got %v\nwant %v", buf, want)
	}
}

func TestFillPaletteRGBAEmptyPaletteClears(t *testing.T) {
	cells := []uint8{0, 255}
	buf := bytes.Repeat([]byte{0xFF}, len(cells)*4)

	FillPaletteRGBA(buf, cells, nil)

	if !bytes.Equal(buf, make([]byte, len(buf))) {
		t.Fatalf("empty palette must clear to transparent, got %v", buf)
	}
}
