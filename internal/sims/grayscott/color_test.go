package grayscott

import (
	"image"
	"image/color"
	"testing"
)

var (
	substrate = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	activator = color.RGBA{R: 50, G: 230, B: 255, A: 255}
)

func TestCellColorEndpointsAndTruncation(t *testing.T) {
	cases := []struct {
		cell Cell
		want color.RGBA
	}{
		{Cell{A: 1, B: 0}, color.RGBA{R: 0, G: 0, B: 0, A: 255}},
		{Cell{A: 0, B: 1}, color.RGBA{R: 50, G: 230, B: 255, A: 255}},
		// Fractional channel values truncate toward zero: 255*0.5 = 127.5
		// becomes 127, and 255*0.9 = 229.5 becomes 229 while 230*0.9 lands
		// exactly on 207.
		{Cell{A: 1, B: 1}, color.RGBA{R: 25, G: 115, B: 127, A: 255}},
		{Cell{A: 1, B: 9}, color.RGBA{R: 45, G: 207, B: 229, A: 255}},
		{Cell{A: 3, B: 1}, color.RGBA{R: 12, G: 57, B: 63, A: 255}},
	}
	for _, tc := range cases {
		got, ok := CellColor(tc.cell, substrate, activator)
		if !ok {
			t.Fatalf("CellColor(%+v): unexpectedly colorless", tc.cell)
		}
		if got != tc.want {
			t.Fatalf("CellColor(%+v): got %v want %v", tc.cell, got, tc.want)
		}
	}

	if _, ok := CellColor(Cell{}, substrate, activator); ok {
		t.Fatal("a cell with zero total concentration has no color")
	}
}

func TestRenderFrameSkipsColorlessCells(t *testing.T) {
	g, err := NewGrid(2, 1)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	*g.At(0, 0) = Cell{}
	*g.At(1, 0) = Cell{B: 1}

	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	sentinel := color.RGBA{R: 9, G: 9, B: 9, A: 255}
	img.SetRGBA(0, 0, sentinel)

	RenderFrame(g, img, substrate, activator)

	if got := img.RGBAAt(0, 0); got != sentinel {
		t.Fatalf("colorless cell must leave the canvas untouched, got %v", got)
	}
	if got := img.RGBAAt(1, 0); got != activator {
		t.Fatalf("activator cell: got %v want %v", got, activator)
	}
}

func TestPaletteGradient(t *testing.T) {
	p := Palette(substrate, activator)
	if len(p) != 256 {
		t.Fatalf("palette length: got %d want 256", len(p))
	}
	if p[0] != substrate {
		t.Fatalf("palette[0]: got %v want %v", p[0], substrate)
	}
	if p[255] != activator {
		t.Fatalf("palette[255]: got %v want %v", p[255], activator)
	}
	if want := (color.RGBA{R: 0, G: 0, B: 1, A: 255}); p[1] != want {
		t.Fatalf("palette[1]: got %v want %v", p[1], want)
	}
	if want := (color.RGBA{R: 25, G: 115, B: 128, A: 255}); p[128] != want {
		t.Fatalf("palette[128]: got %v want %v", p[128], want)
	}
}

func TestWorldPaletteCachedAndRenderTo(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 4
	cfg.Height = 4
	cfg.Params.SeedRadius = 1
	world, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}

	p := world.Palette()
	if len(p) != 256 {
		t.Fatalf("palette length: got %d want 256", len(p))
	}
	if &p[0] != &world.Palette()[0] {
		t.Fatal("palette must be computed once and cached")
	}

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	world.RenderTo(img)
	if got := img.RGBAAt(2, 2); got != cfg.ColorB {
		t.Fatalf("seeded center pixel: got %v want %v", got, cfg.ColorB)
	}
	if got := img.RGBAAt(0, 0); got != cfg.ColorA {
		t.Fatalf("substrate pixel: got %v want %v", got, cfg.ColorA)
	}
}
