package grayscott

import (
	"math"
	"slices"
	"testing"
)

func traceConfig() Config {
	cfg := DefaultConfig()
	cfg.Width = 10
	cfg.Height = 10
	cfg.Params.SeedRadius = 2
	return cfg
}

func TestSeedCircleCoversStrictInterior(t *testing.T) {
	world, err := NewWithConfig(traceConfig())
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	g := world.Current()
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			dx := x - 5
			dy := y - 5
			want := Cell{A: 1}
			if dx*dx+dy*dy < 4 {
				want = Cell{B: 1}
			}
			if got := *g.At(x, y); got != want {
				t.Fatalf("seed at (%d,%d): got %+v want %+v", x, y, got, want)
			}
		}
	}
	// A squared distance equal to the squared radius stays outside the disk.
	if got := *g.At(3, 5); got != (Cell{A: 1}) {
		t.Fatalf("boundary cell (3,5) must stay substrate, got %+v", got)
	}
}

func TestStepMatchesHandTrace(t *testing.T) {
	world, err := NewWithConfig(traceConfig())
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}

	checks := func(step int, want map[[2]int]Cell) {
		t.Helper()
		g := world.Current()
		for pos, cell := range want {
			got := *g.At(pos[0], pos[1])
			if math.Abs(got.A-cell.A) > 1e-6 || math.Abs(got.B-cell.B) > 1e-6 {
				t.Fatalf("after %d steps cell (%d,%d): got (%.12f, %.12f) want (%.12f, %.12f)",
					step, pos[0], pos[1], got.A, got.B, cell.A, cell.B)
			}
		}
	}

	world.Step()
	checks(1, map[[2]int]Cell{
		{5, 5}: {A: 0.0545, B: 0.8835},
		{4, 4}: {A: 0.6045, B: 0.6085},
		{4, 5}: {A: 0.3545, B: 0.7335},
		{3, 5}: {A: 0.7, B: 0.15},
		{0, 0}: {A: 0.45, B: 0},
		{5, 0}: {A: 0.7, B: 0},
	})

	world.Step()
	checks(2, map[[2]int]Cell{
		{5, 5}: {A: 0.413488562375, B: 0.735613437625},
		{4, 4}: {A: 0.359750174875, B: 0.659101825125},
		{4, 5}: {A: 0.347600862375, B: 0.740001137625},
		{3, 5}: {A: 0.73195, B: 0.20205},
		{0, 0}: {A: 0.359975, B: 0},
	})
}

func TestUniformSubstrateInteriorHoldsBordersDrain(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 10
	cfg.Height = 10
	cfg.SeedMode = SeedSpots
	cfg.Params.SpotCount = 0
	world, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}

	world.Step()
	g := world.Current()
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			got := *g.At(x, y)
			if got.B != 0 {
				t.Fatalf("cell (%d,%d): activator appeared from nothing: %v", x, y, got.B)
			}
			onX := x == 0 || x == 9
			onY := y == 0 || y == 9
			var want float64
			switch {
			case onX && onY:
				want = 0.45
			case onX || onY:
				want = 0.7
			default:
				want = 1
			}
			if math.Abs(got.A-want) > 1e-9 {
				t.Fatalf("cell (%d,%d): got a=%.12f want %.12f", x, y, got.A, want)
			}
		}
	}
}

// naiveStep recomputes one pass against a full snapshot of the previous
// state, with no double buffering involved.
func naiveStep(cells []Cell, w, h int, p Params, feed, kill float64) []Cell {
	src := append([]Cell(nil), cells...)
	next := make([]Cell, len(cells))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var da, db float64
			for dx := -1; dx <= 1; dx++ {
				for dy := -1; dy <= 1; dy++ {
					if dx == 0 && dy == 0 {
						da -= src[x+y*w].A
						db -= src[x+y*w].B
						continue
					}
					nx, ny := x+dx, y+dy
					if nx < 0 || nx >= w || ny < 0 || ny >= h {
						continue
					}
					wgt := p.DiagonalWeight
					if dx == 0 || dy == 0 {
						wgt = p.AdjacentWeight
					}
					da += wgt * src[nx+ny*w].A
					db += wgt * src[nx+ny*w].B
				}
			}
			c := src[x+y*w]
			r := c.A * c.B * c.B
			next[x+y*w] = Cell{
				A: c.A + (p.DiffusionA*da-r+feed*(1-c.A))*p.TimeStep,
				B: c.B + (p.DiffusionB*db+r-(kill+feed)*c.B)*p.TimeStep,
			}
		}
	}
	return next
}

func TestStepAgainstSingleBufferReference(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 5
	cfg.Height = 5
	cfg.Params.SeedRadius = 1
	world, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}

	want := append([]Cell(nil), world.Current().Cells()...)
	for i := 0; i < 4; i++ {
		world.Step()
		want = naiveStep(want, 5, 5, cfg.Params, cfg.Params.FeedRate, cfg.Params.KillRate)
		got := world.Current().Cells()
		for j := range got {
			if math.Abs(got[j].A-want[j].A) > 1e-12 || math.Abs(got[j].B-want[j].B) > 1e-12 {
				t.Fatalf("step %d cell %d: got %+v want %+v", i+1, j, got[j], want[j])
			}
		}
	}
}

func TestDoubleBufferAlternates(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 5
	cfg.Height = 5
	cfg.Params.SeedRadius = 1
	world, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}

	p0 := &world.Current().Cells()[0]
	world.Step()
	p1 := &world.Current().Cells()[0]
	if p0 == p1 {
		t.Fatal("step must switch the readable buffer")
	}
	world.Step()
	p2 := &world.Current().Cells()[0]
	if p2 != p0 {
		t.Fatal("buffers must alternate with step parity")
	}
	if world.Steps() != 2 {
		t.Fatalf("Steps: got %d want 2", world.Steps())
	}
}

func TestResetDeterministic(t *testing.T) {
	for _, mode := range []string{SeedCircle, SeedSpots, SeedNoise} {
		cfg := DefaultConfig()
		cfg.Width = 32
		cfg.Height = 24
		cfg.SeedMode = mode
		cfg.Params.SpotCount = 6
		cfg.Params.SpotRadius = 3
		cfg.Params.NoiseScale = 0.15
		cfg.Params.NoiseThreshold = 0.5
		world, err := NewWithConfig(cfg)
		if err != nil {
			t.Fatalf("%s: NewWithConfig: %v", mode, err)
		}

		initial := append([]Cell(nil), world.Current().Cells()...)

		// Mutate state to ensure Reset rebuilds from scratch.
		world.Step()
		*world.Current().At(0, 0) = Cell{A: 42, B: 42}

		world.Reset(0)
		if world.Steps() != 0 {
			t.Fatalf("%s: Reset must zero the step counter", mode)
		}
		if !slices.Equal(initial, world.Current().Cells()) {
			t.Fatalf("%s: Reset with config seed not deterministic", mode)
		}

		world.Reset(777)
		reseeded := append([]Cell(nil), world.Current().Cells()...)
		world.Reset(777)
		if !slices.Equal(reseeded, world.Current().Cells()) {
			t.Fatalf("%s: Reset with explicit seed not deterministic", mode)
		}

		if mode == SeedCircle {
			if !slices.Equal(initial, reseeded) {
				t.Fatal("circle seeding must ignore the seed value")
			}
			continue
		}
		if slices.Equal(initial, reseeded) {
			t.Fatalf("%s: different seeds should produce different initial states", mode)
		}
	}
}

func TestSetFloatParameterClampsAndRebuildsRates(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 10
	cfg.Height = 10
	cfg.RateMode = RateGradient
	cfg.Params.FeedRateMin = 0.02
	cfg.Params.FeedRate = 0.06
	world, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}

	if got := world.feedAt(0, 5); math.Abs(got-0.04) > 1e-9 {
		t.Fatalf("gradient feed at mid row: got %.12f want 0.04", got)
	}

	if !world.SetFloatParameter("feed", 0.1) {
		t.Fatal("expected feed rate to be adjustable")
	}
	if got := world.cfg.Params.FeedRate; math.Abs(got-0.1) > 1e-9 {
		t.Fatalf("feed rate: got %f want 0.1", got)
	}
	if got := world.feedAt(0, 5); math.Abs(got-0.06) > 1e-9 {
		t.Fatalf("gradient feed must ramp toward the new maximum: got %.12f want 0.06", got)
	}

	if !world.SetFloatParameter("feed", 10) {
		t.Fatal("expected setter to clamp values above max")
	}
	if got := world.cfg.Params.FeedRate; math.Abs(got-0.12) > 1e-9 {
		t.Fatalf("feed rate must clamp to 0.12, got %f", got)
	}

	if world.SetFloatParameter("unknown", 1) {
		t.Fatal("unknown keys must not be adjustable")
	}
}

func TestSetIntParameterSeedRadius(t *testing.T) {
	world, err := NewWithConfig(traceConfig())
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	if got := countActivator(world); got != 9 {
		t.Fatalf("radius-2 disk: got %d activator cells, want 9", got)
	}

	if !world.SetIntParameter("seed_radius", 1) {
		t.Fatal("expected seed radius to be adjustable")
	}
	world.Reset(0)
	if got := countActivator(world); got != 1 {
		t.Fatalf("radius-1 disk: got %d activator cells, want 1", got)
	}
}

func countActivator(w *World) int {
	n := 0
	for _, c := range w.Current().Cells() {
		if c.B == 1 {
			n++
		}
	}
	return n
}

func TestDisplayValueQuantization(t *testing.T) {
	cases := []struct {
		cell Cell
		want uint8
	}{
		{Cell{A: 1, B: 0}, 0},
		{Cell{A: 0, B: 1}, 255},
		{Cell{A: 0, B: 0}, 0},
		{Cell{A: 1, B: 1}, 127},
		{Cell{A: 1, B: 3}, 191},
		{Cell{A: -1, B: 0.5}, 0},
	}
	for _, tc := range cases {
		if got := displayValue(tc.cell); got != tc.want {
			t.Fatalf("displayValue(%+v): got %d want %d", tc.cell, got, tc.want)
		}
	}

	world, err := NewWithConfig(traceConfig())
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	cells := world.Cells()
	if len(cells) != 100 {
		t.Fatalf("display buffer length: got %d want 100", len(cells))
	}
	if cells[world.Current().Index(5, 5)] != 255 {
		t.Fatal("seeded activator cell must display as 255")
	}
	if cells[world.Current().Index(0, 0)] != 0 {
		t.Fatal("substrate cell must display as 0")
	}
}

func TestProbeCellAndFieldStats(t *testing.T) {
	world, err := NewWithConfig(traceConfig())
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}

	if a, b, ok := world.ProbeCell(5, 5); !ok || a != 0 || b != 1 {
		t.Fatalf("ProbeCell(5,5): got (%v, %v, %v) want (0, 1, true)", a, b, ok)
	}
	if a, b, ok := world.ProbeCell(0, 0); !ok || a != 1 || b != 0 {
		t.Fatalf("ProbeCell(0,0): got (%v, %v, %v) want (1, 0, true)", a, b, ok)
	}
	for _, pt := range [][2]int{{-1, 0}, {0, -1}, {10, 3}, {3, 10}} {
		if _, _, ok := world.ProbeCell(pt[0], pt[1]); ok {
			t.Fatalf("ProbeCell(%d,%d): got ok for out-of-bounds cell", pt[0], pt[1])
		}
	}

	// 9 activator cells out of 100 on the radius-2 circle.
	meanA, meanB := world.FieldStats()
	if meanA != 0.91 || meanB != 0.09 {
		t.Fatalf("FieldStats: got (%v, %v) want (0.91, 0.09)", meanA, meanB)
	}
}
