package grayscott

import (
	"github.com/aquilax/go-perlin"

	"rd-lab/internal/core"
)

// seed fills g with the initial state for the configured seeding mode.
func (w *World) seed(g *Grid, seed int64) {
	switch w.cfg.SeedMode {
	case SeedSpots:
		w.seedSpots(g, seed)
	case SeedNoise:
		w.seedNoise(g, seed)
	default:
		w.seedCircle(g)
	}
}

// seedCircle paints substrate everywhere except a filled activator disk
// around the integer grid center. Only cells whose squared distance is
// strictly below the squared radius join the disk; boundary cells stay
// substrate.
func (w *World) seedCircle(g *Grid) {
	cx := w.w / 2
	cy := w.h / 2
	r2 := w.cfg.Params.SeedRadius * w.cfg.Params.SeedRadius
	for y := 0; y < w.h; y++ {
		for x := 0; x < w.w; x++ {
			dx := x - cx
			dy := y - cy
			c := Cell{A: 1}
			if dx*dx+dy*dy < r2 {
				c = Cell{B: 1}
			}
			g.cells[g.Index(x, y)] = c
		}
	}
}

// seedSpots scatters SpotCount activator disks at random centers over a
// substrate background. Disks may overlap each other or the grid edge.
func (w *World) seedSpots(g *Grid, seed int64) {
	fillSubstrate(g)
	rng := core.NewRNG(seed)
	r := w.cfg.Params.SpotRadius
	for i := 0; i < w.cfg.Params.SpotCount; i++ {
		cx := rng.IntN(w.w)
		cy := rng.IntN(w.h)
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if dx*dx+dy*dy >= r*r {
					continue
				}
				x, y := cx+dx, cy+dy
				if !g.InBounds(x, y) {
					continue
				}
				g.cells[g.Index(x, y)] = Cell{B: 1}
			}
		}
	}
}

// seedNoise thresholds smooth noise: positions whose normalized sample
// exceeds NoiseThreshold start as activator, the rest as substrate.
func (w *World) seedNoise(g *Grid, seed int64) {
	p := perlin.NewPerlin(2, 2, 3, seed)
	scale := w.cfg.Params.NoiseScale
	for y := 0; y < w.h; y++ {
		for x := 0; x < w.w; x++ {
			v := (p.Noise2D(float64(x)*scale, float64(y)*scale) + 1) / 2
			c := Cell{A: 1}
			if v > w.cfg.Params.NoiseThreshold {
				c = Cell{B: 1}
			}
			g.cells[g.Index(x, y)] = c
		}
	}
}

func fillSubstrate(g *Grid) {
	for i := range g.cells {
		g.cells[i] = Cell{A: 1}
	}
}
