package grayscott

import (
	"fmt"
	"image/color"
	"strconv"
)

// Seeding modes. SeedCircle is the reference pattern; the others are
// deterministic alternatives driven by Config.Seed.
const (
	SeedCircle = "circle"
	SeedSpots  = "spots"
	SeedNoise  = "noise"
)

// Rate modes. RateConstant applies FeedRate/KillRate everywhere;
// RateGradient ramps the feed rate across y and the kill rate across x
// between the Min and max endpoints.
const (
	RateConstant = "constant"
	RateGradient = "gradient"
)

// Params holds the reaction-diffusion constants and stencil weights. All are
// read-only for the duration of a run.
type Params struct {
	DiffusionA     float64
	DiffusionB     float64
	TimeStep       float64
	AdjacentWeight float64
	DiagonalWeight float64

	FeedRate float64
	KillRate float64
	// Gradient-mode lower endpoints. The constant mode ignores them; with
	// both endpoints equal the gradient mode degenerates to constant rates.
	FeedRateMin float64
	KillRateMin float64

	SeedRadius int

	// Spots-mode tunables.
	SpotCount  int
	SpotRadius int

	// Noise-mode tunables. Cells where the normalized Perlin sample exceeds
	// the threshold become activator seeds.
	NoiseScale     float64
	NoiseThreshold float64
}

// Config controls a full simulation run. Defaults reproduce the reference
// pattern exactly.
type Config struct {
	Width  int
	Height int

	Seed int64

	SeedMode string
	RateMode string

	Iterations    int
	SnapshotEvery int

	ColorA color.RGBA
	ColorB color.RGBA

	Params Params
}

// DefaultConfig returns the reference configuration.
func DefaultConfig() Config {
	return Config{
		Width:         600,
		Height:        600,
		Seed:          1337,
		SeedMode:      SeedCircle,
		RateMode:      RateConstant,
		Iterations:    10000,
		SnapshotEvery: 200,
		ColorA:        color.RGBA{R: 0, G: 0, B: 0, A: 255},
		ColorB:        color.RGBA{R: 50, G: 230, B: 255, A: 255},
		Params: Params{
			DiffusionA:     1.0,
			DiffusionB:     0.5,
			TimeStep:       1.0,
			AdjacentWeight: 0.2,
			DiagonalWeight: 0.05,
			FeedRate:       0.0545,
			KillRate:       0.062,
			FeedRateMin:    0.0545,
			KillRateMin:    0.062,
			SeedRadius:     20,
			SpotCount:      10,
			SpotRadius:     4,
			NoiseScale:     0.04,
			NoiseThreshold: 0.72,
		},
	}
}

// Validate rejects configurations that cannot produce a well-formed run.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("grid dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Iterations <= 0 {
		return fmt.Errorf("iteration count must be positive, got %d", c.Iterations)
	}
	if c.SnapshotEvery <= 0 {
		return fmt.Errorf("snapshot interval must be positive, got %d", c.SnapshotEvery)
	}
	if c.Params.SeedRadius <= 0 {
		return fmt.Errorf("seed radius must be positive, got %d", c.Params.SeedRadius)
	}
	switch c.SeedMode {
	case SeedCircle, SeedSpots, SeedNoise:
	default:
		return fmt.Errorf("unknown seed mode %q", c.SeedMode)
	}
	switch c.RateMode {
	case RateConstant, RateGradient:
	default:
		return fmt.Errorf("unknown rate mode %q", c.RateMode)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Unknown keys and unparsable values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["seed_mode"]; ok && v != "" {
		c.SeedMode = v
	}
	if v, ok := cfg["rate_mode"]; ok && v != "" {
		c.RateMode = v
	}
	if v, ok := cfg["iterations"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Iterations = parsed
		}
	}
	if v, ok := cfg["snapshot_every"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.SnapshotEvery = parsed
		}
	}
	if v, ok := cfg["diffusion_a"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.DiffusionA = parsed
		}
	}
	if v, ok := cfg["diffusion_b"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.DiffusionB = parsed
		}
	}
	if v, ok := cfg["dt"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.TimeStep = parsed
		}
	}
	if v, ok := cfg["adjacent_weight"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.AdjacentWeight = parsed
		}
	}
	if v, ok := cfg["diagonal_weight"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.DiagonalWeight = parsed
		}
	}
	if v, ok := cfg["feed"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.FeedRate = parsed
			c.Params.FeedRateMin = parsed
		}
	}
	if v, ok := cfg["kill"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.KillRate = parsed
			c.Params.KillRateMin = parsed
		}
	}
	if v, ok := cfg["feed_min"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.FeedRateMin = parsed
		}
	}
	if v, ok := cfg["kill_min"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.KillRateMin = parsed
		}
	}
	if v, ok := cfg["seed_radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.SeedRadius = parsed
		}
	}
	if v, ok := cfg["spot_count"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.SpotCount = parsed
		}
	}
	if v, ok := cfg["spot_radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.SpotRadius = parsed
		}
	}
	if v, ok := cfg["noise_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.NoiseScale = parsed
		}
	}
	if v, ok := cfg["noise_threshold"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.NoiseThreshold = parsed
		}
	}
	return c
}
