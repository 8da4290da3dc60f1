package app

import (
	"flag"
	"strconv"

	"rd-lab/internal/sims/grayscott"
)

// Config represents the command-line parameters of the viewer.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	Seed  int64

	Width    int
	Height   int
	SeedMode string
	RateMode string
	Feed     float64
	Kill     float64

	SaveDir    string
	SaveFormat string
}

// NewConfig returns a Config populated with the viewer defaults.
func NewConfig() *Config {
	sim := grayscott.DefaultConfig()
	return &Config{
		Sim:        "grayscott",
		Scale:      1,
		TPS:        60,
		Seed:       sim.Seed,
		Width:      sim.Width,
		Height:     sim.Height,
		SeedMode:   sim.SeedMode,
		RateMode:   sim.RateMode,
		Feed:       sim.Params.FeedRate,
		Kill:       sim.Params.KillRate,
		SaveDir:    "frames",
		SaveFormat: ".png",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.StringVar(&c.SeedMode, "seed-mode", c.SeedMode, "initial pattern: circle, spots or noise")
	fs.StringVar(&c.RateMode, "rate-mode", c.RateMode, "rate field: constant or gradient")
	fs.Float64Var(&c.Feed, "feed", c.Feed, "feed rate")
	fs.Float64Var(&c.Kill, "kill", c.Kill, "kill rate")
	fs.StringVar(&c.SaveDir, "save-dir", c.SaveDir, "directory for captured frames")
	fs.StringVar(&c.SaveFormat, "save-format", c.SaveFormat, "captured frame format: .png or .bmp")
}

// Overrides collects sim configuration overrides for the flags that were
// explicitly set, leaving everything else to the sim's own defaults.
func (c *Config) Overrides(fs *flag.FlagSet) map[string]string {
	m := map[string]string{}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "w":
			m["w"] = strconv.Itoa(c.Width)
		case "h":
			m["h"] = strconv.Itoa(c.Height)
		case "seed":
			m["seed"] = strconv.FormatInt(c.Seed, 10)
		case "seed-mode":
			m["seed_mode"] = c.SeedMode
		case "rate-mode":
			m["rate_mode"] = c.RateMode
		case "feed":
			m["feed"] = strconv.FormatFloat(c.Feed, 'f', -1, 64)
		case "kill":
			m["kill"] = strconv.FormatFloat(c.Kill, 'f', -1, 64)
		}
	})
	return m
}
