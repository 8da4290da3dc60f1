// Command rd runs a Gray-Scott reaction-diffusion simulation headlessly and
// exports numbered snapshot frames plus optional telemetry.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"rd-lab/internal/export"
	"rd-lab/internal/run"
	"rd-lab/internal/sims/grayscott"
)

const movieFPS = 12

type kvList []string

func (l *kvList) String() string { return strings.Join(*l, ",") }

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	var (
		out      = flag.String("out", "out", "output directory for snapshot frames")
		format   = flag.String("format", "png", "frame format: png or bmp")
		base     = flag.String("base", "Output", "frame filename prefix")
		width    = flag.Int("w", 600, "grid width in cells")
		height   = flag.Int("h", 600, "grid height in cells")
		iters    = flag.Int("iterations", 10000, "update passes to run")
		every    = flag.Int("snapshot-every", 200, "iterations between snapshots")
		seed     = flag.Int64("seed", 1337, "seed for spots/noise seeding")
		seedMode = flag.String("seed-mode", "circle", "initial pattern: circle, spots or noise")
		rateMode = flag.String("rate-mode", "constant", "rate field: constant or gradient")
		feed     = flag.Float64("feed", 0.0545, "feed rate")
		kill     = flag.Float64("kill", 0.062, "kill rate")
		dt       = flag.Float64("dt", 1.0, "integration time step")
		radius   = flag.Int("radius", 20, "seed circle radius in cells")
		template = flag.String("template", "", "template raster to probe for advisory dimensions")
		movie    = flag.String("movie", "", "optional MJPEG AVI capture path")
		csvPath  = flag.String("csv", "", "optional per-snapshot statistics CSV path")
		chart    = flag.String("chart", "", "optional mean-concentration chart PNG path")
		manifest = flag.String("manifest", "", "optional run manifest JSON path")
	)
	var sets kvList
	flag.Var(&sets, "set", "extra sim parameter in key=value form (repeatable)")
	flag.Parse()

	m := map[string]string{
		"w":              strconv.Itoa(*width),
		"h":              strconv.Itoa(*height),
		"iterations":     strconv.Itoa(*iters),
		"snapshot_every": strconv.Itoa(*every),
		"seed":           strconv.FormatInt(*seed, 10),
		"seed_mode":      *seedMode,
		"rate_mode":      *rateMode,
		"feed":           strconv.FormatFloat(*feed, 'f', -1, 64),
		"kill":           strconv.FormatFloat(*kill, 'f', -1, 64),
		"dt":             strconv.FormatFloat(*dt, 'f', -1, 64),
		"seed_radius":    strconv.Itoa(*radius),
	}
	for _, kv := range sets {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			log.Fatalf("malformed -set %q, want key=value", kv)
		}
		m[parts[0]] = parts[1]
	}

	cfg := grayscott.FromMap(m)

	if *template != "" {
		tw, th, err := export.Probe(*template)
		if err != nil {
			log.Fatalf("probe template: %v", err)
		}
		if tw != cfg.Width || th != cfg.Height {
			log.Printf("template %s is %dx%d, run uses %dx%d", *template, tw, th, cfg.Width, cfg.Height)
		}
	}

	world, err := grayscott.NewWithConfig(cfg)
	if err != nil {
		log.Fatalf("configure world: %v", err)
	}

	frames, err := export.NewDirWriter(*out, *base, "."+strings.TrimPrefix(*format, "."))
	if err != nil {
		log.Fatalf("open frame writer: %v", err)
	}

	opts := run.Options{Frames: frames}
	if *movie != "" {
		rec, err := export.NewMovieRecorder(*movie, cfg.Width, cfg.Height, movieFPS)
		if err != nil {
			log.Fatalf("open movie: %v", err)
		}
		opts.Movie = rec
	}
	if *csvPath != "" || *chart != "" {
		opts.Series = &export.Series{}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigc:
			log.Println("interrupted, stopping after current iteration")
			cancel()
		case <-ctx.Done():
		}
	}()

	runner, err := run.New(world, opts)
	if err != nil {
		log.Fatalf("configure runner: %v", err)
	}
	res, err := runner.Run(ctx)
	if err != nil {
		log.Fatalf("run: %v", err)
	}
	if opts.Movie != nil {
		if err := opts.Movie.Close(); err != nil {
			log.Fatalf("close movie: %v", err)
		}
	}
	if *csvPath != "" {
		if err := opts.Series.WriteCSV(*csvPath); err != nil {
			log.Fatalf("write csv: %v", err)
		}
	}
	if *chart != "" {
		if err := opts.Series.WriteChart(*chart); err != nil {
			log.Fatalf("write chart: %v", err)
		}
	}
	if *manifest != "" {
		if err := writeManifest(*manifest, cfg, res); err != nil {
			log.Fatalf("write manifest: %v", err)
		}
	}

	log.Printf("done: %d steps, %d frames in %s (%s)",
		res.Steps, res.FramesWritten, *out, res.Elapsed.Round(time.Millisecond))
	log.Printf("final field: a in [%.4f, %.4f] mean %.4f, b in [%.4f, %.4f] mean %.4f",
		res.MinA, res.MaxA, res.MeanA, res.MinB, res.MaxB, res.MeanB)
}

func writeManifest(path string, cfg grayscott.Config, res run.Result) error {
	doc := struct {
		Config grayscott.Config `json:"config"`
		Result run.Result       `json:"result"`
	}{Config: cfg, Result: res}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
