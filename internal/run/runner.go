// Package run drives a Gray-Scott world from seed to completion, exporting
// numbered snapshot frames and optional telemetry along the way.
package run

import (
	"context"
	"fmt"
	"image"
	"log"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"rd-lab/internal/core"
	"rd-lab/internal/export"
	"rd-lab/internal/sims/grayscott"
)

// Options bundles the collaborators a Runner writes through. Frames is
// required; the rest are optional.
type Options struct {
	Frames export.FrameWriter
	Movie  *export.MovieRecorder
	Series *export.Series
	Logger *log.Logger
}

// Result summarizes a completed run.
type Result struct {
	// Steps reports how many update passes the run executed.
	Steps int
	// FramesWritten counts persisted snapshot frames, the terminal frame included.
	FramesWritten int
	// Elapsed is the wall-clock duration of the stepping loop.
	Elapsed time.Duration
	// MinA, MaxA and MeanA summarize the substrate field of the final state.
	MinA, MaxA, MeanA float64
	// MinB, MaxB and MeanB summarize the activator field of the final state.
	MinB, MaxB, MeanB float64
}

// Runner executes the snapshot-export loop over a single world. The frame
// canvas persists across snapshots: pixels whose cells have no defined color
// keep whatever an earlier snapshot drew there.
type Runner struct {
	world  *grayscott.World
	opts   Options
	canvas *image.RGBA
	gate   *core.LogGate

	fieldA []float64
	fieldB []float64
}

// New prepares a runner for the world.
func New(world *grayscott.World, opts Options) (*Runner, error) {
	if opts.Frames == nil {
		return nil, fmt.Errorf("frame writer is required")
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	size := world.Size()
	n := size.W * size.H
	return &Runner{
		world:  world,
		opts:   opts,
		canvas: image.NewRGBA(image.Rect(0, 0, size.W, size.H)),
		gate:   core.NewLogGate(2 * time.Second),
		fieldA: make([]float64, n),
		fieldB: make([]float64, n),
	}, nil
}

// Run steps the world through the configured iteration count, exporting a
// frame at every snapshot boundary and once more after the final step. The
// context is checked between iterations only, so cancelling cannot change
// the output of an uninterrupted run.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	cfg := r.world.Config()
	start := time.Now()
	frames := 0
	for i := 0; i < cfg.Iterations; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("run cancelled after %d steps: %w", r.world.Steps(), err)
		}
		if i%cfg.SnapshotEvery == 0 {
			if err := r.export(i); err != nil {
				return Result{}, err
			}
			frames++
		}
		r.world.Step()
		if r.gate.Open() {
			r.opts.Logger.Printf("step %d/%d (%d frames)", r.world.Steps(), cfg.Iterations, frames)
		}
	}
	if err := r.export(cfg.Iterations); err != nil {
		return Result{}, err
	}
	frames++
	res := r.summarize()
	res.FramesWritten = frames
	res.Elapsed = time.Since(start)
	return res, nil
}

// export renders the current state onto the persistent canvas and hands it
// to every configured sink under the given label.
func (r *Runner) export(label int) error {
	cfg := r.world.Config()
	grayscott.RenderFrame(r.world.Current(), r.canvas, cfg.ColorA, cfg.ColorB)
	if err := r.opts.Frames.WriteFrame(r.canvas, label); err != nil {
		return fmt.Errorf("export frame %d: %w", label, err)
	}
	if r.opts.Movie != nil {
		if err := r.opts.Movie.AddFrame(r.canvas); err != nil {
			return fmt.Errorf("export frame %d: %w", label, err)
		}
	}
	if r.opts.Series != nil {
		r.loadFields()
		r.opts.Series.Record(label, r.fieldA, r.fieldB)
	}
	return nil
}

func (r *Runner) loadFields() {
	cells := r.world.Current().Cells()
	for i, c := range cells {
		r.fieldA[i] = c.A
		r.fieldB[i] = c.B
	}
}

func (r *Runner) summarize() Result {
	r.loadFields()
	return Result{
		Steps: r.world.Steps(),
		MinA:  floats.Min(r.fieldA),
		MaxA:  floats.Max(r.fieldA),
		MeanA: stat.Mean(r.fieldA, nil),
		MinB:  floats.Min(r.fieldB),
		MaxB:  floats.Max(r.fieldB),
		MeanB: stat.Mean(r.fieldB, nil),
	}
}
