// Command rate-sweep evaluates a grid of feed/kill rate pairs on small
// worlds and ranks them by the spatial structure of the surviving activator
// field. High standard deviation with a nonzero mean marks parameter pairs
// that form patterns instead of dying out or saturating.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"runtime"
	"sort"
	"strconv"
	"sync"
	"time"

	"gonum.org/v1/gonum/stat"

	"rd-lab/internal/export"
	"rd-lab/internal/sims/grayscott"
)

// activeThreshold is the activator level above which a cell counts as alive.
const activeThreshold = 0.1

type job struct {
	fi, ki     int
	feed, kill float64
}

type result struct {
	fi, ki     int
	feed, kill float64
	meanB      float64
	stdB       float64
	active     float64
	err        error
}

func main() {
	var (
		width     = flag.Int("w", 128, "sweep grid width in cells")
		height    = flag.Int("h", 128, "sweep grid height in cells")
		steps     = flag.Int("steps", 2000, "update passes per candidate")
		radius    = flag.Int("radius", 10, "seed circle radius in cells")
		feedMin   = flag.Float64("feed-min", 0.01, "lowest feed rate")
		feedMax   = flag.Float64("feed-max", 0.09, "highest feed rate")
		feedSteps = flag.Int("feed-steps", 9, "feed rate samples")
		killMin   = flag.Float64("kill-min", 0.045, "lowest kill rate")
		killMax   = flag.Float64("kill-max", 0.07, "highest kill rate")
		killSteps = flag.Int("kill-steps", 9, "kill rate samples")
		workers   = flag.Int("workers", runtime.NumCPU(), "parallel candidate evaluations")
		top       = flag.Int("top", 10, "ranked rows to print")
		mapPath   = flag.String("map", "", "optional phase map PNG path")
		csvPath   = flag.String("csv", "", "optional full results CSV path")
	)
	flag.Parse()

	if *feedSteps < 1 || *killSteps < 1 {
		log.Fatalf("feed-steps and kill-steps must be at least 1")
	}

	base := grayscott.DefaultConfig()
	base.Width = *width
	base.Height = *height
	base.Params.SeedRadius = *radius

	var jobsList []job
	for fi := 0; fi < *feedSteps; fi++ {
		for ki := 0; ki < *killSteps; ki++ {
			jobsList = append(jobsList, job{
				fi:   fi,
				ki:   ki,
				feed: sample(*feedMin, *feedMax, fi, *feedSteps),
				kill: sample(*killMin, *killMax, ki, *killSteps),
			})
		}
	}

	fmt.Printf("Sweeping %d rate pairs (%d workers, %d steps on %dx%d)\n",
		len(jobsList), *workers, *steps, *width, *height)

	jobs := make(chan job)
	results := make(chan result)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results <- evaluate(base, j, *steps)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, j := range jobsList {
			jobs <- j
		}
		close(jobs)
	}()

	start := time.Now()
	var all []result
	for res := range results {
		if res.err != nil {
			log.Printf("feed=%.4f kill=%.4f failed: %v", res.feed, res.kill, res.err)
			continue
		}
		all = append(all, res)
	}
	elapsed := time.Since(start)

	sort.Slice(all, func(i, j int) bool { return all[i].stdB > all[j].stdB })

	fmt.Printf("\nTop %d by activator structure (elapsed %s):\n", *top, elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < *top; i++ {
		res := all[i]
		fmt.Printf("%2d) feed=%.4f kill=%.4f std(b)=%.4f mean(b)=%.4f active=%.1f%%\n",
			i+1, res.feed, res.kill, res.stdB, res.meanB, res.active*100)
	}

	if *mapPath != "" {
		if err := export.WritePNG(*mapPath, phaseMap(all, *feedSteps, *killSteps, base)); err != nil {
			log.Fatalf("write phase map: %v", err)
		}
		fmt.Printf("Phase map written to %s\n", *mapPath)
	}
	if *csvPath != "" {
		if err := writeCSV(*csvPath, all); err != nil {
			log.Fatalf("write csv: %v", err)
		}
		fmt.Printf("Results written to %s\n", *csvPath)
	}
}

// sample returns the i-th of n values spread inclusively over [min, max].
func sample(min, max float64, i, n int) float64 {
	if n <= 1 {
		return min
	}
	return min + (max-min)*float64(i)/float64(n-1)
}

func evaluate(base grayscott.Config, j job, steps int) result {
	cfg := base
	cfg.Params.FeedRate = j.feed
	cfg.Params.FeedRateMin = j.feed
	cfg.Params.KillRate = j.kill
	cfg.Params.KillRateMin = j.kill

	world, err := grayscott.NewWithConfig(cfg)
	if err != nil {
		return result{fi: j.fi, ki: j.ki, feed: j.feed, kill: j.kill, err: err}
	}
	for s := 0; s < steps; s++ {
		world.Step()
	}

	cells := world.Current().Cells()
	bs := make([]float64, len(cells))
	active := 0
	for i, c := range cells {
		bs[i] = c.B
		if c.B > activeThreshold {
			active++
		}
	}
	meanB, stdB := stat.MeanStdDev(bs, nil)
	return result{
		fi:     j.fi,
		ki:     j.ki,
		feed:   j.feed,
		kill:   j.kill,
		meanB:  meanB,
		stdB:   stdB,
		active: float64(active) / float64(len(cells)),
	}
}

// phaseMap renders one pixel per rate pair, kill across x and feed down y,
// colored through the activator palette by normalized structure score.
func phaseMap(all []result, feedSteps, killSteps int, cfg grayscott.Config) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, killSteps, feedSteps))
	maxStd := 0.0
	for _, res := range all {
		if res.stdB > maxStd {
			maxStd = res.stdB
		}
	}
	palette := grayscott.Palette(cfg.ColorA, cfg.ColorB)
	for _, res := range all {
		idx := 0
		if maxStd > 0 {
			idx = int(res.stdB / maxStd * 255)
			if idx > 255 {
				idx = 255
			}
		}
		img.SetRGBA(res.ki, res.fi, palette[idx])
	}
	return img
}

func writeCSV(path string, all []result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.Write([]string{"feed", "kill", "mean_b", "std_b", "active_fraction"}); err != nil {
		return err
	}
	for _, res := range all {
		row := []string{
			strconv.FormatFloat(res.feed, 'f', -1, 64),
			strconv.FormatFloat(res.kill, 'f', -1, 64),
			strconv.FormatFloat(res.meanB, 'g', -1, 64),
			strconv.FormatFloat(res.stdB, 'g', -1, 64),
			strconv.FormatFloat(res.active, 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}
