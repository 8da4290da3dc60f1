package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/gonum/stat"
)

// Sample holds the field statistics captured at one snapshot.
type Sample struct {
	Step  int
	MeanA float64
	StdA  float64
	MeanB float64
	StdB  float64
}

// Series accumulates per-snapshot concentration statistics over a run.
type Series struct {
	samples []Sample
}

// Record computes mean and standard deviation of both concentration fields
// and appends the sample under the given step label.
func (s *Series) Record(step int, a, b []float64) {
	meanA, stdA := stat.MeanStdDev(a, nil)
	meanB, stdB := stat.MeanStdDev(b, nil)
	s.samples = append(s.samples, Sample{
		Step:  step,
		MeanA: meanA,
		StdA:  stdA,
		MeanB: meanB,
		StdB:  stdB,
	})
}

// Samples returns the recorded samples in capture order.
func (s *Series) Samples() []Sample { return s.samples }

// Len reports the number of recorded samples.
func (s *Series) Len() int { return len(s.samples) }

// WriteCSV writes one row per sample with a header line.
func (s *Series) WriteCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create series csv: %w", err)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.Write([]string{"step", "mean_a", "std_a", "mean_b", "std_b"}); err != nil {
		return fmt.Errorf("write series header: %w", err)
	}
	for _, smp := range s.samples {
		row := []string{
			strconv.Itoa(smp.Step),
			formatStat(smp.MeanA),
			formatStat(smp.StdA),
			formatStat(smp.MeanB),
			formatStat(smp.StdB),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write series row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush series csv: %w", err)
	}
	return f.Close()
}

// WriteChart renders the mean concentrations as a PNG line chart.
func (s *Series) WriteChart(path string) error {
	if len(s.samples) < 2 {
		return fmt.Errorf("need at least 2 samples to chart, have %d", len(s.samples))
	}
	xs := make([]float64, len(s.samples))
	meanA := make([]float64, len(s.samples))
	meanB := make([]float64, len(s.samples))
	for i, smp := range s.samples {
		xs[i] = float64(smp.Step)
		meanA[i] = smp.MeanA
		meanB[i] = smp.MeanB
	}
	graph := chart.Chart{
		Width:  800,
		Height: 400,
		XAxis: chart.XAxis{
			Name: "step",
			ValueFormatter: func(v interface{}) string {
				return strconv.Itoa(int(v.(float64)))
			},
		},
		YAxis: chart.YAxis{Name: "mean concentration"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "mean A",
				XValues: xs,
				YValues: meanA,
				Style:   chart.Style{StrokeColor: chart.ColorBlue, StrokeWidth: 2.0},
			},
			chart.ContinuousSeries{
				Name:    "mean B",
				XValues: xs,
				YValues: meanB,
				Style:   chart.Style{StrokeColor: chart.ColorRed, StrokeWidth: 2.0},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create series chart: %w", err)
	}
	defer f.Close()
	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("render series chart: %w", err)
	}
	return f.Close()
}

func formatStat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
