package grayscott

import (
	"strconv"

	"rd-lab/internal/core"
)

// Parameters exposes the active configuration as labeled display groups.
func (w *World) Parameters() core.ParameterSnapshot {
	p := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				int64Param("seed", "Seed", w.cfg.Seed),
				stringParam("seed_mode", "Seed mode", w.cfg.SeedMode),
				intParam("seed_radius", "Seed radius", p.SeedRadius),
			},
		},
		{
			Name: "Reaction",
			Params: []core.Parameter{
				floatParam("feed", "Feed rate", p.FeedRate),
				floatParam("kill", "Kill rate", p.KillRate),
				stringParam("rate_mode", "Rate mode", w.cfg.RateMode),
			},
		},
		{
			Name: "Diffusion",
			Params: []core.Parameter{
				floatParam("diffusion_a", "Diffusion A", p.DiffusionA),
				floatParam("diffusion_b", "Diffusion B", p.DiffusionB),
				floatParam("dt", "Time step", p.TimeStep),
				floatParam("adjacent_weight", "Adjacent weight", p.AdjacentWeight),
				floatParam("diagonal_weight", "Diagonal weight", p.DiagonalWeight),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

var controlDefs = []core.Control{
	{Key: "feed", Label: "Feed rate", Step: 0.0005, Min: 0, Max: 0.12},
	{Key: "kill", Label: "Kill rate", Step: 0.0005, Min: 0, Max: 0.08},
	{Key: "diffusion_a", Label: "Diffusion A", Step: 0.05, Min: 0, Max: 2},
	{Key: "diffusion_b", Label: "Diffusion B", Step: 0.05, Min: 0, Max: 2},
	{Key: "dt", Label: "Time step", Step: 0.1, Min: 0.1, Max: 2},
	{Key: "seed_radius", Label: "Seed radius", Step: 1, Min: 1, Max: 200, Integer: true},
}

// Controls lists the parameters adjustable from the viewer.
func (w *World) Controls() []core.Control {
	out := make([]core.Control, len(controlDefs))
	copy(out, controlDefs)
	return out
}

// SetFloatParameter applies a live adjustment to a floating point parameter,
// clamped to the control's bounds. Rate changes rebuild the rate fields so
// gradient runs ramp toward the new maximum.
func (w *World) SetFloatParameter(key string, value float64) bool {
	value = clampControl(key, value)
	switch key {
	case "feed":
		w.cfg.Params.FeedRate = value
	case "kill":
		w.cfg.Params.KillRate = value
	case "diffusion_a":
		w.cfg.Params.DiffusionA = value
		return true
	case "diffusion_b":
		w.cfg.Params.DiffusionB = value
		return true
	case "dt":
		w.cfg.Params.TimeStep = value
		return true
	default:
		return false
	}
	w.feedAt, w.killAt = rateFields(w.cfg)
	return true
}

// SetIntParameter applies a live adjustment to an integer parameter. The
// seed radius takes effect on the next reset.
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case "seed_radius":
		w.cfg.Params.SeedRadius = int(clampControl(key, float64(value)))
		return true
	}
	return false
}

func clampControl(key string, value float64) float64 {
	for _, c := range controlDefs {
		if c.Key != key {
			continue
		}
		if value < c.Min {
			return c.Min
		}
		if value > c.Max {
			return c.Max
		}
		return value
	}
	return value
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Value: strconv.Itoa(value)}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Value: strconv.FormatInt(value, 10)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Value: value}
}
