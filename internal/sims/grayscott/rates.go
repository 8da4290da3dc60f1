package grayscott

// RateField maps a grid position to a local rate value. Constant fields
// return the same value everywhere; gradient fields ramp across the grid so
// a single run samples a band of the parameter space.
type RateField func(x, y int) float64

// ConstantRate returns a field that yields v at every position.
func ConstantRate(v float64) RateField {
	return func(int, int) float64 { return v }
}

// FeedGradient ramps the feed rate vertically from min at the top row to
// just under max at the bottom row.
func FeedGradient(min, max float64, height int) RateField {
	span := max - min
	return func(_, y int) float64 {
		return float64(y)/float64(height)*span + min
	}
}

// KillGradient ramps the kill rate horizontally from min at the left column
// to just under max at the right column.
func KillGradient(min, max float64, width int) RateField {
	span := max - min
	return func(x, _ int) float64 {
		return float64(x)/float64(width)*span + min
	}
}

func rateFields(cfg Config) (feed, kill RateField) {
	switch cfg.RateMode {
	case RateGradient:
		feed = FeedGradient(cfg.Params.FeedRateMin, cfg.Params.FeedRate, cfg.Height)
		kill = KillGradient(cfg.Params.KillRateMin, cfg.Params.KillRate, cfg.Width)
	default:
		feed = ConstantRate(cfg.Params.FeedRate)
		kill = ConstantRate(cfg.Params.KillRate)
	}
	return feed, kill
}
