package grayscott

import (
	"math"
	"testing"
)

func TestConstantRate(t *testing.T) {
	f := ConstantRate(0.0545)
	if got := f(0, 0); got != 0.0545 {
		t.Fatalf("got %v want 0.0545", got)
	}
	if f(0, 0) != f(99, 42) {
		t.Fatal("constant field must not vary with position")
	}
}

func TestFeedGradientRampsOverRows(t *testing.T) {
	f := FeedGradient(0.02, 0.06, 10)
	cases := []struct {
		y    int
		want float64
	}{
		{0, 0.02},
		{5, 0.04},
		{9, 0.056},
	}
	for _, tc := range cases {
		if got := f(3, tc.y); math.Abs(got-tc.want) > 1e-12 {
			t.Fatalf("feed at y=%d: got %.12f want %.12f", tc.y, got, tc.want)
		}
	}
	// The ramp never reaches the upper endpoint: the last row sits one
	// height-fraction below it.
	if got := f(0, 9); got >= 0.06 {
		t.Fatalf("feed at last row must stay below max, got %.12f", got)
	}
}

func TestKillGradientRampsOverColumns(t *testing.T) {
	f := KillGradient(0.05, 0.07, 8)
	if got := f(0, 5); math.Abs(got-0.05) > 1e-12 {
		t.Fatalf("kill at x=0: got %.12f want 0.05", got)
	}
	if got := f(4, 0); math.Abs(got-0.06) > 1e-12 {
		t.Fatalf("kill at x=4: got %.12f want 0.06", got)
	}
}

func TestRateFieldsModeSwitch(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 10
	cfg.Height = 10
	cfg.Params.FeedRateMin = 0.01
	cfg.Params.KillRateMin = 0.04

	feed, kill := rateFields(cfg)
	if got := feed(0, 9); got != cfg.Params.FeedRate {
		t.Fatalf("constant mode feed: got %v want %v", got, cfg.Params.FeedRate)
	}
	if got := kill(9, 0); got != cfg.Params.KillRate {
		t.Fatalf("constant mode kill: got %v want %v", got, cfg.Params.KillRate)
	}

	cfg.RateMode = RateGradient
	feed, kill = rateFields(cfg)
	if got := feed(0, 0); math.Abs(got-0.01) > 1e-12 {
		t.Fatalf("gradient feed at top row: got %.12f want 0.01", got)
	}
	if got := kill(0, 0); math.Abs(got-0.04) > 1e-12 {
		t.Fatalf("gradient kill at left column: got %.12f want 0.04", got)
	}
	if feed(0, 0) == feed(0, 9) {
		t.Fatal("gradient feed must vary with the row")
	}
	if kill(0, 0) == kill(9, 0) {
		t.Fatal("gradient kill must vary with the column")
	}
}
