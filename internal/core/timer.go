package core

import "time"

// LogGate rate-limits progress output from a tight simulation loop to a
// wall-clock interval, so long batch runs stay observable without flooding
// the log.
type LogGate struct {
	every time.Duration
	last  time.Time
}

// NewLogGate constructs a gate that opens at most once per interval.
func NewLogGate(every time.Duration) *LogGate {
	if every <= 0 {
		every = time.Second
	}
	return &LogGate{every: every}
}

// Open reports whether the interval has elapsed since the last opening. The
// first call always opens.
func (g *LogGate) Open() bool {
	now := time.Now()
	if !g.last.IsZero() && now.Sub(g.last) < g.every {
		return false
	}
	g.last = now
	return true
}
