package profiler

import "time"

// ProfilerBuilderOption is a functional option for configuring a Profiler.
type ProfilerBuilderOption func(*Profiler)

// WithInterval sets how often statistics are reported.
//
// Parameters:
//   - d: the report interval (values <= 0 keep the 1 second default)
//
// Returns:
//   - ProfilerBuilderOption: option function to apply
func WithInterval(d time.Duration) ProfilerBuilderOption {
	return func(p *Profiler) {
		if d > 0 {
			p.updateInterval = d
		}
	}
}

// WithClock replaces the wall clock used to measure intervals.
//
// Parameters:
//   - now: the clock
//
// Returns:
//   - ProfilerBuilderOption: option function to apply
func WithClock(now func() time.Time) ProfilerBuilderOption {
	return func(p *Profiler) {
		p.now = now
	}
}

// WithReportHandler replaces the default log output.
//
// Parameters:
//   - fn: called with each interval's report
//
// Returns:
//   - ProfilerBuilderOption: option function to apply
func WithReportHandler(fn func(Report)) ProfilerBuilderOption {
	return func(p *Profiler) {
		if fn != nil {
			p.onReport = fn
		}
	}
}
