package profiler

import (
	"math"
	"testing"
	"time"
)

func TestTickReportsIntervalDeltas(t *testing.T) {
	now := time.Unix(0, 0)
	var reports []Report
	p := NewProfiler(
		WithInterval(600*time.Millisecond),
		WithClock(func() time.Time { return now }),
		WithReportHandler(func(r Report) { reports = append(reports, r) }),
	)

	for i := 0; i < 59; i++ {
		now = now.Add(10 * time.Millisecond)
		if p.Tick(Counters{Clamped: 2, Skipped: 1}) {
			t.Fatalf("reported early on tick %d", i)
		}
	}
	now = now.Add(10 * time.Millisecond)
	if !p.Tick(Counters{Clamped: 3, Skipped: 1}) {
		t.Fatal("expected a report once the interval elapsed")
	}
	if len(reports) != 1 {
		t.Fatalf("reports = %d, want 1", len(reports))
	}
	r := reports[0]
	if math.Abs(r.FPS-100) > 1e-6 {
		t.Errorf("FPS = %.2f, want 100", r.FPS)
	}
	if r.Clamped != 3 || r.Skipped != 1 || r.RenderFailures != 0 {
		t.Errorf("first interval counters = %d/%d/%d", r.Clamped, r.Skipped, r.RenderFailures)
	}

	now = now.Add(2 * time.Second)
	p.Tick(Counters{Clamped: 5, Skipped: 1, RenderFailures: 1})
	r = reports[1]
	if r.Clamped != 2 || r.Skipped != 0 || r.RenderFailures != 1 {
		t.Errorf("second interval counters = %d/%d/%d, want 2/0/1", r.Clamped, r.Skipped, r.RenderFailures)
	}
	if math.Abs(r.FPS-0.5) > 1e-9 {
		t.Errorf("FPS = %v, want 0.5", r.FPS)
	}
}

func TestWithIntervalIgnoresNonPositive(t *testing.T) {
	p := NewProfiler(WithInterval(0))
	if p.updateInterval != time.Second {
		t.Errorf("interval = %v, want 1s", p.updateInterval)
	}
	p = NewProfiler(WithInterval(250 * time.Millisecond))
	if p.updateInterval != 250*time.Millisecond {
		t.Errorf("interval = %v, want 250ms", p.updateInterval)
	}
}
