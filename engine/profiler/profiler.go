package profiler

import (
	"log"
	"runtime"
	"time"
)

// Counters are the running frame totals the profiler reports per interval.
// Each value only grows; the profiler logs the difference since the last report.
type Counters struct {
	Clamped        uint64
	Skipped        uint64
	RenderFailures uint64
}

// Report is one interval's worth of statistics.
type Report struct {
	FPS            float64
	HeapMB         float64
	AllocRateMB    float64
	GCCount        uint32
	LastPauseUs    uint64
	MaxPauseUs     uint64
	SysMB          float64
	Clamped        uint64
	Skipped        uint64
	RenderFailures uint64
}

// Profiler tracks frame rate, memory and frame-step statistics for performance monitoring.
// Outputs stats to the log at a configurable interval.
type Profiler struct {
	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
	lastCounters   Counters
	now            func() time.Time
	onReport       func(Report)
}

// NewProfiler creates a new Profiler with default settings.
// Update interval defaults to 1 second.
//
// Parameters:
//   - options: functional options for the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerBuilderOption) *Profiler {
	p := &Profiler{
		updateInterval: time.Second,
		memStats:       runtime.MemStats{},
		now:            time.Now,
		onReport:       logReport,
	}
	for _, opt := range options {
		opt(p)
	}
	p.lastTime = p.now()
	return p
}

// Tick should be called once per frame to track frame timing.
// Reports performance statistics when the update interval has elapsed.
// Statistics include: FPS, heap usage, allocation rate, GC count/pause times, total memory,
// and the clamped, skipped and failed frames of the interval.
//
// Parameters:
//   - c: the running frame totals
//
// Returns:
//   - bool: true if stats were reported this tick, false otherwise
func (p *Profiler) Tick(c Counters) bool {
	p.frameCount++
	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)

	if elapsed < p.updateInterval {
		return false
	}

	runtime.ReadMemStats(&p.memStats)
	r := Report{
		FPS: float64(p.frameCount) / elapsed.Seconds(),
		// Alloc: live heap, Sys: process footprint obtained from the OS
		HeapMB:         float64(p.memStats.Alloc) / 1024 / 1024,
		SysMB:          float64(p.memStats.Sys) / 1024 / 1024,
		AllocRateMB:    float64(p.memStats.TotalAlloc-p.lastTotalAlloc) / 1024 / 1024 / elapsed.Seconds(),
		GCCount:        p.memStats.NumGC,
		Clamped:        c.Clamped - p.lastCounters.Clamped,
		Skipped:        c.Skipped - p.lastCounters.Skipped,
		RenderFailures: c.RenderFailures - p.lastCounters.RenderFailures,
	}

	if gcCount := r.GCCount; gcCount > 0 {
		// PauseNs is a circular buffer of last 256 GC pauses
		r.LastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000

		startIdx := p.lastGCCount
		if gcCount-startIdx > 256 {
			startIdx = gcCount - 256
		}
		for i := startIdx; i < gcCount; i++ {
			if pause := p.memStats.PauseNs[i%256] / 1000; pause > r.MaxPauseUs {
				r.MaxPauseUs = pause
			}
		}
	}

	p.onReport(r)

	p.frameCount = 0
	p.lastTime = currentTime
	p.lastGCCount = r.GCCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	p.lastCounters = c
	return true
}

func logReport(r Report) {
	log.Printf("[Profiler] FPS: %.2f | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (last: %d µs, max: %d µs) | Sys: %.2f MB | Clamped: %d | Skipped: %d | Render failures: %d",
		r.FPS, r.HeapMB, r.AllocRateMB, r.GCCount, r.LastPauseUs, r.MaxPauseUs, r.SysMB, r.Clamped, r.Skipped, r.RenderFailures)
}
