// package profiler provides lightweight tick-rate and memory telemetry for
// the engine loop.
package profiler

import (
	"log"
	"runtime"
	"time"
)

// Profiler tracks tick rate and heap statistics, logging a summary line at
// a fixed interval. Call Tick once per engine tick.
type Profiler struct {
	tickCount      int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastTotalAlloc uint64
}

// NewProfiler creates a profiler that logs once per second.
//
// Returns:
//   - *Profiler: the profiler
func NewProfiler() *Profiler {
	return &Profiler{
		lastTime:       time.Now(),
		updateInterval: time.Second,
	}
}

// Tick records one engine tick and logs a summary when the update interval
// has elapsed.
//
// Returns:
//   - bool: true if a summary was logged this tick
func (p *Profiler) Tick() bool {
	p.tickCount++
	now := time.Now()
	elapsed := now.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	tps := float64(p.tickCount) / elapsed.Seconds()
	runtime.ReadMemStats(&p.memStats)
	allocRate := float64(p.memStats.TotalAlloc-p.lastTotalAlloc) / elapsed.Seconds() / 1024

	log.Printf("profiler: %.1f ticks/s | heap %.1f MiB | alloc %.0f KiB/s | gc %d",
		tps,
		float64(p.memStats.HeapAlloc)/(1024*1024),
		allocRate,
		p.memStats.NumGC,
	)

	p.lastTotalAlloc = p.memStats.TotalAlloc
	p.tickCount = 0
	p.lastTime = now
	return true
}
