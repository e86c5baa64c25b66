package metrics

import (
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Collector holds the run's shared counters. Every worker records into the
// same Collector; one mutex covers the counts and the latency histogram so
// a snapshot always sees both sides of an update.
type Collector struct {
	mu         sync.Mutex
	hist       *hdrhistogram.Histogram
	successes  int64
	failures   int64
	minLatency time.Duration
	maxLatency time.Duration
}

// Stats represents aggregated metrics.
type Stats struct {
	Total          int64
	Successes      int64
	Failures       int64
	MinLatency     time.Duration
	MaxLatency     time.Duration
	MeanLatency    time.Duration
	Duration       time.Duration
	RequestsPerSec float64
}

func NewCollector() *Collector {
	// Track latencies from 1µs up to 60s with 3 significant figures.
	return &Collector{hist: hdrhistogram.New(1, 60_000_000, 3)}
}

// RecordSuccess counts a request answered with 200 OK.
func (c *Collector) RecordSuccess(latency time.Duration) {
	c.record(latency, true)
}

// RecordFailure counts a request that got any other status or no response.
func (c *Collector) RecordFailure(latency time.Duration) {
	c.record(latency, false)
}

func (c *Collector) record(latency time.Duration, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ok {
		c.successes++
	} else {
		c.failures++
	}

	if latency < 0 {
		latency = 0
	}
	us := latency.Microseconds()
	if us < c.hist.LowestTrackableValue() {
		us = c.hist.LowestTrackableValue()
	}
	if us > c.hist.HighestTrackableValue() {
		us = c.hist.HighestTrackableValue()
	}
	_ = c.hist.RecordValue(us)

	if c.successes+c.failures == 1 || latency < c.minLatency {
		c.minLatency = latency
	}
	if latency > c.maxLatency {
		c.maxLatency = latency
	}
}

// Stats computes aggregated statistics for a run that lasted elapsed.
func (c *Collector) Stats(elapsed time.Duration) Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := c.successes + c.failures
	stats := Stats{
		Total:      total,
		Successes:  c.successes,
		Failures:   c.failures,
		MinLatency: c.minLatency,
		MaxLatency: c.maxLatency,
		Duration:   elapsed,
	}
	if c.hist.TotalCount() > 0 {
		stats.MeanLatency = time.Duration(c.hist.Mean() * float64(time.Microsecond))
	}
	if elapsed > 0 {
		stats.RequestsPerSec = float64(total) / elapsed.Seconds()
	}
	return stats
}
