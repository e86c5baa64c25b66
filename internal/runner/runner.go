package runner

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/torosent/loadrunner/internal/metrics"
)

// Summary captures the totals of one run.
type Summary struct {
	Successes      int64
	Errors         int64
	Total          int64
	Elapsed        time.Duration
	RequestsPerSec float64
	MinLatency     time.Duration
	MeanLatency    time.Duration
	MaxLatency     time.Duration
	Workers        int
	RunID          string
}

// Runner dispatches a fixed pool of workers for a fixed duration.
type Runner struct {
	opt    Options
	active atomic.Int32
}

func New(opt Options) *Runner {
	opt.normalize()
	return &Runner{opt: opt}
}

// Active reports how many workers are currently running.
func (r *Runner) Active() int {
	return int(r.active.Load())
}

// Run starts the workers, waits out the configured duration, raises the
// stop signal and joins every worker before summarizing. The run is ended
// by the timer only: ctx supplies values such as a parent span, and its
// cancellation is ignored.
func (r *Runner) Run(ctx context.Context) Summary {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithoutCancel(ctx)

	collector := metrics.NewCollector()
	stop := &StopSignal{}

	workers := make([]*worker, r.opt.Concurrency)
	for i := range workers {
		workers[i] = newWorker(i+1, &r.opt, collector, stop)
	}

	var wg sync.WaitGroup
	wg.Add(len(workers))
	r.active.Add(int32(len(workers)))

	start := time.Now()
	for _, w := range workers {
		go func() {
			defer wg.Done()
			defer r.active.Add(-1)
			w.run(ctx)
		}()
	}

	timer := time.NewTimer(r.opt.Duration)
	<-timer.C
	stop.Stop()

	wg.Wait()
	elapsed := time.Since(start)

	stats := collector.Stats(elapsed)
	return Summary{
		Successes:      stats.Successes,
		Errors:         stats.Failures,
		Total:          stats.Total,
		Elapsed:        elapsed,
		RequestsPerSec: stats.RequestsPerSec,
		MinLatency:     stats.MinLatency,
		MeanLatency:    stats.MeanLatency,
		MaxLatency:     stats.MaxLatency,
		Workers:        len(workers),
		RunID:          r.opt.RunID,
	}
}
