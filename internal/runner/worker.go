package runner

import (
	"context"
	"time"

	"github.com/torosent/loadrunner/internal/metrics"
	"github.com/torosent/loadrunner/internal/tracing"
)

type worker struct {
	id        int
	opt       *Options
	requester Requester
	selector  *Selector
	collector *metrics.Collector
	stop      *StopSignal
}

func newWorker(id int, opt *Options, collector *metrics.Collector, stop *StopSignal) *worker {
	return &worker{
		id:        id,
		opt:       opt,
		requester: opt.NewRequester(id),
		selector:  NewSelector(opt.Endpoints, opt.Seed+int64(id)),
		collector: collector,
		stop:      stop,
	}
}

// run issues requests back to back until the stop signal is observed.
// A request already in flight when the signal flips is allowed to finish.
func (w *worker) run(ctx context.Context) {
	defer w.close()
	for !w.stop.Stopped() {
		w.attempt(ctx)
	}
}

func (w *worker) attempt(ctx context.Context) Outcome {
	url := w.opt.BaseURL + w.selector.Next()

	ctx, span := tracing.StartRequestSpan(ctx, w.opt.Tracer, w.opt.RunID, w.id, url)
	start := time.Now()
	status, err := w.requester.Get(ctx, url)
	outcome := Classify(status, err, time.Since(start))
	tracing.EndSpan(span, status, err)

	if outcome.Success() {
		w.collector.RecordSuccess(outcome.Latency)
	} else {
		w.collector.RecordFailure(outcome.Latency)
	}
	w.opt.Logger.LogOutcome(w.id, url, outcome)
	return outcome
}

func (w *worker) close() {
	if c, ok := w.requester.(interface{ Close() }); ok {
		c.Close()
	}
}
