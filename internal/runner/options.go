package runner

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/torosent/loadrunner/internal/httpclient"
)

// Requester performs a single GET attempt. A nil error means a response
// with the returned status code was received.
type Requester interface {
	Get(ctx context.Context, url string) (int, error)
}

// RequesterFactory builds the requester owned by one worker (ids start at 1).
type RequesterFactory func(worker int) Requester

// Logger receives exactly one call per request attempt.
type Logger interface {
	LogOutcome(worker int, url string, outcome Outcome)
}

// Options configure the Runner.
type Options struct {
	BaseURL      string           // prefix for every endpoint path
	Endpoints    []string         // paths picked uniformly at random (required)
	Concurrency  int              // number of worker goroutines
	Duration     time.Duration    // how long workers keep starting requests
	Timeout      time.Duration    // per-request timeout for the default requester
	Seed         int64            // endpoint selection seed; 0 means time based
	RunID        string           // attached to trace spans
	NewRequester RequesterFactory // defaults to one httpclient.Requester per worker
	Logger       Logger           // nil discards per-request lines
	Tracer       trace.Tracer     // nil disables spans
	Propagate    bool             // inject traceparent headers (default requester only)
}

func (o *Options) normalize() {
	if o.Concurrency <= 0 {
		o.Concurrency = 1
	}
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
	if o.NewRequester == nil {
		timeout, propagate := o.Timeout, o.Propagate
		o.NewRequester = func(int) Requester {
			return httpclient.NewRequester(timeout, propagate)
		}
	}
	if o.Logger == nil {
		o.Logger = discardLogger{}
	}
	if o.Tracer == nil {
		o.Tracer = noop.NewTracerProvider().Tracer("")
	}
	o.Endpoints = append([]string(nil), o.Endpoints...)
}

type discardLogger struct{}

func (discardLogger) LogOutcome(int, string, Outcome) {}
