// Package runner is the load generation engine.
//
// A [Runner] starts a fixed number of workers, lets them run for the
// configured duration and then raises a [StopSignal]. Each worker loops:
// pick an endpoint at random, GET base URL + endpoint, record the
// [Outcome] in the shared counters and log it. A worker checks the stop
// signal only between requests, so an in-flight request finishes (or
// times out) first; the drain after the nominal duration is bounded by one
// request timeout.
//
// # Basic Usage
//
//	r := runner.New(runner.Options{
//		BaseURL:     "http://localhost:8080",
//		Endpoints:   []string{"/health", "/docs"},
//		Concurrency: 8,
//		Duration:    time.Minute,
//		Timeout:     20 * time.Second,
//	})
//	summary := r.Run(ctx)
//
// # Outcomes
//
// Every attempt is classified by [Classify] into exactly one outcome:
//   - [OutcomeSuccess]: status 200
//   - [OutcomeBadStatus]: any other status
//   - [OutcomeTransportError]: no response (timeout, refused connection, DNS, ...)
//
// Both failure kinds increment the same error counter. No request is
// retried.
//
// # Requesters
//
// By default each worker owns an [httpclient.Requester], so connections
// are reused per worker and never shared. Tests and callers can supply
// their own [Requester] through [Options.NewRequester].
//
// [httpclient.Requester]: github.com/torosent/loadrunner/internal/httpclient.Requester
package runner
