package output

import (
	"fmt"
	"io"
	"time"

	"github.com/torosent/loadrunner/internal/runner"
)

// Banner describes a run about to start.
type Banner struct {
	Target      string
	Endpoints   []string
	Concurrency int
	Duration    time.Duration
	RunID       string
}

// PrintBanner announces the run before any worker starts.
func PrintBanner(w io.Writer, b Banner) {
	fmt.Fprintf(w, "Start load test for %gs with %d workers\n", b.Duration.Seconds(), b.Concurrency)
	fmt.Fprintf(w, "Target: %s (%d endpoints)\n", b.Target, len(b.Endpoints))
	if b.RunID != "" {
		fmt.Fprintf(w, "Run ID: %s\n", b.RunID)
	}
	fmt.Fprintln(w, "...")
}

// PrintReport outputs the final summary. The first five lines keep a fixed
// order: elapsed, total, successes, errors, throughput.
func PrintReport(w io.Writer, s runner.Summary) {
	fmt.Fprintf(w, "\nDone in %.1fs\n", s.Elapsed.Seconds())
	fmt.Fprintf(w, "Total requests: %d\n", s.Total)
	fmt.Fprintf(w, "OK: %d\n", s.Successes)
	fmt.Fprintf(w, "ERR: %d\n", s.Errors)
	fmt.Fprintf(w, "RPS: %.1f\n", s.RequestsPerSec)

	if s.RunID != "" {
		fmt.Fprintf(w, "Run ID: %s\n", s.RunID)
	}
	fmt.Fprintf(w, "Workers: %d\n", s.Workers)
	if s.Total > 0 {
		fmt.Fprintf(w, "Min latency: %.1fms\n", millis(s.MinLatency))
		fmt.Fprintf(w, "Mean latency: %.1fms\n", millis(s.MeanLatency))
		fmt.Fprintf(w, "Max latency: %.1fms\n", millis(s.MaxLatency))
	}
}
