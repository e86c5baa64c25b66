package output

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/torosent/loadrunner/internal/runner"
)

// RequestLog writes one line per request attempt. It is shared by all
// workers; each line is written whole under a mutex so lines never
// interleave.
type RequestLog struct {
	mu sync.Mutex
	w  io.Writer
}

func NewRequestLog(w io.Writer) *RequestLog {
	if w == nil {
		w = io.Discard
	}
	return &RequestLog{w: w}
}

// LogOutcome implements runner.Logger.
func (l *RequestLog) LogOutcome(worker int, url string, outcome runner.Outcome) {
	line := FormatOutcome(worker, url, outcome)

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.w, line)
}

// FormatOutcome renders the log line for one attempt, newline included.
func FormatOutcome(worker int, url string, outcome runner.Outcome) string {
	ms := millis(outcome.Latency)
	switch outcome.Kind {
	case runner.OutcomeSuccess:
		return fmt.Sprintf("[Worker-%d] ✓ %s (%d) %.1fms\n", worker, url, outcome.StatusCode, ms)
	case runner.OutcomeBadStatus:
		return fmt.Sprintf("[Worker-%d] ⚠ %s (%d) %.1fms\n", worker, url, outcome.StatusCode, ms)
	default:
		return fmt.Sprintf("[Worker-%d] ✗ %s ERROR after %.1fms (%s)\n", worker, url, ms, outcome.Reason())
	}
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
