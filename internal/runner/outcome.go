package runner

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"syscall"
	"time"
)

// OutcomeKind classifies a single request attempt. Only OutcomeSuccess
// counts as a success; the two failure kinds differ in log text only.
type OutcomeKind int

const (
	OutcomeSuccess        OutcomeKind = iota // status 200
	OutcomeBadStatus                         // a response with any other status
	OutcomeTransportError                    // no response: timeout, refused, DNS, protocol error
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeBadStatus:
		return "bad_status"
	case OutcomeTransportError:
		return "transport_error"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}

// Outcome is the result of one request attempt. It is consumed right away
// by the counters and the logger and never retained.
type Outcome struct {
	Kind       OutcomeKind
	StatusCode int
	Latency    time.Duration
	Err        error
}

// Classify maps the result of a GET into exactly one outcome.
func Classify(status int, err error, latency time.Duration) Outcome {
	switch {
	case err != nil:
		return Outcome{Kind: OutcomeTransportError, Latency: latency, Err: err}
	case status == http.StatusOK:
		return Outcome{Kind: OutcomeSuccess, StatusCode: status, Latency: latency}
	default:
		return Outcome{Kind: OutcomeBadStatus, StatusCode: status, Latency: latency}
	}
}

func (o Outcome) Success() bool {
	return o.Kind == OutcomeSuccess
}

// Reason describes why an attempt failed; it is empty for a success.
func (o Outcome) Reason() string {
	switch o.Kind {
	case OutcomeBadStatus:
		if text := http.StatusText(o.StatusCode); text != "" {
			return fmt.Sprintf("HTTP %d %s", o.StatusCode, text)
		}
		return fmt.Sprintf("HTTP %d", o.StatusCode)
	case OutcomeTransportError:
		if o.Err == nil {
			return FailureLabel(nil)
		}
		return FailureLabel(o.Err) + ": " + o.Err.Error()
	default:
		return ""
	}
}

// FailureLabel names the kind of transport failure behind err.
func FailureLabel(err error) string {
	var netErr net.Error
	var dnsErr *net.DNSError
	switch {
	case err == nil:
		return "unknown error"
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		return "timeout"
	case errors.As(err, &dnsErr):
		return "dns"
	case errors.Is(err, syscall.ECONNREFUSED):
		return "connection refused"
	case errors.Is(err, syscall.ECONNRESET):
		return "connection reset"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "transport error"
	}
}
