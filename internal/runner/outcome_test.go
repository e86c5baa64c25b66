package runner

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"
	"syscall"
	"testing"
	"time"
)

func TestClassify(t *testing.T) {
	boom := errors.New("boom")
	tests := []struct {
		name   string
		status int
		err    error
		want   OutcomeKind
	}{
		{"ok", 200, nil, OutcomeSuccess},
		{"created is not success", 201, nil, OutcomeBadStatus},
		{"redirect", 302, nil, OutcomeBadStatus},
		{"not found", 404, nil, OutcomeBadStatus},
		{"server error", 500, nil, OutcomeBadStatus},
		{"transport error", 0, boom, OutcomeTransportError},
		{"error wins over status", 200, boom, OutcomeTransportError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Classify(tt.status, tt.err, 3*time.Millisecond)
			if o.Kind != tt.want {
				t.Fatalf("Kind = %s, want %s", o.Kind, tt.want)
			}
			if o.Latency != 3*time.Millisecond {
				t.Errorf("Latency = %s", o.Latency)
			}
			if o.Success() != (tt.want == OutcomeSuccess) {
				t.Errorf("Success() = %v", o.Success())
			}
			if tt.want == OutcomeTransportError && o.StatusCode != 0 {
				t.Errorf("transport error kept status %d", o.StatusCode)
			}
		})
	}
}

func TestOutcomeReason(t *testing.T) {
	tests := []struct {
		name    string
		outcome Outcome
		want    string
	}{
		{"success", Outcome{Kind: OutcomeSuccess, StatusCode: 200}, ""},
		{"known status", Outcome{Kind: OutcomeBadStatus, StatusCode: 500}, "HTTP 500 Internal Server Error"},
		{"unknown status", Outcome{Kind: OutcomeBadStatus, StatusCode: 599}, "HTTP 599"},
		{"transport", Outcome{Kind: OutcomeTransportError, Err: errors.New("eof")}, "transport error: eof"},
		{"transport without err", Outcome{Kind: OutcomeTransportError}, "unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.outcome.Reason(); got != tt.want {
				t.Errorf("Reason() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFailureLabel(t *testing.T) {
	refused := &url.Error{Op: "Get", URL: "http://x", Err: &net.OpError{
		Op: "dial", Net: "tcp", Err: &os.SyscallError{Syscall: "connect", Err: syscall.ECONNREFUSED},
	}}
	reset := &net.OpError{Op: "read", Net: "tcp", Err: syscall.ECONNRESET}

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, "unknown error"},
		{"deadline", context.DeadlineExceeded, "timeout"},
		{"wrapped deadline", fmt.Errorf("get: %w", context.DeadlineExceeded), "timeout"},
		{"net timeout", &net.DNSError{Err: "i/o timeout", IsTimeout: true}, "timeout"},
		{"dns", &net.DNSError{Err: "no such host", Name: "nope.invalid"}, "dns"},
		{"refused", refused, "connection refused"},
		{"reset", reset, "connection reset"},
		{"canceled", context.Canceled, "canceled"},
		{"other", errors.New("tls: bad certificate"), "transport error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FailureLabel(tt.err); got != tt.want {
				t.Errorf("FailureLabel(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}

func TestOutcomeKindString(t *testing.T) {
	for kind, want := range map[OutcomeKind]string{
		OutcomeSuccess:        "success",
		OutcomeBadStatus:      "bad_status",
		OutcomeTransportError: "transport_error",
	} {
		if got := kind.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(kind), got, want)
		}
	}
	if got := OutcomeKind(9).String(); !strings.Contains(got, "9") {
		t.Errorf("unknown kind String() = %q", got)
	}
}
