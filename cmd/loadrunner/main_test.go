package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

func TestRunEndToEnd(t *testing.T) {
	var hits int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		if r.URL.Path == "/broken" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	var out bytes.Buffer
	err := run([]string{
		"--target", server.URL,
		"-e", "/health,/broken",
		"-c", "2",
		"-d", "200ms",
		"--timeout", "1s",
		"--seed", "7",
	}, &out)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}

	output := out.String()
	for _, want := range []string{
		"Start load test for 0.2s with 2 workers",
		"Done in ",
		"Total requests: ",
		"OK: ",
		"ERR: ",
		"RPS: ",
		"Run ID: ",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}
	if atomic.LoadInt64(&hits) == 0 {
		t.Fatal("server received no requests")
	}
	if !strings.Contains(output, "✓ "+server.URL+"/health (200)") {
		t.Errorf("expected success line for /health")
	}
	if !strings.Contains(output, "⚠ "+server.URL+"/broken (500)") {
		t.Errorf("expected warning line for /broken")
	}
}

func TestRunFailingRequestsStillSucceed(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	target := server.URL
	server.Close()

	var out bytes.Buffer
	err := run([]string{"--target", target, "-c", "1", "-d", "100ms", "--timeout", "200ms"}, &out)
	if err != nil {
		t.Fatalf("request failures must not fail the run: %v", err)
	}
	if !strings.Contains(out.String(), "OK: 0") {
		t.Errorf("expected no successes:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "ERROR after") {
		t.Errorf("expected transport error lines:\n%s", out.String())
	}
}

func TestRunInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"relative target", []string{"--target", "localhost:8080"}},
		{"zero concurrency", []string{"--target", "http://localhost", "-c", "0"}},
		{"bad tracing protocol", []string{"--target", "http://localhost", "--tracing-endpoint", "localhost:4317", "--tracing-protocol", "kafka"}},
		{"unknown flag", []string{"--target", "http://localhost", "--rate", "10"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := run(tt.args, &out); err == nil {
				t.Fatalf("expected error for %v", tt.args)
			}
			if out.Len() != 0 {
				t.Errorf("nothing should be printed before startup succeeds:\n%s", out.String())
			}
		})
	}
}

func TestRunHelp(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"--help"}, &out); err != nil {
		t.Fatalf("help should not be an error: %v", err)
	}
}
