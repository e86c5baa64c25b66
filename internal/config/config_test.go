package config

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		TargetURL:   "http://localhost:8080",
		Endpoints:   []string{"/health", "/docs"},
		Concurrency: 8,
		Duration:    time.Minute,
		Timeout:     20 * time.Second,
		Tracing:     TracingConfig{Protocol: "grpc", SampleRate: 1.0},
	}
}

func TestValidateAcceptsValidConfig(t *testing.T) {
	cfg := validConfig()
	if err := cfg.validate(&bytes.Buffer{}); err != nil {
		t.Fatalf("validate() error = %v", err)
	}
}

func TestValidateCollectsAllIssues(t *testing.T) {
	cfg := Config{
		Endpoints:   []string{"/ok", "  "},
		Concurrency: 0,
		Duration:    0,
		Timeout:     -time.Second,
		Tracing:     TracingConfig{Protocol: "udp", SampleRate: 2},
	}
	err := cfg.validate(&bytes.Buffer{})
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T (%v)", err, err)
	}

	wantFragments := []string{
		"target is required",
		"endpoints[1]",
		"concurrency must be >= 1",
		"duration must be > 0",
		"timeout must be > 0",
		"tracing: protocol",
		"tracing: sample_rate",
	}
	joined := strings.Join(verr.Issues(), "\n")
	for _, frag := range wantFragments {
		if !strings.Contains(joined, frag) {
			t.Errorf("issues missing %q:\n%s", frag, joined)
		}
	}
}

func TestValidateTargetURL(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		wantErr bool
	}{
		{"http", "http://example.com", false},
		{"https with port", "https://example.com:8443", false},
		{"missing scheme", "example.com", true},
		{"ftp scheme", "ftp://example.com", true},
		{"no host", "http://", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.TargetURL = tt.target
			err := cfg.validate(&bytes.Buffer{})
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateRequiresEndpoints(t *testing.T) {
	cfg := validConfig()
	cfg.Endpoints = nil
	err := cfg.validate(&bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "at least one endpoint") {
		t.Fatalf("expected endpoint error, got %v", err)
	}
}

func TestValidateWarnsOnHighConcurrency(t *testing.T) {
	cfg := validConfig()
	cfg.Concurrency = 501
	var warn bytes.Buffer
	if err := cfg.validate(&warn); err != nil {
		t.Fatalf("validate() error = %v", err)
	}
	if !strings.Contains(warn.String(), "High concurrency") {
		t.Errorf("expected concurrency warning, got %q", warn.String())
	}
}

func TestTracingEnabled(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	if (TracingConfig{}).Enabled() {
		t.Error("empty tracing config should be disabled")
	}
	if (TracingConfig{Propagate: true}).ShouldPropagate() {
		t.Error("propagation requires tracing to be enabled")
	}

	cfg := TracingConfig{Endpoint: "localhost:4317", Propagate: true}
	if !cfg.Enabled() || !cfg.ShouldPropagate() {
		t.Error("expected tracing enabled with propagation")
	}

	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "collector:4317")
	if !(TracingConfig{}).Enabled() {
		t.Error("OTEL_EXPORTER_OTLP_ENDPOINT should enable tracing")
	}
}
