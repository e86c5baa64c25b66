package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/torosent/loadrunner/internal/config"
	"github.com/torosent/loadrunner/internal/output"
	"github.com/torosent/loadrunner/internal/runner"
	"github.com/torosent/loadrunner/internal/tracing"
)

const tracingShutdownTimeout = 5 * time.Second

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run exits non-zero only for startup problems. Failed requests are
// reported in the summary and do not produce an error.
func run(args []string, stdout io.Writer) error {
	loader := config.NewLoader()
	cfg, err := loader.Load(args)
	if err != nil {
		if errors.Is(err, config.ErrHelpRequested) {
			return nil
		}
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	runID := ulid.Make().String()

	ctx := context.Background()
	provider, err := tracing.Init(ctx, cfg.Tracing, runID)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), tracingShutdownTimeout)
		defer cancel()
		if err := provider.Shutdown(shutdownCtx); err != nil {
			fmt.Fprintf(os.Stderr, "tracing shutdown: %v\n", err)
		}
	}()

	r := runner.New(runner.Options{
		BaseURL:     cfg.TargetURL,
		Endpoints:   cfg.Endpoints,
		Concurrency: cfg.Concurrency,
		Duration:    cfg.Duration,
		Timeout:     cfg.Timeout,
		Seed:        cfg.Seed,
		RunID:       runID,
		Logger:      output.NewRequestLog(stdout),
		Tracer:      provider.Tracer(),
		Propagate:   provider.ShouldPropagate(),
	})

	output.PrintBanner(stdout, output.Banner{
		Target:      cfg.TargetURL,
		Endpoints:   cfg.Endpoints,
		Concurrency: cfg.Concurrency,
		Duration:    cfg.Duration,
		RunID:       runID,
	})

	summary := r.Run(ctx)
	output.PrintReport(stdout, summary)
	return nil
}
