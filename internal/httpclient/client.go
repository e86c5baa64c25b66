package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/torosent/loadrunner/internal/tracing"
)

// Requester issues GET requests for exactly one worker. It owns its
// *http.Client and transport, so connections are reused across that
// worker's requests and never shared with another worker.
type Requester struct {
	client    *http.Client
	propagate bool
}

// NewRequester creates a Requester whose every request is bounded by
// timeout. With propagate set, W3C trace context from the request
// context is injected into outgoing headers.
func NewRequester(timeout time.Duration, propagate bool) *Requester {
	return &Requester{
		client:    NewClient(timeout),
		propagate: propagate,
	}
}

// Get performs one GET against target and returns the response status
// once the whole body has been read. Any transport failure, including the
// client timeout firing or the connection dropping mid-body, is returned as
// err with a zero status.
func (r *Requester) Get(ctx context.Context, target string) (int, error) {
	if r == nil || r.client == nil {
		return 0, errors.New("requester is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return 0, err
	}
	if r.propagate {
		tracing.InjectHTTPHeaders(ctx, req.Header)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if _, err := io.Copy(io.Discard, resp.Body); err != nil {
		return 0, fmt.Errorf("read body: %w", err)
	}
	return resp.StatusCode, nil
}

// Close releases idle connections held by the worker's transport.
func (r *Requester) Close() {
	if r == nil || r.client == nil {
		return
	}
	r.client.CloseIdleConnections()
}

// NewClient returns a client with its own transport. Callers that need
// connection isolation must not share the result.
func NewClient(timeout time.Duration) *http.Client {
	if timeout < 0 {
		timeout = 0
	}

	dialer := &net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
	}

	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          8,
		MaxIdleConnsPerHost:   2,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
