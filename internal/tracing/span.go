package tracing

import (
	"context"
	"net/http"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const (
	attrWorker = attribute.Key("loadrunner.worker")
	attrRunID  = attribute.Key("loadrunner.run_id")
	attrMethod = attribute.Key("http.request.method")
	attrURL    = attribute.Key("url.full")
	attrStatus = attribute.Key("http.response.status_code")
)

// StartRequestSpan starts a client span for one GET attempt by a worker.
func StartRequestSpan(ctx context.Context, tracer trace.Tracer, runID string, worker int, url string) (context.Context, trace.Span) {
	ctx, span := tracer.Start(ctx, "GET",
		trace.WithSpanKind(trace.SpanKindClient),
	)
	span.SetAttributes(
		attrMethod.String(http.MethodGet),
		attrURL.String(url),
		attrWorker.Int(worker),
	)
	if runID != "" {
		span.SetAttributes(attrRunID.String(runID))
	}
	return ctx, span
}

// EndSpan finishes a request span. A transport error or any status other
// than 200 marks the span as failed.
func EndSpan(span trace.Span, statusCode int, err error) {
	if statusCode > 0 {
		span.SetAttributes(attrStatus.Int(statusCode))
	}
	switch {
	case err != nil:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	case statusCode != http.StatusOK:
		span.SetStatus(codes.Error, "HTTP "+strconv.Itoa(statusCode))
	default:
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// InjectHTTPHeaders injects W3C trace context into HTTP headers.
func InjectHTTPHeaders(ctx context.Context, headers http.Header) {
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(headers))
}
