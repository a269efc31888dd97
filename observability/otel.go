package observability

import (
	"context"
	"fmt"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	instrumentationName = "github.com/seb7887/jsonerror"
)

// Instrumenter provides OpenTelemetry instrumentation for the
// error-rewriting middlewares. It creates a short span covering the body
// rewrite and records the rewritten status code on it.
type Instrumenter struct {
	tracer trace.Tracer
}

// NewInstrumenter creates a new instrumenter with the given tracer provider.
// If provider is nil, uses the global tracer provider.
func NewInstrumenter(provider trace.TracerProvider) *Instrumenter {
	if provider == nil {
		provider = otel.GetTracerProvider()
	}

	return &Instrumenter{
		tracer: provider.Tracer(instrumentationName),
	}
}

// StartRewriteSpan creates a span for the rewrite of an error response.
// The span is a child of any server span already present in the request
// context and carries standard HTTP attributes plus the error status code.
func (i *Instrumenter) StartRewriteSpan(ctx context.Context, req *http.Request, statusCode int) (context.Context, trace.Span) {
	ctx, span := i.tracer.Start(ctx, "jsonerror.rewrite",
		trace.WithSpanKind(trace.SpanKindInternal),
	)

	span.SetAttributes(
		attribute.String("http.method", req.Method),
		attribute.String("http.target", req.URL.Path),
		attribute.Int("http.status_code", statusCode),
	)
	span.SetStatus(codes.Error, fmt.Sprintf("HTTP %d", statusCode))

	return ctx, span
}
