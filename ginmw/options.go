package ginmw

import (
	"log/slog"

	"github.com/seb7887/jsonerror"
	"github.com/seb7887/jsonerror/observability"
)

// options is a struct that contains options for the JSON error middleware.
// It uses the functional options pattern for flexible configuration.
type options struct {
	messageFunc func(code int) string
	metrics     *observability.Collector
	tracing     *observability.Instrumenter
	logger      *slog.Logger
}

// Option is a type that is used to set options for the JSON error middleware.
// It implements the functional options pattern.
type Option func(*options)

// WithMessageFunc sets the function used to derive the envelope message from
// a status code. The default is jsonerror.Message, which returns the
// standard status text.
func WithMessageFunc(fn func(code int) string) Option {
	return func(o *options) {
		o.messageFunc = fn
	}
}

// WithMetrics sets a Prometheus collector for the middleware. If set, the
// middleware counts rewritten and passed-through responses.
// The default is nil, meaning no metrics are recorded.
func WithMetrics(collector *observability.Collector) Option {
	return func(o *options) {
		o.metrics = collector
	}
}

// WithTracing sets an OpenTelemetry instrumenter for the middleware. If set,
// every rewrite is covered by a span carrying the error status code.
// The default is nil, meaning no spans are created.
func WithTracing(instrumenter *observability.Instrumenter) Option {
	return func(o *options) {
		o.tracing = instrumenter
	}
}

// WithLogger sets a structured logger for the middleware. If set, every
// rewrite is logged at debug level.
// The default is nil, meaning the middleware is silent.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// newOptions is a function that returns a new options struct with sane default values.
func newOptions(opts ...Option) options {
	o := options{
		messageFunc: jsonerror.Message,
	}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}
