package observability

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector provides Prometheus metrics collection for the error-rewriting
// middlewares. It tracks how many responses were rewritten into the JSON
// envelope and how many passed through untouched.
type Collector struct {
	rewrittenResponses   *prometheus.CounterVec
	passthroughResponses *prometheus.CounterVec
}

// NewCollector creates a new Prometheus metrics collector.
// If registry is nil, uses the default Prometheus registry.
func NewCollector(registry prometheus.Registerer) *Collector {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	factory := promauto.With(registry)

	return &Collector{
		rewrittenResponses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jsonerror_rewritten_responses_total",
				Help: "Total number of error responses rewritten into the JSON envelope",
			},
			[]string{"method", "status_code"},
		),

		passthroughResponses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jsonerror_passthrough_responses_total",
				Help: "Total number of non-error responses passed through unchanged",
			},
			[]string{"method"},
		),
	}
}

// RecordRewrite increments the rewritten-responses counter.
func (c *Collector) RecordRewrite(method string, statusCode int) {
	c.rewrittenResponses.WithLabelValues(method, strconv.Itoa(statusCode)).Inc()
}

// RecordPassthrough increments the passthrough-responses counter.
func (c *Collector) RecordPassthrough(method string) {
	c.passthroughResponses.WithLabelValues(method).Inc()
}
