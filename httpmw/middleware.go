// Package httpmw provides the net/http adapter for the jsonerror middleware.
package httpmw

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/seb7887/jsonerror"
)

// Middleware is a type that creates a new JSON error middleware. The
// middleware intercepts responses produced by the wrapped handler and
// rewrites error responses (status code 400 or above) into the JSON
// envelope {"error": <code>, "message": <text>} with content type
// application/json. Responses below 400 pass through with body and headers
// untouched.
type Middleware struct {
	o options
}

// New returns a new JSON error middleware with the provided options.
func New(opts ...Option) *Middleware {
	o := newOptions(opts...)

	m := &Middleware{
		o: o,
	}

	return m
}

// Handler returns the JSON error middleware handler.
//
// The response is buffered until the wrapped handler returns, so streaming
// handlers and handlers that rely on http.Flusher should not be placed
// behind this middleware.
func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := newWriterWrapper(w)

		next.ServeHTTP(ww, r)

		if !jsonerror.IsError(ww.StatusCode) {
			if m.o.metrics != nil {
				m.o.metrics.RecordPassthrough(r.Method)
			}
			ww.flush()
			return
		}

		m.rewrite(w, r, ww.StatusCode)
	})
}

// rewrite replaces the buffered response with the JSON envelope for the
// given status code.
func (m *Middleware) rewrite(w http.ResponseWriter, r *http.Request, statusCode int) {
	if m.o.tracing != nil {
		_, span := m.o.tracing.StartRewriteSpan(r.Context(), r, statusCode)
		defer span.End()
	}

	payload, _ := json.Marshal(jsonerror.ErrorMessage{
		Error:   statusCode,
		Message: m.o.messageFunc(statusCode),
	})

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(payload)))
	w.WriteHeader(statusCode)
	_, _ = w.Write(payload)

	if m.o.metrics != nil {
		m.o.metrics.RecordRewrite(r.Method, statusCode)
	}
	if m.o.logger != nil {
		m.o.logger.Debug("rewrote error response",
			"method", r.Method,
			"path", r.URL.Path,
			"status", statusCode)
	}
}
