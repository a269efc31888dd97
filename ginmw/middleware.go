// Package ginmw provides the gin adapter for the jsonerror middleware.
package ginmw

import (
	"encoding/json"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/seb7887/jsonerror"
)

// JSONError returns a middleware that intercepts responses produced by the
// handler chain. Responses with a status code of 400 or above have their
// body replaced with the JSON envelope {"error": <code>, "message": <text>}
// and their content type set to application/json. Responses below 400 pass
// through with body and headers untouched.
//
// Body writes are buffered until the handler chain returns, so streaming
// handlers and handlers that flush explicitly should not be placed behind
// this middleware.
func JSONError(opts ...Option) gin.HandlerFunc {
	o := newOptions(opts...)

	return func(c *gin.Context) {
		bw := newBodyWriter(c.Writer)
		c.Writer = bw

		c.Next()

		c.Writer = bw.ResponseWriter
		status := bw.finalStatus()

		if !jsonerror.IsError(status) {
			if o.metrics != nil {
				o.metrics.RecordPassthrough(c.Request.Method)
			}
			bw.flush()
			return
		}

		if o.tracing != nil {
			_, span := o.tracing.StartRewriteSpan(c.Request.Context(), c.Request, status)
			defer span.End()
		}

		payload, _ := json.Marshal(jsonerror.ErrorMessage{
			Error:   status,
			Message: o.messageFunc(status),
		})

		header := c.Writer.Header()
		header.Set("Content-Type", "application/json")
		header.Set("Content-Length", strconv.Itoa(len(payload)))
		if c.Writer.Status() != status {
			c.Writer.WriteHeader(status)
		}
		_, _ = c.Writer.Write(payload)

		if o.metrics != nil {
			o.metrics.RecordRewrite(c.Request.Method, status)
		}
		if o.logger != nil {
			o.logger.Debug("rewrote error response",
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"status", status)
		}
	}
}
