package ginmw

import (
	"bytes"

	"github.com/gin-gonic/gin"
)

// bodyWriter wraps a gin.ResponseWriter and buffers all body writes so the
// middleware can decide after the handler chain whether to flush them
// through unchanged or replace them with the JSON error envelope.
//
// Header writes pass through to the wrapped writer. Gin defers sending
// headers until the first body write, and body writes land in the buffer,
// so nothing reaches the client before the middleware has decided.
type bodyWriter struct {
	gin.ResponseWriter

	body *bytes.Buffer

	// statusAtFirstWrite is the writer's status when the first body write
	// happened, 0 while the body is still empty. On a bare gin writer the
	// first body write flushes the headers and later status changes never
	// reach the client, so once set this value is final.
	statusAtFirstWrite int
}

func newBodyWriter(w gin.ResponseWriter) *bodyWriter {
	return &bodyWriter{ResponseWriter: w, body: &bytes.Buffer{}}
}

// Write buffers the body instead of sending it to the client. The first
// write fixes the status code.
func (w *bodyWriter) Write(data []byte) (int, error) {
	if w.statusAtFirstWrite == 0 {
		w.statusAtFirstWrite = w.ResponseWriter.Status()
	}
	return w.body.Write(data)
}

// WriteString buffers the body instead of sending it to the client. The
// first write fixes the status code.
func (w *bodyWriter) WriteString(s string) (int, error) {
	if w.statusAtFirstWrite == 0 {
		w.statusAtFirstWrite = w.ResponseWriter.Status()
	}
	return w.body.WriteString(s)
}

// finalStatus returns the status code the client would have received from a
// bare gin writer: the status at the first body write if there was one, the
// current status otherwise.
func (w *bodyWriter) finalStatus() int {
	if w.statusAtFirstWrite != 0 {
		return w.statusAtFirstWrite
	}
	return w.ResponseWriter.Status()
}

// flush writes the buffered body to the wrapped writer unchanged. A status
// change recorded after the first body write is reverted first, it would
// not have reached the client without the buffering.
func (w *bodyWriter) flush() {
	if w.statusAtFirstWrite != 0 && w.ResponseWriter.Status() != w.statusAtFirstWrite {
		w.ResponseWriter.WriteHeader(w.statusAtFirstWrite)
	}
	if w.body.Len() > 0 {
		_, _ = w.ResponseWriter.Write(w.body.Bytes())
	}
}
