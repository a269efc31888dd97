package httpmw

import (
	"bytes"
	"net/http"
)

// writerWrapper wraps a http.ResponseWriter and buffers the whole response
// until the middleware decides whether to rewrite it. It tracks the http
// response code passed to the WriteHeader func of the ResponseWriter.
type writerWrapper struct {
	http.ResponseWriter

	// StatusCode is the last http response code passed to the WriteHeader
	// func of the ResponseWriter. If no such call is made, a default code
	// of http.StatusOK is assumed instead.
	StatusCode int

	// WrittenBytes is the number of body bytes buffered by the Write
	// function of the ResponseWriter.
	WrittenBytes int64

	body        bytes.Buffer
	wroteHeader bool
}

// newWriterWrapper returns a new writerWrapper that wraps the given
// http.ResponseWriter. It initializes the StatusCode to http.StatusOK.
func newWriterWrapper(w http.ResponseWriter) *writerWrapper {
	return &writerWrapper{ResponseWriter: w, StatusCode: http.StatusOK}
}

// WriteHeader records the status code without sending it to the client.
// Only the first call is honored, and a body write counts as an implicit
// WriteHeader(http.StatusOK), matching net/http semantics: a bare
// ResponseWriter ignores WriteHeader once the headers went out with the
// first body write.
func (w *writerWrapper) WriteHeader(code int) {
	if w.wroteHeader {
		return
	}
	w.StatusCode = code
	w.wroteHeader = true
}

// Write buffers the body instead of sending it to the client. The first
// write fixes the status code, see WriteHeader.
func (w *writerWrapper) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.body.Write(data)
	w.WrittenBytes += int64(n)
	return n, err
}

// flush replays the recorded status code and the buffered body on the
// wrapped ResponseWriter unchanged.
func (w *writerWrapper) flush() {
	if w.wroteHeader {
		w.ResponseWriter.WriteHeader(w.StatusCode)
	}
	if w.body.Len() > 0 {
		_, _ = w.ResponseWriter.Write(w.body.Bytes())
	}
}
