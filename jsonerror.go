// Package jsonerror normalizes HTTP error responses into a fixed JSON
// envelope. Responses with a status code of 400 or above are rewritten to
// the shape {"error": <code>, "message": <text>}; everything below 400
// passes through untouched.
//
// The package itself only defines the envelope and a response writer
// helper. The actual interception happens in the framework adapters, see
// the ginmw and httpmw packages.
package jsonerror

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorMessage is the JSON envelope written in place of an error response
// body. It carries the numeric HTTP status code and a human-readable
// message.
type ErrorMessage struct {
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// New returns an ErrorMessage for the given status code. The message is
// derived from the standard status text, see Message.
func New(code int) ErrorMessage {
	return ErrorMessage{
		Error:   code,
		Message: Message(code),
	}
}

// Message returns the default message for a status code. It is the standard
// status text (e.g. "Not Found" for 404). Codes without a registered status
// text get a generic fallback.
func Message(code int) string {
	if text := http.StatusText(code); text != "" {
		return text
	}
	return fmt.Sprintf("Status Code %d", code)
}

// IsError reports whether a status code indicates a client or server error,
// i.e. whether it is 400 or above.
func IsError(code int) bool {
	return code >= http.StatusBadRequest
}

// Write writes the JSON envelope for the given status code to w.
// The Content-Type header is set to application/json and the response
// status is set to code. Encoding errors are silently ignored, the envelope
// consists of two primitive fields and cannot fail to serialize.
func Write(w http.ResponseWriter, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	_ = json.NewEncoder(w).Encode(New(code))
}
