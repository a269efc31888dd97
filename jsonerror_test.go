package jsonerror

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	msg := New(http.StatusNotFound)

	assert.Equal(t, 404, msg.Error)
	assert.Equal(t, "Not Found", msg.Message)
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		expected string
	}{
		{
			name:     "Known client error",
			code:     http.StatusBadRequest,
			expected: "Bad Request",
		},
		{
			name:     "Known server error",
			code:     http.StatusServiceUnavailable,
			expected: "Service Unavailable",
		},
		{
			name:     "Unregistered code",
			code:     599,
			expected: "Status Code 599",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Message(tt.code))
		})
	}
}

func TestIsError(t *testing.T) {
	assert.False(t, IsError(http.StatusOK))
	assert.False(t, IsError(http.StatusPermanentRedirect))
	assert.False(t, IsError(399))
	assert.True(t, IsError(http.StatusBadRequest))
	assert.True(t, IsError(http.StatusInternalServerError))
	assert.True(t, IsError(599))
}

func TestWrite(t *testing.T) {
	rec := httptest.NewRecorder()

	Write(rec, http.StatusForbidden)

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":403,"message":"Forbidden"}`, rec.Body.String())
}
