// Package jsonerrortest provides assertion helpers for testing handlers and
// middleware stacks that use the jsonerror envelope.
package jsonerrortest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/seb7887/jsonerror"
)

// DecodeError decodes the recorded response body into a jsonerror envelope.
// It fails the test if the body is not valid JSON for the envelope shape.
func DecodeError(t *testing.T, rec *httptest.ResponseRecorder) jsonerror.ErrorMessage {
	t.Helper()

	var msg jsonerror.ErrorMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &msg); err != nil {
		t.Fatalf("response body is not a JSON error envelope: %v (body: %q)", err, rec.Body.String())
	}

	return msg
}

// AssertJSONError asserts that the recorded response is a rewritten error
// response: the status code matches, the content type is application/json,
// and the body is the envelope for that code.
func AssertJSONError(t *testing.T, rec *httptest.ResponseRecorder, wantCode int) {
	t.Helper()

	if rec.Code != wantCode {
		t.Errorf("status code mismatch: got %d, want %d", rec.Code, wantCode)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type mismatch: got %q, want %q", ct, "application/json")
	}

	msg := DecodeError(t, rec)
	if msg.Error != wantCode {
		t.Errorf("envelope error field mismatch: got %d, want %d", msg.Error, wantCode)
	}
	if msg.Message == "" {
		t.Errorf("envelope message is empty")
	}
}

// AssertPassthrough asserts that the recorded response was not touched by
// the middleware: status code, body, and content type all match the values
// the handler produced.
func AssertPassthrough(t *testing.T, rec *httptest.ResponseRecorder, wantCode int, wantBody, wantContentType string) {
	t.Helper()

	if rec.Code != wantCode {
		t.Errorf("status code mismatch: got %d, want %d", rec.Code, wantCode)
	}
	if body := rec.Body.String(); body != wantBody {
		t.Errorf("body mismatch: got %q, want %q", body, wantBody)
	}
	if ct := rec.Header().Get("Content-Type"); ct != wantContentType {
		t.Errorf("content type mismatch: got %q, want %q", ct, wantContentType)
	}
}

// AssertCounterFamilyValue asserts that the counters of the metric family
// with the given name, gathered from the registry, sum up to the expected
// value across all label combinations.
func AssertCounterFamilyValue(t *testing.T, registry *prometheus.Registry, metricName string, expected float64) {
	t.Helper()

	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	for _, family := range families {
		if family.GetName() != metricName {
			continue
		}

		var total float64
		for _, metric := range family.GetMetric() {
			if metric.Counter == nil {
				t.Fatalf("metric %q is not a Counter", metricName)
			}
			total += metric.Counter.GetValue()
		}

		if total != expected {
			t.Errorf("metric %q value mismatch: got %v, want %v", metricName, total, expected)
		}
		return
	}

	if expected != 0 {
		t.Errorf("metric %q not found in registry", metricName)
	}
}

// AssertCounterValue asserts that the counters collected from the given
// collector sum up to the expected value. This works with plain Counters and
// with CounterVecs, where the values of all label combinations are summed.
func AssertCounterValue(t *testing.T, collector prometheus.Collector, expected float64) {
	t.Helper()

	// Collect runs synchronously, drain it from its own goroutine so vectors
	// with many label combinations cannot block on the channel.
	metricCh := make(chan prometheus.Metric)
	go func() {
		collector.Collect(metricCh)
		close(metricCh)
	}()

	var (
		total     float64
		collected int
	)
	for metric := range metricCh {
		pb := &dto.Metric{}
		if err := metric.Write(pb); err != nil {
			t.Fatalf("failed to write metric: %v", err)
		}
		if pb.Counter == nil {
			t.Fatalf("metric is not a Counter")
		}
		total += pb.Counter.GetValue()
		collected++
	}

	if collected == 0 {
		t.Fatalf("no metrics collected")
	}
	if total != expected {
		t.Errorf("counter value mismatch: got %v, want %v", total, expected)
	}
}
