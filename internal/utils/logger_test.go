package utils

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func captureLog(t *testing.T, fn func()) string {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(prev)
	fn()
	return buf.String()
}

func TestLogEventFormat(t *testing.T) {
	out := captureLog(t, func() {
		LogEvent("req-1", "trip", "create", "id=trip-1")
	})
	if !strings.Contains(out, "[TRIP] request_id=req-1 action=create msg=id=trip-1") {
		t.Fatalf("unexpected log line: %q", out)
	}
}

func TestLogEventEmptyRequestID(t *testing.T) {
	out := captureLog(t, func() {
		LogEvent("  ", "billing", "pay", "id=b-1")
	})
	if !strings.Contains(out, "request_id=- ") {
		t.Fatalf("empty request id should print as -, got %q", out)
	}
}
