package log

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func capture(t *testing.T, level Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(level)
	now = func() time.Time { return time.Date(2025, time.November, 12, 9, 0, 0, 0, time.UTC) }
	t.Cleanup(func() {
		SetLevel(LevelInfo)
		now = time.Now
	})
	return &buf
}

func TestInfoFormatsKeyValues(t *testing.T) {
	buf := capture(t, LevelInfo)
	Info("events loaded", "path", "events.yaml", "count", 5, "dangling")
	want := "2025-11-12T09:00:00Z [INFO] events loaded path=events.yaml count=5\n"
	if got := buf.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestErrorPrependsErr(t *testing.T) {
	buf := capture(t, LevelInfo)
	Error("reload failed", errors.New("boom"), "path", "x.ics")
	if got := buf.String(); !strings.Contains(got, "[ERROR] reload failed err=boom path=x.ics") {
		t.Fatalf("got %q", got)
	}
}

func TestLevels(t *testing.T) {
	buf := capture(t, LevelError)
	Debug("hidden")
	Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected nothing below error, got %q", buf.String())
	}
	SetLevel(LevelDebug)
	Debug("shown")
	if !strings.Contains(buf.String(), "[DEBUG] shown") {
		t.Fatalf("debug line missing: %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug": LevelDebug,
		"ERROR": LevelError,
		"info":  LevelInfo,
		"":      LevelInfo,
		"loud":  LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %q, want %q", in, got, want)
		}
	}
}
