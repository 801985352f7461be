package logger

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func fixedLogger(buf *bytes.Buffer, verbose bool) *Logger {
	l := New(buf, verbose, false)
	l.clock = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 6e6, time.UTC) }
	return l
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, false)

	l.Debug("hidden %d", 1)
	l.Info("shown %d", 2)
	l.WithLevel(LevelWarn)
	l.Info("hidden %d", 3)
	l.Warn("warned")
	l.Error("failed")

	got := buf.String()
	want := "[03:04:05.006 INFO] shown 2\n[03:04:05.006 WARN] warned\n[03:04:05.006 ERROR] failed\n"
	if got != want {
		t.Fatalf("unexpected output:\n%q\nwant:\n%q", got, want)
	}
}

func TestVerboseEnablesDebug(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, true)
	l.Debug("walking %s", "db")
	if !strings.Contains(buf.String(), "DEBUG] walking db") {
		t.Fatalf("debug line missing: %q", buf.String())
	}
}

func TestSetLevel(t *testing.T) {
	tests := []struct {
		name string
		want LogLevel
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"warning", LevelWarn},
		{" error ", LevelError},
		{"off", LevelNone},
	}
	for _, tt := range tests {
		l := New(&bytes.Buffer{}, false, false)
		l.SetLevel(tt.name)
		if l.Level() != tt.want {
			t.Errorf("SetLevel(%q) = %v, want %v", tt.name, l.Level(), tt.want)
		}
	}

	l := New(&bytes.Buffer{}, false, false).WithLevel(LevelError)
	l.SetLevel("chatty")
	if l.Level() != LevelError {
		t.Errorf("unknown level changed logger to %v", l.Level())
	}
}

func TestSuccessRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, false)
	l.Success("Combined %d files", 2)
	if buf.String() != "✔ Combined 2 files\n" {
		t.Fatalf("unexpected success line %q", buf.String())
	}

	buf.Reset()
	l.WithLevel(LevelWarn).Success("quiet")
	if buf.Len() != 0 {
		t.Fatalf("success line printed at warn level: %q", buf.String())
	}
}
