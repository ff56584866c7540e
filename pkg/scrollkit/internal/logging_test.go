package internal

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw  string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"Warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.raw); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestInternalLoggerOutput(t *testing.T) {
	var buf bytes.Buffer
	SetLogOutput(&buf)
	defer SetLogOutput(nil)

	GetInternalLogger().Warn("panel missing", "op", "test")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("expected a JSON record, got %q: %v", buf.String(), err)
	}
	if record["msg"] != "panel missing" {
		t.Errorf("expected msg 'panel missing', got %v", record["msg"])
	}
	if record["component"] != "scrollkit" {
		t.Errorf("expected component 'scrollkit', got %v", record["component"])
	}
}

func TestInternalLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	SetLogOutput(&buf)
	defer SetLogOutput(nil)

	GetInternalLogger().Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("expected debug to be filtered at default level, got %q", buf.String())
	}

	SetInternalLogLevel(slog.LevelDebug)
	defer SetInternalLogLevel(slog.LevelWarn)

	GetInternalLogger().Debug("shown")
	if buf.Len() == 0 {
		t.Errorf("expected debug output after lowering the level")
	}
}
