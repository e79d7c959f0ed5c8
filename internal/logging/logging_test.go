package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: FormatText, Output: &buf})

	logger.Info("resolved", "domain", "config", "path", "/home/u/.config")

	out := buf.String()
	if !strings.Contains(out, "resolved") {
		t.Errorf("output missing message: %q", out)
	}
	if !strings.Contains(out, "domain=config") {
		t.Errorf("output missing attribute: %q", out)
	}
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: FormatJSON, Output: &buf})

	logger.Info("resolved", "domain", "cache")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if record["msg"] != "resolved" {
		t.Errorf("msg = %v, want %q", record["msg"], "resolved")
	}
	if record["domain"] != "cache" {
		t.Errorf("domain = %v, want %q", record["domain"], "cache")
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelWarn, Format: FormatText, Output: &buf})

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message leaked through warn level: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn message missing: %q", out)
	}
}

func TestLevelFromVerbosity(t *testing.T) {
	tests := []struct {
		verbosity int
		want      slog.Level
	}{
		{0, slog.LevelInfo},
		{1, slog.LevelDebug},
		{2, slog.LevelDebug - 4},
		{5, slog.LevelDebug - 4},
		{-1, slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := LevelFromVerbosity(tt.verbosity); got != tt.want {
			t.Errorf("LevelFromVerbosity(%d) = %v, want %v", tt.verbosity, got, tt.want)
		}
	}
}

func TestHandler_Groups(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, nil)).WithGroup("lookup")

	logger.Info("done", "kind", "documents")

	if !strings.Contains(buf.String(), "lookup.kind=documents") {
		t.Errorf("grouped attribute missing: %q", buf.String())
	}
}

func TestMultiHandler(t *testing.T) {
	var a, b bytes.Buffer
	logger := slog.New(NewMultiHandler(
		slog.NewTextHandler(&a, nil),
		slog.NewJSONHandler(&b, nil),
	))

	logger.Info("both")

	if !strings.Contains(a.String(), "both") {
		t.Errorf("first handler missed the record: %q", a.String())
	}
	if !strings.Contains(b.String(), "both") {
		t.Errorf("second handler missed the record: %q", b.String())
	}
}

func TestDefault(t *testing.T) {
	logger := Default()
	if !logger.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("Default() should log at Info level")
	}
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Default() should not log at Debug level")
	}
}

func TestNewDiscard(t *testing.T) {
	// Must not panic and must swallow everything.
	NewDiscard().Error("nobody hears this")
}

func TestSupportsColor_Buffer(t *testing.T) {
	var buf bytes.Buffer
	if SupportsColor(&buf) {
		t.Error("a bytes.Buffer is not a TTY")
	}
}
