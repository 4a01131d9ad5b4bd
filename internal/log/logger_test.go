package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/plannerx/plx/internal/errors"
)

func newTestLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return New(Config{
		Level:  level,
		Format: format,
		Output: NewOutput(&buf),
	}), &buf
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newTestLogger(LevelWarn, FormatText)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Errorf("messages below WARN should be suppressed, got: %s", out)
	}
	if !strings.Contains(out, "warn message") || !strings.Contains(out, "error message") {
		t.Errorf("WARN and ERROR messages should be logged, got: %s", out)
	}
}

func TestJSONFormat(t *testing.T) {
	logger, buf := newTestLogger(LevelInfo, FormatJSON)

	logger.Info("hello", "company_id", 42)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if entry["msg"] != "hello" {
		t.Errorf("expected msg 'hello', got %v", entry["msg"])
	}
	if entry["company_id"] != float64(42) {
		t.Errorf("expected company_id 42, got %v", entry["company_id"])
	}
}

func TestWithError(t *testing.T) {
	logger, buf := newTestLogger(LevelInfo, FormatJSON)

	plxErr := errors.Wrap(errors.ErrCodeRequestFailed, "request failed", fmt.Errorf("connection refused")).
		WithSuggestion("check the API URL")
	logger.WithError(plxErr).Error("load companies")

	out := buf.String()
	if !strings.Contains(out, "API-001") {
		t.Errorf("expected error_code in output, got: %s", out)
	}
	if !strings.Contains(out, "connection refused") {
		t.Errorf("expected cause in output, got: %s", out)
	}
}

func TestWithErrorNil(t *testing.T) {
	logger, _ := newTestLogger(LevelInfo, FormatJSON)

	if logger.WithError(nil) != logger {
		t.Errorf("WithError(nil) should return the same logger")
	}
}

func TestEnabled(t *testing.T) {
	logger, _ := newTestLogger(LevelWarn, FormatText)

	ctx := context.Background()
	if logger.Enabled(ctx, LevelDebug) {
		t.Errorf("DEBUG should not be enabled at WARN level")
	}
	if !logger.Enabled(ctx, LevelError) {
		t.Errorf("ERROR should be enabled at WARN level")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
