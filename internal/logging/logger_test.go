package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setupLogger(t *testing.T, level Level) string {
	t.Helper()

	logDir := t.TempDir()
	if err := Initialize(logDir, level); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	logPath := GetLogPath()
	if logPath == "" {
		t.Fatalf("GetLogPath returned empty path")
	}
	t.Cleanup(func() { _ = Close() })
	return logPath
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	_ = Close()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	return string(data)
}

func TestInitializeAndLogWrites(t *testing.T) {
	logPath := setupLogger(t, LevelInfo)

	Info("hello %s", "world")

	if !strings.HasPrefix(filepath.Base(logPath), "marquee-") {
		t.Fatalf("unexpected log file name %q", logPath)
	}
	content := readLog(t, logPath)
	if !strings.Contains(content, "INFO: hello world") {
		t.Fatalf("expected log line to contain message, got: %q", content)
	}
}

func TestSetEnabledDisablesLogging(t *testing.T) {
	logPath := setupLogger(t, LevelDebug)

	SetEnabled(false)
	Info("should not write")

	if content := readLog(t, logPath); len(strings.TrimSpace(content)) != 0 {
		t.Fatalf("expected no log output when disabled, got: %q", content)
	}
}

func TestLevelFiltering(t *testing.T) {
	logPath := setupLogger(t, LevelWarn)

	Info("info message")
	Warn("warn message")

	content := readLog(t, logPath)
	if strings.Contains(content, "INFO: info message") {
		t.Fatalf("did not expect info log at warn level: %q", content)
	}
	if !strings.Contains(content, "WARN: warn message") {
		t.Fatalf("expected warn log, got: %q", content)
	}
}

func TestSetLevelAndWriter(t *testing.T) {
	var buf bytes.Buffer
	InitializeWriter(&buf, LevelError)
	t.Cleanup(func() { _ = Close() })

	Debug("hidden")
	SetLevel(LevelDebug)
	Debug("shown %d", 1)
	WithError(nil, "ignored")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("did not expect debug output before SetLevel: %q", out)
	}
	if !strings.Contains(out, "DEBUG: shown 1") {
		t.Fatalf("expected debug output after SetLevel: %q", out)
	}
	if strings.Contains(out, "ignored") {
		t.Fatalf("WithError(nil) should not log: %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
		ok   bool
	}{
		{"debug", LevelDebug, true},
		{" WARN ", LevelWarn, true},
		{"warning", LevelWarn, true},
		{"error", LevelError, true},
		{"", LevelInfo, true},
		{"loud", LevelInfo, false},
	}
	for _, tt := range tests {
		got, ok := ParseLevel(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Fatalf("ParseLevel(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestLoggingWithoutInitialize(t *testing.T) {
	_ = Close()
	Info("no logger")
	if GetLogPath() != "" {
		t.Fatalf("expected empty log path without logger")
	}
}
