package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		" INFO ":  zapcore.InfoLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.WarnLevel,
		"verbose": zapcore.WarnLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestSetAndNamed(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	Set(zap.New(core))
	defer Set(nil)

	Named("catalog").Debug("skipped row", zap.Int("line", 3))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if entries[0].LoggerName != "catalog" {
		t.Fatalf("expected logger name catalog, got %q", entries[0].LoggerName)
	}
	if entries[0].ContextMap()["line"] != int64(3) {
		t.Fatalf("unexpected context: %v", entries[0].ContextMap())
	}
}

func TestSetNilInstallsNop(t *testing.T) {
	Set(nil)
	if L() == nil {
		t.Fatalf("expected a logger")
	}
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "nongdam.log")
	l, err := NewFile("info", path)
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	l.Debug("hidden")
	l.Error("failed to persist checklist", zap.String("tab", "wish"))
	_ = l.Sync()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	got := string(b)
	if !strings.Contains(got, "failed to persist checklist") || !strings.Contains(got, "wish") {
		t.Fatalf("expected the error in the log file, got %q", got)
	}
	if strings.Contains(got, "hidden") {
		t.Fatalf("debug entry below the level was written: %q", got)
	}
}
