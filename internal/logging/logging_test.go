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

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc.log")

	logger, err := New(Config{Level: "debug", Format: "json", Output: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Debug("comparison built", zap.Int("rows", 4))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log: %v", err)
	}
	line := string(data)
	if !strings.Contains(line, `"msg":"comparison built"`) || !strings.Contains(line, `"rows":4`) {
		t.Errorf("unexpected log line: %s", line)
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc.log")

	logger, err := New(Config{Level: "warn", Format: "json", Output: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Info("dropped")
	logger.Warn("kept")
	_ = logger.Sync()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "dropped") {
		t.Error("info line should be filtered at warn level")
	}
	if !strings.Contains(string(data), "kept") {
		t.Error("warn line missing")
	}
}

func TestGlobalLoggerInitialized(t *testing.T) {
	if Logger == nil {
		t.Fatal("global logger should be set by init")
	}
	if Named("engine") == nil {
		t.Fatal("Named returned nil")
	}
}

// useObserver swaps the global logger for one that records entries
func useObserver(t *testing.T, level zapcore.Level) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(level)
	previous := Logger
	Logger = zap.New(core)
	t.Cleanup(func() { Logger = previous })
	return logs
}

func TestGlobalHelpers(t *testing.T) {
	logs := useObserver(t, zapcore.DebugLevel)

	With(zap.String("service", "roas-server")).Info("started")
	Debug("catalog loaded")
	Warn("input adjusted", zap.Float64("spend", 0))
	Error("server stopped")

	entries := logs.All()
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(entries))
	}
	if entries[0].ContextMap()["service"] != "roas-server" {
		t.Errorf("With fields missing: %v", entries[0].ContextMap())
	}
	if entries[2].Level != zapcore.WarnLevel || entries[3].Level != zapcore.ErrorLevel {
		t.Errorf("unexpected levels: %v, %v", entries[2].Level, entries[3].Level)
	}
}

func TestUnknownLevelFallsBackToWarn(t *testing.T) {
	if got := parseLevel("loud"); got != zapcore.WarnLevel {
		t.Errorf("expected warn, got %v", got)
	}
	if got := parseLevel("debug"); got != zapcore.DebugLevel {
		t.Errorf("expected debug, got %v", got)
	}
}

func TestInitializeDefaultResetsGlobal(t *testing.T) {
	previous := Logger
	t.Cleanup(func() { Logger = previous })

	Logger = nil
	InitializeDefault()
	if Logger == nil {
		t.Fatal("InitializeDefault left the global unset")
	}
	if Logger.Core().Enabled(zapcore.InfoLevel) {
		t.Error("default logger should drop info entries")
	}
}
