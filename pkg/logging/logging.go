// Package logging holds the process wide diagnostic logger.
//
// User facing output goes to color.Output through the printers; this logger
// is for diagnostics only (skipped rows, image and font failures).
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvLevel overrides the configured level when set.
const EnvLevel = "NONGDAM_LOG_LEVEL"

var (
	mu     sync.RWMutex
	logger *zap.Logger
)

// L returns the current logger, building a default one on first use.
func L() *zap.Logger {
	mu.RLock()
	l := logger
	mu.RUnlock()
	if l != nil {
		return l
	}
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		logger = New(os.Getenv(EnvLevel))
	}
	return logger
}

// Set replaces the process logger. Passing nil installs a no-op logger.
func Set(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	mu.Lock()
	logger = l
	mu.Unlock()
}

// Named returns a child logger for a component.
func Named(component string) *zap.Logger {
	return L().Named(component)
}

// New builds a console logger writing to stderr at the given level.
// Unknown levels fall back to warn so normal CLI runs stay quiet.
func New(level string) *zap.Logger {
	cfg := config(level)
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

// NewFile builds a logger like New that appends to path. Full screen uis
// use it so diagnostics do not draw over the screen.
func NewFile(level, path string) (*zap.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("logging: ensure log dir: %w", err)
	}
	cfg := config(level)
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}

// DefaultFile is the log file used while a full screen ui runs.
func DefaultFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "nongdam", "nongdam.log")
}

func config(level string) zap.Config {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(ParseLevel(level))
	cfg.DisableStacktrace = true
	cfg.DisableCaller = true
	return cfg
}

// ParseLevel maps a level name to a zap level.
func ParseLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}
