// Package logging wraps a process-wide zap logger.
// The CLI prints results on stdout, so logs default to stderr at warn level.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the global logger instance
var Logger *zap.Logger

// Config contains logging configuration
type Config struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string `json:"level"`

	// Format is console or json
	Format string `json:"format"`

	// Output is stdout, stderr or a file path
	Output string `json:"output"`

	// Development adds stack traces to error logs
	Development bool `json:"development"`
}

// DefaultConfig logs warnings and errors to stderr
func DefaultConfig() Config {
	return Config{
		Level:  "warn",
		Format: "console",
		Output: "stderr",
	}
}

// New builds a logger from cfg without touching the global
func New(cfg Config) (*zap.Logger, error) {
	sink, err := openSink(cfg.Output)
	if err != nil {
		return nil, err
	}

	core := zapcore.NewCore(newEncoder(cfg.Format), sink, parseLevel(cfg.Level))
	opts := []zap.Option{zap.AddCaller()}
	if cfg.Development {
		opts = append(opts, zap.Development(), zap.AddStacktrace(zapcore.ErrorLevel))
	}
	return zap.New(core, opts...), nil
}

// parseLevel falls back to warn for unknown names
func parseLevel(name string) zapcore.Level {
	level, err := zapcore.ParseLevel(name)
	if err != nil {
		return zapcore.WarnLevel
	}
	return level
}

func newEncoder(format string) zapcore.Encoder {
	ec := zap.NewProductionEncoderConfig()
	ec.TimeKey = "timestamp"
	ec.EncodeTime = zapcore.ISO8601TimeEncoder

	if format == "json" {
		return zapcore.NewJSONEncoder(ec)
	}
	ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zapcore.NewConsoleEncoder(ec)
}

func openSink(output string) (zapcore.WriteSyncer, error) {
	switch output {
	case "", "stderr":
		return zapcore.Lock(os.Stderr), nil
	case "stdout":
		return zapcore.Lock(os.Stdout), nil
	}
	f, err := os.OpenFile(output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	return zapcore.AddSync(f), nil
}

// Initialize replaces the global logger
func Initialize(cfg Config) error {
	logger, err := New(cfg)
	if err != nil {
		return err
	}
	Logger = logger
	return nil
}

// InitializeDefault installs DefaultConfig, so the global is never nil
func InitializeDefault() {
	_ = Initialize(DefaultConfig())
}

// Sync flushes the logger
func Sync() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}

// Named returns a child of the global logger for one component
func Named(component string) *zap.Logger {
	return Logger.Named(component)
}

// With returns a child of the global logger carrying fields
func With(fields ...zap.Field) *zap.Logger {
	return Logger.With(fields...)
}

// Debug logs at debug level
func Debug(msg string, fields ...zap.Field) {
	Logger.Debug(msg, fields...)
}

// Info logs at info level
func Info(msg string, fields ...zap.Field) {
	Logger.Info(msg, fields...)
}

// Warn logs at warn level
func Warn(msg string, fields ...zap.Field) {
	Logger.Warn(msg, fields...)
}

// Error logs at error level
func Error(msg string, fields ...zap.Field) {
	Logger.Error(msg, fields...)
}

func init() {
	InitializeDefault()
}
