// internal/logger/logger.go
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

var (
	defaultLogger *slog.Logger
	logLevel      *slog.LevelVar
	initOnce      sync.Once
	logFile       *os.File
)

// Init initializes the logger package from a processed Config.
// Safe to call once; later calls are no-ops.
func Init(cfg Config) error {
	var initErr error
	initOnce.Do(func() {
		cfg.process()

		var output io.Writer = os.Stderr
		if cfg.LogFilePath != "" && cfg.LogFilePath != "-" {
			f, err := os.OpenFile(cfg.LogFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
			if err != nil {
				initErr = fmt.Errorf("failed to open log file '%s': %w", cfg.LogFilePath, err)
				output = io.Discard
			} else {
				logFile = f
				output = f
			}
		}

		logLevel = new(slog.LevelVar)
		logLevel.Set(cfg.level)

		opts := slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if a.Key == slog.SourceKey {
					source := a.Value.Any().(*slog.Source)
					source.File = filepath.Base(source.File)
				}
				if a.Key == slog.TimeKey {
					a.Value = slog.StringValue(a.Value.Time().Format(time.TimeOnly))
				}
				return a
			},
		}
		base := slog.NewTextHandler(output, &opts)
		defaultLogger = slog.New(newFilteringHandler(base, &cfg))

		// Log the init message through the base handler directly so the
		// wrappers' source-capture logic isn't confused during init.
		r := slog.NewRecord(time.Now(), slog.LevelInfo, "Logger initialized", 0)
		r.AddAttrs(slog.String("level", cfg.level.String()))
		_ = base.Handle(context.Background(), r)
	})
	return initErr
}

// Cleanup closes the log file if one was opened.
func Cleanup() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

// ensureInitialized provides a safe default if Init wasn't called.
// The implicit logger discards everything.
func ensureInitialized() {
	initOnce.Do(func() {
		logLevel = new(slog.LevelVar)
		logLevel.Set(slog.LevelInfo)
		handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: logLevel})
		defaultLogger = slog.New(handler)
	})
}

// logAtLevel creates and logs a record at the specified level, capturing the
// correct caller source.
func logAtLevel(level slog.Level, attrs []slog.Attr, format string, args ...interface{}) {
	ensureInitialized()
	if !defaultLogger.Enabled(context.Background(), level) {
		return
	}

	var pcs [1]uintptr
	// Skip 3 frames:
	// 1. runtime.Callers itself
	// 2. logAtLevel (this function)
	// 3. The wrapper function (Debugf, Infof, etc.)
	runtime.Callers(3, pcs[:])

	r := slog.NewRecord(time.Now(), level, fmt.Sprintf(format, args...), pcs[0])
	r.AddAttrs(attrs...)
	_ = defaultLogger.Handler().Handle(context.Background(), r)
}

// Debugf logs a debug message using Printf-style formatting.
func Debugf(format string, args ...interface{}) {
	logAtLevel(slog.LevelDebug, nil, format, args...)
}

// DebugTagf logs a debug message carrying a tag the filter config can match.
func DebugTagf(tag string, format string, args ...interface{}) {
	logAtLevel(slog.LevelDebug, []slog.Attr{slog.String(tagKey, tag)}, format, args...)
}

// Infof logs an info message using Printf-style formatting.
func Infof(format string, args ...interface{}) {
	logAtLevel(slog.LevelInfo, nil, format, args...)
}

// Warnf logs a warning message using Printf-style formatting.
func Warnf(format string, args ...interface{}) {
	logAtLevel(slog.LevelWarn, nil, format, args...)
}

// Errorf logs an error message using Printf-style formatting.
func Errorf(format string, args ...interface{}) {
	logAtLevel(slog.LevelError, nil, format, args...)
}

// Fatalf logs an error message then exits.
func Fatalf(format string, args ...interface{}) {
	logAtLevel(slog.LevelError, nil, format, args...)
	Cleanup()
	os.Exit(1)
}

// Get retrieves the configured logger instance.
func Get() *slog.Logger {
	ensureInitialized()
	return defaultLogger
}
