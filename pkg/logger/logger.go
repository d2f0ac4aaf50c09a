// Package logger implements the leveled printf-style logger used across the
// service. Messages go to a log file and are duplicated to stderr for
// warnings and errors.
package logger

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Level defines logging verbosity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel converts a config string into a Level. Unknown values map to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger writes leveled log lines to a file.
type Logger struct {
	level  Level
	out    *log.Logger
	errOut *log.Logger
	file   *os.File
}

// New creates a logger writing to the given file path. The directory is
// created if missing. An empty path means stderr only.
func New(path string, level string) (*Logger, error) {
	l := &Logger{
		level:  ParseLevel(level),
		errOut: log.New(os.Stderr, "", log.LstdFlags),
	}

	if path == "" {
		l.out = l.errOut
		return l, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("logger: create log directory: %w", err)
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logger: open log file: %w", err)
	}

	l.file = file
	l.out = log.New(file, "", log.LstdFlags)
	return l, nil
}

// Close closes the underlying log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// Debug logs a debug-level message.
func (l *Logger) Debug(format string, v ...interface{}) {
	if l.level <= LevelDebug {
		l.out.Printf("[DEBUG] "+format, v...)
	}
}

// Info logs an info-level message.
func (l *Logger) Info(format string, v ...interface{}) {
	if l.level <= LevelInfo {
		l.out.Printf("[INFO] "+format, v...)
	}
}

// Warn logs a warning. Warnings are duplicated to stderr.
func (l *Logger) Warn(format string, v ...interface{}) {
	if l.level <= LevelWarn {
		l.out.Printf("[WARN] "+format, v...)
		if l.file != nil {
			l.errOut.Printf("[WARN] "+format, v...)
		}
	}
}

// Error logs an error. Errors are duplicated to stderr.
func (l *Logger) Error(format string, v ...interface{}) {
	l.out.Printf("[ERROR] "+format, v...)
	if l.file != nil {
		l.errOut.Printf("[ERROR] "+format, v...)
	}
}

// Fatal logs an error and terminates the process.
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.Error(format, v...)
	l.Close()
	os.Exit(1)
}
