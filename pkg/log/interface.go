// Package log provides structured logging for ConvCast training and
// preprocessing operations.
//
// The package defines a minimal, slog-compatible Logger interface with an
// slog-backed default implementation, standard attribute keys for machine
// learning context (model name, operation, data shape, per-epoch losses), a
// handler that renders cockroachdb/errors stack traces as a log attribute,
// and a zerolog bridge for the warning system in pkg/errors.
package log

import (
	"log/slog"
	"sync"
)

// Level is the minimum severity a logger emits.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Logger is a structured logging interface compatible with log/slog.
// Fields are alternating key/value pairs, as in slog.
type Logger interface {
	// Debug logs detailed diagnostic information.
	Debug(msg string, fields ...any)

	// Info logs general operational information.
	Info(msg string, fields ...any)

	// Warn logs conditions worth attention that do not stop the operation.
	Warn(msg string, fields ...any)

	// Error logs failures.
	Error(msg string, fields ...any)

	// With returns a logger whose records all carry the given fields.
	With(fields ...any) Logger
}

// slogLogger adapts *slog.Logger to the Logger interface.
type slogLogger struct {
	l *slog.Logger
}

func (s *slogLogger) Debug(msg string, fields ...any) { s.l.Debug(msg, fields...) }
func (s *slogLogger) Info(msg string, fields ...any)  { s.l.Info(msg, fields...) }
func (s *slogLogger) Warn(msg string, fields ...any)  { s.l.Warn(msg, fields...) }
func (s *slogLogger) Error(msg string, fields ...any) { s.l.Error(msg, fields...) }
func (s *slogLogger) With(fields ...any) Logger {
	return &slogLogger{l: s.l.With(fields...)}
}

// NewSlogLogger wraps an *slog.Logger. A nil argument wraps slog.Default().
func NewSlogLogger(l *slog.Logger) Logger {
	if l == nil {
		l = slog.Default()
	}
	return &slogLogger{l: l}
}

var (
	defaultMu     sync.RWMutex
	defaultLogger Logger = &slogLogger{l: slog.Default()}
)

// GetLogger returns the process-wide default logger.
func GetLogger() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetLogger replaces the process-wide default logger.
func SetLogger(l Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}
