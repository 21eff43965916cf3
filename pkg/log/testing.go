package log

import (
	"bytes"
	"fmt"
	"strings"
)

// TestLogger captures log output in memory for inspection in tests.
type TestLogger struct {
	buffer *bytes.Buffer
	level  Level
	fields []any
}

// NewTestLogger creates a TestLogger capturing messages at or above level.
// It returns the logger and the buffer holding the captured output.
func NewTestLogger(level Level) (*TestLogger, *bytes.Buffer) {
	buffer := &bytes.Buffer{}
	return &TestLogger{
		buffer: buffer,
		level:  level,
	}, buffer
}

// Debug implements Logger.Debug.
func (t *TestLogger) Debug(msg string, fields ...any) {
	if t.level <= LevelDebug {
		t.writeLog("DEBUG", msg, fields...)
	}
}

// Info implements Logger.Info.
func (t *TestLogger) Info(msg string, fields ...any) {
	if t.level <= LevelInfo {
		t.writeLog("INFO", msg, fields...)
	}
}

// Warn implements Logger.Warn.
func (t *TestLogger) Warn(msg string, fields ...any) {
	if t.level <= LevelWarn {
		t.writeLog("WARN", msg, fields...)
	}
}

// Error implements Logger.Error.
func (t *TestLogger) Error(msg string, fields ...any) {
	if t.level <= LevelError {
		t.writeLog("ERROR", msg, fields...)
	}
}

// With implements Logger.With.
func (t *TestLogger) With(fields ...any) Logger {
	combined := make([]any, 0, len(t.fields)+len(fields))
	combined = append(combined, t.fields...)
	combined = append(combined, fields...)
	return &TestLogger{
		buffer: t.buffer,
		level:  t.level,
		fields: combined,
	}
}

func (t *TestLogger) writeLog(level, msg string, fields ...any) {
	var b strings.Builder
	b.WriteString(level)
	b.WriteString(" ")
	b.WriteString(msg)

	all := make([]any, 0, len(t.fields)+len(fields))
	all = append(all, t.fields...)
	all = append(all, fields...)
	for i := 0; i+1 < len(all); i += 2 {
		b.WriteString(fmt.Sprintf(" %v=%v", all[i], all[i+1]))
	}
	b.WriteString("\n")
	t.buffer.WriteString(b.String())
}
