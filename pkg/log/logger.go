package log

import (
	"fmt"
	"log/slog"
	"os"
)

// SetupLogger installs a JSON slog handler as the process default, wrapped so
// that errors carrying cockroachdb stack traces are emitted with a
// "stacktrace" attribute.
func SetupLogger(loglevel string) {
	ops := slog.HandlerOptions{
		AddSource: true,
		Level:     ToSlogLevel(loglevel),
	}
	handler := slog.NewJSONHandler(os.Stdout, &ops)
	errFmtHandler := WrapByErrFmtHandler(handler)
	slog.SetDefault(slog.New(errFmtHandler))
	SetLogger(NewSlogLogger(slog.Default()))
}

// ToSlogLevel maps a level name to its slog level. Unknown names panic, since
// a bad level is a programming error at startup.
func ToSlogLevel(level string) slog.Level {
	switch level {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		panic(fmt.Sprintf("invalid log level :%s", level))
	}
}

const (
	ErrAttrKey        = "error"
	StacktraceAttrKey = "stacktrace"
)

// ErrAttr wraps err so slog handlers can recognize it as the error attribute.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}
