package log

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/convforge/convcast/pkg/errors"
)

// InstallZerologWarnBridge routes pkg/errors warnings through a zerolog
// logger writing to w (os.Stderr when w is nil). Warning types implementing
// zerolog.LogObjectMarshaler are emitted with their structured fields.
func InstallZerologWarnBridge(w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	zl := zerolog.New(w).With().Timestamp().Logger()

	errors.SetZerologWarnFunc(func(warning error) {
		ev := zl.Warn()
		if m, ok := warning.(zerolog.LogObjectMarshaler); ok {
			ev.Object("warning", m)
		}
		ev.Msg(warning.Error())
	})
	return zl
}
