// Package logger provides the shared zerolog logger for this module. The
// default logger writes human-friendly output to stdout; binaries embedding
// the verifier can replace or silence it.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	logger = zerolog.New(output).With().Timestamp().Logger()

	if strings.HasSuffix(os.Args[0], ".test") {
		logger = zerolog.Nop()
	}
}

// SetOutput redirects the logger's output to w.
func SetOutput(w io.Writer) {
	logger = logger.Output(w)
}

// Set replaces the module logger.
func Set(l zerolog.Logger) {
	logger = l
}

// Disable swaps in a no-op logger.
func Disable() {
	logger = zerolog.Nop()
}

// Logger returns the module logger.
func Logger() zerolog.Logger {
	return logger
}
