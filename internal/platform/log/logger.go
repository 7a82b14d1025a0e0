// Package log wraps zerolog with the small surface the server needs.
package log

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is the structured logger used across the server.
type Logger = zerolog.Logger

// New builds a logger for the given environment. Local environments get a
// human-readable console writer; everything else logs JSON to stdout.
func New(env string) Logger {
	if env == "local" {
		writer := zerolog.ConsoleWriter{Out: os.Stdout}
		return zerolog.New(writer).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stdout).With().Timestamp().Logger().Level(zerolog.InfoLevel)
}
