// Package telemetry builds the injected zerolog.Logger every core
// component takes as a constructor argument (spec §1, §2). There is no
// package-level global: callers own the Logger returned by New and pass it
// down explicitly.
package telemetry

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New builds a Logger from LOG_LEVEL (default info). In production it
// writes structured JSON to stdout; otherwise it writes the same
// human-readable console format the teacher's pkg/logger uses. Mirrors
// the original's guarded, lazy RUST_LOG initialization: a level that
// fails to parse silently falls back to info rather than panicking.
func New(environment string) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMicro

	level, err := zerolog.ParseLevel(strings.ToLower(levelOrDefault()))
	if err != nil {
		level = zerolog.InfoLevel
	}

	var base zerolog.Logger
	if strings.EqualFold(environment, "production") {
		base = zerolog.New(os.Stdout)
	} else {
		base = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: "15:04:05.000000",
		})
	}

	return base.Level(level).With().Timestamp().Logger()
}

func levelOrDefault() string {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		return v
	}
	return "info"
}
