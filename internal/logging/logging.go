// Package logging wires the engine's structured logger (spec §10.1),
// adapted from the Alfred gateway's logger package: console-formatted
// output on an interactive terminal, line-delimited JSON otherwise, a
// single configurable level.
package logging

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// New returns a configured zerolog.Logger. When stderr is an
// interactive terminal it renders human-readable console output;
// otherwise (redirected to a file, piped, or running under CI) it
// emits line-delimited JSON so logs stay machine-parseable.
func New(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	var out io.Writer = os.Stderr
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	}

	return zerolog.New(out).With().Timestamp().Logger()
}
