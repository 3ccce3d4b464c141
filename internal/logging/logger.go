// Package logging builds the zerolog logger used by the CLI.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls logger construction.
type Options struct {
	Verbose bool      // Debug level
	Quiet   bool      // Warn level
	Console io.Writer // Usually stderr; stdout is reserved for results

	// File, when set, receives a JSON copy of every entry, rotated by size.
	File       string
	MaxSizeMB  int
	MaxBackups int
}

// New creates a logger from opts.
//
// Log levels are set as follows:
//   - Verbose: Debug
//   - Quiet: Warn
//   - default: Info
//
// A terminal console gets human-readable output; anything else gets JSON.
// The returned closer releases the log file and is never nil.
func New(opts Options) (zerolog.Logger, io.Closer) {
	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	if isTerminal(console) {
		console = zerolog.ConsoleWriter{Out: console, TimeFormat: "15:04:05"}
	}

	var (
		writer io.Writer = console
		closer io.Closer = nopCloser{}
	)
	if opts.File != "" {
		file := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
		}
		writer = zerolog.MultiLevelWriter(console, file)
		closer = file
	}

	logger := zerolog.New(writer).
		Level(selectLevel(opts.Verbose, opts.Quiet)).
		Hook(NewSecretHook()).
		With().Timestamp().Logger()
	return logger, closer
}

func selectLevel(verbose, quiet bool) zerolog.Level {
	switch {
	case verbose:
		return zerolog.DebugLevel
	case quiet:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
