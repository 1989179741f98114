// Package logging provides the verbose logger used by the rule generator and
// the command line tool.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger reports generator decisions. When disabled it drops everything, so
// callers never need to guard their calls.
type Logger struct {
	enabled bool
	zlog    zerolog.Logger
}

// New creates a logger writing human readable lines to stderr.
func New(enabled bool) *Logger {
	l := &Logger{enabled: enabled}
	l.SetOutput(os.Stderr)
	return l
}

// FromZerolog wraps an already configured zerolog logger.
func FromZerolog(enabled bool, z zerolog.Logger) *Logger {
	return &Logger{enabled: enabled, zlog: z}
}

// SetOutput sets the output writer for the logger.
func (l *Logger) SetOutput(w io.Writer) {
	l.zlog = zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true, PartsExclude: []string{zerolog.TimestampFieldName}}).
		With().Str("component", "soundnfa").Logger()
}

// Log prints a formatted message if verbose mode is enabled.
func (l *Logger) Log(format string, args ...interface{}) {
	if l.enabled {
		l.zlog.Info().Msg(fmt.Sprintf(format, args...))
	}
}

// Section prints a section header if verbose mode is enabled.
func (l *Logger) Section(name string) {
	if l.enabled {
		l.zlog.Info().Str("section", name).Msg("===")
	}
}

// Zerolog exposes the underlying logger for structured fields.
func (l *Logger) Zerolog() *zerolog.Logger {
	return &l.zlog
}

// Enabled returns whether the logger is enabled.
func (l *Logger) Enabled() bool {
	return l.enabled
}
