// Package logging adapts zerolog to the beer.Logger interface.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Level names accepted by ParseLevel.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Logger implements beer.Logger on top of a zerolog.Logger.
type Logger struct {
	logger zerolog.Logger
}

// New wraps an existing zerolog logger.
func New(logger zerolog.Logger) *Logger {
	return &Logger{logger: logger}
}

// NewConsole creates a human-readable logger writing to out at the given
// level. An unknown level falls back to info.
func NewConsole(out io.Writer, level string, noColor bool) *Logger {
	writer := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    noColor,
		TimeFormat: time.Kitchen,
	}

	return New(zerolog.New(writer).Level(ParseLevel(level)).With().Timestamp().Logger())
}

// NewJSON creates a logger writing one JSON object per line.
func NewJSON(out io.Writer, level string) *Logger {
	return New(zerolog.New(out).Level(ParseLevel(level)).With().Timestamp().Logger())
}

// ParseLevel converts a level name into a zerolog level.
func ParseLevel(level string) zerolog.Level {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || parsed == zerolog.NoLevel {
		return zerolog.InfoLevel
	}

	return parsed
}

// With returns a logger that adds fields to every entry.
func (l *Logger) With(fields map[string]interface{}) *Logger {
	return &Logger{logger: l.logger.With().Fields(fields).Logger()}
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug().Fields(fields).Msg(msg)
}

// Info logs an info message.
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.logger.Info().Fields(fields).Msg(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn().Fields(fields).Msg(msg)
}

// Error logs an error message.
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.logger.Error().Fields(fields).Msg(msg)
}
