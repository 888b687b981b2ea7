package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
)

// Level is a logging severity, spelled as a lowercase word so it round-trips
// cleanly through CLI flags and config files.
type Level string

const (
	LevelError Level = "error"
	LevelWarn  Level = "warn"
	LevelInfo  Level = "info"
	LevelDebug Level = "debug"
)

// Format is a logging output encoding.
type Format string

const (
	// FormatJSON outputs logs as JSON objects.
	FormatJSON Format = "json"
	// FormatLogfmt outputs logs in logfmt format.
	FormatLogfmt Format = "logfmt"
	// FormatText outputs logs in slog's default human-readable form.
	FormatText Format = "text"
)

// Handler is the [slog.Handler] produced by [NewHandler]; named so callers
// don't need to import log/slog just to hold the return value.
type Handler = slog.Handler

var (
	// ErrInvalidArgument indicates an invalid argument was provided.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnknownLogLevel indicates an unrecognized log level string.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrUnknownLogFormat indicates an unrecognized log format string.
	ErrUnknownLogFormat = errors.New("unknown log format")
)

// NewHandlerFromStrings creates a [Handler] by parsing levelStr and
// formatStr.
func NewHandlerFromStrings(w io.Writer, levelStr, formatStr string) (Handler, error) {
	lvl, err := ParseLevel(levelStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	fmtVal, err := ParseFormat(formatStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return NewHandler(w, lvl, fmtVal), nil
}

// NewHandler creates a [Handler] with the specified level and format.
func NewHandler(w io.Writer, level Level, format Format) Handler {
	opts := &slog.HandlerOptions{AddSource: true, Level: slogLevel(level)}

	switch format {
	case FormatJSON:
		return slog.NewJSONHandler(w, opts)
	case FormatLogfmt, FormatText:
		return slog.NewTextHandler(w, opts)
	}

	return nil
}

func slogLevel(level Level) slog.Level {
	switch level {
	case LevelError:
		return slog.LevelError
	case LevelWarn:
		return slog.LevelWarn
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	}

	return slog.LevelInfo
}

// ParseLevel parses a log level string, case-insensitively, treating "warn"
// and "warning" as the same level.
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(level) {
	case "error":
		return LevelError, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	}

	return "", ErrUnknownLogLevel
}

// ParseFormat parses a log format string, case-insensitively.
func ParseFormat(format string) (Format, error) {
	f := Format(strings.ToLower(format))
	if slices.Contains(AllFormats(), f) {
		return f, nil
	}

	return "", ErrUnknownLogFormat
}

// AllLevels lists every recognized [Level] in severity order.
func AllLevels() []Level { return []Level{LevelDebug, LevelInfo, LevelWarn, LevelError} }

// AllFormats lists every recognized [Format].
func AllFormats() []Format { return []Format{FormatJSON, FormatLogfmt, FormatText} }

// GetAllLevelStrings returns the string spelling of every recognized level,
// for CLI help text and shell completion.
func GetAllLevelStrings() []string {
	levels := AllLevels()
	out := make([]string, len(levels))

	for i, l := range levels {
		out[i] = string(l)
	}

	return out
}

// GetAllFormatStrings returns the string spelling of every recognized
// format, for CLI help text and shell completion.
func GetAllFormatStrings() []string {
	formats := AllFormats()
	out := make([]string, len(formats))

	for i, f := range formats {
		out[i] = string(f)
	}

	return out
}
