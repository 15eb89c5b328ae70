package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
)

const (
	FormatJSON   = "json"
	FormatText   = "text"
	FormatLogfmt = "logfmt"

	// EnvLevel and EnvFormat override the default level and format.
	EnvLevel  = "PATHLEX_LOG_LEVEL"
	EnvFormat = "PATHLEX_LOG_FORMAT"
)

var (
	ErrUnknownLevel  = errors.New("unknown log level")
	ErrUnknownFormat = errors.New("unknown log format")
)

// CreateHandler creates a [slog.Handler] that writes to w, by strings.
func CreateHandler(w io.Writer, logLevel, logFormat string) (slog.Handler, error) {
	level, err := GetLevel(logLevel)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(logFormat) {
	case FormatJSON:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}), nil
	case FormatText, "":
		return charmlog.NewWithOptions(w, charmlog.Options{
			Level:     charmlog.Level(level),
			Formatter: charmlog.TextFormatter,
		}), nil
	case FormatLogfmt:
		return charmlog.NewWithOptions(w, charmlog.Options{
			Level:     charmlog.Level(level),
			Formatter: charmlog.LogfmtFormatter,
		}), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, logFormat)
}

// GetLevel parses a level name.
func GetLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "error":
		return slog.LevelError, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "debug", "trace":
		return slog.LevelDebug, nil
	}

	return slog.LevelInfo, fmt.Errorf("%w: %q", ErrUnknownLevel, level)
}

// DefaultLevel returns the level set in [EnvLevel], or fallback.
func DefaultLevel(fallback string) string {
	return envOr(EnvLevel, fallback)
}

// DefaultFormat returns the format set in [EnvFormat], or fallback.
func DefaultFormat(fallback string) string {
	return envOr(EnvFormat, fallback)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
