// Package log builds [log/slog] handlers from level and format names.
//
// JSON output uses the standard library handler. Text and logfmt output use
// [github.com/charmbracelet/log], whose logger is itself a [slog.Handler].
package log
