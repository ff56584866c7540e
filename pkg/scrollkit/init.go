// Package scrollkit provides scroll helpers for retained-mode UI hosts that
// arrange item views inside a clipped, draggable panel.
//
// Two helpers are provided. PanelResetHelper snapshots a panel's scroll
// state and restores it on demand. WrapContentHelper drives a wrap-content
// container: a small, fixed pool of item views is recycled to present an
// arbitrarily long logical list, and only views inside the logical range are
// shown and rendered.
//
// The host supplies the panel, scroll view and container through the
// capability interfaces in this package. See the memory package for an
// in-memory implementation and the sdlhost package for an SDL-backed one.
package scrollkit

import (
	"io"
	"log/slog"

	"github.com/BrandonKowalski/scrollkit/pkg/scrollkit/internal"
)

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before the first log line is written to take effect.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// SetLogOutput redirects every scrollkit logger to w. A nil writer discards output.
func SetLogOutput(w io.Writer) {
	internal.SetLogOutput(w)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetInternalLogLevel sets the minimum level for scrollkit's own diagnostics.
// Defaults to warn.
func SetInternalLogLevel(level slog.Level) {
	internal.SetInternalLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// Close releases the log file opened through SetLogPath, if any.
func Close() {
	internal.CloseLogger()
}
