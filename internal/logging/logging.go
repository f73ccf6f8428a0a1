// Package logging configures the process-wide structured logger.
package logging

import (
	"log/slog"
	"os"
)

// New returns a slog.Logger for the given gin mode: JSON output in release,
// human-readable text otherwise.
func New(mode string) *slog.Logger {
	var handler slog.Handler
	if mode == "release" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	return slog.New(handler)
}
