package common

import (
	"log/slog"
	"os"
)

// NewLogger builds the shared stderr JSON logger. Quiet mode suppresses
// everything below error level; progress lines on stdout are unaffected.
func NewLogger(quiet bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if quiet {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}
