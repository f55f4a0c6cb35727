// Package logging wires the process-wide slog pipeline: JSON records on
// stdout, with ERROR and above duplicated into the system_logs table once
// the database is up.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Setup installs the stdout JSON logger as the default. Runs before the
// database connects; main swaps in the fan-out handler afterwards.
func Setup() {
	slog.SetDefault(slog.New(NewStdoutHandler()))
}

// NewStdoutHandler builds the JSON handler honoring LOG_LEVEL
// (debug, info, warn or error; default info).
func NewStdoutHandler() slog.Handler {
	return slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: levelFromEnv()})
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
