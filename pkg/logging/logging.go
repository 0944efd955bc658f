/*
Copyright © 2025 Strata Cloud
SPDX-License-Identifier: Apache-2.0
*/

// Package logging configures the process-wide slog default logger.
//
// The log level is taken from the LOG_LEVEL environment variable
// (debug, info, warn, error) unless overridden programmatically.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Setup installs the default slog logger writing to stderr.
// When jsonOutput is true, logs are emitted as JSON records; otherwise
// the plain text handler is used. debug forces the level to debug
// regardless of LOG_LEVEL.
func Setup(debug, jsonOutput bool) {
	level := levelFromEnv()
	if debug {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if jsonOutput {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	slog.SetDefault(slog.New(handler))
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
