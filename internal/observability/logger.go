// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package observability provides the structured logger and pipeline
// metrics shared by every stage.
package observability

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// NewLogger returns a timestamped JSON logger writing to w at the named
// level. Unknown levels fall back to info.
func NewLogger(w io.Writer, level string) zerolog.Logger {
	return zerolog.New(w).Level(ParseLevel(level)).With().Timestamp().Logger()
}

// ParseLevel maps debug, info, warn, and error to zerolog levels.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// OrNop returns logger, or a disabled logger when logger is nil.
func OrNop(logger *zerolog.Logger) *zerolog.Logger {
	if logger != nil {
		return logger
	}
	nop := zerolog.Nop()
	return &nop
}
