package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

type logFormat string

const (
	logFormatText logFormat = "text"
	logFormatJSON logFormat = "json"
)

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("log level %q: %w", s, err)
	}
	return level, nil
}

// newLogger returns a logger writing diagnostics to w. Report output never
// goes through it.
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	lvl, err := parseLogLevel(level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var h slog.Handler
	switch logFormat(format) {
	case logFormatJSON:
		h = slog.NewJSONHandler(w, opts)
	case logFormatText, "":
		h = slog.NewTextHandler(w, opts)
	default:
		return nil, fmt.Errorf("invalid log format %q: must be %q or %q", format, logFormatText, logFormatJSON)
	}
	return slog.New(h).With(slog.String("app", "langcheck")), nil
}
