package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// newLogger configures a charmbracelet logger writing to w
func newLogger(w io.Writer, level string, json bool) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}

	opts := log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	}
	if json {
		opts.Formatter = log.JSONFormatter
	}
	return log.NewWithOptions(w, opts), nil
}

// logger builds the command logger. The --log-level flag wins over fallback.
func (e *env) logger(fallback string) (*log.Logger, error) {
	level := e.globals.LogLevel
	if level == "" {
		level = fallback
	}
	return newLogger(e.stderr, level, e.globals.JSON)
}
