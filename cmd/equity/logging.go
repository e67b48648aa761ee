package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/lox/headsup-equity/internal/config"
)

// newLogger builds the CLI logger from the log settings
func newLogger(w io.Writer, settings config.LogSettings) (*log.Logger, error) {
	level, err := log.ParseLevel(settings.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", settings.Level, err)
	}

	opts := log.Options{
		Level:           level,
		ReportTimestamp: level == log.DebugLevel,
	}
	switch strings.ToLower(settings.Format) {
	case "json":
		opts.Formatter = log.JSONFormatter
		opts.ReportTimestamp = true
	case "logfmt":
		opts.Formatter = log.LogfmtFormatter
		opts.ReportTimestamp = true
	default:
		opts.Formatter = log.TextFormatter
	}
	return log.NewWithOptions(w, opts), nil
}

// setupSignalHandler returns a context cancelled on interrupt signals
func setupSignalHandler(parent context.Context, logger *log.Logger) context.Context {
	ctx, cancel := context.WithCancel(parent)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		logger.Warn("Received signal, stopping run", "signal", sig.String())
		cancel()
	}()

	return ctx
}
