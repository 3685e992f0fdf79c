// Package cli implements the skewrev command-line interface.
//
// The root command is a batch transform: it reads a tree description and
// prints the smallest and largest skew-heap insertion orders that build it.
// Subcommands replay insertion orders, render trees with Graphviz and
// cross-check results.
//
// # Commands
//
//   - solve: the batch transform, reading from a file or stdin
//   - replay: insert a sequence into an empty skew heap and print the tree
//   - render: draw a tree as DOT or SVG
//   - verify: solve, then replay both answers and confirm they rebuild the tree
//
// # Logging
//
// Diagnostics go to stderr through charmbracelet/log; stdout carries only
// results. All commands support --verbose (-v) for debug-level logging.
// Each invocation gets a query ID that is attached to every log line.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Verified 42 nodes (1.234s)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
