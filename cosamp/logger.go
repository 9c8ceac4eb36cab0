// SPDX-License-Identifier: MIT
package cosamp

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with reconstruction-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that writes JSON logs to stderr at the given level.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that writes human-readable logs to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // unreachable level
	}))
}

// WithColumn adds a column field to the logger.
func (l *Logger) WithColumn(column int) *Logger {
	return &Logger{
		Logger: l.Logger.With("column", column),
	}
}

// LogIteration logs one outer iteration at debug level.
func (l *Logger) LogIteration(ctx context.Context, iteration, support, cgIterations int, change float64) {
	l.DebugContext(ctx, "cosamp iteration",
		"iteration", iteration,
		"support", support,
		"cg_iterations", cgIterations,
		"change", change,
	)
}

// LogColumn logs the outcome of one column reconstruction.
// Use it on a logger returned by WithColumn, which carries the column field.
func (l *Logger) LogColumn(ctx context.Context, res *Result, err error) {
	if err != nil {
		l.ErrorContext(ctx, "column reconstruction failed",
			"error", err,
		)

		return
	}
	l.DebugContext(ctx, "column reconstructed",
		"iterations", res.Iterations,
		"converged", res.Converged,
		"cg_iterations", res.CGIterations,
	)
}

// LogSignal logs the outcome of a multi-column reconstruction.
func (l *Logger) LogSignal(ctx context.Context, columns, failed int, duration time.Duration) {
	if failed > 0 {
		l.WarnContext(ctx, "signal reconstructed with failures",
			"columns", columns,
			"failed", failed,
			"duration", duration,
		)

		return
	}
	l.InfoContext(ctx, "signal reconstructed",
		"columns", columns,
		"duration", duration,
	)
}
