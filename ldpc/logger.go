package ldpc

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with sketch-generation context.
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

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithConfig adds the sketch shape to the logger.
func (l *Logger) WithConfig(cfg Config) *Logger {
	return &Logger{
		Logger: l.Logger.With(
			"rowlen", cfg.RowLen,
			"ones_per_row", cfg.OnesPerRow,
			"height", cfg.Height,
			"unaltered_include", cfg.UnalteredInclude,
		),
	}
}

// WithSeed adds a seed field to the logger (useful for tagging trials).
func (l *Logger) WithSeed(seed uint64) *Logger {
	return &Logger{
		Logger: l.Logger.With("seed", seed),
	}
}

// LogLayout logs the packing layout chosen for a generation.
func (l *Logger) LogLayout(ctx context.Context, bitsPerWord, itemsPerRow int) {
	l.DebugContext(ctx, "packing layout",
		"bits_per_word", bitsPerWord,
		"items_per_row", itemsPerRow,
	)
}

// LogGenerate logs a generate operation.
func (l *Logger) LogGenerate(ctx context.Context, rows, words int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "generate failed",
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "generate completed",
			"rows", rows,
			"words", words,
			"duration", duration,
		)
	}
}

// LogTrials logs a batch of independent trials.
func (l *Logger) LogTrials(ctx context.Context, count, failed int, err error) {
	switch {
	case err != nil:
		l.ErrorContext(ctx, "trials failed",
			"total", count,
			"failed", failed,
			"error", err,
		)
	default:
		l.InfoContext(ctx, "trials completed",
			"count", count,
		)
	}
}
