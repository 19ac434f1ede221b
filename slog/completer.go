// Package slog provides logging decorators for warmline services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/warmlinehq/warmline"
)

// Ensure LoggingCompleter implements warmline.Completer.
var _ warmline.Completer = (*LoggingCompleter)(nil)

// LoggingCompleter wraps a Completer with request/response logging.
type LoggingCompleter struct {
	next   warmline.Completer
	logger *slog.Logger
}

// NewLoggingCompleter creates a new LoggingCompleter.
func NewLoggingCompleter(next warmline.Completer, logger *slog.Logger) *LoggingCompleter {
	return &LoggingCompleter{next: next, logger: logger}
}

// Complete logs the completion call and delegates to the wrapped Completer.
func (c *LoggingCompleter) Complete(ctx context.Context, prompt string) (comp *warmline.Completion, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"prompt_bytes", len(prompt),
			"duration", time.Since(begin),
			"err", err,
		}
		if comp != nil {
			attrs = append(attrs, "response_bytes", len(comp.Text), "truncated", comp.Truncated)
		}
		c.logger.Info("completion", attrs...)
	}(time.Now())
	return c.next.Complete(ctx, prompt)
}
