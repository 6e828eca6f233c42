package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/smartscrape"
)

// Ensure LoggingCompleter implements smartscrape.Completer.
var _ smartscrape.Completer = (*LoggingCompleter)(nil)

// LoggingCompleter wraps a Completer with logging.
// The request credential and prompt text are never logged, only sizes.
type LoggingCompleter struct {
	next     smartscrape.Completer
	logger   *slog.Logger
	provider string
}

// NewLoggingCompleter creates a new LoggingCompleter for provider.
func NewLoggingCompleter(next smartscrape.Completer, provider string, logger *slog.Logger) *LoggingCompleter {
	return &LoggingCompleter{next: next, logger: logger, provider: provider}
}

// Complete delegates to the wrapped completer and logs the call.
func (c *LoggingCompleter) Complete(ctx context.Context, req smartscrape.CompletionRequest) (reply string, err error) {
	defer func(begin time.Time) {
		c.logger.Info("completion",
			"provider", c.provider,
			"model", req.Model,
			"json", req.JSON,
			"prompt_bytes", len(req.System)+len(req.User),
			"reply_bytes", len(reply),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Complete(ctx, req)
}
