// Package slog provides logging decorators for smartscrape services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/smartscrape"
)

// Ensure LoggingFetcher implements smartscrape.Fetcher.
var _ smartscrape.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   smartscrape.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next smartscrape.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the URL being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}

// Ensure LoggingFetcherProvider implements smartscrape.FetcherProvider.
var _ smartscrape.FetcherProvider = (*LoggingFetcherProvider)(nil)

// LoggingFetcherProvider hands out fetchers wrapped in LoggingFetcher.
type LoggingFetcherProvider struct {
	next   smartscrape.FetcherProvider
	logger *slog.Logger
}

// NewLoggingFetcherProvider creates a new LoggingFetcherProvider.
func NewLoggingFetcherProvider(next smartscrape.FetcherProvider, logger *slog.Logger) *LoggingFetcherProvider {
	return &LoggingFetcherProvider{next: next, logger: logger}
}

// Fetcher returns the wrapped provider's fetcher for the mode, with logging.
func (p *LoggingFetcherProvider) Fetcher(headless bool) (smartscrape.Fetcher, error) {
	f, err := p.next.Fetcher(headless)
	if err != nil {
		p.logger.Warn("browser unavailable", "headless", headless, "err", err)
		return nil, err
	}
	return NewLoggingFetcher(f, p.logger.With("headless", headless)), nil
}
