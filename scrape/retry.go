package scrape

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/smartscrape"
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, url string) (string, error)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// FetchWithRetry fetches url, retrying after each delay in delays.
// A nil logger disables retry logging. Cancellation of ctx aborts
// immediately with ctx.Err(). EINVALID and ENOTFOUND errors are permanent
// and returned without retrying.
func FetchWithRetry(ctx context.Context, url string, fetch FetchFunc, logger *slog.Logger, delays []time.Duration) (string, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		html, err := fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if permanent(err) || attempt >= maxAttempts-1 {
			break
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		if logger != nil {
			logger.Info("retrying fetch", "url", url, "attempt", attempt+2, "delay", delays[attempt], "error", err)
		}

		timer := time.NewTimer(delays[attempt])
		select {
		case <-ctx.Done():
			timer.Stop()
			return "", ctx.Err()
		case <-timer.C:
		}
	}

	return "", lastErr
}

// permanent reports whether retrying cannot change the outcome of a fetch.
func permanent(err error) bool {
	switch smartscrape.ErrorCode(err) {
	case smartscrape.EINVALID, smartscrape.ENOTFOUND:
		return true
	}
	return false
}
