package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/smartscrape"
	"github.com/fwojciec/smartscrape/mock"
	ssslog "github.com/fwojciec/smartscrape/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html>content</html>", nil
			},
		}

		fetcher := ssslog.NewLoggingFetcher(inner, logger)
		html, err := fetcher.Fetch(context.Background(), "https://example.com/shop")

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", html)
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "url=https://example.com/shop")
		assert.Contains(t, output, "bytes=20")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", errors.New("network error")
			},
		}

		fetcher := ssslog.NewLoggingFetcher(inner, logger)
		_, err := fetcher.Fetch(context.Background(), "https://example.com/shop")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"network error\"")
	})
}

func TestLoggingFetcher_Close(t *testing.T) {
	t.Parallel()

	closeCalled := false
	inner := &mock.Fetcher{
		CloseFn: func() error {
			closeCalled = true
			return nil
		},
	}

	fetcher := ssslog.NewLoggingFetcher(inner, slog.New(slog.DiscardHandler))

	require.NoError(t, fetcher.Close())
	assert.True(t, closeCalled)
}

func TestLoggingFetcherProvider_Fetcher(t *testing.T) {
	t.Parallel()

	t.Run("wraps fetcher and tags mode", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.FetcherProvider{
			FetcherFn: func(headless bool) (smartscrape.Fetcher, error) {
				return &mock.Fetcher{
					FetchFn: func(ctx context.Context, url string) (string, error) { return "<p>x</p>", nil },
				}, nil
			},
		}

		f, err := ssslog.NewLoggingFetcherProvider(inner, logger).Fetcher(true)
		require.NoError(t, err)
		_, err = f.Fetch(context.Background(), "https://example.com")
		require.NoError(t, err)

		assert.Contains(t, buf.String(), "headless=true")
	})

	t.Run("logs and returns provider errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.FetcherProvider{
			FetcherFn: func(headless bool) (smartscrape.Fetcher, error) {
				return nil, errors.New("chrome not found")
			},
		}

		_, err := ssslog.NewLoggingFetcherProvider(inner, logger).Fetcher(false)

		require.Error(t, err)
		assert.Contains(t, buf.String(), "browser unavailable")
	})
}
