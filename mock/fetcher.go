package mock

import (
	"context"

	"github.com/fwojciec/smartscrape"
)

var _ smartscrape.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of smartscrape.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

var _ smartscrape.FetcherProvider = (*FetcherProvider)(nil)

// FetcherProvider is a mock implementation of smartscrape.FetcherProvider.
type FetcherProvider struct {
	FetcherFn func(headless bool) (smartscrape.Fetcher, error)
}

func (p *FetcherProvider) Fetcher(headless bool) (smartscrape.Fetcher, error) {
	return p.FetcherFn(headless)
}
