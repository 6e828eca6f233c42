package smartscrape

import "context"

// Fetcher retrieves rendered HTML from URLs.
// Implementations may use browser automation to handle JavaScript-rendered content.
type Fetcher interface {
	// Fetch navigates to the URL, waits for JavaScript to render,
	// and returns the rendered HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases browser resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// FetcherProvider hands out browser-backed fetchers for a display mode.
type FetcherProvider interface {
	// Fetcher returns a Fetcher whose browser runs headless or with a
	// visible window. Closing the returned Fetcher does not shut down
	// the shared browser.
	Fetcher(headless bool) (Fetcher, error)
}
