// Package rod provides browser-backed implementations of smartscrape.Fetcher
// using the go-rod Chrome DevTools driver.
package rod

import (
	"context"
	"time"

	"github.com/fwojciec/smartscrape"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Fetcher implements smartscrape.Fetcher at compile time.
var _ smartscrape.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using a browser owned by a
// BrowserManager. Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	manager  *BrowserManager
	headless bool
	timeout  time.Duration
}

// Headless reports the display mode of the fetcher's browser.
func (f *Fetcher) Headless() bool {
	return f.headless
}

// Fetch navigates to the URL and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	// Check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	mb, release, err := f.manager.acquire(f.headless)
	if err != nil {
		return "", err
	}
	defer release()

	page, err := mb.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	// Set context for all subsequent operations
	p := page.Context(ctx)
	if f.timeout > 0 {
		p = p.Timeout(f.timeout)
	}

	if err := p.Navigate(url); err != nil {
		return "", err
	}

	if err := p.WaitLoad(); err != nil {
		return "", err
	}

	html, err := p.HTML()
	if err != nil {
		return "", err
	}

	mb.pageCount.Add(1)
	return html, nil
}

// Close is a no-op: the browser belongs to the BrowserManager.
func (f *Fetcher) Close() error {
	return nil
}
