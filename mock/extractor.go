package mock

import "github.com/fwojciec/smartscrape"

var _ smartscrape.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of smartscrape.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*smartscrape.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*smartscrape.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ smartscrape.Cleaner = (*Cleaner)(nil)

// Cleaner is a mock implementation of smartscrape.Cleaner.
type Cleaner struct {
	CleanFn func(html, baseURL string) (string, error)
}

func (c *Cleaner) Clean(html, baseURL string) (string, error) {
	return c.CleanFn(html, baseURL)
}
