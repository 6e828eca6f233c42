// Package readability extracts the main content of a page with go-readability.
// It serves as the fallback when trafilatura finds nothing.
package readability

import (
	"strings"

	"github.com/fwojciec/smartscrape"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements smartscrape.Extractor at compile time.
var _ smartscrape.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
// Returns ENOTFOUND if readability produced no content.
func (e *Extractor) Extract(rawHTML string) (*smartscrape.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, smartscrape.Errorf(smartscrape.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(article.TextContent) == "" {
		return nil, smartscrape.Errorf(smartscrape.ENOTFOUND, "no readable content found")
	}

	return &smartscrape.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
