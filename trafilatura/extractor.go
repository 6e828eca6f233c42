// Package trafilatura extracts the main content of a page with go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/smartscrape"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements smartscrape.Extractor at compile time.
var _ smartscrape.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
// Links and images are kept by default: extraction prompts frequently
// ask for URLs.
type Extractor struct {
	opts trafilatura.Options
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*trafilatura.Options)

// WithoutLinks drops hyperlinks from the extracted content.
func WithoutLinks() ExtractorOption {
	return func(o *trafilatura.Options) {
		o.IncludeLinks = false
	}
}

// WithoutImages drops images from the extracted content.
func WithoutImages() ExtractorOption {
	return func(o *trafilatura.Options) {
		o.IncludeImages = false
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...ExtractorOption) *Extractor {
	o := trafilatura.Options{
		EnableFallback:  true,
		IncludeLinks:    true,
		IncludeImages:   true,
		ExcludeComments: true,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Extractor{opts: o}
}

// Extract processes raw HTML and returns the main content.
// Returns ENOTFOUND if no main content could be identified.
func (e *Extractor) Extract(rawHTML string) (*smartscrape.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, smartscrape.Errorf(smartscrape.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil {
		return nil, err
	}
	if result.ContentNode == nil {
		return nil, smartscrape.Errorf(smartscrape.ENOTFOUND, "no main content found")
	}

	contentHTML, err := renderNode(result.ContentNode)
	if err != nil {
		return nil, err
	}

	return &smartscrape.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
