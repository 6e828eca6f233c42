// Package goquery prepares raw HTML for content extraction using goquery.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/smartscrape"
)

// Ensure Cleaner implements smartscrape.Cleaner at compile time.
var _ smartscrape.Cleaner = (*Cleaner)(nil)

// DefaultStripSelector selects elements that never carry page content.
const DefaultStripSelector = "script, style, noscript, template, svg, iframe, object, embed, link[rel=stylesheet]"

// Cleaner removes non-content elements from HTML and rewrites relative
// link and image URLs to absolute ones.
type Cleaner struct {
	strip string
}

// CleanerOption configures a Cleaner.
type CleanerOption func(*Cleaner)

// WithStripSelector replaces the selector of elements to remove.
func WithStripSelector(sel string) CleanerOption {
	return func(c *Cleaner) {
		c.strip = sel
	}
}

// NewCleaner creates a new Cleaner.
func NewCleaner(opts ...CleanerOption) *Cleaner {
	c := &Cleaner{strip: DefaultStripSelector}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Clean returns the cleaned document as HTML.
// A <base href> in the document takes precedence over baseURL.
// Returns EINVALID if the HTML cannot be parsed.
func (c *Cleaner) Clean(html, baseURL string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", smartscrape.Errorf(smartscrape.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find(c.strip).Remove()

	base := documentBase(doc, baseURL)
	if base != nil {
		rewrite(doc, "a[href]", "href", base)
		rewrite(doc, "img[src]", "src", base)
	}

	// Links that cannot be followed are noise for the model.
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if isNonHTTPLink(href) {
			sel.RemoveAttr("href")
		}
	})

	out, err := doc.Html()
	if err != nil {
		return "", err
	}
	return out, nil
}

// documentBase returns the URL relative references resolve against,
// or nil if neither the document nor baseURL provides an absolute one.
func documentBase(doc *goquery.Document, baseURL string) *url.URL {
	base, err := url.Parse(baseURL)
	if err != nil || !base.IsAbs() {
		base = nil
	}

	if href, ok := doc.Find("base[href]").First().Attr("href"); ok {
		ref, err := url.Parse(strings.TrimSpace(href))
		if err == nil {
			if base != nil {
				return base.ResolveReference(ref)
			}
			if ref.IsAbs() {
				return ref
			}
		}
	}
	return base
}

// rewrite resolves attr on every element matched by selector.
func rewrite(doc *goquery.Document, selector, attr string, base *url.URL) {
	doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		val, _ := sel.Attr(attr)
		if val == "" || isNonHTTPLink(val) || strings.HasPrefix(val, "#") {
			return
		}
		if resolved := resolveURL(base, val); resolved != "" {
			sel.SetAttr(attr, resolved)
		}
	})
}

// resolveURL resolves a relative URL against a base URL.
// Returns empty string if the href cannot be parsed.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
