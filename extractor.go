package smartscrape

// ExtractResult holds the main content pulled out of an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML, with navigation,
	// footers, sidebars and ads removed.
	ContentHTML string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	Extract(html string) (*ExtractResult, error)
}

// Cleaner prepares raw HTML for extraction.
type Cleaner interface {
	// Clean strips non-content elements and rewrites relative links
	// against baseURL so the model only ever sees absolute URLs.
	Clean(html, baseURL string) (string, error)
}
