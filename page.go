package smartscrape

// Page is a fetched web page reduced to its main content.
type Page struct {
	URL     string
	Title   string
	Content string // Markdown
}
