package smartscrape

import "context"

// ExtractionService runs one AI-driven extraction against a web page.
type ExtractionService interface {
	// RunExtraction fetches source, interprets it according to prompt with
	// the model in cfg, and returns the structured value the model produced.
	// The value is opaque to callers: typically a map or slice decoded from JSON.
	// The call blocks until it completes or ctx is canceled.
	RunExtraction(ctx context.Context, prompt, source string, cfg Config) (any, error)
}
