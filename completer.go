package smartscrape

import "context"

// CompletionRequest is a single-turn prompt for a language model.
type CompletionRequest struct {
	// APIKey authenticates the call. Completers never retain it.
	APIKey string

	// Model is the provider-specific model name (see Model.Name).
	Model string

	System string
	User   string

	// JSON asks the provider to constrain its reply to a JSON object.
	JSON bool
}

// Completer sends prompts to one language model provider.
type Completer interface {
	// Complete returns the text of the model's reply.
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
