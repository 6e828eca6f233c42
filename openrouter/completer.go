// Package openrouter implements smartscrape.Completer on OpenRouter, which
// routes "vendor/model" identifiers to many upstream providers.
package openrouter

import (
	"context"
	"fmt"

	"github.com/fwojciec/smartscrape"
	"github.com/revrost/go-openrouter"
)

var _ smartscrape.Completer = (*Completer)(nil)

// Completer implements smartscrape.Completer using OpenRouter.
type Completer struct{}

// NewCompleter creates a new Completer.
func NewCompleter() *Completer {
	return &Completer{}
}

// Complete sends the prompt through OpenRouter and returns the first choice.
func (c *Completer) Complete(ctx context.Context, req smartscrape.CompletionRequest) (string, error) {
	if req.APIKey == "" {
		return "", smartscrape.Errorf(smartscrape.EINVALID, "openrouter API key required")
	}
	if req.Model == "" {
		return "", smartscrape.Errorf(smartscrape.EINVALID, "openrouter model required")
	}

	client := openrouter.NewClient(req.APIKey)
	response, err := client.CreateChatCompletion(ctx, BuildRequest(req))
	if err != nil {
		return "", fmt.Errorf("openrouter chat completion: %w", err)
	}
	if len(response.Choices) == 0 {
		return "", smartscrape.Errorf(smartscrape.EINTERNAL, "openrouter returned no choices")
	}
	return response.Choices[0].Message.Content.Text, nil
}

// BuildRequest converts a completion request into an OpenRouter request.
func BuildRequest(req smartscrape.CompletionRequest) openrouter.ChatCompletionRequest {
	var messages []openrouter.ChatCompletionMessage
	if req.System != "" {
		messages = append(messages, openrouter.ChatCompletionMessage{
			Role:    openrouter.ChatMessageRoleSystem,
			Content: openrouter.Content{Text: req.System},
		})
	}
	messages = append(messages, openrouter.ChatCompletionMessage{
		Role:    openrouter.ChatMessageRoleUser,
		Content: openrouter.Content{Text: req.User},
	})

	request := openrouter.ChatCompletionRequest{
		Model:    req.Model,
		Messages: messages,
	}
	if req.JSON {
		request.ResponseFormat = &openrouter.ChatCompletionResponseFormat{
			Type: openrouter.ChatCompletionResponseFormatTypeJSONObject,
		}
	}
	return request
}
