// Package openai implements smartscrape.Completer on the OpenAI Chat
// Completions API.
package openai

import (
	"context"
	"fmt"

	"github.com/fwojciec/smartscrape"
	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
)

var _ smartscrape.Completer = (*Completer)(nil)

// Completer implements smartscrape.Completer using OpenAI chat completions.
// The API key arrives with each request, so a client is built per call.
type Completer struct {
	opts []option.RequestOption
}

// CompleterOption configures a Completer.
type CompleterOption func(*Completer)

// WithBaseURL points the client at an OpenAI-compatible endpoint.
func WithBaseURL(u string) CompleterOption {
	return func(c *Completer) { c.opts = append(c.opts, option.WithBaseURL(u)) }
}

// WithMaxRetries sets how many times the SDK retries failed requests.
func WithMaxRetries(n int) CompleterOption {
	return func(c *Completer) { c.opts = append(c.opts, option.WithMaxRetries(n)) }
}

// NewCompleter creates a new Completer.
func NewCompleter(opts ...CompleterOption) *Completer {
	c := &Completer{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Complete sends a system and user message and returns the first choice.
func (c *Completer) Complete(ctx context.Context, req smartscrape.CompletionRequest) (string, error) {
	if req.APIKey == "" {
		return "", smartscrape.Errorf(smartscrape.EINVALID, "openai API key required")
	}
	if req.Model == "" {
		return "", smartscrape.Errorf(smartscrape.EINVALID, "openai model required")
	}

	opts := append([]option.RequestOption{option.WithAPIKey(req.APIKey)}, c.opts...)
	client := openai.NewClient(opts...)

	resp, err := client.Chat.Completions.New(ctx, BuildParams(req))
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", smartscrape.Errorf(smartscrape.EINTERNAL, "openai returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// BuildParams converts a completion request into chat completion parameters.
func BuildParams(req smartscrape.CompletionRequest) openai.ChatCompletionNewParams {
	var messages []openai.ChatCompletionMessageParamUnion
	if req.System != "" {
		messages = append(messages, openai.SystemMessage(req.System))
	}
	messages = append(messages, openai.UserMessage(req.User))

	params := openai.ChatCompletionNewParams{
		Model:       req.Model,
		Messages:    messages,
		Temperature: openai.Float(0),
	}
	if req.JSON {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		}
	}
	return params
}
