package gemini

import (
	"context"

	"github.com/fwojciec/smartscrape"
	"google.golang.org/genai"
)

// Ensure Completer implements smartscrape.Completer at compile time.
var _ smartscrape.Completer = (*Completer)(nil)

// DefaultTemperature keeps extraction output close to deterministic.
const DefaultTemperature = float32(0)

// Completer implements smartscrape.Completer using Google Gemini.
// A client is built per call because each submission carries its own key.
type Completer struct {
	baseURL     string
	temperature float32
}

// CompleterOption configures a Completer.
type CompleterOption func(*Completer)

// WithBaseURL points the client at a different API endpoint.
func WithBaseURL(u string) CompleterOption {
	return func(c *Completer) { c.baseURL = u }
}

// WithTemperature sets the sampling temperature.
func WithTemperature(t float32) CompleterOption {
	return func(c *Completer) { c.temperature = t }
}

// NewCompleter creates a new Completer.
func NewCompleter(opts ...CompleterOption) *Completer {
	c := &Completer{temperature: DefaultTemperature}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Complete sends the prompt to Gemini and returns the reply text.
func (c *Completer) Complete(ctx context.Context, req smartscrape.CompletionRequest) (string, error) {
	if req.APIKey == "" {
		return "", smartscrape.Errorf(smartscrape.EINVALID, "gemini API key required")
	}
	if req.Model == "" {
		return "", smartscrape.Errorf(smartscrape.EINVALID, "gemini model required")
	}

	cc := &genai.ClientConfig{
		APIKey:  req.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if c.baseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: c.baseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return "", err
	}

	result, err := client.Models.GenerateContent(ctx, req.Model,
		[]*genai.Content{{
			Role:  "user",
			Parts: []*genai.Part{{Text: req.User}},
		}},
		c.BuildConfig(req),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", smartscrape.Errorf(smartscrape.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for a request.
func (c *Completer) BuildConfig(req smartscrape.CompletionRequest) *genai.GenerateContentConfig {
	temp := c.temperature
	config := &genai.GenerateContentConfig{
		Temperature: &temp,
	}
	if req.System != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		}
	}
	if req.JSON {
		config.ResponseMIMEType = "application/json"
	}
	return config
}
