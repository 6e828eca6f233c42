package smartscrape

import "strings"

// Model identifies a language model as "provider/name".
type Model string

// Supported models.
const (
	ModelGPT4oMini    Model = "openai/gpt-4o-mini"
	ModelGPT35Turbo   Model = "openai/gpt-3.5-turbo"
	ModelGPT4         Model = "openai/gpt-4"
	ModelGemini25     Model = "gemini/gemini-2.5-flash"
	ModelClaude35Open Model = "openrouter/anthropic/claude-3.5-sonnet"
)

// DefaultModel is selected when the user makes no choice.
const DefaultModel = ModelGPT4oMini

// Providers of language models.
const (
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
)

// Models returns the supported models in display order.
func Models() []Model {
	return []Model{
		ModelGPT4oMini,
		ModelGPT35Turbo,
		ModelGPT4,
		ModelGemini25,
		ModelClaude35Open,
	}
}

// ParseModel returns the Model named by s.
// Returns EINVALID if s is not a supported model.
func ParseModel(s string) (Model, error) {
	for _, m := range Models() {
		if string(m) == s {
			return m, nil
		}
	}
	return "", Errorf(EINVALID, "model %q is not supported", s)
}

// Valid reports whether m is one of the supported models.
func (m Model) Valid() bool {
	_, err := ParseModel(string(m))
	return err == nil
}

// Provider returns the part of the identifier before the first slash.
func (m Model) Provider() string {
	provider, _, _ := strings.Cut(string(m), "/")
	return provider
}

// Name returns the provider-specific model name, i.e. everything after the
// first slash. OpenRouter names keep their own vendor prefix.
func (m Model) Name() string {
	_, name, ok := strings.Cut(string(m), "/")
	if !ok {
		return string(m)
	}
	return name
}
