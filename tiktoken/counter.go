// Package tiktoken counts tokens with OpenAI's BPE encodings.
package tiktoken

import (
	"context"
	"sync"

	"github.com/fwojciec/smartscrape"
	"github.com/pkoukk/tiktoken-go"
)

// FallbackEncoding is used for models tiktoken does not recognize.
const FallbackEncoding = "cl100k_base"

var _ smartscrape.TokenCounter = (*TokenCounter)(nil)

var (
	encoderCache   = make(map[string]*tiktoken.Tiktoken)
	encoderCacheMu sync.RWMutex
)

// encoder returns a cached encoder for the model.
func encoder(model string) (*tiktoken.Tiktoken, error) {
	encoderCacheMu.RLock()
	if tkm, ok := encoderCache[model]; ok {
		encoderCacheMu.RUnlock()
		return tkm, nil
	}
	encoderCacheMu.RUnlock()

	encoderCacheMu.Lock()
	defer encoderCacheMu.Unlock()

	if tkm, ok := encoderCache[model]; ok {
		return tkm, nil
	}

	tkm, err := tiktoken.EncodingForModel(model)
	if err != nil {
		tkm, err = tiktoken.GetEncoding(FallbackEncoding)
		if err != nil {
			return nil, err
		}
	}
	encoderCache[model] = tkm
	return tkm, nil
}

// TokenCounter counts tokens for one OpenAI model name.
// Encoders load their BPE ranks on first use and are shared process-wide.
type TokenCounter struct {
	model string
}

// NewTokenCounter creates a TokenCounter for model, e.g. "gpt-4o-mini".
func NewTokenCounter(model string) *TokenCounter {
	return &TokenCounter{model: model}
}

// CountTokens counts the number of tokens in text.
func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	if text == "" {
		return 0, nil
	}
	tkm, err := encoder(tc.model)
	if err != nil {
		return 0, err
	}
	return len(tkm.Encode(text, nil, nil)), nil
}
