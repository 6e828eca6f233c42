package scrape_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fwojciec/smartscrape/scrape"
	"github.com/stretchr/testify/assert"
)

// wordCount treats every whitespace-separated word as one token.
func wordCount(text string) int {
	return len(strings.Fields(text))
}

func TestFitTokens(t *testing.T) {
	t.Parallel()

	t.Run("content within budget is unchanged", func(t *testing.T) {
		t.Parallel()

		got, truncated := scrape.FitTokens("one two three", 3, wordCount)

		assert.False(t, truncated)
		assert.Equal(t, "one two three", got)
	})

	t.Run("content over budget is cut and marked", func(t *testing.T) {
		t.Parallel()

		content := strings.Repeat("word ", 100)
		got, truncated := scrape.FitTokens(content, 10, wordCount)

		assert.True(t, truncated)
		assert.True(t, strings.HasSuffix(got, scrape.TruncationMarker))
		body := strings.TrimSuffix(got, scrape.TruncationMarker)
		assert.LessOrEqual(t, wordCount(body), 10)
		assert.Positive(t, wordCount(body))
	})

	t.Run("cuts on rune boundaries", func(t *testing.T) {
		t.Parallel()

		content := strings.Repeat("żółć ", 50)
		got, truncated := scrape.FitTokens(content, 5, wordCount)

		assert.True(t, truncated)
		assert.True(t, utf8.ValidString(got))
	})

	t.Run("non-positive budget disables truncation", func(t *testing.T) {
		t.Parallel()

		content := strings.Repeat("word ", 100)
		got, truncated := scrape.FitTokens(content, 0, wordCount)

		assert.False(t, truncated)
		assert.Equal(t, content, got)
	})
}

func TestEstimateTokens(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, scrape.EstimateTokens(""))
	assert.Equal(t, 1, scrape.EstimateTokens("abc"))
	assert.Equal(t, 2, scrape.EstimateTokens("abcdefgh"))
}
