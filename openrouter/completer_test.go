package openrouter_test

import (
	"context"
	"testing"

	"github.com/fwojciec/smartscrape"
	"github.com/fwojciec/smartscrape/openrouter"
	goopenrouter "github.com/revrost/go-openrouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleter_Complete_RequiresKey(t *testing.T) {
	t.Parallel()

	_, err := openrouter.NewCompleter().Complete(context.Background(), smartscrape.CompletionRequest{
		Model: "anthropic/claude-3.5-sonnet",
		User:  "hi",
	})

	require.Error(t, err)
	assert.Equal(t, smartscrape.EINVALID, smartscrape.ErrorCode(err))
}

func TestBuildRequest(t *testing.T) {
	t.Parallel()

	t.Run("system and user messages in order", func(t *testing.T) {
		t.Parallel()

		req := openrouter.BuildRequest(smartscrape.CompletionRequest{
			Model:  "anthropic/claude-3.5-sonnet",
			System: "sys",
			User:   "usr",
		})

		assert.Equal(t, "anthropic/claude-3.5-sonnet", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, goopenrouter.ChatMessageRoleSystem, req.Messages[0].Role)
		assert.Equal(t, "sys", req.Messages[0].Content.Text)
		assert.Equal(t, goopenrouter.ChatMessageRoleUser, req.Messages[1].Role)
		assert.Equal(t, "usr", req.Messages[1].Content.Text)
		assert.Nil(t, req.ResponseFormat)
	})

	t.Run("json mode requests an object", func(t *testing.T) {
		t.Parallel()

		req := openrouter.BuildRequest(smartscrape.CompletionRequest{Model: "m", User: "u", JSON: true})

		require.Len(t, req.Messages, 1)
		require.NotNil(t, req.ResponseFormat)
		assert.Equal(t, goopenrouter.ChatCompletionResponseFormatTypeJSONObject, req.ResponseFormat.Type)
	})
}
