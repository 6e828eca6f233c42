package smartscrape_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/smartscrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInputs() smartscrape.Inputs {
	return smartscrape.Inputs{
		APIKey:    "sk-test",
		Model:     smartscrape.ModelGPT4oMini,
		Verbose:   true,
		Headless:  false,
		Prompt:    "extract titles",
		SourceURL: "https://example.com",
	}
}

func TestDefaultInputs(t *testing.T) {
	t.Parallel()

	in := smartscrape.DefaultInputs()

	assert.Equal(t, smartscrape.DefaultModel, in.Model)
	assert.True(t, in.Verbose)
	assert.False(t, in.Headless)
	assert.Empty(t, in.APIKey)
}

func TestInputs_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*smartscrape.Inputs)
		field   smartscrape.Field
		message string
	}{
		{
			name:    "credential checked first",
			mutate:  func(in *smartscrape.Inputs) { *in = smartscrape.Inputs{Model: smartscrape.DefaultModel} },
			field:   smartscrape.FieldCredential,
			message: "Please enter your API key.",
		},
		{
			name:    "prompt checked before URL",
			mutate:  func(in *smartscrape.Inputs) { in.Prompt = ""; in.SourceURL = "" },
			field:   smartscrape.FieldPrompt,
			message: "Please provide the information you want to extract.",
		},
		{
			name:    "URL checked last",
			mutate:  func(in *smartscrape.Inputs) { in.SourceURL = "" },
			field:   smartscrape.FieldSourceURL,
			message: "Please provide the source URL.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in := validInputs()
			tt.mutate(&in)

			assert.Equal(t, tt.field, in.MissingField())
			err := in.Validate()
			require.Error(t, err)
			assert.Equal(t, smartscrape.EINVALID, smartscrape.ErrorCode(err))
			assert.Equal(t, tt.message, smartscrape.ErrorMessage(err))
		})
	}

	t.Run("rejects unsupported model", func(t *testing.T) {
		t.Parallel()

		in := validInputs()
		in.Model = "openai/gpt-9"

		err := in.Validate()
		require.Error(t, err)
		assert.Equal(t, smartscrape.EINVALID, smartscrape.ErrorCode(err))
	})

	t.Run("accepts complete inputs without URL format checks", func(t *testing.T) {
		t.Parallel()

		in := validInputs()
		in.SourceURL = "not a url"

		assert.Equal(t, smartscrape.FieldNone, in.MissingField())
		assert.NoError(t, in.Validate())
	})
}

func TestInputs_Config(t *testing.T) {
	t.Parallel()

	cfg := validInputs().Config()

	assert.Equal(t, smartscrape.Config{
		APIKey:   "sk-test",
		Model:    smartscrape.ModelGPT4oMini,
		Verbose:  true,
		Headless: false,
	}, cfg)
}

func TestInputs_Redacted(t *testing.T) {
	t.Parallel()

	in := validInputs()
	red := in.Redacted()

	assert.Empty(t, red.APIKey)
	assert.Equal(t, "sk-test", in.APIKey)
	assert.Equal(t, in.Prompt, red.Prompt)
}

func TestConfig_LogValue_RedactsCredential(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	logger.Info("submit", "config", validInputs().Config())

	assert.NotContains(t, buf.String(), "sk-test")
	assert.Contains(t, buf.String(), "[redacted]")
	assert.Contains(t, buf.String(), "openai/gpt-4o-mini")
}
