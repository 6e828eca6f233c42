package smartscrape_test

import (
	"testing"

	"github.com/fwojciec/smartscrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatResult(t *testing.T) {
	t.Parallel()

	t.Run("indents nested values", func(t *testing.T) {
		t.Parallel()

		out, err := smartscrape.FormatResult(map[string]any{"titles": []any{"A", "B"}})

		require.NoError(t, err)
		assert.Equal(t, "{\n  \"titles\": [\n    \"A\",\n    \"B\"\n  ]\n}", out)
	})

	t.Run("does not escape HTML characters", func(t *testing.T) {
		t.Parallel()

		out, err := smartscrape.FormatResult(map[string]any{"q": "a < b & c"})

		require.NoError(t, err)
		assert.Contains(t, out, "a < b & c")
	})

	t.Run("renders null for nil", func(t *testing.T) {
		t.Parallel()

		out, err := smartscrape.FormatResult(nil)

		require.NoError(t, err)
		assert.Equal(t, "null", out)
	})

	t.Run("returns error for unencodable value", func(t *testing.T) {
		t.Parallel()

		_, err := smartscrape.FormatResult(map[string]any{"ch": make(chan int)})

		require.Error(t, err)
	})
}
