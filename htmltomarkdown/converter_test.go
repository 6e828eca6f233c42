package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/smartscrape"
	"github.com/fwojciec/smartscrape/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements smartscrape.Converter at compile time.
var _ smartscrape.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts headings", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<h1>Title</h1><h2>Subtitle</h2>`)

		require.NoError(t, err)
		assert.Contains(t, md, "# Title")
		assert.Contains(t, md, "## Subtitle")
	})

	t.Run("keeps absolute links", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<p>See <a href="https://shop.example.com/p/lamp">Desk Lamp</a>.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "[Desk Lamp](https://shop.example.com/p/lamp)")
	})

	t.Run("converts lists", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<ul><li>First</li><li>Second</li></ul>`)

		require.NoError(t, err)
		assert.Contains(t, md, "- First")
		assert.Contains(t, md, "- Second")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		html := `<table>
<thead><tr><th>Product</th><th>Price</th></tr></thead>
<tbody><tr><td>Lamp</td><td>49</td></tr></tbody>
</table>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "| Product | Price |")
		assert.Contains(t, md, "| Lamp")
	})

	t.Run("converts strikethrough", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<p>Was <del>99</del> now 49</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "~~99~~")
	})

	t.Run("collapses blank lines", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<p>one</p><br><br><br><br><p>two</p>`)

		require.NoError(t, err)
		assert.NotContains(t, md, "\n\n\n")
		assert.Contains(t, md, "one")
		assert.Contains(t, md, "two")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := htmltomarkdown.NewConverter().Convert("  \n ")

		require.Error(t, err)
		assert.Equal(t, smartscrape.EINVALID, smartscrape.ErrorCode(err))
	})
}
