package readability_test

import (
	"testing"

	"github.com/fwojciec/smartscrape"
	"github.com/fwojciec/smartscrape/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements smartscrape.Extractor at compile time.
var _ smartscrape.Extractor = (*readability.Extractor)(nil)

func TestExtractor_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	_, err := readability.NewExtractor().Extract("")

	require.Error(t, err)
	assert.Equal(t, smartscrape.EINVALID, smartscrape.ErrorCode(err))
}

func TestExtractor_ExtractsTitleAndContent(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Opening Hours</title></head>
<body>
<nav><a href="/">Home</a></nav>
<article>
<h1>Opening Hours</h1>
<p>The library is open from nine in the morning until six in the evening on weekdays.</p>
<p>On Saturdays the reading room closes at one in the afternoon, and it stays closed on Sundays.</p>
</article>
</body>
</html>`

	result, err := readability.NewExtractor().Extract(html)

	require.NoError(t, err)
	assert.Equal(t, "Opening Hours", result.Title)
	assert.Contains(t, result.ContentHTML, "reading room closes")
}

func TestExtractor_ReportsMissingContent(t *testing.T) {
	t.Parallel()

	_, err := readability.NewExtractor().Extract(`<html><head><title>x</title></head><body></body></html>`)

	require.Error(t, err)
}
