package readability_test

import (
	"testing"

	"github.com/fwojciec/querysum"
	"github.com/fwojciec/querysum/goquery"
	"github.com/fwojciec/querysum/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articlePage = `<!DOCTYPE html>
<html>
<head><title>Page Title</title></head>
<body>
<nav><a href="/home">Home Nav Link</a><a href="/about">About Nav Link</a></nav>
<article>
<h1>Main Heading</h1>
<p>This is the main article content that should be preserved in the output.</p>
<h2>Subheading Level Two</h2>
<p>More content under the subheading, long enough to be kept as article text.</p>
</article>
</body>
</html>`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("drops navigation", func(t *testing.T) {
		t.Parallel()

		result, err := readability.NewExtractor().Extract(articlePage)

		require.NoError(t, err)
		assert.NotContains(t, result.ContentHTML, "Home Nav Link")
		assert.Contains(t, result.ContentHTML, "main article content")
	})

	t.Run("keeps headings", func(t *testing.T) {
		t.Parallel()

		result, err := readability.NewExtractor().Extract(articlePage)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Subheading Level Two")
		assert.Contains(t, result.ContentHTML, "<h2")
	})

	t.Run("returns EINVALID for blank input", func(t *testing.T) {
		t.Parallel()

		_, err := readability.NewExtractor().Extract("")

		require.Error(t, err)
		assert.Equal(t, querysum.EINVALID, querysum.ErrorCode(err))
	})
}

func TestExtractor_WithOutliner(t *testing.T) {
	t.Parallel()

	outliner := goquery.NewOutliner(goquery.WithExtractor(readability.NewExtractor()))

	structure, err := outliner.Outline(articlePage)

	require.NoError(t, err)
	assert.Equal(t, "TITLE: Page Title", structure.Title)
	require.NotEmpty(t, structure.Outline)
	var texts []string
	for _, el := range structure.Outline {
		texts = append(texts, el.Text)
	}
	assert.Contains(t, texts, "This is the main article content that should be preserved in the output.")
}
