package goquery_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/querysum"
	"github.com/fwojciec/querysum/goquery"
	"github.com/fwojciec/querysum/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutliner_Outline(t *testing.T) {
	t.Parallel()

	t.Run("extracts title and drops whitespace-only paragraphs", func(t *testing.T) {
		t.Parallel()

		html := `<title>Demo</title><body><h1>Hi</h1><p> </p><p>World</p></body>`

		structure, err := goquery.NewOutliner().Outline(html)

		require.NoError(t, err)
		assert.Equal(t, "TITLE: Demo", structure.Title)
		assert.Equal(t, querysum.Outline{
			{Tag: querysum.TagH1, Text: "Hi"},
			{Tag: querysum.TagP, Text: "World"},
		}, structure.Outline)
	})

	t.Run("preserves document order across nesting", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>  Guide  </title></head>
<body>
<nav><a href="/">Home</a></nav>
<div class="content">
	<h2>Install</h2>
	<div><p>Run the installer.</p></div>
	<ul><li>Not kept</li></ul>
	<h3>Options</h3>
</div>
<footer><p>Footer text</p></footer>
</body>
</html>`

		structure, err := goquery.NewOutliner().Outline(html)

		require.NoError(t, err)
		assert.Equal(t, "TITLE: Guide", structure.Title)
		assert.Equal(t, querysum.Outline{
			{Tag: querysum.TagH2, Text: "Install"},
			{Tag: querysum.TagP, Text: "Run the installer."},
			{Tag: querysum.TagH3, Text: "Options"},
			{Tag: querysum.TagP, Text: "Footer text"},
		}, structure.Outline)
	})

	t.Run("includes descendant text of matched elements", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>T</title></head><body><p>See <a href="/x">the docs</a> now</p></body></html>`

		structure, err := goquery.NewOutliner().Outline(html)

		require.NoError(t, err)
		assert.Equal(t, querysum.Outline{{Tag: querysum.TagP, Text: "See the docs now"}}, structure.Outline)
	})

	t.Run("ignores text outside the body", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>T</title></head><body><h4>Only</h4></body></html>`

		structure, err := goquery.NewOutliner().Outline(html)

		require.NoError(t, err)
		assert.Equal(t, querysum.Outline{{Tag: querysum.TagH4, Text: "Only"}}, structure.Outline)
	})

	t.Run("returns empty outline for body without matching elements", func(t *testing.T) {
		t.Parallel()

		structure, err := goquery.NewOutliner().Outline(`<title>T</title><body><div>text</div></body>`)

		require.NoError(t, err)
		assert.Empty(t, structure.Outline)
	})

	t.Run("returns EINVALID when the title is missing", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewOutliner().Outline(`<html><body><h1>No title</h1></body></html>`)

		require.Error(t, err)
		assert.Equal(t, querysum.EINVALID, querysum.ErrorCode(err))
		assert.Equal(t, "document title missing", querysum.ErrorMessage(err))
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		html := `<title>Demo</title><body><h1>Hi</h1><p>World</p></body>`
		outliner := goquery.NewOutliner()

		first, err := outliner.Outline(html)
		require.NoError(t, err)
		second, err := outliner.Outline(html)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}

func TestOutliner_WithExtractor(t *testing.T) {
	t.Parallel()

	page := `<html><head><title>Page</title></head>
<body><nav><p>Menu</p></nav><article><h1>Main</h1><p>Body text</p></article></body></html>`

	t.Run("outlines extracted content only", func(t *testing.T) {
		t.Parallel()

		extractor := &mock.Extractor{
			ExtractFn: func(html string) (*querysum.ExtractResult, error) {
				return &querysum.ExtractResult{
					ContentHTML: `<div><h1>Main</h1><p>Body text</p></div>`,
				}, nil
			},
		}

		structure, err := goquery.NewOutliner(goquery.WithExtractor(extractor)).Outline(page)

		require.NoError(t, err)
		assert.Equal(t, "TITLE: Page", structure.Title)
		assert.Equal(t, querysum.Outline{
			{Tag: querysum.TagH1, Text: "Main"},
			{Tag: querysum.TagP, Text: "Body text"},
		}, structure.Outline)
	})

	t.Run("falls back to the whole body when extraction fails", func(t *testing.T) {
		t.Parallel()

		extractor := &mock.Extractor{
			ExtractFn: func(html string) (*querysum.ExtractResult, error) {
				return nil, errors.New("not enough content")
			},
		}

		structure, err := goquery.NewOutliner(goquery.WithExtractor(extractor)).Outline(page)

		require.NoError(t, err)
		assert.Equal(t, querysum.Outline{
			{Tag: querysum.TagP, Text: "Menu"},
			{Tag: querysum.TagH1, Text: "Main"},
			{Tag: querysum.TagP, Text: "Body text"},
		}, structure.Outline)
	})

	t.Run("falls back to the whole body when content is empty", func(t *testing.T) {
		t.Parallel()

		extractor := &mock.Extractor{
			ExtractFn: func(html string) (*querysum.ExtractResult, error) {
				return &querysum.ExtractResult{ContentHTML: "  "}, nil
			},
		}

		structure, err := goquery.NewOutliner(goquery.WithExtractor(extractor)).Outline(page)

		require.NoError(t, err)
		assert.Len(t, structure.Outline, 3)
	})

	t.Run("still requires a title", func(t *testing.T) {
		t.Parallel()

		extractor := &mock.Extractor{
			ExtractFn: func(html string) (*querysum.ExtractResult, error) {
				return &querysum.ExtractResult{ContentHTML: "<p>x</p>"}, nil
			},
		}

		_, err := goquery.NewOutliner(goquery.WithExtractor(extractor)).Outline(`<body><p>x</p></body>`)

		assert.Equal(t, querysum.EINVALID, querysum.ErrorCode(err))
	})
}
