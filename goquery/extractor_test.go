package goquery_test

import (
	"sync"
	"testing"

	"github.com/fwojciec/textract"
	"github.com/fwojciec/textract/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements textract.Extractor at compile time.
var _ textract.Extractor = (*goquery.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("joins paragraph text with single spaces", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p>Hello</p><p>world!</p></body></html>`

		doc, err := goquery.NewExtractor().Extract(html, textract.DefaultConfig())

		require.NoError(t, err)
		require.NotNil(t, doc)
		assert.Equal(t, "Hello world!", doc.Text)
	})

	t.Run("returns nil for whitespace-only body", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>   </body></html>`

		doc, err := goquery.NewExtractor().Extract(html, textract.DefaultConfig())

		require.NoError(t, err)
		assert.Nil(t, doc)
	})

	t.Run("returns nil for empty body", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewExtractor().Extract(`<html><body></body></html>`, textract.DefaultConfig())

		require.NoError(t, err)
		assert.Nil(t, doc)
	})

	t.Run("returns nil for empty markup", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewExtractor().Extract("", textract.DefaultConfig())

		require.NoError(t, err)
		assert.Nil(t, doc)
	})

	t.Run("returns nil when parsing produces no body", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Frames</title></head><frameset><frame src="a.html"></frameset></html>`

		doc, err := goquery.NewExtractor().Extract(html, textract.DefaultConfig())

		require.NoError(t, err)
		assert.Nil(t, doc)
	})

	t.Run("preserves the original markup byte for byte", func(t *testing.T) {
		t.Parallel()

		html := "<!DOCTYPE html>\n<html>\n<body>\n  <p>Keep   me</p>\n</body>\n</html>\n"

		doc, err := goquery.NewExtractor().Extract(html, textract.ExtractionConfig{
			OutputFormat:      "markdown",
			IncludeFormatting: true,
			IncludeLinks:      true,
			IncludeImages:     true,
			IncludeTables:     true,
		})

		require.NoError(t, err)
		require.NotNil(t, doc)
		assert.Equal(t, html, doc.Body)
	})

	t.Run("does not trim the joined text", func(t *testing.T) {
		t.Parallel()

		html := "<body>\n<p>Hello</p>\n</body>"

		doc, err := goquery.NewExtractor().Extract(html, textract.DefaultConfig())

		require.NoError(t, err)
		require.NotNil(t, doc)
		assert.Equal(t, "\n Hello \n", doc.Text)
	})

	t.Run("tolerates missing closing tags", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewExtractor().Extract(`<body><p>Hello`, textract.DefaultConfig())

		require.NoError(t, err)
		require.NotNil(t, doc)
		assert.Contains(t, doc.Text, "Hello")
	})

	t.Run("wraps bare text in an implicit body", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewExtractor().Extract(`just some text`, textract.DefaultConfig())

		require.NoError(t, err)
		require.NotNil(t, doc)
		assert.Equal(t, "just some text", doc.Text)
	})

	t.Run("preserves document order of nested fragments", func(t *testing.T) {
		t.Parallel()

		html := `<body><div>A<span>B</span>C</div></body>`

		doc, err := goquery.NewExtractor().Extract(html, textract.DefaultConfig())

		require.NoError(t, err)
		require.NotNil(t, doc)
		assert.Equal(t, "A B C", doc.Text)
	})

	t.Run("skips comments", func(t *testing.T) {
		t.Parallel()

		html := `<body><!-- hidden --><p>Shown</p></body>`

		doc, err := goquery.NewExtractor().Extract(html, textract.DefaultConfig())

		require.NoError(t, err)
		require.NotNil(t, doc)
		assert.Equal(t, "Shown", doc.Text)
	})

	t.Run("decodes character references", func(t *testing.T) {
		t.Parallel()

		html := `<body><p>Fish &amp; Chips</p></body>`

		doc, err := goquery.NewExtractor().Extract(html, textract.DefaultConfig())

		require.NoError(t, err)
		require.NotNil(t, doc)
		assert.Equal(t, "Fish & Chips", doc.Text)
	})

	t.Run("ignores text outside the body", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Title text</title></head><body><p>Body text</p></body></html>`

		doc, err := goquery.NewExtractor().Extract(html, textract.DefaultConfig())

		require.NoError(t, err)
		require.NotNil(t, doc)
		assert.Equal(t, "Body text", doc.Text)
	})
}

func TestExtractor_FlagsAreInert(t *testing.T) {
	t.Parallel()

	html := `<html><body><h1>Title</h1><p>Plain <em>paragraph</em> text.</p></body></html>`

	base, err := goquery.NewExtractor().Extract(html, textract.DefaultConfig())
	require.NoError(t, err)
	require.NotNil(t, base)

	configs := []textract.ExtractionConfig{
		{IncludeTables: true},
		{IncludeImages: true},
		{IncludeFormatting: true},
		{IncludeLinks: true},
		{OutputFormat: textract.FormatMarkdown},
		{OutputFormat: "anything", IncludeTables: true, IncludeImages: true, IncludeFormatting: true, IncludeLinks: true},
	}
	for _, cfg := range configs {
		doc, err := goquery.NewExtractor().Extract(html, cfg)

		require.NoError(t, err)
		require.NotNil(t, doc)
		assert.Equal(t, base.Text, doc.Text, "config %+v", cfg)
	}
}

func TestExtractor_WithSelector(t *testing.T) {
	t.Parallel()

	t.Run("concatenates selected elements without separator", func(t *testing.T) {
		t.Parallel()

		html := `<body><p>one</p><div>skip</div><p>two</p></body>`

		doc, err := goquery.NewExtractor(goquery.WithSelector("p")).Extract(html, textract.DefaultConfig())

		require.NoError(t, err)
		require.NotNil(t, doc)
		assert.Equal(t, "onetwo", doc.Text)
	})

	t.Run("returns nil when nothing matches", func(t *testing.T) {
		t.Parallel()

		html := `<body><p>text</p></body>`

		doc, err := goquery.NewExtractor(goquery.WithSelector("article")).Extract(html, textract.DefaultConfig())

		require.NoError(t, err)
		assert.Nil(t, doc)
	})

	t.Run("reports an invalid selector as an internal error", func(t *testing.T) {
		t.Parallel()

		html := `<body><p>text</p></body>`

		doc, err := goquery.NewExtractor(goquery.WithSelector("body[")).Extract(html, textract.DefaultConfig())

		require.Error(t, err)
		assert.Nil(t, doc)
		assert.Equal(t, textract.EINTERNAL, textract.ErrorCode(err))
	})
}

func TestExtractor_ConcurrentUse(t *testing.T) {
	t.Parallel()

	ext := goquery.NewExtractor()
	inputs := []string{
		`<body><p>alpha</p></body>`,
		`<body><p>beta</p></body>`,
		`<body><p>gamma</p></body>`,
		`<body><p>delta</p></body>`,
	}
	want := []string{"alpha", "beta", "gamma", "delta"}

	got := make([]string, len(inputs))
	var wg sync.WaitGroup
	for i, html := range inputs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			doc, err := ext.Extract(html, textract.DefaultConfig())
			if err == nil && doc != nil {
				got[i] = doc.Text
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, want, got)
}

func TestExtract(t *testing.T) {
	t.Parallel()

	t.Run("extracts with individual option arguments", func(t *testing.T) {
		t.Parallel()

		html := "<html><body><p>Hello</p><p>world!</p></body></html>"

		doc, err := goquery.Extract(html, "txt", true, false, false, false)

		require.NoError(t, err)
		require.NotNil(t, doc)
		assert.Equal(t, "Hello world!", doc.Text)
		assert.Equal(t, html, doc.Body)
	})

	t.Run("returns nil without content", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.Extract("<html><body> \n </body></html>", "txt", false, false, false, false)

		require.NoError(t, err)
		assert.Nil(t, doc)
	})
}
