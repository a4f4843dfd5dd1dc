package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/textract"
	"golang.org/x/net/html"
)

// DefaultSelector selects the primary content container.
const DefaultSelector = "body"

// Ensure Extractor implements textract.Extractor at compile time.
var _ textract.Extractor = (*Extractor)(nil)

// Extractor collects the text of every element matching a CSS selector.
// Extractor is safe for concurrent use by multiple goroutines.
type Extractor struct {
	selector string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithSelector sets the container query.
// Defaults to DefaultSelector if not specified.
func WithSelector(selector string) Option {
	return func(e *Extractor) {
		e.selector = selector
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		selector: DefaultSelector,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses markup and joins the text of the selected containers.
//
// The text nodes below each container are joined with a single space in
// document order, and the per-container strings are concatenated in
// selection order. The result is not trimmed. When the joined text is blank,
// Extract returns a nil Document. The formatting, link, image and table
// toggles of cfg are accepted but do not change the result.
func (e *Extractor) Extract(markup string, cfg textract.ExtractionConfig) (*textract.Document, error) {
	sel, err := cascadia.Compile(e.selector)
	if err != nil {
		return nil, textract.Errorf(textract.EINTERNAL, "invalid container selector %q: %v", e.selector, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, textract.Errorf(textract.EINTERNAL, "failed to parse HTML: %v", err)
	}

	var b strings.Builder
	doc.FindMatcher(sel).Each(func(_ int, s *goquery.Selection) {
		for _, n := range s.Nodes {
			b.WriteString(strings.Join(textNodes(n), " "))
		}
	})

	return textract.NewDocument(markup, b.String()), nil
}

// Extract is a convenience wrapper around the default Extractor taking the
// extraction options as individual arguments.
func Extract(markup, outputFormat string, includeTables, includeImages, includeFormatting, includeLinks bool) (*textract.Document, error) {
	return NewExtractor().Extract(markup, textract.ExtractionConfig{
		OutputFormat:      textract.OutputFormat(outputFormat),
		IncludeFormatting: includeFormatting,
		IncludeLinks:      includeLinks,
		IncludeImages:     includeImages,
		IncludeTables:     includeTables,
	})
}

// textNodes returns the data of every text node below n in document order.
func textNodes(n *html.Node) []string {
	var texts []string
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		if cur.Type == html.TextNode {
			texts = append(texts, cur.Data)
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return texts
}
