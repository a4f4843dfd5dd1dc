package readability

import (
	"fmt"
	"strings"

	"github.com/fwojciec/textract"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements textract.Extractor at compile time.
var _ textract.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract the article text of a page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the article text.
// go-readability has no table, image or link switches, so cfg is unused.
func (e *Extractor) Extract(markup string, cfg textract.ExtractionConfig) (*textract.Document, error) {
	if strings.TrimSpace(markup) == "" {
		return nil, nil
	}

	article, err := readability.FromReader(strings.NewReader(markup), nil)
	if err != nil {
		return nil, fmt.Errorf("readability: %w", err)
	}

	return textract.NewDocument(markup, article.TextContent), nil
}
