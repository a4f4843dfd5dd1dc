package trafilatura

import (
	"strings"

	"github.com/fwojciec/textract"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements textract.Extractor at compile time.
var _ textract.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract the main content of a page,
// dropping navigation, footers and other boilerplate before collecting text.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the text of the main content.
// The table, image and link toggles of cfg are passed to go-trafilatura.
// go-trafilatura reports a page it cannot find main content in, including
// content that is too short, as an untyped error. Extract treats every such
// error as no content and returns a nil Document.
func (e *Extractor) Extract(markup string, cfg textract.ExtractionConfig) (*textract.Document, error) {
	if strings.TrimSpace(markup) == "" {
		return nil, nil
	}

	opts := trafilatura.Options{
		EnableFallback: true,
		ExcludeTables:  !cfg.IncludeTables,
		IncludeImages:  cfg.IncludeImages,
		IncludeLinks:   cfg.IncludeLinks,
	}

	result, err := trafilatura.Extract(strings.NewReader(markup), opts)
	if err != nil || result == nil {
		return nil, nil
	}

	return textract.NewDocument(markup, result.ContentText), nil
}
