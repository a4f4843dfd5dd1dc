package textract

// Extractor extracts plain text from HTML markup.
type Extractor interface {
	// Extract parses markup and returns the text of its primary content
	// container. It returns a nil Document and a nil error when the markup
	// holds no extractable text. Malformed markup is never an error; a
	// non-nil error signals an internal failure of the extractor itself.
	Extract(markup string, cfg ExtractionConfig) (*Document, error)
}
