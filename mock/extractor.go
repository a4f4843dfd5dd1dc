package mock

import "github.com/fwojciec/textract"

var _ textract.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of textract.Extractor.
type Extractor struct {
	ExtractFn func(markup string, cfg textract.ExtractionConfig) (*textract.Document, error)
}

func (e *Extractor) Extract(markup string, cfg textract.ExtractionConfig) (*textract.Document, error) {
	return e.ExtractFn(markup, cfg)
}
