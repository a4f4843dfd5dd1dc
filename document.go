package textract

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Document is the result of a successful extraction.
// A Document always carries non-blank Text; the absence of extractable
// content is reported as a nil *Document, never as an empty one.
type Document struct {
	// Body is the markup the document was extracted from, unmodified.
	Body string `json:"body"`

	// Text is the aggregated plain text content.
	Text string `json:"text"`
}

// NewDocument returns a Document for body and text, or nil if text is empty
// or consists only of whitespace.
func NewDocument(body, text string) *Document {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return &Document{Body: body, Text: text}
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if strings.TrimSpace(d.Text) == "" {
		return Errorf(EINVALID, "document text required")
	}
	return nil
}

// ContentHash returns the hex encoded xxHash64 of the document text.
func (d *Document) ContentHash() string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(d.Text))
}
