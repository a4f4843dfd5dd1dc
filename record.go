package textract

import (
	"context"
	"time"
)

// Record is a stored extraction result.
type Record struct {
	ID          string    `json:"id"`
	Source      string    `json:"source"`
	Backend     string    `json:"backend"`
	Body        string    `json:"body"`
	Text        string    `json:"text"`
	ContentHash string    `json:"contentHash"`
	ExtractedAt time.Time `json:"extractedAt"`
}

// NewRecord returns a Record for a document extracted from source.
func NewRecord(source, backend string, doc *Document) *Record {
	return &Record{
		Source:  source,
		Backend: backend,
		Body:    doc.Body,
		Text:    doc.Text,
	}
}

// Document returns the extraction result held by the record.
func (r *Record) Document() *Document {
	return &Document{Body: r.Body, Text: r.Text}
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.Source == "" {
		return Errorf(EINVALID, "record source required")
	}
	return r.Document().Validate()
}

// RecordService represents a service for managing stored extractions.
type RecordService interface {
	// CreateRecord stores a new record. ID, ContentHash and ExtractedAt are
	// assigned by the service.
	CreateRecord(ctx context.Context, rec *Record) error

	// FindRecordByID retrieves a record by ID.
	// Returns ENOTFOUND if record does not exist.
	FindRecordByID(ctx context.Context, id string) (*Record, error)

	// FindRecords retrieves records matching the filter, newest first.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*Record, error)

	// DeleteRecord permanently removes a record.
	// Returns ENOTFOUND if record does not exist.
	DeleteRecord(ctx context.Context, id string) error
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	ID          *string `json:"id"`
	Source      *string `json:"source"`
	ContentHash *string `json:"contentHash"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
