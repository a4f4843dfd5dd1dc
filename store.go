package textract

import "context"

// TextStore persists extracted text with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type TextStore interface {
	Save(ctx context.Context, source string, doc *Document) error
	Commit() error
	Abort() error
}
