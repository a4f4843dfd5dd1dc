package mock

import (
	"context"

	"github.com/fwojciec/textract"
)

var _ textract.TextStore = (*TextStore)(nil)

// TextStore is a mock implementation of textract.TextStore.
type TextStore struct {
	SaveFn   func(ctx context.Context, source string, doc *textract.Document) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *TextStore) Save(ctx context.Context, source string, doc *textract.Document) error {
	return s.SaveFn(ctx, source, doc)
}

func (s *TextStore) Commit() error {
	return s.CommitFn()
}

func (s *TextStore) Abort() error {
	return s.AbortFn()
}
