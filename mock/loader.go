package mock

import (
	"context"

	"github.com/fwojciec/textract"
)

var _ textract.Loader = (*Loader)(nil)

// Loader is a mock implementation of textract.Loader.
type Loader struct {
	LoadFn func(ctx context.Context, path string) (string, error)
}

func (l *Loader) Load(ctx context.Context, path string) (string, error) {
	return l.LoadFn(ctx, path)
}
