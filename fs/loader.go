// Package fs provides file-based markup loading and text output.
package fs

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/fwojciec/textract"
)

// StdinPath is the source name that reads markup from standard input.
const StdinPath = "-"

// Ensure Loader implements textract.Loader at compile time.
var _ textract.Loader = (*Loader)(nil)

// Loader reads markup from files, or from Stdin for StdinPath.
type Loader struct {
	Stdin io.Reader
}

// NewLoader creates a new Loader reading StdinPath from os.Stdin.
func NewLoader() *Loader {
	return &Loader{Stdin: os.Stdin}
}

// Load returns the markup stored at path.
// Content that is not valid UTF-8 is rejected with EINVALID before any
// parsing happens.
func (l *Loader) Load(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var data []byte
	var err error
	if path == StdinPath {
		data, err = io.ReadAll(l.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if errors.Is(err, fs.ErrNotExist) {
		return "", textract.Errorf(textract.ENOTFOUND, "file %q not found", path)
	} else if err != nil {
		return "", err
	}

	if !utf8.Valid(data) {
		return "", textract.Errorf(textract.EINVALID, "%s is not valid UTF-8", path)
	}
	return string(data), nil
}
