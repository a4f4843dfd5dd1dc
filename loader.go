package textract

import "context"

// Loader reads markup from a local source such as a file path.
type Loader interface {
	// Load returns the markup stored at path.
	// Implementations reject content that is not valid UTF-8 with EINVALID.
	Load(ctx context.Context, path string) (string, error)
}
