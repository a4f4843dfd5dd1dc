package fs

import (
	"context"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/fwojciec/textract"
)

// TextPath converts a source to a relative output path. Dot segments in URL
// paths are resolved first, so the result never leaves the host directory.
// Examples:
//
//	https://example.com/docs/api → example.com/docs/api.txt
//	https://example.com/        → example.com/index.txt
//	pages/about.html            → about.txt
//	-                           → stdin.txt
func TextPath(source string) (string, error) {
	if source == StdinPath {
		return "stdin.txt", nil
	}

	if u, err := url.Parse(source); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		if u.Host == "" || !filepath.IsLocal(u.Host) {
			return "", textract.Errorf(textract.EINVALID, "cannot derive output name from %q", source)
		}
		name := strings.TrimPrefix(path.Clean("/"+u.Path), "/")
		switch {
		case name == "":
			name = "index"
		case strings.HasSuffix(u.Path, "/"):
			name += "/index"
		default:
			name = trimHTMLExt(name)
		}
		return filepath.Join(u.Host, filepath.FromSlash(name)) + ".txt", nil
	}

	base := filepath.Base(source)
	if base == "." || base == string(filepath.Separator) {
		return "", textract.Errorf(textract.EINVALID, "cannot derive output name from %q", source)
	}
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".txt", nil
}

func trimHTMLExt(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".xhtml":
		return strings.TrimSuffix(path, filepath.Ext(path))
	}
	return path
}

// Ensure FileStore implements textract.TextStore at compile time.
var _ textract.TextStore = (*FileStore)(nil)

// FileStore implements textract.TextStore. Texts are saved to a temporary
// directory and merged into the output directory on Commit. Files already in
// the output directory are kept unless a saved text has the same path.
type FileStore struct {
	dir string
}

// NewFileStore creates a new FileStore.
// Files are saved to dir.tmp and moved into dir on Commit.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: filepath.Clean(dir)}
}

func (s *FileStore) tempDir() string {
	return s.dir + ".tmp"
}

// Save writes the document text to the temporary directory.
func (s *FileStore) Save(ctx context.Context, source string, doc *textract.Document) error {
	relPath, err := TextPath(source)
	if err != nil {
		return err
	}
	if !filepath.IsLocal(relPath) {
		return textract.Errorf(textract.EINVALID, "output path %q escapes %s", relPath, s.dir)
	}

	fullPath := filepath.Join(s.tempDir(), relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(doc.Text), 0644)
}

// Commit moves every saved text into the output directory, replacing files
// with the same path, and removes the temporary directory.
func (s *FileStore) Commit() error {
	tmp := s.tempDir()
	if _, err := os.Stat(tmp); os.IsNotExist(err) {
		return nil
	}
	err := filepath.WalkDir(tmp, func(p string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(tmp, p)
		if err != nil {
			return err
		}
		dst := filepath.Join(s.dir, rel)
		if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			return err
		}
		return os.Rename(p, dst)
	})
	if err != nil {
		return err
	}
	return os.RemoveAll(tmp)
}

// Abort discards everything saved since the last Commit.
func (s *FileStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
