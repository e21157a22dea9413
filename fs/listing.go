// Package fs provides file-based input and output for company exports.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/fwojciec/firmlist"
)

// Ensure ListingReader implements firmlist.ListingReader at compile time.
var _ firmlist.ListingReader = (*ListingReader)(nil)

// ListingReader reads saved search result pages from a directory.
type ListingReader struct {
	baseDir string
}

// NewListingReader creates a new ListingReader. Relative paths are resolved
// against baseDir; an empty baseDir means the working directory.
func NewListingReader(baseDir string) *ListingReader {
	return &ListingReader{baseDir: baseDir}
}

// ReadListing reads the whole page as UTF-8 text.
func (r *ListingReader) ReadListing(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(r.resolve(path))
	if os.IsNotExist(err) {
		return "", firmlist.Errorf(firmlist.ENOTFOUND, "file %s not found", path)
	}
	if err != nil {
		return "", err
	}

	if !utf8.Valid(data) {
		return "", firmlist.Errorf(firmlist.EINVALID, "file %s is not valid UTF-8", path)
	}

	return string(data), nil
}

func (r *ListingReader) resolve(path string) string {
	if r.baseDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(r.baseDir, path)
}
