package mock

import (
	"context"

	"github.com/fwojciec/firmlist"
)

var _ firmlist.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of firmlist.Extractor.
type Extractor struct {
	ExtractFn func(html string) ([]*firmlist.Company, error)
}

func (e *Extractor) Extract(html string) ([]*firmlist.Company, error) {
	return e.ExtractFn(html)
}

var _ firmlist.ListingReader = (*ListingReader)(nil)

// ListingReader is a mock implementation of firmlist.ListingReader.
type ListingReader struct {
	ReadListingFn func(ctx context.Context, path string) (string, error)
}

func (r *ListingReader) ReadListing(ctx context.Context, path string) (string, error) {
	return r.ReadListingFn(ctx, path)
}
