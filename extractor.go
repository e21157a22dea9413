package firmlist

import "context"

// Extractor extracts company records from a search result page.
type Extractor interface {
	// Extract parses raw HTML and returns one Company per listing item,
	// in document order. Malformed markup is tolerated; a page without
	// listing items yields an empty slice.
	Extract(html string) ([]*Company, error)
}

// ListingReader loads saved search result pages.
type ListingReader interface {
	// ReadListing returns the page content as text.
	// Returns ENOTFOUND if the page does not exist and EINVALID if it is
	// not valid UTF-8.
	ReadListing(ctx context.Context, path string) (string, error)
}
