// Package slog provides logging decorators for firmlist interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/firmlist"
)

// Ensure LoggingListingReader implements firmlist.ListingReader.
var _ firmlist.ListingReader = (*LoggingListingReader)(nil)

// LoggingListingReader wraps a ListingReader with debug logging.
type LoggingListingReader struct {
	next   firmlist.ListingReader
	logger *slog.Logger
}

// NewLoggingListingReader creates a new LoggingListingReader.
func NewLoggingListingReader(next firmlist.ListingReader, logger *slog.Logger) *LoggingListingReader {
	return &LoggingListingReader{next: next, logger: logger}
}

// ReadListing delegates to the wrapped reader and logs the operation.
func (r *LoggingListingReader) ReadListing(ctx context.Context, path string) (html string, err error) {
	defer func(begin time.Time) {
		r.logger.Info("read listing",
			"path", path,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.ReadListing(ctx, path)
}
