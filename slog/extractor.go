package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/firmlist"
)

// Ensure LoggingExtractor implements firmlist.Extractor.
var _ firmlist.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   firmlist.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next firmlist.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the number of
// companies found.
func (e *LoggingExtractor) Extract(html string) (companies []*firmlist.Company, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract",
			"bytes", len(html),
			"count", len(companies),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
