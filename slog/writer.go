package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/firmlist"
)

// Ensure LoggingCompanyWriter implements firmlist.CompanyWriter.
var _ firmlist.CompanyWriter = (*LoggingCompanyWriter)(nil)

// LoggingCompanyWriter wraps a CompanyWriter with debug logging.
type LoggingCompanyWriter struct {
	next   firmlist.CompanyWriter
	name   string
	logger *slog.Logger
}

// NewLoggingCompanyWriter creates a new LoggingCompanyWriter. The name
// identifies the destination in log records.
func NewLoggingCompanyWriter(next firmlist.CompanyWriter, name string, logger *slog.Logger) *LoggingCompanyWriter {
	return &LoggingCompanyWriter{next: next, name: name, logger: logger}
}

func (w *LoggingCompanyWriter) WriteCompanies(ctx context.Context, companies []*firmlist.Company) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write companies",
			"writer", w.name,
			"count", len(companies),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteCompanies(ctx, companies)
}
