package mock

import (
	"context"

	"github.com/fwojciec/firmlist"
)

var _ firmlist.CompanyWriter = (*CompanyWriter)(nil)

// CompanyWriter is a mock implementation of firmlist.CompanyWriter.
type CompanyWriter struct {
	WriteCompaniesFn func(ctx context.Context, companies []*firmlist.Company) error
}

func (w *CompanyWriter) WriteCompanies(ctx context.Context, companies []*firmlist.Company) error {
	return w.WriteCompaniesFn(ctx, companies)
}

var _ firmlist.CompanyService = (*CompanyService)(nil)

// CompanyService is a mock implementation of firmlist.CompanyService.
type CompanyService struct {
	WriteCompaniesFn func(ctx context.Context, companies []*firmlist.Company) error
	FindCompaniesFn  func(ctx context.Context, filter firmlist.CompanyFilter) ([]*firmlist.Company, error)
}

func (s *CompanyService) WriteCompanies(ctx context.Context, companies []*firmlist.Company) error {
	return s.WriteCompaniesFn(ctx, companies)
}

func (s *CompanyService) FindCompanies(ctx context.Context, filter firmlist.CompanyFilter) ([]*firmlist.Company, error) {
	return s.FindCompaniesFn(ctx, filter)
}
