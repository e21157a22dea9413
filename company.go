package firmlist

import "context"

// Columns lists the CSV columns in output order. Rows are always written in
// this order regardless of which fields a Company carries.
var Columns = []string{
	"inn",
	"name",
	"region",
	"okved_main",
	"reg_date",
	"revenue",
	"revenue_year",
	"source",
}

// Company represents one listing item extracted from a search result page.
//
// INN, Name, Region and OKVEDMain are nil when the page has no matching
// element. RegDate and Revenue are empty strings in that case. Source and
// RevenueYear are constants supplied by the extractor configuration.
type Company struct {
	INN         *string `json:"inn,omitempty"`
	Name        *string `json:"name,omitempty"`
	Region      *string `json:"region,omitempty"`
	OKVEDMain   *string `json:"okvedMain,omitempty"`
	RegDate     string  `json:"regDate"`
	Revenue     string  `json:"revenue"`
	RevenueYear string  `json:"revenueYear"`
	Source      string  `json:"source"`
}

// Row returns the company's cells in Columns order.
// Absent optional fields become empty cells.
func (c *Company) Row() []string {
	return []string{
		deref(c.INN),
		deref(c.Name),
		deref(c.Region),
		deref(c.OKVEDMain),
		c.RegDate,
		c.Revenue,
		c.RevenueYear,
		c.Source,
	}
}

// Validate returns an error if the company contains invalid fields.
func (c *Company) Validate() error {
	if c.Source == "" {
		return Errorf(EINVALID, "company source required")
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// CompanyWriter persists a batch of extracted companies.
type CompanyWriter interface {
	// WriteCompanies writes all companies in order.
	// An empty batch performs no I/O.
	WriteCompanies(ctx context.Context, companies []*Company) error
}

// CompanyService represents a queryable store of extracted companies.
type CompanyService interface {
	CompanyWriter

	// FindCompanies retrieves companies matching the filter in the order
	// they were written.
	FindCompanies(ctx context.Context, filter CompanyFilter) ([]*Company, error)
}

// CompanyFilter represents a filter for FindCompanies.
type CompanyFilter struct {
	INN    *string `json:"inn"`
	Region *string `json:"region"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
