package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/firmlist"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ firmlist.CompanyService = (*CompanyService)(nil)

// CompanyService implements firmlist.CompanyService using SQLite.
// Every WriteCompanies call stores one snapshot.
type CompanyService struct {
	db *DB
}

// NewCompanyService creates a new CompanyService.
func NewCompanyService(db *DB) *CompanyService {
	return &CompanyService{db: db}
}

// WriteCompanies stores all companies as a new snapshot in one transaction.
func (s *CompanyService) WriteCompanies(ctx context.Context, companies []*firmlist.Company) error {
	if len(companies) == 0 {
		return nil
	}
	for _, c := range companies {
		if err := c.Validate(); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO companies (id, snapshot_id, position, inn, name, region, okved_main,
			reg_date, revenue, revenue_year, source, row_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	snapshotID := uuid.New().String()
	createdAt := time.Now().UTC().Format(time.RFC3339)

	for i, c := range companies {
		if _, err := stmt.ExecContext(ctx,
			uuid.New().String(), snapshotID, i,
			nullString(c.INN), nullString(c.Name), nullString(c.Region), nullString(c.OKVEDMain),
			c.RegDate, c.Revenue, c.RevenueYear, c.Source,
			hashRow(c), createdAt,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindCompanies retrieves companies matching the filter, oldest snapshot
// first and in batch order within a snapshot.
func (s *CompanyService) FindCompanies(ctx context.Context, filter firmlist.CompanyFilter) ([]*firmlist.Company, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT inn, name, region, okved_main, reg_date, revenue, revenue_year, source
		FROM companies WHERE 1=1`)

	if filter.INN != nil {
		query.WriteString(" AND inn = ?")
		args = append(args, *filter.INN)
	}
	if filter.Region != nil {
		query.WriteString(" AND region = ?")
		args = append(args, *filter.Region)
	}

	query.WriteString(" ORDER BY rowid ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []*firmlist.Company
	for rows.Next() {
		var c firmlist.Company
		var inn, name, region, okved sql.NullString

		if err := rows.Scan(&inn, &name, &region, &okved,
			&c.RegDate, &c.Revenue, &c.RevenueYear, &c.Source); err != nil {
			return nil, err
		}

		c.INN = stringPtr(inn)
		c.Name = stringPtr(name)
		c.Region = stringPtr(region)
		c.OKVEDMain = stringPtr(okved)
		companies = append(companies, &c)
	}

	return companies, rows.Err()
}
