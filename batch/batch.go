// Package batch runs the export: it reads every configured page, extracts
// its companies, and writes the combined list once enough were collected.
package batch

import (
	"context"
	"fmt"
	"io"

	"github.com/fwojciec/firmlist"
	"github.com/fwojciec/firmlist/bloom"
)

// duplicateFPRate is the false positive rate of the duplicate INN check.
const duplicateFPRate = 0.001

// Runner orchestrates one export run.
type Runner struct {
	Reader    firmlist.ListingReader
	Extractor firmlist.Extractor

	// Writers receive the combined batch in order. The first failure stops
	// the run.
	Writers []firmlist.CompanyWriter

	Config firmlist.Config

	// Stdout receives the per-file and summary messages. Nil discards them.
	Stdout io.Writer
}

// Result holds the outcome of a run.
type Result struct {
	// Total is the number of companies collected across all files.
	Total int

	// Files is the number of input files that were found and parsed.
	Files int

	// Missing lists input files that did not exist.
	Missing []string

	// Written is true if the batch met the threshold and was handed to
	// the writers.
	Written bool

	// PossibleDuplicates counts companies whose INN was probably seen
	// earlier in the batch. Duplicates are kept in the output.
	PossibleDuplicates int
}

// Run processes every input file in order and writes the combined batch if
// it holds at least Config.MinRecords companies. Falling short of the
// threshold is reported on Stdout and is not an error.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	if err := r.Config.Validate(); err != nil {
		return nil, err
	}

	result := &Result{}
	var all []*firmlist.Company

	for _, path := range r.Config.InputFiles {
		companies, found, err := r.extractFile(ctx, path)
		if err != nil {
			return nil, err
		}
		if !found {
			result.Missing = append(result.Missing, path)
			continue
		}

		result.Files++
		all = append(all, companies...)
	}

	result.Total = len(all)
	result.PossibleDuplicates = countPossibleDuplicates(all)

	if len(all) < r.Config.MinRecords {
		fmt.Fprintf(r.stdout(), "Not enough data collected. Total companies: %d.\n", len(all))
		return result, nil
	}

	for _, w := range r.Writers {
		if err := w.WriteCompanies(ctx, all); err != nil {
			return result, fmt.Errorf("write companies: %w", err)
		}
	}
	result.Written = len(all) > 0 && len(r.Writers) > 0

	return result, nil
}

// ExtractFile reads and parses a single page. A missing page is reported
// on Stdout and yields no companies and no error.
func (r *Runner) ExtractFile(ctx context.Context, path string) ([]*firmlist.Company, error) {
	companies, _, err := r.extractFile(ctx, path)
	return companies, err
}

func (r *Runner) extractFile(ctx context.Context, path string) ([]*firmlist.Company, bool, error) {
	html, err := r.Reader.ReadListing(ctx, path)
	if firmlist.ErrorCode(err) == firmlist.ENOTFOUND {
		fmt.Fprintf(r.stdout(), "File %s not found.\n", path)
		return nil, false, nil
	} else if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", path, err)
	}

	companies, err := r.Extractor.Extract(html)
	if err != nil {
		return nil, true, fmt.Errorf("extract %s: %w", path, err)
	}

	fmt.Fprintf(r.stdout(), "Found %d companies in file %s.\n", len(companies), path)
	return companies, true, nil
}

func (r *Runner) stdout() io.Writer {
	if r.Stdout == nil {
		return io.Discard
	}
	return r.Stdout
}

// countPossibleDuplicates counts companies with an INN that was probably
// seen before. Companies without an INN are never counted.
func countPossibleDuplicates(companies []*firmlist.Company) int {
	if len(companies) == 0 {
		return 0
	}

	seen := bloom.NewFilter(uint(len(companies)), duplicateFPRate)
	n := 0
	for _, c := range companies {
		if c.INN == nil || *c.INN == "" {
			continue
		}
		if seen.TestAndAdd(*c.INN) {
			n++
		}
	}
	return n
}
