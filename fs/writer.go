package fs

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/firmlist"
)

// Delimiter separates CSV fields. Semicolons keep the file readable by
// spreadsheet applications configured for Russian locales.
const Delimiter = ';'

// EncodeCompanies writes a header row followed by one row per company.
// Rows end with CRLF.
func EncodeCompanies(w io.Writer, companies []*firmlist.Company) error {
	cw := csv.NewWriter(w)
	cw.Comma = Delimiter
	cw.UseCRLF = true

	if err := cw.Write(firmlist.Columns); err != nil {
		return err
	}
	for _, c := range companies {
		if err := cw.Write(c.Row()); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// Ensure CSVWriter implements firmlist.CompanyWriter at compile time.
var _ firmlist.CompanyWriter = (*CSVWriter)(nil)

// CSVWriter writes companies to a single CSV file.
type CSVWriter struct {
	path   string
	stdout io.Writer
}

// NewCSVWriter creates a new CSVWriter for path. Status messages are
// written to stdout; nil discards them.
func NewCSVWriter(path string, stdout io.Writer) *CSVWriter {
	if stdout == nil {
		stdout = io.Discard
	}
	return &CSVWriter{path: path, stdout: stdout}
}

// Path returns the output file path.
func (w *CSVWriter) Path() string {
	return w.path
}

// WriteCompanies creates or truncates the output file and writes all
// companies to it. An empty batch leaves the file system untouched.
func (w *CSVWriter) WriteCompanies(ctx context.Context, companies []*firmlist.Company) error {
	if len(companies) == 0 {
		fmt.Fprintf(w.stdout, "No data to write to %s.\n", w.path)
		return nil
	}

	f, err := os.Create(w.path)
	if err != nil {
		return err
	}

	if err := EncodeCompanies(f, companies); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Fprintf(w.stdout, "Data written to '%s'.\n", w.path)
	return nil
}
