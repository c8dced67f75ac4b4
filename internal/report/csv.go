// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pdiddy/pubmed-screener/pkg/types"
)

// csvHeader is the fixed column layout of the CSV report.
var csvHeader = []string{
	"PubmedID",
	"Title",
	"Publication Date",
	"Non-academic Author(s)",
	"Company Affiliation(s)",
}

// fieldSep joins multi-value fields within one CSV cell.
const fieldSep = "; "

// WriteCSV renders rows as CSV to w, header first. Multi-value fields
// are joined with "; ".
func WriteCSV(w io.Writer, rows []types.ReportRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.PMID,
			row.Title,
			row.Year,
			strings.Join(row.NonAcademicAuthors, fieldSep),
			strings.Join(row.CompanyAffiliations, fieldSep),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing CSV row for %s: %w", row.PMID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCSV writes the report to path, creating or truncating the file.
// Callers only reach this with a complete row set, so a failed run
// never leaves a partial report behind.
func SaveCSV(path string, rows []types.ReportRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := WriteCSV(f, rows); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
