// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/pubmed-screener/pkg/types"
)

// FormatTable writes rows as a human-readable table to w.
func FormatTable(rows []types.ReportRow, w io.Writer) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No papers found.")
		return
	}

	fmt.Fprintf(w, "%-10s  %-50s  %-4s  %-28s  %s\n",
		"PubmedID", "Title", "Year", "Non-academic Author(s)", "Company Affiliation(s)")
	fmt.Fprintln(w, strings.Repeat("-", 130))

	for _, row := range rows {
		fmt.Fprintf(w, "%-10s  %-50s  %-4s  %-28s  %s\n",
			row.PMID,
			truncate(row.Title, 50),
			row.Year,
			truncate(strings.Join(row.NonAcademicAuthors, fieldSep), 28),
			strings.Join(row.CompanyAffiliations, fieldSep))
	}

	fmt.Fprintf(w, "\n%d papers\n", len(rows))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
