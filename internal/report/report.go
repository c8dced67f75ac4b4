// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report reduces fetched paper records to per-paper rows of
// non-academic authors and renders them as CSV, table, JSON, or a
// reloadable YAML report file.
package report

import (
	"github.com/pdiddy/pubmed-screener/internal/classify"
	"github.com/pdiddy/pubmed-screener/pkg/types"
)

// Build produces one ReportRow per PaperRecord. Authors whose
// affiliation classifies as non-academic keep their paired affiliation
// in original order; papers with no qualifying authors still produce a
// row, so len(rows) always equals len(records).
func Build(records []types.PaperRecord) []types.ReportRow {
	rows := make([]types.ReportRow, 0, len(records))
	for _, rec := range records {
		row := types.ReportRow{
			PMID:  rec.PMID,
			Title: rec.Title,
			Year:  rec.Year,
		}
		for _, au := range rec.Authors {
			if classify.IsAcademic(au.Affiliation) {
				continue
			}
			row.NonAcademicAuthors = append(row.NonAcademicAuthors, au.Name)
			row.CompanyAffiliations = append(row.CompanyAffiliations, au.Affiliation)
		}
		rows = append(rows, row)
	}
	return rows
}
