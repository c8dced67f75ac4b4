// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"testing"

	"github.com/pdiddy/pubmed-screener/pkg/types"
)

func TestBuildFiltersAcademicAuthors(t *testing.T) {
	records := []types.PaperRecord{
		{
			PMID:  "12345",
			Title: "A Paper",
			Year:  "2021",
			Authors: []types.AuthorAffiliation{
				{Name: "Jane Doe", Affiliation: "Pfizer Inc."},
				{Name: "John Roe", Affiliation: "MIT University"},
			},
		},
	}

	rows := Build(records)
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1", len(rows))
	}

	row := rows[0]
	if len(row.NonAcademicAuthors) != 1 || row.NonAcademicAuthors[0] != "Jane Doe" {
		t.Errorf("NonAcademicAuthors = %v, want [Jane Doe]", row.NonAcademicAuthors)
	}
	if len(row.CompanyAffiliations) != 1 || row.CompanyAffiliations[0] != "Pfizer Inc." {
		t.Errorf("CompanyAffiliations = %v, want [Pfizer Inc.]", row.CompanyAffiliations)
	}
}

func TestBuildNeverDropsRecords(t *testing.T) {
	records := []types.PaperRecord{
		{PMID: "1", Title: "All academic", Authors: []types.AuthorAffiliation{
			{Name: "A", Affiliation: "Stanford University"},
		}},
		{PMID: "2", Title: "No authors"},
		{PMID: "3", Title: "Mixed", Authors: []types.AuthorAffiliation{
			{Name: "B", Affiliation: "Novartis AG"},
			{Name: "C", Affiliation: "ETH Research Institute"},
		}},
	}

	rows := Build(records)
	if len(rows) != len(records) {
		t.Fatalf("len(rows) = %d, want %d", len(rows), len(records))
	}

	// A paper with only academic authors keeps its row with empty fields.
	if len(rows[0].NonAcademicAuthors) != 0 || len(rows[0].CompanyAffiliations) != 0 {
		t.Errorf("all-academic paper should have empty output fields, got %v / %v",
			rows[0].NonAcademicAuthors, rows[0].CompanyAffiliations)
	}
}

func TestBuildPairsStayAligned(t *testing.T) {
	records := []types.PaperRecord{
		{PMID: "1", Authors: []types.AuthorAffiliation{
			{Name: "A", Affiliation: "Roche Ltd"},
			{Name: "B", Affiliation: "Oxford University"},
			{Name: "C", Affiliation: "Moderna Inc"},
		}},
		{PMID: "2"},
	}

	for _, row := range Build(records) {
		if len(row.NonAcademicAuthors) != len(row.CompanyAffiliations) {
			t.Errorf("row %s: %d authors vs %d affiliations",
				row.PMID, len(row.NonAcademicAuthors), len(row.CompanyAffiliations))
		}
	}
}

func TestBuildPreservesOrder(t *testing.T) {
	records := []types.PaperRecord{
		{PMID: "1", Authors: []types.AuthorAffiliation{
			{Name: "First", Affiliation: "Acme Corp"},
			{Name: "Skip", Affiliation: "Some College"},
			{Name: "Second", Affiliation: "Beta Biotech"},
		}},
	}

	row := Build(records)[0]
	want := []string{"First", "Second"}
	if len(row.NonAcademicAuthors) != 2 || row.NonAcademicAuthors[0] != want[0] || row.NonAcademicAuthors[1] != want[1] {
		t.Errorf("NonAcademicAuthors = %v, want %v", row.NonAcademicAuthors, want)
	}
	if row.CompanyAffiliations[0] != "Acme Corp" || row.CompanyAffiliations[1] != "Beta Biotech" {
		t.Errorf("CompanyAffiliations = %v, want paired order", row.CompanyAffiliations)
	}
}
