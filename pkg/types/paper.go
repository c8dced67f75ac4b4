// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for pubmed-screener.
package types

// SearchHandle references a server-side result set created by an
// esearch call. QueryKey and WebEnv let a follow-up efetch reuse the
// stored result set without resending the query. A handle is valid
// for one invocation only; nothing persists across runs.
type SearchHandle struct {
	// IDs are the resolved PMIDs in document order.
	IDs []string `json:"ids" yaml:"ids"`

	// QueryKey identifies the query within the server-side history session.
	QueryKey string `json:"query_key" yaml:"query_key"`

	// WebEnv is the server-side history environment token.
	WebEnv string `json:"web_env" yaml:"web_env"`

	// Count is the total number of matches reported by the server,
	// which may exceed len(IDs) when retmax truncated the ID list.
	Count int `json:"count" yaml:"count"`
}

// AuthorAffiliation pairs an author display name with the affiliation
// string the source document attached to that author. Both fields are
// non-empty: author entries missing either are dropped during parsing.
type AuthorAffiliation struct {
	Name        string `json:"name" yaml:"name"`
	Affiliation string `json:"affiliation" yaml:"affiliation"`
}

// PaperRecord holds the fetched metadata for one article. Year is the
// empty string when the source document carries no PubDate/Year.
type PaperRecord struct {
	PMID    string              `json:"pmid" yaml:"pmid"`
	Title   string              `json:"title" yaml:"title"`
	Year    string              `json:"year" yaml:"year"`
	Authors []AuthorAffiliation `json:"authors" yaml:"authors"`
}

// ReportRow is the per-paper report output: the authors whose
// affiliations were classified as non-academic, each paired with that
// affiliation, in original document order. The two slices are always
// the same length. A paper with no qualifying authors still gets a
// row with both slices empty.
type ReportRow struct {
	PMID                string   `json:"pmid" yaml:"pmid"`
	Title               string   `json:"title" yaml:"title"`
	Year                string   `json:"year" yaml:"year"`
	NonAcademicAuthors  []string `json:"non_academic_authors" yaml:"non_academic_authors"`
	CompanyAffiliations []string `json:"company_affiliations" yaml:"company_affiliations"`
}
