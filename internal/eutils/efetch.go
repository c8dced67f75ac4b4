// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package eutils

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/pdiddy/pubmed-screener/internal/httputil"
	"github.com/pdiddy/pubmed-screener/pkg/types"
)

// PubMed efetch XML structures. Field paths follow the PubMed DTD
// nesting; elements absent from a document decode to empty strings.
type pubmedArticleSet struct {
	Articles []pubmedArticle `xml:"PubmedArticle"`
}

type pubmedArticle struct {
	PMID    string         `xml:"MedlineCitation>PMID"`
	Title   string         `xml:"MedlineCitation>Article>ArticleTitle"`
	Year    string         `xml:"MedlineCitation>Article>Journal>JournalIssue>PubDate>Year"`
	Authors []pubmedAuthor `xml:"MedlineCitation>Article>AuthorList>Author"`
}

type pubmedAuthor struct {
	ForeName string `xml:"ForeName"`
	LastName string `xml:"LastName"`

	// Affiliation was a direct child of Author before the 2014 DTD;
	// AffiliationInfo holds it since. Both are read, first match wins.
	Affiliation     string              `xml:"Affiliation"`
	AffiliationInfo []pubmedAffiliation `xml:"AffiliationInfo"`
}

type pubmedAffiliation struct {
	Affiliation string `xml:"Affiliation"`
}

// displayName returns "{ForeName} {LastName}" trimmed of surrounding
// whitespace. Either part may be absent.
func (a pubmedAuthor) displayName() string {
	return strings.TrimSpace(a.ForeName + " " + a.LastName)
}

// affiliation returns the author's first non-empty affiliation text,
// or the empty string when none is present.
func (a pubmedAuthor) affiliation() string {
	if s := strings.TrimSpace(a.Affiliation); s != "" {
		return s
	}
	for _, info := range a.AffiliationInfo {
		if s := strings.TrimSpace(info.Affiliation); s != "" {
			return s
		}
	}
	return ""
}

// Fetch retrieves article metadata for one batch of the result set
// referenced by handle. The batch size caps how many records come back
// regardless of how many PMIDs were resolved; fetching the remainder
// is up to the caller. Author entries missing either a name or an
// affiliation are dropped rather than kept as empty placeholders.
func (c *Client) Fetch(ctx context.Context, handle types.SearchHandle, cfg types.ScreenConfig) ([]types.PaperRecord, error) {
	batch := cfg.BatchSize
	if batch <= 0 {
		batch = DefaultBatchSize
	}

	params := url.Values{
		"db":        {database},
		"query_key": {handle.QueryKey},
		"WebEnv":    {handle.WebEnv},
		"retmax":    {strconv.Itoa(batch)},
		"retmode":   {"xml"},
	}
	identityParams(params, cfg.APIKey, cfg.Tool, cfg.Email)

	base := cfg.EFetchURL
	if base == "" {
		base = DefaultEFetchURL
	}

	var doc pubmedArticleSet
	if err := httputil.GetXML(ctx, c.HTTP, base+"?"+params.Encode(), cfg.UserAgent, &doc); err != nil {
		return nil, fmt.Errorf("efetch: %w", err)
	}

	records := make([]types.PaperRecord, 0, len(doc.Articles))
	for _, art := range doc.Articles {
		rec := types.PaperRecord{
			PMID:  strings.TrimSpace(art.PMID),
			Title: strings.TrimSpace(art.Title),
			Year:  strings.TrimSpace(art.Year),
		}
		for _, au := range art.Authors {
			name := au.displayName()
			aff := au.affiliation()
			if name == "" || aff == "" {
				continue
			}
			rec.Authors = append(rec.Authors, types.AuthorAffiliation{
				Name:        name,
				Affiliation: aff,
			})
		}
		records = append(records, rec)
	}
	return records, nil
}
