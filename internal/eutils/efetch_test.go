// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package eutils

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pdiddy/pubmed-screener/internal/httputil"
	"github.com/pdiddy/pubmed-screener/pkg/types"
)

const efetchSample = `<?xml version="1.0" encoding="UTF-8" ?>
<PubmedArticleSet>
  <PubmedArticle>
    <MedlineCitation>
      <PMID Version="1">31452104</PMID>
      <Article>
        <Journal>
          <JournalIssue>
            <PubDate><Year>2019</Year><Month>Aug</Month></PubDate>
          </JournalIssue>
        </Journal>
        <ArticleTitle>A CRISPR screen of kinase inhibitors.</ArticleTitle>
        <AuthorList>
          <Author ValidYN="Y">
            <LastName>Doe</LastName>
            <ForeName>Jane</ForeName>
            <AffiliationInfo>
              <Affiliation>Pfizer Inc., New York, NY, USA.</Affiliation>
            </AffiliationInfo>
          </Author>
          <Author ValidYN="Y">
            <LastName>Roe</LastName>
            <ForeName>John</ForeName>
            <AffiliationInfo>
              <Affiliation>MIT University, Cambridge, MA.</Affiliation>
            </AffiliationInfo>
          </Author>
          <Author ValidYN="Y">
            <LastName>Nameless</LastName>
            <ForeName>Ann</ForeName>
          </Author>
          <Author ValidYN="Y">
            <AffiliationInfo>
              <Affiliation>Orphan Affiliation Co.</Affiliation>
            </AffiliationInfo>
          </Author>
        </AuthorList>
      </Article>
    </MedlineCitation>
  </PubmedArticle>
  <PubmedArticle>
    <MedlineCitation>
      <PMID Version="1">31452105</PMID>
      <Article>
        <Journal>
          <JournalIssue>
            <PubDate><MedlineDate>2018 Nov-Dec</MedlineDate></PubDate>
          </JournalIssue>
        </Journal>
        <ArticleTitle>An older record.</ArticleTitle>
        <AuthorList>
          <Author ValidYN="Y">
            <LastName>Smith</LastName>
            <Affiliation>Novartis AG, Basel, Switzerland.</Affiliation>
          </Author>
        </AuthorList>
      </Article>
    </MedlineCitation>
  </PubmedArticle>
</PubmedArticleSet>`

func sampleHandle() types.SearchHandle {
	return types.SearchHandle{
		IDs:      []string{"31452104", "31452105"},
		QueryKey: "1",
		WebEnv:   "MCID_abc123",
		Count:    2,
	}
}

func TestFetchParsesRecords(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, efetchSample)
	}))
	defer ts.Close()

	c := &Client{HTTP: ts.Client()}
	records, err := c.Fetch(context.Background(), sampleHandle(), testCfg("", ts.URL))
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}

	first := records[0]
	if first.PMID != "31452104" {
		t.Errorf("PMID = %q", first.PMID)
	}
	if first.Title != "A CRISPR screen of kinase inhibitors." {
		t.Errorf("Title = %q", first.Title)
	}
	if first.Year != "2019" {
		t.Errorf("Year = %q, want 2019", first.Year)
	}

	// Authors missing a name or an affiliation are dropped entirely,
	// not kept as empty placeholders.
	if len(first.Authors) != 2 {
		t.Fatalf("len(Authors) = %d, want 2", len(first.Authors))
	}
	if first.Authors[0].Name != "Jane Doe" || first.Authors[0].Affiliation != "Pfizer Inc., New York, NY, USA." {
		t.Errorf("Authors[0] = %+v", first.Authors[0])
	}
	if first.Authors[1].Name != "John Roe" {
		t.Errorf("Authors[1] = %+v", first.Authors[1])
	}
}

func TestFetchLegacyAffiliationAndMissingYear(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, efetchSample)
	}))
	defer ts.Close()

	c := &Client{HTTP: ts.Client()}
	records, err := c.Fetch(context.Background(), sampleHandle(), testCfg("", ts.URL))
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	second := records[1]
	// PubDate carries only MedlineDate: the Year field degrades to "".
	if second.Year != "" {
		t.Errorf("Year = %q, want empty", second.Year)
	}
	// LastName-only author, pre-2014 Affiliation placement.
	if len(second.Authors) != 1 {
		t.Fatalf("len(Authors) = %d, want 1", len(second.Authors))
	}
	if second.Authors[0].Name != "Smith" {
		t.Errorf("name = %q, want %q", second.Authors[0].Name, "Smith")
	}
	if second.Authors[0].Affiliation != "Novartis AG, Basel, Switzerland." {
		t.Errorf("affiliation = %q", second.Authors[0].Affiliation)
	}
}

func TestFetchRequestParams(t *testing.T) {
	var capturedReq *http.Request
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedReq = r
		fmt.Fprint(w, `<?xml version="1.0"?><PubmedArticleSet></PubmedArticleSet>`)
	}))
	defer ts.Close()

	cfg := testCfg("", ts.URL)
	cfg.BatchSize = 7

	c := &Client{HTTP: ts.Client()}
	if _, err := c.Fetch(context.Background(), sampleHandle(), cfg); err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	q := capturedReq.URL.Query()
	for param, want := range map[string]string{
		"db":        "pubmed",
		"query_key": "1",
		"WebEnv":    "MCID_abc123",
		"retmax":    "7",
		"retmode":   "xml",
	} {
		if got := q.Get(param); got != want {
			t.Errorf("%s param = %q, want %q", param, got, want)
		}
	}
}

func TestFetchDefaultBatchSize(t *testing.T) {
	var capturedReq *http.Request
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedReq = r
		fmt.Fprint(w, `<?xml version="1.0"?><PubmedArticleSet></PubmedArticleSet>`)
	}))
	defer ts.Close()

	cfg := testCfg("", ts.URL)
	cfg.BatchSize = 0

	c := &Client{HTTP: ts.Client()}
	if _, err := c.Fetch(context.Background(), sampleHandle(), cfg); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if got := capturedReq.URL.Query().Get("retmax"); got != "10" {
		t.Errorf("retmax = %q, want 10 by default", got)
	}
}

func TestFetchHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	c := &Client{HTTP: ts.Client()}
	_, err := c.Fetch(context.Background(), sampleHandle(), testCfg("", ts.URL))

	var reqErr *httputil.RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("error = %v, want *httputil.RequestError", err)
	}
}

func TestFetchMalformedXML(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `not xml at all`)
	}))
	defer ts.Close()

	c := &Client{HTTP: ts.Client()}
	_, err := c.Fetch(context.Background(), sampleHandle(), testCfg("", ts.URL))

	var parseErr *httputil.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error = %v, want *httputil.ParseError", err)
	}
}

func TestAuthorDisplayName(t *testing.T) {
	tests := []struct {
		name   string
		author pubmedAuthor
		want   string
	}{
		{"both parts", pubmedAuthor{ForeName: "Jane", LastName: "Doe"}, "Jane Doe"},
		{"last name only", pubmedAuthor{LastName: "Doe"}, "Doe"},
		{"fore name only", pubmedAuthor{ForeName: "Jane"}, "Jane"},
		{"neither", pubmedAuthor{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.author.displayName(); got != tt.want {
				t.Errorf("displayName() = %q, want %q", got, tt.want)
			}
		})
	}
}
