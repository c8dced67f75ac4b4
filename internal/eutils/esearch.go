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

// eSearchResult mirrors the subset of the esearch XML document the
// screener reads. Absent elements decode to zero values: a query with
// no matches yields an empty ID list and empty handle strings.
type eSearchResult struct {
	Count    int      `xml:"Count"`
	QueryKey string   `xml:"QueryKey"`
	WebEnv   string   `xml:"WebEnv"`
	IDs      []string `xml:"IdList>Id"`
}

// Search resolves a free-text query into PMIDs plus a history handle.
// It issues one GET with usehistory=y so the follow-up Fetch can reuse
// the server-side result set. The returned handle is consumed once;
// nothing is cached across invocations.
func (c *Client) Search(ctx context.Context, query string, cfg types.ScreenConfig) (types.SearchHandle, error) {
	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	params := url.Values{
		"db":         {database},
		"term":       {query},
		"retmax":     {strconv.Itoa(maxResults)},
		"usehistory": {"y"},
	}
	identityParams(params, cfg.APIKey, cfg.Tool, cfg.Email)

	base := cfg.ESearchURL
	if base == "" {
		base = DefaultESearchURL
	}

	var doc eSearchResult
	if err := httputil.GetXML(ctx, c.HTTP, base+"?"+params.Encode(), cfg.UserAgent, &doc); err != nil {
		return types.SearchHandle{}, fmt.Errorf("esearch: %w", err)
	}

	handle := types.SearchHandle{
		QueryKey: strings.TrimSpace(doc.QueryKey),
		WebEnv:   strings.TrimSpace(doc.WebEnv),
		Count:    doc.Count,
	}
	for _, id := range doc.IDs {
		if id = strings.TrimSpace(id); id != "" {
			handle.IDs = append(handle.IDs, id)
		}
	}
	return handle, nil
}
