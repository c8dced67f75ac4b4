// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package eutils implements a thin client for the NCBI E-utilities
// esearch and efetch endpoints. Search resolves a free-text query into
// PMIDs plus a server-side history handle; Fetch retrieves article
// metadata for one batch of the stored result set. Calls are
// sequential and single-shot: a failed request propagates to the
// caller without retry.
package eutils

import (
	"net/http"
	"net/url"
)

// NCBI default endpoints. Tests and alternate deployments override
// them through ScreenConfig rather than package state.
const (
	DefaultESearchURL = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/esearch.fcgi"
	DefaultEFetchURL  = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/efetch.fcgi"
)

const (
	// database is the E-utilities db parameter for the literature index.
	database = "pubmed"

	// DefaultMaxResults caps resolved PMIDs when the config leaves
	// MaxResults unset.
	DefaultMaxResults = 100

	// DefaultBatchSize caps fetched article records when the config
	// leaves BatchSize unset.
	DefaultBatchSize = 10
)

// Client issues E-utilities requests over the given HTTP client.
type Client struct {
	HTTP *http.Client
}

// identityParams adds the optional NCBI caller-identification
// parameters when the config provides them.
func identityParams(params url.Values, apiKey, tool, email string) {
	if apiKey != "" {
		params.Set("api_key", apiKey)
	}
	if tool != "" {
		params.Set("tool", tool)
	}
	if email != "" {
		params.Set("email", email)
	}
}
