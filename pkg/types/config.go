// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for outbound requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pubmed-screener/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ScreenConfig holds settings for one screening run. Endpoint URLs are
// carried here rather than as package state so callers (and tests) can
// point the client at a different server.
type ScreenConfig struct {
	HTTPConfig `yaml:",inline"`

	// ESearchURL is the E-utilities search endpoint. Empty means the
	// NCBI default.
	ESearchURL string `json:"esearch_url,omitempty" yaml:"esearch_url,omitempty"`

	// EFetchURL is the E-utilities fetch endpoint. Empty means the
	// NCBI default.
	EFetchURL string `json:"efetch_url,omitempty" yaml:"efetch_url,omitempty"`

	// MaxResults caps the number of PMIDs the resolver requests (default 100).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// BatchSize caps the number of article records fetched per efetch
	// call (default 10). It is independent of MaxResults: a large query
	// only yields details for the first batch.
	BatchSize int `json:"batch_size" yaml:"batch_size"`

	// APIKey is an optional NCBI API key sent as the api_key parameter.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Tool and Email identify the caller to NCBI via the tool and
	// email parameters. Both are optional.
	Tool  string `json:"tool,omitempty" yaml:"tool,omitempty"`
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
}
