// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/json"
	"io"

	"github.com/pdiddy/pubmed-screener/pkg/types"
)

// FormatJSON writes rows as indented JSON to w.
func FormatJSON(rows []types.ReportRow, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}
