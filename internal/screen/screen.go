// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package screen orchestrates one screening run: resolve PMIDs for a
// query, fetch article details for the first batch, classify each
// author's affiliation, and render the resulting report.
package screen

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pdiddy/pubmed-screener/internal/eutils"
	"github.com/pdiddy/pubmed-screener/internal/report"
	"github.com/pdiddy/pubmed-screener/pkg/types"
)

// Options holds the per-run inputs from the CLI surface.
type Options struct {
	// Query is the free-text search expression. Required.
	Query string

	// File is a CSV output path. Empty means render to w instead.
	File string

	// ReportPath optionally saves the run as a YAML report file.
	ReportPath string

	// JSON renders rows to w as JSON instead of a table. Ignored when
	// File is set.
	JSON bool

	// Debug enables progress logging to stderr.
	Debug bool
}

// Result summarizes a completed run.
type Result struct {
	TotalMatches int
	IDsResolved  int
	Papers       int
	Rows         []types.ReportRow
}

// Run executes a full screening pass. The resolver call completes
// before the fetch begins; both are sequential, blocking calls bounded
// only by the HTTP client's timeout. Any request or parse failure
// aborts the run before output is produced, so no partial report is
// ever written.
func Run(ctx context.Context, client *eutils.Client, opts Options, cfg types.ScreenConfig, w io.Writer) (Result, error) {
	if strings.TrimSpace(opts.Query) == "" {
		return Result{}, fmt.Errorf("query is empty: provide a search expression")
	}

	debugf := func(format string, args ...any) {
		if opts.Debug {
			fmt.Fprintf(os.Stderr, format, args...)
		}
	}

	debugf("resolving query %q\n", opts.Query)
	handle, err := client.Search(ctx, opts.Query, cfg)
	if err != nil {
		return Result{}, err
	}
	debugf("resolved %d PMIDs (%d total matches)\n", len(handle.IDs), handle.Count)

	records, err := client.Fetch(ctx, handle, cfg)
	if err != nil {
		return Result{}, err
	}
	debugf("fetched details for %d papers\n", len(records))

	rows := report.Build(records)

	result := Result{
		TotalMatches: handle.Count,
		IDsResolved:  len(handle.IDs),
		Papers:       len(records),
		Rows:         rows,
	}

	if opts.ReportPath != "" {
		summary := report.ReportSummary{
			TotalMatches:  result.TotalMatches,
			IDsResolved:   result.IDsResolved,
			PapersFetched: result.Papers,
		}
		if err := report.WriteReportFile(opts.ReportPath, opts.Query, cfg, summary, rows); err != nil {
			return Result{}, err
		}
		debugf("report file saved to %s\n", opts.ReportPath)
	}

	switch {
	case opts.File != "":
		if err := report.SaveCSV(opts.File, rows); err != nil {
			return Result{}, err
		}
		fmt.Fprintf(w, "Report saved to %s (%d papers)\n", opts.File, len(rows))
	case opts.JSON:
		if err := report.FormatJSON(rows, w); err != nil {
			return Result{}, err
		}
	default:
		report.FormatTable(rows, w)
	}

	return result, nil
}
