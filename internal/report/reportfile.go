// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pubmed-screener/pkg/types"
)

// ReportFile is the on-disk representation of a completed screening
// run. The user can save a run to a file and reload the rows later
// without re-querying the API.
type ReportFile struct {
	Query   string            `yaml:"query"`
	Config  ReportFileConfig  `yaml:"config"`
	Rows    []types.ReportRow `yaml:"rows"`
	Summary ReportSummary     `yaml:"summary"`
}

// ReportFileConfig stores the settings that produced the rows.
type ReportFileConfig struct {
	MaxResults int `yaml:"max_results"`
	BatchSize  int `yaml:"batch_size"`
}

// ReportSummary stores run statistics and a timestamp.
type ReportSummary struct {
	TotalMatches  int       `yaml:"total_matches"`
	IDsResolved   int       `yaml:"ids_resolved"`
	PapersFetched int       `yaml:"papers_fetched"`
	Timestamp     time.Time `yaml:"timestamp"`
}

// WriteReportFile saves a screening run to a YAML file.
func WriteReportFile(path, query string, cfg types.ScreenConfig, summary ReportSummary, rows []types.ReportRow) error {
	rf := ReportFile{
		Query: query,
		Config: ReportFileConfig{
			MaxResults: cfg.MaxResults,
			BatchSize:  cfg.BatchSize,
		},
		Rows:    rows,
		Summary: summary,
	}
	if rf.Summary.Timestamp.IsZero() {
		rf.Summary.Timestamp = time.Now()
	}

	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling report file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadReportFile loads a previously saved report file from disk.
func ReadReportFile(path string) (*ReportFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report file: %w", err)
	}
	var rf ReportFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing report file: %w", err)
	}
	return &rf, nil
}
