package main

import (
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pubmed-screener/internal/eutils"
	"github.com/pdiddy/pubmed-screener/internal/screen"
	"github.com/pdiddy/pubmed-screener/internal/secrets"
	"github.com/pdiddy/pubmed-screener/pkg/types"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "pubmed-screener/0.1"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [query]",
	Short: "Fetch papers for a query and report their non-academic authors",
	Long: `Fetch resolves a PubMed search expression into article IDs, retrieves
metadata for the first batch of articles, classifies each author's
affiliation, and reports the non-academic (industry) authors per paper.

Without -f/--file the report prints to stdout as a table.`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringP("file", "f", "", "write the report as CSV to this path instead of printing")
	fetchCmd.Flags().BoolP("debug", "d", false, "print detailed execution logs to stderr")
	fetchCmd.Flags().Int("max-results", 0, "maximum number of PMIDs to resolve (default 100)")
	fetchCmd.Flags().Int("batch-size", 0, "number of article records to fetch (default 10)")
	fetchCmd.Flags().Bool("json", false, "print the report as JSON instead of a table")
	fetchCmd.Flags().String("report", "", "also save the run as a YAML report file")
	fetchCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg := screenConfig(cmd)

	file, _ := cmd.Flags().GetString("file")
	debug, _ := cmd.Flags().GetBool("debug")
	asJSON, _ := cmd.Flags().GetBool("json")
	reportPath, _ := cmd.Flags().GetString("report")

	opts := screen.Options{
		Query:      args[0],
		File:       file,
		ReportPath: reportPath,
		JSON:       asJSON,
		Debug:      debug,
	}

	client := &eutils.Client{
		HTTP: &http.Client{Timeout: cfg.Timeout},
	}

	_, err := screen.Run(cmd.Context(), client, opts, cfg, os.Stdout)
	return err
}

// screenConfig assembles the run configuration: built-in defaults,
// overridden by config file / environment, overridden by flags.
func screenConfig(cmd *cobra.Command) types.ScreenConfig {
	cfg := types.ScreenConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   defaultTimeout,
			UserAgent: defaultUserAgent,
		},
		ESearchURL: eutils.DefaultESearchURL,
		EFetchURL:  eutils.DefaultEFetchURL,
		MaxResults: eutils.DefaultMaxResults,
		BatchSize:  eutils.DefaultBatchSize,
		Tool:       "pubmed-screener",
	}

	if v := viper.GetDuration("timeout"); v > 0 {
		cfg.Timeout = v
	}
	if v := viper.GetString("user_agent"); v != "" {
		cfg.UserAgent = v
	}
	if v := viper.GetString("esearch_url"); v != "" {
		cfg.ESearchURL = v
	}
	if v := viper.GetString("efetch_url"); v != "" {
		cfg.EFetchURL = v
	}
	if v := viper.GetInt("max_results"); v > 0 {
		cfg.MaxResults = v
	}
	if v := viper.GetInt("batch_size"); v > 0 {
		cfg.BatchSize = v
	}
	if v := viper.GetString("tool"); v != "" {
		cfg.Tool = v
	}
	cfg.APIKey = secretDefault(secrets.KeyAPIKey, viper.GetString("api_key"))
	cfg.Email = secretDefault(secrets.KeyEmail, viper.GetString("email"))

	if v, _ := cmd.Flags().GetDuration("timeout"); v > 0 {
		cfg.Timeout = v
	}
	if v, _ := cmd.Flags().GetInt("max-results"); v > 0 {
		cfg.MaxResults = v
	}
	if v, _ := cmd.Flags().GetInt("batch-size"); v > 0 {
		cfg.BatchSize = v
	}

	return cfg
}
