package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pubmed-screener/internal/report"
)

var showCmd = &cobra.Command{
	Use:   "show [report.yaml]",
	Short: "Render a previously saved report file",
	Long: `Show reloads a YAML report file saved with 'fetch --report' and renders
its rows without re-querying the API.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringP("file", "f", "", "write the rows as CSV to this path instead of printing")
	showCmd.Flags().Bool("json", false, "print the rows as JSON instead of a table")

	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	rf, err := report.ReadReportFile(args[0])
	if err != nil {
		return err
	}

	if file, _ := cmd.Flags().GetString("file"); file != "" {
		return report.SaveCSV(file, rf.Rows)
	}
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return report.FormatJSON(rf.Rows, os.Stdout)
	}
	report.FormatTable(rf.Rows, os.Stdout)
	return nil
}
