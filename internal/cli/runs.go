package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"benchreport/internal/store"
)

var runsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List indexed result documents",
	Long: `Runs lists the result documents recorded in the run index, newest
first.

Examples:
  benchreport runs
  benchreport runs --limit 10`,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&runsLimit, "limit", 20, "maximum rows to show (0 = all)")
}

func runRuns(cmd *cobra.Command, args []string) error {
	if cfg.IndexPath == "" {
		return fmt.Errorf("no index configured (set index_path in the config file)")
	}
	index, err := store.Open(cfg.IndexPath)
	if err != nil {
		return err
	}
	defer index.Close()

	entries, err := index.List(context.Background(), runsLimit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println(hintStyle.Render("no runs indexed yet"))
		return nil
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"Run ID", "Tool", "Model", "API", "Run", "Schema", "Valid", "Filename"})
	for _, e := range entries {
		valid := successStyle.Render("yes")
		if !e.Valid {
			valid = errorStyle.Render(fmt.Sprintf("no (%d)", e.Violations))
		}
		tw.AppendRow(table.Row{shortID(e.RunID), e.Tool, e.Model, e.APIStyle, e.RunNumber, e.SchemaVersion, valid, e.Filename})
	}
	tw.Render()
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
