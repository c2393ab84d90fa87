package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"benchreport/internal/models"
	"benchreport/internal/service"
	"benchreport/internal/store"
)

var (
	extractReport    string
	extractTool      string
	extractToolVer   string
	extractRunID     string
	extractRunNumber int
	extractModel     string
	extractAPIStyle  string
	extractSpecRef   string
	extractWorkspace string
	extractEnv       string
	extractSchema    string
	extractOut       string
	extractNoIndex   bool
	extractStrict    bool
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract metrics from a progress report into a result document",
	Long: `Extract parses the progress report of one benchmark run and writes the
versioned result document under its canonical filename.

A missing report file is not an error: the document is still produced
with every metric set to "unset", and the validator reports what is
missing.

Examples:
  benchreport extract --tool "Claude Code" --model A --api-style REST --run 1 --workspace ./runs/cc-a-rest-1
  benchreport extract --report ./PROGRESS_REPORT.md --tool cursor --model B --api-style GraphQL --run 2 --schema 1.0`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVar(&extractReport, "report", "", "report file (default: <workspace>/<report_name>)")
	extractCmd.Flags().StringVar(&extractTool, "tool", "", "tool name (required)")
	extractCmd.Flags().StringVar(&extractToolVer, "tool-version", "", "tool version")
	extractCmd.Flags().StringVar(&extractRunID, "run-id", "", "run identifier (default: generated)")
	extractCmd.Flags().IntVar(&extractRunNumber, "run", 1, "run number (1 or 2)")
	extractCmd.Flags().StringVar(&extractModel, "model", "", "target model tag: A or B (required)")
	extractCmd.Flags().StringVar(&extractAPIStyle, "api-style", "", "API style: REST or GraphQL (required)")
	extractCmd.Flags().StringVar(&extractSpecRef, "spec-ref", "", "spec reference")
	extractCmd.Flags().StringVar(&extractWorkspace, "workspace", ".", "run workspace path")
	extractCmd.Flags().StringVar(&extractEnv, "env", "local", "run environment")
	extractCmd.Flags().StringVar(&extractSchema, "schema", "", "output schema version (default from config)")
	extractCmd.Flags().StringVar(&extractOut, "out", "", "output directory (default from config)")
	extractCmd.Flags().BoolVar(&extractNoIndex, "no-index", false, "skip recording the run in the index")
	extractCmd.Flags().BoolVar(&extractStrict, "strict", false, "exit non-zero when the document has violations")

	extractCmd.MarkFlagRequired("tool")
	extractCmd.MarkFlagRequired("model")
	extractCmd.MarkFlagRequired("api-style")
}

func runExtract(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	runID := extractRunID
	if runID == "" {
		runID = uuid.NewString()
	}
	id := models.RunIdentity{
		ToolName:    extractTool,
		ToolVersion: extractToolVer,
		RunID:       runID,
		RunNumber:   extractRunNumber,
		Model:       extractModel,
		APIStyle:    extractAPIStyle,
		SpecRef:     extractSpecRef,
		Workspace:   extractWorkspace,
		Environment: extractEnv,
	}

	schema := extractSchema
	if schema == "" {
		schema = cfg.SchemaVersion
	}
	outDir := extractOut
	if outDir == "" {
		outDir = cfg.OutputDir
	}
	reportPath := extractReport
	if reportPath == "" {
		reportPath = filepath.Join(extractWorkspace, cfg.ReportName)
	}

	var index *store.Store
	if !extractNoIndex && cfg.IndexPath != "" {
		var err error
		index, err = store.Open(cfg.IndexPath)
		if err != nil {
			return err
		}
		defer index.Close()
	}

	svc := service.NewResultService(index, logger)
	out, written, err := svc.Generate(ctx, reportPath, outDir, id, service.Options{
		SchemaVersion: schema,
		SubmittedBy:   cfg.SubmittedBy,
		Method:        cfg.Method,
		At:            time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", written)
	printMetricsSummary(out.Metrics)

	if out.Valid() {
		fmt.Println(successStyle.Render("✓ document is valid"))
		return nil
	}
	printViolations(out.Violations)
	if extractStrict {
		return fmt.Errorf("%d validation violation(s)", len(out.Violations))
	}
	fmt.Println(hintStyle.Render("document written despite violations; submission is the operator's call"))
	return nil
}

func printMetricsSummary(m models.CanonicalMetrics) {
	fmt.Printf("  milestones: %d/%d set\n", countSet(m.Timeline), len(m.Timeline))
	fmt.Printf("  iterations: %d\n", len(m.Iterations))
	if m.Results.TotalTests.Valid {
		fmt.Printf("  final run:  %v/%v tests passing\n", m.Results.TestsPassed, m.Results.TotalTests)
	} else {
		fmt.Println("  final run:  unset")
	}
	if m.TotalMinutes.Valid {
		fmt.Printf("  elapsed:    %.2f min\n", m.TotalMinutes.Value)
	}
	if m.HasUI() {
		fmt.Println("  ui phase:   present")
	}
}

func countSet(t models.Timeline) int {
	n := 0
	for _, ms := range t {
		if ms.At.IsSet() {
			n++
		}
	}
	return n
}
