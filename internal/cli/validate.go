package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"benchreport/internal/result"
)

var validateCmd = &cobra.Command{
	Use:   "validate <result-file.json>",
	Short: "Validate a result document and its filename",
	Long: `Validate checks an existing result document against the schema rules:
well-formedness, canonical filename pattern, required identity fields
and enum/range constraints.

Each broken rule is reported as a discrete violation naming the field,
so a document can be corrected without re-running extraction.

Examples:
  benchreport validate results/claude-code_modelA_REST_run1_20250101T0930.json`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read result document: %w", err)
	}

	violations := result.Validate(data, filepath.Base(path))
	if len(violations) == 0 {
		fmt.Println(successStyle.Render("✓ " + filepath.Base(path) + " is valid"))
		return nil
	}

	printViolations(violations)
	return fmt.Errorf("%d validation violation(s)", len(violations))
}

func printViolations(violations []result.Violation) {
	fmt.Println(errorStyle.Render(fmt.Sprintf("✗ %d violation(s):", len(violations))))
	for _, v := range violations {
		fmt.Println(warnStyle.Render("  - " + v.String()))
	}
}
