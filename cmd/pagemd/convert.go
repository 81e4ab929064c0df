package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsawler/pagemd"
	"github.com/tsawler/pagemd/source"
)

var (
	convertOutput    string
	convertTOC       bool
	convertTables    bool
	convertTolerance float64
)

var convertCmd = &cobra.Command{
	Use:   "convert <dump.json>",
	Short: "Convert an extraction dump to markdown",
	Long: `Convert an extraction dump to a markdown file.

Examples:
  # Convert next to the original input
  pagemd convert report.json

  # Custom output path, no table of contents
  pagemd convert report.json --output out/report.md --toc=false

  # Looser font-size grouping
  pagemd convert report.json --tolerance 1.0
`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "Output file path (default: <stem>.md next to the input)")
	convertCmd.Flags().BoolVar(&convertTOC, "toc", true, "Prepend a table of contents")
	convertCmd.Flags().BoolVar(&convertTables, "tables", true, "Detect tables from coordinate alignment")
	convertCmd.Flags().Float64Var(&convertTolerance, "tolerance", 0.5, "Font-size quantization tolerance in points")
}

func runConvert(cmd *cobra.Command, args []string) error {
	doc, err := source.OpenJSON(args[0])
	if err != nil {
		return err
	}

	path, err := pagemd.From(doc).
		IncludeTOC(convertTOC).
		DetectTables(convertTables).
		FontTolerance(convertTolerance).
		WithLogger(newLogger()).
		SaveAs(convertOutput)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	fmt.Printf("Markdown written to %s\n", path)
	return nil
}
