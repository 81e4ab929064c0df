package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/pagemd"
	"github.com/tsawler/pagemd/source"
)

var outlineOutput string

var outlineCmd = &cobra.Command{
	Use:   "outline <dump.json>",
	Short: "Print a document's heading outline as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runOutline,
}

func init() {
	outlineCmd.Flags().StringVarP(&outlineOutput, "output", "o", "", "Write JSON to a file instead of stdout")
}

func runOutline(cmd *cobra.Command, args []string) error {
	doc, err := source.OpenJSON(args[0])
	if err != nil {
		return err
	}

	data, err := pagemd.From(doc).WithLogger(newLogger()).OutlineJSON()
	if err != nil {
		return fmt.Errorf("outline extraction failed: %w", err)
	}

	if outlineOutput == "" {
		fmt.Println(string(data))
		return nil
	}

	if err := os.WriteFile(outlineOutput, data, 0644); err != nil {
		return fmt.Errorf("failed to write outline: %w", err)
	}
	fmt.Printf("Outline written to %s\n", outlineOutput)
	return nil
}
