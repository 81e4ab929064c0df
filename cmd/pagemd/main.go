package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var version = "0.1.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pagemd",
	Short: "Pagemd - rebuild document structure from extraction dumps as markdown",
	Long: `Pagemd reconstructs document structure from positioned text spans and
emits markdown.

It consumes extraction dumps: JSON files holding the page/block/line/span
geometry an extraction engine produced (text, font name, size, style flags,
bounding boxes, embedded images). From that geometry alone it recovers the
heading hierarchy, detects tables from coordinate alignment, separates code
from prose, and writes a navigable markdown document.`,
	Version: version,
}

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(outlineCmd)
}

// newLogger builds the CLI logger: a development-style terminal logger
// when --verbose is set, a nop logger otherwise.
func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
