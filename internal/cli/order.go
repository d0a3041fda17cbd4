package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"codeorder/internal/config"
	"codeorder/internal/depgraph"
	"codeorder/internal/parser"
	"codeorder/internal/scanner"
)

var orderCmd = &cobra.Command{
	Use:   "order [path]",
	Short: "Print the codebase's files in dependency order",
	Long: `Scans the codebase rooted at path (default "."), builds the file
dependency graph from static imports, and prints one relative path per
line: source files in referenced-before-referencing order, then the
remaining collected files.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runOrder,
}

func init() {
	rootCmd.AddCommand(orderCmd)
}

func runOrder(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	cfg, err := config.NewLoader(root).Load()
	if err != nil {
		return err
	}

	scan, err := scanner.New(root, cfg.Scan.Ignore,
		scanner.WithExtensions(cfg.Scan.Extensions),
		scanner.WithMaxFileSize(cfg.Scan.MaxFileSize),
	)
	if err != nil {
		return err
	}

	files, err := scan.Files()
	if err != nil {
		return err
	}

	builder := depgraph.NewBuilder(newParser(cfg.Source.Strategy),
		depgraph.WithExtension(cfg.Source.Extension),
		depgraph.WithProgress(newOrderProgress(quiet)),
	)

	ordered := depgraph.Order(builder.Build(files))

	for _, p := range scanner.Merge(files, ordered) {
		fmt.Fprintln(cmd.OutOrStdout(), p)
	}
	return nil
}

// newParser selects the extraction strategy chain per configuration.
func newParser(strategy string) *parser.Parser {
	if strategy == config.StrategyPattern {
		return parser.NewPatternOnly()
	}
	return parser.New()
}
