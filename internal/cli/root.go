// Package cli wires the codeorder commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var quiet bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "codeorder",
	Short: "Order a codebase's files so dependencies come first",
	Long: `codeorder builds a dependency graph from a codebase's static imports
and prints its files in an order that places referenced files before the
files that reference them, suitable for sequential presentation to a
context-limited reader.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress progress output")
}
