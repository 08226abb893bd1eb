package main

import (
	"os"

	"github.com/spf13/cobra"

	"rsyn/internal/version"
)

// main builds the command tree and executes it; any error exits with status 1.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "rsyn",
		Short:             "Syntax tree toolkit for Rust 2015 sources",
		Long:              `rsyn parses Rust 2015 sources into a syntax tree, renders trees back to tokens, splits generics for impl blocks and verifies parse/render round trips`,
		Version:           version.Version,
		SilenceUsage:      true,
		SilenceErrors:     false,
		PersistentPreRunE: startProfiling,
	}

	// Глобальные флаги
	pf := rootCmd.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("quiet", false, "suppress non-essential output")
	pf.CountP("verbose", "v", "log progress (-v info, -vv debug)")
	pf.Bool("timings", false, "show timing information")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	addProfileFlags(rootCmd)

	rootCmd.AddCommand(
		newTokenizeCmd(),
		newParseCmd(),
		newRenderCmd(),
		newSplitCmd(),
		newQuoteCmd(),
		newRoundtripCmd(),
		newVersionCmd(),
	)
	return rootCmd
}
