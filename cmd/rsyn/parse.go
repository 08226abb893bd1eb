package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rsyn/internal/diag"
	"rsyn/internal/diagfmt"
	"rsyn/internal/driver"
	"rsyn/internal/observ"
	"rsyn/internal/roundtrip"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [flags] <file.rs|directory>...",
		Short: "Parse source files and print their syntax trees",
		Long:  `Parse reads source files (directories are searched with --pattern) and prints the syntax tree of each`,
		Args:  cobra.MinimumNArgs(1),
		RunE:  runParse,
	}
	cmd.Flags().String("format", string(diagfmt.TreeFormatDump), "output format (tree|source)")
	cmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	cmd.Flags().String("pattern", roundtrip.DefaultPattern, "glob for files inside directories")
	return cmd
}

// expandInputs заменяет каталоги списком подходящих файлов.
func expandInputs(args []string, pattern string) ([]string, error) {
	var files []string
	for _, arg := range args {
		found, err := roundtrip.Discover(arg, pattern)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	return files, nil
}

func runParse(cmd *cobra.Command, args []string) error {
	g, err := readGlobals(cmd)
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	pattern, err := cmd.Flags().GetString("pattern")
	if err != nil {
		return fmt.Errorf("failed to get pattern flag: %w", err)
	}

	timer := observ.NewTimer()
	done := timer.Track("discover")
	files, err := expandInputs(args, pattern)
	done(fmt.Sprintf("%d files", len(files)))
	if err != nil {
		return err
	}

	done = timer.Track("parse")
	fs, results, err := driver.ParseFiles(cmd.Context(), files, g.maxDiagnostics, jobs)
	done("")
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	all := diag.NewBag(g.maxDiagnostics)
	for _, res := range results {
		all.Merge(res.Bag)
	}
	g.printDiagnostics(cmd.ErrOrStderr(), all, fs)

	out := cmd.OutOrStdout()
	failed := 0
	for _, res := range results {
		if res.Bag.HasErrors() {
			failed++
			continue
		}
		if len(results) > 1 {
			fmt.Fprintf(out, "== %s\n", res.Path)
		}
		if err := diagfmt.FormatCrate(out, res.Crate, diagfmt.TreeFormat(format)); err != nil {
			return err
		}
	}
	g.printTimings(cmd.ErrOrStderr(), timer)
	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed to parse", failed, len(results))
	}
	return nil
}
