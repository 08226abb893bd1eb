package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rsyn/internal/driver"
)

func newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render file.rs",
		Short: "Parse a file and render the tree back to tokens",
		Long:  `Render parses a file and prints the tree as space-separated tokens, the form the round-trip verifier feeds back to the parser`,
		Args:  cobra.ExactArgs(1),
		RunE:  runRender,
	}
}

func runRender(cmd *cobra.Command, args []string) error {
	g, err := readGlobals(cmd)
	if err != nil {
		return err
	}
	res, err := driver.Render(args[0], g.maxDiagnostics)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	g.printDiagnostics(cmd.ErrOrStderr(), res.Bag, res.FileSet)
	if err := res.Err(); err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), res.Text)
	return err
}
