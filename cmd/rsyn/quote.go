package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"rsyn/internal/ast"
	"rsyn/internal/parser"
	"rsyn/internal/quote"
)

func newQuoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote [flags] TEMPLATE",
		Short: "Interpolate variables into a token template",
		Long: `Quote expands #name placeholders and #( ... ) sep * repetitions in TEMPLATE.
Variables are token sequences given with --var; --each binds a list whose
elements are separated by ';'.`,
		Example: `  rsyn quote 'struct S { #(#names: #tys),* }' --each 'names=a;b' --each 'tys=u8;bool'`,
		Args:    cobra.ExactArgs(1),
		RunE:    runQuote,
	}
	cmd.Flags().StringArray("var", nil, "bind name=tokens")
	cmd.Flags().StringArray("each", nil, "bind name=tokens;tokens;... for repetitions")
	return cmd
}

func runQuote(cmd *cobra.Command, args []string) error {
	singles, err := cmd.Flags().GetStringArray("var")
	if err != nil {
		return fmt.Errorf("failed to get var flag: %w", err)
	}
	lists, err := cmd.Flags().GetStringArray("each")
	if err != nil {
		return fmt.Errorf("failed to get each flag: %w", err)
	}

	vars := quote.Vars{}
	for _, binding := range singles {
		name, text, err := splitBinding(binding)
		if err != nil {
			return err
		}
		tts, err := parser.ParseTokenTrees(text)
		if err != nil {
			return fmt.Errorf("--var %s: %w", name, err)
		}
		vars[name] = tts
	}
	for _, binding := range lists {
		name, text, err := splitBinding(binding)
		if err != nil {
			return err
		}
		var elems [][]ast.TokenTree
		if text != "" {
			for _, part := range strings.Split(text, ";") {
				tts, err := parser.ParseTokenTrees(part)
				if err != nil {
					return fmt.Errorf("--each %s: %w", name, err)
				}
				elems = append(elems, tts)
			}
		}
		vars[name] = elems
	}

	tokens, err := quote.Quote(args[0], vars)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), tokens)
	return err
}

func splitBinding(binding string) (string, string, error) {
	name, text, ok := strings.Cut(binding, "=")
	if !ok || name == "" {
		return "", "", fmt.Errorf("binding %q must look like name=tokens", binding)
	}
	return name, text, nil
}
