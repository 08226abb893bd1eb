package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rsyn/internal/generics"
	"rsyn/internal/parser"
	"rsyn/internal/quote"
)

func newSplitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split [flags] '<generics> [where ...]'",
		Short: "Split generics into impl, type and where fragments",
		Long: `Split parses a generics list with an optional where clause and prints
the three fragments an impl block needs. With --trait and --name it prints
the whole impl header.`,
		Example: `  rsyn split "<'a, 'b: 'a, #[may_dangle] T: 'a> where T: Debug" --trait MyTrait --name Test`,
		Args:    cobra.ExactArgs(1),
		RunE:    runSplit,
	}
	cmd.Flags().String("trait", "", "trait path for the impl header")
	cmd.Flags().String("name", "", "self type name for the impl header")
	return cmd
}

func runSplit(cmd *cobra.Command, args []string) error {
	g, err := parser.ParseGenerics(args[0])
	if err != nil {
		return err
	}
	traitName, err := cmd.Flags().GetString("trait")
	if err != nil {
		return fmt.Errorf("failed to get trait flag: %w", err)
	}
	selfName, err := cmd.Flags().GetString("name")
	if err != nil {
		return fmt.Errorf("failed to get name flag: %w", err)
	}

	implG, tyG, where := generics.SplitForImpl(g)
	out := cmd.OutOrStdout()
	if traitName == "" || selfName == "" {
		fmt.Fprintf(out, "impl:  %s\n", implG)
		fmt.Fprintf(out, "type:  %s\n", tyG)
		fmt.Fprintf(out, "where: %s\n", where)
		return nil
	}

	trait, err := parser.ParsePath(traitName)
	if err != nil {
		return fmt.Errorf("--trait: %w", err)
	}
	self, err := parser.ParsePath(selfName)
	if err != nil {
		return fmt.Errorf("--name: %w", err)
	}
	header, err := quote.Quote("impl #impl_g #trait_path for #self_ty #ty_g #where_clause {}", quote.Vars{
		"impl_g":       implG,
		"trait_path":   trait,
		"self_ty":      self,
		"ty_g":         tyG,
		"where_clause": where,
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, header)
	return err
}
