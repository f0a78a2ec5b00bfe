package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dhamidi/corona/grammar"
	"github.com/spf13/cobra"
)

func newGrammarCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "Inspect and verify the Corona grammar",
	}

	cmd.AddCommand(newGrammarCheckCmd(a))
	cmd.AddCommand(newGrammarPrintCmd())
	cmd.AddCommand(newGrammarRulesCmd())

	return cmd
}

func newGrammarCheckCmd(a *app) *cobra.Command {
	var startProduction string

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Parse and verify an EBNF grammar file (default: the built-in grammar)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := grammar.Filename
			var r io.Reader = bytes.NewReader(grammar.Source())
			if len(args) == 1 {
				f, err := a.fs.Open(args[0])
				if err != nil {
					return fmt.Errorf("open file: %w", err)
				}
				defer f.Close()
				filename, r = args[0], f
			}

			if _, err := grammar.Check(filename, r, startProduction); err != nil {
				printErrors(cmd.ErrOrStderr(), err)
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", filename)
			return nil
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", grammar.Start, "start production for verification (if empty, only checks syntax)")

	return cmd
}

func newGrammarPrintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print",
		Short: "Print the built-in grammar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := cmd.OutOrStdout().Write(grammar.Source())
			return err
		},
	}
}

func newGrammarRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the rules accepted by `corona parse --rule`",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, rule := range sortedRules() {
				fmt.Fprintln(cmd.OutOrStdout(), rule)
			}
		},
	}
}

func printErrors(w io.Writer, err error) {
	for _, e := range grammar.Errors(err) {
		fmt.Fprintln(w, e)
	}
}
