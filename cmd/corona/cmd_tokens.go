package main

import (
	"fmt"

	"github.com/dhamidi/corona/grammar"
	"github.com/dhamidi/corona/lexer"
	"github.com/spf13/cobra"
)

func newTokensCmd(a *app) *cobra.Command {
	var code string
	var check bool

	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the token stream of a Corona program",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, name, err := readSource(a.fs, cmd.InOrStdin(), code, args)
			if err != nil {
				return err
			}

			tokens, err := lexer.Tokenize(src)
			if err != nil {
				printSourceError(cmd.ErrOrStderr(), name, src, err)
				return err
			}

			out := cmd.OutOrStdout()
			for _, tok := range tokens {
				fmt.Fprintf(out, "%d:%d\t%s\t%q\n", tok.Row, tok.Column, tok.Kind, tok.Data)
			}

			if !check {
				return nil
			}
			g, err := grammar.Load()
			if err != nil {
				return err
			}
			errs := grammar.CheckTokens(g, tokens)
			for _, err := range errs {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", name, err)
			}
			if len(errs) > 0 {
				return fmt.Errorf("%d tokens do not match the grammar", len(errs))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&code, "code", "c", "", "tokenize this program text instead of a file")
	cmd.Flags().BoolVar(&check, "check", false, "check every token against the lexical grammar")

	return cmd
}
