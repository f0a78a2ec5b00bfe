package main

import (
	"fmt"
	"sort"

	"github.com/dhamidi/corona/ast"
	"github.com/dhamidi/corona/format"
	"github.com/dhamidi/corona/parser"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

func newParseCmd(a *app) *cobra.Command {
	var (
		code         string
		rule         string
		outputFormat string
		lenient      bool
		noMemo       bool
		maxDepth     int
		trace        bool
		stats        bool
	)

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a Corona program and dump its syntax tree",
		Long:  "Parse a Corona program and dump its syntax tree. Without a file the program is read from stdin.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, name, err := readSource(a.fs, cmd.InOrStdin(), code, args)
			if err != nil {
				return err
			}

			settings := a.cfg.Parser
			flags := cmd.Flags()
			if flags.Changed("lenient") {
				settings.Lenient = lenient
			}
			if flags.Changed("no-memo") {
				settings.DisableMemo = noMemo
			}
			if flags.Changed("max-depth") {
				settings.MaxDepth = maxDepth
			}
			if flags.Changed("trace") {
				settings.Trace = trace
			}
			if !flags.Changed("format") {
				outputFormat = a.cfg.Format
			}

			opts := append(settings.Options(), parser.WithLogger(commonlog.GetLogger("corona.parser")))
			p, err := parser.FromSource(src, opts...)
			if err != nil {
				printSourceError(cmd.ErrOrStderr(), name, src, err)
				return err
			}

			var node ast.Node
			if rule == "" || rule == "program" {
				node, err = p.Program()
			} else {
				node, err = p.Rule(rule)
			}
			if stats {
				s := p.Stats()
				fmt.Fprintf(cmd.ErrOrStderr(), "memo: %d hits, %d misses, %d entries\n", s.Hits, s.Misses, s.Entries)
			}
			if err != nil {
				printSourceError(cmd.ErrOrStderr(), name, src, err)
				return err
			}

			enc, err := format.NewEncoder(outputFormat, cmd.OutOrStdout(), p.Tokens())
			if err != nil {
				return err
			}
			if err := enc.Encode(node); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&code, "code", "c", "", "parse this program text instead of a file")
	cmd.Flags().StringVarP(&rule, "rule", "r", "", "parse the input as a single rule (see `corona grammar rules`)")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "tree", "output format (tree, json, sexpr)")
	cmd.Flags().BoolVar(&lenient, "lenient", false, "report only the farthest failure as invalid syntax")
	cmd.Flags().BoolVar(&noMemo, "no-memo", false, "disable memoization")
	cmd.Flags().IntVar(&maxDepth, "max-depth", parser.DefaultMaxDepth, "maximum rule nesting depth")
	cmd.Flags().BoolVar(&trace, "trace", false, "log every rule application")
	cmd.Flags().BoolVar(&stats, "stats", false, "print memoization statistics to stderr")

	return cmd
}

func sortedRules() []string {
	rules := append([]string{"program"}, parser.EntryPoints()...)
	sort.Strings(rules)
	return rules
}
