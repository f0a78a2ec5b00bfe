package main

import (
	"github.com/dhamidi/corona/lsp"
	"github.com/spf13/cobra"
)

func newLSPCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			server := lsp.NewLSPServer(version)
			server.Workspace().SetOptions(a.cfg.Parser.Options()...)
			return server.RunStdio()
		},
	}
}
