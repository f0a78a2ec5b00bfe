package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/corona/config"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

// app carries the state shared by every subcommand.
type app struct {
	fs         afero.Fs
	cfg        *config.Config
	configPath string
	verbosity  int
	logFile    string
}

func main() {
	if err := newRootCmd(&app{fs: afero.NewOsFs()}).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "corona",
		Short:         "Tools for the Corona language",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "configuration file (default: corona.yaml, corona.yml or corona.toml in the current directory or a parent)")
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", "increase log verbosity")
	rootCmd.PersistentFlags().StringVar(&a.logFile, "log-file", "", "write logs to this file instead of stderr")

	rootCmd.AddCommand(newParseCmd(a))
	rootCmd.AddCommand(newTokensCmd(a))
	rootCmd.AddCommand(newGrammarCmd(a))
	rootCmd.AddCommand(newLSPCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// load reads the configuration and applies the logging flags on top of it.
func (a *app) load(cmd *cobra.Command) error {
	var err error
	if a.configPath != "" {
		a.cfg, err = config.Load(a.fs, a.configPath)
	} else {
		dir, wdErr := os.Getwd()
		if wdErr != nil {
			dir = "."
		}
		a.cfg, err = config.LoadDir(a.fs, dir)
	}
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("verbose") {
		a.cfg.Log.Verbosity = a.verbosity
	}
	if a.logFile != "" {
		a.cfg.Log.File = a.logFile
	}
	a.cfg.Log.Apply()
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "corona %s\n", version)
		},
	}
}
