package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/pcomb/config"
)

var version = "0.1.0"

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:           "pcomb",
		Short:         "Parse input with parser combinators and EBNF grammars",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&opts.verbose, "verbose", "v", "increase log verbosity (repeatable)")
	flags.StringVar(&opts.logFile, "log", "", "write logs to this file instead of stderr")
	flags.StringVar(&opts.color, "color", "", "colorize error reports: auto, always, never")
	flags.StringVar(&opts.configPath, "config", "", "project file (default: nearest "+config.FileName+")")

	rootCmd.AddCommand(newCheckCmd(opts))
	rootCmd.AddCommand(newParseCmd(opts))
	rootCmd.AddCommand(newCalcCmd(opts))
	rootCmd.AddCommand(newDecodeCmd(opts))
	rootCmd.AddCommand(newLSPCmd(opts))
	rootCmd.AddCommand(newServeCmd(opts))

	return rootCmd
}
