package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/pcomb/grammar"
)

func newCheckCmd(opts *globalOptions) *cobra.Command {
	var startProduction string

	cmd := &cobra.Command{
		Use:   "check [grammar]",
		Short: "Parse and verify an EBNF grammar file",
		Long: `Parse and verify an EBNF grammar file.

Without --start only the syntax of the grammar is checked. With it, every
production must be defined and reachable from the start production and no
production may be left-recursive.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.project()
			if err != nil {
				return err
			}

			filename := cfg.GrammarPath()
			if len(args) == 1 {
				filename = args[0]
			}
			if filename == "" {
				return errors.New("no grammar given and none configured")
			}
			if !cmd.Flags().Changed("start") && len(args) == 0 {
				startProduction = cfg.Start
			}

			g, err := grammar.Load(filename)
			if err != nil {
				printErrors(cmd.ErrOrStderr(), err)
				return errReported
			}

			if startProduction == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d productions\n", filename, len(g))
				return nil
			}

			if err := grammar.Check(g, startProduction); err != nil {
				printErrors(cmd.ErrOrStderr(), err)
				return errReported
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d productions, start %s\n", filename, len(g), startProduction)
			return nil
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", "", "start production for verification (if empty, only checks syntax)")

	return cmd
}
