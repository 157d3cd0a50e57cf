package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/pcomb/format"
	"github.com/dhamidi/pcomb/grammar"
)

func newParseCmd(opts *globalOptions) *cobra.Command {
	var gf grammarFlags
	var outputFormat string
	var trace bool

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse input with an EBNF grammar and print the syntax tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.project()
			if err != nil {
				return err
			}
			if err := gf.apply(cfg); err != nil {
				return err
			}

			enc, err := format.New(outputFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			var gopts []grammar.Option
			if trace {
				gopts = append(gopts, grammar.WithTrace())
			}
			g, err := cfg.Compile(gopts...)
			if err != nil {
				return fmt.Errorf("compile grammar: %w", err)
			}

			src, name, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			tree, err := g.Parse(src)
			if err != nil {
				printReport(cmd.ErrOrStderr(), name, err)
				return errReported
			}
			return enc.Encode(tree)
		},
	}

	gf.register(cmd)
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "sexpr", "output format: "+strings.Join(format.Names, ", "))
	cmd.Flags().BoolVar(&trace, "trace", false, "log every production attempt (needs -vv)")

	return cmd
}
