package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/pcomb/grammar"
	"github.com/dhamidi/pcomb/lsp"
)

func newLSPCmd(opts *globalOptions) *cobra.Command {
	var gf grammarFlags

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		Long: `Start a language server on standard input and output that reports the
furthest parse error of every open document.

Without --grammar the grammar is taken from the project file in the
workspace root sent by the client.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var g *grammar.Grammar
			if gf.grammar != "" {
				cfg, err := opts.project()
				if err != nil {
					return err
				}
				if err := gf.apply(cfg); err != nil {
					return err
				}
				g, err = cfg.Compile()
				if err != nil {
					return fmt.Errorf("compile grammar: %w", err)
				}
			}

			server := lsp.NewServer(version, g)
			return server.RunStdio()
		},
	}

	gf.register(cmd)

	return cmd
}
