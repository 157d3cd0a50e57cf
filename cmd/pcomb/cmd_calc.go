package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dhamidi/pcomb/calc"
)

func newCalcCmd(opts *globalOptions) *cobra.Command {
	var showTree bool

	cmd := &cobra.Command{
		Use:   "calc [expression...]",
		Short: "Evaluate an arithmetic expression",
		Long: `Evaluate an arithmetic expression with + - * / and parentheses.

The expression is read from the arguments, or from standard input when
there are none.`,
		Example: `  pcomb calc "1 + 2 * (3 - 4.5)"
  echo "-(2 / 4)" | pcomb calc`,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readExpression(cmd, args)
			if err != nil {
				return err
			}

			expr, err := calc.Parse(src)
			if err != nil {
				printReport(cmd.ErrOrStderr(), "", err)
				return errReported
			}
			if showTree {
				fmt.Fprintln(cmd.OutOrStdout(), expr)
			}

			v, err := expr.Eval()
			if err != nil {
				printReport(cmd.ErrOrStderr(), "", err)
				return errReported
			}
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(v, 'g', -1, 64))
			return nil
		},
	}

	cmd.Flags().BoolVar(&showTree, "tree", false, "print the parsed expression before its value")

	return cmd
}
