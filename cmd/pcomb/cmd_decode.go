package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/pcomb/comb"
	"github.com/dhamidi/pcomb/text"
)

func newDecodeCmd(opts *globalOptions) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "Validate UTF-8 input and list its characters",
		Long: `Decode input as strict UTF-8 and print one line per character with its
byte offset and code point. Decoding stops at the first invalid sequence,
which is reported with its location.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, name, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			char := comb.Position(text.Char())
			count := 0
			for c := comb.NewByteCursor(src); !c.EOS(); count++ {
				s, next, err := char.Parse(c)
				if err != nil {
					printReport(cmd.ErrOrStderr(), name, err)
					return errReported
				}
				if !quiet {
					fmt.Fprintf(out, "%8d  U+%04X  %q\n", s.Span.Start, s.Value, s.Value)
				}
				c = next
			}
			if quiet {
				fmt.Fprintf(out, "%s: %d characters, %d bytes\n", name, count, len(src))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only print a summary")

	return cmd
}
