package main

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/algorithms/morse"
	"github.com/spf13/cobra"
)

func newMorseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "morse",
		Short: "Encode or decode International Morse code",
	}
	codec := morse.NewCodec(morse.WithTable(morse.International()))

	cmd.AddCommand(
		&cobra.Command{
			Use:   "encode TEXT...",
			Short: "Encode text; words become ' / '-separated",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), codec.Encode(strings.Join(args, " ")))
				return err
			},
		},
		&cobra.Command{
			Use:   "decode CODE...",
			Short: "Decode whitespace-separated Morse tokens",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), codec.Decode(strings.Join(args, " ")))
				return err
			},
		},
	)
	return cmd
}
