package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries state shared by all subcommands.
type app struct {
	verbose bool
	log     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "algos",
		Short: "Classic algorithms: Fibonacci strategies, sorts, searches, Morse",
		Long: `algos drives the algorithms library from the command line.

Examples:
  # Compare every Fibonacci strategy at n=35
  algos fib --n 35

  # Memoize concurrently and print OpenTelemetry counters
  algos fib --strategy shared --n 90 --metrics

  # Sort 20 seeded random values with heap sort
  algos sort --algo heap --n 20 --seed 7

  # Encode text as Morse code
  algos morse encode "hello world"`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			l, err := newLogger(a.verbose)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			a.log = l
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable development (debug) logging")

	root.AddCommand(
		newFibCmd(a),
		newSortCmd(a),
		newSearchCmd(a),
		newMorseCmd(),
	)
	return root
}

// newLogger returns a development logger when verbose, production otherwise.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}
