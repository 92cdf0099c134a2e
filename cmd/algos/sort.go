package main

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/katalvlaran/algorithms/dataset"
	"github.com/katalvlaran/algorithms/sorts"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// sortAlgos maps CLI names to in-place int sorts.
var sortAlgos = map[string]func([]int, int64) error{
	"bubble":    adapt(sorts.Bubble[int]),
	"cocktail":  adapt(sorts.CocktailShaker[int]),
	"gnome":     adapt(sorts.Gnome[int]),
	"comb":      adapt(sorts.Comb[int]),
	"insertion": adapt(sorts.Insertion[int]),
	"shell":     adapt(sorts.Shell[int]),
	"selection": adapt(sorts.Selection[int]),
	"cycle":     adapt(func(a []int) { sorts.Cycle(a) }),
	"stooge":    adapt(sorts.Stooge[int]),
	"quick":     adapt(sorts.Quick[int]),
	"merge":     adapt(sorts.Merge[int]),
	"heap":      adapt(sorts.HeapOrdered[int]),
	"bucket":    adapt(sorts.BucketInts),
	"wiggle":    adapt(sorts.Wiggle[int]),
	"bitonic":   func(a []int, _ int64) error { return sorts.Bitonic(a) },
	"counting":  func(a []int, _ int64) error { return sorts.Counting(a) },
	"bead":      func(a []int, _ int64) error { return sorts.Bead(a) },
	"bogo": func(a []int, seed int64) error {
		return sorts.Bogo(a, sorts.WithSeed(seed), sorts.WithMaxShuffles(1_000_000))
	},
}

func adapt(fn func([]int)) func([]int, int64) error {
	return func(a []int, _ int64) error {
		fn(a)
		return nil
	}
}

type sortOptions struct {
	algo string
	n    int
	seed int64
}

// maxPrinted bounds how many elements are echoed.
const maxPrinted = 20

func newSortCmd(a *app) *cobra.Command {
	var o sortOptions
	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Sort seeded random integers with the chosen algorithm",
		Long: "Sort n seeded random integers in [0, 1000).\n\nAlgorithms: " +
			strings.Join(slices.Sorted(maps.Keys(sortAlgos)), ", "),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSort(a, o, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&o.algo, "algo", "a", "quick", "algorithm name")
	cmd.Flags().IntVarP(&o.n, "n", "n", 16, "number of values")
	cmd.Flags().Int64Var(&o.seed, "seed", 1, "RNG seed (0 means 1)")
	return cmd
}

func runSort(a *app, o sortOptions, w io.Writer) error {
	fn, ok := sortAlgos[o.algo]
	if !ok {
		return fmt.Errorf("sort: unknown algorithm %q", o.algo)
	}
	data := dataset.Random(o.n, dataset.WithSeed(o.seed))
	fmt.Fprintf(w, "input:  %v\n", head(data))

	start := time.Now()
	if err := fn(data, o.seed); err != nil {
		return fmt.Errorf("sort %s: %w", o.algo, err)
	}
	elapsed := time.Since(start)
	a.log.Debug("sorted", zap.String("algo", o.algo), zap.Int("n", o.n), zap.Duration("elapsed", elapsed))

	fmt.Fprintf(w, "output: %v\n", head(data))
	fmt.Fprintf(w, "sorted: %t  (%v)\n", sorts.IsSorted(data), elapsed)
	return nil
}

func head(a []int) []int {
	return a[:min(len(a), maxPrinted)]
}
