package main

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/katalvlaran/algorithms/dataset"
	"github.com/katalvlaran/algorithms/search"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var searchAlgos = map[string]func([]int, int) (int, bool){
	"binary":      search.Binary[int],
	"linear":      search.Linear[int],
	"jump":        search.Jump[int],
	"exponential": search.Exponential[int],
	"struzik":     search.Struzik[int],
	"ternary":     search.Ternary[int],
	"fibonacci":   search.Fibonacci[int],
}

type searchOptions struct {
	algo   string
	n      int
	target int
}

func newSearchCmd(a *app) *cobra.Command {
	var o searchOptions
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search the even numbers 0, 2, …, 2(n-1) for a target",
		Long: "Search the sorted even numbers below 2n for target.\n\nAlgorithms: " +
			strings.Join(slices.Sorted(maps.Keys(searchAlgos)), ", "),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSearch(a, o, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&o.algo, "algo", "a", "binary", "algorithm name")
	cmd.Flags().IntVarP(&o.n, "n", "n", 1000, "number of values")
	cmd.Flags().IntVarP(&o.target, "target", "t", 42, "value to find")
	return cmd
}

func runSearch(a *app, o searchOptions, w io.Writer) error {
	fn, ok := searchAlgos[o.algo]
	if !ok {
		return fmt.Errorf("search: unknown algorithm %q", o.algo)
	}
	data := dataset.Sorted(o.n)
	for i := range data {
		data[i] *= 2
	}
	idx, found := fn(data, o.target)
	a.log.Debug("searched", zap.String("algo", o.algo), zap.Int("target", o.target), zap.Bool("found", found))
	if !found {
		fmt.Fprintf(w, "%d not found\n", o.target)
		return nil
	}
	fmt.Fprintf(w, "%d found at index %d\n", o.target, idx)
	return nil
}
