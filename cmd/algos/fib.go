package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/katalvlaran/algorithms/fibonacci"
	"github.com/katalvlaran/algorithms/memo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Strategy names accepted by fib beyond the registered fixed-width ones.
const (
	strategyAll    = "all"
	strategyBig    = "big"
	strategyShared = "shared"
)

type fibOptions struct {
	n        int
	strategy string
	metrics  bool
}

func newFibCmd(a *app) *cobra.Command {
	var o fibOptions
	cmd := &cobra.Command{
		Use:   "fib",
		Short: "Compute F(n) with one or all strategies and compare them",
		Long: `Compute the nth Fibonacci number (F(0)=0, F(1)=1) with the chosen
strategy, reporting time taken and agreement with the iterative reference.

Strategies: all, recursive, iterative, memoized, analytic, big, shared.
"all" skips recursive above n=40 and flags analytic drift above n=70.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFib(cmd.Context(), a, o, cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVarP(&o.n, "n", "n", 30, "Fibonacci index")
	cmd.Flags().StringVarP(&o.strategy, "strategy", "s", strategyAll, "strategy name")
	cmd.Flags().BoolVar(&o.metrics, "metrics", false, "print memo OpenTelemetry counters (shared strategy)")
	return cmd
}

func runFib(ctx context.Context, a *app, o fibOptions, w io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	names := []string{o.strategy}
	if o.strategy == strategyAll {
		names = names[:0]
		for _, s := range fibonacci.Strategies() {
			names = append(names, s.Name)
		}
		names = append(names, strategyBig, strategyShared)
	}

	want, refErr := fibonacci.Iterative(o.n)
	for _, name := range names {
		start := time.Now()
		var (
			got  string
			same bool
			err  error
		)
		switch name {
		case strategyBig:
			got, same, err = fibBig(o.n, want, refErr)
		case strategyShared:
			got, same, err = fibShared(ctx, a, o, w, want)
		default:
			var s fibonacci.Strategy
			s, err = fibonacci.ByName(name)
			if err != nil {
				return fmt.Errorf("fib: %w (want one of %s)", err, strings.Join(validFibNames(), ", "))
			}
			if o.strategy == strategyAll && o.n > s.Practical {
				fmt.Fprintf(w, "%-9s skipped (n > %d)\n", name, s.Practical)
				continue
			}
			var v uint64
			v, err = s.Fn(o.n)
			got, same = fmt.Sprint(v), v == want
		}
		elapsed := time.Since(start)
		if err != nil {
			a.log.Debug("strategy failed", zap.String("strategy", name), zap.Int("n", o.n), zap.Error(err))
			if o.strategy != strategyAll {
				return err
			}
			fmt.Fprintf(w, "%-9s error: %v\n", name, err)
			continue
		}

		status := "ok"
		if refErr == nil && !same {
			status = "DRIFT"
		}
		fmt.Fprintf(w, "%-9s %s  %s  %v\n", name, got, status, elapsed)
		a.log.Debug("strategy done", zap.String("strategy", name), zap.Duration("elapsed", elapsed))
	}
	return nil
}

// fibBig computes the exact value; agreement is only checked inside uint64.
func fibBig(n int, want uint64, refErr error) (string, bool, error) {
	v, err := fibonacci.Big(n)
	if err != nil {
		return "", false, err
	}
	return v.String(), refErr != nil || (v.IsUint64() && v.Uint64() == want), nil
}

// fibShared resolves n through a concurrency-safe memo, optionally exporting
// its counters to w.
func fibShared(ctx context.Context, a *app, o fibOptions, w io.Writer, want uint64) (string, bool, error) {
	mp, shutdown, err := newMeterProvider(o.metrics, w)
	if err != nil {
		return "", false, err
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			a.log.Warn("meter provider shutdown", zap.Error(err))
		}
	}()

	s, err := fibonacci.NewShared(memo.WithMeterProvider(mp), memo.WithLogger(a.log))
	if err != nil {
		return "", false, err
	}
	v, err := s.Get(ctx, o.n)
	if err != nil {
		return "", false, err
	}
	st := s.Stats()
	a.log.Info("shared memo",
		zap.Int64("hits", st.Hits),
		zap.Int64("misses", st.Misses),
		zap.Int64("loads", st.Loads),
		zap.Int("entries", st.Entries),
	)
	return fmt.Sprint(v), v == want, nil
}

func validFibNames() []string {
	names := []string{strategyAll}
	for _, s := range fibonacci.Strategies() {
		names = append(names, s.Name)
	}
	names = append(names, strategyBig, strategyShared)
	return names
}
