package fibonacci

import (
	"context"

	"github.com/katalvlaran/algorithms/memo"
)

// Shared is a concurrency-safe Fibonacci memo. Unlike Memoized, its table
// outlives a single call and may be queried from many goroutines.
type Shared struct {
	tbl *memo.Shared[int, uint64]
}

// NewShared builds a Shared memo; opts configure the underlying memo.Shared
// (shards, meter provider, logger, table name).
func NewShared(opts ...memo.Option) (*Shared, error) {
	opts = append([]memo.Option{memo.WithName("fibonacci")}, opts...)
	tbl, err := memo.NewShared(sharedStep, memo.IntKey[int], opts...)
	if err != nil {
		return nil, err
	}
	return &Shared{tbl: tbl}, nil
}

// Get returns F(n), computing each missing index once across all callers.
// It returns the same errors as Iterative for n outside [0, MaxIndex], and
// ctx.Err() if ctx is done before the lookup starts.
//
// Complexity: O(1) for a resident n, O(n) loads on a cold table.
func (s *Shared) Get(ctx context.Context, n int) (uint64, error) {
	if err := checkIndex("Shared", n); err != nil {
		return 0, err
	}
	return s.tbl.Get(ctx, n)
}

// Stats reports the underlying table counters.
func (s *Shared) Stats() memo.Stats {
	return s.tbl.Stats()
}

// sharedStep is fibStep over the shared table: both sub-indices go through
// t.Get, so concurrent callers share partial results.
func sharedStep(ctx context.Context, t *memo.Shared[int, uint64], n int) (uint64, error) {
	if n < 2 {
		return uint64(n), nil
	}
	a, err := t.Get(ctx, n-1)
	if err != nil {
		return 0, err
	}
	b, err := t.Get(ctx, n-2)
	if err != nil {
		return 0, err
	}
	return a + b, nil
}
