package memo_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/algorithms/memo"
)

// BenchmarkMemoize_Fib90 measures a fresh cache per iteration.
func BenchmarkMemoize_Fib90(b *testing.B) {
	step, _ := fibCounted()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		c := memo.NewCache[int, uint64]()
		if _, err := memo.Memoize(c, step, 90); err != nil {
			b.Fatalf("Memoize failed: %v", err)
		}
	}
}

// BenchmarkShared_HitParallel measures the read path under contention.
func BenchmarkShared_HitParallel(b *testing.B) {
	load := func(_ context.Context, _ *memo.Shared[int, int], k int) (int, error) {
		return k * 2, nil
	}
	tbl, err := memo.NewShared(load, memo.IntKey[int], memo.WithShards(32))
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()
	for k := 0; k < 1024; k++ {
		_, _ = tbl.Get(ctx, k)
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		k := 0
		for pb.Next() {
			if _, err := tbl.Get(ctx, k&1023); err != nil {
				b.Fatal(err)
			}
			k++
		}
	})
}
