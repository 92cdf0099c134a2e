package memo_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/katalvlaran/algorithms/memo"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// SharedSuite exercises memo.Shared under sequential and concurrent access.
type SharedSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *SharedSuite) SetupTest() {
	s.ctx = context.Background()
}

// sharedFib builds a Fibonacci table whose load recurses through the table.
func sharedFib(counter *atomic.Int64, opts ...memo.Option) (*memo.Shared[int, uint64], error) {
	load := func(ctx context.Context, t *memo.Shared[int, uint64], n int) (uint64, error) {
		counter.Add(1)
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
	return memo.NewShared(load, memo.IntKey[int], opts...)
}

// TestRecursiveLoad checks the recursive relation resolves through the table
// with one load per key.
func (s *SharedSuite) TestRecursiveLoad() {
	var loads atomic.Int64
	tbl, err := sharedFib(&loads, memo.WithShards(4))
	s.Require().NoError(err)

	v, err := tbl.Get(s.ctx, 90)
	s.Require().NoError(err)
	s.Equal(uint64(2880067194370816120), v, "F(90)")
	s.Equal(int64(91), loads.Load(), "one load per key 0..90")
	s.Equal(91, tbl.Len())

	// Hit path: no more loads.
	v, err = tbl.Get(s.ctx, 45)
	s.Require().NoError(err)
	s.Equal(uint64(1134903170), v)
	s.Equal(int64(91), loads.Load())

	st := tbl.Stats()
	s.Equal(int64(91), st.Loads)
	s.Equal(91, st.Entries)
	s.GreaterOrEqual(st.Hits, int64(1))
}

// TestConcurrentSameKey verifies singleflight coalescing: many goroutines
// requesting one missing key trigger exactly one load.
func (s *SharedSuite) TestConcurrentSameKey() {
	var loads atomic.Int64
	release := make(chan struct{})
	load := func(_ context.Context, _ *memo.Shared[string, int], k string) (int, error) {
		loads.Add(1)
		<-release
		return len(k), nil
	}
	tbl, err := memo.NewShared(load, memo.StringKey[string])
	s.Require().NoError(err)

	const workers = 64
	var wg sync.WaitGroup
	results := make([]int, workers)
	errs := make([]error, workers)
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = tbl.Get(context.Background(), "gopher")
		}(i)
	}
	// Give the goroutines time to pile up on the in-flight load.
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	for i := 0; i < workers; i++ {
		s.NoError(errs[i])
		s.Equal(6, results[i])
	}
	s.Equal(int64(1), loads.Load(), "load must run once per key")
	s.Equal(1, tbl.Len())
}

// TestConcurrentRecursive runs the recursive table from many goroutines at
// different entry points.
func (s *SharedSuite) TestConcurrentRecursive() {
	var loads atomic.Int64
	tbl, err := sharedFib(&loads)
	s.Require().NoError(err)

	var wg sync.WaitGroup
	for n := 0; n <= 80; n++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, _ = tbl.Get(context.Background(), n)
		}(n)
	}
	wg.Wait()

	s.Equal(int64(81), loads.Load())
	v, ok := tbl.Peek(80)
	s.True(ok)
	s.Equal(uint64(23416728348467685), v)
}

// TestLoadErrorNotStored verifies failures propagate and are retried later.
func (s *SharedSuite) TestLoadErrorNotStored() {
	boom := errors.New("boom")
	var fail atomic.Bool
	fail.Store(true)
	load := func(_ context.Context, _ *memo.Shared[int, int], k int) (int, error) {
		if fail.Load() {
			return 0, boom
		}
		return k + 1, nil
	}
	tbl, err := memo.NewShared(load, memo.IntKey[int])
	s.Require().NoError(err)

	_, err = tbl.Get(s.ctx, 1)
	s.ErrorIs(err, boom)
	_, ok := tbl.Peek(1)
	s.False(ok)

	fail.Store(false)
	v, err := tbl.Get(s.ctx, 1)
	s.NoError(err)
	s.Equal(2, v)
	s.Equal(int64(1), tbl.Stats().LoadErrors)
}

// TestCanceledContext ensures a canceled context short-circuits before loading.
func (s *SharedSuite) TestCanceledContext() {
	var loads atomic.Int64
	tbl, err := sharedFib(&loads)
	s.Require().NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = tbl.Get(ctx, 10)
	s.ErrorIs(err, context.Canceled)
	s.Zero(loads.Load())
}

// TestConstructorValidation covers nil functions and panicking options.
func (s *SharedSuite) TestConstructorValidation() {
	_, err := memo.NewShared[int, int](nil, memo.IntKey[int])
	s.ErrorIs(err, memo.ErrNilFunc)

	_, err = memo.NewShared(func(context.Context, *memo.Shared[int, int], int) (int, error) { return 0, nil }, nil)
	s.ErrorIs(err, memo.ErrNilFunc)

	s.Panics(func() { memo.WithShards(0) })
	s.Panics(func() { memo.WithLogger(nil) })
	s.Panics(func() { memo.WithMeterProvider(nil) })
}

func TestSharedSuite(t *testing.T) {
	suite.Run(t, new(SharedSuite))
}

// TestKeyEncoders checks the helper encoders are injective on simple inputs.
func TestKeyEncoders(t *testing.T) {
	require.Equal(t, "-12", memo.IntKey(int64(-12)))
	require.Equal(t, "12", memo.UintKey(uint8(12)))
	require.Equal(t, "k", memo.StringKey("k"))
	require.NotEqual(t, memo.IntKey(1), memo.IntKey(11))
}
