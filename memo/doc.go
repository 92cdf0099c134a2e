// Package memo provides generic cache-or-compute wrappers for pure functions,
// with an explicit, caller-owned cache that recursive functions thread through
// their own sub-calls.
//
// 🚀 What is memoization?
//
//	Memoization caches the result of a deterministic function call keyed by
//	its argument, so repeated calls with the same argument skip recomputation.
//	For recursive relations (Fibonacci, edit distance, partition counts…)
//	this collapses an exponential call tree into one evaluation per distinct
//	sub-problem.
//
// ✨ Two flavours:
//
//   - Memoize / MemoizeComputer: single-owner, synchronous. The caller creates
//     a Cache, passes it to Memoize together with a function that receives the
//     same Cache, and discards the Cache when the top-level call returns.
//     Not safe for concurrent use; no locking overhead.
//   - Shared: a concurrency-safe memo table. Keys are spread over shards
//     (xxhash of the encoded key), each guarded by an RWMutex; concurrent
//     loads of the same key are coalesced with singleflight so the load
//     function still runs once per key. Optional OpenTelemetry counters and
//     zap debug logging are wired through functional options.
//
// ⚙️ Usage:
//
//	func fib(c memo.Cache[int, uint64], n int) (uint64, error) {
//	    if n < 2 {
//	        return uint64(n), nil
//	    }
//	    a, err := memo.Memoize(c, fib, n-1)
//	    if err != nil {
//	        return 0, err
//	    }
//	    b, err := memo.Memoize(c, fib, n-2)
//	    if err != nil {
//	        return 0, err
//	    }
//	    return a + b, nil
//	}
//
//	v, err := memo.Memoize(memo.NewCache[int, uint64](), fib, 50)
//
// Guarantees:
//
//   - fn is invoked at most once per distinct key for the lifetime of a Cache.
//   - An entry, once stored, is never overwritten.
//   - A failed computation stores nothing and its error propagates unchanged.
//
// Values are returned by copy. For reference-typed values (slices, maps,
// pointers) the copy shares backing storage with the cached entry; callers
// must not mutate it.
package memo
