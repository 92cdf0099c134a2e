package memo

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// LoadFunc computes the value for k. It receives the table so that recursive
// relations can resolve their sub-problems through s.Get, exactly like the
// function passed to Memoize receives its Cache.
type LoadFunc[K comparable, V any] func(ctx context.Context, s *Shared[K, V], k K) (V, error)

// Stats is a point-in-time snapshot of a Shared table's counters.
type Stats struct {
	Hits       int64
	Misses     int64
	Loads      int64
	LoadErrors int64
	Entries    int
}

// shard is one lock domain of a Shared table.
type shard[K comparable, V any] struct {
	mu sync.RWMutex
	m  map[K]V
}

// Shared is a concurrency-safe memo table.
//
// Keys are spread over a power-of-two number of shards by xxhash of their
// string encoding; each shard is a map behind an RWMutex. Concurrent Gets for
// the same missing key are coalesced with singleflight, and the load re-checks
// the shard before running, so the LoadFunc runs at most once per key while
// the entry is resident. Shard locks are never held during a load.
//
// Entries are inserted once and never overwritten; failed loads store nothing.
type Shared[K comparable, V any] struct {
	load   LoadFunc[K, V]
	keyFn  KeyFunc[K]
	shards []*shard[K, V]
	mask   uint64
	group  singleflight.Group
	rec    *recorder
	log    *zap.Logger
	name   string

	hits       atomic.Int64
	misses     atomic.Int64
	loads      atomic.Int64
	loadErrors atomic.Int64
}

// NewShared builds a Shared table around load. keyFn must encode distinct
// keys to distinct strings (see IntKey, UintKey, StringKey).
//
// Errors:
//   - ErrNilFunc if load or keyFn is nil.
//   - any error from creating the metric instruments.
func NewShared[K comparable, V any](load LoadFunc[K, V], keyFn KeyFunc[K], opts ...Option) (*Shared[K, V], error) {
	if load == nil || keyFn == nil {
		return nil, ErrNilFunc
	}
	cfg := newSharedConfig(opts...)

	rec, err := newRecorder(cfg.meterProvider, cfg.name)
	if err != nil {
		return nil, fmt.Errorf("memo: create instruments: %w", err)
	}

	s := &Shared[K, V]{
		load:   load,
		keyFn:  keyFn,
		shards: make([]*shard[K, V], cfg.shards),
		mask:   uint64(cfg.shards - 1),
		rec:    rec,
		log:    cfg.logger.With(zap.String("memo.table", cfg.name)),
		name:   cfg.name,
	}
	for i := range s.shards {
		s.shards[i] = &shard[K, V]{m: make(map[K]V)}
	}

	return s, nil
}

// Name returns the table label used in metrics and logs.
func (s *Shared[K, V]) Name() string {
	return s.name
}

// Get returns the stored value for k, loading it on a miss.
//
// ctx is checked before any work and is handed to the LoadFunc. When several
// goroutines wait on the same key, the load runs under the context of the
// goroutine that started it.
//
// Steps:
//  1. Encode k and pick its shard by xxhash of the encoding.
//  2. Read-locked lookup; a hit returns at once.
//  3. On a miss, join or start the singleflight call keyed by the encoding.
//  4. Inside the call, re-check the shard, then load and insert.
//
// Complexity: O(1) on a hit; on a miss, one LoadFunc call plus whatever
// sub-lookups it makes.
func (s *Shared[K, V]) Get(ctx context.Context, k K) (V, error) {
	var zero V
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	// Locate the shard
	enc := s.keyFn(k)
	sh := s.shards[shardIndex(enc, s.mask)]

	// Fast path: resident entry
	if v, ok := sh.lookup(k); ok {
		s.hits.Add(1)
		s.rec.hit(ctx)
		return v, nil
	}
	s.misses.Add(1)
	s.rec.miss(ctx)

	// Slow path: one load per key, shared by every concurrent caller.
	// No shard lock is held here, so the load may call s.Get recursively.
	res, err, _ := s.group.Do(enc, func() (any, error) {
		// A load for k may have finished between our miss and this call.
		if v, ok := sh.lookup(k); ok {
			return v, nil
		}

		s.loads.Add(1)
		s.rec.load(ctx)
		v, err := s.load(ctx, s, k)
		if err != nil {
			s.loadErrors.Add(1)
			s.rec.loadError(ctx)
			s.log.Debug("load failed", zap.String("key", enc), zap.Error(err))
			return nil, err
		}

		// insert keeps an entry that won a race with us
		return sh.insert(k, v), nil
	})
	if err != nil {
		return zero, err
	}

	// Unwrap the shared result; a nil any is the zero value of an
	// interface or pointer V.
	if res == nil {
		return zero, nil
	}
	v, ok := res.(V)
	if !ok {
		return zero, fmt.Errorf("%w: %T", ErrBadValueType, res)
	}

	return v, nil
}

// Peek returns the stored value for k without loading.
func (s *Shared[K, V]) Peek(k K) (V, bool) {
	return s.shards[shardIndex(s.keyFn(k), s.mask)].lookup(k)
}

// Len returns the number of stored entries across all shards.
func (s *Shared[K, V]) Len() int {
	n := 0
	for _, sh := range s.shards {
		sh.mu.RLock()
		n += len(sh.m)
		sh.mu.RUnlock()
	}
	return n
}

// Stats returns a snapshot of the table counters.
func (s *Shared[K, V]) Stats() Stats {
	return Stats{
		Hits:       s.hits.Load(),
		Misses:     s.misses.Load(),
		Loads:      s.loads.Load(),
		LoadErrors: s.loadErrors.Load(),
		Entries:    s.Len(),
	}
}

// lookup reads k under the shard read lock.
func (sh *shard[K, V]) lookup(k K) (V, bool) {
	sh.mu.RLock()
	v, ok := sh.m[k]
	sh.mu.RUnlock()
	return v, ok
}

// insert stores v under k unless an entry exists, and returns the resident value.
func (sh *shard[K, V]) insert(k K, v V) V {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	if existing, ok := sh.m[k]; ok {
		return existing
	}
	sh.m[k] = v
	return v
}
