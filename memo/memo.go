package memo

// Cache is a mutable key→result table owned by a single computation session.
// It is created empty immediately before a top-level call and discarded when
// that call returns. At most one entry exists per key; Memoize never
// overwrites an existing entry.
//
// Cache is a plain map and is NOT safe for concurrent use. See Shared for the
// concurrent form.
type Cache[K comparable, V any] map[K]V

// NewCache returns an empty Cache.
func NewCache[K comparable, V any]() Cache[K, V] {
	return make(Cache[K, V])
}

// Has reports whether k has a stored result.
func (c Cache[K, V]) Has(k K) bool {
	_, ok := c[k]
	return ok
}

// Keys returns the stored keys in map order (unspecified).
func (c Cache[K, V]) Keys() []K {
	keys := make([]K, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	return keys
}

// Memoize returns the cached result for arg if present; otherwise it invokes
// fn(c, arg), stores the result under arg and returns it.
//
// fn receives the same cache so that it can memoize its own sub-calls by
// calling back into Memoize. fn is invoked at most once per distinct arg for
// the lifetime of c. When fn fails, nothing is stored and the error is
// returned unchanged.
//
// Errors:
//   - ErrNilCache if c is nil.
//   - ErrNilFunc  if fn is nil.
//   - any error returned by fn.
//
// Complexity: O(1) expected map work plus the cost of fn on a miss.
func Memoize[K comparable, V any](c Cache[K, V], fn func(Cache[K, V], K) (V, error), arg K) (V, error) {
	var zero V
	if c == nil {
		return zero, ErrNilCache
	}
	if fn == nil {
		return zero, ErrNilFunc
	}

	// Hit: return a copy of the stored value without invoking fn.
	if v, ok := c[arg]; ok {
		return v, nil
	}

	v, err := fn(c, arg)
	if err != nil {
		return zero, err
	}
	// fn may have stored arg itself through a recursive path; keep the first entry.
	if existing, ok := c[arg]; ok {
		return existing, nil
	}
	c[arg] = v

	return v, nil
}

// Computer is a named function object computing a result for one key, given
// the cache it may recurse through. It is the interface form of the function
// accepted by Memoize, for callers that prefer a struct with state (e.g. a
// call counter or a lookup table) over a closure.
type Computer[K comparable, V any] interface {
	Compute(c Cache[K, V], k K) (V, error)
}

// Func adapts an ordinary function to the Computer interface.
type Func[K comparable, V any] func(Cache[K, V], K) (V, error)

// Compute calls f(c, k).
func (f Func[K, V]) Compute(c Cache[K, V], k K) (V, error) {
	return f(c, k)
}

// MemoizeComputer is Memoize for a Computer.
func MemoizeComputer[K comparable, V any](c Cache[K, V], comp Computer[K, V], arg K) (V, error) {
	if comp == nil {
		var zero V
		return zero, ErrNilFunc
	}
	return Memoize(c, comp.Compute, arg)
}
