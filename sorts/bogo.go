package sorts

import (
	"cmp"

	"github.com/katalvlaran/algorithms/dataset"
)

// Bogo shuffles a until it happens to be sorted. With WithMaxShuffles it
// returns ErrGaveUp once the limit is spent, leaving a in its last shuffled
// order.
//
// Complexity: O(n·n!) expected.
func Bogo[T cmp.Ordered](a []T, opts ...BogoOption) error {
	cfg := newBogoConfig(opts...)
	for shuffles := 0; !IsSorted(a); shuffles++ {
		if cfg.maxShuffles > 0 && shuffles == cfg.maxShuffles {
			return ErrGaveUp
		}
		dataset.Shuffle(a, cfg.rng)
	}
	return nil
}
