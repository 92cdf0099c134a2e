package sorts

import "errors"

// Sentinel errors. Inputs are left untouched when one is returned.
var (
	// ErrNotPowerOfTwo indicates Bitonic was given a length that is not 2^k.
	ErrNotPowerOfTwo = errors.New("sorts: length is not a power of two")

	// ErrOutOfRange indicates Bucket was given a value outside [0, 1).
	ErrOutOfRange = errors.New("sorts: value outside [0, 1)")

	// ErrNegativeValue indicates Counting or Bead was given a negative value.
	ErrNegativeValue = errors.New("sorts: negative value")

	// ErrGaveUp indicates Bogo hit its shuffle limit before the slice sorted.
	ErrGaveUp = errors.New("sorts: shuffle limit reached")
)
