package fibonacci

import "errors"

// Sentinel errors returned (wrapped) by the fixed-width strategies.
var (
	// ErrNegativeIndex indicates n < 0.
	ErrNegativeIndex = errors.New("fibonacci: negative index")

	// ErrIndexOutOfRange indicates F(n) does not fit in uint64 (n > MaxIndex).
	ErrIndexOutOfRange = errors.New("fibonacci: index out of uint64 range")

	// ErrUnknownStrategy indicates ByName was given an unregistered name.
	ErrUnknownStrategy = errors.New("fibonacci: unknown strategy")
)
