package arith

import "errors"

var (
	// ErrNegative indicates an argument that must be non-negative was not.
	ErrNegative = errors.New("arith: negative argument")

	// ErrOverflow indicates the result does not fit the return type.
	ErrOverflow = errors.New("arith: result overflows")

	// ErrEmpty indicates an aggregate was requested over no values.
	ErrEmpty = errors.New("arith: no values")
)
