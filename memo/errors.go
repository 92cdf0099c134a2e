// SPDX-License-Identifier: MIT
// Package memo: sentinel errors.
//
// Callers branch on these with errors.Is. Load failures coming from user
// functions are never wrapped by Memoize; they propagate unchanged.

package memo

import "errors"

var (
	// ErrNilCache is returned when Memoize receives a nil Cache.
	ErrNilCache = errors.New("memo: cache is nil")

	// ErrNilFunc is returned when Memoize receives a nil function or Computer.
	ErrNilFunc = errors.New("memo: function is nil")

	// ErrBadValueType is returned by Shared.Get when a coalesced load yields a
	// value that is not of the table's value type. It indicates a bug.
	ErrBadValueType = errors.New("memo: unexpected value type")
)
