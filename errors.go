package blist

import "errors"

var (
	// ErrIndexOutOfRange signals an invalid positional index passed to Get,
	// Set, Delete, or PopAt. Slice operations clamp their bounds instead.
	ErrIndexOutOfRange = errors.New("blist: index out of range")
	// ErrValueNotFound signals that Index or Remove could not locate a
	// matching element.
	ErrValueNotFound = errors.New("blist: value not found")
	// ErrLengthOverflow signals that an operation would grow a list past the
	// maximum representable length.
	ErrLengthOverflow = errors.New("blist: length overflow")
	// ErrTypeMismatch is the sentinel for a foreign sequence whose element
	// type cannot be reconciled with T. Equal and Compare take a []T and
	// report only a bool/int, so no function in this package returns it.
	ErrTypeMismatch = errors.New("blist: type mismatch")
	// ErrSliceLengthMismatch is the sentinel for a replacement sequence
	// whose length does not fit the replaced range. SetSlice accepts any
	// replacement length, so no function in this package returns it.
	ErrSliceLengthMismatch = errors.New("blist: slice length mismatch")
	// ErrListModifiedDuringSort signals that Sort observed the list being
	// mutated by its own Less/Key callback; the list is left in an
	// unspecified but still valid state and is the only operation that
	// does not promise content preservation on error.
	ErrListModifiedDuringSort = errors.New("blist: list modified during sort")
)
