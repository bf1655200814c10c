package tree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("tree: invalid configuration")
	// ErrIndexOutOfRange signals an invalid positional index.
	ErrIndexOutOfRange = errors.New("tree: index out of range")
	// ErrLengthOverflow signals that an operation would grow a tree past the
	// maximum representable length.
	ErrLengthOverflow = errors.New("tree: length overflow")
	// ErrIncompatibleConfig signals an operation (e.g. Concat) between two
	// trees built with different configurations.
	ErrIncompatibleConfig = errors.New("tree: incompatible configuration")
)
