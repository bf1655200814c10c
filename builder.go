package blist

import (
	"errors"

	"github.com/npillmayer/blist/tree"
)

// ErrBuilderCompleted signals that a Builder's List method has already been
// called and it is illegal to append further elements.
var ErrBuilderCompleted = errors.New("blist: builder already completed")

// Builder accumulates elements for bulk, O(n) list construction — the
// generic analogue of cords.Builder, backed by tree.InitFromSlice's forest
// scaffold instead of one InsertAt call per element. Pushing elements in
// one at a time would cost O(n log n) overall; accumulating first and
// committing once lets the forest pack leaves directly into a balanced
// shape in linear time.
type Builder[T any] struct {
	cfg  tree.Config
	buf  []T
	done bool
}

// NewBuilder creates an empty Builder using cfg's tree configuration.
func NewBuilder[T any](cfg tree.Config) *Builder[T] {
	return &Builder[T]{cfg: cfg}
}

// Append appends items to the end of the sequence under construction.
func (b *Builder[T]) Append(items ...T) error {
	if b.done {
		return ErrBuilderCompleted
	}
	b.buf = append(b.buf, items...)
	return nil
}

// Prepend prepends items to the beginning of the sequence under
// construction, preserving their given order.
func (b *Builder[T]) Prepend(items ...T) error {
	if b.done {
		return ErrBuilderCompleted
	}
	b.buf = append(append(make([]T, 0, len(items)+len(b.buf)), items...), b.buf...)
	return nil
}

// List finishes the build and returns the resulting List. It is legal to
// call List more than once; later Append/Prepend calls after the first
// List call are rejected.
func (b *Builder[T]) List() (*List[T], error) {
	b.done = true
	return FromSlice[T](b.cfg, b.buf)
}

// Reset drops the in-progress build and prepares the Builder for a fresh
// one.
func (b *Builder[T]) Reset() {
	b.buf = nil
	b.done = false
}
