package blist

import (
	"github.com/npillmayer/blist/tree"
)

// Seq is a pull-based foreign sequence: each call returns the next item, a
// flag reporting whether one was available, and any error the source
// itself encountered producing it. ExtendSeq drains one item at a time and
// stops at the first (ok=false, err=nil) or the first non-nil error,
// propagating the latter rather than silently truncating — the "foreign-
// iterator errors propagate via Go's normal error return" contract.
type Seq[T any] func() (T, bool, error)

// SeqFromSlice adapts a plain Go slice into a Seq, for callers that have
// one but want to go through the same foreign-sequence path as any other
// iterable (e.g. to exercise ExtendSeq's iteration-error contract in tests).
func SeqFromSlice[T any](items []T) Seq[T] {
	i := 0
	return func() (T, bool, error) {
		var zero T
		if i >= len(items) {
			return zero, false, nil
		}
		v := items[i]
		i++
		return v, true, nil
	}
}

// Iterator is a depth-first cursor over a snapshot of a List, taken by
// sharing (not cloning) internal nodes at construction time: a later
// mutation of the originating List has no effect on an Iterator already in
// flight, and vice versa. Leaf/non-leaf transmutation of the underlying
// tree mid-iteration is undefined behavior for any other object holding the
// same snapshot concurrently, matching the single-owner resource model.
type Iterator[T any] struct {
	it *tree.Iterator[T]
}

// Iterator returns a forward iterator over a snapshot of l.
func (l *List[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{it: l.tr.Iter()}
}

// ReverseIterator returns a reverse iterator over a snapshot of l.
func (l *List[T]) ReverseIterator() *Iterator[T] {
	return &Iterator[T]{it: l.tr.Reversed()}
}

// Next returns the next item and advances the cursor, or reports done.
func (it *Iterator[T]) Next() (T, bool) { return it.it.Next() }

// LengthHint reports the number of items not yet visited.
func (it *Iterator[T]) LengthHint() int { return it.it.LengthHint() }

// Release drops the iterator's snapshot share. Safe to call more than once.
func (it *Iterator[T]) Release() { it.it.Release() }
