package blist

import (
	"fmt"
	"math"

	"github.com/npillmayer/blist/tree"
)

// List is a generic, copy-on-write, B+-tree backed sequence. The zero value
// is not valid; use New. A List is single-owner: concurrent operations on
// the same List are not defined, matching the container's cooperative,
// single-threaded resource model.
type List[T any] struct {
	tr  *tree.Tree[T]
	idx *indexExtension[T]
	gen uint64 // bumped on every structural mutation; snapshotted by Sort
}

// New creates an empty list with the given tree configuration. A zero
// Config picks tree.DefaultLimit.
func New[T any](cfg tree.Config) (*List[T], error) {
	t, err := tree.New[T](cfg, func(v T) { releaseElement(v) })
	if err != nil {
		return nil, err
	}
	return &List[T]{tr: t, idx: newIndexExtension[T](t.Config().Limit/2, t.Len())}, nil
}

// FromSlice bulk-constructs a list from items in O(n), via the forest
// scaffold rather than one InsertAt call per item.
func FromSlice[T any](cfg tree.Config, items []T) (*List[T], error) {
	t, err := tree.InitFromSlice[T](cfg, func(v T) { releaseElement(v) }, items)
	if err != nil {
		return nil, err
	}
	return &List[T]{tr: t, idx: newIndexExtension[T](t.Config().Limit/2, t.Len())}, nil
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int { return l.tr.Len() }

// normalizeIndex resolves a possibly-negative Python/blist-style index
// (-n <= i < n) against length n, or reports ErrIndexOutOfRange.
func normalizeIndex(i, n int) (int, error) {
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, ErrIndexOutOfRange
	}
	return i, nil
}

// clampInsertIndex clamps an insertion index to [0, n], per spec.md's
// "i clamped to [0,n]" insert contract (never an error).
func clampInsertIndex(i, n int) int {
	if i < 0 {
		i += n
		if i < 0 {
			return 0
		}
	}
	if i > n {
		return n
	}
	return i
}

func clampSliceRange(lo, hi, n int) (int, int) {
	if lo < 0 {
		lo += n
	}
	if hi < 0 {
		hi += n
	}
	if lo < 0 {
		lo = 0
	}
	if hi > n {
		hi = n
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// Get returns a borrowed reference to the element at i.
func (l *List[T]) Get(i int) (T, error) {
	var zero T
	idx, err := normalizeIndex(i, l.tr.Len())
	if err != nil {
		return zero, err
	}
	return l.get_item_fast(idx)
}

// Set replaces the element at i and returns the element it displaced; the
// caller owns the returned value (it is not routed through Release).
func (l *List[T]) Set(i int, v T) (T, error) {
	var zero T
	idx, err := normalizeIndex(i, l.tr.Len())
	if err != nil {
		return zero, err
	}
	return l.ass_item_fast(idx, v)
}

// Delete removes the element at i, releasing it through the deferred-
// release queue.
func (l *List[T]) Delete(i int) error {
	n := l.tr.Len()
	idx, err := normalizeIndex(i, n)
	if err != nil {
		return err
	}
	if err := l.tr.DeleteAt(idx); err != nil {
		return err
	}
	l._ext_index_all()
	l.gen++
	flushReleases()
	return nil
}

// GetSlice returns a new List sharing structure with the receiver in
// [lo,hi), clamped to [0,Len()].
func (l *List[T]) GetSlice(lo, hi int) (*List[T], error) {
	n := l.tr.Len()
	lo, hi = clampSliceRange(lo, hi, n)
	sub, err := l.tr.GetSlice(lo, hi)
	if err != nil {
		return nil, err
	}
	return &List[T]{tr: sub, idx: newIndexExtension[T](sub.Config().Limit/2, sub.Len())}, nil
}

// SetSlice replaces [lo,hi) with the contents of replacement.
func (l *List[T]) SetSlice(lo, hi int, replacement *List[T]) error {
	n := l.tr.Len()
	lo, hi = clampSliceRange(lo, hi, n)
	if err := l.tr.SetSlice(lo, hi, replacement.tr); err != nil {
		return err
	}
	l._ext_index_all()
	l.gen++
	flushReleases()
	return nil
}

// DeleteSlice removes [lo,hi).
func (l *List[T]) DeleteSlice(lo, hi int) error {
	n := l.tr.Len()
	lo, hi = clampSliceRange(lo, hi, n)
	if hi <= lo {
		return nil
	}
	if err := l.tr.DeleteSlice(lo, hi); err != nil {
		return err
	}
	l._ext_index_all()
	l.gen++
	flushReleases()
	return nil
}

// InsertAt inserts items before position i, clamped to [0,Len()].
func (l *List[T]) InsertAt(i int, items ...T) error {
	if len(items) == 0 {
		return nil
	}
	n := l.tr.Len()
	if n > math.MaxInt-len(items) {
		return ErrLengthOverflow
	}
	idx := clampInsertIndex(i, n)
	if err := l.tr.InsertAt(idx, items...); err != nil {
		return err
	}
	l._ext_index_all()
	l.gen++
	return nil
}

// Append adds items to the end of the list, taking the O(height) fast path
// when the rightmost spine is exclusively owned.
func (l *List[T]) Append(items ...T) error {
	if len(items) == 0 {
		return nil
	}
	n := l.tr.Len()
	if n > math.MaxInt-len(items) {
		return ErrLengthOverflow
	}
	if err := l.tr.Append(items...); err != nil {
		return err
	}
	l._ext_index_all()
	l.gen++
	return nil
}

// Extend appends a snapshot of other's contents. Passing the receiver
// itself is well defined: Clone takes the snapshot before any item of it
// is appended, matching "extend(self,self)" in the design.
func (l *List[T]) Extend(other *List[T]) error {
	snapshot := other.tr.Clone()
	defer snapshot.Release()
	merged, err := l.tr.Concat(snapshot)
	if err != nil {
		return err
	}
	l.tr.Release()
	l.tr = merged
	l.idx = newIndexExtension[T](merged.Config().Limit/2, merged.Len())
	l.gen++
	return nil
}

// ExtendSlice appends the elements of a plain Go slice.
func (l *List[T]) ExtendSlice(items []T) error {
	return l.Append(items...)
}

// ExtendSeq appends the elements drained from an arbitrary foreign
// sequence, the general "extend(iterable)" path for sources that aren't
// already a *List[T] (Extend's fast, structure-sharing path) or a plain Go
// slice (ExtendSlice). A mid-drain error from seq is wrapped and returned
// with the receiver left untouched; only a fully-drained sequence gets
// spliced in, via tree.InitFromSeq and a Concat.
func (l *List[T]) ExtendSeq(seq Seq[T]) error {
	drained, err := tree.InitFromSeq[T](l.tr.Config(), func(v T) { releaseElement(v) }, seq)
	if err != nil {
		return fmt.Errorf("blist: extend: %w", err)
	}
	merged, err := l.tr.Concat(drained)
	drained.Release()
	if err != nil {
		return err
	}
	l.tr.Release()
	l.tr = merged
	l.idx = newIndexExtension[T](merged.Config().Limit/2, merged.Len())
	l.gen++
	return nil
}

// Concat returns a new List holding the receiver's elements followed by
// other's. Neither operand is mutated.
func (l *List[T]) Concat(other *List[T]) (*List[T], error) {
	merged, err := l.tr.Concat(other.tr)
	if err != nil {
		return nil, err
	}
	return &List[T]{tr: merged, idx: newIndexExtension[T](merged.Config().Limit/2, merged.Len())}, nil
}

// Repeat returns a new List holding count concatenated copies of the
// receiver. count <= 0 yields an empty list.
func (l *List[T]) Repeat(count int) (*List[T], error) {
	cfg := l.tr.Config()
	result, err := tree.New[T](cfg, func(v T) { releaseElement(v) })
	if err != nil {
		return nil, err
	}
	for i := 0; i < count; i++ {
		clone := l.tr.Clone()
		next, err := result.Concat(clone)
		clone.Release()
		if err != nil {
			result.Release()
			return nil, err
		}
		result.Release()
		result = next
	}
	return &List[T]{tr: result, idx: newIndexExtension[T](result.Config().Limit/2, result.Len())}, nil
}

// Pop removes and returns the last element; the caller takes ownership
// (the item is not routed through Release).
func (l *List[T]) Pop() (T, error) {
	v, err := l.tr.PopLast()
	if err != nil {
		return v, err
	}
	l._ext_index_all()
	l.gen++
	return v, nil
}

// PopAt removes and returns the element at i; like Pop, ownership passes
// to the caller.
func (l *List[T]) PopAt(i int) (T, error) {
	var zero T
	n := l.tr.Len()
	idx, err := normalizeIndex(i, n)
	if err != nil {
		return zero, err
	}
	v, err := l.tr.PopAt(idx)
	if err != nil {
		return zero, err
	}
	l._ext_index_all()
	l.gen++
	return v, nil
}

// Index returns the position of the first element equal (per the supplied
// equal function) to v, or ErrValueNotFound.
func (l *List[T]) Index(v T, equal func(a, b T) bool) (int, error) {
	it := l.tr.Iter()
	defer it.Release()
	for i := 0; ; i++ {
		cur, ok := it.Next()
		if !ok {
			return 0, ErrValueNotFound
		}
		if equal(cur, v) {
			return i, nil
		}
	}
}

// Count returns the number of elements equal to v.
func (l *List[T]) Count(v T, equal func(a, b T) bool) int {
	it := l.tr.Iter()
	defer it.Release()
	n := 0
	for {
		cur, ok := it.Next()
		if !ok {
			return n
		}
		if equal(cur, v) {
			n++
		}
	}
}

// Contains reports whether any element equals v.
func (l *List[T]) Contains(v T, equal func(a, b T) bool) bool {
	it := l.tr.Iter()
	defer it.Release()
	for {
		cur, ok := it.Next()
		if !ok {
			return false
		}
		if equal(cur, v) {
			return true
		}
	}
}

// Remove deletes the first element equal to v, or returns ErrValueNotFound.
func (l *List[T]) Remove(v T, equal func(a, b T) bool) error {
	idx, err := l.Index(v, equal)
	if err != nil {
		return err
	}
	return l.Delete(idx)
}

// Reverse reverses the list in place.
func (l *List[T]) Reverse() error {
	if err := l.tr.Reverse(); err != nil {
		return err
	}
	l._ext_index_all()
	l.gen++
	return nil
}

// Check validates internal invariants; intended for tests.
func (l *List[T]) Check() error {
	if err := l.tr.Check(); err != nil {
		return err
	}
	return l.idx.checkInvariants(l.tr.Len())
}

// String returns a bounded preview of the list's contents.
func (l *List[T]) String() string {
	const maxPreview = 16
	n := l.tr.Len()
	it := l.tr.Iter()
	defer it.Release()
	s := "["
	for i := 0; i < n && i < maxPreview; i++ {
		v, _ := it.Next()
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%v", v)
	}
	if n > maxPreview {
		s += fmt.Sprintf(", ... (%d more)", n-maxPreview)
	}
	return s + "]"
}
