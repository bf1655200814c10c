package blist

import "golang.org/x/exp/constraints"

// Equal reports whether l holds exactly the elements of other, in order,
// per the supplied equal function. It exits early on a length mismatch.
func (l *List[T]) Equal(other []T, equal func(a, b T) bool) bool {
	if l.tr.Len() != len(other) {
		return false
	}
	it := l.tr.Iter()
	defer it.Release()
	for _, want := range other {
		got, ok := it.Next()
		if !ok || !equal(got, want) {
			return false
		}
	}
	return true
}

// Compare lexicographically compares l against a foreign slice of ordered
// elements, returning -1, 0, or 1 the way bytes.Compare/strings.Compare do.
// It is a free function rather than a method because it needs a stronger
// constraint (constraints.Ordered) than List[T]'s own T any.
func Compare[T constraints.Ordered](l *List[T], other []T) int {
	it := l.tr.Iter()
	defer it.Release()
	for _, want := range other {
		got, ok := it.Next()
		if !ok {
			return -1
		}
		switch {
		case got < want:
			return -1
		case got > want:
			return 1
		}
	}
	if _, ok := it.Next(); ok {
		return 1
	}
	return 0
}
