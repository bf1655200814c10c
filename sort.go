package blist

import (
	"github.com/npillmayer/blist/tree"
	"golang.org/x/exp/constraints"
)

// SortConfig tunes SortByKey's algorithm selection. RadixFloats mirrors the
// source's Py_BLIST_RADIX_FLOATS-style switch: when enabled, a float64 key
// is sorted via tree.SortByKey's IEEE-order-preserving bit-flip radix pass
// instead of the default per-leaf gallop sort; int64 keys always take the
// radix path regardless of this flag, since there's no order-of-operations
// tradeoff to opt out of the way there is for floats.
type SortConfig struct {
	RadixFloats bool
}

type sortMutatedPanic struct{}

// Sort reorders l's elements according to less. It detects whether less
// itself mutated l (via a generation counter snapshotted at entry) and, if
// so, returns ErrListModifiedDuringSort — the one operation that does not
// promise to leave the list's content intact on error; the list is left
// valid but in an unspecified order.
func (l *List[T]) Sort(less func(a, b T) bool, reverse bool) (err error) {
	startGen := l.gen
	guarded := func(a, b T) bool {
		if l.gen != startGen {
			panic(sortMutatedPanic{})
		}
		return less(a, b)
	}
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(sortMutatedPanic); ok {
				err = ErrListModifiedDuringSort
				return
			}
			panic(r)
		}
	}()
	if sortErr := l.tr.SortBy(guarded, reverse); sortErr != nil {
		return sortErr
	}
	l.gen++
	l._ext_index_all()
	return nil
}

// SortByKey sorts l by a projected orderable key, the idiomatic Go
// replacement for passing a Python-style key= callable: key is called once
// per element before sorting, not once per comparison, and constraints.Ordered gives the
// comparison its natural <. It drives tree.SortByKey, which takes the LSD
// radix fast path for int64 keys always, and for float64 keys when
// cfg.RadixFloats is set, falling back to the per-leaf gallop sort
// otherwise — the same mutation-during-sort detection as Sort applies to
// key itself.
func SortByKey[T any, K constraints.Ordered](l *List[T], cfg SortConfig, key func(T) K, reverse bool) (err error) {
	startGen := l.gen
	guardedKey := func(v T) K {
		if l.gen != startGen {
			panic(sortMutatedPanic{})
		}
		return key(v)
	}
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(sortMutatedPanic); ok {
				err = ErrListModifiedDuringSort
				return
			}
			panic(r)
		}
	}()
	if sortErr := tree.SortByKey(l.tr, guardedKey, cfg.RadixFloats, reverse); sortErr != nil {
		return sortErr
	}
	l.gen++
	l._ext_index_all()
	return nil
}
