package blist

import (
	"fmt"

	"github.com/npillmayer/blist/tree"
)

// indexExtension is the per-root positional cache of spec.md §4.3: a
// dirty-region tracker over fixed-size offset buckets (`INDEX_FACTOR`
// elements each), each carrying the leaf that was found to cover it the
// last time it was looked up. It is realized as an implicit segment tree
// over the bucket array with lazy range-assign, rather than the teacher's
// free-list arena of dirty-region nodes — simpler to get right in Go while
// still giving O(log bucket-count) mark-dirty, mark-clean, and find-a-
// dirty-bucket, matching the "any realization that supports these bounds
// is acceptable" escape hatch.
//
// A clean bucket's leaves/base entry is a real, directly-indexable leaf
// handle obtained from tree.Tree.LeafAt: get_item_fast reads straight out
// of it instead of re-descending from the root. A bucket's cached leaf can
// still fall short of covering the exact offset asked for (bucket bounds
// and leaf bounds don't line up in general, and a bucket can span more than
// one leaf); get_item_fast treats that as a cache miss, just like a dirty
// bucket, and re-resolves through LeafAt.
//
// Every List method that changes Len() other than Set is responsible for
// calling _ext_index_all after the change: package tree's privatize-on-
// write discipline means a structural change (insert, delete, slice
// replace, concat) can replace node identities on either side of the
// touched offset, not just at or after it — delete's underflow rebalancing
// in particular borrows from or merges with a *sibling* of the touched
// leaf, which can cover indices strictly before it. Bounding the
// invalidated region precisely for every case would require the caller to
// plumb out exactly which leaves were touched; instead, since a clean hit
// is already O(1) and misses just cost the same O(height) descent the
// cache is there to amortize away, every structural mutation simply
// invalidates the whole cache and lets subsequent Gets repopulate it
// lazily. Set is the one exception: it never touches a sibling, only nodes
// strictly on the path to its own leaf, so ass_item_fast only needs to
// invalidate the one bucket it wrote into.
type indexExtension[T any] struct {
	factor   int // INDEX_FACTOR
	size     int // segment tree leaf-level width, a power of two
	buckets  int // logical bucket count for the length this was built for
	lastN    int // debug shadow: the list length this extension matches
	val      []int8
	lazy     []int8
	anyDirty []bool
	leaves   []tree.LeafHandle[T]
	base     []int
}

const (
	bucketClean int8 = 0
	bucketDirty int8 = 1
)

// newIndexExtension builds an extension sized for n elements, fully dirty
// (nothing has been indexed yet).
func newIndexExtension[T any](factor, n int) *indexExtension[T] {
	if factor < 1 {
		factor = 1
	}
	x := &indexExtension[T]{factor: factor}
	x.resize(n)
	return x
}

func (x *indexExtension[T]) bucketOf(offset int) int { return offset / x.factor }

func (x *indexExtension[T]) bucketCount(n int) int {
	if n == 0 {
		return 0
	}
	return (n-1)/x.factor + 1
}

// resize rebuilds the segment tree and the leaf-handle cache for length n
// from scratch and marks every bucket dirty.
func (x *indexExtension[T]) resize(n int) {
	need := x.bucketCount(n)
	size := 1
	for size < need {
		size *= 2
	}
	x.size = size
	x.buckets = need
	x.lastN = n
	x.val = make([]int8, 2*size)
	x.lazy = make([]int8, 2*size)
	x.anyDirty = make([]bool, 2*size)
	x.leaves = make([]tree.LeafHandle[T], need)
	x.base = make([]int, need)
	for i := range x.lazy {
		x.lazy[i] = -1
	}
	if need > 0 {
		x.val[1] = bucketDirty
		x.lazy[1] = bucketDirty
		x.anyDirty[1] = true
	}
}

func (x *indexExtension[T]) push(node int) {
	if node >= x.size || x.lazy[node] == -1 {
		return
	}
	v := x.lazy[node]
	for _, c := range [2]int{2 * node, 2*node + 1} {
		x.val[c] = v
		x.lazy[c] = v
		x.anyDirty[c] = v == bucketDirty
	}
	x.lazy[node] = -1
}

func (x *indexExtension[T]) rangeAssign(node, nl, nr, l, r int, v int8) {
	if r <= nl || nr <= l || l >= r {
		return
	}
	if l <= nl && nr <= r {
		x.val[node] = v
		x.lazy[node] = v
		x.anyDirty[node] = v == bucketDirty
		return
	}
	x.push(node)
	mid := (nl + nr) / 2
	x.rangeAssign(2*node, nl, mid, l, r, v)
	x.rangeAssign(2*node+1, mid, nr, l, r, v)
	x.anyDirty[node] = x.anyDirty[2*node] || x.anyDirty[2*node+1]
}

func (x *indexExtension[T]) pointState(bucket int) int8 {
	node, nl, nr := 1, 0, x.size
	for node < x.size {
		x.push(node)
		mid := (nl + nr) / 2
		if bucket < mid {
			node, nr = 2*node, mid
		} else {
			node, nl = 2*node+1, mid
		}
	}
	return x.val[node]
}

func (x *indexExtension[T]) firstDirty(node, nl, nr int) int {
	if !x.anyDirty[node] {
		return -1
	}
	if nr-nl == 1 {
		return nl
	}
	x.push(node)
	mid := (nl + nr) / 2
	if got := x.firstDirty(2*node, nl, mid); got >= 0 {
		return got
	}
	return x.firstDirty(2*node+1, mid, nr)
}

// ext_is_dirty reports whether the bucket covering offset i is dirty.
func (l *List[T]) ext_is_dirty(i int) bool {
	b := l.idx.bucketOf(i)
	if b >= l.idx.buckets {
		return false
	}
	return l.idx.pointState(b) == bucketDirty
}

// ext_mark marks the single bucket covering lo dirty. Used by
// ass_item_fast, the one mutation narrow enough that a single-bucket
// invalidation is sound (see indexExtension's doc comment); preMutationLen
// is the length as observed before the mutation, since that is what the
// current bucket layout still describes.
func (l *List[T]) ext_mark(lo, preMutationLen int) {
	if l.idx.buckets == 0 {
		return
	}
	from := l.idx.bucketOf(lo)
	if from >= l.idx.buckets {
		return
	}
	l.idx.rangeAssign(1, 0, l.idx.size, from, from+1, bucketDirty)
}

// ext_make_clean marks a single bucket clean.
func (l *List[T]) ext_make_clean(bucket int) {
	if bucket < 0 || bucket >= l.idx.buckets {
		return
	}
	l.idx.rangeAssign(1, 0, l.idx.size, bucket, bucket+1, bucketClean)
}

// _ext_index_all forces the whole cache dirty and resynced to the list's
// current length: called after any structural change whose invalidated
// region can't be described as a single bounded suffix (insert, delete,
// slice replace, concat, reverse, deserialization, ...).
func (l *List[T]) _ext_index_all() {
	l.idx.resize(l.tr.Len())
}

// firstDirtyBucket returns an arbitrary dirty bucket, or -1 if the cache is
// fully clean. Exposed for tests exercising the segment tree directly.
func (l *List[T]) firstDirtyBucket() int {
	if l.idx.buckets == 0 {
		return -1
	}
	return l.idx.firstDirty(1, 0, l.idx.size)
}

// get_item_fast returns element i. On a clean hit — the covering bucket is
// marked clean and its cached leaf actually still spans i — it indexes
// straight into that leaf, no tree descent at all. Anything else (a dirty
// bucket, or a clean bucket whose cached leaf doesn't cover i because
// bucket and leaf boundaries don't line up) re-resolves via tree.LeafAt,
// caches the result, and marks the bucket clean.
func (l *List[T]) get_item_fast(i int) (T, error) {
	var zero T
	b := l.idx.bucketOf(i)
	if b < l.idx.buckets && l.idx.pointState(b) == bucketClean {
		leaf := l.idx.leaves[b]
		local := i - l.idx.base[b]
		if local >= 0 && local < leaf.Len() {
			return leaf.At(local), nil
		}
	}
	handle, local, base, err := l.tr.LeafAt(i)
	if err != nil {
		return zero, err
	}
	if b < l.idx.buckets {
		l.idx.leaves[b] = handle
		l.idx.base[b] = base
		l.ext_make_clean(b)
	}
	return handle.At(local), nil
}

// ass_item_fast replaces element i. Set only ever privatizes nodes on the
// path to the touched leaf, never a sibling, so it's enough to invalidate
// the one bucket that covers i; every other bucket's cache stays valid.
func (l *List[T]) ass_item_fast(i int, v T) (T, error) {
	old, err := l.tr.Set(i, v)
	if err != nil {
		var zero T
		return zero, err
	}
	l.ext_mark(i, l.tr.Len())
	return old, nil
}

func (x *indexExtension[T]) checkInvariants(n int) error {
	if len(x.val) != 2*x.size || len(x.lazy) != 2*x.size || len(x.anyDirty) != 2*x.size {
		return fmt.Errorf("blist: index extension array size inconsistent")
	}
	if x.buckets != x.bucketCount(n) {
		return fmt.Errorf("blist: index extension bucket count %d does not match length %d", x.buckets, n)
	}
	if len(x.leaves) != x.buckets || len(x.base) != x.buckets {
		return fmt.Errorf("blist: index extension leaf-cache size inconsistent")
	}
	return nil
}
