package blist

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestIndexExtensionTracksDirtyClean(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blist")
	defer teardown()

	l := rangeList(t, 100)
	l._ext_index_all()
	if !l.ext_is_dirty(50) {
		t.Fatalf("expected bucket covering 50 to be dirty after _ext_index_all")
	}
	if _, err := l.get_item_fast(50); err != nil {
		t.Fatalf("get_item_fast: %v", err)
	}
	if l.ext_is_dirty(50) {
		t.Fatalf("expected bucket covering 50 to be clean after get_item_fast")
	}
	if b := l.firstDirtyBucket(); b < 0 {
		t.Fatalf("expected at least one dirty bucket to remain")
	}
}

// TestIndexExtensionGetFastSkipsDescent verifies that a clean bucket is
// actually served from the cached leaf rather than re-descending the tree:
// once a bucket has been warmed, its cache entry points at a leaf that
// directly covers every offset queried afterward, and repeated queries
// within that leaf's span never need to touch l.idx.leaves again.
func TestIndexExtensionGetFastSkipsDescent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blist")
	defer teardown()

	l := rangeList(t, 200)
	l._ext_index_all()

	v, err := l.get_item_fast(73)
	if err != nil {
		t.Fatalf("get_item_fast: %v", err)
	}
	if v != 73 {
		t.Fatalf("get_item_fast(73) = %d, want 73", v)
	}

	b := l.idx.bucketOf(73)
	if l.ext_is_dirty(73) {
		t.Fatalf("bucket %d should be clean after warming", b)
	}
	if !l.idx.leaves[b].Valid() {
		t.Fatalf("bucket %d has no cached leaf after a warming get_item_fast", b)
	}
	warmLeaf := l.idx.leaves[b]
	warmBase := l.idx.base[b]

	// Every other offset covered by the same cached leaf must come back
	// from that exact leaf object, not from a fresh descent: the bucket's
	// dirty/clean state and cache entry must be left untouched by the hit.
	for local := 0; local < warmLeaf.Len(); local++ {
		i := warmBase + local
		if l.idx.bucketOf(i) != b {
			continue
		}
		got, err := l.get_item_fast(i)
		if err != nil {
			t.Fatalf("get_item_fast(%d): %v", i, err)
		}
		if got != i {
			t.Fatalf("get_item_fast(%d) = %d, want %d", i, got, i)
		}
		if l.idx.leaves[b] != warmLeaf {
			t.Fatalf("cached leaf for bucket %d changed after a clean hit at %d", b, i)
		}
	}
}

func TestIndexExtensionSetMarksOnlyItsBucket(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blist")
	defer teardown()

	l := rangeList(t, 100)
	l._ext_index_all()
	for i := 0; i < l.Len(); i++ {
		if _, err := l.get_item_fast(i); err != nil {
			t.Fatalf("get_item_fast(%d): %v", i, err)
		}
	}
	if l.firstDirtyBucket() >= 0 {
		t.Fatalf("expected fully clean cache after visiting every element")
	}
	if _, err := l.Set(50, -1); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if !l.ext_is_dirty(50) {
		t.Fatalf("expected bucket covering offset 50 dirty after Set(50, ...)")
	}
	if l.ext_is_dirty(0) {
		t.Fatalf("expected bucket covering offset 0 to remain clean after Set(50, ...)")
	}
}

// TestIndexExtensionStructuralMutationInvalidatesAll documents and verifies
// the broader policy structural, length-changing mutations use: because
// deleting can rebalance against a sibling on either side of the touched
// index (see tree/delete.go's borrowFromLeft/mergeSiblings), the whole
// cache is invalidated rather than just a suffix from the touched offset.
func TestIndexExtensionStructuralMutationInvalidatesAll(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blist")
	defer teardown()

	l := rangeList(t, 100)
	l._ext_index_all()
	for i := 0; i < l.Len(); i++ {
		if _, err := l.get_item_fast(i); err != nil {
			t.Fatalf("get_item_fast(%d): %v", i, err)
		}
	}
	if l.firstDirtyBucket() >= 0 {
		t.Fatalf("expected fully clean cache after visiting every element")
	}
	if err := l.Delete(10); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !l.ext_is_dirty(10) {
		t.Fatalf("expected bucket covering offset 10 dirty after Delete(10)")
	}
	if !l.ext_is_dirty(0) {
		t.Fatalf("expected bucket covering offset 0 also dirty after Delete(10), since a sibling rebalance can touch indices before the deletion point")
	}
}

func TestIndexExtensionCheck(t *testing.T) {
	l := rangeList(t, 30)
	if err := l.Check(); err != nil {
		t.Fatalf("Check: %v", err)
	}
	l.Append(1, 2, 3)
	if err := l.Check(); err != nil {
		t.Fatalf("Check after Append: %v", err)
	}
}
