package blist

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSortAscendingDescending(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blist")
	defer teardown()

	l, _ := New[int](small())
	l.Append(5, 3, 1, 4, 1, 5, 9, 2, 6)
	if err := l.Sort(func(a, b int) bool { return a < b }, false); err != nil {
		t.Fatalf("Sort: %v", err)
	}
	prev := -1 << 30
	it := l.Iterator()
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		if v < prev {
			t.Fatalf("not ascending: %d after %d", v, prev)
		}
		prev = v
	}
	it.Release()

	if err := l.Sort(func(a, b int) bool { return a < b }, true); err != nil {
		t.Fatalf("Sort reverse: %v", err)
	}
	prev = 1 << 30
	it = l.Iterator()
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		if v > prev {
			t.Fatalf("not descending: %d after %d", v, prev)
		}
		prev = v
	}
	it.Release()
}

func TestSortByKey(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blist")
	defer teardown()

	type pair struct{ key, seq int }
	l, _ := New[pair](small())
	l.Append(pair{1, 0}, pair{0, 1}, pair{1, 2}, pair{0, 3})
	if err := SortByKey[pair, int](l, SortConfig{}, func(p pair) int { return p.key }, false); err != nil {
		t.Fatalf("SortByKey: %v", err)
	}
	wantKeys := []int{0, 0, 1, 1}
	it := l.Iterator()
	for i, want := range wantKeys {
		v, ok := it.Next()
		if !ok || v.key != want {
			t.Fatalf("position %d: got %+v, want key %d", i, v, want)
		}
	}
	it.Release()
}

// TestSortByKeyRadixInt64 exercises tree.SortByKey's int64 radix fast path
// (always taken for int64 keys, regardless of SortConfig.RadixFloats).
func TestSortByKeyRadixInt64(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blist")
	defer teardown()

	type pair struct {
		key int64
		seq int
	}
	l, _ := New[pair](small())
	l.Append(pair{5, 0}, pair{-3, 1}, pair{0, 2}, pair{5, 3}, pair{-100, 4}, pair{42, 5})
	if err := SortByKey[pair, int64](l, SortConfig{}, func(p pair) int64 { return p.key }, false); err != nil {
		t.Fatalf("SortByKey: %v", err)
	}
	wantKeys := []int64{-100, -3, 0, 5, 5, 42}
	it := l.Iterator()
	for i, want := range wantKeys {
		v, ok := it.Next()
		if !ok || v.key != want {
			t.Fatalf("position %d: got %+v, want key %d", i, v, want)
		}
	}
	it.Release()
	if v, _ := l.Get(3); v.seq != 0 {
		t.Fatalf("radix sort not stable: tied key at position 3 has seq %d, want 0", v.seq)
	}
}

// TestSortByKeyRadixFloat64 exercises tree.SortByKey's float64 radix path,
// which only engages when SortConfig.RadixFloats is set; with it unset the
// same keys must still sort correctly via the gallop fallback.
func TestSortByKeyRadixFloat64(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blist")
	defer teardown()

	type pair struct {
		key float64
		seq int
	}
	values := []pair{{5.5, 0}, {-3.25, 1}, {0, 2}, {-0.0, 3}, {42.125, 4}, {-100.5, 5}}
	wantKeys := []float64{-100.5, -3.25, 0, 0, 5.5, 42.125}

	for _, radix := range []bool{false, true} {
		l, _ := New[pair](small())
		l.Append(values...)
		if err := SortByKey[pair, float64](l, SortConfig{RadixFloats: radix}, func(p pair) float64 { return p.key }, false); err != nil {
			t.Fatalf("SortByKey(radix=%v): %v", radix, err)
		}
		it := l.Iterator()
		for i, want := range wantKeys {
			v, ok := it.Next()
			if !ok || v.key != want {
				t.Fatalf("radix=%v position %d: got %+v, want key %v", radix, i, v, want)
			}
		}
		it.Release()
	}
}

func TestSortDetectsMutationDuringLess(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blist")
	defer teardown()

	l, _ := New[int](small())
	l.Append(3, 1, 2)
	tripped := false
	err := l.Sort(func(a, b int) bool {
		if !tripped {
			tripped = true
			l.Append(99) // mutate out from under the in-progress sort
		}
		return a < b
	}, false)
	if err != ErrListModifiedDuringSort {
		t.Fatalf("expected ErrListModifiedDuringSort, got %v", err)
	}
}
