package tree

import "testing"

func TestIterForward(t *testing.T) {
	items := make([]int, 250)
	for i := range items {
		items[i] = i
	}
	tr, _ := InitFromSlice[int](small(), nil, items)
	it := tr.Iter()
	if hint := it.LengthHint(); hint != 250 {
		t.Fatalf("expected length hint 250, got %d", hint)
	}
	for i := 0; i < 250; i++ {
		v, ok := it.Next()
		if !ok || v != i {
			t.Fatalf("Next() = %d, %v at i=%d; want %d, true", v, ok, i, i)
		}
	}
	if _, ok := it.Next(); ok {
		t.Fatalf("expected exhausted iterator")
	}
	it.Release()
}

func TestIterReversed(t *testing.T) {
	items := make([]int, 250)
	for i := range items {
		items[i] = i
	}
	tr, _ := InitFromSlice[int](small(), nil, items)
	it := tr.Reversed()
	for i := 249; i >= 0; i-- {
		v, ok := it.Next()
		if !ok || v != i {
			t.Fatalf("Next() = %d, %v at i=%d; want %d, true", v, ok, i, i)
		}
	}
	if _, ok := it.Next(); ok {
		t.Fatalf("expected exhausted iterator")
	}
	it.Release()
}

func TestIterSnapshotUnaffectedByLaterMutation(t *testing.T) {
	items := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	tr, _ := InitFromSlice[int](small(), nil, items)
	it := tr.Iter()
	tr.InsertAt(0, -1)
	tr.DeleteAt(5)
	var got []int
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, v)
	}
	it.Release()
	for i, v := range got {
		if v != i {
			t.Fatalf("snapshot corrupted at %d: got %d", i, v)
		}
	}
}
