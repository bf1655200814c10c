package tree

import "fmt"

// GetSlice returns a new tree holding a copy-on-write snapshot of items in
// [lo,hi). It never mutates t: the design's "slice get on a deeper tree
// makes a snapshot via shared-subtree copy, then trims from both ends"
// contract is implemented here as two splits that share structure with t
// until one side is actually written to.
func (t *Tree[T]) GetSlice(lo, hi int) (*Tree[T], error) {
	n := t.Len()
	lo, hi = clampIndex(lo, n), clampIndex(hi, n)
	if hi < lo {
		hi = lo
	}
	if lo == 0 && hi == n {
		return t.Clone(), nil
	}
	head, rest := t.splitAt(lo)
	head.Release()
	middle, tail := rest.splitAt(hi - lo)
	rest.Release()
	tail.Release()
	return middle, nil
}

// DeleteSlice removes [lo,hi) from t in place.
func (t *Tree[T]) DeleteSlice(lo, hi int) error {
	n := t.Len()
	lo, hi = clampIndex(lo, n), clampIndex(hi, n)
	if hi <= lo {
		return nil
	}
	head, rest := t.splitAt(lo)
	middle, tail := rest.splitAt(hi - lo)
	rest.Release()
	middle.Release() // fires onItem for every item actually being deleted
	merged, err := head.Concat(tail)
	head.Release()
	tail.Release()
	if err != nil {
		return err
	}
	t.adoptRoot(merged)
	return nil
}

// InsertTree splices another tree's items into t at a positional index. other
// is left untouched and still independently usable (Concat's usual contract).
func (t *Tree[T]) InsertTree(index int, other *Tree[T]) error {
	if other == nil || other.IsEmpty() {
		return nil
	}
	if other.cfg.Limit != t.cfg.Limit {
		return fmt.Errorf("%w: limit %d vs %d", ErrIncompatibleConfig, t.cfg.Limit, other.cfg.Limit)
	}
	n := t.Len()
	if index < 0 || index > n {
		return ErrIndexOutOfRange
	}
	head, tail := t.splitAt(index)
	withOther, err := head.Concat(other)
	head.Release()
	if err != nil {
		tail.Release()
		return err
	}
	full, err := withOther.Concat(tail)
	withOther.Release()
	tail.Release()
	if err != nil {
		return err
	}
	t.adoptRoot(full)
	return nil
}

// SetSlice replaces [lo,hi) with replacement's items.
func (t *Tree[T]) SetSlice(lo, hi int, replacement *Tree[T]) error {
	if err := t.DeleteSlice(lo, hi); err != nil {
		return err
	}
	lo = clampIndex(lo, t.Len())
	return t.InsertTree(lo, replacement)
}

// adoptRoot transfers full's root/height into t and releases t's previous
// root. full is left empty; the caller need not (and must not) also release
// it afterward.
func (t *Tree[T]) adoptRoot(full *Tree[T]) {
	old := t.root
	t.root = full.root
	t.height = full.height
	retain(t.root)
	full.Release()
	release(old, nil) // old's surviving content already has fresh holds via the new root
}

// splitAt divides t into two trees holding [0,index) and [index,n), sharing
// structure with t via copy-on-write. t itself is never mutated.
func (t *Tree[T]) splitAt(index int) (left, right *Tree[T]) {
	n := t.Len()
	if index <= 0 {
		return &Tree[T]{cfg: t.cfg, onItem: t.onItem}, t.Clone()
	}
	if index >= n {
		return t.Clone(), &Tree[T]{cfg: t.cfg, onItem: t.onItem}
	}
	retain(t.root)
	l, lh, r, rh := t.splitNode(t.root, t.height, index)
	left = &Tree[T]{cfg: t.cfg, root: l, height: lh, onItem: t.onItem}
	right = &Tree[T]{cfg: t.cfg, root: r, height: rh, onItem: t.onItem}
	left.normalizeRoot()
	right.normalizeRoot()
	return left, right
}

// splitNode splits the subtree rooted at n (n's single incoming reference is
// consumed) into a left part covering local offsets [0,index) and a right
// part covering [index,n.n), both at n's own height (never taller). Either
// side may come back nil if the split falls exactly on one end.
func (t *Tree[T]) splitNode(n *node[T], height, index int) (left *node[T], leftHeight int, right *node[T], rightHeight int) {
	if n.leaf {
		switch {
		case index == 0:
			return nil, 0, n, height
		case index == len(n.items):
			return n, height, nil, 0
		}
		leftItems := append([]T(nil), n.items[:index]...)
		rightItems := append([]T(nil), n.items[index:]...)
		l := newLeaf[T](t.cfg.Limit, leftItems)
		r := newLeaf[T](t.cfg.Limit, rightItems)
		release(n, nil) // content survives, split across l and r
		return l, height, r, height
	}
	own := n
	if n.refs > 1 {
		own = n.shallowCopy(t.cfg.Limit)
		n.refs--
	}
	k, _, local := locate(own, index)
	// childLeft/childRight are always exactly at height-1: either a
	// passthrough of own.children[k] itself, or a fresh node built one
	// level down by this same function at height-1.
	childLeft, _, childRight, _ := t.splitNode(own.children[k], height-1, local)
	var leftChildren, rightChildren []*node[T]
	leftChildren = append(leftChildren, own.children[:k]...)
	if childLeft != nil {
		leftChildren = append(leftChildren, childLeft)
	}
	if childRight != nil {
		rightChildren = append(rightChildren, childRight)
	}
	rightChildren = append(rightChildren, own.children[k+1:]...)
	// Slot k's reference was already consumed by the recursive split above.
	own.children = removeChildrenRange(own.children, k, k+1)
	release(own, nil) // own's slots are redistributed into left/right above
	if len(leftChildren) > 0 {
		left = newInner[T](t.cfg.Limit, leftChildren)
		leftHeight = height
	}
	if len(rightChildren) > 0 {
		right = newInner[T](t.cfg.Limit, rightChildren)
		rightHeight = height
	}
	release(childLeft, nil) // newInner retained each; drop our transient hold
	release(childRight, nil)
	return left, leftHeight, right, rightHeight
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}
