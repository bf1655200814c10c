package tree

// InitFromSlice builds a tree over items in a single linear pass: pack
// items LIMIT at a time into leaves, then repeatedly pack the resulting
// node level LIMIT at a time into parents until one node remains. This is
// the bulk-construction scaffold used by package blist's Builder and by the
// sort pipeline's final repack step — both produce a full item/leaf set up
// front and want a balanced tree in O(n) rather than O(n log n) of
// individual inserts.
func InitFromSlice[T any](cfg Config, onItem func(T), items []T) (*Tree[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	t := &Tree[T]{cfg: cfg, onItem: onItem}
	if len(items) == 0 {
		return t, nil
	}
	leaves := packLeaves(cfg.Limit, items)
	root, height := cascade(cfg.Limit, leaves)
	t.root = root
	t.height = height
	return t, nil
}

// InitFromChildren is the complementary bottom-up half of the forest
// scaffold: it cascades a caller-supplied, already-built equal-height node
// level upward into a single root, without building that level itself.
// The sort pipeline's repack step uses it after packing its sorted items
// into fresh leaves directly, so it can hand those leaves straight to the
// cascade instead of going through InitFromSlice's leaf-packing again.
func InitFromChildren[T any](cfg Config, onItem func(T), children []*node[T]) (*Tree[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	t := &Tree[T]{cfg: cfg, onItem: onItem}
	if len(children) == 0 {
		return t, nil
	}
	root, height := cascade(cfg.Limit, children)
	t.root = root
	t.height = height
	return t, nil
}

// InitFromSeq builds a tree by draining a pull-based sequence one item at a
// time, surfacing any error the sequence itself reports (via the `error`
// return of next) instead of silently truncating the result — the
// iterator-draining fast path used by package blist's foreign-sequence
// Extend. next returns the next item, whether one was available, and any
// error encountered producing it; a false ok with a nil error means the
// sequence is simply exhausted.
func InitFromSeq[T any](cfg Config, onItem func(T), next func() (T, bool, error)) (*Tree[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	normalized := cfg.normalized()
	items := make([]T, 0, normalized.Limit)
	for {
		v, ok, err := next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		items = append(items, v)
	}
	return InitFromSlice(cfg, onItem, items)
}

// groupBoundaries slices n elements into LIMIT-sized groups, like a plain
// i += limit loop, except that a short trailing group (unavoidable whenever
// limit does not evenly divide n) is rebalanced against its predecessor so
// neither ends up below half occupancy. Every non-final group produced by a
// strict i += limit loop is exactly limit elements wide, so only the final
// boundary ever needs to move; shifting it back by `half - lastSize` grows
// the trailing group to exactly half and shrinks its predecessor to
// half+lastSize, which is always in [half, limit). Mirrors the grounding
// original's blist_underflow call on every freshly packed parent.
func groupBoundaries(limit, half, n int) []int {
	if n == 0 {
		return nil
	}
	var starts []int
	for i := 0; i < n; i += limit {
		starts = append(starts, i)
	}
	if len(starts) >= 2 {
		last := len(starts) - 1
		lastSize := n - starts[last]
		if lastSize < half {
			starts[last] -= half - lastSize
		}
	}
	return starts
}

func packLeaves[T any](limit int, items []T) []*node[T] {
	starts := groupBoundaries(limit, limit/2, len(items))
	leaves := make([]*node[T], 0, len(starts))
	for i, start := range starts {
		end := len(items)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		leaves = append(leaves, newLeaf[T](limit, items[start:end]))
	}
	return leaves
}

// cascade packs a node level LIMIT at a time into parents, repeating until
// a single root remains, and reports the resulting height. A short trailing
// group at each level is rebalanced against its predecessor (see
// groupBoundaries) so that only the eventual root is ever allowed below
// half occupancy.
func cascade[T any](limit int, level []*node[T]) (*node[T], int) {
	height := 1
	for len(level) > 1 {
		starts := groupBoundaries(limit, limit/2, len(level))
		next := make([]*node[T], 0, len(starts))
		for i, start := range starts {
			end := len(level)
			if i+1 < len(starts) {
				end = starts[i+1]
			}
			inner := newInner[T](limit, level[start:end])
			for _, c := range level[start:end] {
				release(c, nil) // newInner retained each; drop our transient hold
			}
			next = append(next, inner)
		}
		level = next
		height++
	}
	return level[0], height
}
