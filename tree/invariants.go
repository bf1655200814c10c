package tree

import "fmt"

// Check walks the whole tree and returns an error describing the first
// structural invariant violation found (wrong cached counts, occupancy
// outside [HALF,LIMIT] for non-root nodes, uneven leaf depth). Intended for
// tests and debugging, not the hot path.
func (t *Tree[T]) Check() error {
	if t.root == nil {
		if t.height != 0 {
			return fmt.Errorf("tree: empty tree has nonzero height %d", t.height)
		}
		return nil
	}
	if h := subtreeHeight(t.root); h != t.height {
		return fmt.Errorf("tree: cached height %d does not match spine height %d", t.height, h)
	}
	return t.checkNode(t.root, t.height, true)
}

func (t *Tree[T]) checkNode(n *node[T], height int, isRoot bool) error {
	if n.leaf {
		if height != 1 {
			return fmt.Errorf("tree: leaf found at height %d, want 1", height)
		}
		if n.n != len(n.items) {
			return fmt.Errorf("tree: leaf cached count %d does not match %d items", n.n, len(n.items))
		}
		if !isRoot && len(n.items) < t.cfg.half() {
			return fmt.Errorf("tree: non-root leaf underflowed: %d items, want >= %d", len(n.items), t.cfg.half())
		}
		if len(n.items) > t.cfg.Limit {
			return fmt.Errorf("tree: leaf overflowed: %d items, want <= %d", len(n.items), t.cfg.Limit)
		}
		return nil
	}
	if !isRoot && len(n.children) < t.cfg.half() {
		return fmt.Errorf("tree: non-root inner node underflowed: %d children, want >= %d", len(n.children), t.cfg.half())
	}
	if len(n.children) > t.cfg.Limit {
		return fmt.Errorf("tree: inner node overflowed: %d children, want <= %d", len(n.children), t.cfg.Limit)
	}
	total := 0
	for _, c := range n.children {
		if err := t.checkNode(c, height-1, false); err != nil {
			return err
		}
		total += c.n
	}
	if n.n != total {
		return fmt.Errorf("tree: inner cached count %d does not match sum of children %d", n.n, total)
	}
	return nil
}
