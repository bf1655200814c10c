package tree

import (
	"fmt"
	"io"
)

// WriteDOT writes a Graphviz DOT digraph of t's internal node structure to
// w, for debugging. label formats a single item for display; pass nil for
// a generic "%v" rendering. Adapted from the teacher's cord-specific dotty
// dumper, generalized from cordNode to the generic node[T].
func (t *Tree[T]) WriteDOT(w io.Writer, label func(T) string) error {
	if label == nil {
		label = func(v T) string { return fmt.Sprintf("%v", v) }
	}
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := map[*node[T]]int{}
	next := 1
	idOf := func(n *node[T]) int {
		if id, ok := ids[n]; ok {
			return id
		}
		ids[n] = next
		next++
		return ids[n]
	}
	if t.root == nil {
		io.WriteString(w, "\t\"empty\" [label=\"(empty)\",shape=circle];\n")
		io.WriteString(w, "}\n")
		return nil
	}
	var walk func(n *node[T]) error
	walk = func(n *node[T]) error {
		id := idOf(n)
		if n.leaf {
			items := ""
			for i, v := range n.items {
				if i > 0 {
					items += ", "
				}
				items += label(v)
				if i >= 3 {
					items += ", ..."
					break
				}
			}
			_, err := fmt.Fprintf(w, "\t\"%d\" [label=\"leaf n=%d refs=%d\\n%s\",shape=box,style=filled,fillcolor=\"#a3d7e4\"];\n",
				id, n.n, n.refs, items)
			return err
		}
		if _, err := fmt.Fprintf(w, "\t\"%d\" [label=\"inner n=%d refs=%d\",shape=circle,style=filled,fillcolor=\"#ffd27f\"];\n",
			id, n.n, n.refs); err != nil {
			return err
		}
		for _, c := range n.children {
			cid := idOf(c)
			if _, err := fmt.Fprintf(w, "\t\"%d\" -> \"%d\";\n", id, cid); err != nil {
				return err
			}
		}
		for _, c := range n.children {
			if err := walk(c); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(t.root); err != nil {
		return err
	}
	io.WriteString(w, "}\n")
	return nil
}
