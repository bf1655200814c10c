package blist

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Dump writes a Graphviz DOT digraph of l's internal tree structure to w,
// plus a colorized one-line summary legend — generalized from the
// teacher's Cord2Dot/Dotty debug helpers. label formats a single element
// for display; pass nil for a generic rendering.
func (l *List[T]) Dump(w io.Writer, label func(T) string) error {
	summary := color.New(color.FgHiCyan, color.Bold).Sprintf("blist dump")
	bucketInfo := color.New(color.FgYellow).Sprintf("buckets=%d factor=%d", l.idx.buckets, l.idx.factor)
	fmt.Fprintf(w, "// %s: len=%d height=%d %s\n", summary, l.tr.Len(), l.tr.Height(), bucketInfo)
	return l.tr.WriteDOT(w, label)
}
