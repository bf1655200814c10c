/*
Package tree implements a persistent, copy-on-write B+ tree specialized for
positional (index-based) sequences.

It is the engine behind package blist's List[T]: every node is either a leaf
holding up to Limit items or an internal node holding up to Limit children.
Mutating operations never mutate a shared node in place; they privatize the
path from the root down to the touched node first, so that older snapshots
(produced by Clone, GetSlice, or an Iterator) keep observing the tree as it
was at the time they were taken.

The package deliberately carries no notion of per-item "summaries" or
monoids: the only aggregate value cached per node is its item count, which
is what positional indexing needs. Callers that want richer aggregates
(byte offsets, line counts, ...) are expected to build that on top, the way
package blist builds its index extension on top of Tree.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package tree

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
