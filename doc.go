/*
Package blist implements a generic, copy-on-write B+-tree backed list.

A List[T] gives amortized sub-linear bounds for the operations where a plain
Go slice is linear: GetSlice, SetSlice, DeleteSlice, Concat, Repeat, and
insertion/removal at arbitrary positions. Internally it is a thin, ownership-
and-index-extension shell around package tree's persistent B+ tree: every
structural mutation privatizes the path it touches so that snapshots taken
by GetSlice or an Iterator keep observing the list as it was at
snapshot time.

Typical usage:

	l, _ := blist.New[int](tree.Config{})
	l.Append(1, 2, 3)
	v, _ := l.Get(1)

Package tree contains the generic persistent B+ tree engine; this package
builds the user-facing sequence API, the positional index-extension cache,
the sort and comparison pipelines, and (de)serialization on top of it.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package blist

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'blist'.
func tracer() tracing.Trace {
	return tracing.Select("blist")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
