package blist

import (
	"bytes"
	"encoding/gob"

	"github.com/npillmayer/blist/tree"
)

// wireFormat is the serialized payload: spec.md's "reduce"/"setstate"
// equivalent flattened to an in-order element sequence plus the structural
// config needed to rebuild an equivalent tree. Package tree deliberately
// keeps node layout unexported, so this does not mirror internal node
// shape leaf-by-leaf the way spec.md's reference format does; it
// reconstructs an equivalent (not byte-identical) tree in O(n) via
// tree.InitFromSlice on restore. See DESIGN.md for the justification of
// encoding/gob as the one stdlib-only concern in this repo.
type wireFormat[T any] struct {
	Limit int
	Items []T
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (l *List[T]) MarshalBinary() ([]byte, error) {
	items := make([]T, 0, l.tr.Len())
	it := l.tr.Iter()
	defer it.Release()
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		items = append(items, v)
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(wireFormat[T]{Limit: l.tr.Config().Limit, Items: items}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The index
// extension is replaced afterward by a fresh, fully dirty one sized for
// the restored length, as for any bulk structural replacement.
func (l *List[T]) UnmarshalBinary(data []byte) error {
	var wf wireFormat[T]
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&wf); err != nil {
		return err
	}
	t, err := tree.InitFromSlice[T](tree.Config{Limit: wf.Limit}, func(v T) { releaseElement(v) }, wf.Items)
	if err != nil {
		return err
	}
	if l.tr != nil {
		l.tr.Release()
	}
	l.tr = t
	l.idx = newIndexExtension[T](t.Config().Limit/2, t.Len())
	l.gen++
	return nil
}
