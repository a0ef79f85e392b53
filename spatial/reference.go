package spatial

import (
	"iter"
	"slices"

	"deedles.dev/xiter"
	"github.com/lancelet/starquad/geom"
)

// Reference is an Index that does no acceleration at all. It keeps
// its entries in insertion order and every query tests each of them.
// Insertion is amortized O(1) and queries are O(n).
//
// Because it is so slow, Reference is meant to be used as an oracle
// for testing other implementations, not to answer real queries. See
// package spatialtest.
//
// The zero value is an empty index ready to use.
type Reference[S geom.Scalar[S], T any] struct {
	entries []Entry[S, T]
}

var _ Index[geom.F64, struct{}] = (*Reference[geom.F64, struct{}])(nil)

// NewReference returns an empty Reference.
func NewReference[S geom.Scalar[S], T any]() *Reference[S, T] {
	return &Reference[S, T]{}
}

// Insert appends e to r.
func (r *Reference[S, T]) Insert(e Entry[S, T]) {
	r.entries = append(r.entries, e)
}

// InsertAll appends entries to r in order.
func (r *Reference[S, T]) InsertAll(entries ...Entry[S, T]) {
	r.entries = append(r.entries, entries...)
}

// Len returns the number of entries in r.
func (r *Reference[S, T]) Len() int { return len(r.entries) }

// All returns an iterator over the entries of r in the order in which
// they were inserted.
func (r *Reference[S, T]) All() iter.Seq[Entry[S, T]] {
	return slices.Values(r.entries)
}

// Query returns the entries whose point rect contains in the order in
// which they were inserted.
func (r *Reference[S, T]) Query(rect geom.Rect[S]) []Entry[S, T] {
	return slices.Collect(xiter.Filter(r.All(), func(e Entry[S, T]) bool {
		return rect.Contains(e.Point)
	}))
}
