// Package spatial defines the contract for structures that store
// labelled points and retrieve every point that lies within a
// rectangle.
package spatial

import (
	"iter"

	"github.com/lancelet/starquad/geom"
)

// Entry is a point together with the value that labels it.
type Entry[S geom.Scalar[S], T any] struct {
	Point geom.Point[S]
	Value T
}

// At returns an Entry labelling p with v.
func At[S geom.Scalar[S], T any](p geom.Point[S], v T) Entry[S, T] {
	return Entry[S, T]{Point: p, Value: v}
}

// Index stores entries and answers rectangle queries over them.
//
// An Index does not detect duplicates: entries with identical points,
// or even identical values, are independent of each other. Entries
// cannot be removed or updated.
//
// Implementations are not safe for concurrent use if any goroutine
// inserts.
type Index[S geom.Scalar[S], T any] interface {
	// Insert adds e to the index.
	Insert(e Entry[S, T])

	// InsertAll adds entries to the index. It behaves the same as
	// calling Insert with each entry in order.
	InsertAll(entries ...Entry[S, T])

	// Query returns every entry whose point r contains. The order of
	// the entries is unspecified.
	Query(r geom.Rect[S]) []Entry[S, T]

	// Len returns the number of entries in the index.
	Len() int
}

// Constructor returns a new, empty Index.
type Constructor[S geom.Scalar[S], T any] func() Index[S, T]

// Build returns a new Index created by newIndex containing entries.
func Build[S geom.Scalar[S], T any](newIndex Constructor[S, T], entries ...Entry[S, T]) Index[S, T] {
	idx := newIndex()
	idx.InsertAll(entries...)
	return idx
}

// Collect inserts every entry yielded by seq into idx.
func Collect[S geom.Scalar[S], T any](idx Index[S, T], seq iter.Seq[Entry[S, T]]) {
	for e := range seq {
		idx.Insert(e)
	}
}
