// Package spatialtest implements support for testing implementations
// of spatial.Index against spatial.Reference.
package spatialtest

import (
	"slices"
	"testing"

	"deedles.dev/xiter"
	"github.com/lancelet/starquad/geom"
	"github.com/lancelet/starquad/spatial"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// TestIndex checks that the indices returned by newIndex behave the
// same way as a spatial.Reference holding the same entries. Each call
// to newIndex must return a new, empty index. Coordinates for points
// and query rectangles are drawn from values.
//
// Query results are compared as unordered collections.
func TestIndex[S geom.Scalar[S]](t *testing.T, newIndex spatial.Constructor[S, int], values *rapid.Generator[S]) {
	points := Points(values)
	rects := Rects(values)

	t.Run("Empty", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			idx := newIndex()
			require.Zero(t, idx.Len())
			require.Empty(t, idx.Query(rects.Draw(t, "rect")))
		})
	})

	t.Run("Oracle", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			entries := Label(rapid.SliceOfN(points, 0, 64).Draw(t, "points"))
			split := rapid.IntRange(0, len(entries)).Draw(t, "split")

			idx := newIndex()
			ref := spatial.NewReference[S, int]()
			check := func() {
				require.Equal(t, ref.Len(), idx.Len())
				for range rapid.IntRange(1, 8).Draw(t, "queries") {
					r := rects.Draw(t, "rect")
					require.ElementsMatch(t, ref.Query(r), idx.Query(r), "query %v", r)
				}
			}

			idx.InsertAll(entries[:split]...)
			ref.InsertAll(entries[:split]...)
			check()

			for _, e := range entries[split:] {
				idx.Insert(e)
				ref.Insert(e)
			}
			check()
		})
	})

	t.Run("Duplicates", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			r := rects.Draw(t, "rect")
			p := points.Draw(t, "point")
			n := rapid.IntRange(1, 4).Draw(t, "copies")

			entries := Label(slices.Repeat([]geom.Point[S]{p}, n))
			idx := spatial.Build(newIndex, entries...)
			require.Equal(t, n, idx.Len())

			got := idx.Query(r)
			if r.Contains(p) {
				require.ElementsMatch(t, entries, got)
				return
			}
			require.Empty(t, got)
		})
	})
}

// Label returns an entry for each point, labelled with its position in
// points.
func Label[S geom.Scalar[S]](points []geom.Point[S]) []spatial.Entry[S, int] {
	entries := make([]spatial.Entry[S, int], 0, len(points))
	for i, p := range xiter.Enumerate(slices.Values(points)) {
		entries = append(entries, spatial.At(p, i))
	}
	return entries
}

// Points returns a generator of points with coordinates drawn from
// values.
func Points[S geom.Scalar[S]](values *rapid.Generator[S]) *rapid.Generator[geom.Point[S]] {
	return rapid.Custom(func(t *rapid.T) geom.Point[S] {
		return geom.Pt(values.Draw(t, "x"), values.Draw(t, "y"))
	})
}

// Dyadic returns a generator of floating-point values that are whole
// multiples of 1/8 between -512 and 512. Sums and differences of such
// values are exact, so properties relating containment and
// intersection hold without rounding error.
func Dyadic[S geom.F32 | geom.F64]() *rapid.Generator[S] {
	return rapid.Map(rapid.IntRange(-1<<12, 1<<12), func(v int) S {
		return S(v) / 8
	})
}

// Intervals returns a generator of valid intervals whose start and
// diameter are drawn from values. When a pair does not form a valid
// interval, the generator tries to reach back from start instead and
// then to end at start, skipping the draw if neither works.
func Intervals[S geom.Scalar[S]](values *rapid.Generator[S]) *rapid.Generator[geom.Interval[S]] {
	return rapid.Custom(func(t *rapid.T) geom.Interval[S] {
		start := values.Draw(t, "start")
		diameter := values.Draw(t, "diameter")

		if i, ok := geom.NewInterval(start, diameter); ok {
			return i
		}
		var zero S
		if neg, ok := zero.Sub(diameter); ok {
			if i, ok := geom.NewInterval(start, neg); ok {
				return i
			}
		}
		if s, ok := start.Sub(diameter); ok {
			if i, ok := geom.NewInterval(s, diameter); ok {
				return i
			}
		}

		t.Skip("unrepresentable interval")
		return geom.Interval[S]{}
	})
}

// Rects returns a generator of valid rectangles formed from intervals
// drawn by [Intervals].
func Rects[S geom.Scalar[S]](values *rapid.Generator[S]) *rapid.Generator[geom.Rect[S]] {
	intervals := Intervals(values)
	return rapid.Custom(func(t *rapid.T) geom.Rect[S] {
		return geom.RectOf(intervals.Draw(t, "x"), intervals.Draw(t, "y"))
	})
}
