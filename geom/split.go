package geom

import "iter"

// Split yields the non-empty pieces of i on either side of at: first
// the values less than at and then the rest. If at is not in i, Split
// yields i by itself, or nothing if i is empty. The same happens if a
// floating-point i cannot be cut at exactly at, so the pieces never
// overlap and never leave a gap.
func (i Interval[S]) Split(at S) iter.Seq[Interval[S]] {
	return func(yield func(Interval[S]) bool) {
		below, above, ok := cut(i, at)
		if !ok {
			if !i.Empty() {
				yield(i)
			}
			return
		}

		if !below.Empty() && !yield(below) {
			return
		}
		if !above.Empty() {
			yield(above)
		}
	}
}

// cut splits i at a value that it contains. A piece that would be
// empty is returned as the zero Interval. It returns false if at is
// not in i or if the pieces would not meet exactly at at and at the
// bound of i.
func cut[S Scalar[S]](i Interval[S], at S) (below, above Interval[S], ok bool) {
	if !i.Contains(at) {
		return below, above, false
	}

	b, _ := i.start.bound(i.diameter)
	below, _ = NewInterval(i.start, i.start.reach(at))
	above, _ = NewInterval(at, at.span(b))

	ab, _ := above.start.bound(above.diameter)
	return below, above, !below.Contains(at) && ab == b
}

// hsplit splits a rectangle into pieces arranged horizontally.
func hsplit[S Scalar[S]](r Rect[S], at S) iter.Seq[Rect[S]] {
	return func(yield func(Rect[S]) bool) {
		for x := range r.x.Split(at) {
			if !yield(RectOf(x, r.y)) {
				return
			}
		}
	}
}

// vsplit splits a rectangle into pieces arranged vertically.
func vsplit[S Scalar[S]](r Rect[S], at S) iter.Seq[Rect[S]] {
	return func(yield func(Rect[S]) bool) {
		for y := range r.y.Split(at) {
			if !yield(RectOf(r.x, y)) {
				return
			}
		}
	}
}

// Split quarters r at the point at, the way a quadtree node divides
// its region, and yields the non-empty pieces row by row starting
// from the minimum corner. The pieces never overlap and between them
// contain exactly the points that r does. In other words,
//
//	r, _ := geom.NewRect[geom.I32](0, 0, 10, 10)
//	r.Split(geom.Pt[geom.I32](4, 6))
//
// will yield
//
//	(0, 0) 4x6, (4, 0) 6x6, (0, 6) 4x4, (4, 6) 6x4
//
// If at lies outside of r along an axis, r is not split along that
// axis.
func (r Rect[S]) Split(at Point[S]) iter.Seq[Rect[S]] {
	return func(yield func(Rect[S]) bool) {
		for row := range vsplit(r, at.Y) {
			for t := range hsplit(row, at.X) {
				if !yield(t) {
					return
				}
			}
		}
	}
}
