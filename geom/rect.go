package geom

// Rect is an axis-aligned rectangle formed from an independent
// interval along each axis. A point is in a Rect if each of its
// coordinates is in the corresponding interval, so the containment
// rules of the domain apply per axis.
//
// The zero Rect is empty.
type Rect[S Scalar[S]] struct {
	x, y Interval[S]
}

// NewRect returns the rectangle with its minimum corner at (x, y) and
// the given width and height. Negative sizes are normalized the same
// way as for [NewInterval]. It returns false if either axis is not a
// valid interval.
func NewRect[S Scalar[S]](x, y, width, height S) (Rect[S], bool) {
	xi, ok := NewInterval(x, width)
	if !ok {
		return Rect[S]{}, false
	}
	yi, ok := NewInterval(y, height)
	if !ok {
		return Rect[S]{}, false
	}
	return Rect[S]{x: xi, y: yi}, true
}

// RectOf returns the rectangle spanned by the intervals x and y.
func RectOf[S Scalar[S]](x, y Interval[S]) Rect[S] {
	return Rect[S]{x: x, y: y}
}

// X returns the interval spanned by r along the x axis.
func (r Rect[S]) X() Interval[S] { return r.x }

// Y returns the interval spanned by r along the y axis.
func (r Rect[S]) Y() Interval[S] { return r.y }

// Min returns the minimum corner of r.
func (r Rect[S]) Min() Point[S] { return Pt(r.x.start, r.y.start) }

// Width returns the diameter of r along the x axis.
func (r Rect[S]) Width() S { return r.x.diameter }

// Height returns the diameter of r along the y axis.
func (r Rect[S]) Height() S { return r.y.diameter }

// Empty reports whether r contains no points.
func (r Rect[S]) Empty() bool {
	return r.x.Empty() || r.y.Empty()
}

// Contains reports whether p lies within r.
func (r Rect[S]) Contains(p Point[S]) bool {
	return r.x.Contains(p.X) && r.y.Contains(p.Y)
}

// Intersect returns the largest rectangle contained by both r and o,
// or false if they do not overlap along either axis.
func (r Rect[S]) Intersect(o Rect[S]) (Rect[S], bool) {
	x, ok := r.x.Intersect(o.x)
	if !ok {
		return Rect[S]{}, false
	}
	y, ok := r.y.Intersect(o.y)
	if !ok {
		return Rect[S]{}, false
	}
	return Rect[S]{x: x, y: y}, true
}
