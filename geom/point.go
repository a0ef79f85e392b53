package geom

// Point is a pair of coordinates in a Scalar domain.
type Point[S Scalar[S]] struct {
	X, Y S
}

// Pt is shorthand for Point[S]{X: x, Y: y}.
func Pt[S Scalar[S]](x, y S) Point[S] {
	return Point[S]{X: x, Y: y}
}

// In reports whether p is in r.
func (p Point[S]) In(r Rect[S]) bool {
	return r.Contains(p)
}
