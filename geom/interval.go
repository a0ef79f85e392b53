package geom

// Interval is a contiguous, bounded range of a Scalar domain,
// described by where it starts and how wide it is. Intervals can only
// be created by [NewInterval], which guarantees that the diameter is
// never negative.
//
// Over an integer domain an interval holds the integers from start to
// start + diameter - 1 inclusive, so that an interval of diameter n
// holds exactly n integers:
//
//	i, _ := geom.NewInterval[geom.U8](2, 2)
//	i.Contains(1) // false
//	i.Contains(2) // true
//	i.Contains(3) // true
//	i.Contains(4) // false
//
// Over a floating-point domain it holds the values that are greater
// than or equal to start and less than start + diameter.
//
// The zero Interval is empty.
type Interval[S Scalar[S]] struct {
	start    S
	diameter S
}

// NewInterval returns the interval starting at start with the given
// diameter. A negative diameter is normalized so that the interval
// ends at start instead:
//
//	i, _ := geom.NewInterval[geom.I8](3, -2)
//	i.Start()    // 1
//	i.Diameter() // 2
//
// For integer domains, NewInterval returns false if any member of the
// interval, or the arithmetic needed to find it, would not be
// representable. For example, geom.NewInterval[geom.U8](250, 7) fails
// because the interval would include 256. Integer intervals may not be
// empty. For floating-point domains it always succeeds.
func NewInterval[S Scalar[S]](start, diameter S) (Interval[S], bool) {
	var zero S
	if diameter.Cmp(zero) < 0 {
		s, ok := start.Add(diameter)
		if !ok {
			return Interval[S]{}, false
		}
		d, ok := zero.Sub(diameter)
		if !ok {
			return Interval[S]{}, false
		}
		start, diameter = s, d
	}

	if _, ok := start.bound(diameter); !ok {
		return Interval[S]{}, false
	}
	return Interval[S]{start: start, diameter: diameter}, true
}

// Start returns the least value of the interval.
func (i Interval[S]) Start() S { return i.start }

// Diameter returns the width of the interval.
func (i Interval[S]) Diameter() S { return i.diameter }

// Empty reports whether the interval contains no values.
func (i Interval[S]) Empty() bool {
	b, ok := i.start.bound(i.diameter)
	return !ok || !i.start.below(b)
}

// Contains reports whether v lies within the interval.
func (i Interval[S]) Contains(v S) bool {
	if v.Cmp(i.start) < 0 {
		return false
	}
	b, ok := i.start.bound(i.diameter)
	return ok && v.below(b)
}

// Intersect returns the largest interval contained by both i and o,
// or false if they do not overlap. It is symmetric.
//
// When one interval lies within the other, the inner one is returned
// unchanged. Otherwise the result starts where the later interval
// starts and ends where the earlier one ends. A floating-point
// diameter cannot always reach that end exactly, in which case the
// result ends at the nearest representable bound past it, so that it
// never loses a value that both i and o contain.
func (i Interval[S]) Intersect(o Interval[S]) (Interval[S], bool) {
	c := i.start.Cmp(o.start)
	if c > 0 || (c == 0 && o.diameter.Cmp(i.diameter) < 0) {
		return o.Intersect(i)
	}

	ib, ok := i.start.bound(i.diameter)
	if !ok {
		return Interval[S]{}, false
	}
	ob, ok := o.start.bound(o.diameter)
	if !ok {
		return Interval[S]{}, false
	}
	if ib.Cmp(o.start) < 0 {
		return Interval[S]{}, false
	}

	switch {
	case c == 0:
		return i, true
	case ob.Cmp(ib) <= 0:
		return o, true
	}
	return NewInterval(o.start, o.start.span(ib))
}
