// Package geom provides bounded intervals and axis-aligned rectangles
// over a fixed set of integer and floating-point domains.
//
// It is patterned after image.Rectangle and image.Point, but every
// rectangle is a pair of independent intervals and every interval is
// described by a start and a diameter instead of a pair of corners.
//
// Each domain decides its own rules. Integer domains check their
// arithmetic so that an interval can never describe a value the type
// cannot represent, and they treat an interval as the closed range of
// its members: an interval of diameter n holds exactly n integers.
// Floating-point domains skip range checks and treat an interval as
// half-open, including its start and excluding start + diameter.
package geom

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Scalar is a constraint for the types that geom types and functions
// can handle. The set of types that satisfy it is fixed: [I8], [I16],
// [I32], [I64], [I128], [U8], [U16], [U32], [U64], [U128], [F32] and
// [F64]. The zero value of each is its additive identity.
type Scalar[S any] interface {
	comparable

	// Cmp returns -1, 0, or +1 depending on whether the receiver is
	// less than, equal to, or greater than the argument.
	Cmp(S) int

	// Add returns the sum of the receiver and the argument. The
	// boolean is false if the sum is not representable. Floating-point
	// domains always report true.
	Add(S) (S, bool)

	// Sub is like Add, but returns the difference.
	Sub(S) (S, bool)

	// bound returns the upper bound of an interval starting at the
	// receiver, or false if that interval is unrepresentable. For
	// closed domains this is the last member.
	bound(diameter S) (S, bool)

	// span is the inverse of bound. Where rounding leaves no diameter
	// that reaches bound exactly, it returns the least diameter that
	// reaches past it.
	span(bound S) S

	// reach returns the diameter of the interval that starts at the
	// receiver and ends just before end.
	reach(end S) S

	// below reports whether the receiver lies at or under an upper
	// bound returned by bound.
	below(bound S) bool
}

// Must returns v, panicking if ok is false. It is intended for
// literal intervals and rectangles that are known to be valid:
//
//	r := geom.Must(geom.NewRect[geom.F64](3, 2, 5, 3))
func Must[T any](v T, ok bool) T {
	if !ok {
		panic("geom: invalid construction")
	}
	return v
}

func checkedAdd[T constraints.Integer](a, b T) (T, bool) {
	c := a + b
	switch {
	case b > 0:
		return c, c > a
	case b < 0:
		return c, c < a
	}
	return c, true
}

func checkedSub[T constraints.Integer](a, b T) (T, bool) {
	c := a - b
	switch {
	case b > 0:
		return c, c < a
	case b < 0:
		return c, c > a
	}
	return c, true
}

// closedBound returns the last member of an integer interval. Empty
// integer intervals are not representable.
func closedBound[T constraints.Integer](start, diameter T) (T, bool) {
	if diameter <= 0 {
		return 0, false
	}
	return checkedAdd(start, diameter-1)
}

func closedSpan[T constraints.Integer](start, last T) T {
	return last - start + 1
}

func closedReach[T constraints.Integer](start, end T) T {
	return end - start
}

func halfOpenBound[T constraints.Float](start, diameter T) (T, bool) {
	return start + diameter, true
}

// halfOpenSpan returns a diameter that takes start to end. The
// difference end - start is only a first guess, as start plus the
// rounded difference can land on either side of end, so it is nudged
// one representable value at a time until start + d is end, or until
// it is the smallest diameter that overshoots it.
func halfOpenSpan[T constraints.Float](start, end T, next func(v, toward T) T) T {
	inf := T(math.Inf(1))
	d := end - start
	for start+d < end {
		d = next(d, inf)
	}
	for start+d > end {
		smaller := next(d, -inf)
		if start+smaller < end {
			break
		}
		d = smaller
	}
	return d
}
