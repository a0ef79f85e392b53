package geom

import "lukechampine.com/uint128"

// U128 is an unsigned 128-bit integer domain.
type U128 struct {
	u uint128.Uint128
}

// U128Of converts a uint128.Uint128 to a U128.
func U128Of(v uint128.Uint128) U128 { return U128{u: v} }

// U128From64 converts v to a U128.
func U128From64(v uint64) U128 { return U128{u: uint128.From64(v)} }

// Uint128 returns a as a uint128.Uint128.
func (a U128) Uint128() uint128.Uint128 { return a.u }

// String returns the decimal representation of a.
func (a U128) String() string { return a.u.String() }

// Cmp compares a and b, returning -1, 0, or +1.
func (a U128) Cmp(b U128) int { return a.u.Cmp(b.u) }

// Add returns a + b, or false if the sum overflows.
func (a U128) Add(b U128) (U128, bool) {
	c := a.u.AddWrap(b.u)
	return U128{u: c}, c.Cmp(a.u) >= 0
}

// Sub returns a - b, or false if the difference overflows.
func (a U128) Sub(b U128) (U128, bool) {
	return U128{u: a.u.SubWrap(b.u)}, a.u.Cmp(b.u) >= 0
}

func (a U128) bound(d U128) (U128, bool) {
	if d.u.IsZero() {
		return U128{}, false
	}
	return a.Add(U128{u: d.u.SubWrap64(1)})
}

func (a U128) span(last U128) U128 { return U128{u: last.u.SubWrap(a.u).AddWrap64(1)} }

func (a U128) reach(end U128) U128 { return U128{u: end.u.SubWrap(a.u)} }

func (a U128) below(last U128) bool { return a.Cmp(last) <= 0 }

// I128 is a signed 128-bit integer domain. It is stored as a two's
// complement uint128.Uint128.
type I128 struct {
	u uint128.Uint128
}

// NewI128 returns the I128 whose high and low 64 bits are hi and lo.
func NewI128(hi int64, lo uint64) I128 {
	return I128{u: uint128.New(lo, uint64(hi))}
}

// I128From64 converts v to an I128.
func I128From64(v int64) I128 {
	return NewI128(v>>63, uint64(v))
}

// Hi returns the high 64 bits of a, carrying its sign.
func (a I128) Hi() int64 { return int64(a.u.Hi) }

// Lo returns the low 64 bits of a.
func (a I128) Lo() uint64 { return a.u.Lo }

func (a I128) neg() bool { return a.u.Hi>>63 != 0 }

// String returns the decimal representation of a.
func (a I128) String() string {
	if !a.neg() {
		return a.u.String()
	}
	return "-" + uint128.Zero.SubWrap(a.u).String()
}

// Cmp compares a and b, returning -1, 0, or +1.
func (a I128) Cmp(b I128) int {
	if an, bn := a.neg(), b.neg(); an != bn {
		if an {
			return -1
		}
		return 1
	}
	return a.u.Cmp(b.u)
}

// Add returns a + b, or false if the sum overflows.
func (a I128) Add(b I128) (I128, bool) {
	c := I128{u: a.u.AddWrap(b.u)}
	return c, a.neg() != b.neg() || c.neg() == a.neg()
}

// Sub returns a - b, or false if the difference overflows.
func (a I128) Sub(b I128) (I128, bool) {
	c := I128{u: a.u.SubWrap(b.u)}
	return c, a.neg() == b.neg() || c.neg() == a.neg()
}

func (a I128) bound(d I128) (I128, bool) {
	if d.neg() || d.u.IsZero() {
		return I128{}, false
	}
	return a.Add(I128{u: d.u.SubWrap64(1)})
}

func (a I128) span(last I128) I128 { return I128{u: last.u.SubWrap(a.u).AddWrap64(1)} }

func (a I128) reach(end I128) I128 { return I128{u: end.u.SubWrap(a.u)} }

func (a I128) below(last I128) bool { return a.Cmp(last) <= 0 }
