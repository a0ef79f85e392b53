package geom

import (
	"cmp"
	"math"
)

// Predefined integer domains. Intervals over them are closed and
// their construction is checked against the range of the type.
type (
	I8  int8
	I16 int16
	I32 int32
	I64 int64

	U8  uint8
	U16 uint16
	U32 uint32
	U64 uint64
)

// Predefined floating-point domains. Intervals over them are
// half-open and their construction always succeeds.
type (
	F32 float32
	F64 float64
)

// Cmp compares a and b, returning -1, 0, or +1.
func (a I8) Cmp(b I8) int { return cmp.Compare(a, b) }

// Add returns a + b, or false if the sum overflows.
func (a I8) Add(b I8) (I8, bool) { return checkedAdd(a, b) }

// Sub returns a - b, or false if the difference overflows.
func (a I8) Sub(b I8) (I8, bool) { return checkedSub(a, b) }

func (a I8) bound(d I8) (I8, bool) { return closedBound(a, d) }
func (a I8) span(last I8) I8       { return closedSpan(a, last) }
func (a I8) reach(end I8) I8       { return closedReach(a, end) }
func (a I8) below(last I8) bool    { return a <= last }

// Cmp compares a and b, returning -1, 0, or +1.
func (a I16) Cmp(b I16) int { return cmp.Compare(a, b) }

// Add returns a + b, or false if the sum overflows.
func (a I16) Add(b I16) (I16, bool) { return checkedAdd(a, b) }

// Sub returns a - b, or false if the difference overflows.
func (a I16) Sub(b I16) (I16, bool) { return checkedSub(a, b) }

func (a I16) bound(d I16) (I16, bool) { return closedBound(a, d) }
func (a I16) span(last I16) I16       { return closedSpan(a, last) }
func (a I16) reach(end I16) I16       { return closedReach(a, end) }
func (a I16) below(last I16) bool     { return a <= last }

// Cmp compares a and b, returning -1, 0, or +1.
func (a I32) Cmp(b I32) int { return cmp.Compare(a, b) }

// Add returns a + b, or false if the sum overflows.
func (a I32) Add(b I32) (I32, bool) { return checkedAdd(a, b) }

// Sub returns a - b, or false if the difference overflows.
func (a I32) Sub(b I32) (I32, bool) { return checkedSub(a, b) }

func (a I32) bound(d I32) (I32, bool) { return closedBound(a, d) }
func (a I32) span(last I32) I32       { return closedSpan(a, last) }
func (a I32) reach(end I32) I32       { return closedReach(a, end) }
func (a I32) below(last I32) bool     { return a <= last }

// Cmp compares a and b, returning -1, 0, or +1.
func (a I64) Cmp(b I64) int { return cmp.Compare(a, b) }

// Add returns a + b, or false if the sum overflows.
func (a I64) Add(b I64) (I64, bool) { return checkedAdd(a, b) }

// Sub returns a - b, or false if the difference overflows.
func (a I64) Sub(b I64) (I64, bool) { return checkedSub(a, b) }

func (a I64) bound(d I64) (I64, bool) { return closedBound(a, d) }
func (a I64) span(last I64) I64       { return closedSpan(a, last) }
func (a I64) reach(end I64) I64       { return closedReach(a, end) }
func (a I64) below(last I64) bool     { return a <= last }

// Cmp compares a and b, returning -1, 0, or +1.
func (a U8) Cmp(b U8) int { return cmp.Compare(a, b) }

// Add returns a + b, or false if the sum overflows.
func (a U8) Add(b U8) (U8, bool) { return checkedAdd(a, b) }

// Sub returns a - b, or false if the difference overflows.
func (a U8) Sub(b U8) (U8, bool) { return checkedSub(a, b) }

func (a U8) bound(d U8) (U8, bool) { return closedBound(a, d) }
func (a U8) span(last U8) U8       { return closedSpan(a, last) }
func (a U8) reach(end U8) U8       { return closedReach(a, end) }
func (a U8) below(last U8) bool    { return a <= last }

// Cmp compares a and b, returning -1, 0, or +1.
func (a U16) Cmp(b U16) int { return cmp.Compare(a, b) }

// Add returns a + b, or false if the sum overflows.
func (a U16) Add(b U16) (U16, bool) { return checkedAdd(a, b) }

// Sub returns a - b, or false if the difference overflows.
func (a U16) Sub(b U16) (U16, bool) { return checkedSub(a, b) }

func (a U16) bound(d U16) (U16, bool) { return closedBound(a, d) }
func (a U16) span(last U16) U16       { return closedSpan(a, last) }
func (a U16) reach(end U16) U16       { return closedReach(a, end) }
func (a U16) below(last U16) bool     { return a <= last }

// Cmp compares a and b, returning -1, 0, or +1.
func (a U32) Cmp(b U32) int { return cmp.Compare(a, b) }

// Add returns a + b, or false if the sum overflows.
func (a U32) Add(b U32) (U32, bool) { return checkedAdd(a, b) }

// Sub returns a - b, or false if the difference overflows.
func (a U32) Sub(b U32) (U32, bool) { return checkedSub(a, b) }

func (a U32) bound(d U32) (U32, bool) { return closedBound(a, d) }
func (a U32) span(last U32) U32       { return closedSpan(a, last) }
func (a U32) reach(end U32) U32       { return closedReach(a, end) }
func (a U32) below(last U32) bool     { return a <= last }

// Cmp compares a and b, returning -1, 0, or +1.
func (a U64) Cmp(b U64) int { return cmp.Compare(a, b) }

// Add returns a + b, or false if the sum overflows.
func (a U64) Add(b U64) (U64, bool) { return checkedAdd(a, b) }

// Sub returns a - b, or false if the difference overflows.
func (a U64) Sub(b U64) (U64, bool) { return checkedSub(a, b) }

func (a U64) bound(d U64) (U64, bool) { return closedBound(a, d) }
func (a U64) span(last U64) U64       { return closedSpan(a, last) }
func (a U64) reach(end U64) U64       { return closedReach(a, end) }
func (a U64) below(last U64) bool     { return a <= last }

// Cmp compares a and b, returning -1, 0, or +1. NaN sorts before
// every other value.
func (a F32) Cmp(b F32) int { return cmp.Compare(a, b) }

// Add returns a + b. It always reports true.
func (a F32) Add(b F32) (F32, bool) { return a + b, true }

// Sub returns a - b. It always reports true.
func (a F32) Sub(b F32) (F32, bool) { return a - b, true }

func (a F32) bound(d F32) (F32, bool) { return halfOpenBound(a, d) }
func (a F32) span(end F32) F32        { return halfOpenSpan(a, end, nextF32) }
func (a F32) reach(end F32) F32       { return a.span(end) }
func (a F32) below(end F32) bool      { return a < end }

// Cmp compares a and b, returning -1, 0, or +1. NaN sorts before
// every other value.
func (a F64) Cmp(b F64) int { return cmp.Compare(a, b) }

// Add returns a + b. It always reports true.
func (a F64) Add(b F64) (F64, bool) { return a + b, true }

// Sub returns a - b. It always reports true.
func (a F64) Sub(b F64) (F64, bool) { return a - b, true }

func (a F64) bound(d F64) (F64, bool) { return halfOpenBound(a, d) }
func (a F64) span(end F64) F64        { return halfOpenSpan(a, end, nextF64) }
func (a F64) reach(end F64) F64       { return a.span(end) }
func (a F64) below(end F64) bool      { return a < end }

func nextF32(v, toward F32) F32 { return F32(math.Nextafter32(float32(v), float32(toward))) }
func nextF64(v, toward F64) F64 { return F64(math.Nextafter(float64(v), float64(toward))) }
