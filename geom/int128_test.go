package geom_test

import (
	"math"
	"testing"

	"github.com/lancelet/starquad/geom"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"
)

var (
	maxI128 = geom.NewI128(math.MaxInt64, math.MaxUint64)
	minI128 = geom.NewI128(math.MinInt64, 0)
)

func TestI128(t *testing.T) {
	require.Equal(t, "-1", geom.I128From64(-1).String())
	require.Equal(t, "170141183460469231731687303715884105727", maxI128.String())
	require.Equal(t, "-170141183460469231731687303715884105728", minI128.String())
	require.Equal(t, int64(-1), geom.I128From64(-5).Hi())
	require.Equal(t, uint64(math.MaxUint64-4), geom.I128From64(-5).Lo())

	require.Equal(t, -1, minI128.Cmp(maxI128))
	require.Equal(t, 1, geom.I128From64(0).Cmp(geom.I128From64(-1)))
	require.Equal(t, -1, geom.I128From64(-2).Cmp(geom.I128From64(-1)))
	require.Equal(t, 0, geom.I128From64(7).Cmp(geom.I128From64(7)))

	sum, ok := geom.I128From64(-3).Add(geom.I128From64(5))
	require.True(t, ok)
	require.Equal(t, geom.I128From64(2), sum)
	_, ok = maxI128.Add(geom.I128From64(1))
	require.False(t, ok)
	_, ok = minI128.Add(geom.I128From64(-1))
	require.False(t, ok)

	diff, ok := geom.I128From64(-3).Sub(geom.I128From64(5))
	require.True(t, ok)
	require.Equal(t, geom.I128From64(-8), diff)
	_, ok = minI128.Sub(geom.I128From64(1))
	require.False(t, ok)
	_, ok = geom.I128From64(0).Sub(minI128)
	require.False(t, ok)
	_, ok = geom.I128From64(-1).Sub(minI128)
	require.True(t, ok)
}

func TestI128Interval(t *testing.T) {
	_, ok := geom.NewInterval(maxI128, geom.I128From64(1))
	require.True(t, ok)
	_, ok = geom.NewInterval(maxI128, geom.I128From64(2))
	require.False(t, ok)

	start, _ := minI128.Add(geom.I128From64(1))
	i, ok := geom.NewInterval(start, geom.I128From64(-1))
	require.True(t, ok)
	require.Equal(t, minI128, i.Start())
	require.True(t, i.Contains(minI128))
	require.False(t, i.Contains(start))
	_, ok = geom.NewInterval(start, geom.I128From64(-2))
	require.False(t, ok)

	_, ok = geom.NewInterval(geom.I128From64(0), geom.I128From64(0))
	require.False(t, ok)
}

func TestU128(t *testing.T) {
	top := geom.U128Of(uint128.Max)
	require.Equal(t, "340282366920938463463374607431768211455", top.String())
	require.Equal(t, uint128.From64(9), geom.U128From64(9).Uint128())

	_, ok := top.Add(geom.U128From64(1))
	require.False(t, ok)
	_, ok = geom.U128From64(0).Sub(geom.U128From64(1))
	require.False(t, ok)
	sum, ok := geom.U128From64(math.MaxUint64).Add(geom.U128From64(1))
	require.True(t, ok)
	require.Equal(t, geom.U128Of(uint128.New(0, 1)), sum)

	i, ok := geom.NewInterval(top, geom.U128From64(1))
	require.True(t, ok)
	require.True(t, i.Contains(top))
	_, ok = geom.NewInterval(top, geom.U128From64(2))
	require.False(t, ok)

	a := geom.Must(geom.NewInterval(geom.U128From64(10), geom.U128From64(5)))
	b := geom.Must(geom.NewInterval(geom.U128From64(12), geom.U128From64(100)))
	ab, ok := a.Intersect(b)
	require.True(t, ok)
	require.Equal(t, geom.Must(geom.NewInterval(geom.U128From64(12), geom.U128From64(3))), ab)
}
