package geom_test

import (
	"slices"
	"testing"

	"github.com/lancelet/starquad/geom"
	"github.com/lancelet/starquad/spatial/spatialtest"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestIntervalSplit(t *testing.T) {
	i := geom.Must(geom.NewInterval[geom.U8](2, 5))
	require.Equal(t, []geom.Interval[geom.U8]{
		geom.Must(geom.NewInterval[geom.U8](2, 2)),
		geom.Must(geom.NewInterval[geom.U8](4, 3)),
	}, slices.Collect(i.Split(4)))

	require.Equal(t, []geom.Interval[geom.U8]{i}, slices.Collect(i.Split(2)))
	require.Equal(t, []geom.Interval[geom.U8]{
		geom.Must(geom.NewInterval[geom.U8](2, 4)),
		geom.Must(geom.NewInterval[geom.U8](6, 1)),
	}, slices.Collect(i.Split(6)))
	require.Equal(t, []geom.Interval[geom.U8]{i}, slices.Collect(i.Split(7)))
	require.Empty(t, slices.Collect(geom.Interval[geom.U8]{}.Split(0)))

	f := geom.Must(geom.NewInterval[geom.F64](0, 1))
	require.Equal(t, []geom.Interval[geom.F64]{
		geom.Must(geom.NewInterval[geom.F64](0, 0.25)),
		geom.Must(geom.NewInterval[geom.F64](0.25, 0.75)),
	}, slices.Collect(f.Split(0.25)))
	require.Equal(t, []geom.Interval[geom.F64]{f}, slices.Collect(f.Split(1)))
}

func TestRectSplit(t *testing.T) {
	r := geom.Must(geom.NewRect[geom.I32](0, 0, 10, 10))
	require.Equal(t, []geom.Rect[geom.I32]{
		geom.Must(geom.NewRect[geom.I32](0, 0, 4, 6)),
		geom.Must(geom.NewRect[geom.I32](4, 0, 6, 6)),
		geom.Must(geom.NewRect[geom.I32](0, 6, 4, 4)),
		geom.Must(geom.NewRect[geom.I32](4, 6, 6, 4)),
	}, slices.Collect(r.Split(geom.Pt[geom.I32](4, 6))))

	require.Equal(t, []geom.Rect[geom.I32]{
		geom.Must(geom.NewRect[geom.I32](0, 0, 4, 10)),
		geom.Must(geom.NewRect[geom.I32](4, 0, 6, 10)),
	}, slices.Collect(r.Split(geom.Pt[geom.I32](4, 20))))

	var first geom.Rect[geom.I32]
	for piece := range r.Split(geom.Pt[geom.I32](4, 6)) {
		first = piece
		break
	}
	require.Equal(t, geom.Must(geom.NewRect[geom.I32](0, 0, 4, 6)), first)
}

func TestIntervalSplitInexact(t *testing.T) {
	i := geom.Must(geom.NewInterval[geom.F64](-(1 - 0x1p-53), 4))
	require.Equal(t, []geom.Interval[geom.F64]{i}, slices.Collect(i.Split(1-0x1p-52)))

	pieces := slices.Collect(i.Split(0))
	require.Len(t, pieces, 2)
	require.Equal(t, i.Start(), pieces[0].Start())
	require.False(t, pieces[0].Contains(0))
	require.True(t, pieces[0].Contains(-0x1p-60))
	require.Equal(t, geom.F64(0), pieces[1].Start())
	require.Equal(t, i.Start()+i.Diameter(), pieces[1].Start()+pieces[1].Diameter())
}

func checkSplitPartitions[S geom.Scalar[S]](t *testing.T, values *rapid.Generator[S]) {
	rgen, pgen := spatialtest.Rects(values), spatialtest.Points(values)
	rapid.Check(t, func(t *rapid.T) {
		r := rgen.Draw(t, "r")
		at := rapid.OneOf(pgen, rapid.Just(r.Min())).Draw(t, "at")
		p := rapid.OneOf(pgen, rapid.Just(r.Min()), rapid.Just(at)).Draw(t, "p")

		pieces := slices.Collect(r.Split(at))
		require.LessOrEqual(t, len(pieces), 4)

		var n int
		for _, piece := range pieces {
			require.False(t, piece.Empty())
			if piece.Contains(p) {
				n++
			}
		}
		if r.Contains(p) {
			require.Equal(t, 1, n)
		} else {
			require.Zero(t, n)
		}
	})
}

func TestRectSplitPartitions(t *testing.T) {
	t.Run("I8", func(t *testing.T) {
		checkSplitPartitions(t, rapid.Map(rapid.Int8(), func(v int8) geom.I8 { return geom.I8(v) }))
	})
	t.Run("F64", func(t *testing.T) {
		checkSplitPartitions(t, spatialtest.Dyadic[geom.F64]())
	})
	t.Run("F64Rounding", func(t *testing.T) {
		checkSplitPartitions(t, rapid.Map(rapid.Float64(), func(v float64) geom.F64 { return geom.F64(v) }))
	})
	t.Run("F32Rounding", func(t *testing.T) {
		checkSplitPartitions(t, rapid.Map(rapid.Float32(), func(v float32) geom.F32 { return geom.F32(v) }))
	})
}
