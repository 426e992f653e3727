package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deshaw/gocube/cube"
)

func TestUnaryNegBulkPath(t *testing.T) {
	e := sequentialEngine()
	a := cube.NewDenseFromSlice([]float64{1, -2, 3})
	result, err := e.Unary(Neg, a, nil)
	require.NoError(t, err)
	rt := result.(cube.Typed[float64])
	want := []float64{-1, 2, -3}
	for i, w := range want {
		require.Equal(t, w, rt.GetAt(i), "result[%d]", i)
	}
}

func TestUnaryFallsBackOnView(t *testing.T) {
	e := sequentialEngine()
	a := cube.NewDenseFromSlice([]float64{4, 9, 16})
	view := a.Slice(cube.Range{Start: 0, Stop: 3})
	result, err := e.Unary(Abs, view, nil)
	require.NoError(t, err)
	rt := result.(cube.Typed[float64])
	want := []float64{4, 9, 16}
	for i, w := range want {
		require.Equal(t, w, rt.GetAt(i), "result[%d]", i)
	}
}

func TestUnaryNotOnBool(t *testing.T) {
	e := sequentialEngine()
	a := cube.NewBitSet(cube.Shape{3})
	a.SetAt(0, true)
	result, err := e.Unary(Not, a, nil)
	require.NoError(t, err)
	rt := result.(cube.Typed[bool])
	want := []bool{false, true, true}
	for i, w := range want {
		require.Equal(t, w, rt.GetAt(i), "result[%d]", i)
	}
}
