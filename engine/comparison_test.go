package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deshaw/gocube/cube"
)

func TestComparisonLt(t *testing.T) {
	e := sequentialEngine()
	a := cube.NewDenseFromSlice([]int32{1, 5, 3})
	b := cube.NewDenseFromSlice([]int32{2, 5, 1})
	result, err := e.Comparison(Lt, a, b, nil)
	require.NoError(t, err)
	want := []bool{true, false, false}
	for i, w := range want {
		require.Equal(t, w, result.GetAt(i), "result[%d]", i)
	}
}

func TestComparisonBoolEq(t *testing.T) {
	e := sequentialEngine()
	a := cube.NewBitSet(cube.Shape{2})
	a.SetAt(0, true)
	b := cube.NewBitSet(cube.Shape{2})
	b.SetAt(0, true)
	b.SetAt(1, true)
	result, err := e.Comparison(Eq, a, b, nil)
	require.NoError(t, err)
	require.True(t, result.GetAt(0))
	require.False(t, result.GetAt(1))
}
