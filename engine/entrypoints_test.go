package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deshaw/gocube/cube"
)

func TestBinaryCubesEntryPoint(t *testing.T) {
	a := cube.NewDenseFromSlice([]int32{1, 2, 3})
	b := cube.NewDenseFromSlice([]int32{10, 20, 30})
	result, err := BinaryCubes(Add, a, b, nil)
	require.NoError(t, err)
	rt := result.(cube.Typed[int32])
	want := []int32{11, 22, 33}
	for i, w := range want {
		require.Equal(t, w, rt.GetAt(i), "result[%d]", i)
	}
}

func TestBinaryScalarRHSEntryPoint(t *testing.T) {
	a := cube.NewDenseFromSlice([]int32{1, 2, 3})
	result, err := BinaryScalarRHS(Mul, a, int32(3), nil)
	require.NoError(t, err)
	rt := result.(cube.Typed[int32])
	want := []int32{3, 6, 9}
	for i, w := range want {
		require.Equal(t, w, rt.GetAt(i), "result[%d]", i)
	}
}

func TestBinaryScalarLHSEntryPoint(t *testing.T) {
	b := cube.NewDenseFromSlice([]int32{1, 2, 3})
	result, err := BinaryScalarLHS(Sub, int32(10), b, nil)
	require.NoError(t, err)
	rt := result.(cube.Typed[int32])
	want := []int32{9, 8, 7}
	for i, w := range want {
		require.Equal(t, w, rt.GetAt(i), "result[%d]", i)
	}
}

func TestComparisonScalarRHSEntryPoint(t *testing.T) {
	a := cube.NewDenseFromSlice([]int32{1, 5, 3})
	result, err := ComparisonScalarRHS(Gt, a, int32(2), nil)
	require.NoError(t, err)
	want := []bool{false, true, true}
	for i, w := range want {
		require.Equal(t, w, result.GetAt(i), "result[%d]", i)
	}
}

func TestReduceAnyAllEntryPoints(t *testing.T) {
	a := cube.NewBitSet(cube.Shape{3})
	a.SetAt(1, true)
	any, err := ReduceAny(a, nil)
	require.NoError(t, err)
	require.True(t, any)
	all, err := ReduceAll(a, nil)
	require.NoError(t, err)
	require.False(t, all)
}

func TestExtractMaskedEntryPoint(t *testing.T) {
	src := cube.NewDenseFromSlice([]int32{1, 2, 3})
	mask := cube.NewBitSet(cube.Shape{3})
	mask.SetAt(1, true)
	result, err := ExtractMasked(src, mask)
	require.NoError(t, err)
	require.Equal(t, 1, result.Size())
}

func TestSelectWhereEntryPoint(t *testing.T) {
	cond := cube.NewBitSet(cube.Shape{2})
	cond.SetAt(0, true)
	ifTrue := cube.NewDenseFromSlice([]int32{1, 2})
	ifFalse := cube.NewDenseFromSlice([]int32{-1, -2})
	result, err := SelectWhere(cond, ifTrue, ifFalse, nil)
	require.NoError(t, err)
	rt := result.(cube.Typed[int32])
	require.Equal(t, int32(1), rt.GetAt(0))
	require.Equal(t, int32(-2), rt.GetAt(1))
}
