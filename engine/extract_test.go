package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deshaw/gocube/cube"
)

func TestExtractBasic(t *testing.T) {
	e := sequentialEngine()
	src := cube.NewDenseFromSlice([]int32{10, 20, 30, 40, 50})
	mask := cube.NewBitSet(cube.Shape{5})
	mask.SetAt(1, true)
	mask.SetAt(3, true)
	mask.SetAt(4, true)
	result, err := e.Extract(src, mask)
	require.NoError(t, err)
	rt := result.(cube.Typed[int32])
	require.Equal(t, 3, rt.Size())
	want := []int32{20, 40, 50}
	for i, w := range want {
		require.Equal(t, w, rt.GetAt(i), "result[%d]", i)
	}
}

func TestExtractNoneSelected(t *testing.T) {
	e := sequentialEngine()
	src := cube.NewDenseFromSlice([]int32{1, 2, 3})
	mask := cube.NewBitSet(cube.Shape{3})
	result, err := e.Extract(src, mask)
	require.NoError(t, err)
	require.Equal(t, 0, result.Size())
}

func TestExtractParallelAcrossBlocks(t *testing.T) {
	e := testEngine(4)
	n := 40
	buf := make([]int32, n)
	var wantVals []int32
	mask := cube.NewBitSet(cube.Shape{n})
	for i := range buf {
		buf[i] = int32(i)
		if i%3 == 0 {
			mask.SetAt(i, true)
			wantVals = append(wantVals, int32(i))
		}
	}
	src := cube.NewDenseFromSlice(buf)
	result, err := e.Extract(src, mask)
	require.NoError(t, err)
	rt := result.(cube.Typed[int32])
	require.Equal(t, len(wantVals), rt.Size())
	for i, w := range wantVals {
		require.Equal(t, w, rt.GetAt(i), "result[%d]", i)
	}
}
