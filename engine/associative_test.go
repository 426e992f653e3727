package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deshaw/gocube/config"
	"github.com/deshaw/gocube/cube"
)

func TestAssociativeSum(t *testing.T) {
	e := sequentialEngine()
	a := cube.NewDenseFromSlice([]int32{1, 2, 3, 4})
	got, err := e.Associative(Sum, a, nil)
	require.NoError(t, err)
	require.Equal(t, int32(10), got.(int32))
}

func TestAssociativeMean(t *testing.T) {
	e := sequentialEngine()
	a := cube.NewDenseFromSlice([]float64{1, 2, 3, 4})
	got, err := e.Associative(Mean, a, nil)
	require.NoError(t, err)
	require.Equal(t, 2.5, got.(float64))
}

func TestAssociativeNansumSkipsNaN(t *testing.T) {
	e := sequentialEngine()
	a := cube.NewDenseFromSlice([]float64{1, math.NaN(), 3})
	got, err := e.Associative(Nansum, a, nil)
	require.NoError(t, err)
	require.Equal(t, float64(4), got.(float64))
}

func TestAssociativeSumPropagatesNaN(t *testing.T) {
	e := sequentialEngine()
	a := cube.NewDenseFromSlice([]float64{1, math.NaN(), 3})
	got, err := e.Associative(Sum, a, nil)
	require.NoError(t, err)
	require.True(t, math.IsNaN(got.(float64)), "sum with NaN present should be NaN")
}

func TestAssociativeProdAndMinMax(t *testing.T) {
	e := sequentialEngine()
	a := cube.NewDenseFromSlice([]int32{2, 3, 4})
	got, err := e.Associative(Prod, a, nil)
	require.NoError(t, err)
	require.Equal(t, int32(24), got.(int32))

	got, err = e.Associative(AssocMin, a, nil)
	require.NoError(t, err)
	require.Equal(t, int32(2), got.(int32))

	got, err = e.Associative(AssocMax, a, nil)
	require.NoError(t, err)
	require.Equal(t, int32(4), got.(int32))
}

func TestAssociativeParallelMatchesSequentialSum(t *testing.T) {
	n := 500
	buf := make([]int64, n)
	want := int64(0)
	for i := range buf {
		buf[i] = int64(i)
		want += int64(i)
	}
	a := cube.NewDenseFromSlice(buf)

	got, err := testEngine(8).Associative(Sum, a, nil)
	require.NoError(t, err)
	require.Equal(t, want, got.(int64))
}

func TestAssociativeDeterministicMatchesMathematicalSum(t *testing.T) {
	e := New(&config.Config{StagingSize: 4, ThreadingThreshold: 1 << 30, NumThreads: 4})
	n := 37
	buf := make([]int32, n)
	want := int32(0)
	for i := range buf {
		buf[i] = int32(i)
		want += int32(i)
	}
	a := cube.NewDenseFromSlice(buf)
	got, err := e.Associative(Sum, a, &Options{Deterministic: true})
	require.NoError(t, err)
	require.Equal(t, want, got.(int32))
}

func TestPairwiseMergeAssociatesSameAsSequential(t *testing.T) {
	states := []foldState[int32]{}
	total := newFoldState[int32]()
	for _, v := range []int32{3, 1, 4, 1, 5, 9, 2, 6} {
		s := newFoldState[int32]()
		s.absorb(v)
		states = append(states, s)
		total.absorb(v)
	}
	merged := pairwiseMerge(states)
	require.Equal(t, total.sum, merged.sum)
	require.Equal(t, total.count, merged.count)
}

func TestAssociativeRespectsMask(t *testing.T) {
	e := sequentialEngine()
	a := cube.NewDenseFromSlice([]int32{1, 2, 3, 4})
	mask := cube.NewBitSet(cube.Shape{4})
	mask.SetAt(1, true)
	mask.SetAt(3, true)
	got, err := e.Associative(Sum, a, &Options{Mask: mask})
	require.NoError(t, err)
	require.Equal(t, int32(6), got.(int32))
}
