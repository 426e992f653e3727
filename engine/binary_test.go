package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deshaw/gocube/cube"
)

func TestBinaryAddBulkPath(t *testing.T) {
	e := sequentialEngine()
	a := cube.NewDenseFromSlice([]int32{1, 2, 3})
	b := cube.NewDenseFromSlice([]int32{10, 20, 30})
	result, err := e.Binary(Add, a, b, nil)
	require.NoError(t, err)
	rt := result.(cube.Typed[int32])
	want := []int32{11, 22, 33}
	for i, w := range want {
		require.Equal(t, w, rt.GetAt(i), "result[%d]", i)
	}
}

func TestBinaryFallsBackOnView(t *testing.T) {
	e := sequentialEngine()
	a := cube.NewDenseFromSlice([]int32{1, 2, 3})
	aView := a.Slice(cube.Range{Start: 0, Stop: 3})
	b := cube.NewDenseFromSlice([]int32{10, 20, 30})
	result, err := e.Binary(Add, aView, b, nil)
	require.NoError(t, err)
	rt := result.(cube.Typed[int32])
	want := []int32{11, 22, 33}
	for i, w := range want {
		require.Equal(t, w, rt.GetAt(i), "result[%d]", i)
	}
}

func TestBinaryRespectsMask(t *testing.T) {
	e := sequentialEngine()
	a := cube.NewDenseFromSlice([]int32{1, 2, 3})
	b := cube.NewDenseFromSlice([]int32{10, 20, 30})
	mask := cube.NewBitSet(cube.Shape{3})
	mask.SetAt(0, true)
	mask.SetAt(2, true)
	dest := cube.NewDense[int32](cube.Shape{3})
	dest.Fill(-1)
	_, err := e.Binary(Add, a, b, &Options{Dest: dest, Mask: mask})
	require.NoError(t, err)
	require.Equal(t, int32(11), dest.GetAt(0))
	require.Equal(t, int32(33), dest.GetAt(2))
	require.Equal(t, int32(-1), dest.GetAt(1), "unmasked element should be untouched")
}

func TestBinaryShapeMismatch(t *testing.T) {
	e := sequentialEngine()
	a := cube.NewDenseFromSlice([]int32{1, 2, 3})
	b := cube.NewDenseFromSlice([]int32{1, 2})
	_, err := e.Binary(Add, a, b, nil)
	require.ErrorIs(t, err, ErrShapeMismatch)
}

func TestBinaryDivByZeroPropagatesError(t *testing.T) {
	e := sequentialEngine()
	a := cube.NewDenseFromSlice([]int32{1})
	b := cube.NewDenseFromSlice([]int32{0})
	_, err := e.Binary(Div, a, b, nil)
	require.ErrorIs(t, err, ErrUnsupportedOp)
}

func TestBinaryIntBitwise(t *testing.T) {
	e := sequentialEngine()
	a := cube.NewDenseFromSlice([]int32{6, 12})
	b := cube.NewDenseFromSlice([]int32{3, 10})
	result, err := e.Binary(And, a, b, nil)
	require.NoError(t, err)
	rt := result.(cube.Typed[int32])
	require.Equal(t, int32(2), rt.GetAt(0))
	require.Equal(t, int32(8), rt.GetAt(1))
}

func TestBinaryBoolBitwise(t *testing.T) {
	e := sequentialEngine()
	a := cube.NewBitSet(cube.Shape{3})
	a.SetAt(0, true)
	a.SetAt(1, true)
	b := cube.NewBitSet(cube.Shape{3})
	b.SetAt(1, true)
	b.SetAt(2, true)

	result, err := e.Binary(And, a, b, nil)
	require.NoError(t, err)
	rt := result.(cube.Typed[bool])
	require.Equal(t, []bool{false, true, false}, []bool{rt.GetAt(0), rt.GetAt(1), rt.GetAt(2)})

	result, err = e.Binary(Or, a, b, nil)
	require.NoError(t, err)
	rt = result.(cube.Typed[bool])
	require.Equal(t, []bool{true, true, true}, []bool{rt.GetAt(0), rt.GetAt(1), rt.GetAt(2)})

	result, err = e.Binary(Xor, a, b, nil)
	require.NoError(t, err)
	rt = result.(cube.Typed[bool])
	require.Equal(t, []bool{true, false, true}, []bool{rt.GetAt(0), rt.GetAt(1), rt.GetAt(2)})
}

func TestBinaryParallelMatchesSequential(t *testing.T) {
	n := 200
	abuf := make([]int32, n)
	bbuf := make([]int32, n)
	for i := range abuf {
		abuf[i] = int32(i)
		bbuf[i] = int32(2 * i)
	}
	a := cube.NewDenseFromSlice(abuf)
	b := cube.NewDenseFromSlice(bbuf)

	seq, err := sequentialEngine().Binary(Add, a, b, nil)
	require.NoError(t, err)
	par, err := testEngine(8).Binary(Add, a, b, nil)
	require.NoError(t, err)
	st, pt := seq.(cube.Typed[int32]), par.(cube.Typed[int32])
	for i := 0; i < n; i++ {
		require.Equal(t, st.GetAt(i), pt.GetAt(i), "index %d", i)
	}
}
