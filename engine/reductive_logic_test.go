package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deshaw/gocube/cube"
)

func TestReductiveLogicAny(t *testing.T) {
	e := sequentialEngine()
	a := cube.NewBitSet(cube.Shape{5})
	a.SetAt(3, true)
	got, err := e.ReductiveLogic(Any, a, nil)
	require.NoError(t, err)
	require.True(t, got)
}

func TestReductiveLogicAllFalseShortCircuits(t *testing.T) {
	e := sequentialEngine()
	a := cube.NewBitSet(cube.Shape{5})
	a.Fill(true)
	a.SetAt(2, false)
	got, err := e.ReductiveLogic(All, a, nil)
	require.NoError(t, err)
	require.False(t, got)
}

func TestReductiveLogicAllTrue(t *testing.T) {
	e := sequentialEngine()
	a := cube.NewBitSet(cube.Shape{5})
	a.Fill(true)
	got, err := e.ReductiveLogic(All, a, nil)
	require.NoError(t, err)
	require.True(t, got)
}

func TestReductiveLogicRejectsNonBool(t *testing.T) {
	e := sequentialEngine()
	a := cube.NewDenseFromSlice([]int32{1, 2, 3})
	_, err := e.ReductiveLogic(Any, a, nil)
	require.ErrorIs(t, err, ErrUnsupportedDType)
}

func TestReductiveLogicParallelShortCircuit(t *testing.T) {
	e := testEngine(8)
	a := cube.NewBitSet(cube.Shape{64})
	a.SetAt(50, true)
	got, err := e.ReductiveLogic(Any, a, nil)
	require.NoError(t, err)
	require.True(t, got)
}
