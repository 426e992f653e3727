package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/deshaw/gocube/cube"
)

func flat32(t cube.Typed[float32]) []float32 {
	out := make([]float32, t.Size())
	for i := range out {
		out[i] = t.GetAt(i)
	}
	return out
}

func TestBinaryAddGoldenValues(t *testing.T) {
	e := sequentialEngine()
	a := cube.NewDenseFromSlice([]float32{1, 2, 3, 4})
	b := cube.NewDenseFromSlice([]float32{10, 20, 30, 40})
	result, err := e.Binary(Add, a, b, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float32{11, 22, 33, 44}
	if diff := cmp.Diff(want, flat32(result.(cube.Typed[float32]))); diff != "" {
		t.Errorf("Binary(Add) golden mismatch (-want +got):\n%s", diff)
	}
}

func TestAxisReduceSumGoldenValues(t *testing.T) {
	e := sequentialEngine()
	a := newDense2x3([6]int32{1, 2, 3, 4, 5, 6})
	result, err := e.AxisReduce(Sum, a, []int{1}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rt := result.(cube.Typed[int32])
	got := make([]int32, rt.Size())
	for i := range got {
		got[i] = rt.GetAt(i)
	}
	want := []int32{6, 15}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("AxisReduce(Sum) golden mismatch (-want +got):\n%s", diff)
	}
}
