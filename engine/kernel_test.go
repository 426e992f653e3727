package engine

import (
	"errors"
	"testing"
)

func TestChunkRangeCoversWholeRangeInOrder(t *testing.T) {
	var got []int
	err := chunkRange(0, 10, 3, func(offset, length int) error {
		got = append(got, offset, length)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{0, 3, 3, 3, 6, 3, 9, 1}
	if len(got) != len(want) {
		t.Fatalf("chunkRange produced %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("chunkRange produced %v, want %v", got, want)
		}
	}
}

func TestChunkRangePropagatesError(t *testing.T) {
	boom := errors.New("boom")
	err := chunkRange(0, 10, 3, func(offset, length int) error {
		if offset == 3 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("chunkRange should propagate the chunk error, got %v", err)
	}
}

func TestRunSequentialBelowThreshold(t *testing.T) {
	e := testEngine(1000)
	seen := make([]bool, 20)
	err := e.run(20, func(offset, length int) error {
		for i := 0; i < length; i++ {
			seen[offset+i] = true
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, ok := range seen {
		if !ok {
			t.Fatalf("index %d never visited", i)
		}
	}
	e.Close()
}

func TestRunParallelAboveThreshold(t *testing.T) {
	e := testEngine(8)
	n := 64
	seen := make([]bool, n)
	err := e.run(n, func(offset, length int) error {
		for i := 0; i < length; i++ {
			seen[offset+i] = true
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, ok := range seen {
		if !ok {
			t.Fatalf("index %d never visited under parallel run", i)
		}
	}
	e.Close()
}
